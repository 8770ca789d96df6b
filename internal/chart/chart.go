// Package chart renders the monthly backup-energy bar chart as a PNG.
package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mlevant/wattfrance/internal/synthesis"
	"github.com/mlevant/wattfrance/internal/temporal"
)

const (
	chartWidth  = 900
	chartHeight = 420

	marginLeft   = 60
	marginRight  = 20
	marginTop    = 40
	marginBottom = 50
)

var (
	background = color.RGBA{250, 250, 250, 255}
	barColor   = color.RGBA{196, 66, 48, 255}
	axisColor  = color.RGBA{80, 80, 80, 255}
	gridColor  = color.RGBA{220, 220, 220, 255}
	textColor  = color.RGBA{40, 40, 40, 255}
)

// Short ASCII month labels, basicfont has no accented glyphs.
var monthLabels = [temporal.MonthCount]string{
	"Jan", "Fev", "Mar", "Avr", "Mai", "Juin",
	"Juil", "Aou", "Sep", "Oct", "Nov", "Dec",
}

// MonthlyBackup collapses synthesis records to backup energy per month.
func MonthlyBackup(records []synthesis.Record) [temporal.MonthCount]float64 {
	var out [temporal.MonthCount]float64
	for _, rec := range records {
		out[rec.Period.Month] += rec.BackupTWh
	}
	return out
}

// RenderMonthlyBackup draws backup TWh per month as a bar chart and
// returns the encoded PNG.
func RenderMonthlyBackup(records []synthesis.Record, title string) ([]byte, error) {
	monthly := MonthlyBackup(records)

	maxTWh := 1.0
	for _, v := range monthly {
		if v > maxTWh {
			maxTWh = v
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, chartWidth, chartHeight))
	fill(img, img.Bounds(), background)

	plotW := chartWidth - marginLeft - marginRight
	plotH := chartHeight - marginTop - marginBottom
	baseY := marginTop + plotH

	// Horizontal gridlines at quarter intervals.
	for i := 0; i <= 4; i++ {
		y := marginTop + plotH*i/4
		hline(img, marginLeft, chartWidth-marginRight, y, gridColor)
		value := maxTWh * float64(4-i) / 4
		drawText(img, fmt.Sprintf("%.1f", value), 8, y+4, textColor)
	}

	// Axes.
	hline(img, marginLeft, chartWidth-marginRight, baseY, axisColor)
	vline(img, marginLeft, marginTop, baseY, axisColor)

	barSlot := plotW / temporal.MonthCount
	barWidth := barSlot * 3 / 4

	for m := temporal.Month(0); m < temporal.MonthCount; m++ {
		h := int(monthly[m] / maxTWh * float64(plotH))
		x0 := marginLeft + int(m)*barSlot + (barSlot-barWidth)/2
		fill(img, image.Rect(x0, baseY-h, x0+barWidth, baseY), barColor)

		drawText(img, monthLabels[m], x0, baseY+16, textColor)
	}

	drawText(img, title, marginLeft, 22, textColor)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode chart: %w", err)
	}
	return buf.Bytes(), nil
}

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func hline(img *image.RGBA, x0, x1, y int, c color.RGBA) {
	for x := x0; x <= x1; x++ {
		img.SetRGBA(x, y, c)
	}
}

func vline(img *image.RGBA, x, y0, y1 int, c color.RGBA) {
	for y := y0; y <= y1; y++ {
		img.SetRGBA(x, y, c)
	}
}

func drawText(img *image.RGBA, text string, x, y int, col color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}
