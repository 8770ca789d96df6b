package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jlaffaye/ftp"

	"github.com/mlevant/wattfrance/internal/metrics"
	"github.com/mlevant/wattfrance/internal/temporal"
)

const (
	meteoFTPHost     = "ftp.meteo.fr:21"
	meteoNormalsFile = "/pub/normales/temperature_mensuelle_fr.csv"
)

// MeteoClient retrieves the monthly temperature normals feeding the
// heating model from the Météo-France FTP server.
type MeteoClient struct {
	host string
	file string
}

func NewMeteoClient() *MeteoClient {
	return &MeteoClient{host: meteoFTPHost, file: meteoNormalsFile}
}

// NewMeteoClientWithAddr is used by tests to point at a local server.
func NewMeteoClientWithAddr(host, file string) *MeteoClient {
	return &MeteoClient{host: host, file: file}
}

// FetchNormals downloads the normals file, semicolon-separated lines of
// month number (1-12) and mean temperature in °C.
func (c *MeteoClient) FetchNormals() ([temporal.MonthCount]float64, error) {
	var normals [temporal.MonthCount]float64
	started := time.Now()

	conn, err := ftp.Dial(c.host, ftp.DialWithTimeout(30*time.Second))
	if err != nil {
		metrics.DownloadCallsTotal.WithLabelValues("meteo", "error").Inc()
		return normals, fmt.Errorf("ftp dial: %w", err)
	}
	defer conn.Quit()

	if err := conn.Login("anonymous", "anonymous"); err != nil {
		metrics.DownloadCallsTotal.WithLabelValues("meteo", "error").Inc()
		return normals, fmt.Errorf("ftp login: %w", err)
	}

	resp, err := conn.Retr(c.file)
	if err != nil {
		metrics.DownloadCallsTotal.WithLabelValues("meteo", "error").Inc()
		return normals, fmt.Errorf("ftp retr: %w", err)
	}
	defer resp.Close()

	normals, err = ParseNormals(resp)
	if err != nil {
		metrics.DownloadCallsTotal.WithLabelValues("meteo", "error").Inc()
		return normals, err
	}

	metrics.DownloadCallsTotal.WithLabelValues("meteo", "ok").Inc()
	metrics.DownloadLatency.WithLabelValues("meteo").Observe(time.Since(started).Seconds())
	return normals, nil
}

// ParseNormals reads "month;temp" lines. Comment lines starting with #
// and blank lines are skipped. All twelve months must be present.
func ParseNormals(r io.Reader) ([temporal.MonthCount]float64, error) {
	var normals [temporal.MonthCount]float64
	seen := make(map[int]bool)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, ";")
		if len(parts) != 2 {
			return normals, fmt.Errorf("malformed normals line %q", line)
		}
		month, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil || month < 1 || month > 12 {
			return normals, fmt.Errorf("bad month in line %q", line)
		}
		tempC, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return normals, fmt.Errorf("bad temperature in line %q", line)
		}
		normals[month-1] = tempC
		seen[month] = true
	}
	if err := scanner.Err(); err != nil {
		return normals, fmt.Errorf("read normals: %w", err)
	}
	if len(seen) != temporal.MonthCount {
		return normals, fmt.Errorf("normals file has %d months, want 12", len(seen))
	}
	return normals, nil
}
