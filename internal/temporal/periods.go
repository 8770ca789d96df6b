// Package temporal models the fixed simulation calendar of 12 months by
// 5 daily time slots and distributes annual energy across it.
package temporal

import "fmt"

// Month is a calendar month index, January = 0.
type Month int

const (
	Janvier Month = iota
	Fevrier
	Mars
	Avril
	Mai
	Juin
	Juillet
	Aout
	Septembre
	Octobre
	Novembre
	Decembre

	MonthCount = 12
)

var monthNames = [MonthCount]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

func (m Month) String() string {
	if m < 0 || m >= MonthCount {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m]
}

// Slot is one of the five daily time bands.
type Slot int

const (
	Slot8h13h Slot = iota
	Slot13h18h
	Slot18h20h
	Slot20h23h
	Slot23h8h

	SlotCount = 5
)

var slotNames = [SlotCount]string{"8h-13h", "13h-18h", "18h-20h", "20h-23h", "23h-8h"}

var slotHours = [SlotCount]float64{5, 5, 2, 3, 9}

func (s Slot) String() string {
	if s < 0 || s >= SlotCount {
		return fmt.Sprintf("Slot(%d)", int(s))
	}
	return slotNames[s]
}

// Hours is the slot duration. The five slots cover the full day.
func (s Slot) Hours() float64 {
	if s < 0 || s >= SlotCount {
		return 0
	}
	return slotHours[s]
}

// DaysPerMonth is the model simplification of 30 days in every month.
const DaysPerMonth = 30

// PeriodCount is the number of (month, slot) cells in a model year.
const PeriodCount = MonthCount * SlotCount

// Period identifies one cell of the simulation calendar.
type Period struct {
	Month Month
	Slot  Slot
}

func (p Period) String() string {
	return p.Month.String() + " " + p.Slot.String()
}

// Hours is the total duration of the period over the model year.
func (p Period) Hours() float64 {
	return p.Slot.Hours() * DaysPerMonth
}

// Index maps the period to its position in a Profile, month-major.
func (p Period) Index() int {
	return int(p.Month)*SlotCount + int(p.Slot)
}

// Periods lists all 60 periods in calendar order.
func Periods() []Period {
	out := make([]Period, 0, PeriodCount)
	for m := Month(0); m < MonthCount; m++ {
		for s := Slot(0); s < SlotCount; s++ {
			out = append(out, Period{Month: m, Slot: s})
		}
	}
	return out
}

// Months lists the twelve months in calendar order.
func Months() []Month {
	out := make([]Month, MonthCount)
	for i := range out {
		out[i] = Month(i)
	}
	return out
}

// Slots lists the five daily slots in chronological order.
func Slots() []Slot {
	out := make([]Slot, SlotCount)
	for i := range out {
		out[i] = Slot(i)
	}
	return out
}
