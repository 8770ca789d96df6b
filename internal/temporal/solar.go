package temporal

// sunsetHour holds the mid-month sunset time per month in decimal hours
// (metropolitan France).
var sunsetHour = [MonthCount]float64{
	17.4, 18.2, 18.9, 20.7, 21.5, 22.0, 21.9, 21.1, 20.1, 19.1, 17.2, 16.9,
}

// SunsetHour returns the typical sunset time for a month, decimal hours.
func SunsetHour(m Month) float64 {
	if m < 0 || m >= MonthCount {
		return 18
	}
	return sunsetHour[m]
}

// ExpectedSolarFraction estimates how much of a slot has sunlight, from
// 0 (full night) to 1 (full sun). The deep-night slot is always dark and
// the two daytime slots always lit; the evening slots depend on the
// month's sunset time.
func ExpectedSolarFraction(m Month, s Slot) float64 {
	sunset := SunsetHour(m)
	switch s {
	case Slot8h13h, Slot13h18h:
		return 1
	case Slot18h20h:
		switch {
		case sunset >= 20:
			return 1
		case sunset <= 18:
			return 0
		default:
			return (sunset - 18) / 2
		}
	case Slot20h23h:
		switch {
		case sunset >= 23:
			return 1
		case sunset <= 20:
			return 0
		default:
			return (sunset - 20) / 3
		}
	case Slot23h8h:
		return 0
	}
	return 0.5
}

// IsNight reports whether a slot has no sunlight at all in a month.
func IsNight(m Month, s Slot) bool {
	return ExpectedSolarFraction(m, s) == 0
}
