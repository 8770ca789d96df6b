package temporal

// Profile distributes an annual quantity over the 60 periods. Weights are
// non-negative and sum to 1, month-major (see Period.Index).
type Profile [PeriodCount]float64

// At returns the weight for a (month, slot) cell.
func (p Profile) At(m Month, s Slot) float64 {
	return p[Period{Month: m, Slot: s}.Index()]
}

// Sum returns the total weight, 1 for any normalized profile.
func (p Profile) Sum() float64 {
	var sum float64
	for _, w := range p {
		sum += w
	}
	return sum
}

// MonthlyProfile distributes an annual quantity over the 12 months.
type MonthlyProfile [MonthCount]float64

// Normalize scales 60 raw magnitudes to weights summing to 1. Negative
// magnitudes are treated as zero. An all-zero input falls back to the
// uniform profile rather than producing NaN weights.
func Normalize(raw [PeriodCount]float64) Profile {
	var sum float64
	for i, v := range raw {
		if v < 0 {
			raw[i] = 0
			continue
		}
		sum += v
	}
	var p Profile
	if sum == 0 {
		for i := range p {
			p[i] = 1.0 / PeriodCount
		}
		return p
	}
	for i, v := range raw {
		p[i] = v / sum
	}
	return p
}

// NormalizeMonthly scales 12 raw monthly magnitudes to weights summing to 1,
// with the same zero-sum uniform fallback as Normalize.
func NormalizeMonthly(raw [MonthCount]float64) MonthlyProfile {
	var sum float64
	for i, v := range raw {
		if v < 0 {
			raw[i] = 0
			continue
		}
		sum += v
	}
	var p MonthlyProfile
	if sum == 0 {
		for i := range p {
			p[i] = 1.0 / MonthCount
		}
		return p
	}
	for i, v := range raw {
		p[i] = v / sum
	}
	return p
}

// Spread expands monthly weights across slots using a per-slot daily curve.
// The daily curve is normalized independently so callers may pass raw
// coefficients.
func Spread(monthly MonthlyProfile, daily [SlotCount]float64) Profile {
	var dailySum float64
	for i, v := range daily {
		if v < 0 {
			daily[i] = 0
			continue
		}
		dailySum += v
	}
	if dailySum == 0 {
		for i := range daily {
			daily[i] = 1
		}
		dailySum = SlotCount
	}

	var raw [PeriodCount]float64
	for m := Month(0); m < MonthCount; m++ {
		for s := Slot(0); s < SlotCount; s++ {
			raw[Period{Month: m, Slot: s}.Index()] = monthly[m] * daily[s] / dailySum
		}
	}
	return Normalize(raw)
}

// SpreadConstantPower expands monthly weights assuming constant power
// within each month, so each slot receives energy in proportion to its
// duration.
func SpreadConstantPower(monthly MonthlyProfile) Profile {
	var raw [PeriodCount]float64
	for m := Month(0); m < MonthCount; m++ {
		for s := Slot(0); s < SlotCount; s++ {
			raw[Period{Month: m, Slot: s}.Index()] = monthly[m] * s.Hours()
		}
	}
	return Normalize(raw)
}

// Flat is the constant-power profile over the whole year, used for
// baseload components such as industrial processes and electrolysis.
// Each period's weight is proportional to its duration.
func Flat() Profile {
	return SpreadConstantPower(uniformMonthly())
}

// uniformMonthly is the flat 1/12 monthly distribution.
func uniformMonthly() MonthlyProfile {
	var raw [MonthCount]float64
	for i := range raw {
		raw[i] = 1
	}
	return NormalizeMonthly(raw)
}
