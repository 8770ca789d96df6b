package temporal

// evChargingCurve is the daily EV charging distribution: a morning
// workplace bump, midday charging, and a night-tariff share.
var evChargingCurve = [SlotCount]float64{0.15, 0.25, 0.20, 0.15, 0.25}

// agricultureSeasonal weights agricultural demand by month. Irrigation
// and machinery peak in summer, the opposite phase of heating.
var agricultureSeasonal = [MonthCount]float64{
	0.5, 0.6, 0.8, 1.0, 1.3, 1.5, 1.5, 1.3, 1.0, 0.8, 0.6, 0.5,
}

// ChargingProfile distributes annual EV charging energy: the daily curve
// applied identically to every month, since road traffic varies little
// across the year.
func ChargingProfile() Profile {
	return Spread(uniformMonthly(), evChargingCurve)
}

// AgricultureProfile distributes agricultural demand seasonally with
// constant power within each month.
func AgricultureProfile() Profile {
	return SpreadConstantPower(NormalizeMonthly(agricultureSeasonal))
}
