package temporal

import "sort"

// outdoorTempC holds the monthly average exterior temperatures for
// mainland France (Météo France 2021-2022 averages).
var outdoorTempC = [MonthCount]float64{
	5.2, 6.7, 9.1, 11.4, 15.3, 19.8, 22.1, 21.6, 17.9, 13.8, 8.4, 5.8,
}

// heatingSlotCoeff adjusts heating power by time slot. Occupancy drives
// the daytime dip and the reduced night setpoint.
var heatingSlotCoeff = [SlotCount]float64{1.0, 0.8, 1.0, 1.0, 0.7}

// COPPoint is one entry of a temperature-to-COP lookup table for
// air-source heat pumps.
type COPPoint struct {
	TempC float64
	COP   float64
}

// HeatingConfig carries the seven-variable residential heating model:
// housing stock, volume, insulation, setpoint, exterior temperatures,
// heat-pump presence, and the temperature-dependent COP curve.
type HeatingConfig struct {
	Houses         int     // individual houses in mainland France
	SurfaceM2      float64 // average floor area
	CeilingM       float64 // average ceiling height
	GCoefficient   float64 // heat loss, W/m³/°C (RT 2005 ≈ 0.65)
	IndoorTempC    float64 // thermostat setpoint
	OutdoorTempC   [MonthCount]float64
	WithHeatPump   bool // false means direct resistance heating
	COPByTempTable []COPPoint
}

// DefaultHeatingConfig returns the documented baseline: 20M houses,
// 120 m² × 2.5 m, G = 0.65, 19 °C setpoint, heat pumps everywhere.
func DefaultHeatingConfig() HeatingConfig {
	return HeatingConfig{
		Houses:       20_000_000,
		SurfaceM2:    120,
		CeilingM:     2.5,
		GCoefficient: 0.65,
		IndoorTempC:  19,
		OutdoorTempC: outdoorTempC,
		WithHeatPump: true,
		COPByTempTable: []COPPoint{
			{-15, 1.5},
			{-10, 1.8},
			{-5, 2.1},
			{0, 2.5},
			{5, 3.0},
			{10, 3.5},
			{15, 4.0},
		},
	}
}

// VolumeM3 is the average heated volume per house.
func (c HeatingConfig) VolumeM3() float64 {
	return c.SurfaceM2 * c.CeilingM
}

// InterpolateCOP reads a COP from the table by linear interpolation,
// clamping to the boundary values outside the table range. An empty
// table yields COP 1 (resistance equivalent).
func InterpolateCOP(tempC float64, table []COPPoint) float64 {
	if len(table) == 0 {
		return 1
	}
	pts := make([]COPPoint, len(table))
	copy(pts, table)
	sort.Slice(pts, func(i, j int) bool { return pts[i].TempC < pts[j].TempC })

	if tempC <= pts[0].TempC {
		return pts[0].COP
	}
	if tempC >= pts[len(pts)-1].TempC {
		return pts[len(pts)-1].COP
	}
	for i := 0; i < len(pts)-1; i++ {
		lo, hi := pts[i], pts[i+1]
		if tempC >= lo.TempC && tempC <= hi.TempC {
			frac := (tempC - lo.TempC) / (hi.TempC - lo.TempC)
			return lo.COP + frac*(hi.COP-lo.COP)
		}
	}
	return pts[len(pts)-1].COP
}

// HouseThermalW is the thermal power need of one house in watts,
// P = G × V × max(0, Tint − Text).
func (c HeatingConfig) HouseThermalW(outdoorC float64) float64 {
	deltaT := c.IndoorTempC - outdoorC
	if deltaT < 0 {
		deltaT = 0
	}
	return c.GCoefficient * c.VolumeM3() * deltaT
}

// HouseElectricW is the electrical power drawn by one house, thermal
// need divided by the interpolated COP when a heat pump is present.
func (c HeatingConfig) HouseElectricW(outdoorC float64) float64 {
	thermal := c.HouseThermalW(outdoorC)
	if !c.WithHeatPump {
		return thermal
	}
	return thermal / InterpolateCOP(outdoorC, c.COPByTempTable)
}

// NationalHeatingKW scales single-house demand to the national stock for
// one period, applying the slot occupancy coefficient.
func (c HeatingConfig) NationalHeatingKW(m Month, s Slot) float64 {
	perHouseW := c.HouseElectricW(c.OutdoorTempC[m])
	return perHouseW * float64(c.Houses) * heatingSlotCoeff[s] / 1000
}

// HeatingProfile distributes annual heating energy across the 60 periods
// in proportion to the physical model's period energy.
func HeatingProfile(c HeatingConfig) Profile {
	var raw [PeriodCount]float64
	for _, p := range Periods() {
		raw[p.Index()] = c.NationalHeatingKW(p.Month, p.Slot) * p.Hours()
	}
	return Normalize(raw)
}
