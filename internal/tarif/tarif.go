// Package tarif models the steady-state financial equilibrium of the
// target electricity system: the tariff that covers annualized
// production, grid, and policy costs. Money is computed with exact
// decimal arithmetic.
package tarif

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Config holds the annualized cost assumptions, LCOE in €/MWh and
// lump costs in €B per year.
type Config struct {
	SolarLCOE   decimal.Decimal
	NuclearLCOE decimal.Decimal
	HydroLCOE   decimal.Decimal
	// GasLCOE reflects a low-utilization CCGT fleet.
	GasLCOE     decimal.Decimal
	StorageCost decimal.Decimal

	SolarTWh   decimal.Decimal
	NuclearTWh decimal.Decimal
	HydroTWh   decimal.Decimal
	GasTWh     decimal.Decimal
	StorageTWh decimal.Decimal

	GridOperationB  decimal.Decimal
	GridInvestmentB decimal.Decimal
	SystemServicesB decimal.Decimal
	RenewSupportB   decimal.Decimal

	TaxesPerMWh decimal.Decimal

	// ConsumptionTWh is the delivered electricity the costs are
	// spread over.
	ConsumptionTWh decimal.Decimal
}

// DefaultConfig returns the 2050 target-scenario cost assumptions
// (IRENA/CRE/RTE references).
func DefaultConfig() Config {
	d := decimal.NewFromFloat
	return Config{
		SolarLCOE:   d(30),
		NuclearLCOE: d(50),
		HydroLCOE:   d(25),
		GasLCOE:     d(120),
		StorageCost: d(50),

		SolarTWh:   d(300),
		NuclearTWh: d(400),
		HydroTWh:   d(65),
		GasTWh:     d(114),
		StorageTWh: d(80),

		GridOperationB:  d(15),
		GridInvestmentB: d(5),
		SystemServicesB: d(2),
		RenewSupportB:   d(1),

		TaxesPerMWh: d(32),

		ConsumptionTWh: d(729),
	}
}

// WithScenario overrides the volumes that come out of a computed
// scenario: backup fuel delivered as electricity and total consumption.
func (c Config) WithScenario(gasTWh, consumptionTWh float64) Config {
	c.GasTWh = decimal.NewFromFloat(gasTWh)
	c.ConsumptionTWh = decimal.NewFromFloat(consumptionTWh)
	return c
}

// Breakdown is the equilibrium tariff decomposition in €/MWh.
type Breakdown struct {
	ProductionPerMWh decimal.Decimal
	GridPerMWh       decimal.Decimal
	ServicesPerMWh   decimal.Decimal
	TaxesPerMWh      decimal.Decimal
	TotalExclTax     decimal.Decimal
	TotalInclTax     decimal.Decimal

	ProductionCostB decimal.Decimal
	SystemCostB     decimal.Decimal
}

var thousand = decimal.NewFromInt(1000)

// ProductionCostB is the annual production cost in €B:
// Σ volume (TWh) × LCOE (€/MWh) / 1000.
func (c Config) ProductionCostB() decimal.Decimal {
	sum := c.SolarTWh.Mul(c.SolarLCOE).
		Add(c.NuclearTWh.Mul(c.NuclearLCOE)).
		Add(c.HydroTWh.Mul(c.HydroLCOE)).
		Add(c.GasTWh.Mul(c.GasLCOE)).
		Add(c.StorageTWh.Mul(c.StorageCost))
	return sum.Div(thousand)
}

// SystemCostB is the annual grid, services, and support cost in €B.
func (c Config) SystemCostB() decimal.Decimal {
	return c.GridOperationB.
		Add(c.GridInvestmentB).
		Add(c.SystemServicesB).
		Add(c.RenewSupportB)
}

// Equilibrium computes the break-even tariff. Consumption must be
// positive since every component divides by it.
func Equilibrium(c Config) (Breakdown, error) {
	if c.ConsumptionTWh.Sign() <= 0 {
		return Breakdown{}, fmt.Errorf("consumption must be > 0, got %s TWh", c.ConsumptionTWh)
	}

	prodB := c.ProductionCostB()
	gridB := c.GridOperationB.Add(c.GridInvestmentB)
	servicesB := c.SystemServicesB.Add(c.RenewSupportB)

	// €B over TWh gives €/MWh after scaling by 1000.
	perMWh := func(costB decimal.Decimal) decimal.Decimal {
		return costB.Mul(thousand).DivRound(c.ConsumptionTWh, 6)
	}

	b := Breakdown{
		ProductionPerMWh: perMWh(prodB),
		GridPerMWh:       perMWh(gridB),
		ServicesPerMWh:   perMWh(servicesB),
		TaxesPerMWh:      c.TaxesPerMWh,
		ProductionCostB:  prodB,
		SystemCostB:      c.SystemCostB(),
	}
	b.TotalExclTax = b.ProductionPerMWh.Add(b.GridPerMWh).Add(b.ServicesPerMWh)
	b.TotalInclTax = b.TotalExclTax.Add(b.TaxesPerMWh)
	return b, nil
}
