package ship

import (
	"math"

	"github.com/edcd-tools/outfitter-go/internal/domain/catalog"
)

// Jump range, shield strength and speed formulas. The ship model treats
// these as black boxes: they read only their arguments and return plain
// numbers, so they double as the oracle used by the recompute tests.

// JumpRange returns the single-jump range in light years for a ship of
// the given total mass burning up to fuel tonnes through the given drive
func JumpRange(mass float64, fsd *catalog.FSDStats, fuel float64) float64 {
	if fsd == nil || mass <= 0 || fsd.FuelMul <= 0 || fsd.FuelPower <= 0 {
		return 0
	}
	f := math.Min(fuel, fsd.MaxFuel)
	if f <= 0 {
		return 0
	}
	return math.Pow(f/fsd.FuelMul, 1/fsd.FuelPower) * fsd.OptMass / mass
}

// TotalJumpRange returns the distance covered by successive maximum-range
// jumps until the given fuel is exhausted. Mass includes the fuel and
// shrinks as it burns.
func TotalJumpRange(mass float64, fsd *catalog.FSDStats, fuel float64) float64 {
	if fsd == nil || fsd.MaxFuel <= 0 {
		return 0
	}
	var total float64
	for fuel > 0 {
		f := math.Min(fuel, fsd.MaxFuel)
		total += JumpRange(mass, fsd, f)
		fuel -= f
		mass -= f
	}
	return total
}

// ShieldStrength returns the shield strength in megajoules for a hull of
// the given base mass and shield rating behind the given generator.
// The generator multiplier interpolates piecewise-linearly between its
// min/opt/max mass bounds; multiplier carries the stacked booster bonus.
func ShieldStrength(hullMass, baseShield float64, sg *catalog.ShieldStats, multiplier float64) float64 {
	if sg == nil {
		return 0
	}
	var mul float64
	switch {
	case hullMass <= sg.MinMass:
		mul = sg.MinMul
	case hullMass < sg.OptMass:
		mul = sg.MinMul + (hullMass-sg.MinMass)/(sg.OptMass-sg.MinMass)*(sg.OptMul-sg.MinMul)
	case hullMass < sg.MaxMass:
		mul = sg.OptMul + (hullMass-sg.OptMass)/(sg.MaxMass-sg.OptMass)*(sg.MaxMul-sg.OptMul)
	default:
		mul = sg.MaxMul
	}
	return baseShield * multiplier * mul
}

// SpeedResult is the top speed profile at full engine pips
type SpeedResult struct {
	FourPips float64
	Boost    float64
}

// Speed returns top speed and boost speed for a ship of the given mass
// (unladen plus fuel) on the given thrusters. Lighter ships run closer
// to the thruster's maximum multiplier.
func Speed(mass, baseSpeed, baseBoost float64, th *catalog.ThrusterStats) SpeedResult {
	if th == nil {
		return SpeedResult{}
	}
	var mul float64
	switch {
	case mass <= th.MinMass:
		mul = th.MaxMul
	case mass < th.OptMass:
		mul = th.MaxMul - (mass-th.MinMass)/(th.OptMass-th.MinMass)*(th.MaxMul-th.OptMul)
	case mass < th.MaxMass:
		mul = th.OptMul - (mass-th.OptMass)/(th.MaxMass-th.OptMass)*(th.OptMul-th.MinMul)
	default:
		mul = th.MinMul
	}
	return SpeedResult{
		FourPips: baseSpeed * mul,
		Boost:    baseBoost * mul,
	}
}
