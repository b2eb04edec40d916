package ship_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edcd-tools/outfitter-go/internal/domain/catalog"
	"github.com/edcd-tools/outfitter-go/internal/domain/ship"
)

var testFSD = &catalog.FSDStats{
	MaxFuel:   5,
	OptMass:   900,
	MaxMass:   1800,
	FuelMul:   0.012,
	FuelPower: 2.45,
}

func TestJumpRange(t *testing.T) {
	want := math.Pow(5/0.012, 1/2.45) * 900 / 500
	assert.InDelta(t, want, ship.JumpRange(500, testFSD, 5), delta)

	// Fuel above the per-jump cap does not extend the jump
	assert.InDelta(t, want, ship.JumpRange(500, testFSD, 32), delta)

	// Less fuel, shorter jump
	assert.Less(t, ship.JumpRange(500, testFSD, 2), want)

	// Heavier ship, shorter jump
	assert.Less(t, ship.JumpRange(700, testFSD, 5), want)
}

func TestJumpRangeDegenerateInputs(t *testing.T) {
	assert.Equal(t, 0.0, ship.JumpRange(500, nil, 5))
	assert.Equal(t, 0.0, ship.JumpRange(0, testFSD, 5))
	assert.Equal(t, 0.0, ship.JumpRange(500, testFSD, 0))
	assert.Equal(t, 0.0, ship.JumpRange(500, &catalog.FSDStats{MaxFuel: 5}, 5))
}

func TestTotalJumpRange(t *testing.T) {
	// 12 tonnes through a 5 tonne drive: jumps of 5, 5 and 2, with the
	// ship lightening as fuel burns
	first := ship.JumpRange(512, testFSD, 5)
	second := ship.JumpRange(507, testFSD, 5)
	third := ship.JumpRange(502, testFSD, 2)
	want := first + second + third

	assert.InDelta(t, want, ship.TotalJumpRange(512, testFSD, 12), delta)

	// Successive jumps always beat a single jump on the same fuel
	assert.Greater(t, ship.TotalJumpRange(512, testFSD, 12), first)

	assert.Equal(t, 0.0, ship.TotalJumpRange(512, nil, 12))
	assert.Equal(t, 0.0, ship.TotalJumpRange(512, testFSD, 0))
}

func TestShieldStrength(t *testing.T) {
	sg := &catalog.ShieldStats{
		MinMass: 100, OptMass: 200, MaxMass: 400,
		MinMul: 0.5, OptMul: 1.0, MaxMul: 1.5,
	}

	// At and below the bounds the multiplier pins
	assert.InDelta(t, 140*0.5, ship.ShieldStrength(100, 140, sg, 1), delta)
	assert.InDelta(t, 140*0.5, ship.ShieldStrength(50, 140, sg, 1), delta)
	assert.InDelta(t, 140*1.5, ship.ShieldStrength(400, 140, sg, 1), delta)
	assert.InDelta(t, 140*1.5, ship.ShieldStrength(900, 140, sg, 1), delta)

	// Halfway between min and opt mass
	assert.InDelta(t, 140*0.75, ship.ShieldStrength(150, 140, sg, 1), delta)
	// Halfway between opt and max mass
	assert.InDelta(t, 140*1.25, ship.ShieldStrength(300, 140, sg, 1), delta)

	// Booster multiplier scales linearly
	assert.InDelta(t, 140*0.75*1.2, ship.ShieldStrength(150, 140, sg, 1.2), delta)

	assert.Equal(t, 0.0, ship.ShieldStrength(150, 140, nil, 1))
}

func TestSpeed(t *testing.T) {
	th := &catalog.ThrusterStats{
		MinMass: 200, OptMass: 400, MaxMass: 600,
		MinMul: 0.8, OptMul: 1.0, MaxMul: 1.2,
	}

	// Light ships run at the maximum multiplier
	light := ship.Speed(150, 250, 340, th)
	assert.InDelta(t, 250*1.2, light.FourPips, delta)
	assert.InDelta(t, 340*1.2, light.Boost, delta)

	// At optimal mass the base speed applies
	opt := ship.Speed(400, 250, 340, th)
	assert.InDelta(t, 250.0, opt.FourPips, delta)

	// Overweight ships pin at the minimum multiplier
	heavy := ship.Speed(900, 250, 340, th)
	assert.InDelta(t, 250*0.8, heavy.FourPips, delta)

	// Halfway between min and opt mass
	mid := ship.Speed(300, 250, 340, th)
	assert.InDelta(t, 250*1.1, mid.FourPips, delta)

	assert.Equal(t, ship.SpeedResult{}, ship.Speed(400, 250, 340, nil))
}
