package ship_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edcd-tools/outfitter-go/internal/domain/catalog"
	"github.com/edcd-tools/outfitter-go/internal/domain/ship"
	"github.com/edcd-tools/outfitter-go/test/helpers"
)

const delta = 1e-9

// newAsp builds an empty Asp Explorer from the test catalog
func newAsp(t *testing.T) (*catalog.Catalog, *ship.Ship) {
	t.Helper()
	cat := helpers.TestCatalog()
	spec := cat.Ship("asp")
	require.NotNil(t, spec)
	return cat, ship.New(spec)
}

// assertAggregatesClose holds the incrementally maintained snapshot to
// the from-scratch recomputation
func assertAggregatesClose(t *testing.T, s *ship.Ship) {
	t.Helper()
	got := s.Snapshot()
	want := ship.Recompute(s)

	assert.InDelta(t, want.UnladenMass, got.UnladenMass, delta, "unladen mass")
	assert.InDelta(t, want.LadenMass, got.LadenMass, delta, "laden mass")
	assert.InDelta(t, want.CargoCapacity, got.CargoCapacity, delta, "cargo capacity")
	assert.InDelta(t, want.FuelCapacity, got.FuelCapacity, delta, "fuel capacity")
	assert.InDelta(t, want.TotalCost, got.TotalCost, delta, "total cost")
	assert.InDelta(t, want.TotalDps, got.TotalDps, delta, "total dps")
	assert.InDelta(t, want.ArmourAdded, got.ArmourAdded, delta, "armour added")
	assert.InDelta(t, want.Armour, got.Armour, delta, "armour")
	assert.InDelta(t, want.ShieldMultiplier, got.ShieldMultiplier, delta, "shield multiplier")
	assert.InDelta(t, want.ShieldStrength, got.ShieldStrength, delta, "shield strength")
	assert.InDelta(t, want.PowerAvailable, got.PowerAvailable, delta, "power available")
	assert.InDelta(t, want.PowerRetracted, got.PowerRetracted, delta, "power retracted")
	assert.InDelta(t, want.PowerDeployed, got.PowerDeployed, delta, "power deployed")
	assert.InDelta(t, want.TopSpeed, got.TopSpeed, delta, "top speed")
	assert.InDelta(t, want.TopBoost, got.TopBoost, delta, "top boost")
	assert.InDelta(t, want.UnladenRange, got.UnladenRange, delta, "unladen range")
	assert.InDelta(t, want.FullTankRange, got.FullTankRange, delta, "full tank range")
	assert.InDelta(t, want.LadenRange, got.LadenRange, delta, "laden range")
	assert.InDelta(t, want.UnladenTotalRange, got.UnladenTotalRange, delta, "unladen total range")
	assert.InDelta(t, want.LadenTotalRange, got.LadenTotalRange, delta, "laden total range")
	assert.Equal(t, want.MaxJumpCount, got.MaxJumpCount, "max jump count")

	for i := range want.PriorityBands {
		assert.InDelta(t, want.PriorityBands[i].Retracted, got.PriorityBands[i].Retracted, delta, "band %d retracted", i)
		assert.InDelta(t, want.PriorityBands[i].Deployed, got.PriorityBands[i].Deployed, delta, "band %d deployed", i)
		assert.InDelta(t, want.PriorityBands[i].RetractedSum, got.PriorityBands[i].RetractedSum, delta, "band %d retracted sum", i)
		assert.InDelta(t, want.PriorityBands[i].DeployedSum, got.PriorityBands[i].DeployedSum, delta, "band %d deployed sum", i)
	}
}

func TestNewShipDefaults(t *testing.T) {
	_, s := newAsp(t)

	assert.Equal(t, "asp", s.ID())
	assert.Equal(t, "Asp Explorer", s.Name())
	assert.Equal(t, 280.0, s.UnladenMass())
	assert.Equal(t, 280.0, s.LadenMass())
	assert.Equal(t, 6135660.0, s.TotalCost())
	assert.Equal(t, 0.0, s.PowerAvailable())

	// Only the cargo hatch draws power on an empty hull
	assert.InDelta(t, 0.6, s.PowerRetracted(), delta)
	assert.False(t, s.CargoHatch().IsEmpty())

	for _, slot := range s.Standard() {
		assert.True(t, slot.IsEmpty())
		assert.True(t, slot.Enabled())
		assert.Equal(t, 0, slot.Priority())
	}

	assertAggregatesClose(t, s)
}

func TestUseMountsAndReplaces(t *testing.T) {
	cat, s := newAsp(t)

	pp := cat.Standard(catalog.StandardPowerPlant, "4A")
	require.NotNil(t, pp)
	s.Use(s.Standard()[catalog.StandardPowerPlant], pp, false)

	assert.Equal(t, pp.PGen, s.PowerAvailable())
	assert.InDelta(t, 280+pp.Mass, s.UnladenMass(), delta)

	// Replacing swaps the old module's contributions out
	pp2 := cat.Standard(catalog.StandardPowerPlant, "4E")
	require.NotNil(t, pp2)
	s.Use(s.Standard()[catalog.StandardPowerPlant], pp2, false)

	assert.Equal(t, pp2.PGen, s.PowerAvailable())
	assert.InDelta(t, 280+pp2.Mass, s.UnladenMass(), delta)

	// Clearing empties the slot
	s.Use(s.Standard()[catalog.StandardPowerPlant], nil, false)
	assert.Equal(t, 0.0, s.PowerAvailable())
	assert.InDelta(t, 280.0, s.UnladenMass(), delta)

	assertAggregatesClose(t, s)
}

func TestUseIsIdempotent(t *testing.T) {
	cat, s := newAsp(t)

	rack := cat.Internal("4r")
	require.NotNil(t, rack)
	s.Use(s.Internal()[0], rack, false)
	before := s.Snapshot()

	s.Use(s.Internal()[0], rack, false)
	assert.Equal(t, before, s.Snapshot())
}

func TestUniqueInternalGroupEviction(t *testing.T) {
	cat, s := newAsp(t)

	sg := cat.Internal("4g")
	require.NotNil(t, sg)
	s.Use(s.Internal()[2], sg, false)
	assert.Equal(t, "4g", s.Internal()[2].ID())

	// A prismatic generator evicts the standard one: both variants count
	// as one group
	psg := cat.Internal("4q")
	require.NotNil(t, psg)
	s.Use(s.Internal()[1], psg, false)

	assert.True(t, s.Internal()[2].IsEmpty())
	assert.Equal(t, "4q", s.Internal()[1].ID())
	assert.InDelta(t, 280+psg.Mass, s.UnladenMass(), delta)

	// Non-unique groups stack freely
	rack := cat.Internal("2r")
	require.NotNil(t, rack)
	s.Use(s.Internal()[3], rack, false)
	s.Use(s.Internal()[5], rack, false)
	assert.Equal(t, "2r", s.Internal()[3].ID())
	assert.Equal(t, "2r", s.Internal()[5].ID())

	assertAggregatesClose(t, s)
}

func TestFuelAndCargoCapacity(t *testing.T) {
	cat, s := newAsp(t)

	tank := cat.Standard(catalog.StandardFuelTank, "5C")
	require.NotNil(t, tank)
	s.Use(s.Standard()[catalog.StandardFuelTank], tank, false)
	assert.Equal(t, 32.0, s.FuelCapacity())

	rack := cat.Internal("6r")
	require.NotNil(t, rack)
	s.Use(s.Internal()[0], rack, false)
	assert.Equal(t, 64.0, s.CargoCapacity())

	assert.InDelta(t, s.UnladenMass()+32+64, s.LadenMass(), delta)
	assertAggregatesClose(t, s)
}

func TestBulkheadArmour(t *testing.T) {
	cat, s := newAsp(t)

	assert.Equal(t, 0.0, s.Armour())

	reactive := cat.Bulkheads("asp", 2)
	require.NotNil(t, reactive)
	s.UseBulkhead(reactive, false)

	// round(324 * 1.945) = 630
	assert.Equal(t, 630.0, s.Armour())
	assert.Equal(t, 2, s.BulkheadIndex())

	hr := cat.Internal("3h")
	require.NotNil(t, hr)
	s.Use(s.Internal()[4], hr, false)
	assert.Equal(t, 630.0+260, s.Armour())

	assertAggregatesClose(t, s)
}

func TestBulkheadSwapReplacesPrevious(t *testing.T) {
	cat, s := newAsp(t)

	s.UseBulkhead(cat.Bulkheads("asp", 3), false)
	assert.Equal(t, 3, s.BulkheadIndex())
	assert.InDelta(t, 315.0, s.UnladenMass(), delta)

	s.UseBulkhead(cat.Bulkheads("asp", 1), false)
	assert.Equal(t, 1, s.BulkheadIndex())
	assert.InDelta(t, 280.0, s.UnladenMass(), delta)
	// round(324 * 1.4) = 454
	assert.Equal(t, 454.0, s.Armour())

	// Remounting the fitted variant changes nothing
	s.UseBulkhead(cat.Bulkheads("asp", 1), false)
	assert.Equal(t, 1, s.BulkheadIndex())
	assert.InDelta(t, 280.0, s.UnladenMass(), delta)

	assertAggregatesClose(t, s)
}

func TestUnladenRangeUsesFSDMaxFuel(t *testing.T) {
	cat, s := newAsp(t)

	fsdMod := cat.Standard(catalog.StandardFrameShiftDrive, "5A")
	require.NotNil(t, fsdMod)
	s.Use(s.Standard()[catalog.StandardFrameShiftDrive], fsdMod, false)
	s.Use(s.Standard()[catalog.StandardFuelTank], cat.Standard(catalog.StandardFuelTank, "2C"), false)

	// The tank holds less than one max-range jump's worth of fuel; the
	// unladen figure still assumes a full jump's fuel on board.
	fsd := fsdMod.FSD
	require.Less(t, s.FuelCapacity(), fsd.MaxFuel)

	want := ship.JumpRange(s.UnladenMass()+fsd.MaxFuel, fsd, fsd.MaxFuel)
	assert.InDelta(t, want, s.UnladenRange(), delta)
	assertAggregatesClose(t, s)
}

func TestPriorityBandSumsAreMonotonic(t *testing.T) {
	cat, s := newAsp(t)

	s.Use(s.Standard()[catalog.StandardPowerPlant], cat.Standard(catalog.StandardPowerPlant, "4A"), false)
	s.Use(s.Standard()[catalog.StandardThrusters], cat.Standard(catalog.StandardThrusters, "5A"), false)
	s.Use(s.Hardpoints()[0], cat.Hardpoint("1l"), false)
	s.Use(s.Hardpoints()[4], cat.Hardpoint("0s"), false)
	s.Use(s.Internal()[2], cat.Internal("4g"), false)

	s.ChangePriority(s.Standard()[catalog.StandardThrusters], 1)
	s.ChangePriority(s.Hardpoints()[0], 3)
	s.ChangePriority(s.Internal()[2], 2)

	bands := s.PriorityBands()
	for i := 1; i < ship.PriorityBandCount; i++ {
		assert.GreaterOrEqual(t, bands[i].RetractedSum, bands[i-1].RetractedSum, "band %d", i)
		assert.GreaterOrEqual(t, bands[i].DeployedSum, bands[i-1].DeployedSum, "band %d", i)
	}
	for i := 0; i < ship.PriorityBandCount; i++ {
		assert.GreaterOrEqual(t, bands[i].DeployedSum, bands[i].RetractedSum, "band %d", i)
	}

	assert.InDelta(t, bands[ship.PriorityBandCount-1].RetractedSum, s.PowerRetracted(), delta)
	assert.InDelta(t, bands[ship.PriorityBandCount-1].DeployedSum, s.PowerDeployed(), delta)
	assertAggregatesClose(t, s)
}

func TestChangePriorityBounds(t *testing.T) {
	cat, s := newAsp(t)

	slot := s.Internal()[2]
	s.Use(slot, cat.Internal("4g"), false)
	before := s.Snapshot()

	assert.False(t, s.ChangePriority(slot, -1))
	assert.False(t, s.ChangePriority(slot, ship.PriorityBandCount))
	assert.Equal(t, 0, slot.Priority())
	assert.Equal(t, before, s.Snapshot())

	assert.True(t, s.ChangePriority(slot, 4))
	assert.Equal(t, 4, slot.Priority())
	assertAggregatesClose(t, s)
}

func TestWeaponPowerIsDeployedOnly(t *testing.T) {
	cat, s := newAsp(t)

	laser := cat.Hardpoint("2l")
	require.NotNil(t, laser)
	s.Use(s.Hardpoints()[0], cat.Hardpoint("1l"), false)

	// The hatch is the only retracted draw; the weapon draws deployed
	assert.InDelta(t, 0.6, s.PowerRetracted(), delta)
	assert.InDelta(t, 0.6+0.6, s.PowerDeployed(), delta)

	// A passive utility module draws retracted power even on a hardpoint
	s.Use(s.Hardpoints()[4], cat.Hardpoint("0s"), false)
	assert.InDelta(t, 0.6+0.2, s.PowerRetracted(), delta)
	assertAggregatesClose(t, s)
}

func TestSetSlotEnabled(t *testing.T) {
	cat, s := newAsp(t)

	s.Use(s.Internal()[2], cat.Internal("4g"), false)
	s.Use(s.Hardpoints()[4], cat.Hardpoint("1s"), false)
	require.Greater(t, s.ShieldStrength(), 0.0)
	withBooster := s.ShieldStrength()

	booster := s.Hardpoints()[4]
	s.SetSlotEnabled(booster, false)
	assert.InDelta(t, 1.0, s.ShieldMultiplier(), delta)
	assert.Less(t, s.ShieldStrength(), withBooster)

	// Disabling the generator drops the shield entirely
	s.SetSlotEnabled(s.Internal()[2], false)
	assert.Equal(t, 0.0, s.ShieldStrength())

	s.SetSlotEnabled(s.Internal()[2], true)
	s.SetSlotEnabled(booster, true)
	assert.InDelta(t, withBooster, s.ShieldStrength(), delta)
	assertAggregatesClose(t, s)
}

func TestDisabledWeaponDropsDps(t *testing.T) {
	cat, s := newAsp(t)

	laser := cat.Hardpoint("1l")
	s.Use(s.Hardpoints()[0], laser, false)
	assert.InDelta(t, laser.DPS, s.TotalDps(), delta)

	s.SetSlotEnabled(s.Hardpoints()[0], false)
	assert.Equal(t, 0.0, s.TotalDps())
	assert.InDelta(t, 0.6, s.PowerDeployed(), delta)
	assertAggregatesClose(t, s)
}

func TestGetSlotStatus(t *testing.T) {
	cat, s := newAsp(t)

	empty := s.Internal()[5]
	assert.Equal(t, ship.StatusNotApplicable, s.GetSlotStatus(empty, false))
	assert.Equal(t, ship.StatusNotApplicable, s.GetSlotStatus(empty, true))

	// A weapon has no retracted state
	s.Use(s.Hardpoints()[0], cat.Hardpoint("1l"), false)
	weapon := s.Hardpoints()[0]
	assert.Equal(t, ship.StatusNotApplicable, s.GetSlotStatus(weapon, false))

	// No power plant mounted: anything powered is offline
	assert.Equal(t, ship.StatusOffline, s.GetSlotStatus(weapon, true))

	s.Use(s.Standard()[catalog.StandardPowerPlant], cat.Standard(catalog.StandardPowerPlant, "4A"), false)
	assert.Equal(t, ship.StatusOnline, s.GetSlotStatus(weapon, true))

	s.SetSlotEnabled(weapon, false)
	assert.Equal(t, ship.StatusDisabled, s.GetSlotStatus(weapon, true))
}

func TestGetSlotStatusOffline(t *testing.T) {
	cat, s := newAsp(t)

	// Smallest power plant, then stack draw just past its output
	s.Use(s.Standard()[catalog.StandardPowerPlant], cat.Standard(catalog.StandardPowerPlant, "2E"), false)
	s.Use(s.Standard()[catalog.StandardThrusters], cat.Standard(catalog.StandardThrusters, "5A"), false)
	s.Use(s.Standard()[catalog.StandardFrameShiftDrive], cat.Standard(catalog.StandardFrameShiftDrive, "5A"), false)
	s.Use(s.Internal()[0], cat.Internal("3g"), false)
	s.Use(s.Internal()[1], cat.Internal("5f"), false)

	require.Greater(t, s.PowerRetracted(), s.PowerAvailable())

	// Push the scoop into the last band: its cumulative sum crosses the
	// available power while band 0 stays within it
	scoop := s.Internal()[1]
	require.True(t, s.ChangePriority(scoop, 4))
	assert.Equal(t, ship.StatusOffline, s.GetSlotStatus(scoop, false))
	assert.Equal(t, ship.StatusOnline, s.GetSlotStatus(s.Internal()[0], false))
}

func TestCostInclusionToggles(t *testing.T) {
	cat, s := newAsp(t)

	rack := cat.Internal("4r")
	s.Use(s.Internal()[0], rack, false)
	total := s.TotalCost()

	slot := s.Internal()[0]
	s.SetCostIncluded(slot, false)
	assert.InDelta(t, total-rack.Cost, s.TotalCost(), delta)
	s.SetCostIncluded(slot, true)
	assert.InDelta(t, total, s.TotalCost(), delta)

	s.SetHullCostIncluded(false)
	assert.InDelta(t, total-6135660, s.TotalCost(), delta)
	s.SetHullCostIncluded(true)
	assert.InDelta(t, total, s.TotalCost(), delta)
	assertAggregatesClose(t, s)
}

func TestApplyDiscounts(t *testing.T) {
	cat, s := newAsp(t)

	pp := cat.Standard(catalog.StandardPowerPlant, "4A")
	rack := cat.Internal("4r")
	s.Use(s.Standard()[catalog.StandardPowerPlant], pp, false)
	s.Use(s.Internal()[0], rack, false)

	s.ApplyDiscounts(0.9, 0.85)

	want := 6135660*0.9 + pp.Cost*0.85 + rack.Cost*0.85
	assert.InDelta(t, want, s.TotalCost(), delta)
	assert.InDelta(t, rack.Cost*0.85, s.Internal()[0].DiscountedCost(), delta)

	// New mounts pick up the active discount
	laser := cat.Hardpoint("0l")
	s.Use(s.Hardpoints()[0], laser, false)
	assert.InDelta(t, want+laser.Cost*0.85, s.TotalCost(), delta)

	// Excluded slots rejoin the total at their discounted cost
	s.SetCostIncluded(s.Internal()[0], false)
	s.SetCostIncluded(s.Internal()[0], true)
	assert.InDelta(t, want+laser.Cost*0.85, s.TotalCost(), delta)

	s.ApplyDiscounts(1, 1)
	assert.InDelta(t, 6135660+pp.Cost+rack.Cost+laser.Cost, s.TotalCost(), delta)
	assertAggregatesClose(t, s)
}

func TestFindInternalByGroup(t *testing.T) {
	cat, s := newAsp(t)

	assert.Nil(t, s.FindInternalByGroup(catalog.GroupShieldGenerator))

	s.Use(s.Internal()[1], cat.Internal("4q"), false)
	slot := s.FindInternalByGroup(catalog.GroupShieldGenerator)
	require.NotNil(t, slot)
	assert.Equal(t, "4q", slot.ID())
}

func TestRestrictedSlotEligibility(t *testing.T) {
	_, s := newAsp(t)

	restricted := s.Internal()[4]
	assert.True(t, restricted.Accepts(catalog.GroupCargoRack))
	assert.True(t, restricted.Accepts(catalog.GroupHullReinforcement))
	assert.False(t, restricted.Accepts(catalog.GroupShieldGenerator))

	// Unrestricted slots accept everything
	assert.True(t, s.Internal()[0].Accepts(catalog.GroupShieldGenerator))
}

func TestRecomputeAgreesAfterMutationStorm(t *testing.T) {
	cat, s := newAsp(t)

	s.UseBulkhead(cat.Bulkheads("asp", 3), false)
	s.Use(s.Standard()[catalog.StandardPowerPlant], cat.Standard(catalog.StandardPowerPlant, "4A"), false)
	s.Use(s.Standard()[catalog.StandardThrusters], cat.Standard(catalog.StandardThrusters, "5A"), false)
	s.Use(s.Standard()[catalog.StandardFrameShiftDrive], cat.Standard(catalog.StandardFrameShiftDrive, "5A"), false)
	s.Use(s.Standard()[catalog.StandardLifeSupport], cat.Standard(catalog.StandardLifeSupport, "3E"), false)
	s.Use(s.Standard()[catalog.StandardPowerDistributor], cat.Standard(catalog.StandardPowerDistributor, "4E"), false)
	s.Use(s.Standard()[catalog.StandardSensors], cat.Standard(catalog.StandardSensors, "3E"), false)
	s.Use(s.Standard()[catalog.StandardFuelTank], cat.Standard(catalog.StandardFuelTank, "5C"), false)
	s.Use(s.Hardpoints()[0], cat.Hardpoint("1l"), false)
	s.Use(s.Hardpoints()[1], cat.Hardpoint("1b"), false)
	s.Use(s.Hardpoints()[4], cat.Hardpoint("1s"), false)
	s.Use(s.Internal()[0], cat.Internal("6r"), false)
	s.Use(s.Internal()[1], cat.Internal("5g"), false)
	s.Use(s.Internal()[2], cat.Internal("4f"), false)
	s.Use(s.Internal()[4], cat.Internal("3h"), false)

	// Churn: replace, evict, toggle, reprioritise, discount
	s.Use(s.Internal()[1], cat.Internal("4q"), false)
	s.Use(s.Internal()[3], cat.Internal("3g"), false) // evicts 4q
	s.Use(s.Hardpoints()[1], nil, false)
	s.SetSlotEnabled(s.Hardpoints()[4], false)
	s.SetSlotEnabled(s.Hardpoints()[4], true)
	s.ChangePriority(s.Internal()[3], 2)
	s.ChangePriority(s.Hardpoints()[0], 1)
	s.SetCostIncluded(s.Internal()[0], false)
	s.ApplyDiscounts(0.875, 0.9)
	s.UseBulkhead(cat.Bulkheads("asp", 1), false)

	assert.Equal(t, 1, s.BulkheadIndex(), "second bulkhead swap should have taken effect")
	assert.True(t, s.Internal()[1].IsEmpty(), "prismatic generator should have been evicted")
	assertAggregatesClose(t, s)
}
