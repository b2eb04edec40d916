package ship

import (
	"math"

	"github.com/edcd-tools/outfitter-go/internal/domain/catalog"
	"github.com/edcd-tools/outfitter-go/pkg/utils"
)

// Ship is the aggregate root of a build under edit: it owns every slot,
// maintains the power-band ledger and keeps all derived stats current as
// modules are mounted, toggled and reprioritised.
//
// Invariants:
//   - A slot's module id and resolved module are one field; they cannot drift
//   - At most one internal slot holds a module from each unique group
//     (shield generators count as one group across both variants)
//   - unladenMass always equals hull mass plus every mounted module's mass
//   - ladenMass = unladenMass + cargoCapacity + fuelCapacity
//   - Band sums are cumulative over ascending priority; a band's deployed
//     sum includes the retracted draw of its own and all lower bands
//
// Ship does not re-validate slot capacity on the hot mutation path; the
// validation layer guarding decode and import rejects oversized modules
// before they reach Use.
type Ship struct {
	id         string
	properties catalog.ShipProperties

	bulkheads   *Slot
	standard    []*Slot
	hardpoints  []*Slot
	internal    []*Slot
	cargoHatch  *Slot
	hatchModule *catalog.Module

	priorityBands [PriorityBandCount]PriorityBand

	shipCostMultiplier   float64
	moduleCostMultiplier float64
	hullIncCost          bool
	discountedHullCost   float64

	armourMultiplier float64
	shieldMultiplier float64

	// cached aggregates, maintained incrementally by updateStats
	unladenMass    float64
	ladenMass      float64
	cargoCapacity  float64
	fuelCapacity   float64
	totalCost      float64
	totalDps       float64
	armourAdded    float64
	armour         float64
	shieldStrength float64
	powerAvailable float64
	powerRetracted float64
	powerDeployed  float64
	topSpeed       float64
	topBoost       float64

	unladenRange      float64
	fullTankRange     float64
	ladenRange        float64
	unladenTotalRange float64
	ladenTotalRange   float64
	maxJumpCount      int
}

// New constructs an empty ship from a hull's catalog entry. Every slot
// starts empty, enabled, priority 0; only the synthetic cargo hatch is
// pre-mounted.
func New(spec *catalog.ShipSpec) *Ship {
	s := &Ship{
		id:                   spec.ID,
		properties:           spec.Properties,
		shipCostMultiplier:   1,
		moduleCostMultiplier: 1,
		hullIncCost:          true,
		hatchModule:          &catalog.Module{ID: "ch", Group: catalog.GroupCargoHatch, Power: 0.6},
	}

	s.bulkheads = newSlot(catalog.SlotDef{MaxClass: 8}, CatStandard)
	s.standard = make([]*Slot, catalog.StandardSlotCount)
	for i, class := range spec.Slots.Standard {
		s.standard[i] = newSlot(catalog.SlotDef{MaxClass: class}, CatStandard)
	}
	s.hardpoints = make([]*Slot, len(spec.Slots.Hardpoints))
	for i, def := range spec.Slots.Hardpoints {
		s.hardpoints[i] = newSlot(def, CatHardpoint)
	}
	s.internal = make([]*Slot, len(spec.Slots.Internal))
	for i, def := range spec.Slots.Internal {
		s.internal[i] = newSlot(def, CatInternal)
	}
	s.cargoHatch = newSlot(catalog.SlotDef{}, CatStandard)

	s.BuildWith(&Loadout{}, nil, nil)
	return s
}

// Identity and slot accessors

func (s *Ship) ID() string {
	return s.id
}

func (s *Ship) Name() string {
	return s.properties.Name
}

func (s *Ship) Properties() catalog.ShipProperties {
	return s.properties
}

func (s *Ship) BulkheadsSlot() *Slot {
	return s.bulkheads
}

// BulkheadIndex returns the mounted armour variant index, 0 when none
func (s *Ship) BulkheadIndex() int {
	if s.bulkheads.m == nil {
		return 0
	}
	return s.bulkheads.m.Index
}

func (s *Ship) Standard() []*Slot {
	return s.standard
}

func (s *Ship) Hardpoints() []*Slot {
	return s.hardpoints
}

func (s *Ship) Internal() []*Slot {
	return s.internal
}

func (s *Ship) CargoHatch() *Slot {
	return s.cargoHatch
}

// PriorityBands returns the current power-draw ledger
func (s *Ship) PriorityBands() [PriorityBandCount]PriorityBand {
	return s.priorityBands
}

// Use mounts a module in a slot, or clears it when m is nil. Re-mounting
// the already-mounted module is a no-op. Mounting a unique-group internal
// module first evicts any other internal slot holding one from the same
// group. With preventUpdate the derived-stat cascade is deferred; callers
// doing bulk rebuilds run it once at the end.
func (s *Ship) Use(slot *Slot, m *catalog.Module, preventUpdate bool) {
	if slot.ID() == moduleID(m) {
		return
	}

	if slot.cat == CatInternal && m != nil && m.Group.IsUniqueInternal() {
		for _, other := range s.internal {
			if other == slot || other.m == nil {
				continue
			}
			if sameUniqueGroup(other.m.Group, m.Group) {
				old := other.m
				other.m = nil
				other.discountedCost = 0
				s.updateStats(other, nil, old, preventUpdate)
			}
		}
	}

	old := slot.m
	slot.m = m
	slot.discountedCost = 0
	if m != nil {
		slot.discountedCost = m.Cost * s.moduleCostMultiplier
	}
	s.updateStats(slot, m, old, preventUpdate)
}

// UseBulkhead mounts one of the hull's five armour variants. Remounting
// the variant already fitted is a no-op; the guard keys on the variant
// index, which identifies a bulkhead within its hull.
func (s *Ship) UseBulkhead(m *catalog.Module, preventUpdate bool) {
	if m == nil || (s.bulkheads.m != nil && s.bulkheads.m.Index == m.Index) {
		return
	}
	old := s.bulkheads.m
	s.bulkheads.m = m
	s.bulkheads.discountedCost = m.Cost * s.moduleCostMultiplier
	s.armourMultiplier = m.ArmourMul
	s.updateStats(s.bulkheads, m, old, preventUpdate)
}

// updateStats applies the stat delta of swapping oldM for newM in slot:
// reverses the outgoing module's contributions, applies the incoming
// module's, recomputes laden mass and armour, then cascades the derived
// updates unless deferred.
func (s *Ship) updateStats(slot *Slot, newM, oldM *catalog.Module, preventUpdate bool) {
	powerChange := slot == s.cargoHatch

	if oldM != nil {
		s.applyModule(slot, oldM, -1, &powerChange)
	}
	if newM != nil {
		s.applyModule(slot, newM, 1, &powerChange)
	}

	s.ladenMass = s.unladenMass + s.cargoCapacity + s.fuelCapacity
	s.armour = s.armourAdded + utils.Round(s.properties.BaseArmour*s.armourMultiplier, 0)

	if !preventUpdate {
		if powerChange {
			s.updatePower()
		}
		s.updateTopSpeed()
		s.updateJumpStats()
		s.updateShieldStrength()
	}
}

// applyModule adds (sign +1) or removes (sign -1) one module's
// contributions to the aggregates
func (s *Ship) applyModule(slot *Slot, m *catalog.Module, sign float64, powerChange *bool) {
	switch m.Group {
	case catalog.GroupFuelTank:
		s.fuelCapacity += sign * m.Capacity
	case catalog.GroupCargoRack:
		s.cargoCapacity += sign * m.Capacity
	case catalog.GroupHullReinforcement:
		s.armourAdded += sign * m.ArmourAdd
	case catalog.GroupShieldBooster:
		if slot.enabled {
			s.shieldMultiplier += sign * m.ShieldMul
		}
	case catalog.GroupPowerPlant:
		if sign > 0 {
			s.powerAvailable = m.PGen
		} else {
			s.powerAvailable = 0
		}
	}

	if slot.incCost && m.Cost > 0 {
		s.totalCost += sign * m.Cost * s.moduleCostMultiplier
	}
	if m.Power > 0 && slot.enabled {
		*powerChange = true
		band := &s.priorityBands[slot.priority]
		if s.weaponDraw(slot, m) {
			band.Deployed += sign * m.Power
		} else {
			band.Retracted += sign * m.Power
		}
	}
	if m.DPS > 0 && slot.enabled {
		s.totalDps += sign * m.DPS
	}
	s.unladenMass += sign * m.Mass
}

// weaponDraw reports whether module m in slot draws deployed power
func (s *Ship) weaponDraw(slot *Slot, m *catalog.Module) bool {
	return slot.cat == CatHardpoint && !m.Passive
}

// SetSlotEnabled powers a slot's module on or off, moving its power,
// dps and shield contributions in or out of the aggregates
func (s *Ship) SetSlotEnabled(slot *Slot, enabled bool) {
	if slot.enabled == enabled {
		return
	}
	slot.enabled = enabled

	m := slot.m
	if m == nil {
		return
	}

	sign := -1.0
	if enabled {
		sign = 1.0
	}

	if m.Power > 0 {
		band := &s.priorityBands[slot.priority]
		if s.weaponDraw(slot, m) {
			band.Deployed += sign * m.Power
		} else {
			band.Retracted += sign * m.Power
		}
	}
	if m.DPS > 0 {
		s.totalDps += sign * m.DPS
	}
	if m.Group == catalog.GroupShieldBooster {
		s.shieldMultiplier += sign * m.ShieldMul
	}
	if m.Group == catalog.GroupShieldBooster || m.Group.IsShieldGenerator() {
		s.updateShieldStrength()
	}
	s.updatePower()
}

// ChangePriority moves a slot to another power band. Returns false and
// mutates nothing when the priority is out of bounds; this is a routine,
// caller-checkable condition.
func (s *Ship) ChangePriority(slot *Slot, priority int) bool {
	if priority < 0 || priority >= PriorityBandCount {
		return false
	}
	if priority == slot.priority {
		return true
	}

	if slot.enabled && slot.m != nil && slot.m.Power > 0 {
		oldBand := &s.priorityBands[slot.priority]
		newBand := &s.priorityBands[priority]
		if s.weaponDraw(slot, slot.m) {
			oldBand.Deployed -= slot.m.Power
			newBand.Deployed += slot.m.Power
		} else {
			oldBand.Retracted -= slot.m.Power
			newBand.Retracted += slot.m.Power
		}
		slot.priority = priority
		s.updatePower()
		return true
	}

	slot.priority = priority
	return true
}

// SetCostIncluded toggles whether a slot's module cost counts toward
// the ship total
func (s *Ship) SetCostIncluded(slot *Slot, included bool) {
	if slot.incCost == included {
		return
	}
	slot.incCost = included
	if slot.m != nil {
		if included {
			s.totalCost += slot.discountedCost
		} else {
			s.totalCost -= slot.discountedCost
		}
	}
}

// SetHullCostIncluded toggles whether the hull cost counts toward the
// ship total
func (s *Ship) SetHullCostIncluded(included bool) {
	if s.hullIncCost == included {
		return
	}
	s.hullIncCost = included
	if included {
		s.totalCost += s.discountedHullCost
	} else {
		s.totalCost -= s.discountedHullCost
	}
}

// HullIncCost reports whether the hull cost counts toward the ship total
func (s *Ship) HullIncCost() bool {
	return s.hullIncCost
}

// ApplyDiscounts sets the hull and module cost multipliers, recomputes
// every cached discounted cost and resums the ship total from scratch
func (s *Ship) ApplyDiscounts(shipMultiplier, moduleMultiplier float64) {
	s.shipCostMultiplier = shipMultiplier
	s.moduleCostMultiplier = moduleMultiplier

	s.discountedHullCost = s.properties.HullCost * shipMultiplier
	total := 0.0
	if s.hullIncCost {
		total += s.discountedHullCost
	}
	for _, slot := range s.costSlots() {
		slot.discountedCost = 0
		if slot.m != nil {
			slot.discountedCost = slot.m.Cost * moduleMultiplier
			if slot.incCost {
				total += slot.discountedCost
			}
		}
	}
	s.totalCost = total
}

// costSlots returns every cost-bearing slot: bulkheads plus the three
// real slot arrays. The cargo hatch is free.
func (s *Ship) costSlots() []*Slot {
	slots := make([]*Slot, 0, 1+len(s.standard)+len(s.hardpoints)+len(s.internal))
	slots = append(slots, s.bulkheads)
	slots = append(slots, s.standard...)
	slots = append(slots, s.hardpoints...)
	slots = append(slots, s.internal...)
	return slots
}

// FindInternalByGroup returns the single internal slot holding a module
// of the given group, or nil. For either shield generator variant the
// slot holding whichever variant is mounted is returned.
func (s *Ship) FindInternalByGroup(group catalog.Group) *Slot {
	for _, slot := range s.internal {
		if slot.m == nil {
			continue
		}
		if slot.m.Group == group {
			return slot
		}
		if group.IsShieldGenerator() && slot.m.Group.IsShieldGenerator() {
			return slot
		}
	}
	return nil
}

// Derived stat updates

func (s *Ship) updateTopSpeed() {
	var th *catalog.ThrusterStats
	if m := s.standard[catalog.StandardThrusters].m; m != nil {
		th = m.Thrusters
	}
	speed := Speed(s.unladenMass+s.fuelCapacity, s.properties.Speed, s.properties.Boost, th)
	s.topSpeed = speed.FourPips
	s.topBoost = speed.Boost
}

func (s *Ship) updateShieldStrength() {
	s.shieldStrength = 0
	slot := s.FindInternalByGroup(catalog.GroupShieldGenerator)
	if slot != nil && slot.enabled {
		s.shieldStrength = ShieldStrength(s.properties.HullMass, s.properties.BaseShieldStrength,
			slot.m.Shield, s.shieldMultiplier)
	}
}

func (s *Ship) updateJumpStats() {
	var fsd *catalog.FSDStats
	if m := s.standard[catalog.StandardFrameShiftDrive].m; m != nil {
		fsd = m.FSD
	}
	if fsd == nil {
		s.unladenRange = 0
		s.fullTankRange = 0
		s.ladenRange = 0
		s.unladenTotalRange = 0
		s.ladenTotalRange = 0
		s.maxJumpCount = 0
		return
	}

	s.unladenRange = JumpRange(s.unladenMass+fsd.MaxFuel, fsd, fsd.MaxFuel)
	s.fullTankRange = JumpRange(s.unladenMass+s.fuelCapacity, fsd, fsd.MaxFuel)
	s.ladenRange = JumpRange(s.ladenMass, fsd, fsd.MaxFuel)
	s.unladenTotalRange = TotalJumpRange(s.unladenMass+s.fuelCapacity, fsd, s.fuelCapacity)
	s.ladenTotalRange = TotalJumpRange(s.ladenMass, fsd, s.fuelCapacity)
	s.maxJumpCount = 0
	if fsd.MaxFuel > 0 {
		s.maxJumpCount = int(math.Ceil(s.fuelCapacity / fsd.MaxFuel))
	}
}

func moduleID(m *catalog.Module) string {
	if m == nil {
		return ""
	}
	return m.ID
}

func sameUniqueGroup(a, b catalog.Group) bool {
	if a == b {
		return true
	}
	return a.IsShieldGenerator() && b.IsShieldGenerator()
}
