package ship

import (
	"github.com/edcd-tools/outfitter-go/internal/domain/catalog"
	"github.com/edcd-tools/outfitter-go/pkg/utils"
)

// Loadout is a full slot assignment: the resolved module for every slot
// in serialization order, nil for empty slots. The build codec produces
// one on decode; BuildWith consumes it.
type Loadout struct {
	Bulkheads  *catalog.Module
	Standard   [catalog.StandardSlotCount]*catalog.Module
	Hardpoints []*catalog.Module
	Internal   []*catalog.Module
}

// BuildWith atomically replaces the ship's entire state with the given
// loadout. All cumulative aggregates are reset to base values, the
// priority and enabled sequences (slot order: cargo hatch, standard,
// hardpoints, internal; defaults priority 0, enabled) are applied, then
// every module is mounted with the stat cascade deferred and run once at
// the end. Aggregates therefore always reflect the complete assignment,
// never a partially-applied intermediate state.
func (s *Ship) BuildWith(l *Loadout, priorities []int, enabled []bool) {
	for i := range s.priorityBands {
		s.priorityBands[i] = PriorityBand{}
	}
	s.cargoCapacity = 0
	s.fuelCapacity = 0
	s.armourAdded = 0
	s.totalDps = 0
	s.powerAvailable = 0
	s.powerRetracted = 0
	s.powerDeployed = 0
	s.shieldMultiplier = 1
	s.armourMultiplier = 0
	s.shieldStrength = 0
	s.unladenMass = s.properties.HullMass
	s.ladenMass = s.unladenMass
	s.armour = 0

	s.discountedHullCost = s.properties.HullCost * s.shipCostMultiplier
	s.totalCost = 0
	if s.hullIncCost {
		s.totalCost = s.discountedHullCost
	}

	for _, slot := range s.allSlots() {
		slot.m = nil
		slot.discountedCost = 0
	}

	idx := 0
	assign := func(slot *Slot) {
		slot.priority = 0
		slot.enabled = true
		if idx < len(priorities) {
			slot.priority = utils.Clamp(priorities[idx], 0, PriorityBandCount-1)
		}
		if idx < len(enabled) {
			slot.enabled = enabled[idx]
		}
		idx++
	}
	assign(s.cargoHatch)
	for _, slot := range s.standard {
		assign(slot)
	}
	for _, slot := range s.hardpoints {
		assign(slot)
	}
	for _, slot := range s.internal {
		assign(slot)
	}

	s.Use(s.cargoHatch, s.hatchModule, true)
	if l.Bulkheads != nil {
		s.UseBulkhead(l.Bulkheads, true)
	}
	for i, m := range l.Standard {
		if m != nil {
			s.Use(s.standard[i], m, true)
		}
	}
	for i, m := range l.Hardpoints {
		if m != nil && i < len(s.hardpoints) {
			s.Use(s.hardpoints[i], m, true)
		}
	}
	for i, m := range l.Internal {
		if m != nil && i < len(s.internal) {
			s.Use(s.internal[i], m, true)
		}
	}

	s.updatePower()
	s.updateTopSpeed()
	s.updateJumpStats()
	s.updateShieldStrength()
}

// allSlots returns every slot including the bulkheads and cargo hatch
func (s *Ship) allSlots() []*Slot {
	slots := make([]*Slot, 0, 2+len(s.standard)+len(s.hardpoints)+len(s.internal))
	slots = append(slots, s.bulkheads, s.cargoHatch)
	slots = append(slots, s.standard...)
	slots = append(slots, s.hardpoints...)
	slots = append(slots, s.internal...)
	return slots
}
