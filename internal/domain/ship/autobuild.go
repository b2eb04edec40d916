package ship

import (
	"math"

	"github.com/edcd-tools/outfitter-go/internal/domain/catalog"
)

// maxFixedPointIterations bounds the lightest-build convergence loop.
// Thruster and power plant choice feed back into each other through
// total mass, but the candidate sets are tiny and monotone so the loop
// settles within a few rounds.
const maxFixedPointIterations = 16

// UseStandard fills every core slot with the largest module of the given
// rating that fits. Slot types without a module of that rating are left
// untouched.
func (s *Ship) UseStandard(c *catalog.Catalog, rating string) {
	for i, slot := range s.standard {
		m := c.FindStandard(catalog.StandardIndex(i), slot.maxClass, rating)
		if m != nil {
			s.Use(slot, m, true)
		}
	}
	s.updatePower()
	s.updateTopSpeed()
	s.updateJumpStats()
	s.updateShieldStrength()
}

// UseLightestStandard builds the lightest viable core fit: lightest
// armour, supplied or lightest FSD, life support, power distributor,
// sensors and fuel tank, then iterates thruster and power plant choice
// to a fixed point. The loop exists because thruster mass changes the
// laden mass the power plant sizing sees, and vice versa.
func (s *Ship) UseLightestStandard(c *catalog.Catalog, overrides map[catalog.StandardIndex]*catalog.Module) {
	if bh := c.Bulkheads(s.id, 0); bh != nil {
		s.UseBulkhead(bh, true)
	}

	fixed := []catalog.StandardIndex{
		catalog.StandardFrameShiftDrive,
		catalog.StandardLifeSupport,
		catalog.StandardPowerDistributor,
		catalog.StandardSensors,
		catalog.StandardFuelTank,
	}
	for _, i := range fixed {
		m := overrides[i]
		if m == nil {
			m = lightest(c.StandardModules(i), s.standard[i].maxClass, nil)
		}
		if m != nil {
			s.Use(s.standard[i], m, true)
		}
	}

	thSlot := s.standard[catalog.StandardThrusters]
	ppSlot := s.standard[catalog.StandardPowerPlant]
	for iter := 0; iter < maxFixedPointIterations; iter++ {
		changed := false

		th := lightest(c.StandardModules(catalog.StandardThrusters), thSlot.maxClass,
			func(m *catalog.Module) bool {
				return m.Thrusters != nil && m.Thrusters.MaxMass >= s.ladenMass
			})
		if th != nil && thSlot.ID() != th.ID {
			s.Use(thSlot, th, true)
			changed = true
		}

		s.updatePower()
		required := math.Max(s.powerRetracted, s.powerDeployed)
		pp := lightest(c.StandardModules(catalog.StandardPowerPlant), ppSlot.maxClass,
			func(m *catalog.Module) bool {
				return m.PGen >= required
			})
		if pp != nil && ppSlot.ID() != pp.ID {
			s.Use(ppSlot, pp, true)
			changed = true
		}

		if !changed {
			break
		}
	}

	s.updatePower()
	s.updateTopSpeed()
	s.updateJumpStats()
	s.updateShieldStrength()
}

// lightest returns the lowest-mass module no larger than maxClass that
// satisfies pred, or nil. Ties go to the earliest catalog entry.
func lightest(candidates []*catalog.Module, maxClass int, pred func(*catalog.Module) bool) *catalog.Module {
	var best *catalog.Module
	for _, m := range candidates {
		if m.Class > maxClass {
			continue
		}
		if pred != nil && !pred(m) {
			continue
		}
		if best == nil || m.Mass < best.Mass {
			best = m
		}
	}
	return best
}
