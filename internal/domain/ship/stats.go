package ship

import (
	"math"

	"github.com/edcd-tools/outfitter-go/internal/domain/catalog"
	"github.com/edcd-tools/outfitter-go/pkg/utils"
)

// Aggregate stat getters

func (s *Ship) UnladenMass() float64 {
	return s.unladenMass
}

func (s *Ship) LadenMass() float64 {
	return s.ladenMass
}

func (s *Ship) CargoCapacity() float64 {
	return s.cargoCapacity
}

func (s *Ship) FuelCapacity() float64 {
	return s.fuelCapacity
}

func (s *Ship) TotalCost() float64 {
	return s.totalCost
}

func (s *Ship) TotalDps() float64 {
	return s.totalDps
}

func (s *Ship) ArmourAdded() float64 {
	return s.armourAdded
}

func (s *Ship) Armour() float64 {
	return s.armour
}

func (s *Ship) ShieldMultiplier() float64 {
	return s.shieldMultiplier
}

func (s *Ship) ShieldStrength() float64 {
	return s.shieldStrength
}

func (s *Ship) PowerAvailable() float64 {
	return s.powerAvailable
}

func (s *Ship) PowerRetracted() float64 {
	return s.powerRetracted
}

func (s *Ship) PowerDeployed() float64 {
	return s.powerDeployed
}

func (s *Ship) TopSpeed() float64 {
	return s.topSpeed
}

func (s *Ship) TopBoost() float64 {
	return s.topBoost
}

func (s *Ship) UnladenRange() float64 {
	return s.unladenRange
}

func (s *Ship) FullTankRange() float64 {
	return s.fullTankRange
}

func (s *Ship) LadenRange() float64 {
	return s.ladenRange
}

func (s *Ship) UnladenTotalRange() float64 {
	return s.unladenTotalRange
}

func (s *Ship) LadenTotalRange() float64 {
	return s.ladenTotalRange
}

func (s *Ship) MaxJumpCount() int {
	return s.maxJumpCount
}

// Aggregates is a snapshot of every derived stat, used to compare the
// incrementally-maintained state against a from-scratch recomputation
type Aggregates struct {
	UnladenMass       float64
	LadenMass         float64
	CargoCapacity     float64
	FuelCapacity      float64
	TotalCost         float64
	TotalDps          float64
	ArmourAdded       float64
	Armour            float64
	ShieldMultiplier  float64
	ShieldStrength    float64
	PowerAvailable    float64
	PowerRetracted    float64
	PowerDeployed     float64
	TopSpeed          float64
	TopBoost          float64
	UnladenRange      float64
	FullTankRange     float64
	LadenRange        float64
	UnladenTotalRange float64
	LadenTotalRange   float64
	MaxJumpCount      int
	PriorityBands     [PriorityBandCount]PriorityBand
}

// Snapshot returns the current cached aggregates
func (s *Ship) Snapshot() Aggregates {
	return Aggregates{
		UnladenMass:       s.unladenMass,
		LadenMass:         s.ladenMass,
		CargoCapacity:     s.cargoCapacity,
		FuelCapacity:      s.fuelCapacity,
		TotalCost:         s.totalCost,
		TotalDps:          s.totalDps,
		ArmourAdded:       s.armourAdded,
		Armour:            s.armour,
		ShieldMultiplier:  s.shieldMultiplier,
		ShieldStrength:    s.shieldStrength,
		PowerAvailable:    s.powerAvailable,
		PowerRetracted:    s.powerRetracted,
		PowerDeployed:     s.powerDeployed,
		TopSpeed:          s.topSpeed,
		TopBoost:          s.topBoost,
		UnladenRange:      s.unladenRange,
		FullTankRange:     s.fullTankRange,
		LadenRange:        s.ladenRange,
		UnladenTotalRange: s.unladenTotalRange,
		LadenTotalRange:   s.ladenTotalRange,
		MaxJumpCount:      s.maxJumpCount,
		PriorityBands:     s.priorityBands,
	}
}

// Recompute derives every aggregate from the slot contents alone,
// ignoring the cached values. The incremental update path must always
// agree with this function; the tests hold the two to each other.
func Recompute(s *Ship) Aggregates {
	a := Aggregates{
		UnladenMass:      s.properties.HullMass,
		ShieldMultiplier: 1,
	}

	if s.hullIncCost {
		a.TotalCost = s.properties.HullCost * s.shipCostMultiplier
	}

	armourMultiplier := 0.0
	if s.bulkheads.m != nil {
		armourMultiplier = s.bulkheads.m.ArmourMul
	}

	for _, slot := range s.allSlots() {
		m := slot.m
		if m == nil {
			continue
		}
		a.UnladenMass += m.Mass
		if slot.incCost && m.Cost > 0 {
			a.TotalCost += m.Cost * s.moduleCostMultiplier
		}
		switch m.Group {
		case catalog.GroupFuelTank:
			a.FuelCapacity += m.Capacity
		case catalog.GroupCargoRack:
			a.CargoCapacity += m.Capacity
		case catalog.GroupHullReinforcement:
			a.ArmourAdded += m.ArmourAdd
		case catalog.GroupShieldBooster:
			if slot.enabled {
				a.ShieldMultiplier += m.ShieldMul
			}
		case catalog.GroupPowerPlant:
			a.PowerAvailable = m.PGen
		}
		if slot.enabled {
			if m.Power > 0 {
				if slot.deployedPower() {
					a.PriorityBands[slot.priority].Deployed += m.Power
				} else {
					a.PriorityBands[slot.priority].Retracted += m.Power
				}
			}
			if m.DPS > 0 {
				a.TotalDps += m.DPS
			}
		}
	}

	var retracted, deployed float64
	for i := range a.PriorityBands {
		band := &a.PriorityBands[i]
		retracted += band.Retracted
		deployed += band.Deployed + band.Retracted
		band.RetractedSum = retracted
		band.DeployedSum = deployed
	}
	a.PowerRetracted = retracted
	a.PowerDeployed = deployed

	a.LadenMass = a.UnladenMass + a.CargoCapacity + a.FuelCapacity
	a.Armour = a.ArmourAdded + utils.Round(s.properties.BaseArmour*armourMultiplier, 0)

	var th *catalog.ThrusterStats
	if m := s.standard[catalog.StandardThrusters].m; m != nil {
		th = m.Thrusters
	}
	speed := Speed(a.UnladenMass+a.FuelCapacity, s.properties.Speed, s.properties.Boost, th)
	a.TopSpeed = speed.FourPips
	a.TopBoost = speed.Boost

	if sgSlot := s.FindInternalByGroup(catalog.GroupShieldGenerator); sgSlot != nil && sgSlot.enabled {
		a.ShieldStrength = ShieldStrength(s.properties.HullMass, s.properties.BaseShieldStrength,
			sgSlot.m.Shield, a.ShieldMultiplier)
	}

	if m := s.standard[catalog.StandardFrameShiftDrive].m; m != nil && m.FSD != nil {
		fsd := m.FSD
		a.UnladenRange = JumpRange(a.UnladenMass+fsd.MaxFuel, fsd, fsd.MaxFuel)
		a.FullTankRange = JumpRange(a.UnladenMass+a.FuelCapacity, fsd, fsd.MaxFuel)
		a.LadenRange = JumpRange(a.LadenMass, fsd, fsd.MaxFuel)
		a.UnladenTotalRange = TotalJumpRange(a.UnladenMass+a.FuelCapacity, fsd, a.FuelCapacity)
		a.LadenTotalRange = TotalJumpRange(a.LadenMass, fsd, a.FuelCapacity)
		if fsd.MaxFuel > 0 {
			a.MaxJumpCount = int(math.Ceil(a.FuelCapacity / fsd.MaxFuel))
		}
	}

	return a
}
