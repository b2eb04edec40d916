package helpers

import (
	"math"

	"github.com/edcd-tools/outfitter-go/internal/domain/catalog"
)

// TestCatalog builds a small in-memory catalog with two hulls and enough
// module variety to exercise every slot category: core modules in several
// classes and ratings, fixed and gimballed weapons, utility mounts,
// cargo racks, fuel scoops, a refinery, shield generators of both kinds
// and hull reinforcements. Ids follow the production catalog convention
// of exactly two characters.
func TestCatalog() *catalog.Catalog {
	doc := &catalog.Document{
		Ships: map[string]*catalog.ShipSpec{
			"asp":      aspSpec(),
			"anaconda": anacondaSpec(),
		},
	}

	doc.Modules.Standard = [catalog.StandardSlotCount][]*catalog.Module{
		catalog.StandardPowerPlant:       powerPlants(),
		catalog.StandardThrusters:        thrusters(),
		catalog.StandardFrameShiftDrive:  frameShiftDrives(),
		catalog.StandardLifeSupport:      flatModules(catalog.GroupLifeSupport, 0.32),
		catalog.StandardPowerDistributor: flatModules(catalog.GroupPowerDistributor, 0.39),
		catalog.StandardSensors:          flatModules(catalog.GroupSensors, 0.27),
		catalog.StandardFuelTank:         fuelTanks(),
	}

	doc.Modules.Hardpoints = map[catalog.Group][]*catalog.Module{
		catalog.GroupPulseLaser: {
			{ID: "0l", Group: catalog.GroupPulseLaser, Name: "Pulse Laser", Class: 1, Rating: "F", Mass: 2, Power: 0.39, Cost: 2200, Mount: catalog.MountFixed, DPS: 7.9},
			{ID: "1l", Group: catalog.GroupPulseLaser, Name: "Pulse Laser", Class: 2, Rating: "E", Mass: 4, Power: 0.6, Cost: 17600, Mount: catalog.MountGimballed, DPS: 12.1},
			{ID: "2l", Group: catalog.GroupPulseLaser, Name: "Pulse Laser", Class: 3, Rating: "D", Mass: 8, Power: 0.9, Cost: 70400, Mount: catalog.MountFixed, DPS: 18.1},
		},
		catalog.GroupBeamLaser: {
			{ID: "0b", Group: catalog.GroupBeamLaser, Name: "Beam Laser", Class: 1, Rating: "E", Mass: 2, Power: 0.62, Cost: 37430, Mount: catalog.MountFixed, DPS: 9.8},
			{ID: "1b", Group: catalog.GroupBeamLaser, Name: "Beam Laser", Class: 2, Rating: "D", Mass: 4, Power: 1.0, Cost: 299520, Mount: catalog.MountGimballed, DPS: 12.5},
		},
		catalog.GroupMultiCannon: {
			{ID: "0m", Group: catalog.GroupMultiCannon, Name: "Multi-Cannon", Class: 1, Rating: "F", Mass: 2, Power: 0.28, Cost: 9500, Mount: catalog.MountFixed, DPS: 8.6, Ammo: 2100},
		},
		catalog.GroupShieldBooster: {
			{ID: "0s", Group: catalog.GroupShieldBooster, Name: "Shield Booster", Class: 0, Rating: "E", Mass: 0.5, Power: 0.2, Cost: 10000, Passive: true, ShieldMul: 0.04},
			{ID: "1s", Group: catalog.GroupShieldBooster, Name: "Shield Booster", Class: 0, Rating: "A", Mass: 3.5, Power: 1.2, Cost: 281000, Passive: true, ShieldMul: 0.2},
		},
		catalog.GroupChaffLauncher: {
			{ID: "0c", Group: catalog.GroupChaffLauncher, Name: "Chaff Launcher", Class: 0, Rating: "I", Mass: 1.3, Power: 0.2, Cost: 8500, Passive: true, Ammo: 10},
		},
	}

	doc.Modules.Internal = map[catalog.Group][]*catalog.Module{
		catalog.GroupCargoRack:       cargoRacks(),
		catalog.GroupFuelScoop:       fuelScoops(),
		catalog.GroupShieldGenerator: shieldGenerators(),
		catalog.GroupPrismaticShield: {
			{ID: "4q", Group: catalog.GroupPrismaticShield, Name: "Prismatic Shield Generator", Class: 4, Rating: "A", Mass: 10, Power: 2.6, Cost: 661530, Passive: true,
				Shield: &catalog.ShieldStats{MinMass: 140, OptMass: 280, MaxMass: 700, MinMul: 1.5, OptMul: 2.0, MaxMul: 2.5}},
		},
		catalog.GroupRefinery: {
			{ID: "1y", Group: catalog.GroupRefinery, Name: "Refinery", Class: 1, Rating: "E", Mass: 0, Power: 0.14, Cost: 6000, Passive: true},
			{ID: "2y", Group: catalog.GroupRefinery, Name: "Refinery", Class: 2, Rating: "D", Mass: 0, Power: 0.31, Cost: 37800, Passive: true},
		},
		catalog.GroupHullReinforcement: {
			{ID: "1h", Group: catalog.GroupHullReinforcement, Name: "Hull Reinforcement Package", Class: 1, Rating: "E", Mass: 2, Cost: 5000, Passive: true, ArmourAdd: 80},
			{ID: "3h", Group: catalog.GroupHullReinforcement, Name: "Hull Reinforcement Package", Class: 3, Rating: "D", Mass: 8, Cost: 42000, Passive: true, ArmourAdd: 260},
		},
	}

	return catalog.New(doc)
}

func aspSpec() *catalog.ShipSpec {
	return &catalog.ShipSpec{
		Properties: catalog.ShipProperties{
			Name:               "Asp Explorer",
			HullCost:           6135660,
			HullMass:           280,
			Speed:              250,
			Boost:              340,
			BaseShieldStrength: 140,
			BaseArmour:         324,
		},
		Slots: catalog.SlotTemplate{
			Standard:   [catalog.StandardSlotCount]int{4, 5, 5, 3, 4, 3, 5},
			Hardpoints: []catalog.SlotDef{{MaxClass: 2}, {MaxClass: 2}, {MaxClass: 1}, {MaxClass: 1}, {MaxClass: 0}, {MaxClass: 0}},
			Internal: []catalog.SlotDef{
				{MaxClass: 6},
				{MaxClass: 5},
				{MaxClass: 4},
				{MaxClass: 3},
				{MaxClass: 3, Eligible: []catalog.Group{catalog.GroupCargoRack, catalog.GroupHullReinforcement}},
				{MaxClass: 2},
			},
		},
		Bulkheads: bulkheads(),
	}
}

func anacondaSpec() *catalog.ShipSpec {
	return &catalog.ShipSpec{
		Properties: catalog.ShipProperties{
			Name:               "Anaconda",
			HullCost:           141889930,
			HullMass:           400,
			Speed:              180,
			Boost:              240,
			BaseShieldStrength: 350,
			BaseArmour:         945,
		},
		Slots: catalog.SlotTemplate{
			Standard:   [catalog.StandardSlotCount]int{6, 6, 6, 5, 6, 6, 5},
			Hardpoints: []catalog.SlotDef{{MaxClass: 3}, {MaxClass: 3}, {MaxClass: 2}, {MaxClass: 2}, {MaxClass: 1}, {MaxClass: 0}, {MaxClass: 0}},
			Internal: []catalog.SlotDef{
				{MaxClass: 6},
				{MaxClass: 6},
				{MaxClass: 5},
				{MaxClass: 4},
				{MaxClass: 3},
				{MaxClass: 2},
			},
		},
		Bulkheads: bulkheads(),
	}
}

// bulkheads builds the five armour variants for a hull. The lightweight
// set is free and weightless; the rest trade cost and mass for armour.
func bulkheads() [5]*catalog.Module {
	muls := [5]float64{1, 1.4, 1.945, 1.278, 1.788}
	masses := [5]float64{0, 0, 0, 35, 70}
	costs := [5]float64{0, 60000, 180000, 780000, 1560000}
	var out [5]*catalog.Module
	for i := range out {
		out[i] = &catalog.Module{
			ID:        id(i+1, "H"),
			Group:     catalog.GroupBulkheads,
			Name:      "Bulkheads",
			Rating:    "H",
			Index:     i,
			Mass:      masses[i],
			Cost:      costs[i],
			Passive:   true,
			ArmourMul: muls[i],
		}
	}
	return out
}

func powerPlants() []*catalog.Module {
	var out []*catalog.Module
	for class := 2; class <= 7; class++ {
		for _, rating := range []string{"E", "A"} {
			pgen := 4.0 * float64(class)
			mass := 2.5 * float64(class)
			if rating == "A" {
				pgen *= 1.3
				mass *= 0.8
			}
			out = append(out, &catalog.Module{
				ID: id(class, rating), Group: catalog.GroupPowerPlant,
				Class: class, Rating: rating, Mass: mass,
				Cost: 20000 * math.Pow(3, float64(class)), Passive: true, PGen: pgen,
			})
		}
	}
	return out
}

func thrusters() []*catalog.Module {
	var out []*catalog.Module
	for class := 2; class <= 7; class++ {
		for _, rating := range []string{"E", "A"} {
			opt := 160 * float64(class)
			mass := 5.0 * float64(class)
			mul := catalog.ThrusterStats{MinMass: opt / 2, OptMass: opt, MaxMass: opt * 1.5, MinMul: 0.83, OptMul: 1.0, MaxMul: 1.03}
			if rating == "A" {
				mul.MaxMul = 1.15
				mul.MinMul = 0.9
			}
			out = append(out, &catalog.Module{
				ID: id(class, rating), Group: catalog.GroupThrusters,
				Class: class, Rating: rating, Mass: mass, Power: 0.6 * float64(class),
				Cost: 25000 * math.Pow(3, float64(class)), Thrusters: &mul,
			})
		}
	}
	return out
}

func frameShiftDrives() []*catalog.Module {
	var out []*catalog.Module
	for class := 2; class <= 7; class++ {
		for _, rating := range []string{"E", "A"} {
			fsd := catalog.FSDStats{
				MaxFuel:   0.9 * float64(class),
				OptMass:   90 * float64(class),
				MaxMass:   270 * float64(class),
				FuelMul:   0.012,
				FuelPower: 2.45,
			}
			if rating == "A" {
				fsd.OptMass *= 1.6
			}
			out = append(out, &catalog.Module{
				ID: id(class, rating), Group: catalog.GroupFrameShiftDrive,
				Class: class, Rating: rating, Mass: 2.5 * float64(class), Power: 0.3 * float64(class),
				Cost: 30000 * math.Pow(3, float64(class)), FSD: &fsd,
			})
		}
	}
	return out
}

// flatModules covers the core types whose only interesting stats are
// mass and power draw
func flatModules(grp catalog.Group, powerPerClass float64) []*catalog.Module {
	var out []*catalog.Module
	for class := 1; class <= 7; class++ {
		for _, rating := range []string{"E", "A"} {
			mass := 1.3 * float64(class)
			if rating == "A" {
				mass *= 0.6
			}
			out = append(out, &catalog.Module{
				ID: id(class, rating), Group: grp,
				Class: class, Rating: rating, Mass: mass, Power: powerPerClass * float64(class),
				Cost: 1000 * math.Pow(3, float64(class)), Passive: true,
			})
		}
	}
	return out
}

func fuelTanks() []*catalog.Module {
	var out []*catalog.Module
	for class := 1; class <= 6; class++ {
		out = append(out, &catalog.Module{
			ID: id(class, "C"), Group: catalog.GroupFuelTank,
			Class: class, Rating: "C", Cost: 1000 * math.Pow(3, float64(class)),
			Passive: true, Capacity: math.Pow(2, float64(class)),
		})
	}
	return out
}

func cargoRacks() []*catalog.Module {
	var out []*catalog.Module
	for class := 1; class <= 6; class++ {
		out = append(out, &catalog.Module{
			ID: string(rune('0'+class)) + "r", Group: catalog.GroupCargoRack,
			Name: "Cargo Rack", Class: class, Rating: "E",
			Cost: 1000 * math.Pow(2.5, float64(class)), Passive: true,
			Capacity: math.Pow(2, float64(class)),
		})
	}
	return out
}

func fuelScoops() []*catalog.Module {
	var out []*catalog.Module
	for class := 1; class <= 6; class++ {
		out = append(out, &catalog.Module{
			ID: string(rune('0'+class)) + "f", Group: catalog.GroupFuelScoop,
			Name: "Fuel Scoop", Class: class, Rating: "B",
			Power: 0.14 * float64(class), Cost: 3000 * math.Pow(4, float64(class)), Passive: true,
		})
	}
	return out
}

func shieldGenerators() []*catalog.Module {
	var out []*catalog.Module
	for class := 3; class <= 6; class++ {
		opt := 55.0 * math.Pow(1.8, float64(class-2))
		out = append(out, &catalog.Module{
			ID: string(rune('0'+class)) + "g", Group: catalog.GroupShieldGenerator,
			Name: "Shield Generator", Class: class, Rating: "A",
			Mass: 2.5 * float64(class), Power: 0.8 * float64(class),
			Cost: 50000 * math.Pow(3, float64(class)), Passive: true,
			Shield: &catalog.ShieldStats{
				MinMass: opt / 2, OptMass: opt, MaxMass: opt * 2.5,
				MinMul: 0.3, OptMul: 1.0, MaxMul: 1.3,
			},
		})
	}
	return out
}

// id renders the production two-character core module id, class digit
// plus rating letter
func id(class int, rating string) string {
	return string(rune('0'+class)) + rating
}
