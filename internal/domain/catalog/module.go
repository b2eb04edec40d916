package catalog

// Group identifies a module's catalog group
type Group string

const (
	// Standard (core) groups, in fixed slot order
	GroupPowerPlant       Group = "pp"
	GroupThrusters        Group = "t"
	GroupFrameShiftDrive  Group = "fsd"
	GroupLifeSupport      Group = "ls"
	GroupPowerDistributor Group = "pd"
	GroupSensors          Group = "s"
	GroupFuelTank         Group = "ft"

	// Internal groups
	GroupCargoRack         Group = "cr"
	GroupFuelScoop         Group = "fs"
	GroupRefinery          Group = "rf"
	GroupShieldGenerator   Group = "sg"
	GroupPrismaticShield   Group = "psg"
	GroupHullReinforcement Group = "hr"

	// Hardpoint / utility groups
	GroupPulseLaser    Group = "pl"
	GroupBeamLaser     Group = "bl"
	GroupMultiCannon   Group = "mc"
	GroupMissileRack   Group = "mr"
	GroupShieldBooster Group = "sb"
	GroupChaffLauncher Group = "cl"

	// Synthetic groups
	GroupBulkheads  Group = "bh"
	GroupCargoHatch Group = "ch"
)

// uniqueInternalGroups lists the internal module groups of which a ship
// may mount at most one. The two shield generator variants count as one
// group for this purpose.
var uniqueInternalGroups = map[Group]bool{
	GroupShieldGenerator: true,
	GroupPrismaticShield: true,
	GroupRefinery:        true,
	GroupFuelScoop:       true,
}

// IsUniqueInternal reports whether at most one module of this group may
// be mounted across a ship's internal slots.
func (g Group) IsUniqueInternal() bool {
	return uniqueInternalGroups[g]
}

// IsShieldGenerator reports whether the group is one of the mutually
// exclusive shield generator variants.
func (g Group) IsShieldGenerator() bool {
	return g == GroupShieldGenerator || g == GroupPrismaticShield
}

// Mount identifies how a hardpoint weapon is mounted
type Mount string

const (
	MountFixed     Mount = "F"
	MountGimballed Mount = "G"
	MountTurret    Mount = "T"
)

// FSDStats holds frame shift drive jump parameters
type FSDStats struct {
	MaxFuel   float64 `json:"maxfuel"`
	OptMass   float64 `json:"optmass"`
	MaxMass   float64 `json:"maxmass"`
	FuelMul   float64 `json:"fuelmul"`
	FuelPower float64 `json:"fuelpower"`
}

// ShieldStats holds the shield generator mass/multiplier interpolation bounds
type ShieldStats struct {
	MinMass float64 `json:"minmass"`
	OptMass float64 `json:"optmass"`
	MaxMass float64 `json:"maxmass"`
	MinMul  float64 `json:"minmul"`
	OptMul  float64 `json:"optmul"`
	MaxMul  float64 `json:"maxmul"`
}

// ThrusterStats holds the thruster mass/multiplier interpolation bounds
type ThrusterStats struct {
	MinMass float64 `json:"minmass"`
	OptMass float64 `json:"optmass"`
	MaxMass float64 `json:"maxmass"`
	MinMul  float64 `json:"minmul"`
	OptMul  float64 `json:"optmul"`
	MaxMul  float64 `json:"maxmul"`
}

// Module is an immutable catalog record for an equippable part.
//
// Common fields are always populated; group-specific stat blocks are nil
// (or zero) for groups they do not apply to. Catalog records are loaded
// once at startup and never mutated.
type Module struct {
	ID     string  `json:"id"`
	Group  Group   `json:"grp"`
	Name   string  `json:"name,omitempty"`
	Class  int     `json:"class"`
	Rating string  `json:"rating"`
	Mass   float64 `json:"mass"`
	Power  float64 `json:"power"`
	Cost   float64 `json:"cost"`

	// Passive modules never draw deployed power; weapons leave it unset
	Passive bool `json:"passive,omitempty"`

	// Group-specific scalars
	Capacity  float64 `json:"capacity,omitempty"`  // fuel tanks, cargo racks
	PGen      float64 `json:"pGen,omitempty"`      // power plants
	ArmourAdd float64 `json:"armouradd,omitempty"` // hull reinforcement
	ShieldMul float64 `json:"shieldmul,omitempty"` // shield boosters
	ArmourMul float64 `json:"armourmul,omitempty"` // bulkheads
	Index     int     `json:"index,omitempty"`     // bulkhead variant index 0-4

	// Weapons
	DPS     float64 `json:"dps,omitempty"`
	Ammo    int     `json:"ammo,omitempty"`
	Mount   Mount   `json:"mount,omitempty"`
	Missile string  `json:"missile,omitempty"`

	// Group-specific stat blocks
	FSD       *FSDStats      `json:"fsd,omitempty"`
	Shield    *ShieldStats   `json:"shield,omitempty"`
	Thrusters *ThrusterStats `json:"thrusters,omitempty"`
}

// IsEmpty reports whether m is nil, the empty-slot marker.
func (m *Module) IsEmpty() bool {
	return m == nil
}
