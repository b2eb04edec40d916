package outfit

import (
	"github.com/edcd-tools/outfitter-go/internal/domain/ship"
)

// BuildSummary is the flattened stat view handed to presentation layers
type BuildSummary struct {
	ShipID   string
	ShipName string
	Code     string

	TotalCost     float64
	UnladenMass   float64
	LadenMass     float64
	CargoCapacity float64
	FuelCapacity  float64

	PowerAvailable float64
	PowerRetracted float64
	PowerDeployed  float64

	TopSpeed float64
	TopBoost float64

	UnladenRange      float64
	FullTankRange     float64
	LadenRange        float64
	UnladenTotalRange float64
	LadenTotalRange   float64
	MaxJumpCount      int

	Armour         float64
	ShieldStrength float64
	TotalDps       float64
}

// Summarize flattens a ship's derived stats into a BuildSummary
func Summarize(sh *ship.Ship, code string) *BuildSummary {
	return &BuildSummary{
		ShipID:            sh.ID(),
		ShipName:          sh.Name(),
		Code:              code,
		TotalCost:         sh.TotalCost(),
		UnladenMass:       sh.UnladenMass(),
		LadenMass:         sh.LadenMass(),
		CargoCapacity:     sh.CargoCapacity(),
		FuelCapacity:      sh.FuelCapacity(),
		PowerAvailable:    sh.PowerAvailable(),
		PowerRetracted:    sh.PowerRetracted(),
		PowerDeployed:     sh.PowerDeployed(),
		TopSpeed:          sh.TopSpeed(),
		TopBoost:          sh.TopBoost(),
		UnladenRange:      sh.UnladenRange(),
		FullTankRange:     sh.FullTankRange(),
		LadenRange:        sh.LadenRange(),
		UnladenTotalRange: sh.UnladenTotalRange(),
		LadenTotalRange:   sh.LadenTotalRange(),
		MaxJumpCount:      sh.MaxJumpCount(),
		Armour:            sh.Armour(),
		ShieldStrength:    sh.ShieldStrength(),
		TotalDps:          sh.TotalDps(),
	}
}
