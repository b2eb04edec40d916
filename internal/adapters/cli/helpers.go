package cli

import (
	"fmt"
	"sort"

	"github.com/edcd-tools/outfitter-go/internal/application/outfit"
	"github.com/edcd-tools/outfitter-go/internal/domain/ship"
)

// applyDiscounts applies the configured vendor discounts before costs
// are displayed
func applyDiscounts(deps *Deps, sh *ship.Ship) {
	d := deps.Config.Discounts
	if d.Ship != 1 || d.Module != 1 {
		sh.ApplyDiscounts(d.Ship, d.Module)
	}
}

// printSummary prints the derived stats of a build in aligned blocks
func printSummary(s *outfit.BuildSummary) {
	fmt.Printf("Ship:            %s (%s)\n", s.ShipName, s.ShipID)
	fmt.Printf("Code:            %s\n", s.Code)
	fmt.Printf("Total Cost:      %.0f CR\n", s.TotalCost)
	fmt.Println()
	fmt.Printf("Unladen Mass:    %.2f T\n", s.UnladenMass)
	fmt.Printf("Laden Mass:      %.2f T\n", s.LadenMass)
	fmt.Printf("Cargo Capacity:  %.0f T\n", s.CargoCapacity)
	fmt.Printf("Fuel Capacity:   %.0f T\n", s.FuelCapacity)
	fmt.Println()
	fmt.Printf("Power Available: %.2f MW\n", s.PowerAvailable)
	fmt.Printf("Power Retracted: %.2f MW\n", s.PowerRetracted)
	fmt.Printf("Power Deployed:  %.2f MW\n", s.PowerDeployed)
	fmt.Println()
	fmt.Printf("Top Speed:       %.0f m/s (boost %.0f m/s)\n", s.TopSpeed, s.TopBoost)
	fmt.Printf("Unladen Range:   %.2f LY\n", s.UnladenRange)
	fmt.Printf("Full Tank Range: %.2f LY\n", s.FullTankRange)
	fmt.Printf("Laden Range:     %.2f LY\n", s.LadenRange)
	fmt.Printf("Total Range:     %.2f LY unladen / %.2f LY laden (%d jumps)\n",
		s.UnladenTotalRange, s.LadenTotalRange, s.MaxJumpCount)
	fmt.Println()
	fmt.Printf("Armour:          %.0f\n", s.Armour)
	fmt.Printf("Shield Strength: %.2f MJ\n", s.ShieldStrength)
	fmt.Printf("Total DPS:       %.2f\n", s.TotalDps)
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
