package outfit

import (
	"fmt"

	"github.com/edcd-tools/outfitter-go/internal/domain/build"
	"github.com/edcd-tools/outfitter-go/internal/domain/catalog"
	"github.com/edcd-tools/outfitter-go/internal/domain/shared"
	"github.com/edcd-tools/outfitter-go/internal/domain/ship"
)

// Role is an auto-build preset applied to a fresh hull
type Role string

const (
	RoleMultiPurpose Role = "multipurpose"
	RoleTrader       Role = "trader"
	RoleExplorer     Role = "explorer"
)

// Service is the outfitting use-case layer: it owns the catalog and the
// build codec and hands the UI/CLI fully-constructed ships
type Service struct {
	cat   *catalog.Catalog
	codec *build.Codec
}

func NewService(cat *catalog.Catalog) *Service {
	return &Service{cat: cat, codec: build.NewCodec(cat)}
}

func (s *Service) Catalog() *catalog.Catalog {
	return s.cat
}

// NewBuild constructs an empty build for a hull, with the lightest
// bulkheads mounted
func (s *Service) NewBuild(shipID string) (*ship.Ship, error) {
	spec := s.cat.Ship(shipID)
	if spec == nil {
		return nil, shared.NewShipError(fmt.Sprintf("unknown ship: %s", shipID))
	}
	sh := ship.New(spec)
	if bh := s.cat.Bulkheads(shipID, 0); bh != nil {
		sh.UseBulkhead(bh, false)
	}
	return sh, nil
}

// Decode reconstructs a ship from a build code
func (s *Service) Decode(shipID, code string) (*ship.Ship, error) {
	return s.codec.ToShip(shipID, code)
}

// Encode serializes a ship to its build code
func (s *Service) Encode(sh *ship.Ship) (string, error) {
	return s.codec.FromShip(sh)
}

// ApplyRole outfits a ship with one of the auto-build presets
func (s *Service) ApplyRole(sh *ship.Ship, role Role) error {
	switch role {
	case RoleMultiPurpose:
		sh.UseStandard(s.cat, "A")
		s.fillShield(sh)
		s.fillCargoRacks(sh)
	case RoleTrader:
		sh.UseLightestStandard(s.cat, nil)
		s.fillCargoRacks(sh)
	case RoleExplorer:
		overrides := map[catalog.StandardIndex]*catalog.Module{}
		fsdSlot := sh.Standard()[catalog.StandardFrameShiftDrive]
		if fsd := s.cat.FindStandard(catalog.StandardFrameShiftDrive, fsdSlot.MaxClass(), "A"); fsd != nil {
			overrides[catalog.StandardFrameShiftDrive] = fsd
		}
		sh.UseLightestStandard(s.cat, overrides)
		s.fillFuelScoop(sh)
	default:
		return fmt.Errorf("unknown role: %s", role)
	}
	return nil
}

// fillShield mounts the largest shield generator that fits any internal slot
func (s *Service) fillShield(sh *ship.Ship) {
	for _, slot := range sh.Internal() {
		if !slot.IsEmpty() || !slot.Accepts(catalog.GroupShieldGenerator) {
			continue
		}
		if m := s.cat.FindInternal(catalog.GroupShieldGenerator, slot.MaxClass(), "", ""); m != nil {
			sh.Use(slot, m, false)
			return
		}
	}
}

// fillCargoRacks fills every remaining eligible internal slot with the
// largest cargo rack that fits
func (s *Service) fillCargoRacks(sh *ship.Ship) {
	for _, slot := range sh.Internal() {
		if !slot.IsEmpty() || !slot.Accepts(catalog.GroupCargoRack) {
			continue
		}
		for class := slot.MaxClass(); class > 0; class-- {
			if m := s.cat.FindInternal(catalog.GroupCargoRack, class, "", ""); m != nil {
				sh.Use(slot, m, false)
				break
			}
		}
	}
}

// fillFuelScoop mounts the largest fuel scoop that fits any internal slot
func (s *Service) fillFuelScoop(sh *ship.Ship) {
	for _, slot := range sh.Internal() {
		if !slot.IsEmpty() || !slot.Accepts(catalog.GroupFuelScoop) {
			continue
		}
		for class := slot.MaxClass(); class > 0; class-- {
			if m := s.cat.FindInternal(catalog.GroupFuelScoop, class, "", ""); m != nil {
				sh.Use(slot, m, false)
				return
			}
		}
	}
}
