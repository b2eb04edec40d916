package ship

import (
	"github.com/edcd-tools/outfitter-go/internal/domain/catalog"
)

// Category identifies which slot array a slot belongs to. It drives the
// power-band bookkeeping: only hardpoint weapons draw deployed power.
type Category int

const (
	CatStandard Category = iota
	CatHardpoint
	CatInternal
)

// Slot is one mounting point on a ship. Slots are created when the ship
// is constructed and live for the ship's lifetime; only their contents
// change. An empty slot holds a nil module.
type Slot struct {
	maxClass int
	eligible map[catalog.Group]bool
	cat      Category

	m              *catalog.Module
	enabled        bool
	priority       int
	incCost        bool
	discountedCost float64
}

func newSlot(def catalog.SlotDef, cat Category) *Slot {
	s := &Slot{
		maxClass: def.MaxClass,
		cat:      cat,
		enabled:  true,
		incCost:  true,
	}
	if len(def.Eligible) > 0 {
		s.eligible = make(map[catalog.Group]bool, len(def.Eligible))
		for _, g := range def.Eligible {
			s.eligible[g] = true
		}
	}
	return s
}

// MaxClass returns the largest module class the slot accepts. 0 on a
// hardpoint means a utility mount.
func (s *Slot) MaxClass() int {
	return s.maxClass
}

// Category returns the slot's category
func (s *Slot) Category() Category {
	return s.cat
}

// Module returns the mounted module, or nil when the slot is empty
func (s *Slot) Module() *catalog.Module {
	return s.m
}

// ID returns the mounted module's catalog id, or "" when empty
func (s *Slot) ID() string {
	if s.m == nil {
		return ""
	}
	return s.m.ID
}

// IsEmpty reports whether no module is mounted
func (s *Slot) IsEmpty() bool {
	return s.m == nil
}

// Enabled reports whether the slot is powered
func (s *Slot) Enabled() bool {
	return s.enabled
}

// Priority returns the slot's power band, 0..4
func (s *Slot) Priority() int {
	return s.priority
}

// IncCost reports whether the slot's module cost counts toward the
// ship total
func (s *Slot) IncCost() bool {
	return s.incCost
}

// DiscountedCost returns the module cost after the current module
// discount multiplier, 0 when empty
func (s *Slot) DiscountedCost() float64 {
	return s.discountedCost
}

// Accepts reports whether the slot's eligibility restriction (if any)
// admits the given module group
func (s *Slot) Accepts(g catalog.Group) bool {
	if s.eligible == nil {
		return true
	}
	return s.eligible[g]
}

// deployedPower reports whether the slot's module draws power from the
// deployed bucket. Only active hardpoint weapons do; everything else,
// including passive utility mounts, draws retracted power.
func (s *Slot) deployedPower() bool {
	return s.cat == CatHardpoint && s.m != nil && !s.m.Passive
}
