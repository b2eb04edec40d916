package build

import (
	"fmt"
	"strings"

	"github.com/edcd-tools/outfitter-go/internal/domain/catalog"
	"github.com/edcd-tools/outfitter-go/internal/domain/shared"
	"github.com/edcd-tools/outfitter-go/internal/domain/ship"
)

// Codec converts between a ship's full mutable state and the compact
// URL-safe build code:
//
//	<bulkheadDigit><slot tokens>.<enabledBits>.<priorityBits>
//
// The base code walks the real slots (standard, hardpoints, internal).
// The two compressed bit channels walk the cargo hatch first, then the
// real slots: the hatch contributes bits to the side channels but no
// characters to the base code. That asymmetry is wire format, not an
// accident. Either trailing segment may be absent on older links, in
// which case every slot defaults to enabled, priority 0.
type Codec struct {
	cat *catalog.Catalog
}

func NewCodec(cat *catalog.Catalog) *Codec {
	return &Codec{cat: cat}
}

// FromShip encodes a ship's slot assignments, enabled flags and power
// priorities into a build code
func (c *Codec) FromShip(s *ship.Ship) (string, error) {
	var base strings.Builder
	base.WriteByte(byte('0' + s.BulkheadIndex()))

	var enabled, priorities strings.Builder
	bits := func(slot *ship.Slot) {
		if slot.Enabled() {
			enabled.WriteByte('1')
		} else {
			enabled.WriteByte('0')
		}
		priorities.WriteByte(byte('0' + slot.Priority()))
	}

	bits(s.CargoHatch())
	for _, group := range [][]*ship.Slot{s.Standard(), s.Hardpoints(), s.Internal()} {
		for _, slot := range group {
			if slot.IsEmpty() {
				base.WriteByte('-')
			} else {
				base.WriteString(slot.ID())
			}
			bits(slot)
		}
	}

	enabledPart, err := compressSegment(enabled.String())
	if err != nil {
		return "", fmt.Errorf("failed to compress enabled bits: %w", err)
	}
	priorityPart, err := compressSegment(priorities.String())
	if err != nil {
		return "", fmt.Errorf("failed to compress priority bits: %w", err)
	}

	return base.String() + "." + enabledPart + "." + priorityPart, nil
}

// ToShip decodes a build code into a freshly constructed ship. A
// malformed code returns a DecodeError and no ship; decoding never
// exposes a partially-built one.
func (c *Codec) ToShip(shipID, code string) (*ship.Ship, error) {
	spec := c.cat.Ship(shipID)
	if spec == nil {
		return nil, shared.NewDecodeError(code, fmt.Sprintf("unknown ship: %s", shipID))
	}

	loadout, priorities, enabled, err := c.parse(spec, code)
	if err != nil {
		return nil, err
	}

	s := ship.New(spec)
	s.BuildWith(loadout, priorities, enabled)
	return s, nil
}

// parse tokenizes and resolves a build code against a hull's slot
// template without touching any ship
func (c *Codec) parse(spec *catalog.ShipSpec, code string) (*ship.Loadout, []int, []bool, error) {
	parts := strings.Split(code, ".")
	base := parts[0]
	if base == "" {
		return nil, nil, nil, shared.NewDecodeError(code, "empty build code")
	}

	bulkheadIndex := int(base[0] - '0')
	bulkheads := c.cat.Bulkheads(spec.ID, bulkheadIndex)
	if bulkheads == nil {
		return nil, nil, nil, shared.NewDecodeError(code,
			fmt.Sprintf("invalid bulkhead index: %c", base[0]))
	}

	loadout := &ship.Loadout{
		Bulkheads:  bulkheads,
		Hardpoints: make([]*catalog.Module, len(spec.Slots.Hardpoints)),
		Internal:   make([]*catalog.Module, len(spec.Slots.Internal)),
	}

	cursor := newTokenCursor(code, base[1:])
	for i := 0; i < catalog.StandardSlotCount; i++ {
		token, err := cursor.next()
		if err != nil {
			return nil, nil, nil, err
		}
		if token.Empty {
			continue
		}
		m := c.cat.Standard(catalog.StandardIndex(i), token.ID)
		if m == nil {
			return nil, nil, nil, shared.NewDecodeError(code,
				fmt.Sprintf("unknown core module id %q at slot %d", token.ID, i))
		}
		if m.Class > spec.Slots.Standard[i] {
			return nil, nil, nil, shared.NewCapacityError(m.ID, m.Class, spec.Slots.Standard[i])
		}
		loadout.Standard[i] = m
	}
	for i, def := range spec.Slots.Hardpoints {
		token, err := cursor.next()
		if err != nil {
			return nil, nil, nil, err
		}
		if token.Empty {
			continue
		}
		m := c.cat.Hardpoint(token.ID)
		if m == nil {
			return nil, nil, nil, shared.NewDecodeError(code,
				fmt.Sprintf("unknown hardpoint module id %q", token.ID))
		}
		if err := checkSlot(code, m, def); err != nil {
			return nil, nil, nil, err
		}
		loadout.Hardpoints[i] = m
	}
	for i, def := range spec.Slots.Internal {
		token, err := cursor.next()
		if err != nil {
			return nil, nil, nil, err
		}
		if token.Empty {
			continue
		}
		m := c.cat.Internal(token.ID)
		if m == nil {
			return nil, nil, nil, shared.NewDecodeError(code,
				fmt.Sprintf("unknown internal module id %q", token.ID))
		}
		if err := checkSlot(code, m, def); err != nil {
			return nil, nil, nil, err
		}
		loadout.Internal[i] = m
	}
	if !cursor.done() {
		return nil, nil, nil, shared.NewDecodeError(code, "trailing characters after last slot")
	}

	slotCount := 1 + catalog.StandardSlotCount + len(spec.Slots.Hardpoints) + len(spec.Slots.Internal)

	var enabled []bool
	if len(parts) > 1 && parts[1] != "" {
		enabled = make([]bool, 0, slotCount)
		decoded, err := decompressSegment(parts[1])
		if err != nil {
			return nil, nil, nil, shared.NewDecodeError(code, "corrupt enabled segment")
		}
		if len(decoded) != slotCount {
			return nil, nil, nil, shared.NewDecodeError(code,
				fmt.Sprintf("enabled segment covers %d slots, ship has %d", len(decoded), slotCount))
		}
		for _, ch := range decoded {
			enabled = append(enabled, ch != '0')
		}
	}

	var priorities []int
	if len(parts) > 2 && parts[2] != "" {
		priorities = make([]int, 0, slotCount)
		decoded, err := decompressSegment(parts[2])
		if err != nil {
			return nil, nil, nil, shared.NewDecodeError(code, "corrupt priority segment")
		}
		if len(decoded) != slotCount {
			return nil, nil, nil, shared.NewDecodeError(code,
				fmt.Sprintf("priority segment covers %d slots, ship has %d", len(decoded), slotCount))
		}
		for _, ch := range decoded {
			p := int(ch - '0')
			if p < 0 || p >= ship.PriorityBandCount {
				return nil, nil, nil, shared.NewDecodeError(code,
					fmt.Sprintf("priority digit %q out of range", ch))
			}
			priorities = append(priorities, p)
		}
	}

	return loadout, priorities, enabled, nil
}

// checkSlot rejects modules that do not fit the slot they were decoded
// into. This is the validation boundary the ship model relies on: Use
// itself never re-checks capacity.
func checkSlot(code string, m *catalog.Module, def catalog.SlotDef) error {
	if m.Class > def.MaxClass {
		return shared.NewCapacityError(m.ID, m.Class, def.MaxClass)
	}
	if len(def.Eligible) > 0 {
		for _, g := range def.Eligible {
			if g == m.Group {
				return nil
			}
		}
		return shared.NewDecodeError(code,
			fmt.Sprintf("module group %s not eligible for restricted slot", m.Group))
	}
	return nil
}
