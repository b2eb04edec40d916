package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/edcd-tools/outfitter-go/internal/domain/shared"
)

// Catalog is the static, read-only module and hull reference database.
// It is loaded once at startup and safe to share across any number of
// ships without synchronization. All lookups return nil on a miss;
// "no such module" is a routine outcome, not an error.
type Catalog struct {
	ships      map[string]*ShipSpec
	standard   [StandardSlotCount][]*Module
	hardpoints map[Group][]*Module
	internal   map[Group][]*Module
	cargoHatch *Module
}

// Document is the JSON shape of a catalog file
type Document struct {
	Ships   map[string]*ShipSpec `json:"ships"`
	Modules struct {
		Standard   [StandardSlotCount][]*Module `json:"standard"`
		Hardpoints map[Group][]*Module          `json:"hardpoints"`
		Internal   map[Group][]*Module          `json:"internal"`
	} `json:"modules"`
}

// New builds a catalog from an in-memory document
func New(doc *Document) *Catalog {
	c := &Catalog{
		ships:      make(map[string]*ShipSpec, len(doc.Ships)),
		hardpoints: make(map[Group][]*Module, len(doc.Modules.Hardpoints)),
		internal:   make(map[Group][]*Module, len(doc.Modules.Internal)),
		cargoHatch: &Module{ID: "ch", Group: GroupCargoHatch, Power: 0.6},
	}
	for id, spec := range doc.Ships {
		spec.ID = id
		c.ships[id] = spec
	}
	for i := range doc.Modules.Standard {
		c.standard[i] = doc.Modules.Standard[i]
	}
	for grp, modules := range doc.Modules.Hardpoints {
		c.hardpoints[grp] = modules
	}
	for grp, modules := range doc.Modules.Internal {
		c.internal[grp] = modules
	}
	return c
}

// Load reads a catalog JSON document
func Load(r io.Reader) (*Catalog, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, shared.NewInvalidShipDataError(fmt.Sprintf("failed to parse catalog: %v", err))
	}
	return New(&doc), nil
}

// Ship returns the hull entry for a ship id, or nil
func (c *Catalog) Ship(shipID string) *ShipSpec {
	return c.ships[shipID]
}

// ShipIDs returns all hull ids in sorted order
func (c *Catalog) ShipIDs() []string {
	ids := make([]string, 0, len(c.ships))
	for id := range c.ships {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// CargoHatch returns the synthetic cargo hatch module present on every ship
func (c *Catalog) CargoHatch() *Module {
	return c.cargoHatch
}

// Standard returns the core module with the given id at a fixed core
// slot type, or nil
func (c *Catalog) Standard(typeIndex StandardIndex, id string) *Module {
	if typeIndex < 0 || typeIndex >= StandardSlotCount {
		return nil
	}
	for _, m := range c.standard[typeIndex] {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// Hardpoint finds a hardpoint or utility module by id, or nil.
// The catalogs are small and static, so a linear scan across groups is fine.
func (c *Catalog) Hardpoint(id string) *Module {
	return findByID(c.hardpoints, id)
}

// Internal finds an internal module by id, or nil
func (c *Catalog) Internal(id string) *Module {
	return findByID(c.internal, id)
}

func findByID(groups map[Group][]*Module, id string) *Module {
	for _, modules := range groups {
		for _, m := range modules {
			if m.ID == id {
				return m
			}
		}
	}
	return nil
}

// FindStandard returns the core module of the given class and rating at a
// core slot type, or nil
func (c *Catalog) FindStandard(typeIndex StandardIndex, class int, rating string) *Module {
	if typeIndex < 0 || typeIndex >= StandardSlotCount {
		return nil
	}
	for _, m := range c.standard[typeIndex] {
		if m.Class == class && m.Rating == rating {
			return m
		}
	}
	return nil
}

// StandardModules returns all catalog modules for a core slot type
func (c *Catalog) StandardModules(typeIndex StandardIndex) []*Module {
	if typeIndex < 0 || typeIndex >= StandardSlotCount {
		return nil
	}
	return c.standard[typeIndex]
}

// FindInternal searches the internal catalog by group and/or name plus
// optional class and rating. At least one of group or name must be
// supplied. Returns the single exact match, or nil.
func (c *Catalog) FindInternal(group Group, class int, rating, name string) *Module {
	if group == "" && name == "" {
		return nil
	}
	for grp, modules := range c.internal {
		if group != "" && grp != group {
			continue
		}
		for _, m := range modules {
			if name != "" && m.Name != name {
				continue
			}
			if class != 0 && m.Class != class {
				continue
			}
			if rating != "" && m.Rating != rating {
				continue
			}
			return m
		}
	}
	return nil
}

// FindHardpoint searches the hardpoint catalog by group and/or name plus
// optional class, rating, mount and missile type. At least one of group
// or name must be supplied. Returns the single exact match, or nil.
func (c *Catalog) FindHardpoint(group Group, class int, rating, name string, mount Mount, missile string) *Module {
	if group == "" && name == "" {
		return nil
	}
	for grp, modules := range c.hardpoints {
		if group != "" && grp != group {
			continue
		}
		for _, m := range modules {
			if name != "" && m.Name != name {
				continue
			}
			if class != 0 && m.Class != class {
				continue
			}
			if rating != "" && m.Rating != rating {
				continue
			}
			if mount != "" && m.Mount != mount {
				continue
			}
			if missile != "" && m.Missile != missile {
				continue
			}
			return m
		}
	}
	return nil
}

// Bulkheads returns one of the five armour variants for a hull, or nil
// if the ship or index is unknown
func (c *Catalog) Bulkheads(shipID string, index int) *Module {
	spec := c.ships[shipID]
	if spec == nil || index < 0 || index >= len(spec.Bulkheads) {
		return nil
	}
	return spec.Bulkheads[index]
}
