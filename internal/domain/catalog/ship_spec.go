package catalog

// StandardIndex identifies one of the seven fixed core slot types
type StandardIndex int

const (
	StandardPowerPlant StandardIndex = iota
	StandardThrusters
	StandardFrameShiftDrive
	StandardLifeSupport
	StandardPowerDistributor
	StandardSensors
	StandardFuelTank

	StandardSlotCount = 7
)

// standardGroups maps each core slot type to the module group it accepts
var standardGroups = [StandardSlotCount]Group{
	GroupPowerPlant,
	GroupThrusters,
	GroupFrameShiftDrive,
	GroupLifeSupport,
	GroupPowerDistributor,
	GroupSensors,
	GroupFuelTank,
}

// StandardGroup returns the module group mounted at a core slot type
func StandardGroup(i StandardIndex) Group {
	return standardGroups[i]
}

// ShipProperties holds a hull's base stats, copied onto every Ship built
// from it
type ShipProperties struct {
	Name               string  `json:"name"`
	HullCost           float64 `json:"hullCost"`
	HullMass           float64 `json:"hullMass"`
	Speed              float64 `json:"speed"`
	Boost              float64 `json:"boost"`
	BaseShieldStrength float64 `json:"baseShieldStrength"`
	BaseArmour         float64 `json:"baseArmour"`
}

// SlotDef describes one mounting point in a hull's slot template.
// MaxClass 0 on a hardpoint means a utility mount. Eligible, when
// non-empty, restricts which module groups the slot accepts.
type SlotDef struct {
	MaxClass int     `json:"class"`
	Eligible []Group `json:"eligible,omitempty"`
}

// SlotTemplate lists a hull's mounting points per category, in the fixed
// order the build code serializes them
type SlotTemplate struct {
	Standard   [StandardSlotCount]int `json:"standard"`
	Hardpoints []SlotDef              `json:"hardpoints"`
	Internal   []SlotDef              `json:"internal"`
}

// ShipSpec is a hull's full catalog entry: base properties, slot
// template, the five bulkhead variants, and default build (if any)
type ShipSpec struct {
	ID          string         `json:"id"`
	Properties  ShipProperties `json:"properties"`
	Slots       SlotTemplate   `json:"slots"`
	Bulkheads   [5]*Module     `json:"bulkheads"`
	DefaultCode string         `json:"defaultCode,omitempty"`
}
