package ship

// PriorityBandCount is the number of power-allocation tiers. Lower
// numbered bands are satisfied first when available power runs short.
const PriorityBandCount = 5

// PriorityBand is one tier of the power-draw ledger. Retracted holds the
// draw of modules powered in any state; Deployed holds the extra draw of
// active hardpoint weapons. The Sum fields are running totals including
// all lower-numbered bands, maintained by updatePower.
type PriorityBand struct {
	Retracted    float64
	Deployed     float64
	RetractedSum float64
	DeployedSum  float64
}

// SlotStatus is the power status of a slot as shown to the user
type SlotStatus int

const (
	// StatusNotApplicable: the slot is empty, or a retractable weapon was
	// queried for the retracted state it never draws in
	StatusNotApplicable SlotStatus = iota
	StatusDisabled
	StatusOffline
	StatusOnline
)

// updatePower recomputes the cumulative band sums in ascending priority
// order. A band's deployed sum always folds in the retracted draw too:
// retracted-only modules keep drawing power when hardpoints are out.
func (s *Ship) updatePower() {
	var retracted, deployed float64
	for i := 0; i < PriorityBandCount; i++ {
		band := &s.priorityBands[i]
		retracted += band.Retracted
		deployed += band.Deployed + band.Retracted
		band.RetractedSum = retracted
		band.DeployedSum = deployed
	}
	s.powerRetracted = retracted
	s.powerDeployed = deployed
}

// GetSlotStatus returns the power status of a slot for the queried
// deployed or retracted state. Pure query, no side effects.
func (s *Ship) GetSlotStatus(slot *Slot, deployed bool) SlotStatus {
	if slot.m == nil || (!deployed && slot.deployedPower()) {
		return StatusNotApplicable
	}
	if !slot.enabled {
		return StatusDisabled
	}
	band := &s.priorityBands[slot.priority]
	sum := band.RetractedSum
	if deployed {
		sum = band.DeployedSum
	}
	if sum >= s.powerAvailable {
		return StatusOffline
	}
	return StatusOnline
}
