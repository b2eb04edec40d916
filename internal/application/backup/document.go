package backup

// Document is the JSON backup shape: every saved build code keyed by
// ship id and build name, plus saved comparisons referencing builds by
// name
type Document struct {
	Builds      map[string]map[string]string `json:"builds"`
	Comparisons map[string]ComparisonEntry   `json:"comparisons,omitempty"`
}

// ComparisonEntry is one saved comparison inside a backup
type ComparisonEntry struct {
	Facets []int      `json:"facets"`
	Builds []BuildRef `json:"builds" validate:"dive"`
}

// BuildRef names a build inside a comparison entry
type BuildRef struct {
	ShipID    string `json:"shipId" validate:"required"`
	BuildName string `json:"buildName" validate:"required"`
}
