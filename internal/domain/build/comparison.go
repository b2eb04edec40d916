package build

import (
	"encoding/json"

	"github.com/edcd-tools/outfitter-go/internal/domain/shared"
)

// Comparison is a named, saved set of builds plus display and sort
// preferences, separately encodable for sharing
type Comparison struct {
	Name           string
	Builds         []ComparisonBuild
	Facets         []int
	SortPredicate  string
	SortDescending bool
}

// ComparisonBuild is one build inside a comparison
type ComparisonBuild struct {
	ShipID    string
	BuildName string
	Code      string
}

// comparisonDoc is the abbreviated JSON wire shape
type comparisonDoc struct {
	Name   string               `json:"n"`
	Builds []comparisonBuildDoc `json:"b"`
	Facets []int                `json:"f"`
	Sort   string               `json:"p"`
	Desc   int                  `json:"d"`
}

type comparisonBuildDoc struct {
	ShipID string `json:"s"`
	Name   string `json:"n"`
	Code   string `json:"c"`
}

// FromComparison serializes a comparison to its compressed URL-safe form
func FromComparison(cmp *Comparison) (string, error) {
	doc := comparisonDoc{
		Name:   cmp.Name,
		Builds: make([]comparisonBuildDoc, 0, len(cmp.Builds)),
		Facets: cmp.Facets,
		Sort:   cmp.SortPredicate,
	}
	if cmp.SortDescending {
		doc.Desc = 1
	}
	for _, b := range cmp.Builds {
		doc.Builds = append(doc.Builds, comparisonBuildDoc{
			ShipID: b.ShipID,
			Name:   b.BuildName,
			Code:   b.Code,
		})
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return compressSegment(string(raw))
}

// ToComparison decodes a compressed comparison code
func ToComparison(code string) (*Comparison, error) {
	raw, err := decompressSegment(code)
	if err != nil {
		return nil, shared.NewDecodeError(code, "corrupt comparison code")
	}

	var doc comparisonDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, shared.NewDecodeError(code, "comparison code is not valid JSON")
	}

	cmp := &Comparison{
		Name:           doc.Name,
		Builds:         make([]ComparisonBuild, 0, len(doc.Builds)),
		Facets:         doc.Facets,
		SortPredicate:  doc.Sort,
		SortDescending: doc.Desc != 0,
	}
	for _, b := range doc.Builds {
		cmp.Builds = append(cmp.Builds, ComparisonBuild{
			ShipID:    b.ShipID,
			BuildName: b.Name,
			Code:      b.Code,
		})
	}
	return cmp, nil
}
