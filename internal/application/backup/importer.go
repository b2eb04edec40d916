package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/edcd-tools/outfitter-go/internal/domain/build"
	"github.com/edcd-tools/outfitter-go/internal/domain/catalog"
	"github.com/edcd-tools/outfitter-go/internal/domain/shared"
)

// Importer validates a backup document and loads it into the stores.
// Validation is all-or-nothing: a backup with a single bad code or a
// dangling comparison reference is rejected before anything is written.
type Importer struct {
	codec       *build.Codec
	builds      build.BuildStore
	comparisons build.ComparisonStore
	validate    *validator.Validate
}

func NewImporter(cat *catalog.Catalog, builds build.BuildStore, comparisons build.ComparisonStore) *Importer {
	return &Importer{
		codec:       build.NewCodec(cat),
		builds:      builds,
		comparisons: comparisons,
		validate:    validator.New(),
	}
}

// ImportResult reports what a successful import wrote
type ImportResult struct {
	Builds      int
	Comparisons int
}

// Import reads, validates and persists a backup document
func (i *Importer) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid backup document: %w", err)
	}

	if err := i.Validate(&doc); err != nil {
		return nil, err
	}

	result := &ImportResult{}
	for _, shipID := range sortedKeys(doc.Builds) {
		names := doc.Builds[shipID]
		for _, name := range sortedKeys(names) {
			if err := i.builds.Save(ctx, shipID, name, names[name]); err != nil {
				return nil, fmt.Errorf("failed to save build %s/%s: %w", shipID, name, err)
			}
			result.Builds++
		}
	}
	for _, name := range sortedKeys(doc.Comparisons) {
		entry := doc.Comparisons[name]
		stored := &build.StoredComparison{
			ID:     uuid.NewString(),
			Name:   name,
			Facets: entry.Facets,
		}
		for _, ref := range entry.Builds {
			stored.Builds = append(stored.Builds, build.BuildRef{
				ShipID:    ref.ShipID,
				BuildName: ref.BuildName,
			})
		}
		if err := i.comparisons.Save(ctx, stored); err != nil {
			return nil, fmt.Errorf("failed to save comparison %s: %w", name, err)
		}
		result.Comparisons++
	}
	return result, nil
}

// Validate checks a backup document without writing anything: every
// build code must decode against the catalog, and every comparison must
// reference a build present in the document
func (i *Importer) Validate(doc *Document) error {
	for _, shipID := range sortedKeys(doc.Builds) {
		names := doc.Builds[shipID]
		for _, name := range sortedKeys(names) {
			code := names[name]
			if code == "" {
				return fmt.Errorf("%s build %q data is missing!", shipID, name)
			}
			if _, err := i.codec.ToShip(shipID, code); err != nil {
				return fmt.Errorf("%s build %q is invalid: %w", shipID, name, err)
			}
		}
	}

	for _, name := range sortedKeys(doc.Comparisons) {
		entry := doc.Comparisons[name]
		if err := i.validate.Struct(entry); err != nil {
			return shared.NewValidationError("comparisons."+name, err.Error())
		}
		for _, ref := range entry.Builds {
			if doc.Builds[ref.ShipID][ref.BuildName] == "" {
				return fmt.Errorf("%s build %q data is missing!", ref.ShipID, ref.BuildName)
			}
		}
	}
	return nil
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
