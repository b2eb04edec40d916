package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/edcd-tools/outfitter-go/internal/domain/build"
)

// Exporter reproduces a backup document from the stores
type Exporter struct {
	builds      build.BuildStore
	comparisons build.ComparisonStore
}

func NewExporter(builds build.BuildStore, comparisons build.ComparisonStore) *Exporter {
	return &Exporter{builds: builds, comparisons: comparisons}
}

// Export writes the full store contents as an indented backup document
func (e *Exporter) Export(ctx context.Context, w io.Writer) error {
	builds, err := e.builds.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list builds: %w", err)
	}

	stored, err := e.comparisons.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list comparisons: %w", err)
	}

	doc := Document{Builds: builds}
	if len(stored) > 0 {
		doc.Comparisons = make(map[string]ComparisonEntry, len(stored))
		for _, cmp := range stored {
			entry := ComparisonEntry{Facets: cmp.Facets}
			for _, ref := range cmp.Builds {
				entry.Builds = append(entry.Builds, BuildRef{
					ShipID:    ref.ShipID,
					BuildName: ref.BuildName,
				})
			}
			doc.Comparisons[cmp.Name] = entry
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&doc)
}
