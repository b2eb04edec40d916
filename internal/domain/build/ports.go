package build

import "context"

// BuildRef names a saved build by hull and build name
type BuildRef struct {
	ShipID    string
	BuildName string
}

// StoredComparison is a comparison as kept in the store: it references
// saved builds by name instead of carrying their codes
type StoredComparison struct {
	ID     string
	Name   string
	Facets []int
	Builds []BuildRef
}

// BuildStore persists build codes keyed by (ship id, build name).
// The domain core only ever consumes this interface; the gorm adapter
// implements it.
type BuildStore interface {
	Save(ctx context.Context, shipID, name, code string) error
	Find(ctx context.Context, shipID, name string) (string, error)
	ListAll(ctx context.Context) (map[string]map[string]string, error)
	Delete(ctx context.Context, shipID, name string) error
}

// ComparisonStore persists comparisons keyed by name
type ComparisonStore interface {
	Save(ctx context.Context, cmp *StoredComparison) error
	FindByName(ctx context.Context, name string) (*StoredComparison, error)
	ListAll(ctx context.Context) ([]*StoredComparison, error)
	Delete(ctx context.Context, name string) error
}
