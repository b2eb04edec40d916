package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/edcd-tools/outfitter-go/internal/domain/build"
)

// GormComparisonRepository implements build.ComparisonStore using GORM
type GormComparisonRepository struct {
	db *gorm.DB
}

// NewGormComparisonRepository creates a new GORM comparison repository
func NewGormComparisonRepository(db *gorm.DB) *GormComparisonRepository {
	return &GormComparisonRepository{db: db}
}

var _ build.ComparisonStore = (*GormComparisonRepository)(nil)

// Save upserts a comparison by name, assigning an id to new records
func (r *GormComparisonRepository) Save(ctx context.Context, cmp *build.StoredComparison) error {
	// Reuse the id of any existing record with this name so Save stays
	// an upsert keyed by name
	var existing ComparisonModel
	result := r.db.WithContext(ctx).Where("name = ?", cmp.Name).First(&existing)
	switch {
	case result.Error == nil:
		cmp.ID = existing.ID
	case result.Error == gorm.ErrRecordNotFound:
		if cmp.ID == "" {
			cmp.ID = uuid.NewString()
		}
	default:
		return fmt.Errorf("failed to look up comparison: %w", result.Error)
	}

	model, err := r.comparisonToModel(cmp)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to save comparison: %w", err)
	}
	return nil
}

// FindByName retrieves a comparison by name
func (r *GormComparisonRepository) FindByName(ctx context.Context, name string) (*build.StoredComparison, error) {
	var model ComparisonModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("comparison not found: %s", name)
		}
		return nil, fmt.Errorf("failed to find comparison: %w", result.Error)
	}
	return r.modelToComparison(&model)
}

// ListAll retrieves every saved comparison
func (r *GormComparisonRepository) ListAll(ctx context.Context) ([]*build.StoredComparison, error) {
	var models []ComparisonModel
	result := r.db.WithContext(ctx).Order("name").Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list comparisons: %w", result.Error)
	}

	comparisons := make([]*build.StoredComparison, 0, len(models))
	for _, model := range models {
		cmp, err := r.modelToComparison(&model)
		if err != nil {
			continue // Skip corrupt rows
		}
		comparisons = append(comparisons, cmp)
	}
	return comparisons, nil
}

// Delete removes a comparison by name
func (r *GormComparisonRepository) Delete(ctx context.Context, name string) error {
	result := r.db.WithContext(ctx).Where("name = ?", name).Delete(&ComparisonModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete comparison: %w", result.Error)
	}
	return nil
}

func (r *GormComparisonRepository) comparisonToModel(cmp *build.StoredComparison) (*ComparisonModel, error) {
	facets, err := json.Marshal(cmp.Facets)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal facets: %w", err)
	}
	builds, err := json.Marshal(cmp.Builds)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal build refs: %w", err)
	}
	return &ComparisonModel{
		ID:     cmp.ID,
		Name:   cmp.Name,
		Facets: string(facets),
		Builds: string(builds),
	}, nil
}

func (r *GormComparisonRepository) modelToComparison(model *ComparisonModel) (*build.StoredComparison, error) {
	cmp := &build.StoredComparison{
		ID:   model.ID,
		Name: model.Name,
	}
	if model.Facets != "" {
		if err := json.Unmarshal([]byte(model.Facets), &cmp.Facets); err != nil {
			return nil, fmt.Errorf("invalid facets in database: %w", err)
		}
	}
	if model.Builds != "" {
		if err := json.Unmarshal([]byte(model.Builds), &cmp.Builds); err != nil {
			return nil, fmt.Errorf("invalid build refs in database: %w", err)
		}
	}
	return cmp, nil
}
