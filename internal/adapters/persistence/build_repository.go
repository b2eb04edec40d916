package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/edcd-tools/outfitter-go/internal/domain/build"
)

// GormBuildRepository implements build.BuildStore using GORM
type GormBuildRepository struct {
	db *gorm.DB
}

// NewGormBuildRepository creates a new GORM build repository
func NewGormBuildRepository(db *gorm.DB) *GormBuildRepository {
	return &GormBuildRepository{db: db}
}

var _ build.BuildStore = (*GormBuildRepository)(nil)

// Save upserts a build code under (ship id, build name)
func (r *GormBuildRepository) Save(ctx context.Context, shipID, name, code string) error {
	model := &BuildModel{ShipID: shipID, Name: name, Code: code}
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to save build: %w", result.Error)
	}
	return nil
}

// Find retrieves the build code for (ship id, build name)
func (r *GormBuildRepository) Find(ctx context.Context, shipID, name string) (string, error) {
	var model BuildModel
	result := r.db.WithContext(ctx).
		Where("ship_id = ? AND name = ?", shipID, name).
		First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return "", fmt.Errorf("build not found: %s/%s", shipID, name)
		}
		return "", fmt.Errorf("failed to find build: %w", result.Error)
	}
	return model.Code, nil
}

// ListAll returns every saved build code keyed by ship id and build name
func (r *GormBuildRepository) ListAll(ctx context.Context) (map[string]map[string]string, error) {
	var models []BuildModel
	result := r.db.WithContext(ctx).Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list builds: %w", result.Error)
	}

	builds := make(map[string]map[string]string)
	for _, model := range models {
		if builds[model.ShipID] == nil {
			builds[model.ShipID] = make(map[string]string)
		}
		builds[model.ShipID][model.Name] = model.Code
	}
	return builds, nil
}

// Delete removes a saved build
func (r *GormBuildRepository) Delete(ctx context.Context, shipID, name string) error {
	result := r.db.WithContext(ctx).
		Where("ship_id = ? AND name = ?", shipID, name).
		Delete(&BuildModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete build: %w", result.Error)
	}
	return nil
}
