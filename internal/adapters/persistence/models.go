package persistence

import (
	"time"
)

// BuildModel represents the builds table: one row per saved build code,
// keyed by hull and build name
type BuildModel struct {
	ShipID    string    `gorm:"column:ship_id;primaryKey;not null"`
	Name      string    `gorm:"column:name;primaryKey;not null"`
	Code      string    `gorm:"column:code;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (BuildModel) TableName() string {
	return "builds"
}

// ComparisonModel represents the comparisons table
type ComparisonModel struct {
	ID        string    `gorm:"column:id;primaryKey;not null"`
	Name      string    `gorm:"column:name;unique;not null"`
	Facets    string    `gorm:"column:facets;type:text"` // JSON array as text
	Builds    string    `gorm:"column:builds;type:text"` // JSON array as text
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (ComparisonModel) TableName() string {
	return "comparisons"
}
