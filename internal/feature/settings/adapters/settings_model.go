package adapters

import (
	"time"

	"nikkei_backend/internal/feature/settings/domain/entity"
)

// SettingsModel is the GORM model for the settings table. The table
// holds exactly one row; the fixed primary key enforces that.
type SettingsModel struct {
	ID          uint      `gorm:"primaryKey"`
	Theme       string    `gorm:"size:16;not null"`
	NewsEnabled bool      `gorm:"not null"`
	PriceSource string    `gorm:"size:16;not null"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for GORM.
func (SettingsModel) TableName() string {
	return "settings"
}

// ToEntity converts the GORM model to a domain entity.
func (m *SettingsModel) ToEntity() entity.Settings {
	return entity.Settings{
		Theme:       m.Theme,
		NewsEnabled: m.NewsEnabled,
		PriceSource: m.PriceSource,
	}
}

// SettingsModelFromEntity converts a domain entity to a GORM model.
func SettingsModelFromEntity(s entity.Settings) *SettingsModel {
	return &SettingsModel{
		ID:          settingsRowID,
		Theme:       s.Theme,
		NewsEnabled: s.NewsEnabled,
		PriceSource: s.PriceSource,
	}
}
