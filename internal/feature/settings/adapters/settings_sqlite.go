// Package adapters はsettingsフィーチャーの永続化実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"nikkei_backend/internal/feature/settings/domain/entity"
	"nikkei_backend/internal/feature/settings/usecase"
)

// settingsRowID は単一レコード運用のための固定主キーです。
const settingsRowID = 1

// settingsSQLite はSettingsRepositoryインターフェースのSQLite実装です。
type settingsSQLite struct {
	db *gorm.DB
}

var _ usecase.SettingsRepository = (*settingsSQLite)(nil)

// NewSettingsRepository は指定されたDB接続でリポジトリの新しいインスタンスを生成します。
func NewSettingsRepository(db *gorm.DB) *settingsSQLite {
	return &settingsSQLite{db: db}
}

// Get は設定レコードを返します。レコードが無い場合は usecase.ErrNoSettings を返します。
func (r *settingsSQLite) Get(ctx context.Context) (entity.Settings, error) {
	var m SettingsModel
	err := r.db.WithContext(ctx).First(&m, settingsRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.Settings{}, usecase.ErrNoSettings
	}
	if err != nil {
		return entity.Settings{}, err
	}
	return m.ToEntity(), nil
}

// Save は設定レコードを作成または上書きします。
func (r *settingsSQLite) Save(ctx context.Context, s entity.Settings) error {
	return r.db.WithContext(ctx).Save(SettingsModelFromEntity(s)).Error
}
