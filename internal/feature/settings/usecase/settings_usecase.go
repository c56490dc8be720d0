// Package usecase はsettingsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"nikkei_backend/internal/feature/settings/domain/entity"
)

// ErrNoSettings は設定レコードが未作成の場合にリポジトリが返します。
var ErrNoSettings = errors.New("settings not initialized")

// ErrInvalidSettings は許可外の値を含む更新を拒否する際に返されます。
var ErrInvalidSettings = errors.New("invalid settings")

// SettingsRepository は設定ストアの読み書きレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SettingsRepository interface {
	Get(ctx context.Context) (entity.Settings, error)
	Save(ctx context.Context, s entity.Settings) error
}

// settingsUsecase はダッシュボード設定の取得・更新ロジックを定義します。
type settingsUsecase struct {
	repo SettingsRepository
}

// NewSettingsUsecase はsettingsUsecaseの新しいインスタンスを生成します。
func NewSettingsUsecase(repo SettingsRepository) *settingsUsecase {
	return &settingsUsecase{repo: repo}
}

// Get は現在の設定を返します。ストアが空の場合はデフォルト値を
// 書き込んだうえで返します（初回起動時の正常系）。
func (su *settingsUsecase) Get(ctx context.Context) (entity.Settings, error) {
	s, err := su.repo.Get(ctx)
	if errors.Is(err, ErrNoSettings) {
		s = entity.Default()
		if err := su.repo.Save(ctx, s); err != nil {
			return entity.Settings{}, fmt.Errorf("seed default settings: %w", err)
		}
		return s, nil
	}
	if err != nil {
		return entity.Settings{}, err
	}
	return s, nil
}

// Update は値を検証したうえで設定を上書きし、保存後の値を返します。
func (su *settingsUsecase) Update(ctx context.Context, s entity.Settings) (entity.Settings, error) {
	if err := validate(s); err != nil {
		return entity.Settings{}, err
	}
	if err := su.repo.Save(ctx, s); err != nil {
		return entity.Settings{}, err
	}
	return s, nil
}

// validate は許可リストに対する値チェックを行います。
func validate(s entity.Settings) error {
	switch s.Theme {
	case entity.ThemeDark, entity.ThemeLight:
	default:
		return fmt.Errorf("%w: theme %q", ErrInvalidSettings, s.Theme)
	}
	switch s.PriceSource {
	case entity.PriceSourceCache, entity.PriceSourceStooq:
	default:
		return fmt.Errorf("%w: price source %q", ErrInvalidSettings, s.PriceSource)
	}
	return nil
}
