// Package entity はsettingsフィーチャーのドメインモデルを定義します。
package entity

// Theme values accepted by the dashboard.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// PriceSource values accepted by the dashboard.
const (
	PriceSourceCache = "cache"
	PriceSourceStooq = "stooq"
)

// Settings はダッシュボードの表示・動作設定の単一レコードです。
// 抽出パイプライン側は書き込みを行わないため、永続化対象はこれだけです。
type Settings struct {
	Theme       string
	NewsEnabled bool
	PriceSource string
}

// Default returns the settings a fresh installation starts with.
func Default() Settings {
	return Settings{
		Theme:       ThemeDark,
		NewsEnabled: true,
		PriceSource: PriceSourceCache,
	}
}
