// Package domain はledgerフィーチャーのドメインエラーを定義します。
package domain

import "errors"

var (
	// ErrPortfolioNotFound はポートフォリオ成果物が存在しない場合に返されます。
	// トレード履歴や評価額履歴と違い、ポートフォリオの不在は「まだ一度も
	// ペーパートレードが走っていない」ことを意味します。
	ErrPortfolioNotFound = errors.New("portfolio not found")
)
