// Package usecase はledgerフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"

	"nikkei_backend/internal/feature/ledger/domain/entity"
)

// DefaultTradeLimit は件数指定が無いときに返すトレード数です。
const DefaultTradeLimit = 50

// LedgerRepository はペーパートレーダー成果物の読み取りレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type LedgerRepository interface {
	// LoadPortfolio は domain.ErrPortfolioNotFound を返すことがあります。
	LoadPortfolio(ctx context.Context) (entity.Portfolio, error)
	// LoadTrades はファイル順（古い順）の全履歴を返します。
	LoadTrades(ctx context.Context) ([]entity.Trade, error)
	// LoadEquity は古い順の評価額履歴を返します。
	LoadEquity(ctx context.Context) ([]entity.EquityPoint, error)
}

// ledgerUsecase は台帳の読み取り専用ビューを提供します。
type ledgerUsecase struct {
	repo LedgerRepository
}

// NewLedgerUsecase はledgerUsecaseの新しいインスタンスを生成します。
func NewLedgerUsecase(repo LedgerRepository) *ledgerUsecase {
	return &ledgerUsecase{repo: repo}
}

// GetPortfolio は現在のポートフォリオを返します。
func (lu *ledgerUsecase) GetPortfolio(ctx context.Context) (entity.Portfolio, error) {
	return lu.repo.LoadPortfolio(ctx)
}

// GetTrades は直近のトレードを新しい順で最大limit件返します。
// limitが0以下の場合は DefaultTradeLimit を使います。
func (lu *ledgerUsecase) GetTrades(ctx context.Context, limit int) ([]entity.Trade, error) {
	if limit <= 0 {
		limit = DefaultTradeLimit
	}

	trades, err := lu.repo.LoadTrades(ctx)
	if err != nil {
		return nil, err
	}

	// ファイルは古い順に追記されるので末尾から採り、新しい順へ並べ替える
	if len(trades) > limit {
		trades = trades[len(trades)-limit:]
	}
	out := make([]entity.Trade, 0, len(trades))
	for i := len(trades) - 1; i >= 0; i-- {
		out = append(out, trades[i])
	}
	return out, nil
}

// GetEquity は評価額履歴を古い順で返します（チャート描画用）。
func (lu *ledgerUsecase) GetEquity(ctx context.Context) ([]entity.EquityPoint, error) {
	return lu.repo.LoadEquity(ctx)
}
