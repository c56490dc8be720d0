// Package adapters はledgerフィーチャーのストレージ実装を提供します。
package adapters

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"nikkei_backend/internal/feature/ledger/domain"
	"nikkei_backend/internal/feature/ledger/domain/entity"
	"nikkei_backend/internal/feature/ledger/usecase"
)

// ペーパートレーダーの成果物ファイル名。
const (
	portfolioFile = "portfolio.json"
	tradesFile    = "trades.csv"
	equityFile    = "equity.csv"
)

// paperFSRepository はペーパートレーダーが書き出すディレクトリを読み取ります。
type paperFSRepository struct {
	dir string
}

var _ usecase.LedgerRepository = (*paperFSRepository)(nil)

// NewPaperFSRepository は指定ディレクトリを参照するリポジトリを生成します。
func NewPaperFSRepository(dir string) *paperFSRepository {
	return &paperFSRepository{dir: dir}
}

// portfolioJSON はペーパートレーダーのJSON形式に対応します。
type portfolioJSON struct {
	Cash      float64 `json:"cash"`
	Positions map[string]struct {
		Qty     int     `json:"qty"`
		AvgCost float64 `json:"avg_cost"`
	} `json:"positions"`
	LastTradeDate *string `json:"last_trade_date"`
}

// LoadPortfolio は現在のポートフォリオを返します。
// ファイルが無い場合は domain.ErrPortfolioNotFound を返します。
func (r *paperFSRepository) LoadPortfolio(ctx context.Context) (entity.Portfolio, error) {
	b, err := os.ReadFile(filepath.Join(r.dir, portfolioFile))
	if errors.Is(err, os.ErrNotExist) {
		return entity.Portfolio{}, domain.ErrPortfolioNotFound
	}
	if err != nil {
		return entity.Portfolio{}, fmt.Errorf("read portfolio: %w", err)
	}

	var pj portfolioJSON
	if err := json.Unmarshal(b, &pj); err != nil {
		return entity.Portfolio{}, fmt.Errorf("parse portfolio: %w", err)
	}

	p := entity.Portfolio{Cash: pj.Cash, Positions: []entity.Position{}}
	if pj.LastTradeDate != nil {
		p.LastTradeDate = *pj.LastTradeDate
	}
	for code, pos := range pj.Positions {
		p.Positions = append(p.Positions, entity.Position{
			Code:    code,
			Qty:     pos.Qty,
			AvgCost: pos.AvgCost,
		})
	}
	// mapの列挙順は不定なので表示順を固定する
	sort.Slice(p.Positions, func(i, j int) bool { return p.Positions[i].Code < p.Positions[j].Code })
	return p, nil
}

// LoadTrades はトレード履歴をファイル順（古い順）で返します。
// ファイル不在は空の履歴として扱います。旧形式ヘッダ
// （ts列なし）や重複ヘッダ行、列数不足の行は読み飛ばします。
func (r *paperFSRepository) LoadTrades(ctx context.Context) ([]entity.Trade, error) {
	rows, err := r.readCSV(tradesFile)
	if err != nil {
		return nil, err
	}

	trades := make([]entity.Trade, 0, len(rows))
	for _, row := range rows {
		// 重複ヘッダ行（追記運用の名残）は読み飛ばす
		if len(row) > 0 && (row[0] == "ts" || row[0] == "date") {
			continue
		}
		// 旧形式: date,code,side,qty,price,notional,reason
		if len(row) == 7 {
			row = append([]string{row[0] + "T09:00:00+09:00"}, row...)
		}
		if len(row) < 8 {
			continue
		}

		qty, err1 := strconv.Atoi(row[4])
		price, err2 := strconv.ParseFloat(row[5], 64)
		notional, err3 := strconv.ParseFloat(row[6], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}

		trades = append(trades, entity.Trade{
			TS:       row[0],
			Date:     row[1],
			Code:     row[2],
			Side:     row[3],
			Qty:      qty,
			Price:    price,
			Notional: notional,
			Reason:   row[7],
		})
	}
	return trades, nil
}

// LoadEquity は日次評価額を古い順で返します。ファイル不在は空として扱います。
func (r *paperFSRepository) LoadEquity(ctx context.Context) ([]entity.EquityPoint, error) {
	rows, err := r.readCSV(equityFile)
	if err != nil {
		return nil, err
	}

	points := make([]entity.EquityPoint, 0, len(rows))
	for _, row := range rows {
		if len(row) < 4 || row[0] == "date" {
			continue
		}
		cash, err1 := strconv.ParseFloat(row[1], 64)
		holdings, err2 := strconv.ParseFloat(row[2], 64)
		total, err3 := strconv.ParseFloat(row[3], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}
		points = append(points, entity.EquityPoint{
			Date:          row[0],
			Cash:          cash,
			HoldingsValue: holdings,
			Total:         total,
		})
	}
	return points, nil
}

// readCSV は先頭のヘッダ行を取り除いたレコード列を返します。
func (r *paperFSRepository) readCSV(name string) ([][]string, error) {
	f, err := os.Open(filepath.Join(r.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return [][]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // 行ごとの列数差は上位で処理する

	var rows [][]string
	first := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// 壊れた行は読み飛ばして先へ進む
			continue
		}
		if first {
			first = false
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}
