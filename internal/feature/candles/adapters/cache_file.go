// Package adapters はcandlesフィーチャーのデータソース実装を提供します。
package adapters

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"nikkei_backend/internal/feature/candles/adapters/dailycsv"
	"nikkei_backend/internal/feature/candles/domain/entity"
	"nikkei_backend/internal/feature/candles/usecase"
)

// cacheFileRepository は日次ジョブが書き出す銘柄別キャッシュファイル
// （`<code>.jp.csv`）を読み取ります。
type cacheFileRepository struct {
	dir string
}

var _ usecase.CacheRepository = (*cacheFileRepository)(nil)

// NewCacheFileRepository は指定ディレクトリを参照するリポジトリを生成します。
func NewCacheFileRepository(dir string) *cacheFileRepository {
	return &cacheFileRepository{dir: dir}
}

// LoadDaily はキャッシュされた日足系列を古い順で返します。
func (r *cacheFileRepository) LoadDaily(ctx context.Context, code string) ([]entity.Candle, error) {
	name := strings.ToLower(code) + ".jp.csv"

	f, err := os.Open(filepath.Join(r.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, usecase.ErrNoCache
	}
	if err != nil {
		return nil, fmt.Errorf("open price cache %s: %w", name, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close price cache file", "file", name, "error", err)
		}
	}()

	cs, err := dailycsv.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse price cache %s: %w", name, err)
	}
	return cs, nil
}
