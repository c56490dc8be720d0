// Package adapters はsymbollistフィーチャーのストレージ実装を提供します。
package adapters

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"nikkei_backend/internal/feature/symbollist/domain/entity"
	"nikkei_backend/internal/feature/symbollist/usecase"
)

// universeFSRepository は外部ジョブが書き出すuniverse.csvを読み取ります。
// 形式は code,name の2列で、ヘッダ行は有っても無くてもよい。
type universeFSRepository struct {
	path string
}

var _ usecase.SymbolRepository = (*universeFSRepository)(nil)

// NewUniverseFSRepository は指定ファイルを参照するリポジトリを生成します。
func NewUniverseFSRepository(path string) *universeFSRepository {
	return &universeFSRepository{path: path}
}

// List はユニバースの銘柄をファイル順で返します。ファイル不在は空の
// ユニバースとして扱い、コードは4桁にゼロ埋めし、不正な行は読み飛ばします。
func (r *universeFSRepository) List(ctx context.Context) ([]entity.Symbol, error) {
	f, err := os.Open(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return []entity.Symbol{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open universe: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	symbols := []entity.Symbol{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if len(row) == 0 {
			continue
		}

		code := strings.TrimSpace(row[0])
		if code == "" || strings.EqualFold(code, "code") {
			continue // ヘッダまたは空行
		}
		if !isDigits(code) || len(code) > 4 {
			continue
		}
		for len(code) < 4 {
			code = "0" + code
		}

		name := ""
		if len(row) > 1 {
			name = strings.TrimSpace(row[1])
		}
		symbols = append(symbols, entity.Symbol{Code: code, Name: name})
	}
	return symbols, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
