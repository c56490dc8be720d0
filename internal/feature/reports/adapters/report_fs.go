// Package adapters はreportsフィーチャーのストレージ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"nikkei_backend/internal/feature/reports/domain"
	"nikkei_backend/internal/feature/reports/usecase"
)

// 日次ジョブの命名規約に一致するものだけをカタログに載せる。
var reportNamePattern = regexp.MustCompile(`^nikkei-report-(\d{4}-\d{2}-\d{2})\.html$`)

// reportFSRepository は日次ジョブが書き出すレポートディレクトリを読み取ります。
type reportFSRepository struct {
	dir string
}

var _ usecase.ReportRepository = (*reportFSRepository)(nil)

// NewReportFSRepository は指定ディレクトリを参照するリポジトリを生成します。
func NewReportFSRepository(dir string) *reportFSRepository {
	return &reportFSRepository{dir: dir}
}

// ListDates はレポート命名規約に一致するファイルの日付を新しい順で返します。
// レポート不在は正常系なので、読み取り失敗でもエラーにはしません。
func (r *reportFSRepository) ListDates(ctx context.Context) []string {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("reports directory unreadable", "dir", r.dir, "error", err)
		}
		return []string{}
	}

	seen := map[string]struct{}{}
	dates := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := reportNamePattern.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		dates = append(dates, m[1])
	}

	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}

// ReadHTML は指定日のHTMLレポート本文を返します。
func (r *reportFSRepository) ReadHTML(ctx context.Context, date string) ([]byte, error) {
	return r.read(fmt.Sprintf("nikkei-report-%s.html", date))
}

// ReadMarkdown は指定日のMarkdownレポート本文を返します。
func (r *reportFSRepository) ReadMarkdown(ctx context.Context, date string) ([]byte, error) {
	return r.read(fmt.Sprintf("nikkei-report-%s.md", date))
}

func (r *reportFSRepository) read(name string) ([]byte, error) {
	b, err := os.ReadFile(filepath.Join(r.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, domain.ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read report %s: %w", name, err)
	}
	return b, nil
}
