// Package usecase はreportsフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"regexp"

	"nikkei_backend/internal/feature/reports/domain"
)

// Latest は最新レポートを指すエイリアスです。
const Latest = "latest"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ErrInvalidAsOf はasofがYYYY-MM-DD形式でない場合に返されます。
var ErrInvalidAsOf = errors.New("invalid report date")

// ReportRepository はレポート成果物ストレージの読み取りレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type ReportRepository interface {
	// ListDates は存在するレポート日付を新しい順で返します。
	// ストレージが読めない場合や成果物が無い場合は空スライスを返します。
	ListDates(ctx context.Context) []string
	// ReadHTML は指定日のHTMLレポートを返します。
	// 成果物が無い場合は domain.ErrReportNotFound を返します。
	ReadHTML(ctx context.Context, date string) ([]byte, error)
	// ReadMarkdown は指定日のMarkdownレポートを返します。
	ReadMarkdown(ctx context.Context, date string) ([]byte, error)
}

// reportsUsecase はレポートカタログと本文取得のロジックを定義します。
type reportsUsecase struct {
	repo ReportRepository
}

// NewReportsUsecase はreportsUsecaseの新しいインスタンスを生成します。
func NewReportsUsecase(repo ReportRepository) *reportsUsecase {
	return &reportsUsecase{repo: repo}
}

// ListDates は利用可能なレポート日付を新しい順で返します。
func (ru *reportsUsecase) ListDates(ctx context.Context) []string {
	return ru.repo.ListDates(ctx)
}

// LatestDate はカタログ中の最新日付を返します。レポートが1件も無い場合はfalseを返します。
func (ru *reportsUsecase) LatestDate(ctx context.Context) (string, bool) {
	dates := ru.repo.ListDates(ctx)
	if len(dates) == 0 {
		return "", false
	}
	return dates[0], true
}

// Resolve はasof（"latest"・空文字・具体日付）を実在し得る日付文字列へ解決します。
// I/Oより先に形式を検証します。
func (ru *reportsUsecase) Resolve(ctx context.Context, asof string) (string, error) {
	if asof == "" || asof == Latest {
		date, ok := ru.LatestDate(ctx)
		if !ok {
			return "", domain.ErrReportNotFound
		}
		return date, nil
	}
	if !datePattern.MatchString(asof) {
		return "", ErrInvalidAsOf
	}
	return asof, nil
}

// GetHTML はasofを解決し、該当日のHTMLレポート本文と解決済み日付を返します。
func (ru *reportsUsecase) GetHTML(ctx context.Context, asof string) (string, []byte, error) {
	date, err := ru.Resolve(ctx, asof)
	if err != nil {
		return "", nil, err
	}
	body, err := ru.repo.ReadHTML(ctx, date)
	if err != nil {
		return "", nil, err
	}
	return date, body, nil
}

// GetMarkdown はasofを解決し、該当日のMarkdownレポート本文と解決済み日付を返します。
func (ru *reportsUsecase) GetMarkdown(ctx context.Context, asof string) (string, []byte, error) {
	date, err := ru.Resolve(ctx, asof)
	if err != nil {
		return "", nil, err
	}
	body, err := ru.repo.ReadMarkdown(ctx, date)
	if err != nil {
		return "", nil, err
	}
	return date, body, nil
}
