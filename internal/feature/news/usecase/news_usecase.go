// Package usecase implements the news feature's business logic.
package usecase

import (
	"context"
	"errors"
	"regexp"

	"nikkei_backend/internal/feature/news/domain/entity"
)

// MaxItems caps how many headlines a single request returns.
const MaxItems = 20

var codePattern = regexp.MustCompile(`^\d{4}$`)

// ErrInvalidCode is returned before any fetch for a non-4-digit code.
var ErrInvalidCode = errors.New("invalid stock code")

// NewsSource fetches headlines for a stock code. Interfaces live on the
// consumer side, following Go convention.
type NewsSource interface {
	Fetch(ctx context.Context, code string) ([]entity.Item, error)
}

type newsUsecase struct {
	source NewsSource
}

// NewNewsUsecase returns a usecase over the given source.
func NewNewsUsecase(source NewsSource) *newsUsecase {
	return &newsUsecase{source: source}
}

// GetNews validates the code and returns up to MaxItems headlines.
func (nu *newsUsecase) GetNews(ctx context.Context, code string) ([]entity.Item, error) {
	if !codePattern.MatchString(code) {
		return nil, ErrInvalidCode
	}

	items, err := nu.source.Fetch(ctx, code)
	if err != nil {
		return nil, err
	}
	if len(items) > MaxItems {
		items = items[:MaxItems]
	}
	return items, nil
}
