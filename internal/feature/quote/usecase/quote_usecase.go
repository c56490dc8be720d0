// Package usecase はquoteフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"regexp"

	"nikkei_backend/internal/feature/quote/domain/entity"
)

var codePattern = regexp.MustCompile(`^\d{4}$`)

// ErrInvalidCode は銘柄コードが4桁数字でない場合に返されます。
var ErrInvalidCode = errors.New("invalid stock code")

// PriceFetcher は現在値の取得元を抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type PriceFetcher interface {
	FetchPrice(ctx context.Context, code string) (float64, error)
}

// quoteUsecase はザラ場中の現在値取得ロジックを定義します。
type quoteUsecase struct {
	fetcher PriceFetcher
}

// NewQuoteUsecase はquoteUsecaseの新しいインスタンスを生成します。
func NewQuoteUsecase(fetcher PriceFetcher) *quoteUsecase {
	return &quoteUsecase{fetcher: fetcher}
}

// GetQuote はコード検証のうえ現在値を返します。検証はI/Oより前に行います。
func (qu *quoteUsecase) GetQuote(ctx context.Context, code string) (entity.Quote, error) {
	if !codePattern.MatchString(code) {
		return entity.Quote{}, ErrInvalidCode
	}

	price, err := qu.fetcher.FetchPrice(ctx, code)
	if err != nil {
		return entity.Quote{}, err
	}
	return entity.Quote{Code: code, Price: price, Source: entity.SourceYahooJP}, nil
}
