package usecase

import (
	"context"
	"errors"
	"log/slog"
	"regexp"

	"nikkei_backend/internal/feature/candles/domain/entity"
)

const (
	// MaxSeriesLen は1銘柄あたりの最大返却本数です。
	MaxSeriesLen = 200
	// DummySeriesDays はダミー系列が生成する暦日数です。
	DummySeriesDays = 221
)

var codePattern = regexp.MustCompile(`^\d{4}$`)

// CacheRepository はローカル価格キャッシュの読み取りレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type CacheRepository interface {
	// LoadDaily はキャッシュされた日足系列を古い順で返します。
	// キャッシュファイルが存在しない場合は ErrNoCache を返します。
	LoadDaily(ctx context.Context, code string) ([]entity.Candle, error)
}

// RemoteFetcher は外部クォートエンドポイントから日足を取得します。
type RemoteFetcher interface {
	FetchDaily(ctx context.Context, code string) ([]entity.Candle, error)
}

// DummyGenerator は決定的なプレースホルダ系列を生成します。
type DummyGenerator interface {
	Generate(code string, days int) []entity.Candle
}

// candlesUsecase は日足系列の解決ロジックを定義します。
type candlesUsecase struct {
	cache  CacheRepository
	remote RemoteFetcher // オフライン構成では nil
	dummy  DummyGenerator
}

// NewCandlesUsecase はcandlesUsecaseの新しいインスタンスを生成します。
func NewCandlesUsecase(cache CacheRepository, remote RemoteFetcher, dummy DummyGenerator) *candlesUsecase {
	return &candlesUsecase{cache: cache, remote: remote, dummy: dummy}
}

// GetSeries は4桁の銘柄コードに対する日足OHLCV系列を解決します。
//
// 解決順序:
//  1. コード検証（I/Oより前に行う）
//  2. ネットワークモードではリモート取得を試み、失敗時はローカルへ退避
//  3. ローカルキャッシュファイル
//  4. 決定的なダミー系列（同一コードなら常に同一の結果）
func (cu *candlesUsecase) GetSeries(ctx context.Context, code string) (entity.Series, error) {
	if !codePattern.MatchString(code) {
		return entity.Series{}, ErrInvalidCode
	}

	if cu.remote != nil {
		cs, err := cu.remote.FetchDaily(ctx, code)
		if err == nil {
			return entity.Series{Code: code, Source: entity.SourceStooq, Candles: tail(cs, MaxSeriesLen)}, nil
		}
		slog.Warn("remote series fetch failed, falling back to local data", "code", code, "error", err)
	}

	cs, err := cu.cache.LoadDaily(ctx, code)
	switch {
	case err == nil:
		return entity.Series{Code: code, Source: entity.SourceCache, Candles: tail(cs, MaxSeriesLen)}, nil
	case errors.Is(err, ErrNoCache):
		// キャッシュ未整備はダミー系列で代替する正常系
	default:
		slog.Warn("price cache unreadable, serving dummy series", "code", code, "error", err)
	}

	return entity.Series{
		Code:    code,
		Source:  entity.SourceDummy,
		Dummy:   true,
		Candles: cu.dummy.Generate(code, DummySeriesDays),
	}, nil
}

// tail は直近n本に切り詰めます。
func tail(cs []entity.Candle, n int) []entity.Candle {
	if len(cs) <= n {
		return cs
	}
	return cs[len(cs)-n:]
}
