// Package usecase はforecastフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"math"
	"regexp"

	candleentity "nikkei_backend/internal/feature/candles/domain/entity"
	"nikkei_backend/internal/feature/forecast/domain/entity"
)

const (
	// MinHistory を下回る履歴では予測を行いません（空の結果が正常系）。
	MinHistory = 30
	// WindowSize は回帰に使う直近終値の最大本数です。
	WindowSize = 60
	// Horizon は予測する暦日数です。
	Horizon = 10
)

var codePattern = regexp.MustCompile(`^\d{4}$`)

// ErrInvalidCode は銘柄コードが4桁数字でない場合に返されます。
var ErrInvalidCode = errors.New("invalid stock code")

// SeriesProvider は終値系列の解決レイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SeriesProvider interface {
	GetSeries(ctx context.Context, code string) (candleentity.Series, error)
}

// forecastUsecase は線形トレンド予測のロジックを定義します。
type forecastUsecase struct {
	series SeriesProvider
}

// NewForecastUsecase はforecastUsecaseの新しいインスタンスを生成します。
func NewForecastUsecase(series SeriesProvider) *forecastUsecase {
	return &forecastUsecase{series: series}
}

// GetForecast は銘柄コードの系列を解決し、予測を返します。
// コード検証はI/Oより前に行います。
func (fu *forecastUsecase) GetForecast(ctx context.Context, code string) (entity.Forecast, error) {
	if !codePattern.MatchString(code) {
		return entity.Forecast{}, ErrInvalidCode
	}

	series, err := fu.series.GetSeries(ctx, code)
	if err != nil {
		return entity.Forecast{}, err
	}

	return entity.Forecast{
		Code:   code,
		Method: entity.MethodLinearTrend,
		Points: Project(series.Candles),
	}, nil
}

// Project は古い順の日足から先10暦日の終値予測を返します。
//
// 直近 min(60, n) 本の終値を0起点インデックスに対して最小二乗法で
// 回帰し、ウィンドウ終端より先の値を外挿します。分母がゼロになる
// 定数系列では傾きゼロ（水平線）になります。履歴が30本未満の場合は
// 空スライスを返します。
func Project(candles []candleentity.Candle) []entity.Point {
	if len(candles) < MinHistory {
		return []entity.Point{}
	}

	window := candles
	if len(window) > WindowSize {
		window = window[len(window)-WindowSize:]
	}
	n := len(window)

	var sumX, sumY float64
	for i, c := range window {
		sumX += float64(i)
		sumY += c.Close
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var num, den float64
	for i, c := range window {
		dx := float64(i) - meanX
		num += dx * (c.Close - meanY)
		den += dx * dx
	}
	slope := 0.0
	if den != 0 {
		slope = num / den
	}
	intercept := meanY - slope*meanX

	last := window[n-1].Time
	points := make([]entity.Point, 0, Horizon)
	for k := 1; k <= Horizon; k++ {
		fitted := intercept + slope*float64(n-1+k)
		points = append(points, entity.Point{
			Date:  last.AddDate(0, 0, k),
			Close: math.Round(fitted*100) / 100,
		})
	}
	return points
}
