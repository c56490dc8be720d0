package dto

import (
	"nikkei_backend/internal/api"
	"nikkei_backend/internal/feature/candles/domain/entity"
)

// SeriesResponse はロウソク足シリーズのレスポンスDTOです。
type SeriesResponse struct {
	Code    string               `json:"code"`    // 銘柄コード
	Source  string               `json:"source"`  // cache / stooq / dummy
	Dummy   bool                 `json:"dummy"`   // 合成データかどうか
	Candles []api.CandleResponse `json:"candles"` // 古い順
}

// FromEntity converts a domain series into the wire representation.
func FromEntity(s entity.Series) SeriesResponse {
	candles := make([]api.CandleResponse, 0, len(s.Candles))
	for _, c := range s.Candles {
		candles = append(candles, api.CandleResponse{
			Date:   c.Time.Format("2006-01-02"),
			Open:   c.Open,
			High:   c.High,
			Low:    c.Low,
			Close:  c.Close,
			Volume: c.Volume,
		})
	}
	return SeriesResponse{
		Code:    s.Code,
		Source:  s.Source,
		Dummy:   s.Dummy,
		Candles: candles,
	}
}
