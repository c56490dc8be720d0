package dto

import (
	"nikkei_backend/internal/feature/forecast/domain/entity"
)

// PointResponse は予測1点のレスポンスDTOです。
type PointResponse struct {
	Date  string  `json:"date"`  // YYYY-MM-DD
	Close float64 `json:"close"` // 予測終値（小数2桁）
}

// ForecastResponse は予測系列のレスポンスDTOです。
type ForecastResponse struct {
	Code   string          `json:"code"`
	Method string          `json:"method"`
	Points []PointResponse `json:"points"`
}

// FromEntity converts a domain forecast into the wire representation.
func FromEntity(f entity.Forecast) ForecastResponse {
	points := make([]PointResponse, 0, len(f.Points))
	for _, p := range f.Points {
		points = append(points, PointResponse{
			Date:  p.Date.Format("2006-01-02"),
			Close: p.Close,
		})
	}
	return ForecastResponse{Code: f.Code, Method: f.Method, Points: points}
}
