package dto

import "nikkei_backend/internal/feature/picks/domain/entity"

// PickResponse is the wire form of one ranked candidate. All optional
// fields are omitted rather than zeroed.
type PickResponse struct {
	Rank       int      `json:"rank"`
	Code       string   `json:"code"`
	Name       string   `json:"name,omitempty"`
	Entry      *float64 `json:"entry,omitempty"`
	Stop       *float64 `json:"stop,omitempty"`
	TakeProfit *float64 `json:"takeProfit,omitempty"`
	Score      *float64 `json:"score,omitempty"`
	Close      *float64 `json:"close,omitempty"`
	Reasons    []string `json:"reasons,omitempty"`
}

// PicksResponse wraps a resolved date with its ranked picks.
type PicksResponse struct {
	AsOf  string         `json:"asof"`
	Picks []PickResponse `json:"picks"`
}

// FromEntities converts domain picks into the wire representation.
func FromEntities(asof string, picks []entity.Pick) PicksResponse {
	out := make([]PickResponse, 0, len(picks))
	for _, p := range picks {
		out = append(out, PickResponse{
			Rank:       p.Rank,
			Code:       p.Code,
			Name:       p.Name,
			Entry:      p.Entry,
			Stop:       p.Stop,
			TakeProfit: p.TakeProfit,
			Score:      p.Score,
			Close:      p.Close,
			Reasons:    p.Reasons,
		})
	}
	return PicksResponse{AsOf: asof, Picks: out}
}
