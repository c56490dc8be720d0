// Package dto defines data transfer objects for the ledger HTTP API.
package dto

import "nikkei_backend/internal/feature/ledger/domain/entity"

// PositionResponse is one holding in the portfolio summary.
type PositionResponse struct {
	Code    string  `json:"code"`
	Qty     int     `json:"qty"`
	AvgCost float64 `json:"avgCost"`
}

// PortfolioResponse is the read-only portfolio summary.
type PortfolioResponse struct {
	Cash          float64            `json:"cash"`
	Positions     []PositionResponse `json:"positions"`
	LastTradeDate string             `json:"lastTradeDate,omitempty"`
}

// TradeResponse is one executed paper trade.
type TradeResponse struct {
	TS       string  `json:"ts"`
	Date     string  `json:"date"`
	Code     string  `json:"code"`
	Side     string  `json:"side"`
	Qty      int     `json:"qty"`
	Price    float64 `json:"price"`
	Notional float64 `json:"notional"`
	Reason   string  `json:"reason,omitempty"`
}

// EquityPointResponse is one daily equity snapshot.
type EquityPointResponse struct {
	Date          string  `json:"date"`
	Cash          float64 `json:"cash"`
	HoldingsValue float64 `json:"holdingsValue"`
	Total         float64 `json:"total"`
}

// FromPortfolio converts the domain portfolio into the wire representation.
func FromPortfolio(p entity.Portfolio) PortfolioResponse {
	positions := make([]PositionResponse, 0, len(p.Positions))
	for _, pos := range p.Positions {
		positions = append(positions, PositionResponse{
			Code:    pos.Code,
			Qty:     pos.Qty,
			AvgCost: pos.AvgCost,
		})
	}
	return PortfolioResponse{
		Cash:          p.Cash,
		Positions:     positions,
		LastTradeDate: p.LastTradeDate,
	}
}

// FromTrades converts domain trades into the wire representation.
func FromTrades(trades []entity.Trade) []TradeResponse {
	out := make([]TradeResponse, 0, len(trades))
	for _, t := range trades {
		out = append(out, TradeResponse{
			TS:       t.TS,
			Date:     t.Date,
			Code:     t.Code,
			Side:     t.Side,
			Qty:      t.Qty,
			Price:    t.Price,
			Notional: t.Notional,
			Reason:   t.Reason,
		})
	}
	return out
}

// FromEquity converts domain equity points into the wire representation.
func FromEquity(points []entity.EquityPoint) []EquityPointResponse {
	out := make([]EquityPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, EquityPointResponse{
			Date:          p.Date,
			Cash:          p.Cash,
			HoldingsValue: p.HoldingsValue,
			Total:         p.Total,
		})
	}
	return out
}
