// Package api はフィーチャー間で共有されるワイヤレベルのレスポンス型を定義します。
package api

// ErrorResponse は全エンドポイント共通のエラーペイロードです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse は単純な結果通知のペイロードです。
type MessageResponse struct {
	Message string `json:"message"`
}

// CandleResponse はAPIレスポンスにおける日足1本分のOHLCVです。
type CandleResponse struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}
