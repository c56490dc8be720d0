// Package entity はforecastフィーチャーのドメインモデルを定義します。
package entity

import "time"

// MethodLinearTrend は最小二乗の線形トレンド法の識別子です。
// レスポンスに含まれるため、将来の手法追加時に消費側が区別できます。
const MethodLinearTrend = "linear_trend"

// Point は予測系列の1点です。Dateは既知の最終日より未来になります。
type Point struct {
	Date  time.Time
	Close float64
}

// Forecast は1銘柄の予測結果です。履歴不足時はPointsが空になります。
type Forecast struct {
	Code   string
	Method string
	Points []Point
}
