// Package entity はledgerフィーチャーのドメインモデルを定義します。
// ペーパートレーダーが書き出す成果物の読み取り専用ビューであり、
// この層が台帳を更新することはありません。
package entity

// Position は1銘柄の保有状況です。
type Position struct {
	Code    string
	Qty     int
	AvgCost float64
}

// Portfolio はペーパートレーダーの現在のポートフォリオです。
type Portfolio struct {
	Cash          float64
	Positions     []Position // コード昇順
	LastTradeDate string     // YYYY-MM-DD、未取引なら空
}

// Trade は約定済みペーパートレード1件です。
type Trade struct {
	TS       string // ISO 8601、旧形式の行では日付から補完される
	Date     string // YYYY-MM-DD
	Code     string
	Side     string // "BUY" / "SELL"
	Qty      int
	Price    float64
	Notional float64
	Reason   string
}

// EquityPoint は日次の評価額スナップショット1点です。
type EquityPoint struct {
	Date          string // YYYY-MM-DD
	Cash          float64
	HoldingsValue float64
	Total         float64
}
