// Package entity はquoteフィーチャーのドメインモデルを定義します。
package entity

// SourceYahooJP is the provenance tag for prices scraped from Yahoo Japan.
const SourceYahooJP = "yahoo_jp"

// Quote は1銘柄のベストエフォートな現在値です。日足キャッシュと違い
// ザラ場中の値であり、取得元のHTML構造次第で取れないことがあります。
type Quote struct {
	Code   string
	Price  float64
	Source string
}
