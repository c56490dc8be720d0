package cache

import (
	"time"
)

// TimeUntilNext8AM は指定時刻から次の午前8時（日本時間）までの期間を返します。
// stooqの日次データは朝に更新されるため、キャッシュはその直前まで保持します。
func TimeUntilNext8AM(now time.Time) time.Duration {
	loc, _ := time.LoadLocation("Asia/Tokyo")
	now = now.In(loc)

	// 次の午前8時を計算
	next8am := time.Date(now.Year(), now.Month(), now.Day(), 8, 0, 0, 0, loc)

	// 今日の午前8時が既に過ぎている場合は明日の午前8時を使用
	if now.After(next8am) {
		next8am = next8am.Add(24 * time.Hour)
	}

	return next8am.Sub(now)
}
