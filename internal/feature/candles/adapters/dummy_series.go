package adapters

import (
	"math"
	"strconv"
	"time"

	"nikkei_backend/internal/feature/candles/domain/entity"
	"nikkei_backend/internal/feature/candles/usecase"
)

// dummySeries synthesizes a stable placeholder series for codes without
// cached data, keeping charts and forecasts usable in the offline-first
// setup. The walk is a pure function of the code and the reference day.
type dummySeries struct {
	now func() time.Time
}

var _ usecase.DummyGenerator = (*dummySeries)(nil)

// NewDummySeries returns a generator anchored to the current day.
func NewDummySeries() *dummySeries {
	return &dummySeries{now: time.Now}
}

// Generate returns `days` consecutive calendar days ending today.
// Repeated calls for the same code yield an identical series.
func (g *dummySeries) Generate(code string, days int) []entity.Candle {
	seed, _ := strconv.ParseUint(code, 10, 64)
	base := 500.0 + float64(seed%3000)

	rng := lcg(seed)
	now := g.now().UTC()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, 0, -(days - 1))

	out := make([]entity.Candle, 0, days)
	prev := base
	for i := 0; i < days; i++ {
		step := (rng()*2 - 1) * 0.02 // 日次変動は±2%以内
		close := prev * (1 + step)
		if close < 1 {
			close = 1
		}

		high := math.Max(prev, close) * (1 + rng()*0.01)
		low := math.Min(prev, close) * (1 - rng()*0.01)
		volume := math.Floor(100000 + rng()*900000)

		out = append(out, entity.Candle{
			Time:   start.AddDate(0, 0, i),
			Open:   round2(prev),
			High:   round2(high),
			Low:    round2(low),
			Close:  round2(close),
			Volume: volume,
		})
		prev = close
	}
	return out
}

// lcg returns a deterministic [0,1) sequence seeded from the code.
func lcg(seed uint64) func() float64 {
	state := seed*6364136223846793005 + 1442695040888963407
	return func() float64 {
		state = state*6364136223846793005 + 1442695040888963407
		return float64(state>>11) / float64(1<<53)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
