// Package dailycsv parses the delimited daily-bar format shared by the
// local price cache files and the Stooq download endpoint.
package dailycsv

import (
	"encoding/csv"
	"errors"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"nikkei_backend/internal/feature/candles/domain/entity"
)

// Parse reads `date,open,high,low,close,volume` rows into candles, oldest
// first. The header row and malformed rows are skipped; a row is malformed
// when its date does not parse or any numeric column is missing or not
// finite.
func Parse(r io.Reader) ([]entity.Candle, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var out []entity.Candle
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				continue
			}
			return nil, err
		}
		if c, ok := parseRow(rec); ok {
			out = append(out, c)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Time.Before(out[j].Time) })
	return out, nil
}

func parseRow(rec []string) (entity.Candle, bool) {
	if len(rec) < 6 {
		return entity.Candle{}, false
	}
	tm, err := time.Parse("2006-01-02", strings.TrimSpace(rec[0]))
	if err != nil {
		return entity.Candle{}, false
	}

	var vals [5]float64
	for i := range vals {
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[i+1]), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return entity.Candle{}, false
		}
		vals[i] = v
	}

	return entity.Candle{
		Time:   tm,
		Open:   vals[0],
		High:   vals[1],
		Low:    vals[2],
		Close:  vals[3],
		Volume: vals[4],
	}, true
}
