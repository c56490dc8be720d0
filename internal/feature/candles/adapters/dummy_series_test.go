package adapters

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedClock() time.Time {
	return time.Date(2025, 6, 2, 15, 4, 5, 0, time.UTC)
}

func TestDummySeries_Deterministic(t *testing.T) {
	g := &dummySeries{now: fixedClock}

	a := g.Generate("7203", 221)
	b := g.Generate("7203", 221)

	assert.Equal(t, a, b, "same code and day must yield the same series")
}

func TestDummySeries_ShapeAndDates(t *testing.T) {
	g := &dummySeries{now: fixedClock}

	series := g.Generate("6758", 221)
	if len(series) != 221 {
		t.Fatalf("len = %d, want 221", len(series))
	}

	last := series[len(series)-1]
	if !last.Time.Equal(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("last date = %v, want 2025-06-02", last.Time)
	}
	first := series[0]
	if !first.Time.Equal(time.Date(2024, 10, 25, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first date = %v, want 2024-10-25", first.Time)
	}

	for i, c := range series {
		if i > 0 && !c.Time.After(series[i-1].Time) {
			t.Fatalf("dates not strictly increasing at %d", i)
		}
		for _, v := range []float64{c.Open, c.High, c.Low, c.Close, c.Volume} {
			if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
				t.Fatalf("non-finite or non-positive value at %d: %+v", i, c)
			}
		}
		if c.High < c.Open-0.01 || c.High < c.Close-0.01 {
			t.Errorf("high below open/close at %d: %+v", i, c)
		}
		if c.Low > c.Open+0.01 || c.Low > c.Close+0.01 {
			t.Errorf("low above open/close at %d: %+v", i, c)
		}
	}
}

func TestDummySeries_DivergesByCode(t *testing.T) {
	g := &dummySeries{now: fixedClock}

	a := g.Generate("7203", 30)
	b := g.Generate("9984", 30)

	same := true
	for i := range a {
		if a[i].Close != b[i].Close {
			same = false
			break
		}
	}
	assert.False(t, same, "different codes should produce different walks")
}
