package dailycsv

import (
	"strings"
	"testing"
	"time"
)

func TestParse_SkipsHeaderAndMalformedRows(t *testing.T) {
	t.Parallel()

	in := strings.Join([]string{
		"Date,Open,High,Low,Close,Volume",
		"2024-03-01,100,110,90,105,1000",
		"2024-03-02,101,111,91,106,abc",
		"2024-03-03,102,112,92,107,",
		"not-a-date,1,2,3,4,5",
		"2024-03-04,103,113,93,108,3000",
		"2024-03-05,104,114",
	}, "\n")

	out, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 2 {
		t.Fatalf("expected 2 valid rows, got %d", len(out))
	}
	if got := out[0].Time.Format("2006-01-02"); got != "2024-03-01" {
		t.Errorf("expected first row 2024-03-01, got %s", got)
	}
	if out[1].Volume != 3000 {
		t.Errorf("expected volume 3000, got %v", out[1].Volume)
	}
}

func TestParse_SortsOldestFirst(t *testing.T) {
	t.Parallel()

	in := strings.Join([]string{
		"date,open,high,low,close,volume",
		"2024-03-03,1,1,1,1,1",
		"2024-03-01,2,2,2,2,2",
		"2024-03-02,3,3,3,3,3",
	}, "\n")

	out, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(out))
	}
	want := []string{"2024-03-01", "2024-03-02", "2024-03-03"}
	for i, w := range want {
		if got := out[i].Time.Format("2006-01-02"); got != w {
			t.Errorf("row %d: expected %s, got %s", i, w, got)
		}
	}
}

func TestParse_ZeroVolumeIsValid(t *testing.T) {
	t.Parallel()

	out, err := Parse(strings.NewReader("date,open,high,low,close,volume\n2024-03-01,100,110,90,105,0\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 row, got %d", len(out))
	}
	if out[0].Volume != 0 {
		t.Errorf("expected zero volume preserved, got %v", out[0].Volume)
	}
	if !out[0].Time.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected date: %v", out[0].Time)
	}
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	out, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected no rows, got %d", len(out))
	}
}
