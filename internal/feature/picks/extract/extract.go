// Package extract parses a daily report document into ranked picks.
//
// The report is free-form markdown written for humans; only two line
// families carry machine-readable data. An overview line packs the whole
// candidate into one row:
//
//	3. **7203** トヨタ自動車｜Entry **2800**｜Stop **2650**｜TP **3100**｜Score **0.412**
//
// and a detail section opened by a heading of the form
//
//	### 3. 7203 — トヨタ自動車
//
// contributes the latest close (a two-column table row) and rationale
// bullets. Everything else in the document is ignored.
package extract

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"nikkei_backend/internal/feature/picks/domain/entity"
)

var (
	// The delimiter is U+FF5C as emitted by the report generator.
	overviewPattern = regexp.MustCompile(`^\s*(\d+)\.\s+\*\*(\d{4})\*\*([^｜]*)｜Entry\s+\*\*([^*｜]+)\*\*｜Stop\s+\*\*([^*｜]+)\*\*｜TP\s+\*\*([^*｜]+)\*\*｜Score\s+\*\*([^*｜]+)\*\*`)
	headingPattern  = regexp.MustCompile(`^###\s+(\d+)\.\s+(\d{4})(?:\s+—\s+(.+?))?\s*$`)
	closeRowPattern = regexp.MustCompile(`^\|\s*最新收盘价\s*\|\s*(-?[0-9][\d,.]*)\s*(?:日元)?\s*\|`)
	bulletPattern   = regexp.MustCompile(`^\s*-\s+(.+?)\s*$`)
)

// DefaultKeywords is the rationale filter: a detail bullet is kept only
// when it mentions one of these technical markers. The set mirrors the
// vocabulary the report generator itself uses and is deliberately
// narrow; widening it would pull unrelated prose into Reasons.
func DefaultKeywords() []string {
	return []string{"momentum", "动量", "EMA", "vol", "波动率"}
}

// Extractor turns report text into picks. Keyword matching is
// case-insensitive substring containment.
type Extractor struct {
	keywords []string
}

// New returns an Extractor with the given rationale keywords.
// An empty set falls back to DefaultKeywords.
func New(keywords []string) *Extractor {
	if len(keywords) == 0 {
		keywords = DefaultKeywords()
	}
	lowered := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			lowered = append(lowered, k)
		}
	}
	return &Extractor{keywords: lowered}
}

// overviewRow is the pass-1 intermediate, keyed by code.
type overviewRow struct {
	rank       int
	name       string
	entry      *float64
	stop       *float64
	takeProfit *float64
	score      *float64
}

// detailRow is the pass-2 intermediate, keyed by code.
type detailRow struct {
	rank    int
	name    string
	close   *float64
	reasons []string
}

// detailState is the accumulator threaded through the detail pass.
// current holds the code of the open section, empty outside sections.
type detailState struct {
	current string
	rows    map[string]*detailRow
}

// Extract runs both passes over the document and merges the results
// into the final ranked, truncated pick list.
func (e *Extractor) Extract(text string) []entity.Pick {
	lines := strings.Split(text, "\n")

	overview := map[string]*overviewRow{}
	for _, line := range lines {
		if m := overviewPattern.FindStringSubmatch(line); m != nil {
			rank, err := strconv.Atoi(m[1])
			if err != nil || rank <= 0 {
				continue
			}
			// Duplicate code: the later overview line replaces the
			// whole field group, it is not merged field by field.
			overview[m[2]] = &overviewRow{
				rank:       rank,
				name:       strings.TrimSpace(m[3]),
				entry:      parseNumber(m[4]),
				stop:       parseNumber(m[5]),
				takeProfit: parseNumber(m[6]),
				score:      parseNumber(m[7]),
			}
		}
	}

	st := detailState{rows: map[string]*detailRow{}}
	for _, line := range lines {
		st = e.detailLine(st, line)
	}

	return merge(overview, st.rows)
}

// detailLine consumes one line and returns the advanced accumulator.
func (e *Extractor) detailLine(st detailState, line string) detailState {
	if m := headingPattern.FindStringSubmatch(line); m != nil {
		rank, err := strconv.Atoi(m[1])
		if err != nil || rank <= 0 {
			st.current = ""
			return st
		}
		code := m[2]
		row, ok := st.rows[code]
		if !ok {
			row = &detailRow{}
			st.rows[code] = row
		}
		row.rank = rank
		row.name = strings.TrimSpace(m[3])
		st.current = code
		return st
	}

	if st.current == "" {
		return st
	}
	row := st.rows[st.current]

	if m := closeRowPattern.FindStringSubmatch(line); m != nil {
		if v := parseNumber(m[1]); v != nil {
			row.close = v
		}
		return st
	}

	if m := bulletPattern.FindStringSubmatch(line); m != nil {
		if e.matchesKeyword(m[1]) {
			row.reasons = append(row.reasons, m[1])
		}
	}
	return st
}

func (e *Extractor) matchesKeyword(s string) bool {
	lower := strings.ToLower(s)
	for _, k := range e.keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// merge combines the two passes. Overview values win; a detail section
// only fills fields the overview left empty, except reasons and close
// which the overview never carries.
func merge(overview map[string]*overviewRow, details map[string]*detailRow) []entity.Pick {
	picks := make([]entity.Pick, 0, len(overview)+len(details))

	for code, o := range overview {
		p := entity.Pick{
			Rank:       o.rank,
			Code:       code,
			Name:       o.name,
			Entry:      o.entry,
			Stop:       o.stop,
			TakeProfit: o.takeProfit,
			Score:      o.score,
		}
		if d, ok := details[code]; ok {
			p.Close = d.close
			p.Reasons = d.reasons
			if p.Name == "" {
				p.Name = d.name
			}
		}
		picks = append(picks, p)
	}

	for code, d := range details {
		if _, ok := overview[code]; ok {
			continue
		}
		picks = append(picks, entity.Pick{
			Rank:    d.rank,
			Code:    code,
			Name:    d.name,
			Close:   d.close,
			Reasons: d.reasons,
		})
	}

	valid := picks[:0]
	for _, p := range picks {
		if p.Rank > 0 && p.Code != "" {
			valid = append(valid, p)
		}
	}
	sort.SliceStable(valid, func(i, j int) bool {
		if valid[i].Rank != valid[j].Rank {
			return valid[i].Rank < valid[j].Rank
		}
		return valid[i].Code < valid[j].Code
	})

	if len(valid) > entity.MaxPicks {
		valid = valid[:entity.MaxPicks]
	}
	return valid
}

// parseNumber parses a bold numeric token. Thousands separators are
// tolerated; anything unparsable or non-finite is absent, never zero.
func parseNumber(s string) *float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
