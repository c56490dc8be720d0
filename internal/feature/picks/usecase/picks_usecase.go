// Package usecase implements the picks feature's business logic.
package usecase

import (
	"context"
	"errors"
	"log/slog"
	"regexp"

	"nikkei_backend/internal/feature/picks/domain"
	"nikkei_backend/internal/feature/picks/domain/entity"
)

// Latest aliases the newest available report date.
const Latest = "latest"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ErrInvalidAsOf is returned for an asof that is neither "latest" nor a
// YYYY-MM-DD date, before any artifact access.
var ErrInvalidAsOf = errors.New("invalid picks date")

// SidecarRepository loads the machine-readable picks artifact.
// Interfaces live on the consumer side, following Go convention.
type SidecarRepository interface {
	// Load returns the sidecar's picks for a concrete date, or
	// domain.ErrPicksNotFound when the file does not exist.
	Load(ctx context.Context, date string) ([]entity.Pick, error)
}

// ReportSource resolves report dates and bodies. The reports feature's
// usecase satisfies this without the two packages sharing sentinels.
type ReportSource interface {
	LatestDate(ctx context.Context) (string, bool)
	GetMarkdown(ctx context.Context, asof string) (string, []byte, error)
}

// Extractor parses report text into picks.
type Extractor interface {
	Extract(text string) []entity.Pick
}

// picksUsecase resolves picks for a report date, preferring the sidecar
// and falling back to parsing the report document itself.
type picksUsecase struct {
	sidecar   SidecarRepository
	reports   ReportSource
	extractor Extractor
}

// NewPicksUsecase wires the three collaborators together.
func NewPicksUsecase(sidecar SidecarRepository, reports ReportSource, extractor Extractor) *picksUsecase {
	return &picksUsecase{sidecar: sidecar, reports: reports, extractor: extractor}
}

// GetPicks returns the ranked picks for asof ("latest", empty, or a
// concrete date) together with the resolved date.
//
// Resolution order: sidecar JSON, then report-markdown extraction, then
// domain.ErrPicksNotFound when neither artifact exists. A corrupt
// sidecar degrades to extraction rather than failing the request.
func (pu *picksUsecase) GetPicks(ctx context.Context, asof string) (string, []entity.Pick, error) {
	date := asof
	if date == "" || date == Latest {
		latest, ok := pu.reports.LatestDate(ctx)
		if !ok {
			return "", nil, domain.ErrPicksNotFound
		}
		date = latest
	} else if !datePattern.MatchString(date) {
		return "", nil, ErrInvalidAsOf
	}

	picks, err := pu.sidecar.Load(ctx, date)
	switch {
	case err == nil:
		return date, picks, nil
	case errors.Is(err, domain.ErrPicksNotFound):
		// Normal for dates before the sidecar existed.
	default:
		slog.Warn("picks sidecar unreadable, falling back to report text", "date", date, "error", err)
	}

	_, md, err := pu.reports.GetMarkdown(ctx, date)
	if err != nil {
		return "", nil, domain.ErrPicksNotFound
	}
	return date, pu.extractor.Extract(string(md)), nil
}
