// Package adapters implements the picks feature's artifact loaders.
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"nikkei_backend/internal/feature/picks/domain"
	"nikkei_backend/internal/feature/picks/domain/entity"
	"nikkei_backend/internal/feature/picks/usecase"
)

// sidecarFSRepository reads the machine-readable picks sidecar the daily
// job writes next to each report.
type sidecarFSRepository struct {
	dir string
}

var _ usecase.SidecarRepository = (*sidecarFSRepository)(nil)

// NewSidecarFSRepository returns a repository over the given reports dir.
func NewSidecarFSRepository(dir string) *sidecarFSRepository {
	return &sidecarFSRepository{dir: dir}
}

// sidecarFile matches the generator's JSON shape. Unknown fields are
// ignored so generator-side additions do not break the loader.
type sidecarFile struct {
	Picks []sidecarPick `json:"picks"`
}

type sidecarPick struct {
	Code       string   `json:"code"`
	Name       string   `json:"name"`
	Score      *float64 `json:"score"`
	Close      *float64 `json:"close"`
	Entry      *float64 `json:"entry"`
	Stop       *float64 `json:"stop"`
	TakeProfit *float64 `json:"take_profit"`
	Reasons    []string `json:"reasons"`
}

// Load reads nikkei-picks-<date>.json and returns its picks with ranks
// assigned by array position, truncated to the Top-10 contract.
// A missing file is domain.ErrPicksNotFound.
func (r *sidecarFSRepository) Load(ctx context.Context, date string) ([]entity.Pick, error) {
	name := fmt.Sprintf("nikkei-picks-%s.json", date)
	b, err := os.ReadFile(filepath.Join(r.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, domain.ErrPicksNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read picks sidecar %s: %w", name, err)
	}

	var f sidecarFile
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse picks sidecar %s: %w", name, err)
	}

	picks := make([]entity.Pick, 0, len(f.Picks))
	for i, sp := range f.Picks {
		if sp.Code == "" {
			continue
		}
		picks = append(picks, entity.Pick{
			Rank:       i + 1,
			Code:       sp.Code,
			Name:       sp.Name,
			Entry:      sp.Entry,
			Stop:       sp.Stop,
			TakeProfit: sp.TakeProfit,
			Score:      sp.Score,
			Close:      sp.Close,
			Reasons:    sp.Reasons,
		})
	}
	if len(picks) > entity.MaxPicks {
		picks = picks[:entity.MaxPicks]
	}
	return picks, nil
}
