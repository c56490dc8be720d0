// Package usecase implements the business logic for symbol-related operations.
package usecase

import (
	"context"

	"nikkei_backend/internal/feature/symbollist/domain/entity"
)

// SymbolRepository abstracts the universe-list source.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolRepository interface {
	List(ctx context.Context) ([]entity.Symbol, error)
}

// SymbolUsecase provides business logic for symbol operations.
type SymbolUsecase struct {
	repo SymbolRepository
}

// NewSymbolUsecase creates a new SymbolUsecase with the given repository.
func NewSymbolUsecase(r SymbolRepository) *SymbolUsecase {
	return &SymbolUsecase{repo: r}
}

// ListSymbols returns the tracked universe in file order.
func (u *SymbolUsecase) ListSymbols(ctx context.Context) ([]entity.Symbol, error) {
	return u.repo.List(ctx)
}
