package service

import (
	"context"
	"fmt"

	"travelmap-api/internal/models"

	"github.com/rs/zerolog"
)

// AccountStore persists the whole account list at once.
type AccountStore interface {
	SaveAccounts(ctx context.Context, accounts []models.Account) (int, error)
	LoadAccounts(ctx context.Context) ([]models.Account, error)
}

// AccountService overwrites and reads back the stored account list.
type AccountService struct {
	store AccountStore
}

func NewAccountService(store AccountStore) *AccountService {
	return &AccountService{store: store}
}

// Save replaces the stored accounts and returns how many were written.
func (s *AccountService) Save(ctx context.Context, accounts []models.Account) (int, error) {
	count, err := s.store.SaveAccounts(ctx, accounts)
	if err != nil {
		return 0, fmt.Errorf("service: failed to save accounts: %w", err)
	}
	zerolog.Ctx(ctx).Info().Int("count", count).Msgf("saved %d accounts", count)
	return count, nil
}

// Load returns the stored accounts, an empty list when nothing was saved yet.
func (s *AccountService) Load(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.store.LoadAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load accounts: %w", err)
	}
	if accounts == nil {
		accounts = []models.Account{}
	}
	return accounts, nil
}
