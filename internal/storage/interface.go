package storage

import (
	"context"

	"github.com/metamatong/comp3981-abalone-sumitoq/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Account operations
	SaveAccount(ctx context.Context, account *model.Account) error
	GetAccount(ctx context.Context, id model.AccountID) (*model.Account, error)
	DeleteAccount(ctx context.Context, id model.AccountID) error

	// Registered account operations
	SaveRegisteredAccount(ctx context.Context, ra *model.RegisteredAccount) error
	GetRegisteredAccount(ctx context.Context, accountID model.AccountID) (*model.RegisteredAccount, error)
	GetRegisteredAccountByUsername(ctx context.Context, username string) (*model.RegisteredAccount, error)

	// Match operations
	SaveMatch(ctx context.Context, match *model.Match) error
	GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error)
	DeleteMatch(ctx context.Context, id model.MatchID) error
	ListMatchesForAccount(ctx context.Context, accountID model.AccountID) ([]*model.Match, error)
}
