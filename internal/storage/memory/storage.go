package memory

import (
	"context"
	"sync"

	"github.com/metamatong/comp3981-abalone-sumitoq/internal/model"
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	accounts           map[model.AccountID]*model.Account
	registeredAccounts map[model.AccountID]*model.RegisteredAccount
	usernameIndex      map[string]model.AccountID
	matches            map[model.MatchID]*model.Match
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		accounts:           make(map[model.AccountID]*model.Account),
		registeredAccounts: make(map[model.AccountID]*model.RegisteredAccount),
		usernameIndex:      make(map[string]model.AccountID),
		matches:            make(map[model.MatchID]*model.Match),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.ID] = account
	return nil
}

func (s *Storage) GetAccount(ctx context.Context, id model.AccountID) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[id]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return account, nil
}

func (s *Storage) DeleteAccount(ctx context.Context, id model.AccountID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.accounts, id)
	return nil
}

// Registered account operations

func (s *Storage) SaveRegisteredAccount(ctx context.Context, ra *model.RegisteredAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registeredAccounts[ra.AccountID] = ra
	s.usernameIndex[ra.Username] = ra.AccountID
	return nil
}

func (s *Storage) GetRegisteredAccount(ctx context.Context, accountID model.AccountID) (*model.RegisteredAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ra, ok := s.registeredAccounts[accountID]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return ra, nil
}

func (s *Storage) GetRegisteredAccountByUsername(ctx context.Context, username string) (*model.RegisteredAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	accountID, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	ra, ok := s.registeredAccounts[accountID]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return ra, nil
}

// Match operations

func (s *Storage) SaveMatch(ctx context.Context, match *model.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[match.ID] = match
	return nil
}

func (s *Storage) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	match, ok := s.matches[id]
	if !ok {
		return nil, model.ErrMatchNotFound
	}
	return match, nil
}

func (s *Storage) DeleteMatch(ctx context.Context, id model.MatchID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.matches, id)
	return nil
}

func (s *Storage) ListMatchesForAccount(ctx context.Context, accountID model.AccountID) ([]*model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matches []*model.Match
	for _, match := range s.matches {
		if match.CreatedBy == accountID {
			matches = append(matches, match)
		}
	}
	return matches, nil
}
