package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/metamatong/comp3981-abalone-sumitoq/internal/model"
	"github.com/metamatong/comp3981-abalone-sumitoq/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return err
	}

	// Apply TTL only for guest accounts
	var ttl time.Duration
	if account.IsGuest {
		ttl = s.cfg.GuestAccountTTL
	}

	return s.client.Set(ctx, accountKey(account.ID), data, ttl).Err()
}

func (s *Storage) GetAccount(ctx context.Context, id model.AccountID) (*model.Account, error) {
	data, err := s.client.Get(ctx, accountKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}

	var account model.Account
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *Storage) DeleteAccount(ctx context.Context, id model.AccountID) error {
	return s.client.Del(ctx, accountKey(id)).Err()
}

// Registered account operations

func (s *Storage) SaveRegisteredAccount(ctx context.Context, ra *model.RegisteredAccount) error {
	data, err := json.Marshal(ra)
	if err != nil {
		return err
	}

	// Pipeline for atomic save + username index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, registeredAccountKey(ra.AccountID), data, 0)
	pipe.Set(ctx, usernameIndexKey(ra.Username), string(ra.AccountID), 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetRegisteredAccount(ctx context.Context, accountID model.AccountID) (*model.RegisteredAccount, error) {
	data, err := s.client.Get(ctx, registeredAccountKey(accountID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}

	var ra model.RegisteredAccount
	if err := json.Unmarshal(data, &ra); err != nil {
		return nil, err
	}
	return &ra, nil
}

func (s *Storage) GetRegisteredAccountByUsername(ctx context.Context, username string) (*model.RegisteredAccount, error) {
	accountID, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}
	return s.GetRegisteredAccount(ctx, model.AccountID(accountID))
}

// Match operations

func (s *Storage) SaveMatch(ctx context.Context, match *model.Match) error {
	data, err := json.Marshal(match)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, matchKey(match.ID), data, s.cfg.MatchTTL)
	if match.CreatedBy != "" {
		idxKey := matchesForAccountIndexKey(match.CreatedBy)
		pipe.SAdd(ctx, idxKey, string(match.ID))
		if s.cfg.MatchTTL > 0 {
			pipe.Expire(ctx, idxKey, s.cfg.MatchTTL)
		}
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	data, err := s.client.Get(ctx, matchKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrMatchNotFound
		}
		return nil, err
	}

	var match model.Match
	if err := json.Unmarshal(data, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

func (s *Storage) DeleteMatch(ctx context.Context, id model.MatchID) error {
	match, err := s.GetMatch(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrMatchNotFound) {
			return nil
		}
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, matchKey(id))
	if match.CreatedBy != "" {
		pipe.SRem(ctx, matchesForAccountIndexKey(match.CreatedBy), string(id))
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) ListMatchesForAccount(ctx context.Context, accountID model.AccountID) ([]*model.Match, error) {
	ids, err := s.client.SMembers(ctx, matchesForAccountIndexKey(accountID)).Result()
	if err != nil {
		return nil, err
	}

	var matches []*model.Match
	for _, id := range ids {
		match, err := s.GetMatch(ctx, model.MatchID(id))
		if err != nil {
			// Expired match still referenced by the index
			if errors.Is(err, model.ErrMatchNotFound) {
				continue
			}
			return nil, err
		}
		matches = append(matches, match)
	}
	return matches, nil
}
