package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/metamatong/comp3981-abalone-sumitoq/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.GuestAccountTTL = time.Hour
	cfg.MatchTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Account tests

func (s *StorageSuite) TestSaveAndGetAccount() {
	account := &model.Account{
		ID:          "account-1",
		DisplayName: "Alice",
		IsGuest:     false,
		CreatedAt:   time.Now().UTC(),
	}

	err := s.storage.SaveAccount(s.ctx, account)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetAccount(s.ctx, "account-1")
	s.Require().NoError(err)
	s.Equal(account.ID, retrieved.ID)
	s.Equal(account.DisplayName, retrieved.DisplayName)
}

func (s *StorageSuite) TestGuestAccountGetsTTL() {
	guest := &model.Account{ID: "guest-1", DisplayName: "Guest", IsGuest: true}
	s.Require().NoError(s.storage.SaveAccount(s.ctx, guest))

	s.Positive(s.mini.TTL(accountKey("guest-1")))

	s.mini.FastForward(2 * time.Hour)
	_, err := s.storage.GetAccount(s.ctx, "guest-1")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

func (s *StorageSuite) TestGetAccountNotFound() {
	_, err := s.storage.GetAccount(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

func (s *StorageSuite) TestDeleteAccount() {
	account := &model.Account{ID: "account-1", DisplayName: "Alice"}
	_ = s.storage.SaveAccount(s.ctx, account)

	err := s.storage.DeleteAccount(s.ctx, "account-1")
	s.Require().NoError(err)

	_, err = s.storage.GetAccount(s.ctx, "account-1")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

// Registered account tests

func (s *StorageSuite) TestSaveAndGetRegisteredAccount() {
	ra := &model.RegisteredAccount{
		AccountID:    "account-1",
		Username:     "alice",
		PasswordHash: "hash123",
		CreatedAt:    time.Now().UTC(),
	}

	err := s.storage.SaveRegisteredAccount(s.ctx, ra)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetRegisteredAccount(s.ctx, "account-1")
	s.Require().NoError(err)
	s.Equal(ra.Username, retrieved.Username)
}

func (s *StorageSuite) TestGetRegisteredAccountByUsername() {
	ra := &model.RegisteredAccount{
		AccountID:    "account-1",
		Username:     "alice",
		PasswordHash: "hash123",
	}
	_ = s.storage.SaveRegisteredAccount(s.ctx, ra)

	retrieved, err := s.storage.GetRegisteredAccountByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.AccountID("account-1"), retrieved.AccountID)

	_, err = s.storage.GetRegisteredAccountByUsername(s.ctx, "bob")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

// Match tests

func newTestMatch(id model.MatchID, createdBy model.AccountID) *model.Match {
	board := model.NewBoard()
	board.SetupStandard()
	return &model.Match{
		ID:            id,
		CreatedBy:     createdBy,
		Config:        model.DefaultMatchConfig(),
		Board:         board,
		CurrentPlayer: model.Black,
		TimeLeft: [3]time.Duration{
			model.Black: model.DefaultMatchTime,
			model.White: model.DefaultMatchTime,
		},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func (s *StorageSuite) TestSaveAndGetMatch() {
	match := newTestMatch("match-1", "account-1")

	err := s.storage.SaveMatch(s.ctx, match)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetMatch(s.ctx, "match-1")
	s.Require().NoError(err)
	s.Equal(match.ID, retrieved.ID)
	s.Equal(model.Black, retrieved.CurrentPlayer)
	s.Equal(14, retrieved.Board.MarbleCount(model.Black))
	s.Equal(model.DefaultMatchTime, retrieved.TimeLeft[model.White])
}

func (s *StorageSuite) TestGetMatchNotFound() {
	_, err := s.storage.GetMatch(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *StorageSuite) TestDeleteMatchRemovesIndexEntry() {
	_ = s.storage.SaveMatch(s.ctx, newTestMatch("match-1", "account-1"))

	err := s.storage.DeleteMatch(s.ctx, "match-1")
	s.Require().NoError(err)

	_, err = s.storage.GetMatch(s.ctx, "match-1")
	s.ErrorIs(err, model.ErrMatchNotFound)

	matches, err := s.storage.ListMatchesForAccount(s.ctx, "account-1")
	s.Require().NoError(err)
	s.Empty(matches)
}

func (s *StorageSuite) TestListMatchesForAccount() {
	_ = s.storage.SaveMatch(s.ctx, newTestMatch("match-1", "account-1"))
	_ = s.storage.SaveMatch(s.ctx, newTestMatch("match-2", "account-1"))
	_ = s.storage.SaveMatch(s.ctx, newTestMatch("match-3", "account-2"))

	matches, err := s.storage.ListMatchesForAccount(s.ctx, "account-1")
	s.Require().NoError(err)
	s.Len(matches, 2)
}

func (s *StorageSuite) TestMatchHistorySurvivesRoundTrip() {
	match := newTestMatch("match-1", "account-1")

	snapshot := match.Board.Copy()
	move, err := model.NewMove([]model.Position{{Row: 2, Col: 3}}, model.DirNE)
	s.Require().NoError(err)
	match.History = append(match.History, model.MoveRecord{
		Move:     move,
		Player:   model.Black,
		Notation: move.Notation(false),
		Source:   model.ControllerHuman,
		Snapshot: snapshot,
	})

	s.Require().NoError(s.storage.SaveMatch(s.ctx, match))

	retrieved, err := s.storage.GetMatch(s.ctx, "match-1")
	s.Require().NoError(err)
	s.Require().Len(retrieved.History, 1)
	s.Equal(move.Key(), retrieved.History[0].Move.Key())
	s.Require().NotNil(retrieved.History[0].Snapshot)
	s.Equal(14, retrieved.History[0].Snapshot.MarbleCount(model.White))
}
