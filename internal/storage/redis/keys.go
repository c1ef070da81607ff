package redis

import (
	"fmt"

	"github.com/metamatong/comp3981-abalone-sumitoq/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "abalone"

// accountKey returns the Redis key for an Account
func accountKey(id model.AccountID) string {
	return fmt.Sprintf("%s:account:%s", keyPrefix, id)
}

// registeredAccountKey returns the Redis key for a RegisteredAccount
func registeredAccountKey(accountID model.AccountID) string {
	return fmt.Sprintf("%s:registered_account:%s", keyPrefix, accountID)
}

// usernameIndexKey returns the Redis key for the username -> account_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// matchKey returns the Redis key for a Match
func matchKey(id model.MatchID) string {
	return fmt.Sprintf("%s:match:%s", keyPrefix, id)
}

// matchesForAccountIndexKey returns the Redis key for the SET of matches an account created
func matchesForAccountIndexKey(accountID model.AccountID) string {
	return fmt.Sprintf("%s:idx:matches_for_account:%s", keyPrefix, accountID)
}
