package users

import (
	"context"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

type ensurer interface {
	Ensure(ctx context.Context, userID string) error
}

// KnownUsers remembers which user ids already have a row, so the auth middleware
// does not hit the database on every request.
type KnownUsers struct {
	cache *freecache.Cache
	repo  ensurer
}

// NewKnownUsers creates the cache with sizeBytes of memory (freecache minimum is 512KB).
func NewKnownUsers(repo ensurer, sizeBytes int) *KnownUsers {
	return &KnownUsers{
		cache: freecache.NewCache(sizeBytes),
		repo:  repo,
	}
}

func (k *KnownUsers) Ensure(ctx context.Context, userID string) error {
	key := []byte(userID)
	if _, err := k.cache.Get(key); err == nil {
		return nil
	}

	if err := k.repo.Ensure(ctx, userID); err != nil {
		return err
	}

	if err := k.cache.Set(key, []byte{1}, 0); err != nil {
		log.Warnf("known users cache set [%s]: %s", userID, err)
	}
	return nil
}

// Forget drops userID, e.g. after the user got deleted.
func (k *KnownUsers) Forget(userID string) {
	k.cache.Del([]byte(userID))
}

func (k *KnownUsers) Len() int64 {
	return k.cache.EntryCount()
}
