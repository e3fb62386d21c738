package tokens

import (
	"context"

	"github.com/patrickmn/go-cache"

	"github.com/sachink160/multitool-client/internal/client/models"
	"github.com/sachink160/multitool-client/internal/common"
)

const pairKey = "token_pair"

// MemoryStore keeps the pair for the lifetime of the process only.
type MemoryStore struct {
	cache *cache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cache: cache.New(cache.NoExpiration, 0)}
}

func (s *MemoryStore) Save(_ context.Context, pair models.TokenPair) error {
	if !pair.Complete() {
		return common.ErrIncompletePair
	}
	s.cache.Set(pairKey, pair, cache.NoExpiration)
	return nil
}

func (s *MemoryStore) Read(_ context.Context) (models.TokenPair, bool, error) {
	v, found := s.cache.Get(pairKey)
	if !found {
		return models.TokenPair{}, false, nil
	}
	pair, ok := v.(models.TokenPair)
	if !ok {
		return models.TokenPair{}, false, nil
	}
	return pair, true, nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.cache.Delete(pairKey)
	return nil
}
