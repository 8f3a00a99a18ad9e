package memory

import (
	"time"

	"study-buddy-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// BufferRepository keeps reconstructed chat memory buffers in process
// memory so a busy session does not reload its history on every turn.
type BufferRepository struct {
	cache *cache.Cache
}

func NewBufferRepository() *BufferRepository {
	// Buffers expire after an hour of inactivity; expired entries are
	// purged every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &BufferRepository{
		cache: c,
	}
}

func (r *BufferRepository) Save(buffer *store.MemoryBuffer) {
	r.cache.Set(buffer.SessionKey, buffer, cache.DefaultExpiration)
}

func (r *BufferRepository) Get(sessionKey string) (*store.MemoryBuffer, bool) {
	if x, found := r.cache.Get(sessionKey); found {
		return x.(*store.MemoryBuffer), true
	}
	return nil, false
}

func (r *BufferRepository) Delete(sessionKey string) {
	r.cache.Delete(sessionKey)
}
