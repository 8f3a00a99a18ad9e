package memory

import (
	"fmt"
	"testing"

	"study-buddy-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferRepositorySaveGet(t *testing.T) {
	repo := NewBufferRepository()

	buffer := store.NewMemoryBuffer("sess-1", 20)
	buffer.Append("user", "hi")
	repo.Save(buffer)

	got, found := repo.Get("sess-1")
	require.True(t, found)
	assert.Equal(t, "sess-1", got.SessionKey)
	require.Len(t, got.Turns, 1)
	assert.Equal(t, "hi", got.Turns[0].Content)
}

func TestBufferRepositoryMiss(t *testing.T) {
	repo := NewBufferRepository()

	got, found := repo.Get("unknown")
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestBufferRepositoryDelete(t *testing.T) {
	repo := NewBufferRepository()

	repo.Save(store.NewMemoryBuffer("sess-1", 20))
	repo.Delete("sess-1")

	_, found := repo.Get("sess-1")
	assert.False(t, found)
}

func TestMemoryBufferAlternatingOrder(t *testing.T) {
	buffer := store.NewMemoryBuffer("sess-1", 20)

	// N chat turns produce 2N entries in alternating user/bot order.
	const n = 5
	for i := 0; i < n; i++ {
		buffer.Append("user", fmt.Sprintf("question %d", i))
		buffer.Append("bot", fmt.Sprintf("answer %d", i))
	}

	require.Len(t, buffer.Turns, 2*n)
	for i, turn := range buffer.Turns {
		if i%2 == 0 {
			assert.Equal(t, "user", turn.Role)
		} else {
			assert.Equal(t, "bot", turn.Role)
		}
	}
}

func TestMemoryBufferBound(t *testing.T) {
	buffer := store.NewMemoryBuffer("sess-1", 4)

	for i := 0; i < 10; i++ {
		buffer.Append("user", fmt.Sprintf("turn %d", i))
	}

	require.Len(t, buffer.Turns, 4)
	// Oldest entries are dropped first.
	assert.Equal(t, "turn 6", buffer.Turns[0].Content)
	assert.Equal(t, "turn 9", buffer.Turns[3].Content)
}
