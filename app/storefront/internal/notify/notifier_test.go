package notify

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_PushDrain(t *testing.T) {
	q := NewQueue(0)
	q.Push(Info("Added to Cart", "Hoodie has been added to your cart"))
	q.Push(Error("Uh oh! Something went wrong.", "There was a problem with the AI assistant."))

	got := q.Drain()
	require.Len(t, got, 2)
	assert.Equal(t, LevelInfo, got[0].Level)
	assert.Equal(t, LevelError, got[1].Level)
	assert.NotEmpty(t, got[0].ID)
	assert.NotEqual(t, got[0].ID, got[1].ID)
	assert.False(t, got[0].CreatedAt.IsZero())

	assert.Empty(t, q.Drain())
	assert.Equal(t, 0, q.Len())
}

func TestQueue_DropsOldest(t *testing.T) {
	q := NewQueue(3)
	for i := 0; i < 5; i++ {
		q.Push(Info(strconv.Itoa(i), ""))
	}

	got := q.Drain()
	require.Len(t, got, 3)
	assert.Equal(t, "2", got[0].Title)
	assert.Equal(t, "4", got[2].Title)
}
