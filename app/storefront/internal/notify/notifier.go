package notify

import (
	"sync"
	"time"

	"WalMate/app/common/snowflake"
)

const defaultCapacity = 32

type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Notice is a transient, user-facing notification (a toast).
type Notice struct {
	ID          string    `json:"id"`
	Level       Level     `json:"level"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func Info(title, description string) Notice {
	return Notice{Level: LevelInfo, Title: title, Description: description}
}

func Error(title, description string) Notice {
	return Notice{Level: LevelError, Title: title, Description: description}
}

// Queue is a bounded FIFO of notices waiting to be shown; the oldest one is dropped when full.
type Queue struct {
	mu       sync.Mutex
	capacity int
	notices  []Notice
}

func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Queue{capacity: capacity}
}

func (q *Queue) Push(n Notice) {
	if n.ID == "" {
		n.ID = snowflake.NextString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	if n.Level == "" {
		n.Level = LevelInfo
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.notices) >= q.capacity {
		q.notices = q.notices[len(q.notices)-q.capacity+1:]
	}
	q.notices = append(q.notices, n)
}

// Drain returns the pending notices in arrival order and empties the queue.
func (q *Queue) Drain() []Notice {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.notices
	q.notices = nil
	if out == nil {
		return []Notice{}
	}
	return out
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.notices)
}
