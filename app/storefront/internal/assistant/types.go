package assistant

import (
	"context"
	"errors"
	"time"

	"WalMate/app/storefront/internal/backend"
	"WalMate/app/storefront/internal/cart"
	"WalMate/app/storefront/internal/notify"
)

const (
	WelcomeID       = "welcome"
	WelcomeText     = "Hello! I'm your WalMate shopping assistant. How can I help you today?"
	FallbackText    = "Sorry, I encountered an error. Please try again."
	UnavailableName = "Product Unavailable"
	UnavailableDesc = "Could not load product details"
)

var (
	ErrBusy               = errors.New("assistant is still answering the previous message")
	ErrProductNotResolved = errors.New("product is not resolved")
	ErrEmptyChatID        = errors.New("chat id is empty")
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	ID         string   `json:"id"`
	Role       Role     `json:"role"`
	Content    string   `json:"content"`
	ProductIDs []string `json:"productIds,omitempty"`
}

// Product is the resolved detail of a suggested product. Unavailable marks the sentinel
// stored after a failed lookup.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	ImageURL    string   `json:"imageUrl"`
	Material    string   `json:"material,omitempty"`
	Features    []string `json:"features,omitempty"`
	Unavailable bool     `json:"unavailable,omitempty"`
}

type State int

const (
	Idle State = iota
	Awaiting
)

// View is what the chat widget renders.
type View struct {
	Messages []Message          `json:"messages"`
	ChatID   string             `json:"chatId"`
	Loading  bool               `json:"loading"`
	Products map[string]Product `json:"products"`
	Pending  []string           `json:"pending"`
}

type ChatAPI interface {
	Chat(ctx context.Context, token string, req backend.ChatReq) (*backend.ChatResp, error)
	ChatHistory(ctx context.Context, token, chatID string) ([]backend.HistoryItem, error)
}

type ProductAPI interface {
	Product(ctx context.Context, id string) (*backend.Product, error)
}

type TokenSource interface {
	Token() string
}

type Notifier interface {
	Push(n notify.Notice)
}

type CartAdder interface {
	Add(p cart.Product, quantity int64)
}

type Conf struct {
	ChatTimeout    time.Duration `json:",default=60s"`
	ProductTimeout time.Duration `json:",default=10s"`
}

type Deps struct {
	Chat     ChatAPI
	Products ProductAPI
	Tokens   TokenSource
	Notices  Notifier
	Cart     CartAdder
}
