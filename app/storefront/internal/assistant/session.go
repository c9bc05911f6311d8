package assistant

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"WalMate/app/common/snowflake"
	"WalMate/app/storefront/internal/backend"
	"WalMate/app/storefront/internal/cart"
	"WalMate/app/storefront/internal/notify"

	"github.com/zeromicro/go-zero/core/logx"
)

// Session is one shopper's conversation with the assistant. All methods are safe for
// concurrent use; the backend is never called while the mutex is held.
type Session struct {
	mu       sync.Mutex
	deps     Deps
	timeout  time.Duration
	products *productCache

	messages []Message
	chatID   string
	state    State
	// bumped by Reset and Resume so replies of an abandoned conversation are dropped
	generation uint64
}

func NewSession(c Conf, deps Deps) *Session {
	if c.ChatTimeout <= 0 {
		c.ChatTimeout = 60 * time.Second
	}
	if c.ProductTimeout <= 0 {
		c.ProductTimeout = 10 * time.Second
	}
	return &Session{
		deps:     deps,
		timeout:  c.ChatTimeout,
		products: newProductCache(deps.Products, deps.Notices, c.ProductTimeout),
	}
}

// Open seeds the greeting the first time the widget is shown.
func (s *Session) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.messages) == 0 {
		s.messages = append(s.messages, greeting())
	}
}

// Send posts one user turn. Blank text is ignored. Backend failures are turned into the
// fallback reply and an error notice, so the only error Send returns is ErrBusy.
func (s *Session) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	s.mu.Lock()
	if s.state == Awaiting {
		s.mu.Unlock()
		return ErrBusy
	}
	s.messages = append(s.messages, Message{ID: snowflake.NextString(), Role: RoleUser, Content: text})
	s.state = Awaiting
	chatID := s.chatID
	gen := s.generation
	s.mu.Unlock()

	// the turn outlives a dropped client connection
	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()
	reply, err := s.deps.Chat.Chat(callCtx, s.token(), backend.ChatReq{Message: text, ChatID: chatID})

	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		logx.WithContext(ctx).Infow("drop reply of abandoned chat", logx.Field("chatId", chatID))
		return nil
	}
	s.state = Idle

	if err != nil {
		s.messages = append(s.messages, Message{ID: snowflake.NextString(), Role: RoleAssistant, Content: FallbackText})
		s.mu.Unlock()
		logx.WithContext(ctx).Errorw("chat failed", logx.Field("chatId", chatID), logx.Field("err", err.Error()))
		s.notify(notify.Error("Uh oh! Something went wrong.", "There was a problem with the AI assistant."))
		return nil
	}

	ids := uniq(backend.StringsOf(reply.ProductIDs))
	s.messages = append(s.messages, Message{
		ID:         snowflake.NextString(),
		Role:       RoleAssistant,
		Content:    reply.Answer,
		ProductIDs: ids,
	})
	if s.chatID == "" && reply.ChatID != "" {
		s.chatID = reply.ChatID
	}
	s.mu.Unlock()

	if claimed := s.products.resolve(ids); len(claimed) > 0 {
		logx.WithContext(ctx).Infow("resolving products", logx.Field("productIds", claimed))
	}
	return nil
}

func (s *Session) Transcript() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Session) ChatID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chatID
}

func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == Awaiting
}

func (s *Session) View() View {
	resolved, pending := s.products.snapshot()
	s.mu.Lock()
	defer s.mu.Unlock()
	messages := make([]Message, len(s.messages))
	copy(messages, s.messages)
	return View{
		Messages: messages,
		ChatID:   s.chatID,
		Loading:  s.state == Awaiting,
		Products: resolved,
		Pending:  pending,
	}
}

// Product returns the resolved detail of id, false while it is unknown or still loading.
func (s *Session) Product(id string) (Product, bool) {
	return s.products.get(id)
}

// WaitProducts blocks until the lookups of ids settle.
func (s *Session) WaitProducts(ctx context.Context, ids ...string) error {
	return s.products.wait(ctx, ids)
}

// ProductDetail backs the product dialog.
func (s *Session) ProductDetail(id string) (Product, error) {
	p, ok := s.products.get(id)
	if !ok {
		return Product{}, ErrProductNotResolved
	}
	return p, nil
}

// AddToCart hands a suggested product to the cart with quantity one.
func (s *Session) AddToCart(id string) (Product, error) {
	p, ok := s.products.get(id)
	if !ok || p.Unavailable {
		return Product{}, ErrProductNotResolved
	}
	s.deps.Cart.Add(cart.Product{ID: p.ID, Name: p.Name, Price: p.Price, ImageURL: p.ImageURL}, 1)
	s.notify(notify.Info("Added to Cart", fmt.Sprintf("%s has been added to your cart", p.Name)))
	return p, nil
}

// Reset starts a new chat. Resolved products are kept.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.state = Idle
	s.chatID = ""
	s.messages = []Message{greeting()}
}

// Resume replaces the transcript with a stored conversation and continues it.
func (s *Session) Resume(ctx context.Context, chatID string) error {
	chatID = strings.TrimSpace(chatID)
	if chatID == "" {
		return ErrEmptyChatID
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	history, err := s.deps.Chat.ChatHistory(callCtx, s.token(), chatID)
	if err != nil {
		return err
	}

	messages := make([]Message, 0, len(history)*2+1)
	messages = append(messages, greeting())
	for _, item := range history {
		messages = append(messages,
			Message{ID: snowflake.NextString(), Role: RoleUser, Content: item.Prompt},
			Message{ID: snowflake.NextString(), Role: RoleAssistant, Content: item.Response},
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.state = Idle
	s.chatID = chatID
	s.messages = messages
	return nil
}

func (s *Session) token() string {
	if s.deps.Tokens == nil {
		return ""
	}
	return s.deps.Tokens.Token()
}

func (s *Session) notify(n notify.Notice) {
	if s.deps.Notices != nil {
		s.deps.Notices.Push(n)
	}
}

func greeting() Message {
	return Message{ID: WelcomeID, Role: RoleAssistant, Content: WelcomeText}
}

func uniq(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
