package assistant

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"WalMate/app/common/consts/biz"
	"WalMate/app/common/consts/errno"
	"WalMate/app/storefront/internal/backend"
	"WalMate/app/storefront/internal/cart"
	"WalMate/app/storefront/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/x/errors"
)

type fakeChat struct {
	mu       sync.Mutex
	requests []backend.ChatReq
	tokens   []string
	replies  []*backend.ChatResp
	err      error
	gate     chan struct{}
	history  []backend.HistoryItem
}

func (f *fakeChat) Chat(ctx context.Context, token string, req backend.ChatReq) (*backend.ChatResp, error) {
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	f.tokens = append(f.tokens, token)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.replies) == 0 {
		return &backend.ChatResp{Answer: "ok"}, nil
	}
	reply := f.replies[0]
	f.replies = f.replies[1:]
	return reply, nil
}

func (f *fakeChat) ChatHistory(_ context.Context, _ string, chatID string) ([]backend.HistoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.history, nil
}

func (f *fakeChat) calls() []backend.ChatReq {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]backend.ChatReq(nil), f.requests...)
}

type fakeProducts struct {
	mu     sync.Mutex
	calls  map[string]int
	broken map[string]bool
	flaky  map[string]bool
}

func newFakeProducts(broken ...string) *fakeProducts {
	f := &fakeProducts{calls: map[string]int{}, broken: map[string]bool{}, flaky: map[string]bool{}}
	for _, id := range broken {
		f.broken[id] = true
	}
	return f
}

func (f *fakeProducts) Product(_ context.Context, id string) (*backend.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[id]++
	if f.broken[id] {
		return nil, errors.New(int(errno.NotFound), "Product not found")
	}
	if f.flaky[id] {
		return nil, errors.New(int(errno.BackendError), "HTTP 503: Service Unavailable")
	}
	return &backend.Product{ID: backend.FlexString(id), Name: "name " + id, Price: 1299, ImageURLAlt: "/img/" + id + ".jpg"}, nil
}

func (f *fakeProducts) count(id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[id]
}

type staticToken string

func (t staticToken) Token() string { return string(t) }

type fixture struct {
	session  *Session
	chat     *fakeChat
	products *fakeProducts
	notices  *notify.Queue
	cart     *cart.Store
}

func newFixture(chat *fakeChat, products *fakeProducts) *fixture {
	f := &fixture{chat: chat, products: products, notices: notify.NewQueue(0), cart: cart.NewStore()}
	f.session = NewSession(Conf{ChatTimeout: time.Second, ProductTimeout: time.Second}, Deps{
		Chat:     chat,
		Products: products,
		Tokens:   staticToken("tok"),
		Notices:  f.notices,
		Cart:     f.cart,
	})
	return f
}

func waitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestSession_OpenSeedsGreetingOnce(t *testing.T) {
	f := newFixture(&fakeChat{}, newFakeProducts())

	f.session.Open()
	f.session.Open()

	transcript := f.session.Transcript()
	require.Len(t, transcript, 1)
	assert.Equal(t, WelcomeID, transcript[0].ID)
	assert.Equal(t, RoleAssistant, transcript[0].Role)
	assert.Equal(t, WelcomeText, transcript[0].Content)
	assert.Empty(t, f.chat.calls())
}

func TestSession_BlankSendIsNoop(t *testing.T) {
	f := newFixture(&fakeChat{}, newFakeProducts())
	f.session.Open()

	require.NoError(t, f.session.Send(context.Background(), "   "))

	assert.Len(t, f.session.Transcript(), 1)
	assert.Empty(t, f.chat.calls())
	assert.False(t, f.session.Loading())
}

func TestSession_ChatIDPropagatesAndProductsDedup(t *testing.T) {
	chat := &fakeChat{replies: []*backend.ChatResp{
		{Answer: "Here you go", ProductIDs: []backend.FlexString{"p1", "p2", "p1"}, ChatID: "abc"},
		{Answer: "More", ProductIDs: []backend.FlexString{"p1", "p3"}, ChatID: "other"},
	}}
	products := newFakeProducts("p2")
	f := newFixture(chat, products)
	f.session.Open()

	require.NoError(t, f.session.Send(context.Background(), " show me jackets "))
	require.NoError(t, f.session.WaitProducts(waitCtx(t), "p1", "p2"))
	require.NoError(t, f.session.Send(context.Background(), "cheaper"))
	require.NoError(t, f.session.WaitProducts(waitCtx(t), "p1", "p3"))

	calls := chat.calls()
	require.Len(t, calls, 2)
	assert.Equal(t, backend.ChatReq{Message: "show me jackets"}, calls[0])
	assert.Equal(t, backend.ChatReq{Message: "cheaper", ChatID: "abc"}, calls[1])
	assert.Equal(t, []string{"tok", "tok"}, chat.tokens)
	// the first chat id sticks
	assert.Equal(t, "abc", f.session.ChatID())

	transcript := f.session.Transcript()
	require.Len(t, transcript, 5)
	assert.Equal(t, RoleUser, transcript[1].Role)
	assert.Equal(t, "show me jackets", transcript[1].Content)
	assert.Equal(t, []string{"p1", "p2"}, transcript[2].ProductIDs)
	assert.Equal(t, []string{"p1", "p3"}, transcript[4].ProductIDs)

	assert.Equal(t, 1, products.count("p1"))
	assert.Equal(t, 1, products.count("p3"))
	// not found is final, no retry
	assert.Equal(t, 1, products.count("p2"))

	p1, ok := f.session.Product("p1")
	require.True(t, ok)
	assert.Equal(t, "name p1", p1.Name)
	assert.Equal(t, int64(1299), p1.Price)
	assert.Equal(t, "/img/p1.jpg", p1.ImageURL)

	p2, ok := f.session.Product("p2")
	require.True(t, ok)
	assert.Equal(t, Product{
		ID:          "p2",
		Name:        UnavailableName,
		Description: UnavailableDesc,
		ImageURL:    biz.PlaceholderImage,
		Unavailable: true,
	}, p2)

	notices := f.notices.Drain()
	require.Len(t, notices, 1)
	assert.Equal(t, "Product Error", notices[0].Title)
	assert.Equal(t, notify.LevelError, notices[0].Level)

	view := f.session.View()
	assert.Len(t, view.Products, 3)
	assert.Empty(t, view.Pending)
	assert.Equal(t, "abc", view.ChatID)
}

func TestSession_SentinelIsNeverRefetched(t *testing.T) {
	chat := &fakeChat{replies: []*backend.ChatResp{
		{Answer: "a", ProductIDs: []backend.FlexString{"p2"}},
		{Answer: "b", ProductIDs: []backend.FlexString{"p2"}},
	}}
	products := newFakeProducts("p2")
	f := newFixture(chat, products)

	require.NoError(t, f.session.Send(context.Background(), "one"))
	require.NoError(t, f.session.WaitProducts(waitCtx(t), "p2"))
	require.NoError(t, f.session.Send(context.Background(), "two"))
	require.NoError(t, f.session.WaitProducts(waitCtx(t), "p2"))

	assert.Equal(t, 1, products.count("p2"))
}

func TestSession_OnlyTransientProductErrorsAreRetried(t *testing.T) {
	chat := &fakeChat{replies: []*backend.ChatResp{
		{Answer: "a", ProductIDs: []backend.FlexString{"gone", "busy", "ok"}},
	}}
	products := newFakeProducts("gone")
	products.flaky["busy"] = true
	f := newFixture(chat, products)

	require.NoError(t, f.session.Send(context.Background(), "one"))
	require.NoError(t, f.session.WaitProducts(waitCtx(t), "gone", "busy", "ok"))

	assert.Equal(t, 1, products.count("gone"))
	assert.Equal(t, 2, products.count("busy"))
	assert.Equal(t, 1, products.count("ok"))

	busy, ok := f.session.Product("busy")
	require.True(t, ok)
	assert.True(t, busy.Unavailable)
}

type blockingProducts struct {
	release chan struct{}
}

func (b *blockingProducts) Product(ctx context.Context, id string) (*backend.Product, error) {
	select {
	case <-b.release:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return &backend.Product{ID: backend.FlexString(id), Name: id}, nil
}

func TestProductCache_PendingKeepsClaimOrder(t *testing.T) {
	api := &blockingProducts{release: make(chan struct{})}
	c := newProductCache(api, nil, 5*time.Second)

	ids := []string{"p9", "p1", "p5", "p3", "p7"}
	assert.Equal(t, ids, c.resolve(ids))
	assert.Equal(t, []string{"p4", "p2"}, c.resolve([]string{"p1", "p4", "p2"}))

	want := []string{"p9", "p1", "p5", "p3", "p7", "p4", "p2"}
	for i := 0; i < 20; i++ {
		_, pending := c.snapshot()
		require.Equal(t, want, pending)
	}

	close(api.release)
	require.NoError(t, c.wait(waitCtx(t), want))
	resolved, pending := c.snapshot()
	assert.Empty(t, pending)
	assert.Len(t, resolved, len(want))
}

func TestSession_FailedSendKeepsTranscriptAndChatID(t *testing.T) {
	chat := &fakeChat{replies: []*backend.ChatResp{{Answer: "hi", ChatID: "abc"}}}
	f := newFixture(chat, newFakeProducts())
	f.session.Open()
	require.NoError(t, f.session.Send(context.Background(), "hello"))
	before := f.session.Transcript()

	chat.mu.Lock()
	chat.err = errors.New(int(errno.BackendError), "boom")
	chat.mu.Unlock()

	require.NoError(t, f.session.Send(context.Background(), "again"))

	after := f.session.Transcript()
	require.Len(t, after, len(before)+2)
	assert.Equal(t, before, after[:len(before)])
	assert.Equal(t, "again", after[len(before)].Content)
	assert.Equal(t, RoleAssistant, after[len(before)+1].Role)
	assert.Equal(t, FallbackText, after[len(before)+1].Content)
	assert.Equal(t, "abc", f.session.ChatID())
	assert.False(t, f.session.Loading())

	notices := f.notices.Drain()
	require.Len(t, notices, 1)
	assert.Equal(t, notify.LevelError, notices[0].Level)
}

func TestSession_SecondSendWhileAwaitingIsBusy(t *testing.T) {
	chat := &fakeChat{gate: make(chan struct{})}
	f := newFixture(chat, newFakeProducts())

	done := make(chan error, 1)
	go func() { done <- f.session.Send(context.Background(), "first") }()

	require.Eventually(t, f.session.Loading, time.Second, 5*time.Millisecond)
	err := f.session.Send(context.Background(), "second")
	assert.True(t, stderrors.Is(err, ErrBusy))

	close(chat.gate)
	require.NoError(t, <-done)
	assert.False(t, f.session.Loading())
	require.Len(t, chat.calls(), 1)
	assert.Equal(t, "first", chat.calls()[0].Message)
}

func TestSession_AddToCart(t *testing.T) {
	chat := &fakeChat{replies: []*backend.ChatResp{
		{Answer: "a", ProductIDs: []backend.FlexString{"p1", "p2"}},
	}}
	f := newFixture(chat, newFakeProducts("p2"))

	_, err := f.session.AddToCart("p1")
	assert.ErrorIs(t, err, ErrProductNotResolved)

	require.NoError(t, f.session.Send(context.Background(), "go"))
	require.NoError(t, f.session.WaitProducts(waitCtx(t), "p1", "p2"))
	f.notices.Drain()

	p, err := f.session.AddToCart("p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
	_, err = f.session.AddToCart("p1")
	require.NoError(t, err)

	items := f.cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].Quantity)
	assert.Equal(t, int64(1299), items[0].Price)

	_, err = f.session.AddToCart("p2")
	assert.ErrorIs(t, err, ErrProductNotResolved)

	notices := f.notices.Drain()
	require.Len(t, notices, 2)
	assert.Equal(t, "Added to Cart", notices[0].Title)
	assert.Equal(t, "name p1 has been added to your cart", notices[0].Description)
}

func TestSession_ProductDetail(t *testing.T) {
	chat := &fakeChat{replies: []*backend.ChatResp{{Answer: "a", ProductIDs: []backend.FlexString{"p1"}}}}
	f := newFixture(chat, newFakeProducts())

	_, err := f.session.ProductDetail("p1")
	assert.ErrorIs(t, err, ErrProductNotResolved)

	require.NoError(t, f.session.Send(context.Background(), "go"))
	require.NoError(t, f.session.WaitProducts(waitCtx(t), "p1"))

	p, err := f.session.ProductDetail("p1")
	require.NoError(t, err)
	assert.Equal(t, "name p1", p.Name)
}

func TestSession_ResetStartsNewChat(t *testing.T) {
	chat := &fakeChat{replies: []*backend.ChatResp{
		{Answer: "a", ProductIDs: []backend.FlexString{"p1"}, ChatID: "abc"},
		{Answer: "b", ChatID: "def"},
	}}
	f := newFixture(chat, newFakeProducts())
	f.session.Open()
	require.NoError(t, f.session.Send(context.Background(), "one"))
	require.NoError(t, f.session.WaitProducts(waitCtx(t), "p1"))

	f.session.Reset()

	transcript := f.session.Transcript()
	require.Len(t, transcript, 1)
	assert.Equal(t, WelcomeID, transcript[0].ID)
	assert.Empty(t, f.session.ChatID())
	_, ok := f.session.Product("p1")
	assert.True(t, ok)

	require.NoError(t, f.session.Send(context.Background(), "two"))
	assert.Equal(t, backend.ChatReq{Message: "two"}, chat.calls()[1])
	assert.Equal(t, "def", f.session.ChatID())
}

func TestSession_ResetDropsInFlightReply(t *testing.T) {
	chat := &fakeChat{gate: make(chan struct{}), replies: []*backend.ChatResp{{Answer: "late", ChatID: "abc"}}}
	f := newFixture(chat, newFakeProducts())

	done := make(chan error, 1)
	go func() { done <- f.session.Send(context.Background(), "first") }()
	require.Eventually(t, f.session.Loading, time.Second, 5*time.Millisecond)

	f.session.Reset()
	close(chat.gate)
	require.NoError(t, <-done)

	transcript := f.session.Transcript()
	require.Len(t, transcript, 1)
	assert.Empty(t, f.session.ChatID())
}

func TestSession_Resume(t *testing.T) {
	chat := &fakeChat{history: []backend.HistoryItem{
		{Prompt: "hoodies", Response: "Here are hoodies"},
		{Prompt: "cheaper", Response: "Cheaper ones"},
	}}
	f := newFixture(chat, newFakeProducts())

	assert.ErrorIs(t, f.session.Resume(context.Background(), " "), ErrEmptyChatID)

	require.NoError(t, f.session.Resume(context.Background(), "chat_1"))
	transcript := f.session.Transcript()
	require.Len(t, transcript, 5)
	assert.Equal(t, "hoodies", transcript[1].Content)
	assert.Equal(t, RoleUser, transcript[1].Role)
	assert.Equal(t, "Cheaper ones", transcript[4].Content)
	assert.Equal(t, "chat_1", f.session.ChatID())

	require.NoError(t, f.session.Send(context.Background(), "next"))
	assert.Equal(t, "chat_1", chat.calls()[0].ChatID)
}

func TestSession_ResumeFailureLeavesTranscript(t *testing.T) {
	chat := &fakeChat{err: errors.New(int(errno.NotFound), "Chat not found")}
	f := newFixture(chat, newFakeProducts())
	f.session.Open()

	require.Error(t, f.session.Resume(context.Background(), "chat_x"))
	assert.Len(t, f.session.Transcript(), 1)
	assert.Empty(t, f.session.ChatID())
}
