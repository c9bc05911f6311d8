package account

import (
	"context"
	"strings"
	"sync"
	"time"

	"WalMate/app/common/consts/biz"
	"WalMate/app/common/consts/errno"
	"WalMate/app/storefront/internal/backend"

	"github.com/golang-jwt/jwt/v4"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

const storageTimeout = 2 * time.Second

// Authenticator is the part of the backend the account store needs.
type Authenticator interface {
	Login(ctx context.Context, req backend.LoginReq) (*backend.LoginResp, error)
	Register(ctx context.Context, req backend.RegisterReq) (*backend.RegisterResp, error)
}

// Event is broadcast to subscribers whenever the logged-in state flips.
type Event struct {
	LoggedIn bool
	Username string
}

// Store holds the bearer token of one shopper scope. Presence of the token is the
// only logged-in signal.
type Store struct {
	mu      sync.Mutex
	key     string
	auth    Authenticator
	storage TokenStorage
	loaded  bool
	token   string
	nextID  int
	subs    map[int]func(Event)
}

func NewStore(namespace string, auth Authenticator, storage TokenStorage) *Store {
	if storage == nil {
		storage = NewMemoryStorage()
	}
	return &Store{
		key:     StorageKey(namespace),
		auth:    auth,
		storage: storage,
		subs:    make(map[int]func(Event)),
	}
}

// StorageKey is where the token of a namespace lives in the TokenStorage.
func StorageKey(namespace string) string {
	return "walmate:" + namespace + ":" + biz.TOKENKEY
}

func (s *Store) Login(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return errors.New(int(errno.InvalidParam), "username and password are required")
	}

	resp, err := s.auth.Login(ctx, backend.LoginReq{Username: username, Password: password})
	if err != nil {
		return err
	}
	return s.setToken(ctx, resp.AccessToken)
}

// Register creates the account; when the backend hands back a token the shopper is logged in too.
func (s *Store) Register(ctx context.Context, username, email, password string) (*backend.RegisterResp, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, errors.New(int(errno.InvalidParam), "username, email and password are required")
	}

	resp, err := s.auth.Register(ctx, backend.RegisterReq{Username: username, Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if resp.AccessToken != "" {
		if err := s.setToken(ctx, resp.AccessToken); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.loadLocked()
	wasLoggedIn := s.token != ""
	if err := s.storage.Del(ctx, s.key); err != nil {
		s.mu.Unlock()
		return err
	}
	s.token = ""
	s.unlockAndNotify(wasLoggedIn, Event{LoggedIn: false})
	return nil
}

func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked()
	return s.token
}

func (s *Store) LoggedIn() bool {
	return s.Token() != ""
}

// Username reads the `sub` claim of the token. The signature is not checked, the
// backend does that on every call.
func (s *Store) Username() string {
	return usernameOf(s.Token())
}

func (s *Store) Subscribe(fn func(Event)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) setToken(ctx context.Context, token string) error {
	s.mu.Lock()
	if err := s.storage.Set(ctx, s.key, token); err != nil {
		s.mu.Unlock()
		return err
	}
	s.loaded = true
	s.token = token
	s.unlockAndNotify(true, Event{LoggedIn: true, Username: usernameOf(token)})
	return nil
}

func (s *Store) loadLocked() {
	if s.loaded {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storageTimeout)
	defer cancel()
	token, err := s.storage.Get(ctx, s.key)
	if err != nil {
		logx.Errorw("load token failed", logx.Field("key", s.key), logx.Field("err", err.Error()))
		return
	}
	s.token = token
	s.loaded = true
}

func (s *Store) unlockAndNotify(changed bool, evt Event) {
	if !changed {
		s.mu.Unlock()
		return
	}
	subs := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(evt)
	}
}

func usernameOf(token string) string {
	if token == "" {
		return ""
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	sub, _ := claims["sub"].(string)
	return sub
}
