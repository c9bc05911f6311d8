package account

import (
	"context"
	"sync"
	"testing"

	"WalMate/app/common/consts/errno"
	"WalMate/app/storefront/internal/backend"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/x/errors"
)

type fakeAuth struct {
	mu        sync.Mutex
	token     string
	regToken  string
	err       error
	logins    []backend.LoginReq
	registers []backend.RegisterReq
}

func (f *fakeAuth) Login(_ context.Context, req backend.LoginReq) (*backend.LoginResp, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logins = append(f.logins, req)
	if f.err != nil {
		return nil, f.err
	}
	return &backend.LoginResp{AccessToken: f.token, TokenType: "bearer"}, nil
}

func (f *fakeAuth) Register(_ context.Context, req backend.RegisterReq) (*backend.RegisterResp, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registers = append(f.registers, req)
	if f.err != nil {
		return nil, f.err
	}
	return &backend.RegisterResp{Message: "User registered successfully", Success: true, AccessToken: f.regToken}, nil
}

func signedToken(t *testing.T, sub string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": sub}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestStore_LoginLogout(t *testing.T) {
	auth := &fakeAuth{token: signedToken(t, "asha")}
	s := NewStore("s1", auth, nil)

	var events []Event
	cancel := s.Subscribe(func(e Event) { events = append(events, e) })
	defer cancel()

	assert.False(t, s.LoggedIn())
	require.NoError(t, s.Login(context.Background(), " asha ", "secret123"))
	assert.True(t, s.LoggedIn())
	assert.Equal(t, "asha", s.Username())
	assert.Equal(t, "asha", auth.logins[0].Username)

	require.NoError(t, s.Logout(context.Background()))
	assert.False(t, s.LoggedIn())
	assert.Empty(t, s.Username())

	// logging out twice emits nothing new
	require.NoError(t, s.Logout(context.Background()))

	require.Len(t, events, 2)
	assert.Equal(t, Event{LoggedIn: true, Username: "asha"}, events[0])
	assert.Equal(t, Event{LoggedIn: false}, events[1])
}

func TestStore_Validation(t *testing.T) {
	auth := &fakeAuth{token: "tok"}
	s := NewStore("s1", auth, nil)

	err := s.Login(context.Background(), "  ", "pw")
	var codeMsg *errors.CodeMsg
	require.ErrorAs(t, err, &codeMsg)
	assert.Equal(t, errno.InvalidParam, codeMsg.Code)

	_, err = s.Register(context.Background(), "asha", "", "pw")
	require.ErrorAs(t, err, &codeMsg)
	assert.Equal(t, errno.InvalidParam, codeMsg.Code)

	assert.Empty(t, auth.logins)
	assert.Empty(t, auth.registers)
}

func TestStore_LoginFailureKeepsState(t *testing.T) {
	auth := &fakeAuth{err: errors.New(int(errno.Unauthorized), "Invalid password")}
	s := NewStore("s1", auth, nil)

	err := s.Login(context.Background(), "asha", "wrong")
	require.Error(t, err)
	assert.False(t, s.LoggedIn())
}

func TestStore_RegisterWithAndWithoutToken(t *testing.T) {
	auth := &fakeAuth{}
	s := NewStore("s1", auth, nil)

	resp, err := s.Register(context.Background(), "asha", "asha@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "User registered successfully", resp.Message)
	assert.False(t, s.LoggedIn())

	auth.regToken = signedToken(t, "ravi")
	_, err = s.Register(context.Background(), "ravi", "ravi@example.com", "secret123")
	require.NoError(t, err)
	assert.True(t, s.LoggedIn())
	assert.Equal(t, "ravi", s.Username())
}

func TestStore_UsernameOfGarbageToken(t *testing.T) {
	auth := &fakeAuth{token: "not-a-jwt"}
	s := NewStore("s1", auth, nil)

	require.NoError(t, s.Login(context.Background(), "asha", "pw"))
	assert.True(t, s.LoggedIn())
	assert.Empty(t, s.Username())
}

func TestStore_RedisStorageSurvivesNewStore(t *testing.T) {
	mr := miniredis.RunT(t)
	rds := redis.New(mr.Addr())
	storage := NewRedisStorage(rds, 3600)
	auth := &fakeAuth{token: signedToken(t, "asha")}

	s := NewStore("s1", auth, storage)
	require.NoError(t, s.Login(context.Background(), "asha", "pw"))

	val, err := mr.Get(StorageKey("s1"))
	require.NoError(t, err)
	assert.Equal(t, auth.token, val)
	assert.True(t, mr.TTL(StorageKey("s1")) > 0)

	// a fresh store for the same session picks the token up lazily
	again := NewStore("s1", auth, storage)
	assert.True(t, again.LoggedIn())
	assert.Equal(t, "asha", again.Username())

	other := NewStore("s2", auth, storage)
	assert.False(t, other.LoggedIn())

	require.NoError(t, again.Logout(context.Background()))
	assert.False(t, mr.Exists(StorageKey("s1")))
}

func TestMemoryStorage(t *testing.T) {
	m := NewMemoryStorage()
	ctx := context.Background()

	v, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, m.Set(ctx, "k", "v"))
	v, _ = m.Get(ctx, "k")
	assert.Equal(t, "v", v)

	require.NoError(t, m.Del(ctx, "k"))
	v, _ = m.Get(ctx, "k")
	assert.Empty(t, v)
}
