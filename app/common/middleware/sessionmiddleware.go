package middleware

import (
	"net/http"
	"time"

	"WalMate/app/common/consts/biz"
	"WalMate/app/common/util"

	"github.com/zeromicro/go-zero/core/logx"
)

// SessionMiddleware binds every request to a shopper session id. Only ids this server minted and
// still holds a scope for are honoured; anything else gets a fresh id.
type SessionMiddleware struct {
	ttl   time.Duration
	known func(sessionId string) bool
}

func NewSessionMiddleware(ttl time.Duration, known func(sessionId string) bool) *SessionMiddleware {
	return &SessionMiddleware{
		ttl:   ttl,
		known: known,
	}
}

func (m *SessionMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionId := ""
		if cookie, err := r.Cookie(biz.SESSIONCOOKIE); err == nil {
			sessionId = cookie.Value
		} else if headerId := r.Header.Get(biz.SESSIONHEADER); headerId != "" {
			sessionId = headerId
		}

		if !m.accept(sessionId) {
			if sessionId != "" {
				logx.WithContext(r.Context()).Infow("reject unknown shopper session")
			}
			sessionId = util.NewSessionId()
			logx.WithContext(r.Context()).Infow("new shopper session")
		}
		// 每次请求都续期
		util.SetSessionCookie(w, sessionId, m.ttl)
		w.Header().Set(biz.SESSIONHEADER, sessionId)

		util.InjectSessionId2Ctx(r, sessionId)
		next(w, r)
	}
}

func (m *SessionMiddleware) accept(sessionId string) bool {
	if !util.WellFormedSessionId(sessionId) {
		return false
	}
	return m.known == nil || m.known(sessionId)
}
