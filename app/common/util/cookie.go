package util

import (
	"net/http"
	"time"

	"WalMate/app/common/consts/biz"
)

// SetSessionCookie 写入购物会话 cookie
func SetSessionCookie(w http.ResponseWriter, sessionId string, ttl time.Duration) {
	if sessionId == "" {
		return
	}
	if ttl <= 0 {
		ttl = biz.SessionExpire
	}
	http.SetCookie(w, &http.Cookie{
		Name:     biz.SESSIONCOOKIE,
		Value:    sessionId,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(ttl),
		MaxAge:   int(ttl.Seconds()),
	})
}

func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     biz.SESSIONCOOKIE,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
