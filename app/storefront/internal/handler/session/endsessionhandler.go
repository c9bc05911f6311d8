package session

import (
	"net/http"

	"WalMate/app/common/consts/biz"
	"WalMate/app/common/util"
	"WalMate/app/storefront/internal/logic/session"
	"WalMate/app/storefront/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func EndSessionHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := session.NewEndSessionLogic(r.Context(), svcCtx)
		resp, err := l.EndSession()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		util.ClearSessionCookie(w)
		w.Header().Del(biz.SESSIONHEADER)
		httpx.OkJsonCtx(r.Context(), w, resp)
	}
}
