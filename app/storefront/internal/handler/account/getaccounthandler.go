// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package account

import (
	"net/http"

	"WalMate/app/storefront/internal/logic/account"
	"WalMate/app/storefront/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func GetAccountHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := account.NewGetAccountLogic(r.Context(), svcCtx)
		resp, err := l.GetAccount()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
