// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package checkout

import (
	"net/http"

	"WalMate/app/storefront/internal/logic/checkout"
	"WalMate/app/storefront/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func CheckoutHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := checkout.NewCheckoutLogic(r.Context(), svcCtx)
		resp, err := l.Checkout()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
