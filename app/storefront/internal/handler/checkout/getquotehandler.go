// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package checkout

import (
	"net/http"

	"WalMate/app/storefront/internal/logic/checkout"
	"WalMate/app/storefront/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func GetQuoteHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := checkout.NewGetQuoteLogic(r.Context(), svcCtx)
		resp, err := l.GetQuote()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
