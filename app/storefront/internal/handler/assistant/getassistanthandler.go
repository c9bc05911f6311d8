// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package assistant

import (
	"net/http"

	"WalMate/app/storefront/internal/logic/assistant"
	"WalMate/app/storefront/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func GetAssistantHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := assistant.NewGetAssistantLogic(r.Context(), svcCtx)
		resp, err := l.GetAssistant()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
