package account

import (
	"net/http"

	"WalMate/app/common/consts/errno"
	"WalMate/app/storefront/internal/backend"
	"WalMate/app/storefront/internal/logic/account"
	"WalMate/app/storefront/internal/svc"

	"github.com/zeromicro/go-zero/core/jsonx"
	"github.com/zeromicro/go-zero/rest/httpx"
	"github.com/zeromicro/x/errors"
)

// SavePreferencesHandler forwards the preference object as is, its schema belongs to the backend.
func SavePreferencesHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prefs := backend.Preferences{}
		if err := jsonx.UnmarshalFromReader(r.Body, &prefs); err != nil {
			httpx.ErrorCtx(r.Context(), w, errors.New(int(errno.InvalidParam), "preferences must be a JSON object"))
			return
		}

		l := account.NewSavePreferencesLogic(r.Context(), svcCtx)
		resp, err := l.SavePreferences(prefs)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
