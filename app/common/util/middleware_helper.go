package util

import (
	"context"
	"net/http"

	"WalMate/app/common/consts/biz"
	"WalMate/app/common/consts/errno"

	"github.com/zeromicro/x/errors"
)

func SessionIdFromCtx(ctx context.Context) (string, error) {
	if ctx == nil {
		return "", errors.New(int(errno.SessionMissing), "missing context")
	}

	if val, ok := ctx.Value(biz.SESSION_KEY).(string); ok && val != "" {
		return val, nil
	}

	return "", errors.New(int(errno.SessionMissing), "missing shopper session")
}

func InjectSessionId2Ctx(r *http.Request, sessionId string) {
	ctx := context.WithValue(r.Context(), biz.SESSION_KEY, sessionId)
	*r = *r.WithContext(ctx)
}
