package helper

import (
	"context"
	stderrors "errors"

	"WalMate/app/common/consts/errno"
	"WalMate/app/common/util"
	"WalMate/app/storefront/internal/assistant"
	"WalMate/app/storefront/internal/payment"
	"WalMate/app/storefront/internal/scope"
	"WalMate/app/storefront/internal/suggest"
	"WalMate/app/storefront/internal/svc"

	"github.com/zeromicro/x/errors"
)

// ScopeFromCtx resolves the shopper scope of the session bound by the session middleware.
func ScopeFromCtx(ctx context.Context, svcCtx *svc.ServiceContext) (*scope.Scope, error) {
	sessionId, err := util.SessionIdFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	sc, err := svcCtx.Scopes.Get(sessionId)
	if err != nil {
		return nil, errors.New(int(errno.InternalError), err.Error())
	}
	return sc, nil
}

// RequireToken returns the bearer token of a logged in shopper.
func RequireToken(sc *scope.Scope) (string, error) {
	token := sc.Account.Token()
	if token == "" {
		return "", errors.New(int(errno.Unauthorized), "please log in first")
	}
	return token, nil
}

// CodeErr turns domain errors into coded errors; coded errors pass through.
func CodeErr(err error) error {
	if err == nil {
		return nil
	}
	var codeMsg *errors.CodeMsg
	if stderrors.As(err, &codeMsg) {
		return err
	}

	code := errno.InternalError
	switch {
	case stderrors.Is(err, assistant.ErrBusy):
		code = errno.AssistantBusy
	case stderrors.Is(err, assistant.ErrProductNotResolved):
		code = errno.ProductNotResolved
	case stderrors.Is(err, assistant.ErrEmptyChatID):
		code = errno.InvalidParam
	case stderrors.Is(err, payment.ErrCartEmpty):
		code = errno.CartEmpty
	case stderrors.Is(err, scope.ErrCheckoutPending):
		code = errno.CheckoutPending
	case stderrors.Is(err, suggest.ErrDisabled):
		code = errno.SuggestionsDisabled
	case stderrors.Is(err, context.DeadlineExceeded), stderrors.Is(err, context.Canceled):
		code = errno.BackendError
	}
	return errors.New(int(code), err.Error())
}
