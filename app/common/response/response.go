package response

import (
	"context"
	stderrors "errors"
	"net/http"

	"WalMate/app/common/consts/errno"

	"github.com/zeromicro/x/errors"
)

type Response struct {
	StatusCode int    `json:"code"`
	StatusMsg  string `json:"msg"`
}

func NewResponse(statusCode int, statusMsg string) Response {
	return Response{
		StatusCode: statusCode,
		StatusMsg:  statusMsg,
	}
}

// ErrorHandler renders coded errors as a Response body, plugged into httpx.SetErrorHandlerCtx.
func ErrorHandler(_ context.Context, err error) (int, any) {
	var codeMsg *errors.CodeMsg
	if stderrors.As(err, &codeMsg) {
		status := http.StatusBadRequest
		switch codeMsg.Code {
		case errno.SessionMissing, errno.Unauthorized:
			status = http.StatusUnauthorized
		case errno.AssistantBusy, errno.CheckoutPending:
			status = http.StatusConflict
		case errno.NotFound:
			status = http.StatusNotFound
		case errno.BackendError:
			status = http.StatusBadGateway
		case errno.SuggestionsDisabled:
			status = http.StatusServiceUnavailable
		case errno.InternalError:
			status = http.StatusInternalServerError
		}
		return status, NewResponse(codeMsg.Code, codeMsg.Msg)
	}
	return http.StatusInternalServerError, NewResponse(errno.InternalError, err.Error())
}
