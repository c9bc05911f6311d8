// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package account

import (
	"context"
	stderrors "errors"

	"WalMate/app/common/consts/errno"
	"WalMate/app/storefront/internal/logic/helper"
	"WalMate/app/storefront/internal/svc"
	"WalMate/app/storefront/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type GetAccountLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetAccountLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetAccountLogic {
	return &GetAccountLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// GetAccount reports the logged in state; profile fields are filled when the backend answers.
func (l *GetAccountLogic) GetAccount() (resp *types.AccountResp, err error) {
	sc, err := helper.ScopeFromCtx(l.ctx, l.svcCtx)
	if err != nil {
		return nil, err
	}

	token := sc.Account.Token()
	if token == "" {
		return &types.AccountResp{LoggedIn: false}, nil
	}

	resp = &types.AccountResp{LoggedIn: true, Username: sc.Account.Username()}
	info, err := l.svcCtx.Backend.UserInfo(l.ctx, token)
	if err != nil {
		var codeMsg *errors.CodeMsg
		if stderrors.As(err, &codeMsg) && codeMsg.Code == errno.Unauthorized {
			// token 已失效
			_ = sc.Account.Logout(l.ctx)
			return &types.AccountResp{LoggedIn: false}, nil
		}
		l.Errorw("load user info failed", logx.Field("err", err.Error()))
		return resp, nil
	}

	if info.Username != "" {
		resp.Username = info.Username
	}
	resp.Email = info.Email
	resp.CreatedAt = info.CreatedAt
	resp.LastLogin = info.LastLogin
	resp.Preferences = info.Preferences
	return resp, nil
}
