// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package account

import (
	"context"

	"WalMate/app/storefront/internal/logic/helper"
	"WalMate/app/storefront/internal/svc"
	"WalMate/app/storefront/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type LoginLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewLoginLogic(ctx context.Context, svcCtx *svc.ServiceContext) *LoginLogic {
	return &LoginLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *LoginLogic) Login(req *types.LoginReq) (resp *types.AccountResp, err error) {
	sc, err := helper.ScopeFromCtx(l.ctx, l.svcCtx)
	if err != nil {
		return nil, err
	}

	if err := sc.Account.Login(l.ctx, req.Username, req.Password); err != nil {
		l.Errorw("login failed", logx.Field("username", req.Username), logx.Field("err", err.Error()))
		return nil, err
	}

	return &types.AccountResp{LoggedIn: true, Username: sc.Account.Username()}, nil
}
