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

type RegisterLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewRegisterLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RegisterLogic {
	return &RegisterLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *RegisterLogic) Register(req *types.RegisterReq) (resp *types.RegisterResp, err error) {
	sc, err := helper.ScopeFromCtx(l.ctx, l.svcCtx)
	if err != nil {
		return nil, err
	}

	res, err := sc.Account.Register(l.ctx, req.Username, req.Email, req.Password)
	if err != nil {
		l.Errorw("register failed", logx.Field("username", req.Username), logx.Field("err", err.Error()))
		return nil, err
	}

	msg := res.Message
	if msg == "" {
		msg = "Your account has been created!"
	}
	return &types.RegisterResp{Message: msg, LoggedIn: sc.Account.LoggedIn()}, nil
}
