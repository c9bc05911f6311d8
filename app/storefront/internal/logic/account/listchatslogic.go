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

type ListChatsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListChatsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListChatsLogic {
	return &ListChatsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListChatsLogic) ListChats() (resp *types.ChatListResp, err error) {
	sc, err := helper.ScopeFromCtx(l.ctx, l.svcCtx)
	if err != nil {
		return nil, err
	}
	token, err := helper.RequireToken(sc)
	if err != nil {
		return nil, err
	}

	ids, err := l.svcCtx.Backend.ChatSessions(l.ctx, token)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return &types.ChatListResp{ChatIds: ids}, nil
}
