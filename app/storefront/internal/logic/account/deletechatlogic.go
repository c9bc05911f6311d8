// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package account

import (
	"context"

	"WalMate/app/common/consts/errno"
	"WalMate/app/storefront/internal/logic/helper"
	"WalMate/app/storefront/internal/svc"
	"WalMate/app/storefront/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type DeleteChatLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDeleteChatLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteChatLogic {
	return &DeleteChatLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *DeleteChatLogic) DeleteChat(req *types.ChatPathReq) (resp *types.MessageResp, err error) {
	if req == nil || req.ChatId == "" {
		return nil, errors.New(int(errno.InvalidParam), "invalid chat id")
	}

	sc, err := helper.ScopeFromCtx(l.ctx, l.svcCtx)
	if err != nil {
		return nil, err
	}
	token, err := helper.RequireToken(sc)
	if err != nil {
		return nil, err
	}

	res, err := l.svcCtx.Backend.DeleteChat(l.ctx, token, req.ChatId)
	if err != nil {
		return nil, err
	}
	// 删除的是当前会话时开启新会话
	if sc.Assistant.ChatID() == req.ChatId {
		sc.Assistant.Reset()
	}
	return &types.MessageResp{Message: res.Message, Success: true}, nil
}
