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

type GetChatLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetChatLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetChatLogic {
	return &GetChatLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetChatLogic) GetChat(req *types.ChatPathReq) (resp *types.ChatHistoryResp, err error) {
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

	history, err := l.svcCtx.Backend.ChatHistory(l.ctx, token, req.ChatId)
	if err != nil {
		return nil, err
	}

	resp = &types.ChatHistoryResp{ChatId: req.ChatId, Items: make([]types.ChatHistoryItem, 0, len(history))}
	for _, item := range history {
		resp.Items = append(resp.Items, types.ChatHistoryItem{Prompt: item.Prompt, Response: item.Response})
	}
	return resp, nil
}
