// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package assistant

import (
	"context"

	assistantsession "WalMate/app/storefront/internal/assistant"
	"WalMate/app/storefront/internal/logic/helper"
	"WalMate/app/storefront/internal/svc"
	"WalMate/app/storefront/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ResumeChatLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewResumeChatLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ResumeChatLogic {
	return &ResumeChatLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ResumeChatLogic) ResumeChat(req *types.ChatPathReq) (resp *assistantsession.View, err error) {
	sc, err := helper.ScopeFromCtx(l.ctx, l.svcCtx)
	if err != nil {
		return nil, err
	}
	if _, err := helper.RequireToken(sc); err != nil {
		return nil, err
	}

	if err := sc.Assistant.Resume(l.ctx, req.ChatId); err != nil {
		l.Errorw("resume chat failed", logx.Field("chatId", req.ChatId), logx.Field("err", err.Error()))
		return nil, helper.CodeErr(err)
	}
	view := sc.Assistant.View()
	return &view, nil
}
