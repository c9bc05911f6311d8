// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package assistant

import (
	"context"

	assistantsession "WalMate/app/storefront/internal/assistant"
	"WalMate/app/storefront/internal/logic/helper"
	"WalMate/app/storefront/internal/svc"

	"github.com/zeromicro/go-zero/core/logx"
)

type OpenAssistantLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewOpenAssistantLogic(ctx context.Context, svcCtx *svc.ServiceContext) *OpenAssistantLogic {
	return &OpenAssistantLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *OpenAssistantLogic) OpenAssistant() (resp *assistantsession.View, err error) {
	sc, err := helper.ScopeFromCtx(l.ctx, l.svcCtx)
	if err != nil {
		return nil, err
	}

	sc.Assistant.Open()
	view := sc.Assistant.View()
	return &view, nil
}
