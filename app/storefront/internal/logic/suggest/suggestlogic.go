// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package suggest

import (
	"context"

	"WalMate/app/storefront/internal/logic/helper"
	"WalMate/app/storefront/internal/suggest"
	"WalMate/app/storefront/internal/svc"
	"WalMate/app/storefront/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type SuggestLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSuggestLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SuggestLogic {
	return &SuggestLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SuggestLogic) Suggest(req *types.SuggestReq) (resp []suggest.Suggestion, err error) {
	list, err := l.svcCtx.Suggester.Suggest(l.ctx, req.TextInput)
	if err != nil {
		l.Errorw("suggest products failed", logx.Field("err", err.Error()))
		return nil, helper.CodeErr(err)
	}
	return list, nil
}
