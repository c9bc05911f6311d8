// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package assistant

import (
	"context"

	"WalMate/app/common/consts/errno"
	assistantsession "WalMate/app/storefront/internal/assistant"
	"WalMate/app/storefront/internal/logic/helper"
	"WalMate/app/storefront/internal/svc"
	"WalMate/app/storefront/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type GetSuggestedProductLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetSuggestedProductLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetSuggestedProductLogic {
	return &GetSuggestedProductLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetSuggestedProductLogic) GetSuggestedProduct(req *types.ProductPathReq) (resp *assistantsession.Product, err error) {
	if req == nil || req.Id == "" {
		return nil, errors.New(int(errno.InvalidParam), "invalid product id")
	}

	sc, err := helper.ScopeFromCtx(l.ctx, l.svcCtx)
	if err != nil {
		return nil, err
	}

	p, err := sc.Assistant.ProductDetail(req.Id)
	if err != nil {
		return nil, helper.CodeErr(err)
	}
	return &p, nil
}
