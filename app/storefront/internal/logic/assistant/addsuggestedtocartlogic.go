// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package assistant

import (
	"context"

	"WalMate/app/common/consts/errno"
	cartstore "WalMate/app/storefront/internal/cart"
	"WalMate/app/storefront/internal/logic/helper"
	"WalMate/app/storefront/internal/svc"
	"WalMate/app/storefront/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type AddSuggestedToCartLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAddSuggestedToCartLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AddSuggestedToCartLogic {
	return &AddSuggestedToCartLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *AddSuggestedToCartLogic) AddSuggestedToCart(req *types.ProductPathReq) (resp *cartstore.Snapshot, err error) {
	if req == nil || req.Id == "" {
		return nil, errors.New(int(errno.InvalidParam), "invalid product id")
	}

	sc, err := helper.ScopeFromCtx(l.ctx, l.svcCtx)
	if err != nil {
		return nil, err
	}

	if _, err := sc.Assistant.AddToCart(req.Id); err != nil {
		return nil, helper.CodeErr(err)
	}
	snap := sc.Cart.Snapshot()
	return &snap, nil
}
