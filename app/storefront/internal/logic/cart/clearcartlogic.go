// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package cart

import (
	"context"

	cartstore "WalMate/app/storefront/internal/cart"
	"WalMate/app/storefront/internal/logic/helper"
	"WalMate/app/storefront/internal/scope"
	"WalMate/app/storefront/internal/svc"

	"github.com/zeromicro/go-zero/core/logx"
)

type ClearCartLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewClearCartLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ClearCartLogic {
	return &ClearCartLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ClearCartLogic) ClearCart() (resp *cartstore.Snapshot, err error) {
	sc, err := helper.ScopeFromCtx(l.ctx, l.svcCtx)
	if err != nil {
		return nil, err
	}

	if sc.CheckoutPending() {
		return nil, helper.CodeErr(scope.ErrCheckoutPending)
	}
	sc.Cart.Clear()
	snap := sc.Cart.Snapshot()
	return &snap, nil
}
