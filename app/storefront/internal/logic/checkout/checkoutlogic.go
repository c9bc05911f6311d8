// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package checkout

import (
	"context"

	"WalMate/app/storefront/internal/logic/helper"
	"WalMate/app/storefront/internal/payment"
	"WalMate/app/storefront/internal/svc"

	"github.com/zeromicro/go-zero/core/logx"
)

type CheckoutLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCheckoutLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CheckoutLogic {
	return &CheckoutLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CheckoutLogic) Checkout() (resp *payment.Receipt, err error) {
	sc, err := helper.ScopeFromCtx(l.ctx, l.svcCtx)
	if err != nil {
		return nil, err
	}

	receipt, err := l.svcCtx.Checkout.Submit(l.ctx, sc)
	if err != nil {
		return nil, helper.CodeErr(err)
	}
	l.Infow("checkout submitted", logx.Field("orderId", receipt.OrderID), logx.Field("status", string(receipt.Status)))
	return receipt, nil
}
