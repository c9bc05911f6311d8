// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package cart

import (
	"context"
	"fmt"

	"WalMate/app/common/consts/errno"
	cartstore "WalMate/app/storefront/internal/cart"
	"WalMate/app/storefront/internal/logic/helper"
	"WalMate/app/storefront/internal/svc"
	"WalMate/app/storefront/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type UpdateCartItemLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUpdateCartItemLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UpdateCartItemLogic {
	return &UpdateCartItemLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *UpdateCartItemLogic) UpdateCartItem(req *types.UpdateCartItemReq) (resp *cartstore.Snapshot, err error) {
	if req == nil || req.Id == "" {
		return nil, errors.New(int(errno.InvalidParam), "invalid cart item")
	}
	if req.Quantity > cartstore.MaxQuantity {
		return nil, errors.New(int(errno.InvalidParam), fmt.Sprintf("quantity must not exceed %d", cartstore.MaxQuantity))
	}

	sc, err := helper.ScopeFromCtx(l.ctx, l.svcCtx)
	if err != nil {
		return nil, err
	}

	sc.Cart.UpdateQuantity(req.Id, req.Quantity)
	snap := sc.Cart.Snapshot()
	return &snap, nil
}
