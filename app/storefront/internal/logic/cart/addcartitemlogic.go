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

type AddCartItemLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAddCartItemLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AddCartItemLogic {
	return &AddCartItemLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *AddCartItemLogic) AddCartItem(req *types.AddCartItemReq) (resp *cartstore.Snapshot, err error) {
	if req == nil || req.Id == "" || req.Price < 0 {
		return nil, errors.New(int(errno.InvalidParam), "invalid cart payload")
	}
	if req.Price > cartstore.MaxPrice || req.Quantity > cartstore.MaxQuantity {
		return nil, errors.New(int(errno.InvalidParam), fmt.Sprintf("quantity must not exceed %d and price %d", cartstore.MaxQuantity, cartstore.MaxPrice))
	}

	sc, err := helper.ScopeFromCtx(l.ctx, l.svcCtx)
	if err != nil {
		return nil, err
	}

	// 数量缺省为 1, 小于 1 的数量由购物车抬到 1
	sc.Cart.Add(cartstore.Product{
		ID:       req.Id,
		Name:     req.Name,
		Price:    req.Price,
		ImageURL: req.ImageUrl,
	}, req.Quantity)

	snap := sc.Cart.Snapshot()
	return &snap, nil
}
