// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package catalog

import (
	"context"

	"WalMate/app/common/consts/errno"
	"WalMate/app/storefront/internal/catalog"
	"WalMate/app/storefront/internal/svc"
	"WalMate/app/storefront/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type GetProductLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetProductLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetProductLogic {
	return &GetProductLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetProductLogic) GetProduct(req *types.ProductPathReq) (resp *catalog.Item, err error) {
	if req == nil || req.Id == "" {
		return nil, errors.New(int(errno.InvalidParam), "invalid product id")
	}

	item, err := l.svcCtx.Catalog.Get(l.ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
