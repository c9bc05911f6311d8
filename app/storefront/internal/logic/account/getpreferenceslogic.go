// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package account

import (
	"context"

	"WalMate/app/storefront/internal/backend"
	"WalMate/app/storefront/internal/logic/helper"
	"WalMate/app/storefront/internal/svc"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetPreferencesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetPreferencesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetPreferencesLogic {
	return &GetPreferencesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetPreferencesLogic) GetPreferences() (resp backend.Preferences, err error) {
	sc, err := helper.ScopeFromCtx(l.ctx, l.svcCtx)
	if err != nil {
		return nil, err
	}
	token, err := helper.RequireToken(sc)
	if err != nil {
		return nil, err
	}

	return l.svcCtx.Backend.Preferences(l.ctx, token)
}
