// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package account

import (
	"context"

	"WalMate/app/common/consts/errno"
	"WalMate/app/storefront/internal/backend"
	"WalMate/app/storefront/internal/logic/helper"
	"WalMate/app/storefront/internal/notify"
	"WalMate/app/storefront/internal/svc"
	"WalMate/app/storefront/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type SavePreferencesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSavePreferencesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SavePreferencesLogic {
	return &SavePreferencesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SavePreferencesLogic) SavePreferences(prefs backend.Preferences) (resp *types.MessageResp, err error) {
	if len(prefs) == 0 {
		return nil, errors.New(int(errno.InvalidParam), "preferences are empty")
	}

	sc, err := helper.ScopeFromCtx(l.ctx, l.svcCtx)
	if err != nil {
		return nil, err
	}
	token, err := helper.RequireToken(sc)
	if err != nil {
		return nil, err
	}

	res, err := l.svcCtx.Backend.SavePreferences(l.ctx, token, prefs)
	if err != nil {
		l.Errorw("save preferences failed", logx.Field("err", err.Error()))
		return nil, err
	}

	sc.Notices.Push(notify.Info("Preferences saved successfully!", "We'll use these to personalize your experience."))
	msg := res.Message
	if msg == "" {
		msg = "Preferences saved successfully!"
	}
	return &types.MessageResp{Message: msg, Success: true}, nil
}
