// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package session

import (
	"context"

	"WalMate/app/common/util"
	"WalMate/app/storefront/internal/svc"
	"WalMate/app/storefront/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type EndSessionLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewEndSessionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *EndSessionLogic {
	return &EndSessionLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// EndSession tears the shopper scope down; the next request starts a fresh session.
func (l *EndSessionLogic) EndSession() (resp *types.SessionResp, err error) {
	sessionId, err := util.SessionIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	l.svcCtx.Scopes.Close(sessionId)
	l.Infow("shopper session ended", logx.Field("session", sessionId))
	return &types.SessionResp{SessionId: sessionId}, nil
}
