package logic

import (
	"context"
	"encoding/json"

	"github.com/zeromicro/go-zero/core/logx"

	"ghostx-api/internal/svc"
	"ghostx-api/internal/types"
)

type UserStateLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUserStateLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UserStateLogic {
	return &UserStateLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// UserState passes the venue's account record through unmodified.
func (l *UserStateLogic) UserState(req *types.UserStateReq) (json.RawMessage, error) {
	return l.svcCtx.Market.UserState(l.ctx, req.Address)
}
