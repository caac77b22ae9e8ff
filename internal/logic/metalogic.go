package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"ghostx-api/internal/svc"
	"ghostx-api/pkg/hyperliquid"
)

type MetaLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewMetaLogic(ctx context.Context, svcCtx *svc.ServiceContext) *MetaLogic {
	return &MetaLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Meta exposes the venue instrument metadata unmodified.
func (l *MetaLogic) Meta() (*hyperliquid.MetaResponse, error) {
	return l.svcCtx.Market.Meta(l.ctx)
}
