package logic

import (
	"context"
	"strconv"

	"github.com/zeromicro/go-zero/core/logx"

	"ghostx-api/internal/svc"
	"ghostx-api/internal/types"
)

type HealthLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewHealthLogic(ctx context.Context, svcCtx *svc.ServiceContext) *HealthLogic {
	return &HealthLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Health probes upstream connectivity via the mid price query. It always
// returns a response; connectivity problems degrade the status instead of
// failing the endpoint.
func (l *HealthLogic) Health() (*types.HealthResp, error) {
	ctx, cancel := context.WithTimeout(l.ctx, l.svcCtx.Config.Upstream.Timeout())
	defer cancel()

	mids, err := l.svcCtx.Upstream.AllMids(ctx)
	if err != nil {
		l.Errorf("health: upstream probe failed: %v", err)
		return &types.HealthResp{
			Status:   "degraded",
			Upstream: "error",
			Error:    err.Error(),
		}, nil
	}

	resp := &types.HealthResp{Status: "healthy", Upstream: "connected"}
	if raw, ok := mids["BTC"]; ok {
		if price, err := strconv.ParseFloat(raw, 64); err == nil && price > 0 {
			resp.BTCPrice = &price
		}
	}
	if resp.BTCPrice == nil {
		resp.Status = "degraded"
		resp.Upstream = "no_data"
	}
	return resp, nil
}
