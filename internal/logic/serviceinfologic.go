package logic

import (
	"context"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	"ghostx-api/internal/svc"
	"ghostx-api/internal/types"
)

const (
	serviceName    = "ghostx-api"
	serviceVersion = "3.0.0"
)

type ServiceInfoLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewServiceInfoLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ServiceInfoLogic {
	return &ServiceInfoLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ServiceInfoLogic) ServiceInfo() (*types.ServiceInfoResp, error) {
	mode := strings.ToLower(strings.TrimSpace(l.svcCtx.Config.Upstream.Mode))
	if mode == "" {
		mode = "mainnet"
	}
	return &types.ServiceInfoResp{
		Service: serviceName,
		Version: serviceVersion,
		Status:  "operational",
		Venue:   "hyperliquid",
		Mode:    mode,
	}, nil
}
