package logic

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"

	"ghostx-api/internal/svc"
	"ghostx-api/internal/types"
	marketpkg "ghostx-api/pkg/market"
)

type MarketSummaryLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewMarketSummaryLogic(ctx context.Context, svcCtx *svc.ServiceContext) *MarketSummaryLogic {
	return &MarketSummaryLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *MarketSummaryLogic) MarketSummary(req *types.MarketSummaryReq) (*types.MarketSummaryResp, error) {
	snapshot, err := l.svcCtx.Market.Snapshot(l.ctx)
	if err != nil {
		return nil, err
	}

	inst, ok := snapshot.Instrument(req.Symbol)
	if !ok || inst.MidPrice <= 0 {
		return nil, fmt.Errorf("%w: %s", marketpkg.ErrSymbolNotFound, req.Symbol)
	}

	return &types.MarketSummaryResp{
		Symbol:       inst.Symbol,
		MidPrice:     inst.MidPrice,
		MarkPrice:    inst.MarkPrice,
		IndexPrice:   inst.IndexPrice,
		OraclePrice:  inst.OraclePrice,
		PrevDayPrice: inst.PrevDayPrice,
		Change24h:    inst.Change24h,
		FundingRate:  inst.FundingRate,
		OpenInterest: inst.OpenInterest,
		DayVolume:    inst.DayVolume,
		Premium:      inst.Premium,
		Partial:      snapshot.Partial || !inst.HasContext,
		Timestamp:    snapshot.Time.UnixMilli(),
	}, nil
}
