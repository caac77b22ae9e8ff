package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"ghostx-api/internal/svc"
	"ghostx-api/internal/types"
)

type FundingHistoryLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewFundingHistoryLogic(ctx context.Context, svcCtx *svc.ServiceContext) *FundingHistoryLogic {
	return &FundingHistoryLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *FundingHistoryLogic) FundingHistory(req *types.FundingHistoryReq) (*types.FundingHistoryResp, error) {
	records, err := l.svcCtx.Market.FundingHistory(l.ctx, req.Symbol, req.Start, req.End)
	if err != nil {
		return nil, err
	}

	events := make([]types.FundingEvent, 0, len(records))
	for _, record := range records {
		events = append(events, types.FundingEvent{
			Time:    record.Time,
			Rate:    record.Rate,
			Premium: record.Premium,
		})
	}

	return &types.FundingHistoryResp{
		Symbol: req.Symbol,
		Events: events,
	}, nil
}
