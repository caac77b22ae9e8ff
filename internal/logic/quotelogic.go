package logic

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"ghostx-api/internal/svc"
	"ghostx-api/internal/types"
	quotepkg "ghostx-api/pkg/quote"
)

type QuoteLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewQuoteLogic(ctx context.Context, svcCtx *svc.ServiceContext) *QuoteLogic {
	return &QuoteLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *QuoteLogic) Quote(req *types.QuoteReq) (*types.QuoteResp, error) {
	snapshot, err := l.svcCtx.Market.Snapshot(l.ctx)
	if err != nil {
		return nil, err
	}
	if snapshot.Partial {
		l.Infof("quote: snapshot for %s is partial, derived fields may be defaulted", req.Symbol)
	}

	q, err := quotepkg.Compute(snapshot, quotepkg.Request{
		Symbol:   req.Symbol,
		IsBuy:    req.IsBuy,
		SizeUSD:  req.SizeUSD,
		Leverage: req.Leverage,
	}, time.Now())
	if err != nil {
		return nil, err
	}

	return &types.QuoteResp{
		Symbol:                q.Symbol,
		Side:                  q.Side,
		SizeUSD:               q.SizeUSD,
		Leverage:              q.Leverage,
		EstimatedPrice:        q.EstimatedPrice,
		MarkPrice:             q.MarkPrice,
		EstimatedFee:          q.EstimatedFee,
		TotalCost:             q.TotalCost,
		PositionValue:         q.PositionValue,
		PositionSizeCoins:     q.PositionSizeCoins,
		LiquidationPrice:      q.LiquidationPrice,
		FundingRate:           q.FundingRate,
		FundingRateAnnualized: q.FundingRateAnnualized,
		Timestamp:             q.Timestamp,
	}, nil
}
