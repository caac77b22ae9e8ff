package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"ghostx-api/internal/svc"
	"ghostx-api/internal/types"
	marketpkg "ghostx-api/pkg/market"
)

type CandlesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCandlesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CandlesLogic {
	return &CandlesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CandlesLogic) Candles(req *types.CandlesReq) (*types.CandlesResp, error) {
	token, _ := marketpkg.ResolveInterval(req.Interval)
	candles, err := l.svcCtx.Market.Candles(l.ctx, req.Symbol, req.Interval, req.Limit)
	if err != nil {
		return nil, err
	}

	bars := make([]types.CandleBar, 0, len(candles))
	for _, c := range candles {
		bars = append(bars, types.CandleBar{
			Time:   c.Time,
			Open:   c.Open,
			High:   c.High,
			Low:    c.Low,
			Close:  c.Close,
			Volume: c.Volume,
		})
	}

	return &types.CandlesResp{
		Symbol:   req.Symbol,
		Interval: token,
		Candles:  bars,
	}, nil
}
