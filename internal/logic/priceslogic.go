package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"ghostx-api/internal/svc"
	"ghostx-api/internal/types"
)

type PricesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewPricesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PricesLogic {
	return &PricesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Prices returns the tracked symbols with their mid price and 24h change.
// Symbols without a usable mid price are omitted rather than served with a
// silent zero; a failed context query degrades changes to 0 and sets the
// partial marker instead of failing the operation.
func (l *PricesLogic) Prices() (*types.PricesResp, error) {
	snapshot, err := l.svcCtx.Market.Snapshot(l.ctx)
	if err != nil {
		return nil, err
	}

	prices := make(map[string]types.PriceEntry)
	for _, symbol := range l.svcCtx.Market.Tracked() {
		inst, ok := snapshot.Instrument(symbol)
		if !ok || inst.MidPrice <= 0 {
			l.Infof("prices: no usable mid for %s, omitting", symbol)
			continue
		}
		prices[symbol] = types.PriceEntry{
			Price:     inst.MidPrice,
			Change24h: inst.Change24h,
		}
	}

	return &types.PricesResp{
		Prices:  prices,
		Partial: snapshot.Partial,
	}, nil
}
