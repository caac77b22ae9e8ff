package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"ghostx-api/internal/svc"
	"ghostx-api/internal/types"
	marketpkg "ghostx-api/pkg/market"
)

type OrderbookLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewOrderbookLogic(ctx context.Context, svcCtx *svc.ServiceContext) *OrderbookLogic {
	return &OrderbookLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *OrderbookLogic) Orderbook(req *types.OrderbookReq) (*types.OrderbookResp, error) {
	book, err := l.svcCtx.Market.Orderbook(l.ctx, req.Symbol, req.NSigFigs)
	if err != nil {
		return nil, err
	}

	return &types.OrderbookResp{
		Symbol:    book.Symbol,
		Bids:      convertLevels(book.Bids),
		Asks:      convertLevels(book.Asks),
		Timestamp: book.Time,
	}, nil
}

func convertLevels(levels []marketpkg.BookLevel) []types.BookLevel {
	out := make([]types.BookLevel, 0, len(levels))
	for _, level := range levels {
		out = append(out, types.BookLevel{Price: level.Price, Size: level.Size})
	}
	return out
}
