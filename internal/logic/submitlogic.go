package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"ghostx-api/internal/svc"
	"ghostx-api/internal/types"
	quotepkg "ghostx-api/pkg/quote"
)

type SubmitLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSubmitLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SubmitLogic {
	return &SubmitLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Submit validates the structural invariants of an already-signed order
// envelope before relay. Signature verification belongs to the settlement
// collaborator downstream; the gateway never reports a fabricated fill.
func (l *SubmitLogic) Submit(req *types.SubmitReq) (*types.SubmitResp, error) {
	order := quotepkg.SignedOrder{
		Symbol:      req.Symbol,
		IsBuy:       req.IsBuy,
		SizeUSD:     req.SizeUSD,
		Leverage:    req.Leverage,
		UserAddress: req.UserAddress,
		Signature:   req.Signature,
		Timestamp:   req.Timestamp,
	}
	signer, err := quotepkg.ValidateOrder(order)
	if err != nil {
		return nil, err
	}

	l.Infof("submit: validated %s %s size=%v leverage=%d signer=%s",
		order.Side(), order.Symbol, order.SizeUSD, order.Leverage, signer)

	return &types.SubmitResp{
		Success:   true,
		Message:   "order flow validated",
		Execution: "pending",
		Details: types.OrderDetails{
			Symbol:    order.Symbol,
			Side:      order.Side(),
			SizeUSD:   order.SizeUSD,
			Leverage:  order.Leverage,
			User:      signer,
			Timestamp: order.Timestamp,
		},
	}, nil
}
