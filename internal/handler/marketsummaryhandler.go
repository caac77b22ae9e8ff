package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"ghostx-api/internal/logic"
	"ghostx-api/internal/svc"
	"ghostx-api/internal/types"
)

func MarketSummaryHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.MarketSummaryReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, parseError(err))
			return
		}

		l := logic.NewMarketSummaryLogic(r.Context(), svcCtx)
		resp, err := l.MarketSummary(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
