package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"ghostx-api/internal/logic"
	"ghostx-api/internal/svc"
	"ghostx-api/internal/types"
)

func FundingHistoryHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.FundingHistoryReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, parseError(err))
			return
		}

		l := logic.NewFundingHistoryLogic(r.Context(), svcCtx)
		resp, err := l.FundingHistory(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
