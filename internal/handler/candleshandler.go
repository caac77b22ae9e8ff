package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"ghostx-api/internal/logic"
	"ghostx-api/internal/svc"
	"ghostx-api/internal/types"
)

func CandlesHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.CandlesReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, parseError(err))
			return
		}

		l := logic.NewCandlesLogic(r.Context(), svcCtx)
		resp, err := l.Candles(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
