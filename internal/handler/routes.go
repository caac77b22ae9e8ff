package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"ghostx-api/internal/svc"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/",
				Handler: ServiceInfoHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/health",
				Handler: HealthHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/prices",
				Handler: PricesHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/candles/:symbol",
				Handler: CandlesHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/orderbook/:symbol",
				Handler: OrderbookHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/quote",
				Handler: QuoteHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/submit",
				Handler: SubmitHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/market/:symbol",
				Handler: MarketSummaryHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/funding/:symbol",
				Handler: FundingHistoryHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/meta",
				Handler: MetaHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/user/:address",
				Handler: UserStateHandler(serverCtx),
			},
		},
	)
}
