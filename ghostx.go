package main

import (
	"flag"
	"fmt"

	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"

	"ghostx-api/internal/cli"
	"ghostx-api/internal/config"
	"ghostx-api/internal/handler"
	"ghostx-api/internal/svc"
)

var configFile = flag.String("f", "etc/ghostx.yaml", "the config file")

func main() {
	flag.Parse()

	cfg := config.MustLoad(*configFile)
	cli.LogConfigSummary(cfg)

	server := rest.MustNewServer(cfg.RestConf, rest.WithCors())
	defer server.Stop()

	httpx.SetErrorHandlerCtx(handler.ErrorResponder)

	ctx := svc.NewServiceContext(cfg)
	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting server at %s:%d...\n", cfg.Host, cfg.Port)
	server.Start()
}
