package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"walletview/internal/config"
	"walletview/internal/core"
	"walletview/internal/http/handler"
	"walletview/internal/http/handler/middleware"
	"walletview/internal/http/payload"
	"walletview/internal/http/server"
	"walletview/internal/ledger"
	"walletview/internal/retry"
	"walletview/pkg/log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"
)

const (
	portFlag     = "port"
	nodeURLFlag  = "node-url"
	logLevelFlag = "log-level"
)

func NewApp() *cli.App {
	return &cli.App{
		Name:  "walletview",
		Usage: "Wallet read API over a ledger node, merging mempool and confirmed state",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: portFlag, Aliases: []string{"p"}, Usage: "HTTP listen port (overrides API_PORT)"},
			&cli.StringFlag{Name: nodeURLFlag, Aliases: []string{"n"}, Usage: "Ledger node base URL (overrides NODE_URL)"},
			&cli.StringFlag{Name: logLevelFlag, Aliases: []string{"l"}, Usage: "Log level (overrides LOG_LEVEL)"},
		},
		Action: Start,
	}
}

func Start(c *cli.Context) error {
	config, err := config.NewApp(config.Overrides{
		Port:     c.String(portFlag),
		NodeURL:  c.String(nodeURLFlag),
		LogLevel: c.String(logLevelFlag),
	})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		return err
	}
	logger := log.NewZapLogger("walletview", level)
	defer func() { _ = logger.Sync() }()

	// ledger node
	client, err := ledger.NewClient(config.NodeURL, config.NodeAPIKey, ledger.NewHTTPClient(config.NodeTimeout))
	if err != nil {
		logger.Errorw("failed to create ledger client", "error", err)
		return err
	}

	policy := retry.Default(logger)
	policy.MaxAttempts = config.RetryMaxAttempts
	policy.Delay = config.RetryDelay

	gateway := ledger.NewGateway(logger, client, policy, ledger.NewMetrics(prometheus.DefaultRegisterer))

	// wallet
	wallet := core.NewWallet(logger, gateway)

	// handler
	walletHlr := handler.NewWalletHandler(
		logger,
		payload.Decoder{},
		wallet)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewMetricsMiddleware(prometheus.DefaultRegisterer).Metrics(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)
	hdlr = middleware.NewCORSMiddleware("*").CORS(hdlr)

	// register routes
	mux.HandleFunc(handler.GetBalances, walletHlr.HandleGetBalances)
	mux.HandleFunc(handler.GetTransfers, walletHlr.HandleGetTransfers)
	mux.HandleFunc(handler.GetTokens, walletHlr.HandleGetTokens)
	mux.HandleFunc(handler.GetToken, walletHlr.HandleGetToken)
	mux.HandleFunc(handler.GetNextNonce, walletHlr.HandleGetNextNonce)
	mux.HandleFunc(handler.GetRecommendedFees, walletHlr.HandleGetRecommendedFees)
	mux.HandleFunc(handler.SubmitTransaction, walletHlr.HandleSubmitTransaction)
	mux.HandleFunc(handler.Health, handler.HandleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	logger.Infow("walletview configured",
		"port", config.Port,
		"node_url", config.NodeURL,
		"retry_max_attempts", config.RetryMaxAttempts,
		"retry_delay", config.RetryDelay)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == nil || err == http.ErrServerClosed {
		return sdErr
	}

	return err
}
