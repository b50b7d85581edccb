package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/go-sod/gesture/internal/buildinfo"
	"github.com/go-sod/gesture/internal/classify"
	"github.com/go-sod/gesture/internal/config"
	"github.com/go-sod/gesture/internal/logging"
	"github.com/go-sod/gesture/internal/server"
	"github.com/go-sod/gesture/internal/setup"
	"github.com/go-sod/gesture/internal/shutdown"
)

func main() {
	_, _ = fmt.Fprint(os.Stdout, buildinfo.Graffiti)
	_, _ = fmt.Fprintf(
		os.Stdout,
		"%s: %s, %s\n",
		buildinfo.Info.Name(),
		buildinfo.Info.Time(),
		buildinfo.Info.Tag(),
	)

	ctx, done := shutdown.New()
	defer done()
	logger := logging.FromContext(ctx)
	if err := run(ctx, done); err != nil {
		done()
		logger.Fatal(err)
	}
}

func run(ctx context.Context, cancel func()) error {
	cfg := config.Config{}
	env, err := setup.Setup(ctx, &cfg)
	if err != nil {
		return fmt.Errorf("setup.Setup: %w", err)
	}
	defer func() {
		_ = env.Close(context.Background())
	}()
	ctx = logging.WithLogger(ctx, env.Logger())
	logger := logging.FromContext(ctx)

	classifier, err := env.ProvideClassifier()()
	if err != nil {
		return fmt.Errorf("classifier provider function error: %w", err)
	}

	srv, err := server.New(cfg.SrvAddr)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}

	classifyHandler, err := classify.NewHandler(&cfg.Classify, classifier, env.Lookup())
	if err != nil {
		return fmt.Errorf("classify.NewHandler: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/classify", classifyHandler)
	mux.Handle("/health", server.HandleHealth(ctx))

	errCh := make(chan error, 2)
	if cfg.GRPCAddr != "" {
		grpcSrv, err := server.New(cfg.GRPCAddr)
		if err != nil {
			return fmt.Errorf("server.New grpc: %w", err)
		}
		healthSrv, _ := server.NewGRPCHealth()
		go func() {
			if err := grpcSrv.ServeGRPC(ctx, healthSrv); err != nil {
				errCh <- err
				cancel()
			}
		}()
	}

	logger.Infof("serving classification on %s", srv.Addr())
	go func() {
		errCh <- srv.ServeHTTPHandler(ctx, mux)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return <-errCh
	}
}
