package main

import (
	"context"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/typed-api-response/internal/cart"
	"github.com/angelmondragon/typed-api-response/pkg/capture"
	"github.com/angelmondragon/typed-api-response/pkg/config"
	"github.com/angelmondragon/typed-api-response/pkg/logger"
	"github.com/angelmondragon/typed-api-response/pkg/response"
)

type fakeData struct {
	Msg    string `json:"msg"`
	Num    int    `json:"num"`
	IsDope bool   `json:"is_dope"`
}

func main() {
	logg := logger.New(logger.Options{ServiceName: "envelope-demo", Output: os.Stderr})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: cfg.App.ServiceName,
		Level:       cfg.App.LogLevel,
		WarnStack:   cfg.App.LogWarnStack,
		Output:      os.Stderr,
	})

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":            cfg.App.Env,
		"success_status": cfg.Demo.SuccessStatus,
		"error_status":   cfg.Demo.ErrorStatus,
	})
	logg.Info(ctx, "building demo envelopes")

	if err := run(ctx, cfg, logg, os.Stdout); err != nil {
		logg.Error(ctx, "demo failed", err)
		os.Exit(1)
	}
}

// run prints one envelope per line (or per indented block when pretty):
// a flat record, a plain cart, a validated cart and a captured panic.
func run(ctx context.Context, cfg *config.Config, logg *logger.Logger, out io.Writer) error {
	requestID := uuid.NewString()
	ctx = logg.WithRequestID(ctx, requestID)
	opts := []response.Option{response.WithRequestID(requestID)}

	data := fakeData{Msg: "asdfasdfasdf", Num: 123}
	flat, err := response.Build(&data, nil, cfg.Demo.SuccessStatus, opts...)
	if err != nil {
		return err
	}

	plain := cart.Sample()
	plainEnv, err := response.Build(&plain, nil, cfg.Demo.SuccessStatus, opts...)
	if err != nil {
		return err
	}

	checked, err := cart.NewCheckedCart(uuid.New(), "USD",
		cart.CheckedItem{SKU: "sku-100", Qty: 3, UnitPrice: decimal.RequireFromString("1.99")},
		cart.CheckedItem{SKU: "sku-200", Qty: 1, UnitPrice: decimal.RequireFromString("12.50")},
	)
	if err != nil {
		return err
	}
	checkedEnv, err := response.Build(&checked, nil, cfg.Demo.SuccessStatus, opts...)
	if err != nil {
		return err
	}

	zero := 0
	fault := capture.Do(func() { _ = 1 / zero })
	failed, err := response.Build[cart.Cart](nil, fault, cfg.Demo.ErrorStatus, opts...)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	if cfg.Demo.Pretty {
		enc.SetIndent("", "  ")
	}
	for _, r := range []response.Response{flat.Response(), plainEnv.Response(), checkedEnv.Response(), failed.Response()} {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}

	if s, ok := plainEnv.Success(); ok {
		total := s.Payload().Data().Total()
		logg.Debug(logg.WithField(ctx, "cart_total", total.String()), "plain cart shaped")
	}
	if f, ok := failed.Failure(); ok {
		logg.Info(logg.WithField(ctx, "error_type", f.Payload().Err().Type), "fault captured")
	}
	return nil
}
