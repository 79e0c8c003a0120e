package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"go.opentelemetry.io/otel"
	stdouttrace "go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	_ "github.com/Semzy1/abbas-delight-bakry/docs"
	"github.com/Semzy1/abbas-delight-bakry/pkg/config"
	"github.com/Semzy1/abbas-delight-bakry/pkg/logger"
	"github.com/Semzy1/abbas-delight-bakry/pkg/notify"
	"github.com/Semzy1/abbas-delight-bakry/pkg/order"
	"github.com/Semzy1/abbas-delight-bakry/pkg/order/memory"
)

// @title Abba's Delight Bakery API
// @version 1.0
// @description Order management backend for the bakery storefront.
// @host localhost:3000
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := logger.New(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zl.Sync()

	exp, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		zl.Fatal("init trace exporter", zap.Error(err))
	}
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp))
	otel.SetTracerProvider(tp)
	defer tp.Shutdown(context.Background())

	mailer := notify.NewMailer(cfg.SMTP)
	if !mailer.Enabled() {
		zl.Warn("mail transport unconfigured, notifications disabled")
	}
	dispatcher := notify.NewDispatcher(mailer, zl)
	defer dispatcher.Close()

	svc := order.NewService(memory.New(), dispatcher)

	a := newAPI(svc, zl, tp.Tracer(cfg.App.Name))

	zl.Info("listening", zap.String("addr", cfg.Server.Address()))
	if err := http.ListenAndServe(cfg.Server.Address(), a.routes()); err != nil {
		zl.Error("server closed", zap.Error(err))
		os.Exit(1)
	}
}
