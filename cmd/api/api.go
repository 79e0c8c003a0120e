package main

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel/trace"
	noop "go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"github.com/Semzy1/abbas-delight-bakry/pkg/order"
)

// api bundles the handler dependencies. Everything is injected so tests
// can build isolated instances.
type api struct {
	svc    *order.Service
	log    *zap.Logger
	tracer trace.Tracer
}

func newAPI(svc *order.Service, log *zap.Logger, tracer trace.Tracer) *api {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}
	return &api{svc: svc, log: log, tracer: tracer}
}

// routes builds the full HTTP surface. Static paths are registered
// before the {orderId} catch-alls so /orders/stats/* resolve correctly.
func (a *api) routes() http.Handler {
	r := mux.NewRouter()
	r.Use(a.traceMiddleware)

	orders := r.PathPrefix("/orders").Subrouter()
	orders.HandleFunc("/stats/overview", a.statsOverviewHandler).Methods(http.MethodGet)
	orders.HandleFunc("/stats/summary", a.statsSummaryHandler).Methods(http.MethodGet)
	orders.HandleFunc("", a.createOrderHandler).Methods(http.MethodPost)
	orders.HandleFunc("", a.listOrdersHandler).Methods(http.MethodGet)
	orders.HandleFunc("/{orderId}", a.getOrderHandler).Methods(http.MethodGet)
	orders.HandleFunc("/{orderId}/status", a.updateStatusHandler).Methods(http.MethodPatch)
	orders.HandleFunc("/{orderId}/messages", a.appendMessageHandler).Methods(http.MethodPost)

	vendor := r.PathPrefix("/vendor").Subrouter()
	vendor.HandleFunc("/dashboard", a.vendorDashboardHandler).Methods(http.MethodGet)
	vendor.HandleFunc("/analytics", a.vendorAnalyticsHandler).Methods(http.MethodGet)
	vendor.HandleFunc("/orders", a.listOrdersHandler).Methods(http.MethodGet)
	vendor.HandleFunc("/orders/{orderId}", a.getOrderHandler).Methods(http.MethodGet)
	vendor.HandleFunc("/orders/{orderId}/status", a.updateStatusHandler).Methods(http.MethodPatch)
	vendor.HandleFunc("/orders/{orderId}/message", a.sendMessageHandler).Methods(http.MethodPost)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	return r
}

func (a *api) traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := a.tracer.Start(r.Context(), r.Method+" "+r.URL.Path)
		defer span.End()
		a.log.Info("request", zap.String("method", r.Method), zap.String("path", r.URL.Path))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// envelope is the uniform response body: {success, data} on the happy
// path, {success, error|errors} on failure.
type envelope struct {
	Success bool               `json:"success"`
	Data    any                `json:"data,omitempty"`
	Error   string             `json:"error,omitempty"`
	Errors  []order.FieldError `json:"errors,omitempty"`
}

func (a *api) respond(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		a.log.Error("encode response", zap.Error(err))
	}
}

func (a *api) respondData(w http.ResponseWriter, status int, data any) {
	a.respond(w, status, envelope{Success: true, Data: data})
}

func (a *api) respondError(w http.ResponseWriter, status int, msg string) {
	a.respond(w, status, envelope{Success: false, Error: msg})
}

func (a *api) respondFieldErrors(w http.ResponseWriter, fields []order.FieldError) {
	a.respond(w, http.StatusBadRequest, envelope{Success: false, Errors: fields})
}
