package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/Semzy1/abbas-delight-bakry/pkg/order"
)

type updateStatusRequest struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type messageRequest struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// listOrdersHandler lists all orders, newest first.
// @Summary List orders
// @Produce json
// @Success 200 {object} envelope
// @Router /orders [get]
func (a *api) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := a.svc.ListOrders(r.Context())
	if err != nil {
		a.serverError(w, r, err)
		return
	}
	a.respondData(w, http.StatusOK, orders)
}

// getOrderHandler fetches one order.
// @Summary Get order
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} envelope
// @Failure 404 {object} envelope
// @Router /orders/{orderId} [get]
func (a *api) getOrderHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["orderId"]
	o, err := a.svc.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			a.respondError(w, http.StatusNotFound, "Order not found")
			return
		}
		a.serverError(w, r, err)
		return
	}
	a.respondData(w, http.StatusOK, o)
}

// createOrderHandler validates and stores a new order, returning its id.
// @Summary Create order
// @Accept json
// @Produce json
// @Param order body order.CreateOrderInput true "Order"
// @Success 201 {object} envelope
// @Failure 400 {object} envelope
// @Router /orders [post]
func (a *api) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	var in order.CreateOrderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		a.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	o, err := a.svc.CreateOrder(r.Context(), in)
	if err != nil {
		var ve *order.ValidationError
		if errors.As(err, &ve) {
			a.log.Info("order rejected", zap.String("reason", ve.Error()))
			a.respondFieldErrors(w, ve.Fields)
			return
		}
		a.serverError(w, r, err)
		return
	}
	a.log.Info("order created", zap.String("orderId", o.ID), zap.Float64("total", o.Total))
	a.respondData(w, http.StatusCreated, map[string]string{"orderId": o.ID})
}

// updateStatusHandler moves an order to a new status, optionally
// appending a status_update message.
// @Summary Update order status
// @Accept json
// @Produce json
// @Param orderId path string true "Order ID"
// @Param body body updateStatusRequest true "New status and optional message"
// @Success 200 {object} envelope
// @Failure 400 {object} envelope
// @Failure 404 {object} envelope
// @Router /orders/{orderId}/status [patch]
func (a *api) updateStatusHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["orderId"]
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	o, err := a.svc.UpdateStatus(r.Context(), id, req.Status, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrNotFound):
			a.respondError(w, http.StatusNotFound, "Order not found")
		case errors.Is(err, order.ErrInvalidStatus):
			a.respondError(w, http.StatusBadRequest, "Invalid status value")
		default:
			a.serverError(w, r, err)
		}
		return
	}
	a.log.Info("status updated", zap.String("orderId", id), zap.String("status", req.Status))
	a.respondData(w, http.StatusOK, o)
}

// appendMessageHandler adds a manual message to an order's log.
// @Summary Add message to order
// @Accept json
// @Produce json
// @Param orderId path string true "Order ID"
// @Param body body messageRequest true "Message"
// @Success 200 {object} envelope
// @Failure 400 {object} envelope
// @Failure 404 {object} envelope
// @Router /orders/{orderId}/messages [post]
func (a *api) appendMessageHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["orderId"]
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	m, err := a.svc.AppendMessage(r.Context(), id, req.Type, req.Content)
	if err != nil {
		a.messageError(w, r, err)
		return
	}
	a.respondData(w, http.StatusOK, m)
}

// statsOverviewHandler returns total order count and the status histogram.
// @Summary Order stats overview
// @Produce json
// @Success 200 {object} envelope
// @Router /orders/stats/overview [get]
func (a *api) statsOverviewHandler(w http.ResponseWriter, r *http.Request) {
	ov, err := a.svc.StatsOverview(r.Context())
	if err != nil {
		a.serverError(w, r, err)
		return
	}
	a.respondData(w, http.StatusOK, ov)
}

// statsSummaryHandler returns the customer-facing counters, where
// pending means new or preparing.
// @Summary Customer order summary
// @Produce json
// @Success 200 {object} envelope
// @Router /orders/stats/summary [get]
func (a *api) statsSummaryHandler(w http.ResponseWriter, r *http.Request) {
	sm, err := a.svc.CustomerSummary(r.Context())
	if err != nil {
		a.serverError(w, r, err)
		return
	}
	a.respondData(w, http.StatusOK, sm)
}

// messageError maps message-path errors onto the original single-error
// envelope.
func (a *api) messageError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *order.ValidationError
	switch {
	case errors.Is(err, order.ErrNotFound):
		a.respondError(w, http.StatusNotFound, "Order not found")
	case errors.As(err, &ve):
		a.respondError(w, http.StatusBadRequest, "Message type and content are required")
	default:
		a.serverError(w, r, err)
	}
}

func (a *api) serverError(w http.ResponseWriter, r *http.Request, err error) {
	a.log.Error("internal error", zap.String("path", r.URL.Path), zap.Error(err))
	a.respondError(w, http.StatusInternalServerError, "internal error")
}
