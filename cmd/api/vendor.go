package main

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// vendorDashboardHandler returns the vendor counters. Pending here means
// not completed, which also counts ready and cancelled orders.
// @Summary Vendor dashboard
// @Produce json
// @Success 200 {object} envelope
// @Router /vendor/dashboard [get]
func (a *api) vendorDashboardHandler(w http.ResponseWriter, r *http.Request) {
	d, err := a.svc.VendorDashboard(r.Context())
	if err != nil {
		a.serverError(w, r, err)
		return
	}
	a.respondData(w, http.StatusOK, d)
}

// vendorAnalyticsHandler returns total and completed order counts.
// @Summary Vendor analytics
// @Produce json
// @Success 200 {object} envelope
// @Router /vendor/analytics [get]
func (a *api) vendorAnalyticsHandler(w http.ResponseWriter, r *http.Request) {
	an, err := a.svc.Analytics(r.Context())
	if err != nil {
		a.serverError(w, r, err)
		return
	}
	a.respondData(w, http.StatusOK, an)
}

// sendMessageHandler appends a message and dispatches a customer
// notification, reporting whether one was actually sent.
// @Summary Send message to customer
// @Accept json
// @Produce json
// @Param orderId path string true "Order ID"
// @Param body body messageRequest true "Message"
// @Success 200 {object} envelope
// @Failure 400 {object} envelope
// @Failure 404 {object} envelope
// @Router /vendor/orders/{orderId}/message [post]
func (a *api) sendMessageHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["orderId"]
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	m, sent, err := a.svc.SendMessage(r.Context(), id, req.Type, req.Content)
	if err != nil {
		a.messageError(w, r, err)
		return
	}
	a.log.Info("vendor message sent", zap.String("orderId", id), zap.Bool("sent", sent))
	a.respondData(w, http.StatusOK, map[string]any{"messageId": m.ID, "sent": sent})
}
