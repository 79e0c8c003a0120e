package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Semzy1/abbas-delight-bakry/pkg/order"
	"github.com/Semzy1/abbas-delight-bakry/pkg/order/memory"
)

type nopNotifier struct{ enabled bool }

func (n nopNotifier) OrderConfirmation(order.Order)    {}
func (n nopNotifier) StatusUpdate(order.Order, string) {}
func (n nopNotifier) Enabled() bool                    { return n.enabled }

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	svc := order.NewService(memory.New(), nopNotifier{})
	a := newAPI(svc, zap.NewNop(), nil)
	srv := httptest.NewServer(a.routes())
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, map[string]json.RawMessage) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var envelope map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope
}

func orderPayload() map[string]any {
	return map[string]any{
		"customerName":    "Ada",
		"customerPhone":   "+2348000000000",
		"customerEmail":   "ada@example.com",
		"customerAddress": "12 Allen Avenue, Lagos",
		"deliveryTime":    "2026-09-02T10:00:00Z",
		"items": []map[string]any{
			{"id": "bread", "name": "Bread", "price": 100, "quantity": 2},
		},
	}
}

func createOrder(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	resp, env := doJSON(t, http.MethodPost, srv.URL+"/orders", orderPayload())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var data struct {
		OrderID string `json:"orderId"`
	}
	require.NoError(t, json.Unmarshal(env["data"], &data))
	require.NotEmpty(t, data.OrderID)
	return data.OrderID
}

func TestCreateAndFetchOrder(t *testing.T) {
	srv := newTestServer(t)
	id := createOrder(t, srv)

	resp, env := doJSON(t, http.MethodGet, srv.URL+"/orders/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var o order.Order
	require.NoError(t, json.Unmarshal(env["data"], &o))
	assert.Equal(t, id, o.ID)
	assert.Equal(t, order.StatusNew, o.Status)
	assert.Equal(t, 200.0, o.Total)
	assert.NotNil(t, o.Messages)
}

func TestCreateOrderMissingEmail(t *testing.T) {
	srv := newTestServer(t)
	payload := orderPayload()
	delete(payload, "customerEmail")

	resp, env := doJSON(t, http.MethodPost, srv.URL+"/orders", payload)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var fields []order.FieldError
	require.NoError(t, json.Unmarshal(env["errors"], &fields))
	require.Len(t, fields, 1)
	assert.Equal(t, "customerEmail", fields[0].Field)

	// Nothing stored.
	_, listEnv := doJSON(t, http.MethodGet, srv.URL+"/orders", nil)
	var orders []order.Order
	require.NoError(t, json.Unmarshal(listEnv["data"], &orders))
	assert.Empty(t, orders)
}

func TestListOrdersNewestFirst(t *testing.T) {
	srv := newTestServer(t)
	first := createOrder(t, srv)
	second := createOrder(t, srv)

	_, env := doJSON(t, http.MethodGet, srv.URL+"/orders", nil)
	var orders []order.Order
	require.NoError(t, json.Unmarshal(env["data"], &orders))
	require.Len(t, orders, 2)
	assert.Equal(t, second, orders[0].ID)
	assert.Equal(t, first, orders[1].ID)
}

func TestGetOrderNotFound(t *testing.T) {
	srv := newTestServer(t)
	for _, path := range []string{"/orders/AD0", "/vendor/orders/AD0"} {
		resp, env := doJSON(t, http.MethodGet, srv.URL+path, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, `"Order not found"`, string(env["error"]))
	}
}

func TestUpdateStatusEndpoints(t *testing.T) {
	for _, prefix := range []string{"/orders/", "/vendor/orders/"} {
		t.Run(prefix, func(t *testing.T) {
			srv := newTestServer(t)
			id := createOrder(t, srv)

			resp, env := doJSON(t, http.MethodPatch, srv.URL+prefix+id+"/status",
				map[string]string{"status": "preparing", "message": "Starting now"})
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var o order.Order
			require.NoError(t, json.Unmarshal(env["data"], &o))
			assert.Equal(t, order.StatusPreparing, o.Status)
			assert.NotEmpty(t, o.UpdatedAt)
			require.Len(t, o.Messages, 1)
			assert.Equal(t, "status_update", o.Messages[0].Type)
			assert.Equal(t, "Starting now", o.Messages[0].Content)
		})
	}
}

func TestUpdateStatusInvalidValue(t *testing.T) {
	srv := newTestServer(t)
	id := createOrder(t, srv)

	resp, env := doJSON(t, http.MethodPatch, srv.URL+"/orders/"+id+"/status",
		map[string]string{"status": "shipped"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, `"Invalid status value"`, string(env["error"]))
}

func TestUpdateStatusNotFound(t *testing.T) {
	srv := newTestServer(t)
	resp, _ := doJSON(t, http.MethodPatch, srv.URL+"/orders/AD0/status",
		map[string]string{"status": "ready"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Unknown order wins over an invalid status value.
	resp, env := doJSON(t, http.MethodPatch, srv.URL+"/orders/AD0/status",
		map[string]string{"status": "shipped"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, `"Order not found"`, string(env["error"]))
}

func TestAppendMessage(t *testing.T) {
	srv := newTestServer(t)
	id := createOrder(t, srv)

	resp, env := doJSON(t, http.MethodPost, srv.URL+"/orders/"+id+"/messages",
		map[string]string{"type": "whatsapp", "content": "On my way"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var m order.Message
	require.NoError(t, json.Unmarshal(env["data"], &m))
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "whatsapp", m.Type)
	assert.Equal(t, "On my way", m.Content)
}

func TestAppendMessageMissingFields(t *testing.T) {
	srv := newTestServer(t)
	id := createOrder(t, srv)

	resp, env := doJSON(t, http.MethodPost, srv.URL+"/orders/"+id+"/messages",
		map[string]string{"type": "email"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, `"Message type and content are required"`, string(env["error"]))
}

func TestStatsOverview(t *testing.T) {
	srv := newTestServer(t)
	var ids []string
	for i := 0; i < 3; i++ {
		ids = append(ids, createOrder(t, srv))
	}
	resp, _ := doJSON(t, http.MethodPatch, srv.URL+"/orders/"+ids[0]+"/status",
		map[string]string{"status": "completed"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, env := doJSON(t, http.MethodGet, srv.URL+"/orders/stats/overview", nil)
	var ov order.Overview
	require.NoError(t, json.Unmarshal(env["data"], &ov))
	assert.Equal(t, 3, ov.TotalOrders)
	assert.Equal(t, 2, ov.StatusCounts[order.StatusNew])
	assert.Equal(t, 1, ov.StatusCounts[order.StatusCompleted])
	assert.Equal(t, 0, ov.StatusCounts[order.StatusReady])
}

func TestVendorDashboardAndAnalytics(t *testing.T) {
	srv := newTestServer(t)
	var ids []string
	for i := 0; i < 3; i++ {
		ids = append(ids, createOrder(t, srv))
	}
	for _, st := range []string{"completed", "ready"} {
		resp, _ := doJSON(t, http.MethodPatch, srv.URL+"/orders/"+ids[0]+"/status",
			map[string]string{"status": st})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		ids = ids[1:]
	}

	_, env := doJSON(t, http.MethodGet, srv.URL+"/vendor/dashboard", nil)
	var d order.Dashboard
	require.NoError(t, json.Unmarshal(env["data"], &d))
	assert.Equal(t, 3, d.TotalOrders)
	assert.Equal(t, 3, d.TodayOrders)
	assert.Equal(t, 2, d.PendingOrders)

	_, env = doJSON(t, http.MethodGet, srv.URL+"/vendor/analytics", nil)
	var an order.Analytics
	require.NoError(t, json.Unmarshal(env["data"], &an))
	assert.Equal(t, 3, an.TotalOrders)
	assert.Equal(t, 1, an.CompletedOrders)
}

func TestCustomerSummary(t *testing.T) {
	srv := newTestServer(t)
	var ids []string
	for i := 0; i < 3; i++ {
		ids = append(ids, createOrder(t, srv))
	}
	resp, _ := doJSON(t, http.MethodPatch, srv.URL+"/orders/"+ids[0]+"/status",
		map[string]string{"status": "ready"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, env := doJSON(t, http.MethodGet, srv.URL+"/orders/stats/summary", nil)
	var sm order.Summary
	require.NoError(t, json.Unmarshal(env["data"], &sm))
	assert.Equal(t, 3, sm.TotalOrders)
	assert.Equal(t, 2, sm.PendingOrders, "ready is not pending on the customer side")
}

func TestVendorSendMessage(t *testing.T) {
	srv := newTestServer(t)
	id := createOrder(t, srv)

	resp, env := doJSON(t, http.MethodPost, srv.URL+"/vendor/orders/"+id+"/message",
		map[string]string{"type": "email", "content": "Your cake is ready"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		MessageID string `json:"messageId"`
		Sent      bool   `json:"sent"`
	}
	require.NoError(t, json.Unmarshal(env["data"], &data))
	assert.NotEmpty(t, data.MessageID)
	assert.False(t, data.Sent, "transport unconfigured in tests")

	// The message still landed on the order.
	_, env = doJSON(t, http.MethodGet, srv.URL+"/vendor/orders/"+id, nil)
	var o order.Order
	require.NoError(t, json.Unmarshal(env["data"], &o))
	require.Len(t, o.Messages, 1)
	assert.Equal(t, "email", o.Messages[0].Type)
}

func TestSuccessEnvelopeShape(t *testing.T) {
	srv := newTestServer(t)
	createOrder(t, srv)

	resp, env := doJSON(t, http.MethodGet, srv.URL+"/orders", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "true", string(env["success"]))
	assert.NotContains(t, env, "error")

	resp, env = doJSON(t, http.MethodGet, srv.URL+"/orders/AD0", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "false", string(env["success"]))
	assert.NotContains(t, env, "data")
}

func TestInvalidBody(t *testing.T) {
	srv := newTestServer(t)
	id := createOrder(t, srv)
	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/orders"},
		{http.MethodPatch, fmt.Sprintf("/orders/%s/status", id)},
		{http.MethodPost, fmt.Sprintf("/orders/%s/messages", id)},
	} {
		req, err := http.NewRequest(tc.method, srv.URL+tc.path, bytes.NewBufferString("{not json"))
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "%s %s", tc.method, tc.path)
	}
}
