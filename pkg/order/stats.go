package order

import (
	"context"
	"time"
)

// Overview aggregates total order count and a per-status histogram over
// the five known statuses.
type Overview struct {
	TotalOrders  int            `json:"totalOrders"`
	StatusCounts map[Status]int `json:"statusCounts"`
}

// Dashboard carries the vendor dashboard counters. Pending here means
// "not completed", which also counts ready and cancelled orders; the
// customer-facing Summary uses a narrower definition.
type Dashboard struct {
	TotalOrders   int `json:"totalOrders"`
	TodayOrders   int `json:"todayOrders"`
	PendingOrders int `json:"pendingOrders"`
}

// Summary carries the customer-facing counters, where pending means
// "new or preparing".
type Summary struct {
	TotalOrders   int `json:"totalOrders"`
	TodayOrders   int `json:"todayOrders"`
	PendingOrders int `json:"pendingOrders"`
}

// Analytics carries the vendor analytics counters.
type Analytics struct {
	TotalOrders     int `json:"totalOrders"`
	CompletedOrders int `json:"completedOrders"`
}

// StatsOverview scans all orders and counts them per status. Statuses
// outside the known set are excluded from the histogram.
func (s *Service) StatsOverview(ctx context.Context) (Overview, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return Overview{}, err
	}
	ov := Overview{TotalOrders: len(orders), StatusCounts: make(map[Status]int, len(Statuses))}
	for _, st := range Statuses {
		ov.StatusCounts[st] = 0
	}
	for _, o := range orders {
		if _, ok := ov.StatusCounts[o.Status]; ok {
			ov.StatusCounts[o.Status]++
		}
	}
	return ov, nil
}

// VendorDashboard derives the vendor counters: orders created today
// (server-local calendar date) and orders not yet completed.
func (s *Service) VendorDashboard(ctx context.Context) (Dashboard, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	d := Dashboard{TotalOrders: len(orders)}
	today := time.Now().Format("2006-01-02")
	for _, o := range orders {
		if createdOn(o) == today {
			d.TodayOrders++
		}
		if o.Status != StatusCompleted {
			d.PendingOrders++
		}
	}
	return d, nil
}

// CustomerSummary derives the customer-facing counters, counting new and
// preparing orders as pending.
func (s *Service) CustomerSummary(ctx context.Context) (Summary, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	sm := Summary{TotalOrders: len(orders)}
	today := time.Now().Format("2006-01-02")
	for _, o := range orders {
		if createdOn(o) == today {
			sm.TodayOrders++
		}
		if o.Status == StatusNew || o.Status == StatusPreparing {
			sm.PendingOrders++
		}
	}
	return sm, nil
}

// Analytics counts total and completed orders.
func (s *Service) Analytics(ctx context.Context) (Analytics, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return Analytics{}, err
	}
	a := Analytics{TotalOrders: len(orders)}
	for _, o := range orders {
		if o.Status == StatusCompleted {
			a.CompletedOrders++
		}
	}
	return a, nil
}

// createdOn yields the server-local calendar date of an order's creation
// timestamp, or "" if the timestamp does not parse.
func createdOn(o Order) string {
	t, err := time.Parse(time.RFC3339, o.Timestamp)
	if err != nil {
		return ""
	}
	return t.Local().Format("2006-01-02")
}
