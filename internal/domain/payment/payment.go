// Package payment implements the bill-payment side of the transfers
// screen: a directory of billers fetched with a simulated delay, and a
// local payment history.
package payment

import (
	"context"
	"errors"
	"time"
)

type Category string

const (
	Utility  Category = "utility"
	Mobile   Category = "mobile"
	Internet Category = "internet"
)

var ErrServiceNotFound = errors.New("service not found")

type Service struct {
	ID        string   `json:"id"`
	Category  Category `json:"category"`
	Title     string   `json:"title"`
	AmountDue float64  `json:"amountDue"`
}

type Record struct {
	ID        int64   `json:"id"`
	ServiceID string  `json:"serviceId"`
	Title     string  `json:"title"`
	Amount    float64 `json:"amount"`
	Date      string  `json:"date"`
}

type Template struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Amount  float64 `json:"amount"`
	Account string  `json:"account"`
}

type AutoPayment struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Interval string  `json:"interval"`
	NextDate string  `json:"nextDate"`
	Amount   float64 `json:"amount"`
}

type ScheduledBill struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	DueDate string  `json:"dueDate"`
	Amount  float64 `json:"amount"`
}

// Center holds the pending biller list and payment history for one client.
type Center struct {
	fetchDelay time.Duration

	loaded    bool
	services  []Service
	history   []Record
	templates []Template
	auto      []AutoPayment
	scheduled []ScheduledBill
}

// NewCenter creates a payment center; delay simulates the network fetch
// and is injectable so tests run instantly.
func NewCenter(delay time.Duration) *Center {
	return &Center{fetchDelay: delay}
}

// FetchServices loads the biller directory after the simulated delay.
// Cancelling the context (screen dismissed mid-flight) abandons the load
// without mutating any state.
func (c *Center) FetchServices(ctx context.Context) error {
	if c.fetchDelay > 0 {
		timer := time.NewTimer(c.fetchDelay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	c.services = []Service{
		{ID: "gas", Category: Utility, Title: "Gas Payment", AmountDue: 50.2},
		{ID: "water", Category: Utility, Title: "Water Bill", AmountDue: 22.75},
		{ID: "electricity", Category: Utility, Title: "Electricity", AmountDue: 73.0},

		{ID: "vodafone", Category: Mobile, Title: "Vodafone Plan", AmountDue: 15.0},
		{ID: "lifecell", Category: Mobile, Title: "Lifecell Monthly", AmountDue: 10.0},
		{ID: "kyivstar", Category: Mobile, Title: "Kyivstar Prepaid", AmountDue: 7.5},

		{ID: "home_net", Category: Internet, Title: "Home Net ISP", AmountDue: 20.0},
		{ID: "triolan", Category: Internet, Title: "Triolan Bill", AmountDue: 12.5},
	}

	c.templates = []Template{
		{ID: "pt1", Title: "Monthly Gas Template", Amount: 50, Account: "Main Account"},
		{ID: "pt2", Title: "Vodafone Plan Template", Amount: 15, Account: "Savings"},
	}

	c.auto = []AutoPayment{
		{ID: "ap1", Title: "Water Auto Payment", Interval: "Monthly", NextDate: "May 15", Amount: 22.75},
		{ID: "ap2", Title: "Kyivstar Auto Payment", Interval: "Monthly", NextDate: "May 20", Amount: 7.5},
	}

	c.scheduled = []ScheduledBill{
		{ID: "sb1", Title: "Electricity (Scheduled)", DueDate: "May 25", Amount: 73.0},
		{ID: "sb2", Title: "Home Net ISP (Scheduled)", DueDate: "May 30", Amount: 20.0},
	}

	c.loaded = true

	return nil
}

func (c *Center) Loaded() bool { return c.loaded }

// Services returns the pending billers, optionally filtered by category.
func (c *Center) Services(category Category) []Service {
	if category == "" {
		return c.services
	}

	var out []Service

	for _, s := range c.services {
		if s.Category == category {
			out = append(out, s)
		}
	}

	return out
}

func (c *Center) History() []Record { return c.history }

func (c *Center) Templates() []Template { return c.templates }

func (c *Center) AutoPayments() []AutoPayment { return c.auto }

func (c *Center) ScheduledBills() []ScheduledBill { return c.scheduled }

// Pay settles one biller in full: the service leaves the pending list and
// exactly one record lands at the head of the history. There is no
// reversal and no partial payment.
func (c *Center) Pay(serviceID string, now time.Time) (Record, error) {
	idx := -1

	for i, s := range c.services {
		if s.ID == serviceID {
			idx = i
			break
		}
	}

	if idx == -1 {
		return Record{}, ErrServiceNotFound
	}

	s := c.services[idx]

	rec := Record{
		ID:        now.UnixMilli(),
		ServiceID: s.ID,
		Title:     s.Title,
		Amount:    s.AmountDue,
		Date:      now.Format("Jan 02 2006"),
	}

	c.services = append(c.services[:idx], c.services[idx+1:]...)
	c.history = append([]Record{rec}, c.history...)

	return rec, nil
}
