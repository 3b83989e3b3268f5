package models

import (
	"bytes"
	"strconv"
	"time"
)

type CustomerInfo struct {
	Name        string      `json:"name"`
	Phone       string      `json:"phone"`
	ServiceType ServiceType `json:"service_type"`
	TableNumber string      `json:"table_number,omitempty"` // required for Dine-in only
}

type Order struct {
	ID            string       `json:"id"`
	CustomerName  string       `json:"customer_name"` // kept in sync with CustomerInfo.Name
	CustomerInfo  CustomerInfo `json:"customer_info"`
	Items         []CartItem   `json:"items"` // frozen snapshot taken at creation
	Status        OrderStatus  `json:"status"`
	TotalAmount   int          `json:"total_amount"`
	Timestamp     Millis       `json:"timestamp"`
	EstimatedTime int          `json:"estimated_time"` // minutes, frozen at creation
}

// Millis is a time.Time persisted as unix milliseconds, the representation the
// order list has always been stored in. Decoding also accepts RFC3339 strings.
type Millis struct {
	time.Time
}

func NewMillis(t time.Time) Millis {
	return Millis{Time: t}
}

func (m Millis) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(m.UnixMilli(), 10)), nil
}

func (m *Millis) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(data, `"`))
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		m.Time = time.UnixMilli(n)
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	m.Time = t
	return nil
}
