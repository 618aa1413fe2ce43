package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// OrderStatus represents where an order sits in its lifecycle
type OrderStatus int

const (
	OrderStatusCreated OrderStatus = 0
	OrderStatusBilled  OrderStatus = 1
	OrderStatusClosed  OrderStatus = 2
)

func (s OrderStatus) String() string {
	names := [...]string{"CREATED", "BILLED", "CLOSED"}
	if int(s) < 0 || int(s) >= len(names) {
		return "CREATED"
	}
	return names[s]
}

func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = OrderStatus(i)
		return nil
	}
	switch str {
	case "CREATED":
		*s = OrderStatusCreated
	case "BILLED":
		*s = OrderStatusBilled
	case "CLOSED":
		*s = OrderStatusClosed
	}
	return nil
}

func (s OrderStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *OrderStatus) Scan(value interface{}) error {
	if value == nil {
		*s = OrderStatusCreated
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = OrderStatus(v)
	case int:
		*s = OrderStatus(v)
	}
	return nil
}
