package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentMode represents how a bill is settled
type PaymentMode int

const (
	PaymentModeCash   PaymentMode = 0
	PaymentModeCard   PaymentMode = 1
	PaymentModeOnline PaymentMode = 2
)

func (m PaymentMode) String() string {
	names := [...]string{"CASH", "CARD", "ONLINE"}
	if int(m) < 0 || int(m) >= len(names) {
		return "CASH"
	}
	return names[m]
}

func (m PaymentMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMode(i)
		return nil
	}
	switch str {
	case "CASH":
		*m = PaymentModeCash
	case "CARD":
		*m = PaymentModeCard
	case "ONLINE":
		*m = PaymentModeOnline
	}
	return nil
}

func (m PaymentMode) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMode) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentModeCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PaymentMode(v)
	case int:
		*m = PaymentMode(v)
	}
	return nil
}
