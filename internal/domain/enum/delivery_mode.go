package enum

import (
	"encoding/json"
	"fmt"
)

// DeliveryMode represents how a composed invoice is delivered to the user
type DeliveryMode int

const (
	DeliveryModePrint   DeliveryMode = 0
	DeliveryModeBrowser DeliveryMode = 1
	DeliveryModeFile    DeliveryMode = 2
)

func (m DeliveryMode) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return [...]string{"print", "browser", "file"}[m]
}

// Valid reports whether the mode is one of the three known delivery modes
func (m DeliveryMode) Valid() bool {
	return m >= DeliveryModePrint && m <= DeliveryModeFile
}

// ParseDeliveryMode converts a request string into a DeliveryMode
func ParseDeliveryMode(s string) (DeliveryMode, error) {
	switch s {
	case "print":
		return DeliveryModePrint, nil
	case "browser":
		return DeliveryModeBrowser, nil
	case "file":
		return DeliveryModeFile, nil
	}
	return DeliveryModePrint, fmt.Errorf("unknown delivery mode %q", s)
}

func (m DeliveryMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *DeliveryMode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	mode, err := ParseDeliveryMode(str)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}
