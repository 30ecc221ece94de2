package dto

import (
	"bytes"
	"encoding/json"
)

// NumericText carries a form value that may arrive as a JSON string or
// number. It keeps the raw text so coercion happens in the domain layer.
// null, booleans, arrays and objects read as empty text.
type NumericText string

func (n *NumericText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		*n = ""
		return nil
	}

	switch c := b[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumericText(s)
	case c == '-' || (c >= '0' && c <= '9'):
		var num json.Number
		if err := json.Unmarshal(b, &num); err != nil {
			return err
		}
		*n = NumericText(num.String())
	default:
		*n = ""
	}
	return nil
}

type NotificationResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}
