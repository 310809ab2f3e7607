package dto

import "encoding/json"

// FlexString decodes a JSON value that the upstream platform sends
// inconsistently as either a string or a number (order ids, amounts).
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// OrderPayload is the decoded body of an inbound order webhook. Only the
// fields the handler consumes are mapped; everything else is dropped at
// decode time.
type OrderPayload struct {
	ID         FlexString      `json:"id"`
	Email      string          `json:"email"`
	TotalPrice FlexString      `json:"total_price"`
	LineItems  json.RawMessage `json:"line_items"`
	CreatedAt  string          `json:"created_at"`
}

type LineItem struct {
	Title string `json:"title"`
}

// HasLineItems reports whether the payload carried a non-null line_items
// value of any shape.
func (p OrderPayload) HasLineItems() bool {
	return len(p.LineItems) > 0 && string(p.LineItems) != "null"
}

// ParseLineItems returns the decoded line items and whether line_items was
// actually a sequence. A present but non-sequence value yields (nil, false).
func (p OrderPayload) ParseLineItems() ([]LineItem, bool) {
	if !p.HasLineItems() {
		return nil, false
	}
	var items []LineItem
	if err := json.Unmarshal(p.LineItems, &items); err != nil {
		return nil, false
	}
	return items, true
}
