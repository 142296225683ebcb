package kontoauszug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// jsonObjectWriter helps construct a JSON object with a specific field order.
// Its zero value is ready to use.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Append adds a new key-value pair to the JSON object. The value is marshaled
// to JSON using `json.Marshal`.
func (w *jsonObjectWriter) Append(key string, value interface{}) *jsonObjectWriter {
	if w.err != nil {
		return w
	}

	valBytes, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal value for key %q: %w", key, err)
		return w
	}

	w.WriteString(fmt.Sprintf("%q:", key))
	w.Write(valBytes)
	w.WriteString(",")
	return w
}

// Optional appends a key-value pair to the JSON object only if the provided
// value is not its type's zero value. This helps in omitting empty or default
// fields from the JSON output.
func (w *jsonObjectWriter) Optional(key string, value interface{}) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	// Check for zero values
	v := reflect.ValueOf(value)
	if !v.IsValid() || v.IsZero() {
		return w
	}
	return w.Append(key, value)
}

// MarshalJSON finalizes the JSON object construction, wraps the content in
// braces, and returns the complete JSON byte slice. It satisfies the
// `json.Marshaler` interface.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}

	content := bytes.TrimSuffix(w.Bytes(), []byte(","))
	final := make([]byte, 0, len(content)+2)
	final = append(final, '{')
	final = append(final, content...)
	final = append(final, '}')

	return final, nil
}

// MarshalJSON implements the json.Marshaler interface for TradeRecord. Field
// order in the interchange file is kept stable for readable diffs.
func (t TradeRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("action", t.Action)
	w.Append("isin", t.ISIN)
	w.Append("name", t.Name)
	w.Append("quantity", t.Quantity)
	w.Append("amount", t.Amount.value)
	w.Append("price", t.UnitPrice().value)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for TradeRecord.
// The derived price field is ignored: it is always recomputed from quantity
// and amount.
func (t *TradeRecord) UnmarshalJSON(data []byte) error {
	var temp struct {
		Action   Action          `json:"action"`
		ISIN     string          `json:"isin"`
		Name     string          `json:"name"`
		Quantity Quantity        `json:"quantity"`
		Amount   decimal.Decimal `json:"amount"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	t.Action = temp.Action
	t.ISIN = temp.ISIN
	t.Name = temp.Name
	t.Quantity = temp.Quantity
	t.Amount = M(temp.Amount, SettlementCurrency)
	return nil
}
