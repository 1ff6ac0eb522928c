package e4

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Result is the normalized outcome of one gateway exchange.
//
// A declined transaction is a Result with Success false, not an error.
type Result struct {
	Params          map[string]any
	Action          Action
	TransactionType TransactionType
	Message         string
	Authorization   string
	CVVResult       string
	Success         bool
	Test            bool
}

func parseResponse(body []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var params map[string]any
	if err := dec.Decode(&params); err != nil {
		return nil, &ProtocolError{Body: body, Err: err}
	}
	if params == nil {
		return nil, &ProtocolError{Body: body, Err: errors.New("response is not a JSON object")}
	}

	return params, nil
}

func successFrom(params map[string]any) bool {
	approved, ok := params["transaction_approved"].(json.Number)
	if !ok {
		return false
	}
	n, err := approved.Int64()
	return err == nil && n == 1
}

func messageFrom(params map[string]any) string {
	msg, _ := params["bank_message"].(string)
	return msg
}

func cvvResultFrom(params map[string]any) string {
	return stringField(params, "cvv2")
}

// stringField returns a string or numeric response field as text, or "" when absent.
func stringField(params map[string]any, key string) string {
	switch v := params[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
