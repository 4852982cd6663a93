package client

import "fmt"

// APIError - ответ API с кодом вне диапазона 2xx.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d %s: %s", e.StatusCode, e.Code, e.Message)
}

// DataIntegrityError - тело ответа не соответствует ожидаемой схеме.
type DataIntegrityError struct {
	Type   string
	Field  string
	Reason string
	Err    error
}

func (e *DataIntegrityError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("malformed %s: %s", e.Type, e.Reason)
	}
	return fmt.Sprintf("malformed %s: field %q %s", e.Type, e.Field, e.Reason)
}

func (e *DataIntegrityError) Unwrap() error {
	return e.Err
}

func integrityErr(typ, field, reason string, err error) *DataIntegrityError {
	return &DataIntegrityError{Type: typ, Field: field, Reason: reason, Err: err}
}
