package models

// Envelope is the uniform wrapper every API response is delivered in. Data is
// null whenever Success is false.
type Envelope[T any] struct {
	Success bool     `json:"success"`
	Data    *T       `json:"data"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// OK wraps a successful payload.
func OK[T any](data T, message string) Envelope[T] {
	return Envelope[T]{Success: true, Data: &data, Message: message}
}

// Fail builds a failure envelope; the payload stays null.
func Fail[T any](message string, errs ...string) Envelope[T] {
	return Envelope[T]{Success: false, Message: message, Errors: errs}
}

// Page is a bounded slice of results plus total-count metadata.
type Page[T any] struct {
	Data       []T `json:"data"`
	TotalCount int `json:"totalCount"`
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}
