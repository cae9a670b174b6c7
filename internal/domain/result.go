package domain

import "encoding/json"

// Result is the envelope every service operation returns.
// On success Data is set; on failure Error and Kind describe the business
// condition. Storage failures are never carried in a Result.
type Result[T any] struct {
	Success bool      `json:"success"`
	Data    T         `json:"data"`
	Error   string    `json:"error"`
	Kind    ErrorKind `json:"code"`
}

// OK wraps data in a success envelope.
func OK[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

// Fail builds a failure envelope from a business error.
func Fail[T any](err *Error) Result[T] {
	return Result[T]{Error: err.Message, Kind: err.Kind}
}

// FromError converts err into a failure envelope when it is a business
// Error. Any other error (storage failures, bugs) is returned unchanged.
func FromError[T any](err error) (Result[T], error) {
	if e, ok := AsError(err); ok {
		return Fail[T](e), nil
	}
	return Result[T]{}, err
}

// Err returns the business error carried by a failure envelope, or nil.
func (r Result[T]) Err() error {
	if r.Success {
		return nil
	}
	return NewError(r.Kind, r.Error)
}

// MarshalJSON omits data on failure and error/code on success.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.Success {
		return json.Marshal(struct {
			Success bool `json:"success"`
			Data    T    `json:"data"`
		}{true, r.Data})
	}
	return json.Marshal(struct {
		Success bool      `json:"success"`
		Error   string    `json:"error"`
		Kind    ErrorKind `json:"code"`
	}{false, r.Error, r.Kind})
}
