package rebill

import (
	"errors"
	"fmt"
)

// Record names the kind of record a FieldError refers to
type Record string

const (
	RecordCustomer Record = "customer"
	RecordPayment  Record = "payment"
)

// ErrMissingField matches any FieldError via errors.Is
var ErrMissingField = errors.New("missing required field")

// FieldError reports a required field absent from a record. It is always
// raised before any remote call.
type FieldError struct {
	Record Record
	Field  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s is a required field", e.Record, e.Field)
}

func (e *FieldError) Is(target error) bool {
	return target == ErrMissingField
}
