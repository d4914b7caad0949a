package service

// SchemaError reports a field that failed shape validation: a value
// outside its closed set, a negative quantity, a non-positive price,
// or a malformed email address. The message is user-facing and is
// surfaced verbatim by the HTTP layer.
type SchemaError struct {
	Field   string
	Message string
}

func (e *SchemaError) Error() string {
	return e.Message
}

// RuleError reports a structurally valid order that violates a
// business rule. The message is user-facing.
type RuleError struct {
	Message string
}

func (e *RuleError) Error() string {
	return e.Message
}

// Business rule violations.
var (
	ErrNoItems            = &RuleError{Message: "Order must contain at least one item"}
	ErrCashRequiresPickup = &RuleError{Message: "Cash payment is only available for pickup orders"}
)
