package models

import "github.com/shopspring/decimal"

// DeliveryMethod is how the buyer receives the order.
type DeliveryMethod string

const (
	DeliveryShipping    DeliveryMethod = "shipping"
	DeliveryPickupSiteA DeliveryMethod = "pickup-site-A"
	DeliveryPickupSiteB DeliveryMethod = "pickup-site-B"
	DeliveryPickupSiteC DeliveryMethod = "pickup-site-C"
)

// DeliveryMethods lists every accepted delivery method.
var DeliveryMethods = []DeliveryMethod{
	DeliveryShipping,
	DeliveryPickupSiteA,
	DeliveryPickupSiteB,
	DeliveryPickupSiteC,
}

// Valid reports whether the value belongs to the closed delivery set.
func (d DeliveryMethod) Valid() bool {
	switch d {
	case DeliveryShipping, DeliveryPickupSiteA, DeliveryPickupSiteB, DeliveryPickupSiteC:
		return true
	}
	return false
}

// PaymentMethod is how the buyer pays.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentOnline PaymentMethod = "online"
)

// Valid reports whether the value belongs to the closed payment set.
func (p PaymentMethod) Valid() bool {
	return p == PaymentCash || p == PaymentOnline
}

// Default unit prices in major currency units.
var (
	DefaultPCBOnlyPrice = decimal.NewFromInt(7)
	DefaultFullKitPrice = decimal.NewFromInt(9)
)

// OrderCandidate is the loosely-typed result of decoding a form
// submission. Numeric fields hold best-effort parses; nothing in a
// candidate has been validated yet.
type OrderCandidate struct {
	PCBOnlyQuantity int
	FullKitQuantity int
	PCBOnlyPrice    decimal.Decimal
	FullKitPrice    decimal.Decimal
	DeliveryMethod  string
	PaymentMethod   string
	Email           string
	Name            string
	Notes           string
}

// Order is a validated preorder. It is constructed once per request by
// the validator and never mutated afterwards.
type Order struct {
	PCBOnlyQuantity int
	FullKitQuantity int
	PCBOnlyPrice    decimal.Decimal
	FullKitPrice    decimal.Decimal
	DeliveryMethod  DeliveryMethod
	PaymentMethod   PaymentMethod
	Email           string
	Name            string
	Notes           string
}
