package checkout

import "context"

// LineItem is one priced, quantity-bearing entry of a checkout
// session. UnitAmount is in minor currency units.
type LineItem struct {
	Name       string
	UnitAmount int64
	Quantity   int64
}

// ShippingRate describes a delivery option with a fixed fee in minor
// currency units. A non-empty AllowedCountries list means the session
// must collect a shippable address restricted to those countries.
type ShippingRate struct {
	DisplayName      string
	Amount           int64
	AllowedCountries []string
}

// SessionRequest carries everything needed to create a hosted checkout
// session.
type SessionRequest struct {
	Currency      string
	LineItems     []LineItem
	Shipping      ShippingRate
	CouponID      string
	CustomerEmail string
	Metadata      map[string]string
	SuccessURL    string
	CancelURL     string
}

// Session is a created checkout session. URL is the hosted page the
// buyer is redirected to.
type Session struct {
	ID  string
	URL string
}

// Coupon is a named, reusable percent-off discount on the provider
// side.
type Coupon struct {
	ID         string
	PercentOff float64
}

// Provider is the payment provider capability the builder depends on.
// Implementations perform network calls; tests substitute an in-memory
// fake.
type Provider interface {
	CreateSession(ctx context.Context, req *SessionRequest) (*Session, error)
	GetCoupon(ctx context.Context, id string) (*Coupon, error)
	CreateCoupon(ctx context.Context, id string, percentOff float64) (*Coupon, error)
}
