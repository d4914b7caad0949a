package payment

import (
	"context"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/coupon"

	"github.com/hwcrafts/pcb-preorder/internal/checkout"
)

// StripeProvider implements checkout.Provider against the Stripe
// Checkout Sessions and Coupons APIs.
type StripeProvider struct{}

// NewStripeProvider configures the Stripe SDK with the account secret
// key. The key comes from configuration at startup.
func NewStripeProvider(secretKey string) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{}
}

// CreateSession creates a hosted checkout session.
func (p *StripeProvider) CreateSession(ctx context.Context, req *checkout.SessionRequest) (*checkout.Session, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
	params.Context = ctx

	for _, item := range req.LineItems {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			Quantity: stripe.Int64(item.Quantity),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(req.Currency),
				UnitAmount: stripe.Int64(item.UnitAmount),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
			},
		})
	}

	params.ShippingOptions = []*stripe.CheckoutSessionShippingOptionParams{
		{
			ShippingRateData: &stripe.CheckoutSessionShippingOptionShippingRateDataParams{
				DisplayName: stripe.String(req.Shipping.DisplayName),
				Type:        stripe.String("fixed_amount"),
				FixedAmount: &stripe.CheckoutSessionShippingOptionShippingRateDataFixedAmountParams{
					Amount:   stripe.Int64(req.Shipping.Amount),
					Currency: stripe.String(req.Currency),
				},
			},
		},
	}

	if len(req.Shipping.AllowedCountries) > 0 {
		params.ShippingAddressCollection = &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(req.Shipping.AllowedCountries),
		}
	}

	if req.CouponID != "" {
		params.Discounts = []*stripe.CheckoutSessionDiscountParams{
			{Coupon: stripe.String(req.CouponID)},
		}
	}

	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}

	// Metadata goes on both the session and the payment intent so
	// fulfillment can recover the order context from either object.
	for key, value := range req.Metadata {
		params.AddMetadata(key, value)
	}
	params.PaymentIntentData = &stripe.CheckoutSessionPaymentIntentDataParams{
		Metadata: req.Metadata,
	}

	s, err := session.New(params)
	if err != nil {
		return nil, err
	}

	return &checkout.Session{ID: s.ID, URL: s.URL}, nil
}

// GetCoupon fetches a coupon by identifier.
func (p *StripeProvider) GetCoupon(ctx context.Context, id string) (*checkout.Coupon, error) {
	params := &stripe.CouponParams{}
	params.Context = ctx

	c, err := coupon.Get(id, params)
	if err != nil {
		return nil, err
	}

	return &checkout.Coupon{ID: c.ID, PercentOff: c.PercentOff}, nil
}

// CreateCoupon creates a percent-off coupon with a fixed identifier
// and indefinite duration.
func (p *StripeProvider) CreateCoupon(ctx context.Context, id string, percentOff float64) (*checkout.Coupon, error) {
	params := &stripe.CouponParams{
		ID:         stripe.String(id),
		Name:       stripe.String("Cash payment"),
		PercentOff: stripe.Float64(percentOff),
		Duration:   stripe.String(string(stripe.CouponDurationForever)),
	}
	params.Context = ctx

	c, err := coupon.New(params)
	if err != nil {
		return nil, err
	}

	return &checkout.Coupon{ID: c.ID, PercentOff: c.PercentOff}, nil
}
