package checkout

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hwcrafts/pcb-preorder/internal/models"
)

const (
	pcbOnlyItemName = "PCB only"
	fullKitItemName = "Full kit"
)

// Builder maps validated orders to provider checkout sessions.
type Builder struct {
	provider Provider
	origin   string
	currency string
	log      *slog.Logger
}

// NewBuilder creates a session builder. Success and cancel redirect
// targets are derived from origin.
func NewBuilder(provider Provider, origin, currency string, log *slog.Logger) *Builder {
	return &Builder{
		provider: provider,
		origin:   origin,
		currency: currency,
		log:      log,
	}
}

// Build creates a checkout session for the order and returns its
// hosted URL.
func (b *Builder) Build(ctx context.Context, order *models.Order) (string, error) {
	items := lineItems(order)
	if len(items) == 0 {
		// The validator guarantees at least one unit; an empty slice
		// here is a builder defect, not user input.
		return "", &InvariantError{Message: "order produced no line items"}
	}

	rate, ok := shippingRates[order.DeliveryMethod]
	if !ok {
		return "", &InvariantError{Message: "no shipping rate for delivery method " + string(order.DeliveryMethod)}
	}

	var couponID string
	if order.PaymentMethod == models.PaymentCash {
		id, err := b.EnsureCashCoupon(ctx)
		if err != nil {
			return "", err
		}
		couponID = id
	}

	orderRef := uuid.New().String()
	metadata := map[string]string{
		"orderRef":       orderRef,
		"name":           order.Name,
		"notes":          order.Notes,
		"deliveryMethod": string(order.DeliveryMethod),
		"paymentMethod":  string(order.PaymentMethod),
	}

	req := &SessionRequest{
		Currency:      b.currency,
		LineItems:     items,
		Shipping:      rate,
		CouponID:      couponID,
		CustomerEmail: order.Email,
		Metadata:      metadata,
		SuccessURL:    b.origin + "/success.html",
		CancelURL:     b.origin + "/failure.html",
	}

	session, err := b.provider.CreateSession(ctx, req)
	if err != nil {
		b.log.Error("checkout session creation failed", "order_ref", orderRef, "error", err)
		return "", &ProviderError{Message: "Payment session could not be created", Cause: err}
	}
	if session.URL == "" {
		b.log.Error("provider returned session without URL", "order_ref", orderRef, "session_id", session.ID)
		return "", &ProviderError{Message: "Payment session could not be created"}
	}

	b.log.Info("checkout session created",
		"order_ref", orderRef,
		"session_id", session.ID,
		"delivery_method", order.DeliveryMethod,
		"payment_method", order.PaymentMethod,
	)

	return session.URL, nil
}

// lineItems assembles the up-to-two session line items, dropping
// zero-quantity entries.
func lineItems(order *models.Order) []LineItem {
	items := make([]LineItem, 0, 2)
	if order.PCBOnlyQuantity > 0 {
		items = append(items, LineItem{
			Name:       pcbOnlyItemName,
			UnitAmount: minorUnits(order.PCBOnlyPrice),
			Quantity:   int64(order.PCBOnlyQuantity),
		})
	}
	if order.FullKitQuantity > 0 {
		items = append(items, LineItem{
			Name:       fullKitItemName,
			UnitAmount: minorUnits(order.FullKitPrice),
			Quantity:   int64(order.FullKitQuantity),
		})
	}
	return items
}

// minorUnits converts a major-unit amount to integer minor units,
// rounding halves up.
func minorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
