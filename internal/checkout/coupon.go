package checkout

import "context"

// CashCouponID is the well-known identifier of the 100%-off coupon
// that implements the pay-in-cash-at-pickup flow.
const CashCouponID = "cash-payment"

const cashCouponPercentOff = 100

// EnsureCashCoupon idempotently provisions the cash-payment coupon on
// the provider side and returns its identifier. It is safe to call
// concurrently: the provider's identifier uniqueness arbitrates the
// first-creation race, and the loser falls back to one retry fetch.
func (b *Builder) EnsureCashCoupon(ctx context.Context) (string, error) {
	if coupon, err := b.provider.GetCoupon(ctx, CashCouponID); err == nil && cashCouponUsable(coupon) {
		return coupon.ID, nil
	}

	if _, err := b.provider.CreateCoupon(ctx, CashCouponID, cashCouponPercentOff); err != nil {
		// A concurrent request may have created the coupon between
		// our fetch and create; re-fetch once before giving up.
		coupon, fetchErr := b.provider.GetCoupon(ctx, CashCouponID)
		if fetchErr == nil && cashCouponUsable(coupon) {
			return coupon.ID, nil
		}
		b.log.Error("cash coupon provisioning failed", "coupon_id", CashCouponID, "error", err)
		return "", &ProviderError{Message: "Payment session could not be created", Cause: err}
	}

	return CashCouponID, nil
}

// cashCouponUsable reports whether an existing coupon has exactly the
// required shape. A malformed coupon is never repaired or deleted; it
// makes the cash path fail until fixed on the provider side.
func cashCouponUsable(c *Coupon) bool {
	return c != nil && c.ID == CashCouponID && c.PercentOff == cashCouponPercentOff
}
