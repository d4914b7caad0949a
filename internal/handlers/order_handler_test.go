package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/hwcrafts/pcb-preorder/internal/checkout"
)

// stubProvider records the session request and serves coupons from
// memory; no network anywhere.
type stubProvider struct {
	sessionURL       string
	createSessionErr error
	coupons          map[string]*checkout.Coupon
	lastSession      *checkout.SessionRequest
}

func newStubProvider() *stubProvider {
	return &stubProvider{
		sessionURL: "https://pay.example.com/c/cs_test_42",
		coupons:    map[string]*checkout.Coupon{},
	}
}

func (s *stubProvider) CreateSession(ctx context.Context, req *checkout.SessionRequest) (*checkout.Session, error) {
	s.lastSession = req
	if s.createSessionErr != nil {
		return nil, s.createSessionErr
	}
	return &checkout.Session{ID: "cs_test_42", URL: s.sessionURL}, nil
}

func (s *stubProvider) GetCoupon(ctx context.Context, id string) (*checkout.Coupon, error) {
	c, ok := s.coupons[id]
	if !ok {
		return nil, errors.New("no such coupon")
	}
	return c, nil
}

func (s *stubProvider) CreateCoupon(ctx context.Context, id string, percentOff float64) (*checkout.Coupon, error) {
	c := &checkout.Coupon{ID: id, PercentOff: percentOff}
	s.coupons[id] = c
	return c, nil
}

func newOrderHandler(provider checkout.Provider) *OrderHandler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	builder := checkout.NewBuilder(provider, "https://shop.example.com", "eur", log)
	return NewOrderHandler(builder, log)
}

func submit(handler *OrderHandler, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/submit-order", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler.SubmitOrder(w, req)
	return w
}

func TestSubmitOrderOnlineShipping(t *testing.T) {
	provider := newStubProvider()
	handler := newOrderHandler(provider)

	w := submit(handler, url.Values{
		"pcbOnlyQuantity": {"3"},
		"fullKitQuantity": {"0"},
		"deliveryMethod":  {"shipping"},
		"paymentMethod":   {"online"},
		"email":           {"a@b.com"},
	})

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d (body %q)", w.Code, http.StatusSeeOther, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != provider.sessionURL {
		t.Errorf("location = %q, want %q", got, provider.sessionURL)
	}
	if got := w.Body.String(); got != provider.sessionURL {
		t.Errorf("body = %q, want %q", got, provider.sessionURL)
	}

	session := provider.lastSession
	if len(session.LineItems) != 1 {
		t.Fatalf("line items = %d, want 1", len(session.LineItems))
	}
	if session.LineItems[0].Quantity != 3 || session.LineItems[0].UnitAmount != 700 {
		t.Errorf("line item = %+v, want qty 3 unit 700", session.LineItems[0])
	}
	if session.Shipping.Amount != 420 {
		t.Errorf("shipping amount = %d, want 420", session.Shipping.Amount)
	}
	if session.CouponID != "" {
		t.Errorf("coupon id = %q, want none", session.CouponID)
	}
	if session.CustomerEmail != "a@b.com" {
		t.Errorf("customer email = %q", session.CustomerEmail)
	}
}

func TestSubmitOrderCashPickup(t *testing.T) {
	provider := newStubProvider()
	handler := newOrderHandler(provider)

	w := submit(handler, url.Values{
		"fullKitQuantity": {"1"},
		"deliveryMethod":  {"pickup-site-A"},
		"paymentMethod":   {"cash"},
		"email":           {"a@b.com"},
	})

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d (body %q)", w.Code, http.StatusSeeOther, w.Body.String())
	}

	session := provider.lastSession
	if len(session.LineItems) != 1 {
		t.Fatalf("line items = %d, want 1", len(session.LineItems))
	}
	if session.LineItems[0].Quantity != 1 || session.LineItems[0].UnitAmount != 900 {
		t.Errorf("line item = %+v, want qty 1 unit 900", session.LineItems[0])
	}
	if session.Shipping.Amount != 0 {
		t.Errorf("shipping amount = %d, want 0", session.Shipping.Amount)
	}
	if session.CouponID != checkout.CashCouponID {
		t.Errorf("coupon id = %q, want %q", session.CouponID, checkout.CashCouponID)
	}
	if got := provider.coupons[checkout.CashCouponID]; got == nil || got.PercentOff != 100 {
		t.Errorf("provisioned coupon = %+v, want 100%% off", got)
	}
}

func TestSubmitOrderEmpty(t *testing.T) {
	provider := newStubProvider()
	handler := newOrderHandler(provider)

	w := submit(handler, url.Values{
		"pcbOnlyQuantity": {"0"},
		"fullKitQuantity": {"0"},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if !strings.Contains(w.Body.String(), "at least one item") {
		t.Errorf("body = %q, want the no-items message", w.Body.String())
	}
	if provider.lastSession != nil {
		t.Error("no session must be requested for a rejected order")
	}
}

func TestSubmitOrderCashWithShipping(t *testing.T) {
	provider := newStubProvider()
	handler := newOrderHandler(provider)

	w := submit(handler, url.Values{
		"fullKitQuantity": {"1"},
		"deliveryMethod":  {"shipping"},
		"paymentMethod":   {"cash"},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if !strings.Contains(w.Body.String(), "pickup") {
		t.Errorf("body = %q, want the cash-requires-pickup message", w.Body.String())
	}
	if provider.lastSession != nil {
		t.Error("no session must be requested for a rejected order")
	}
}

func TestSubmitOrderSchemaRejections(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
	}{
		{
			name: "unknown delivery method",
			values: url.Values{
				"pcbOnlyQuantity": {"1"},
				"deliveryMethod":  {"drone"},
			},
		},
		{
			name: "unknown payment method",
			values: url.Values{
				"pcbOnlyQuantity": {"1"},
				"paymentMethod":   {"iou"},
			},
		},
		{
			name: "negative quantity",
			values: url.Values{
				"pcbOnlyQuantity": {"-1"},
				"fullKitQuantity": {"2"},
			},
		},
		{
			name: "negative price",
			values: url.Values{
				"pcbOnlyQuantity": {"1"},
				"pcbOnlyPrice":    {"-7"},
			},
		},
		{
			name: "bad email",
			values: url.Values{
				"pcbOnlyQuantity": {"1"},
				"email":           {"nope"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := newStubProvider()
			handler := newOrderHandler(provider)

			w := submit(handler, tt.values)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
			if w.Body.Len() == 0 {
				t.Error("body is empty, want a human-readable message")
			}
		})
	}
}

func TestSubmitOrderProviderFailure(t *testing.T) {
	provider := newStubProvider()
	provider.createSessionErr = errors.New("stripe: invalid api key sk_live_xyz")
	handler := newOrderHandler(provider)

	w := submit(handler, url.Values{
		"pcbOnlyQuantity": {"1"},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	// The provider's own error text must never reach the client.
	if strings.Contains(w.Body.String(), "sk_live") {
		t.Errorf("body leaks provider detail: %q", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Payment session could not be created") {
		t.Errorf("body = %q, want the generic provider message", w.Body.String())
	}
}

// Defaults carry a bare submission with one item all the way through.
func TestSubmitOrderMinimalForm(t *testing.T) {
	provider := newStubProvider()
	handler := newOrderHandler(provider)

	w := submit(handler, url.Values{
		"pcbOnlyQuantity": {"2"},
	})

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d (body %q)", w.Code, http.StatusSeeOther, w.Body.String())
	}

	session := provider.lastSession
	if session.LineItems[0].UnitAmount != 700 {
		t.Errorf("default pcb price = %d minor units, want 700", session.LineItems[0].UnitAmount)
	}
	if session.Shipping.Amount != 420 {
		t.Errorf("default delivery should be shipping at 420, got %d", session.Shipping.Amount)
	}
	if session.CouponID != "" {
		t.Errorf("default payment should be online, got coupon %q", session.CouponID)
	}
}
