package forms

import (
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/hwcrafts/pcb-preorder/internal/models"
)

// Decode extracts an order candidate from a form-encoded request body.
//
// Decoding is deliberately forgiving: absent or malformed numeric
// fields fall back to their documented defaults instead of failing, so
// the validator owns every rejection and its message. Decode itself
// never fails.
func Decode(r *http.Request) models.OrderCandidate {
	// ParseForm errors (bad encoding) leave r.PostForm empty, which
	// decodes to an all-defaults candidate the validator rejects.
	_ = r.ParseForm()

	return models.OrderCandidate{
		PCBOnlyQuantity: intField(r, "pcbOnlyQuantity"),
		FullKitQuantity: intField(r, "fullKitQuantity"),
		PCBOnlyPrice:    priceField(r, "pcbOnlyPrice", models.DefaultPCBOnlyPrice),
		FullKitPrice:    priceField(r, "fullKitPrice", models.DefaultFullKitPrice),
		DeliveryMethod:  stringField(r, "deliveryMethod", string(models.DeliveryShipping)),
		PaymentMethod:   stringField(r, "paymentMethod", string(models.PaymentOnline)),
		Email:           r.PostFormValue("email"),
		Name:            r.PostFormValue("name"),
		Notes:           r.PostFormValue("notes"),
	}
}

func stringField(r *http.Request, name, defaultValue string) string {
	if v := r.PostFormValue(name); v != "" {
		return v
	}
	return defaultValue
}

func intField(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.PostFormValue(name))
	if err != nil {
		return 0
	}
	return v
}

func priceField(r *http.Request, name string, defaultValue decimal.Decimal) decimal.Decimal {
	v, err := decimal.NewFromString(r.PostFormValue(name))
	if err != nil {
		return defaultValue
	}
	return v
}
