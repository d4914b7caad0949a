package service

import (
	"fmt"
	"net/mail"

	"github.com/hwcrafts/pcb-preorder/internal/models"
)

// Validate turns a decoded candidate into a validated Order or rejects
// it with the first violated constraint.
//
// Shape checks run before business rules: reporting a rule violation
// on an order with a malformed field would be meaningless to the user.
func Validate(c models.OrderCandidate) (*models.Order, error) {
	if err := checkSchema(c); err != nil {
		return nil, err
	}

	if c.PCBOnlyQuantity+c.FullKitQuantity == 0 {
		return nil, ErrNoItems
	}

	delivery := models.DeliveryMethod(c.DeliveryMethod)
	payment := models.PaymentMethod(c.PaymentMethod)

	if payment == models.PaymentCash && delivery == models.DeliveryShipping {
		return nil, ErrCashRequiresPickup
	}

	return &models.Order{
		PCBOnlyQuantity: c.PCBOnlyQuantity,
		FullKitQuantity: c.FullKitQuantity,
		PCBOnlyPrice:    c.PCBOnlyPrice,
		FullKitPrice:    c.FullKitPrice,
		DeliveryMethod:  delivery,
		PaymentMethod:   payment,
		Email:           c.Email,
		Name:            c.Name,
		Notes:           c.Notes,
	}, nil
}

// checkSchema verifies each field independently, reporting the first
// violated constraint.
func checkSchema(c models.OrderCandidate) error {
	if c.PCBOnlyQuantity < 0 {
		return &SchemaError{Field: "pcbOnlyQuantity", Message: "Quantity must not be negative"}
	}
	if c.FullKitQuantity < 0 {
		return &SchemaError{Field: "fullKitQuantity", Message: "Quantity must not be negative"}
	}
	if !c.PCBOnlyPrice.IsPositive() {
		return &SchemaError{Field: "pcbOnlyPrice", Message: "Price must be positive"}
	}
	if !c.FullKitPrice.IsPositive() {
		return &SchemaError{Field: "fullKitPrice", Message: "Price must be positive"}
	}
	if !models.DeliveryMethod(c.DeliveryMethod).Valid() {
		return &SchemaError{
			Field:   "deliveryMethod",
			Message: fmt.Sprintf("Unknown delivery method %q", c.DeliveryMethod),
		}
	}
	if !models.PaymentMethod(c.PaymentMethod).Valid() {
		return &SchemaError{
			Field:   "paymentMethod",
			Message: fmt.Sprintf("Unknown payment method %q", c.PaymentMethod),
		}
	}
	if c.Email != "" {
		if _, err := mail.ParseAddress(c.Email); err != nil {
			return &SchemaError{Field: "email", Message: "Invalid email address"}
		}
	}
	return nil
}
