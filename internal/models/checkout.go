package models

import "time"

type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit-card"
	PaymentCash       PaymentMethod = "cash"
)

type CheckoutStep string

const (
	StepShipping     CheckoutStep = "shipping"
	StepPayment      CheckoutStep = "payment"
	StepConfirmation CheckoutStep = "confirmation"
)

// CheckoutForm holds the data collected across the checkout steps. It is
// created empty when the flow begins and discarded after confirmation.
type CheckoutForm struct {
	FirstName     string        `json:"first_name" binding:"required"`
	LastName      string        `json:"last_name" binding:"required"`
	Email         string        `json:"email" binding:"required,email"`
	Phone         string        `json:"phone" binding:"required"`
	Address       string        `json:"address" binding:"required"`
	City          string        `json:"city" binding:"required"`
	Country       string        `json:"country" binding:"required"`
	Postcode      string        `json:"postcode" binding:"required"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	SaveInfo      bool          `json:"save_info"`
}

// Order is the confirmation record produced by a settled checkout. The
// reference is display-only: random per confirmation, not persisted and
// not guaranteed unique across sessions.
type Order struct {
	ID        string       `json:"id"`
	Reference string       `json:"reference"`
	Items     []CartItem   `json:"items"`
	Total     float64      `json:"total"`
	Customer  CheckoutForm `json:"customer"`
	CreatedAt time.Time    `json:"created_at"`
}

type SubmitPaymentRequest struct {
	PaymentMethod PaymentMethod `json:"payment_method"`
}
