package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/mail"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"skilz-store/internal/models"
)

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrNoActiveCheckout = errors.New("no active checkout")
	ErrWrongStep        = errors.New("operation not allowed in current step")
	ErrPaymentPending   = errors.New("payment already being processed")
	ErrInvalidForm      = errors.New("invalid shipping form")
)

// PaymentProcessor settles a payment. Implementations may block until the
// context is cancelled.
type PaymentProcessor interface {
	Process(ctx context.Context, total float64, method models.PaymentMethod) error
}

// SimulatedProcessor approves every payment after a fixed delay. This is
// the stand-in for a real gateway; there is no failure mode here, but the
// checkout flow handles one for processors that do fail.
type SimulatedProcessor struct {
	Delay time.Duration
}

func (p *SimulatedProcessor) Process(ctx context.Context, total float64, method models.PaymentMethod) error {
	timer := time.NewTimer(p.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// CheckoutState is a read-only view of the flow for views and tests.
type CheckoutState struct {
	Active     bool                `json:"active"`
	Step       models.CheckoutStep `json:"step,omitempty"`
	Processing bool                `json:"processing"`
	Form       models.CheckoutForm `json:"form"`
	LastError  string              `json:"last_error,omitempty"`
	Order      *models.Order       `json:"order,omitempty"`
}

// CheckoutService drives the linear shipping -> payment -> confirmation
// flow. It reads the cart, simulates asynchronous settlement and clears the
// cart when settlement succeeds. Confirmation is terminal; beginning a new
// flow resets everything.
type CheckoutService struct {
	cart      *CartService
	processor PaymentProcessor
	logger    *zap.Logger

	mu         sync.Mutex
	active     bool
	step       models.CheckoutStep
	form       models.CheckoutForm
	processing bool
	cancel     context.CancelFunc
	generation uint64
	lastError  string
	order      *models.Order
}

func NewCheckoutService(cart *CartService, processor PaymentProcessor, logger *zap.Logger) *CheckoutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutService{
		cart:      cart,
		processor: processor,
		logger:    logger,
	}
}

// Begin starts a fresh flow at the shipping step. An empty cart is fatal
// for the flow: the caller must redirect out.
func (s *CheckoutService) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.ItemCount() == 0 {
		return ErrEmptyCart
	}
	s.resetLocked()
	s.active = true
	s.step = models.StepShipping
	s.logger.Info("checkout started")
	return nil
}

// SubmitShipping validates the shipping form and advances to payment.
func (s *CheckoutService) SubmitShipping(form models.CheckoutForm) error {
	if err := validateShippingForm(form); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return ErrNoActiveCheckout
	}
	if s.step != models.StepShipping {
		return ErrWrongStep
	}
	if form.PaymentMethod == "" {
		form.PaymentMethod = models.PaymentCreditCard
	}
	s.form = form
	s.step = models.StepPayment
	s.lastError = ""
	return nil
}

// Back returns from payment to shipping. Not allowed while a settlement is
// pending or from any other step.
func (s *CheckoutService) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return ErrNoActiveCheckout
	}
	if s.step != models.StepPayment {
		return ErrWrongStep
	}
	if s.processing {
		return ErrPaymentPending
	}
	s.step = models.StepShipping
	return nil
}

// SubmitPayment captures a snapshot of the form and cart and schedules the
// asynchronous settlement. While a settlement is pending, resubmission is
// rejected. On success the cart is cleared and the flow reaches
// confirmation; on settlement failure the flow stays at payment with the
// error recorded and the cart untouched.
func (s *CheckoutService) SubmitPayment(method models.PaymentMethod) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return ErrNoActiveCheckout
	}
	if s.step != models.StepPayment {
		return ErrWrongStep
	}
	if s.processing {
		return ErrPaymentPending
	}

	if method != "" {
		s.form.PaymentMethod = method
	}

	// Snapshot taken at submission time; the confirmation shows exactly
	// what was submitted even if the cart changes concurrently.
	snap := s.cart.Snapshot()
	if snap.ItemCount == 0 {
		return ErrEmptyCart
	}
	form := s.form

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.processing = true
	s.lastError = ""
	s.generation++
	gen := s.generation

	s.logger.Info("payment submitted",
		zap.Float64("total", snap.TotalPrice),
		zap.String("method", string(form.PaymentMethod)),
	)

	go s.settle(ctx, gen, snap, form)
	return nil
}

func (s *CheckoutService) settle(ctx context.Context, gen uint64, snap models.CartSnapshot, form models.CheckoutForm) {
	err := s.processor.Process(ctx, snap.TotalPrice, form.PaymentMethod)

	s.mu.Lock()

	// A completion racing with Abandon or a newer submission is stale and
	// must not mutate state.
	if gen != s.generation || !s.processing {
		s.mu.Unlock()
		return
	}
	s.processing = false
	s.cancel = nil

	if err != nil {
		if !errors.Is(err, context.Canceled) {
			s.lastError = err.Error()
			s.logger.Warn("payment declined", zap.Error(err))
		}
		s.mu.Unlock()
		return
	}

	order := &models.Order{
		ID:        uuid.NewString(),
		Reference: newOrderReference(),
		Items:     snap.Items,
		Total:     snap.TotalPrice,
		Customer:  form,
		CreatedAt: time.Now(),
	}
	s.order = order
	s.step = models.StepConfirmation

	// Cart subscribers run synchronously here, before confirmation becomes
	// observable. They may re-read the cart but must not call back into
	// the checkout flow.
	s.cart.ClearCart()
	s.mu.Unlock()

	s.logger.Info("order confirmed",
		zap.String("order_id", order.ID),
		zap.String("reference", order.Reference),
	)
}

// Abandon cancels any pending settlement and resets the flow, as when the
// user navigates away mid-checkout.
func (s *CheckoutService) Abandon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

// State returns the current flow state.
func (s *CheckoutService) State() CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CheckoutState{
		Active:     s.active,
		Step:       s.step,
		Processing: s.processing,
		Form:       s.form,
		LastError:  s.lastError,
		Order:      s.order,
	}
}

func (s *CheckoutService) resetLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.generation++ // invalidates any in-flight settlement
	s.active = false
	s.step = ""
	s.form = models.CheckoutForm{}
	s.processing = false
	s.lastError = ""
	s.order = nil
}

func validateShippingForm(form models.CheckoutForm) error {
	required := map[string]string{
		"first_name": form.FirstName,
		"last_name":  form.LastName,
		"email":      form.Email,
		"phone":      form.Phone,
		"address":    form.Address,
		"city":       form.City,
		"country":    form.Country,
		"postcode":   form.Postcode,
	}
	for field, value := range required {
		if value == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidForm, field)
		}
	}
	if _, err := mail.ParseAddress(form.Email); err != nil {
		return fmt.Errorf("%w: malformed email", ErrInvalidForm)
	}
	return nil
}

// newOrderReference builds the human-facing order number shown on the
// confirmation page, e.g. ORD-2025-483920.
func newOrderReference() string {
	return fmt.Sprintf("ORD-2025-%d", 100000+rand.Intn(900000))
}
