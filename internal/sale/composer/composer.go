// Package composer builds a draft sale line by line and submits it once.
//
// Prices are snapshotted when a product is added, so the displayed total never
// follows later catalog changes. Only one submission may be in flight; while it
// is, every mutation is ignored.
package composer

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/labela/labela-control/internal/model"
	"github.com/labela/labela-control/internal/pkg/apperror"
	"github.com/labela/labela-control/internal/pkg/logger"
	"github.com/labela/labela-control/internal/sale/dto"
)

var ErrSubmissionInFlight = errors.New("sale submission already in flight")

type State int

const (
	Empty State = iota
	Composing
	Submitting
	Committed
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Composing:
		return "composing"
	case Submitting:
		return "submitting"
	case Committed:
		return "committed"
	}
	return "unknown"
}

// Creator records a sale. sale.UseCase satisfies it.
type Creator interface {
	CreateSale(ctx context.Context, input *dto.CreateSaleInput) (*model.Sale, error)
}

type Line struct {
	ProductID     int64
	Name          string
	UnitSaleCents int64
	Quantity      int
	StockQty      int
}

func (l Line) Subtotal() int64 {
	return l.UnitSaleCents * int64(l.Quantity)
}

// ExceedsStock is advisory only; the server decides whether the sale goes through.
func (l Line) ExceedsStock() bool {
	return l.Quantity > l.StockQty
}

type Composer struct {
	mu     sync.Mutex
	sales  Creator
	logger logger.ZapLogger

	draftID         uuid.UUID
	state           State
	customerID      int64
	paymentMethodID int64
	lines           []Line
	errs            *apperror.ValidationError
}

func New(sales Creator, log logger.ZapLogger) *Composer {
	c := &Composer{
		sales:  sales,
		logger: log,
	}
	c.resetLocked()
	return c
}

// OpenDraft discards the current draft and its validation errors.
// It returns false while a submission is in flight.
func (c *Composer) OpenDraft() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Submitting {
		c.logIgnored("open_draft")
		return false
	}
	c.resetLocked()
	c.logger.Debug("draft opened", zap.String("draft_id", c.draftID.String()))
	return true
}

// AddLine appends product with quantity 1 and its current sale price as the
// snapshot. Adding a product already in the draft is a no-op.
func (c *Composer) AddLine(p model.Product) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Submitting {
		c.logIgnored("add_line")
		return false
	}
	if c.indexLocked(p.ID) >= 0 {
		return false
	}

	c.lines = append(c.lines, Line{
		ProductID:     p.ID,
		Name:          p.Name,
		UnitSaleCents: p.SalePriceCents,
		Quantity:      1,
		StockQty:      p.StockQty,
	})
	c.touchLocked("products")
	c.logger.Debug("line added",
		zap.String("draft_id", c.draftID.String()),
		zap.Int64("product_id", p.ID),
		zap.Int64("unit_sale_cents", p.SalePriceCents),
	)
	return true
}

func (c *Composer) RemoveLine(productID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Submitting {
		c.logIgnored("remove_line")
		return false
	}
	i := c.indexLocked(productID)
	if i < 0 {
		return false
	}

	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	c.touchLocked("")
	c.logger.Debug("line removed", zap.String("draft_id", c.draftID.String()), zap.Int64("product_id", productID))
	return true
}

// SetQuantity ignores quantities below 1 and unknown products. It does not
// cap at stock.
func (c *Composer) SetQuantity(productID int64, qty int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Submitting {
		c.logIgnored("set_quantity")
		return false
	}
	if qty < 1 {
		return false
	}
	i := c.indexLocked(productID)
	if i < 0 {
		return false
	}

	c.lines[i].Quantity = qty
	c.touchLocked("")
	c.logger.Debug("quantity set",
		zap.String("draft_id", c.draftID.String()),
		zap.Int64("product_id", productID),
		zap.Int("quantity", qty),
	)
	return true
}

func (c *Composer) SetCustomer(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Submitting {
		c.logIgnored("set_customer")
		return false
	}
	c.customerID = id
	c.touchLocked("customer_id")
	c.logger.Debug("customer set", zap.String("draft_id", c.draftID.String()), zap.Int64("customer_id", id))
	return true
}

func (c *Composer) SetPaymentMethod(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Submitting {
		c.logIgnored("set_payment_method")
		return false
	}
	c.paymentMethodID = id
	c.touchLocked("payment_method_id")
	c.logger.Debug("payment method set", zap.String("draft_id", c.draftID.String()), zap.Int64("payment_method_id", id))
	return true
}

// Total is the sum of snapshot price times quantity over every line.
func (c *Composer) Total() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total int64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

func (c *Composer) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Composer) CustomerID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.customerID
}

func (c *Composer) PaymentMethodID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paymentMethodID
}

func (c *Composer) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Errors returns the violations found by the last Validate or Submit, or nil.
func (c *Composer) Errors() *apperror.ValidationError {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.errs == nil || len(c.errs.Violations) == 0 {
		return nil
	}
	return &apperror.ValidationError{Violations: append([]apperror.Violation(nil), c.errs.Violations...)}
}

// Validate checks customer, payment method and lines independently and
// returns every violation found.
func (c *Composer) Validate() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.validateLocked(c.inputLocked())
}

// Submit sends the draft as exactly one CreateSale call. On success the draft
// is discarded and the composer is Committed; on failure the draft is left as
// it was and the error is returned for display.
func (c *Composer) Submit(ctx context.Context) (*model.Sale, error) {
	c.mu.Lock()
	if c.state == Submitting {
		c.mu.Unlock()
		c.logIgnored("submit")
		return nil, ErrSubmissionInFlight
	}

	input := c.inputLocked()
	if err := c.validateLocked(input); err != nil {
		c.mu.Unlock()
		return nil, err
	}

	draftID := c.draftID.String()
	c.state = Submitting
	c.mu.Unlock()

	c.logger.Debug("submitting draft", zap.String("draft_id", draftID), zap.Int("lines", len(input.Products)))
	s, err := c.sales.CreateSale(ctx, input)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.state = Composing
		c.logger.Debug("submission failed", zap.String("draft_id", draftID), zap.Error(err))
		return nil, err
	}

	c.resetLocked()
	c.state = Committed
	c.logger.Debug("draft committed", zap.String("draft_id", draftID), zap.Int64("sale_id", s.ID))
	return s, nil
}

func (c *Composer) inputLocked() *dto.CreateSaleInput {
	input := &dto.CreateSaleInput{
		CustomerID:      c.customerID,
		PaymentMethodID: c.paymentMethodID,
		Products:        make([]dto.SaleProductInput, 0, len(c.lines)),
	}
	for _, l := range c.lines {
		input.Products = append(input.Products, dto.SaleProductInput{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return input
}

func (c *Composer) validateLocked(input *dto.CreateSaleInput) error {
	err := input.Validate()
	c.errs = nil
	if verr, ok := apperror.AsValidation(err); ok {
		c.errs = &apperror.ValidationError{Violations: append([]apperror.Violation(nil), verr.Violations...)}
		c.logger.Debug("draft invalid", zap.String("draft_id", c.draftID.String()), zap.Error(err))
	}
	return err
}

func (c *Composer) indexLocked(productID int64) int {
	for i, l := range c.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

// touchLocked marks the draft as being composed and drops stale violations
// for field.
func (c *Composer) touchLocked(field string) {
	c.state = Composing
	if field == "" || c.errs == nil {
		return
	}

	kept := c.errs.Violations[:0]
	for _, v := range c.errs.Violations {
		if v.Field != field {
			kept = append(kept, v)
		}
	}
	c.errs.Violations = kept
}

func (c *Composer) resetLocked() {
	c.draftID = uuid.New()
	c.state = Empty
	c.customerID = 0
	c.paymentMethodID = 0
	c.lines = nil
	c.errs = nil
}

func (c *Composer) logIgnored(op string) {
	c.logger.Debug("ignored while submitting", zap.String("op", op))
}
