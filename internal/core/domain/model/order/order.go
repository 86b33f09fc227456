package order

import (
	"errors"
	"fmt"

	"bytebowl/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// ID is the storage-allocated order identifier. Identifiers are assigned by
// a database sequence on insert, so they are unique and monotonic across all
// finalized orders. The zero value means "not yet persisted".
type ID int64

// Line is one menu item within an order: the item name, the quantity ordered
// and the catalog unit price captured at finalization time. Lines are
// immutable once the order is persisted.
type Line struct {
	name      string
	quantity  int
	unitPrice float64
}

// NewLine validates and creates an order line.
// Name must be non-empty, quantity positive and unit price non-negative.
func NewLine(name string, quantity int, unitPrice float64) (Line, error) {
	if name == "" {
		return Line{}, errs.NewValueIsRequiredError("item name")
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice < 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%g is negative", unitPrice))
	}
	return Line{name: name, quantity: quantity, unitPrice: unitPrice}, nil
}

// Name returns the item name.
func (l Line) Name() string { return l.name }

// Quantity returns the ordered quantity.
func (l Line) Quantity() int { return l.quantity }

// UnitPrice returns the catalog price per unit at finalization time.
func (l Line) UnitPrice() float64 { return l.unitPrice }

// Subtotal returns quantity times unit price.
func (l Line) Subtotal() float64 { return float64(l.quantity) * l.unitPrice }

// Order is the aggregate root for a finalized order. It owns the order
// lines, the derived total and the status state machine.
//
// Invariants:
//   - at least one line; every line valid per NewLine
//   - total equals the sum of line subtotals
//   - status transitions follow the Status state machine
//   - orders are never deleted, only transitioned
type Order struct {
	id     ID
	lines  []Line
	total  float64
	status Status

	isConstructed bool
}

// NewOrder creates an order from the finalized cart lines. The order starts
// in Placed status with a zero ID; the repository assigns the identifier on
// insert. The total is derived from the lines, never supplied.
func NewOrder(lines []Line) (*Order, error) {
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("order lines")
	}

	o := &Order{
		lines:         make([]Line, len(lines)),
		status:        Placed,
		isConstructed: true,
	}
	copy(o.lines, lines)
	for _, l := range o.lines {
		o.total += l.Subtotal()
	}
	return o, nil
}

// RestoreOrder reconstructs a persisted order from storage. Used by the
// repository when reading rows back; validates the restored state.
func RestoreOrder(id ID, lines []Line, status Status, total float64) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order ID",
			fmt.Errorf("%d is not a persisted identifier", id))
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("order lines")
	}

	o := &Order{
		id:            id,
		lines:         make([]Line, len(lines)),
		total:         total,
		status:        status,
		isConstructed: true,
	}
	copy(o.lines, lines)
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order identifier, zero until the order is persisted.
func (o *Order) ID() ID { return o.id }

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Total returns the derived total price.
func (o *Order) Total() float64 { return o.total }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// AssignID records the storage-allocated identifier after insert.
// Assigning twice, or assigning a non-positive id, is an error.
func (o *Order) AssignID(id ID) error {
	if o.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("order ID",
			fmt.Errorf("order already has ID %d", o.id))
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order ID",
			fmt.Errorf("%d is not a valid identifier", id))
	}
	o.id = id
	return nil
}

// TransitionTo moves the order to the next lifecycle status, enforcing the
// Status state machine. Used by the external status-update trigger, never by
// the finalizer itself.
func (o *Order) TransitionTo(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}
