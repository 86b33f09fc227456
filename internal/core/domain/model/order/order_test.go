package order_test

import (
	"testing"

	"bytebowl/internal/core/domain/model/order"
	"bytebowl/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, name string, qty int, price float64) order.Line {
	t.Helper()
	line, err := order.NewLine(name, qty, price)
	require.NoError(t, err)
	return line
}

func TestNewLine(t *testing.T) {
	t.Run("valid_line", func(t *testing.T) {
		line, err := order.NewLine("pav bhaji", 2, 120)

		require.NoError(t, err)
		assert.Equal(t, "pav bhaji", line.Name())
		assert.Equal(t, 2, line.Quantity())
		assert.InDelta(t, 120.0, line.UnitPrice(), 0.001)
		assert.InDelta(t, 240.0, line.Subtotal(), 0.001)
	})

	t.Run("empty_name", func(t *testing.T) {
		_, err := order.NewLine("", 1, 50)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("non_positive_quantity", func(t *testing.T) {
		_, err := order.NewLine("mango lassi", 0, 60)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewLine("mango lassi", -1, 60)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative_price", func(t *testing.T) {
		_, err := order.NewLine("mango lassi", 1, -0.5)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("computes_total_and_starts_placed", func(t *testing.T) {
		o, err := order.NewOrder([]order.Line{
			mustLine(t, "pav bhaji", 2, 120),
			mustLine(t, "mango lassi", 1, 60),
		})

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.ID(0), o.ID())
		assert.Equal(t, order.Placed, o.Status())
		assert.InDelta(t, 300.0, o.Total(), 0.001)
		assert.Len(t, o.Lines(), 2)
	})

	t.Run("rejects_empty_lines", func(t *testing.T) {
		_, err := order.NewOrder(nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_AssignID(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		o, err := order.NewOrder([]order.Line{mustLine(t, "samosa", 3, 25)})
		require.NoError(t, err)
		return o
	}

	t.Run("assigns_once", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.AssignID(7))
		assert.Equal(t, order.ID(7), o.ID())
	})

	t.Run("rejects_reassignment", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.AssignID(7))
		require.Error(t, o.AssignID(8))
		assert.Equal(t, order.ID(7), o.ID())
	})

	t.Run("rejects_non_positive_id", func(t *testing.T) {
		o := newOrder(t)
		require.Error(t, o.AssignID(0))
		require.Error(t, o.AssignID(-3))
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_persisted_state", func(t *testing.T) {
		lines := []order.Line{mustLine(t, "chole", 1, 90)}

		o, err := order.RestoreOrder(12, lines, order.InTransit, 90)

		require.NoError(t, err)
		assert.Equal(t, order.ID(12), o.ID())
		assert.Equal(t, order.InTransit, o.Status())
		assert.InDelta(t, 90.0, o.Total(), 0.001)
	})

	t.Run("rejects_invalid_state", func(t *testing.T) {
		lines := []order.Line{mustLine(t, "chole", 1, 90)}

		_, err := order.RestoreOrder(0, lines, order.Placed, 90)
		require.Error(t, err)

		_, err = order.RestoreOrder(12, nil, order.Placed, 90)
		require.Error(t, err)

		_, err = order.RestoreOrder(12, lines, order.Unknown, 90)
		require.Error(t, err)
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("placed_to_delivered_via_in_transit", func(t *testing.T) {
		o, err := order.NewOrder([]order.Line{mustLine(t, "dosa", 2, 80)})
		require.NoError(t, err)

		require.NoError(t, o.TransitionTo(order.InTransit))
		require.NoError(t, o.TransitionTo(order.Delivered))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("terminal_states_reject_transitions", func(t *testing.T) {
		o, err := order.RestoreOrder(3, []order.Line{mustLine(t, "dosa", 2, 80)}, order.Cancelled, 160)
		require.NoError(t, err)

		require.Error(t, o.TransitionTo(order.InTransit))
		assert.Equal(t, order.Cancelled, o.Status())
	})
}
