package ordering

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(code string, qty int, price string) OrderLine {
	return OrderLine{
		ItemCode:  code,
		Quantity:  qty,
		UnitPrice: decimal.RequireFromString(price),
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("computes total from lines", func(t *testing.T) {
		order, err := NewOrder("Acme", []OrderLine{
			line("A1", 2, "9.99"),
			line("B2", 1, "100.50"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Acme", order.CustomerName)
		assert.True(t, order.Total.Equal(decimal.RequireFromString("120.48")),
			"expected 120.48, got %s", order.Total)
		assert.False(t, order.CreatedAt.IsZero())
	})

	t.Run("empty line list yields zero total", func(t *testing.T) {
		order, err := NewOrder("Acme", nil)

		require.NoError(t, err)
		assert.True(t, order.Total.IsZero())
		assert.Empty(t, order.Lines)
	})

	t.Run("zero price lines are allowed", func(t *testing.T) {
		order, err := NewOrder("Acme", []OrderLine{line("FREE", 3, "0")})

		require.NoError(t, err)
		assert.True(t, order.Total.IsZero())
	})

	t.Run("rejects blank customer name", func(t *testing.T) {
		_, err := NewOrder("   ", []OrderLine{line("A1", 1, "1")})
		assert.ErrorIs(t, err, ErrEmptyCustomerName)
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := NewOrder("Acme", []OrderLine{line("A1", 0, "1")})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewOrder("Acme", []OrderLine{line("A1", 1, "-0.01")})
		assert.ErrorIs(t, err, ErrNegativePrice)
	})

	t.Run("rejects missing item code", func(t *testing.T) {
		_, err := NewOrder("Acme", []OrderLine{line("", 1, "1")})
		assert.ErrorIs(t, err, ErrEmptyItemCode)
	})
}

func TestOrderLine_Subtotal(t *testing.T) {
	l := line("A1", 4, "2.50")
	assert.True(t, l.Subtotal().Equal(decimal.NewFromInt(10)))
}
