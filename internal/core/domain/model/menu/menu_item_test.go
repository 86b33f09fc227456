package menu_test

import (
	"testing"

	"bytebowl/internal/core/domain/model/menu"
	"bytebowl/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("valid_item", func(t *testing.T) {
		item, err := menu.NewItem("mango lassi", 60)

		require.NoError(t, err)
		assert.Equal(t, "mango lassi", item.Name())
		assert.InDelta(t, 60.0, item.Price(), 0.001)
	})

	t.Run("free_item_is_allowed", func(t *testing.T) {
		_, err := menu.NewItem("papad", 0)
		require.NoError(t, err)
	})

	t.Run("blank_name", func(t *testing.T) {
		_, err := menu.NewItem("  ", 10)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("negative_price", func(t *testing.T) {
		_, err := menu.NewItem("pav bhaji", -1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "pav bhaji", menu.NormalizeName("  Pav Bhaji "))
	assert.Equal(t, "mango lassi", menu.NormalizeName("MANGO LASSI"))
	assert.Equal(t, "", menu.NormalizeName("   "))
}
