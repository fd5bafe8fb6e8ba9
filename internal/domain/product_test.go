package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductString(t *testing.T) {
	p := Product{ID: 5, Name: "Widget", Price: 9.99}

	s := p.String()
	assert.Equal(t, "<Product(id=5, name='Widget', price=9.99)>", s)
	assert.Contains(t, s, "5")
	assert.Contains(t, s, "Widget")
	assert.Contains(t, s, "9.99")
}

func TestProductValidate(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		wantErr bool
	}{
		{"valid", Product{Name: "Widget", Price: 9.99, CategoryID: 1}, false},
		{"free product", Product{Name: "Sticker", Price: 0, CategoryID: 1}, false},
		{"empty name", Product{Name: "  ", Price: 1, CategoryID: 1}, true},
		{"negative price", Product{Name: "Widget", Price: -0.01, CategoryID: 1}, true},
		{"nan price", Product{Name: "Widget", Price: math.NaN(), CategoryID: 1}, true},
		{"missing category", Product{Name: "Widget", Price: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.product.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProductUpdateValidate(t *testing.T) {
	empty := ""
	negative := -3.0
	zero := 0

	assert.True(t, ProductUpdate{}.IsEmpty())
	assert.ErrorIs(t, ProductUpdate{Name: &empty}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, ProductUpdate{Price: &negative}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, ProductUpdate{CategoryID: &zero}.Validate(), ErrInvalidInput)
}

func TestCartCloneAndCount(t *testing.T) {
	cart := Cart{1: 2, 7: 3}
	clone := cart.Clone()
	clone[1] = 10

	assert.Equal(t, 2, cart[1])
	assert.Equal(t, 5, cart.ItemsCount())
	assert.Equal(t, 13, clone.ItemsCount())
}

func TestCartValidate(t *testing.T) {
	assert.NoError(t, Cart{}.Validate())
	assert.NoError(t, Cart{1: 1, 2: MaxItemQuantity}.Validate())

	for _, bad := range []Cart{
		{1: 0},
		{1: -5},
		{0: 1},
		{-3: 2},
		{1: MaxItemQuantity + 1},
	} {
		assert.ErrorIs(t, bad.Validate(), ErrInvalidInput, "cart %v", bad)
	}
}
