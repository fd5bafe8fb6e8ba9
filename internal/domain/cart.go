package domain

import "fmt"

// MaxItemQuantity bounds a single cart line.
const MaxItemQuantity = 1_000_000

// Cart maps product id to quantity. It is owned by the client and sent with
// every cart request; the server keeps no cart state.
type Cart map[int]int

func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	for id, qty := range c {
		out[id] = qty
	}
	return out
}

// Validate rejects entries with a non-positive product id or a quantity
// outside 1..MaxItemQuantity.
func (c Cart) Validate() error {
	for id, qty := range c {
		if id <= 0 {
			return fmt.Errorf("%w: cart holds invalid product ID %d", ErrInvalidInput, id)
		}
		if qty <= 0 || qty > MaxItemQuantity {
			return fmt.Errorf("%w: cart quantity %d for product %d is out of range", ErrInvalidInput, qty, id)
		}
	}
	return nil
}

func (c Cart) ItemsCount() int {
	total := 0
	for _, qty := range c {
		total += qty
	}
	return total
}

type CartItem struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
	ImageURL  *string `json:"image_url"`
}

type CartDetails struct {
	Items      []CartItem `json:"items"`
	Total      float64    `json:"total"`
	ItemsCount int        `json:"items_count"`
}
