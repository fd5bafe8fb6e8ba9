package usecase

import (
	"context"
	"fmt"
	"sort"

	"shop_service/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// CartUseCase operates on client-held carts. Every method returns a new cart
// and leaves its input untouched.
type CartUseCase interface {
	AddItem(ctx context.Context, cart domain.Cart, productID, quantity int) (domain.Cart, error)
	UpdateItem(ctx context.Context, cart domain.Cart, productID, quantity int) (domain.Cart, error)
	RemoveItem(cart domain.Cart, productID int) (domain.Cart, error)
	Details(ctx context.Context, cart domain.Cart) (*domain.CartDetails, error)
}

type cartUseCase struct {
	productRepo domain.ProductRepository
	log         *logrus.Logger
}

func NewCartUseCase(pRepo domain.ProductRepository, logger *logrus.Logger) CartUseCase {
	return &cartUseCase{
		productRepo: pRepo,
		log:         logger,
	}
}

func (uc *cartUseCase) AddItem(ctx context.Context, cart domain.Cart, productID, quantity int) (domain.Cart, error) {
	if productID <= 0 {
		return nil, fmt.Errorf("%w: invalid product ID", domain.ErrInvalidInput)
	}
	if quantity <= 0 {
		uc.log.Warnf("Use Case: Attempted to add product %d with non-positive quantity %d", productID, quantity)
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}
	if err := cart.Validate(); err != nil {
		uc.log.Warnf("Use Case: Rejected malformed cart on add: %v", err)
		return nil, err
	}
	if cart[productID] > domain.MaxItemQuantity-quantity {
		return nil, fmt.Errorf("%w: quantity of product %d would exceed %d", domain.ErrInvalidInput, productID, domain.MaxItemQuantity)
	}
	if _, err := uc.productRepo.GetProductByID(ctx, productID); err != nil {
		uc.log.Warnf("Use Case: Cannot add product %d to cart: %v", productID, err)
		return nil, err
	}

	out := cart.Clone()
	out[productID] += quantity
	uc.log.Infof("Use Case: Added %d x product %d to cart (now %d)", quantity, productID, out[productID])
	return out, nil
}

// UpdateItem sets the quantity of a product already in the cart. A quantity
// of zero or less removes it.
func (uc *cartUseCase) UpdateItem(ctx context.Context, cart domain.Cart, productID, quantity int) (domain.Cart, error) {
	if err := cart.Validate(); err != nil {
		uc.log.Warnf("Use Case: Rejected malformed cart on update: %v", err)
		return nil, err
	}
	if _, ok := cart[productID]; !ok {
		uc.log.Warnf("Use Case: Attempted to update product %d which is not in the cart", productID)
		return nil, fmt.Errorf("product %d in cart: %w", productID, domain.ErrNotFound)
	}
	if quantity <= 0 {
		return uc.RemoveItem(cart, productID)
	}
	if quantity > domain.MaxItemQuantity {
		return nil, fmt.Errorf("%w: quantity must not exceed %d", domain.ErrInvalidInput, domain.MaxItemQuantity)
	}
	if _, err := uc.productRepo.GetProductByID(ctx, productID); err != nil {
		uc.log.Warnf("Use Case: Cannot update product %d in cart: %v", productID, err)
		return nil, err
	}

	out := cart.Clone()
	out[productID] = quantity
	uc.log.Infof("Use Case: Set quantity of product %d in cart to %d", productID, quantity)
	return out, nil
}

func (uc *cartUseCase) RemoveItem(cart domain.Cart, productID int) (domain.Cart, error) {
	if _, ok := cart[productID]; !ok {
		uc.log.Warnf("Use Case: Attempted to remove product %d which is not in the cart", productID)
		return nil, fmt.Errorf("product %d in cart: %w", productID, domain.ErrNotFound)
	}

	out := cart.Clone()
	delete(out, productID)
	uc.log.Infof("Use Case: Removed product %d from cart", productID)
	return out, nil
}

// Details prices the cart against the current catalog. Entries whose product
// no longer exists, or whose quantity is not positive, are skipped.
func (uc *cartUseCase) Details(ctx context.Context, cart domain.Cart) (*domain.CartDetails, error) {
	details := &domain.CartDetails{Items: []domain.CartItem{}}
	if len(cart) == 0 {
		return details, nil
	}

	ids := make([]int, 0, len(cart))
	for id, qty := range cart {
		if id > 0 && qty > 0 {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	products, err := uc.productRepo.GetProductsByIDs(ctx, ids)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to load products for cart: %v", err)
		return nil, fmt.Errorf("could not load cart products: %w", err)
	}

	total := decimal.Zero
	for _, p := range products {
		qty := cart[p.ID]
		price := decimal.NewFromFloat(p.Price)
		subtotal := price.Mul(decimal.NewFromInt(int64(qty))).Round(2)
		total = total.Add(subtotal)

		details.Items = append(details.Items, domain.CartItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  qty,
			Subtotal:  subtotal.InexactFloat64(),
			ImageURL:  p.ImageURL,
		})
		details.ItemsCount += qty
	}
	details.Total = total.Round(2).InexactFloat64()

	if missing := len(ids) - len(products); missing > 0 {
		uc.log.Warnf("Use Case: %d cart entries reference products that no longer exist", missing)
	}
	return details, nil
}
