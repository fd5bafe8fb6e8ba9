package domain

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	CategoryID  int       `json:"category_id"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// String renders the product for logs, e.g. <Product(id=5, name='Widget', price=9.99)>.
func (p Product) String() string {
	return fmt.Sprintf("<Product(id=%d, name='%s', price=%s)>",
		p.ID, p.Name, strconv.FormatFloat(p.Price, 'f', -1, 64))
}

// Validate checks the fields a caller supplies on create.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: product name cannot be empty", ErrInvalidInput)
	}
	if err := validatePrice(p.Price); err != nil {
		return err
	}
	if p.CategoryID <= 0 {
		return fmt.Errorf("%w: category_id must be positive", ErrInvalidInput)
	}
	return nil
}

func validatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return fmt.Errorf("%w: product price must be a finite number", ErrInvalidInput)
	}
	if price < 0 {
		return fmt.Errorf("%w: product price cannot be negative", ErrInvalidInput)
	}
	return nil
}

// ProductUpdate carries a partial update. Nil fields are left untouched.
// CreatedAt is immutable and has no counterpart here.
type ProductUpdate struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	CategoryID  *int     `json:"category_id"`
	ImageURL    *string  `json:"image_url"`
}

func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil && u.CategoryID == nil && u.ImageURL == nil
}

func (u ProductUpdate) Validate() error {
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return fmt.Errorf("%w: product name cannot be empty if provided for update", ErrInvalidInput)
	}
	if u.Price != nil {
		if err := validatePrice(*u.Price); err != nil {
			return err
		}
	}
	if u.CategoryID != nil && *u.CategoryID <= 0 {
		return fmt.Errorf("%w: category_id must be positive if provided for update", ErrInvalidInput)
	}
	return nil
}

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *Product) (*Product, error)
	GetProductByID(ctx context.Context, id int) (*Product, error)
	GetProductsByIDs(ctx context.Context, ids []int) ([]Product, error)

	UpdateProduct(ctx context.Context, id int, update ProductUpdate) (*Product, error)

	DeleteProduct(ctx context.Context, id int) error
	ListProducts(ctx context.Context, limit, offset int) ([]Product, error)
	ListProductsByCategory(ctx context.Context, categoryID, limit, offset int) ([]Product, error)
}
