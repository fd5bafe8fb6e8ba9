package delivery

import (
	"context"

	"shop_service/internal/domain"

	"github.com/stretchr/testify/mock"
)

type mockProductUseCase struct {
	mock.Mock
}

func (m *mockProductUseCase) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, product)
	p, _ := args.Get(0).(*domain.Product)
	return p, args.Error(1)
}

func (m *mockProductUseCase) GetProductByID(ctx context.Context, id int) (*domain.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Product)
	return p, args.Error(1)
}

func (m *mockProductUseCase) UpdateProduct(ctx context.Context, id int, update domain.ProductUpdate) (*domain.Product, error) {
	args := m.Called(ctx, id, update)
	p, _ := args.Get(0).(*domain.Product)
	return p, args.Error(1)
}

func (m *mockProductUseCase) DeleteProduct(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProductUseCase) ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	args := m.Called(ctx, limit, offset)
	p, _ := args.Get(0).([]domain.Product)
	return p, args.Error(1)
}

func (m *mockProductUseCase) ListProductsByCategory(ctx context.Context, categoryID, limit, offset int) ([]domain.Product, error) {
	args := m.Called(ctx, categoryID, limit, offset)
	p, _ := args.Get(0).([]domain.Product)
	return p, args.Error(1)
}

type mockCategoryUseCase struct {
	mock.Mock
}

func (m *mockCategoryUseCase) CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	args := m.Called(ctx, category)
	c, _ := args.Get(0).(*domain.Category)
	return c, args.Error(1)
}

func (m *mockCategoryUseCase) GetCategoryByID(ctx context.Context, id int) (*domain.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*domain.Category)
	return c, args.Error(1)
}

func (m *mockCategoryUseCase) UpdateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	args := m.Called(ctx, category)
	c, _ := args.Get(0).(*domain.Category)
	return c, args.Error(1)
}

func (m *mockCategoryUseCase) DeleteCategory(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCategoryUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]domain.Category)
	return c, args.Error(1)
}

type mockCartUseCase struct {
	mock.Mock
}

func (m *mockCartUseCase) AddItem(ctx context.Context, cart domain.Cart, productID, quantity int) (domain.Cart, error) {
	args := m.Called(ctx, cart, productID, quantity)
	c, _ := args.Get(0).(domain.Cart)
	return c, args.Error(1)
}

func (m *mockCartUseCase) UpdateItem(ctx context.Context, cart domain.Cart, productID, quantity int) (domain.Cart, error) {
	args := m.Called(ctx, cart, productID, quantity)
	c, _ := args.Get(0).(domain.Cart)
	return c, args.Error(1)
}

func (m *mockCartUseCase) RemoveItem(cart domain.Cart, productID int) (domain.Cart, error) {
	args := m.Called(cart, productID)
	c, _ := args.Get(0).(domain.Cart)
	return c, args.Error(1)
}

func (m *mockCartUseCase) Details(ctx context.Context, cart domain.Cart) (*domain.CartDetails, error) {
	args := m.Called(ctx, cart)
	d, _ := args.Get(0).(*domain.CartDetails)
	return d, args.Error(1)
}

type stubPinger struct {
	err error
}

func (s stubPinger) PingContext(context.Context) error { return s.err }
