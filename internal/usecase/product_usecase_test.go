package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"shop_service/internal/domain"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductUseCase() (ProductUseCase, *mockProductRepo, *mockCategoryRepo) {
	logger, _ := test.NewNullLogger()
	pRepo := &mockProductRepo{}
	cRepo := &mockCategoryRepo{}
	return NewProductUseCase(pRepo, cRepo, logger), pRepo, cRepo
}

func TestCreateProduct_Success(t *testing.T) {
	uc, pRepo, cRepo := newProductUseCase()
	ctx := context.Background()

	input := &domain.Product{Name: " Widget ", Price: 9.99, CategoryID: 1}
	cRepo.On("GetCategoryByID", ctx, 1).Return(&domain.Category{ID: 1, Name: "Tools"}, nil)
	pRepo.On("CreateProduct", ctx, input).
		Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Product)
			p.ID = 5
			p.CreatedAt = time.Now().UTC()
		}).
		Return(input, nil)

	product, err := uc.CreateProduct(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 5, product.ID)
	assert.Equal(t, "Widget", product.Name)
	assert.False(t, product.CreatedAt.IsZero())
	pRepo.AssertExpectations(t)
	cRepo.AssertExpectations(t)
}

func TestCreateProduct_UnknownCategory(t *testing.T) {
	uc, pRepo, cRepo := newProductUseCase()
	ctx := context.Background()

	cRepo.On("GetCategoryByID", ctx, 42).Return(nil, fmt.Errorf("category with id 42: %w", domain.ErrNotFound))

	_, err := uc.CreateProduct(ctx, &domain.Product{Name: "Widget", Price: 9.99, CategoryID: 42})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	pRepo.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
}

func TestCreateProduct_Invalid(t *testing.T) {
	uc, pRepo, cRepo := newProductUseCase()

	tests := []struct {
		name    string
		product domain.Product
	}{
		{"empty name", domain.Product{Price: 1, CategoryID: 1}},
		{"negative price", domain.Product{Name: "Widget", Price: -1, CategoryID: 1}},
		{"no category", domain.Product{Name: "Widget", Price: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateProduct(context.Background(), &tt.product)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	pRepo.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	cRepo.AssertNotCalled(t, "GetCategoryByID", mock.Anything, mock.Anything)
}

func TestUpdateProduct_ChecksNewCategory(t *testing.T) {
	uc, pRepo, cRepo := newProductUseCase()
	ctx := context.Background()
	catID := 3

	cRepo.On("GetCategoryByID", ctx, catID).Return(nil, fmt.Errorf("category with id 3: %w", domain.ErrNotFound))

	_, err := uc.UpdateProduct(ctx, 5, domain.ProductUpdate{CategoryID: &catID})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	pRepo.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateProduct_Success(t *testing.T) {
	uc, pRepo, _ := newProductUseCase()
	ctx := context.Background()
	price := 19.5
	update := domain.ProductUpdate{Price: &price}

	pRepo.On("UpdateProduct", ctx, 5, update).Return(&domain.Product{ID: 5, Name: "Widget", Price: price, CategoryID: 1}, nil)

	product, err := uc.UpdateProduct(ctx, 5, update)
	require.NoError(t, err)
	assert.Equal(t, price, product.Price)
	pRepo.AssertExpectations(t)
}

func TestUpdateProduct_Rejections(t *testing.T) {
	uc, _, _ := newProductUseCase()
	negative := -5.0

	_, err := uc.UpdateProduct(context.Background(), 0, domain.ProductUpdate{Price: &negative})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateProduct(context.Background(), 5, domain.ProductUpdate{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateProduct(context.Background(), 5, domain.ProductUpdate{Price: &negative})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListProductsByCategory(t *testing.T) {
	uc, pRepo, cRepo := newProductUseCase()
	ctx := context.Background()

	cRepo.On("GetCategoryByID", ctx, 2).Return(&domain.Category{ID: 2, Name: "Toys"}, nil)
	pRepo.On("ListProductsByCategory", ctx, 2, 10, 0).Return([]domain.Product{{ID: 3, CategoryID: 2}}, nil)

	products, err := uc.ListProductsByCategory(ctx, 2, 10, 0)
	require.NoError(t, err)
	assert.Len(t, products, 1)

	cRepo.On("GetCategoryByID", ctx, 9).Return(nil, fmt.Errorf("category with id 9: %w", domain.ErrNotFound))
	_, err = uc.ListProductsByCategory(ctx, 9, 10, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.ListProductsByCategory(ctx, -1, 10, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetAndDeleteProduct_InvalidID(t *testing.T) {
	uc, _, _ := newProductUseCase()

	_, err := uc.GetProductByID(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.DeleteProduct(context.Background(), -2), domain.ErrInvalidInput)
}
