package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shop_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type ProductUseCase interface {
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetProductByID(ctx context.Context, id int) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int, update domain.ProductUpdate) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int) error
	ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error)
	ListProductsByCategory(ctx context.Context, categoryID, limit, offset int) ([]domain.Product, error)
}

type productUseCase struct {
	productRepo  domain.ProductRepository
	categoryRepo domain.CategoryRepository
	log          *logrus.Logger
}

func NewProductUseCase(pRepo domain.ProductRepository, cRepo domain.CategoryRepository, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		log:          logger,
	}
}

// ensureCategory turns a missing category into ErrCategoryNotFound so callers
// see a referential error rather than a plain 404.
func (uc *productUseCase) ensureCategory(ctx context.Context, categoryID int) error {
	_, err := uc.categoryRepo.GetCategoryByID(ctx, categoryID)
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("category with id %d: %w", categoryID, domain.ErrCategoryNotFound)
	}
	return err
}

func (uc *productUseCase) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	product.Name = strings.TrimSpace(product.Name)
	if err := product.Validate(); err != nil {
		uc.log.Warnf("Use Case: Rejected product '%s': %v", product.Name, err)
		return nil, err
	}
	if err := uc.ensureCategory(ctx, product.CategoryID); err != nil {
		uc.log.Warnf("Use Case: Category ID %d check failed during product creation: %v", product.CategoryID, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Attempting to create product '%s'", product.Name)
	createdProduct, err := uc.productRepo.CreateProduct(ctx, product)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create product '%s': %v", product.Name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Created %s", createdProduct)
	return createdProduct, nil
}

func (uc *productUseCase) GetProductByID(ctx context.Context, id int) (*domain.Product, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted to get product with invalid ID: %d", id)
		return nil, fmt.Errorf("%w: invalid product ID", domain.ErrInvalidInput)
	}

	product, err := uc.productRepo.GetProductByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get product ID %d: %v", id, err)
		return nil, err
	}
	return product, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, id int, update domain.ProductUpdate) (*domain.Product, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted update with invalid product ID: %d", id)
		return nil, fmt.Errorf("%w: invalid product ID for update", domain.ErrInvalidInput)
	}
	if update.IsEmpty() {
		uc.log.Warnf("Use Case: Attempted update for product ID %d with no fields", id)
		return nil, fmt.Errorf("%w: no fields provided for update", domain.ErrInvalidInput)
	}
	if update.Name != nil {
		trimmed := strings.TrimSpace(*update.Name)
		update.Name = &trimmed
	}
	if err := update.Validate(); err != nil {
		uc.log.Warnf("Use Case: Rejected update for product ID %d: %v", id, err)
		return nil, err
	}
	if update.CategoryID != nil {
		if err := uc.ensureCategory(ctx, *update.CategoryID); err != nil {
			uc.log.Warnf("Use Case: Category ID %d check failed during product update for ID %d: %v", *update.CategoryID, id, err)
			return nil, err
		}
	}

	uc.log.Infof("Use Case: Attempting partial update for product ID %d", id)
	updatedProduct, err := uc.productRepo.UpdateProduct(ctx, id, update)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed partial update for product ID %d: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Updated %s", updatedProduct)
	return updatedProduct, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int) error {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted delete with invalid product ID: %d", id)
		return fmt.Errorf("%w: invalid product ID for delete", domain.ErrInvalidInput)
	}
	uc.log.Infof("Use Case: Attempting to delete product ID %d", id)
	if err := uc.productRepo.DeleteProduct(ctx, id); err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete product ID %d: %v", id, err)
		return err
	}
	uc.log.Infof("Use Case: Product deleted successfully for ID %d", id)
	return nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, limit, offset int) ([]domain.Product, error) {
	products, err := uc.productRepo.ListProducts(ctx, limit, offset)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products: %v", err)
		return nil, fmt.Errorf("could not retrieve products: %w", err)
	}
	uc.log.Infof("Use Case: Retrieved %d products (limit: %d, offset: %d)", len(products), limit, offset)
	return products, nil
}

// ListProductsByCategory fetches the products owned by a category. The
// category is checked first so an unknown id is a 404 instead of an empty list.
func (uc *productUseCase) ListProductsByCategory(ctx context.Context, categoryID, limit, offset int) ([]domain.Product, error) {
	if categoryID <= 0 {
		uc.log.Warnf("Use Case: Attempted list by category with invalid category ID: %d", categoryID)
		return nil, fmt.Errorf("%w: invalid category ID", domain.ErrInvalidInput)
	}
	if _, err := uc.categoryRepo.GetCategoryByID(ctx, categoryID); err != nil {
		uc.log.Warnf("Use Case: Category ID %d lookup failed: %v", categoryID, err)
		return nil, err
	}

	products, err := uc.productRepo.ListProductsByCategory(ctx, categoryID, limit, offset)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products for category %d: %v", categoryID, err)
		return nil, fmt.Errorf("could not retrieve products for category %d: %w", categoryID, err)
	}
	uc.log.Infof("Use Case: Retrieved %d products for category %d", len(products), categoryID)
	return products, nil
}
