package service

import (
	"context"

	"github.com/rafaelleal24/catalog/internal/core/domain"
	"github.com/rafaelleal24/catalog/internal/core/dto"
	"github.com/rafaelleal24/catalog/internal/core/logger"
	"github.com/rafaelleal24/catalog/internal/core/port"
	"github.com/rafaelleal24/catalog/internal/core/serviceerrors"
)

const noFieldsToUpdate = "No valid fields provided for update"

type ProductService struct {
	productRepository port.ProductPort
	broker            port.BrokerPort
}

func NewProductService(productRepository port.ProductPort, broker port.BrokerPort) *ProductService {
	return &ProductService{productRepository: productRepository, broker: broker}
}

// CreateProduct stores a new product. The provider reference is format-checked only.
func (s *ProductService) CreateProduct(ctx context.Context, request *dto.CreateProductRequest) (*domain.Product, error) {
	product := request.ToDomain()

	if err := s.productRepository.Create(ctx, product); err != nil {
		logger.Error(ctx, "product: create failed", err, map[string]any{
			"name":        product.Name,
			"provider_id": product.ProviderID,
		})
		return nil, err
	}

	logger.Info(ctx, "Product created", map[string]any{"product_id": product.ID})
	publishChange(ctx, s.broker, domain.NewProductEvent(domain.ChangeCreated, product))
	return product, nil
}

func (s *ProductService) List(ctx context.Context, query domain.ProductQuery) (*domain.PageResult[domain.Product], error) {
	result, err := s.productRepository.FindPage(ctx, query)
	if err != nil {
		logger.Error(ctx, "product: list failed", err, map[string]any{
			"page":  query.Page.Number,
			"limit": query.Page.Size,
		})
		return nil, err
	}
	return result, nil
}

func (s *ProductService) GetByID(ctx context.Context, id domain.ID, opts domain.FindOptions) (*domain.Product, error) {
	return s.productRepository.FindByID(ctx, id, opts)
}

// UpdateProduct applies a partial update. PUT and PATCH both end up here.
func (s *ProductService) UpdateProduct(ctx context.Context, id domain.ID, request *dto.UpdateProductRequest) (*domain.Product, error) {
	patch := request.ToPatch()
	if patch.IsEmpty() {
		return nil, serviceerrors.NewInvalidRequestError(noFieldsToUpdate)
	}

	product, err := s.productRepository.Update(ctx, id, patch)
	if err != nil {
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			logger.Error(ctx, "product: update failed", err, map[string]any{"product_id": id})
		}
		return nil, err
	}

	logger.Info(ctx, "Product updated", map[string]any{"product_id": id})
	publishChange(ctx, s.broker, domain.NewProductEvent(domain.ChangeUpdated, product))
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id domain.ID) (*domain.Product, error) {
	product, err := s.productRepository.Delete(ctx, id)
	if err != nil {
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			logger.Error(ctx, "product: delete failed", err, map[string]any{"product_id": id})
		}
		return nil, err
	}

	logger.Info(ctx, "Product deleted", map[string]any{"product_id": id})
	publishChange(ctx, s.broker, domain.NewProductEvent(domain.ChangeDeleted, product))
	return product, nil
}
