package service

import (
	"context"

	"github.com/rafaelleal24/catalog/internal/core/domain"
	"github.com/rafaelleal24/catalog/internal/core/dto"
	"github.com/rafaelleal24/catalog/internal/core/logger"
	"github.com/rafaelleal24/catalog/internal/core/port"
	"github.com/rafaelleal24/catalog/internal/core/serviceerrors"
)

const ProviderNameConflict = "Provider with this name already exists"

type ProviderService struct {
	providerRepository port.ProviderPort
	broker             port.BrokerPort
}

func NewProviderService(providerRepository port.ProviderPort, broker port.BrokerPort) *ProviderService {
	return &ProviderService{providerRepository: providerRepository, broker: broker}
}

// ensureNameAvailable is a pre-check only; the unique index on name is what actually
// enforces uniqueness under concurrent writes.
func (s *ProviderService) ensureNameAvailable(ctx context.Context, name string, excludeID domain.ID) error {
	exists, err := s.providerRepository.ExistsByName(ctx, name, excludeID)
	if err != nil {
		logger.Error(ctx, "provider: name lookup failed", err, map[string]any{"name": name})
		return err
	}
	if exists {
		return serviceerrors.NewConflictError(ProviderNameConflict)
	}
	return nil
}

func (s *ProviderService) CreateProvider(ctx context.Context, request *dto.CreateProviderRequest) (*domain.Provider, error) {
	provider := request.ToDomain()

	if err := s.ensureNameAvailable(ctx, provider.Name, ""); err != nil {
		return nil, err
	}

	if err := s.providerRepository.Create(ctx, provider); err != nil {
		if !serviceerrors.IsOfKind(err, serviceerrors.KindConflict) {
			logger.Error(ctx, "provider: create failed", err, map[string]any{"name": provider.Name})
		}
		return nil, err
	}

	logger.Info(ctx, "Provider created", map[string]any{"provider_id": provider.ID})
	publishChange(ctx, s.broker, domain.NewProviderEvent(domain.ChangeCreated, provider))
	return provider, nil
}

func (s *ProviderService) List(ctx context.Context, query domain.ProviderQuery) (*domain.PageResult[domain.Provider], error) {
	result, err := s.providerRepository.FindPage(ctx, query)
	if err != nil {
		logger.Error(ctx, "provider: list failed", err, map[string]any{
			"page":  query.Page.Number,
			"limit": query.Page.Size,
		})
		return nil, err
	}
	return result, nil
}

func (s *ProviderService) GetByID(ctx context.Context, id domain.ID, opts domain.FindOptions) (*domain.Provider, error) {
	return s.providerRepository.FindByID(ctx, id, opts)
}

// UpdateProvider applies a partial update. Name uniqueness is only re-checked when the
// name is part of the patch.
func (s *ProviderService) UpdateProvider(ctx context.Context, id domain.ID, request *dto.UpdateProviderRequest) (*domain.Provider, error) {
	patch := request.ToPatch()
	if patch.IsEmpty() {
		return nil, serviceerrors.NewInvalidRequestError(noFieldsToUpdate)
	}

	if patch.Name != nil {
		if err := s.ensureNameAvailable(ctx, *patch.Name, id); err != nil {
			return nil, err
		}
	}

	provider, err := s.providerRepository.Update(ctx, id, patch)
	if err != nil {
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) && !serviceerrors.IsOfKind(err, serviceerrors.KindConflict) {
			logger.Error(ctx, "provider: update failed", err, map[string]any{"provider_id": id})
		}
		return nil, err
	}

	logger.Info(ctx, "Provider updated", map[string]any{"provider_id": id})
	publishChange(ctx, s.broker, domain.NewProviderEvent(domain.ChangeUpdated, provider))
	return provider, nil
}

// ReplaceProvider overwrites every field of an existing provider.
func (s *ProviderService) ReplaceProvider(ctx context.Context, id domain.ID, request *dto.CreateProviderRequest) (*domain.Provider, error) {
	existing, err := s.providerRepository.FindByID(ctx, id, domain.FindOptions{})
	if err != nil {
		return nil, err
	}

	if err := s.ensureNameAvailable(ctx, *request.Name, id); err != nil {
		return nil, err
	}

	replacement := request.ToDomain()
	replacement.ID = id
	replacement.CreatedAt = existing.CreatedAt

	provider, err := s.providerRepository.Replace(ctx, replacement)
	if err != nil {
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) && !serviceerrors.IsOfKind(err, serviceerrors.KindConflict) {
			logger.Error(ctx, "provider: replace failed", err, map[string]any{"provider_id": id})
		}
		return nil, err
	}

	logger.Info(ctx, "Provider replaced", map[string]any{"provider_id": id})
	publishChange(ctx, s.broker, domain.NewProviderEvent(domain.ChangeUpdated, provider))
	return provider, nil
}

// DeleteProvider removes the provider. Products still referencing it are left as they are.
func (s *ProviderService) DeleteProvider(ctx context.Context, id domain.ID) (*domain.Provider, error) {
	provider, err := s.providerRepository.Delete(ctx, id)
	if err != nil {
		if !serviceerrors.IsOfKind(err, serviceerrors.KindNotFound) {
			logger.Error(ctx, "provider: delete failed", err, map[string]any{"provider_id": id})
		}
		return nil, err
	}

	logger.Info(ctx, "Provider deleted", map[string]any{"provider_id": id})
	publishChange(ctx, s.broker, domain.NewProviderEvent(domain.ChangeDeleted, provider))
	return provider, nil
}
