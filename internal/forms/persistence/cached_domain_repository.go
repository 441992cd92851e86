package persistence

import (
	"context"
	"fmt"
	"time"

	"forms-server/internal/forms/domain"
	"forms-server/internal/forms/usecases"
	"forms-server/internal/infra/cache"
)

// Domain records are immutable, so their ownership can be cached for a
// long time without an invalidation protocol.
const _domainOwnerTTL = 1 * time.Hour

func NewCachedDomainRepository(inner *SimpleDomainRepository, store cache.Cache) *CachedDomainRepository {
	return &CachedDomainRepository{
		inner: inner,
		store: store,
	}
}

var _ usecases.DomainRepository = (*CachedDomainRepository)(nil)

// CachedDomainRepository decorates the domain repository with an ownership
// cache for the hot form-creation lookup path.
type CachedDomainRepository struct {
	inner *SimpleDomainRepository
	store cache.Cache
}

func (r *CachedDomainRepository) Create(ctx context.Context, record domain.Domain) error {
	if err := r.inner.Create(ctx, record); err != nil {
		return err
	}

	r.store.Set(ctx, ownerKey(record.ID), record.ClientID.String(), _domainOwnerTTL)

	return nil
}

func (r *CachedDomainRepository) GetByID(ctx context.Context, id domain.ID) (domain.Domain, error) {
	value, err := r.store.GetOrSet(ctx, ownerKey(id), _domainOwnerTTL, func() (any, error) {
		record, err := r.inner.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return record.ClientID.String(), nil
	})
	if err != nil {
		return domain.Domain{}, err
	}

	clientID, ok := value.(string)
	if !ok {
		return domain.Domain{}, fmt.Errorf("unexpected cached value for domain %s", id)
	}

	return domain.Domain{ID: id, ClientID: domain.ID(clientID)}, nil
}

func (r *CachedDomainRepository) FindAllByClient(ctx context.Context, clientID domain.ID) ([]domain.Domain, error) {
	return r.inner.FindAllByClient(ctx, clientID)
}

func ownerKey(id domain.ID) string {
	return "domain_owner:" + id.String()
}
