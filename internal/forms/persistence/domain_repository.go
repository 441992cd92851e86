package persistence

import (
	"context"
	"errors"
	"fmt"

	"forms-server/internal/forms/domain"
	"forms-server/internal/forms/persistence/internal"
	"forms-server/internal/forms/usecases"
	"forms-server/internal/infra/sql"
)

func NewDomainRepository(orm sql.ORM) (*SimpleDomainRepository, error) {
	err := orm.AutoMigrate(&internal.Domain{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleDomainRepository{
		orm: orm,
	}, nil
}

var _ usecases.DomainRepository = (*SimpleDomainRepository)(nil)

type SimpleDomainRepository struct {
	orm sql.ORM
}

func (r *SimpleDomainRepository) Create(ctx context.Context, record domain.Domain) error {
	data := internal.FromDomain(record)
	err := r.orm.
		WithContext(ctx).
		Create(&data).
		Error()
	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return nil
}

func (r *SimpleDomainRepository) GetByID(ctx context.Context, id domain.ID) (domain.Domain, error) {
	var entity internal.Domain
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Domain{}, usecases.ErrDomainNotFound
	}

	if err != nil {
		return domain.Domain{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleDomainRepository) FindAllByClient(ctx context.Context, clientID domain.ID) ([]domain.Domain, error) {
	var entities []internal.Domain
	err := r.orm.
		WithContext(ctx).
		Where("client_id = ?", clientID.String()).
		Order("created_at ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Domain, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}
