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

func NewFormRepository(orm sql.ORM) (*SimpleFormRepository, error) {
	err := orm.AutoMigrate(&internal.Form{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleFormRepository{
		orm: orm,
	}, nil
}

var _ usecases.FormRepository = (*SimpleFormRepository)(nil)

type SimpleFormRepository struct {
	orm sql.ORM
}

func (r *SimpleFormRepository) Create(ctx context.Context, form domain.Form) error {
	data := internal.FromForm(form)
	err := r.orm.
		WithContext(ctx).
		Create(&data).
		Error()
	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return nil
}

func (r *SimpleFormRepository) GetByID(ctx context.Context, id domain.ID) (domain.Form, error) {
	var entity internal.Form
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Form{}, usecases.ErrFormNotFound
	}

	if err != nil {
		return domain.Form{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleFormRepository) FindAllByClient(ctx context.Context, clientID domain.ID) ([]domain.Form, error) {
	var entities []internal.Form
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Form{}).
		Select(internal.ProjectionColumns).
		Where("client_id = ?", clientID.String()).
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return sortedForms(entities), nil
}

func (r *SimpleFormRepository) FindAllByClientAndDomain(ctx context.Context, clientID, domainID domain.ID) ([]domain.Form, error) {
	var entities []internal.Form
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Form{}).
		Select(internal.ProjectionColumns).
		Where("client_id = ? AND domain_id = ?", clientID.String(), domainID.String()).
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return sortedForms(entities), nil
}

// Update rewrites every column of an existing form. It never inserts: a
// form that vanished between the existence check and the write is reported
// as not found instead of being recreated.
func (r *SimpleFormRepository) Update(ctx context.Context, form domain.Form) error {
	data := internal.FromForm(form)
	result := r.orm.
		WithContext(ctx).
		Model(&internal.Form{}).
		Where("id = ?", data.ID).
		Select("*").
		Updates(data)
	if err := result.Error(); err != nil {
		return fmt.Errorf("database update: %w", err)
	}
	if result.RowsAffected() == 0 {
		return usecases.ErrFormNotFound
	}

	return nil
}

func (r *SimpleFormRepository) Delete(ctx context.Context, id domain.ID) error {
	result := r.orm.
		WithContext(ctx).
		Delete(&internal.Form{}, "id = ?", id.String())
	if err := result.Error(); err != nil {
		return fmt.Errorf("database delete: %w", err)
	}
	if result.RowsAffected() == 0 {
		return usecases.ErrFormNotFound
	}

	return nil
}

// Transaction runs fc against a repository bound to a single database
// transaction, so read-check-then-write sequences are atomic.
func (r *SimpleFormRepository) Transaction(ctx context.Context, fc func(tx usecases.FormRepository) error) error {
	return r.orm.Transaction(func(tx sql.ORM) error {
		return fc(&SimpleFormRepository{orm: tx})
	})
}

// sortedForms maps entities to domain forms and applies the listing order.
// Ordering happens here rather than in SQL because the tie-break key lives
// inside the name JSON document and the json operators differ between the
// postgres and sqlite drivers.
func sortedForms(entities []internal.Form) []domain.Form {
	result := make([]domain.Form, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	domain.SortForms(result)

	return result
}
