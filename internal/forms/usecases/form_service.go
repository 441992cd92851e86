package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"forms-server/internal/forms/domain"
)

//go:generate mockgen -source=form_service.go -destination=../../../test/unit/doubles/forms/usecases/form_service_mock.go -package=usecases

var (
	ErrFormNotFound     = errors.New("form not found")
	ErrFormAccessDenied = errors.New("form belongs to another client")
	ErrInvalidForm      = errors.New("invalid form")
)

// FormPayload carries the client-settable fields of a form. The owning
// client is never part of the payload; it is derived from the domain.
type FormPayload struct {
	DomainID    domain.ID
	Name        map[string]string
	ModelType   string
	SubType     *string
	Content     map[string]any
	Translation map[string]map[string]string
	Sorting     *string
}

type FormService interface {
	ListForms(ctx context.Context, principal domain.Principal) ([]domain.Form, error)
	ListFormsByDomain(ctx context.Context, principal domain.Principal, domainID domain.ID) ([]domain.Form, error)
	GetForm(ctx context.Context, principal domain.Principal, id domain.ID) (domain.Form, error)
	CreateForm(ctx context.Context, principal domain.Principal, payload FormPayload) (domain.ID, error)
	UpdateForm(ctx context.Context, principal domain.Principal, id domain.ID, payload FormPayload) error
	DeleteForm(ctx context.Context, principal domain.Principal, id domain.ID) error
}

type FormRepository interface {
	Create(ctx context.Context, form domain.Form) error
	GetByID(ctx context.Context, id domain.ID) (domain.Form, error)
	FindAllByClient(ctx context.Context, clientID domain.ID) ([]domain.Form, error)
	FindAllByClientAndDomain(ctx context.Context, clientID, domainID domain.ID) ([]domain.Form, error)
	Update(ctx context.Context, form domain.Form) error
	Delete(ctx context.Context, id domain.ID) error
	Transaction(ctx context.Context, fc func(tx FormRepository) error) error
}

func NewFormService(repository FormRepository, domainRepository DomainRepository) *SimpleFormService {
	return &SimpleFormService{
		repository:       repository,
		domainRepository: domainRepository,
	}
}

var _ FormService = &SimpleFormService{}

type SimpleFormService struct {
	repository       FormRepository
	domainRepository DomainRepository
}

func (s *SimpleFormService) ListForms(ctx context.Context, principal domain.Principal) ([]domain.Form, error) {
	forms, err := s.repository.FindAllByClient(ctx, principal.ClientID)
	if err != nil {
		slog.Error("listing forms", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing forms: %w", err)
	}

	return forms, nil
}

func (s *SimpleFormService) ListFormsByDomain(ctx context.Context, principal domain.Principal, domainID domain.ID) ([]domain.Form, error) {
	forms, err := s.repository.FindAllByClientAndDomain(ctx, principal.ClientID, domainID)
	if err != nil {
		slog.Error("listing forms by domain", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing forms by domain: %w", err)
	}

	return forms, nil
}

func (s *SimpleFormService) GetForm(ctx context.Context, principal domain.Principal, id domain.ID) (domain.Form, error) {
	form, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrFormNotFound) {
			return domain.Form{}, ErrFormNotFound
		}
		slog.Error("getting form", slog.String("error", err.Error()))
		return domain.Form{}, fmt.Errorf("getting form: %w", err)
	}

	if err := AuthorizeFormAccess(principal, form); err != nil {
		return domain.Form{}, err
	}

	return form, nil
}

func (s *SimpleFormService) CreateForm(ctx context.Context, principal domain.Principal, payload FormPayload) (domain.ID, error) {
	// The create path is strict: an unknown domain and a domain owned by
	// another client are indistinguishable to the caller.
	owner, err := s.domainRepository.GetByID(ctx, payload.DomainID)
	if err != nil {
		if errors.Is(err, ErrDomainNotFound) {
			return "", ErrDomainNotFound
		}
		slog.Error("resolving domain", slog.String("error", err.Error()))
		return "", fmt.Errorf("resolving domain: %w", err)
	}
	if owner.ClientID != principal.ClientID {
		return "", ErrDomainNotFound
	}

	form, err := buildForm(payload, owner.ClientID)
	if err != nil {
		return "", err
	}

	if err := s.repository.Create(ctx, form); err != nil {
		slog.Error("creating form", slog.String("error", err.Error()))
		return "", fmt.Errorf("creating form: %w", err)
	}

	slog.Info("form created successfully",
		slog.String("id", form.ID.String()),
		slog.String("client_id", form.ClientID.String()))

	return form.ID, nil
}

func (s *SimpleFormService) UpdateForm(ctx context.Context, principal domain.Principal, id domain.ID, payload FormPayload) error {
	replacement, err := buildForm(payload, principal.ClientID)
	if err != nil {
		return err
	}

	err = s.repository.Transaction(ctx, func(tx FormRepository) error {
		existing, err := tx.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, ErrFormNotFound) {
				return ErrFormNotFound
			}
			return fmt.Errorf("getting form: %w", err)
		}

		if err := AuthorizeFormAccess(principal, existing); err != nil {
			return err
		}

		existing.Replace(replacement)
		if err := tx.Update(ctx, existing); err != nil {
			return fmt.Errorf("updating form: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrFormNotFound) || errors.Is(err, ErrFormAccessDenied) {
			return err
		}
		slog.Error("updating form", slog.String("error", err.Error()))
		return err
	}

	slog.Info("form updated successfully", slog.String("id", id.String()))
	return nil
}

func (s *SimpleFormService) DeleteForm(ctx context.Context, principal domain.Principal, id domain.ID) error {
	err := s.repository.Transaction(ctx, func(tx FormRepository) error {
		existing, err := tx.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, ErrFormNotFound) {
				return ErrFormNotFound
			}
			return fmt.Errorf("getting form: %w", err)
		}

		if err := AuthorizeFormAccess(principal, existing); err != nil {
			return err
		}

		if err := tx.Delete(ctx, id); err != nil {
			return fmt.Errorf("deleting form: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrFormNotFound) || errors.Is(err, ErrFormAccessDenied) {
			return err
		}
		slog.Error("deleting form", slog.String("error", err.Error()))
		return err
	}

	slog.Info("form deleted successfully", slog.String("id", id.String()))
	return nil
}

func buildForm(payload FormPayload, clientID domain.ID) (domain.Form, error) {
	form, err := domain.NewFormBuilder().
		WithDomainID(payload.DomainID).
		WithClientID(clientID).
		WithName(payload.Name).
		WithModelType(payload.ModelType).
		WithSubType(payload.SubType).
		WithContent(payload.Content).
		WithTranslation(payload.Translation).
		WithSorting(payload.Sorting).
		Build()
	if err != nil {
		return domain.Form{}, fmt.Errorf("%w: %s", ErrInvalidForm, err)
	}

	return form, nil
}
