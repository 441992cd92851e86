package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"forms-server/internal/forms/domain"
)

//go:generate mockgen -source=domain_service.go -destination=../../../test/unit/doubles/forms/usecases/domain_service_mock.go -package=usecases

var (
	ErrDomainNotFound = errors.New("domain not found")
)

type DomainService interface {
	CreateDomain(ctx context.Context, principal domain.Principal) (domain.ID, error)
	ListDomains(ctx context.Context, principal domain.Principal) ([]domain.Domain, error)
}

type DomainRepository interface {
	Create(ctx context.Context, record domain.Domain) error
	GetByID(ctx context.Context, id domain.ID) (domain.Domain, error)
	FindAllByClient(ctx context.Context, clientID domain.ID) ([]domain.Domain, error)
}

func NewDomainService(repository DomainRepository) *SimpleDomainService {
	return &SimpleDomainService{
		repository: repository,
	}
}

var _ DomainService = &SimpleDomainService{}

type SimpleDomainService struct {
	repository DomainRepository
}

func (s *SimpleDomainService) CreateDomain(ctx context.Context, principal domain.Principal) (domain.ID, error) {
	record := domain.NewDomain(principal.ClientID)

	if err := s.repository.Create(ctx, record); err != nil {
		slog.Error("creating domain", slog.String("error", err.Error()))
		return "", fmt.Errorf("creating domain: %w", err)
	}

	slog.Info("domain created successfully",
		slog.String("id", record.ID.String()),
		slog.String("client_id", record.ClientID.String()))

	return record.ID, nil
}

func (s *SimpleDomainService) ListDomains(ctx context.Context, principal domain.Principal) ([]domain.Domain, error) {
	records, err := s.repository.FindAllByClient(ctx, principal.ClientID)
	if err != nil {
		slog.Error("listing domains", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing domains: %w", err)
	}

	return records, nil
}
