//go:build wireinject
// +build wireinject

package wire

import (
	"forms-server/internal/forms/httpapi"
	"forms-server/internal/forms/persistence"
	"forms-server/internal/forms/usecases"

	"github.com/google/wire"
)

func InitializeFormController() (*httpapi.FormController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		provideCache,
		persistence.NewFormRepository,
		wire.Bind(new(usecases.FormRepository), new(*persistence.SimpleFormRepository)),
		persistence.NewDomainRepository,
		persistence.NewCachedDomainRepository,
		wire.Bind(new(usecases.DomainRepository), new(*persistence.CachedDomainRepository)),
		usecases.NewFormService,
		wire.Bind(new(usecases.FormService), new(*usecases.SimpleFormService)),
		httpapi.NewFormController,
	)
	return nil, nil
}

func InitializeDomainController() (*httpapi.DomainController, error) {
	wire.Build(
		provideAppConfig,
		provideDatabase,
		provideCache,
		persistence.NewDomainRepository,
		persistence.NewCachedDomainRepository,
		wire.Bind(new(usecases.DomainRepository), new(*persistence.CachedDomainRepository)),
		usecases.NewDomainService,
		wire.Bind(new(usecases.DomainService), new(*usecases.SimpleDomainService)),
		httpapi.NewDomainController,
	)
	return nil, nil
}
