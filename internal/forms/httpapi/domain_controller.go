package httpapi

import (
	"log/slog"
	"net/http"

	"forms-server/internal/forms/httpapi/internal"
	"forms-server/internal/forms/usecases"
	"forms-server/internal/infra/httpserver"
)

const (
	createDomainErrMessage = "failed to create domain"
	listDomainsErrMessage  = "failed to list domains"
)

func NewDomainController(service usecases.DomainService) *DomainController {
	return &DomainController{
		service: service,
	}
}

var _ httpserver.Controller = &DomainController{}

type DomainController struct {
	service usecases.DomainService
}

func (c *DomainController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/domains", c.listDomains())
	router.Handle("POST /v1/domains", c.createDomain())
}

func (c *DomainController) createDomain() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, err := PrincipalFromRequest(r)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusUnauthorized, missingPrincipalErrMessage)
			return
		}

		id, err := c.service.CreateDomain(r.Context(), principal)
		if err != nil {
			slog.Error("creating domain", slog.String("error", err.Error()))
			http.Error(w, createDomainErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, id.String())
	}
}

func (c *DomainController) listDomains() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, err := PrincipalFromRequest(r)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusUnauthorized, missingPrincipalErrMessage)
			return
		}

		records, err := c.service.ListDomains(r.Context(), principal)
		if err != nil {
			slog.Error("listing domains", slog.String("error", err.Error()))
			http.Error(w, listDomainsErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.DomainResponse, len(records))
		for i, record := range records {
			responses[i] = internal.ToDomainResponse(record)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}
