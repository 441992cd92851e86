package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"forms-server/internal/forms/domain"
	"forms-server/internal/forms/httpapi/internal"
	"forms-server/internal/forms/usecases"
	"forms-server/internal/infra/httpserver"
)

const (
	listFormsErrMessage        = "failed to list forms"
	getFormErrMessage          = "failed to get form"
	createFormErrMessage       = "failed to create form"
	updateFormErrMessage       = "failed to update form"
	deleteFormErrMessage       = "failed to delete form"
	formNotFoundErrMessage     = "form not found"
	domainNotFoundErrMessage   = "domain not found"
	formAccessDeniedErrMessage = "access to form denied"
	missingPrincipalErrMessage = "client identity is required"
)

func NewFormController(service usecases.FormService) *FormController {
	return &FormController{
		service: service,
	}
}

var _ httpserver.Controller = &FormController{}

type FormController struct {
	service usecases.FormService
}

func (c *FormController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/forms", c.listForms())
	router.Handle("POST /v1/forms", c.createForm())
	router.Handle("GET /v1/forms/{id}", c.getForm())
	router.Handle("PUT /v1/forms/{id}", c.updateForm())
	router.Handle("DELETE /v1/forms/{id}", c.deleteForm())
}

func (c *FormController) listForms() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, err := PrincipalFromRequest(r)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusUnauthorized, missingPrincipalErrMessage)
			return
		}

		var forms []domain.Form
		if domainID := httpserver.GetQueryParam(r, "domainId"); domainID != "" {
			forms, err = c.service.ListFormsByDomain(r.Context(), principal, domain.ID(domainID))
		} else {
			forms, err = c.service.ListForms(r.Context(), principal)
		}
		if err != nil {
			slog.Error("listing forms", slog.String("error", err.Error()))
			http.Error(w, listFormsErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.FormListItemResponse, len(forms))
		for i, form := range forms {
			responses[i] = internal.ToFormListItemResponse(form)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}

func (c *FormController) getForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, err := PrincipalFromRequest(r)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusUnauthorized, missingPrincipalErrMessage)
			return
		}

		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "form id is required", http.StatusBadRequest)
			return
		}

		form, err := c.service.GetForm(r.Context(), principal, domain.ID(id))
		if errors.Is(err, usecases.ErrFormNotFound) {
			http.Error(w, formNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrFormAccessDenied) {
			http.Error(w, formAccessDeniedErrMessage, http.StatusForbidden)
			return
		}
		if err != nil {
			slog.Error("getting form", slog.String("error", err.Error()))
			http.Error(w, getFormErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFormResponse(form))
	}
}

func (c *FormController) createForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, err := PrincipalFromRequest(r)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusUnauthorized, missingPrincipalErrMessage)
			return
		}

		var body internal.FormRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Error("decoding create form request", slog.String("error", err.Error()))
			http.Error(w, createFormErrMessage, http.StatusBadRequest)
			return
		}

		id, err := c.service.CreateForm(r.Context(), principal, body.ToPayload())
		if errors.Is(err, usecases.ErrDomainNotFound) {
			http.Error(w, domainNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrInvalidForm) {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err != nil {
			slog.Error("creating form", slog.String("error", err.Error()))
			http.Error(w, createFormErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, id.String())
	}
}

func (c *FormController) updateForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, err := PrincipalFromRequest(r)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusUnauthorized, missingPrincipalErrMessage)
			return
		}

		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "form id is required", http.StatusBadRequest)
			return
		}

		var body internal.FormRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Error("decoding update form request", slog.String("error", err.Error()))
			http.Error(w, updateFormErrMessage, http.StatusBadRequest)
			return
		}

		err = c.service.UpdateForm(r.Context(), principal, domain.ID(id), body.ToPayload())
		if errors.Is(err, usecases.ErrFormNotFound) {
			http.Error(w, formNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrFormAccessDenied) {
			http.Error(w, formAccessDeniedErrMessage, http.StatusForbidden)
			return
		}
		if errors.Is(err, usecases.ErrInvalidForm) {
			httpserver.ReplyWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err != nil {
			slog.Error("updating form", slog.String("error", err.Error()))
			http.Error(w, updateFormErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *FormController) deleteForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal, err := PrincipalFromRequest(r)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusUnauthorized, missingPrincipalErrMessage)
			return
		}

		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "form id is required", http.StatusBadRequest)
			return
		}

		err = c.service.DeleteForm(r.Context(), principal, domain.ID(id))
		if errors.Is(err, usecases.ErrFormNotFound) {
			http.Error(w, formNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrFormAccessDenied) {
			http.Error(w, formAccessDeniedErrMessage, http.StatusForbidden)
			return
		}
		if err != nil {
			slog.Error("deleting form", slog.String("error", err.Error()))
			http.Error(w, deleteFormErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
