package httpapi_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"forms-server/internal/forms/domain"
	"forms-server/internal/forms/httpapi"
	"forms-server/internal/forms/usecases"
	mockusecases "forms-server/test/unit/doubles/forms/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

const (
	clientID = "8eb48c28-7396-4bf5-bba0-e3fa9ba0fbbe"
	domainID = "f49c1ba3-6a07-48e8-9859-cc0ca4f79bc8"
	formID   = "2c5f3a4f-8d7a-44b8-b13c-dbe2a5f2a3e4"
)

var _ = Describe("FormController", func() {
	var controller *httpapi.FormController
	var mockService *mockusecases.MockFormService
	var ctrl *gomock.Controller
	var recorder *httptest.ResponseRecorder
	var router *http.ServeMux

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockFormService(ctrl)
		controller = httpapi.NewFormController(mockService)
		recorder = httptest.NewRecorder()
		router = http.NewServeMux()
		controller.AddRoutes(router)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	authenticated := func(request *http.Request) *http.Request {
		request.Header.Set("X-Client-ID", clientID)
		return request
	}

	principal := domain.Principal{ClientID: domain.ID(clientID)}

	sampleForm := func() domain.Form {
		sorting := "a1"
		return domain.Form{
			ID:          domain.ID(formID),
			DomainID:    domain.ID(domainID),
			ClientID:    domain.ID(clientID),
			Name:        map[string]string{"en": "asset form"},
			ModelType:   "asset",
			Content:     map[string]any{"layout": "vertical"},
			Translation: map[string]map[string]string{"en": {"label": "Asset"}},
			Sorting:     &sorting,
		}
	}

	Context("listForms", func() {
		When("the caller is not identified", func() {
			It("replies unauthorized", func() {
				request := httptest.NewRequest("GET", "/v1/forms", nil)

				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("listing all forms of the client", func() {
			It("returns the projection without content and translation", func() {
				mockService.EXPECT().
					ListForms(gomock.Any(), principal).
					Return([]domain.Form{sampleForm()}, nil)

				request := authenticated(httptest.NewRequest("GET", "/v1/forms", nil))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response []map[string]any
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response).To(HaveLen(1))
				Expect(response[0]).To(HaveKeyWithValue("id", formID))
				Expect(response[0]).To(HaveKeyWithValue("domainId", domainID))
				Expect(response[0]).To(HaveKeyWithValue("modelType", "asset"))
				Expect(response[0]).To(HaveKeyWithValue("sorting", "a1"))
				Expect(response[0]).NotTo(HaveKey("content"))
				Expect(response[0]).NotTo(HaveKey("translation"))
			})
		})

		When("a domain filter is present", func() {
			It("delegates to the domain-scoped listing", func() {
				mockService.EXPECT().
					ListFormsByDomain(gomock.Any(), principal, domain.ID(domainID)).
					Return([]domain.Form{}, nil)

				request := authenticated(httptest.NewRequest("GET", "/v1/forms?domainId="+domainID, nil))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))
				Expect(strings.TrimSpace(recorder.Body.String())).To(Equal("[]"))
			})
		})

		When("the service fails", func() {
			It("replies with internal server error", func() {
				mockService.EXPECT().
					ListForms(gomock.Any(), principal).
					Return(nil, errors.New("connection reset"))

				request := authenticated(httptest.NewRequest("GET", "/v1/forms", nil))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Context("getForm", func() {
		When("the form exists and belongs to the caller", func() {
			It("returns the full representation", func() {
				mockService.EXPECT().
					GetForm(gomock.Any(), principal, domain.ID(formID)).
					Return(sampleForm(), nil)

				request := authenticated(httptest.NewRequest("GET", "/v1/forms/"+formID, nil))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response map[string]any
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response).To(HaveKeyWithValue("id", formID))
				Expect(response).To(HaveKey("content"))
				Expect(response).To(HaveKey("translation"))
			})
		})

		When("the form does not exist", func() {
			It("replies not found", func() {
				mockService.EXPECT().
					GetForm(gomock.Any(), principal, domain.ID(formID)).
					Return(domain.Form{}, usecases.ErrFormNotFound)

				request := authenticated(httptest.NewRequest("GET", "/v1/forms/"+formID, nil))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the form belongs to another client", func() {
			It("replies forbidden", func() {
				mockService.EXPECT().
					GetForm(gomock.Any(), principal, domain.ID(formID)).
					Return(domain.Form{}, usecases.ErrFormAccessDenied)

				request := authenticated(httptest.NewRequest("GET", "/v1/forms/"+formID, nil))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusForbidden))
			})
		})
	})

	Context("createForm", func() {
		body := `{"domainId":"` + domainID + `","name":{"en":"asset form"},"modelType":"asset"}`

		When("the payload is valid", func() {
			It("replies created with the new id", func() {
				mockService.EXPECT().
					CreateForm(gomock.Any(), principal, gomock.Any()).
					Return(domain.ID(formID), nil)

				request := authenticated(httptest.NewRequest("POST", "/v1/forms", strings.NewReader(body)))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusCreated))

				var response string
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response).To(Equal(formID))
			})
		})

		When("the domain is unknown or owned by another client", func() {
			It("replies not found", func() {
				mockService.EXPECT().
					CreateForm(gomock.Any(), principal, gomock.Any()).
					Return(domain.ID(""), usecases.ErrDomainNotFound)

				request := authenticated(httptest.NewRequest("POST", "/v1/forms", strings.NewReader(body)))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the payload is invalid", func() {
			It("replies bad request", func() {
				mockService.EXPECT().
					CreateForm(gomock.Any(), principal, gomock.Any()).
					Return(domain.ID(""), usecases.ErrInvalidForm)

				request := authenticated(httptest.NewRequest("POST", "/v1/forms", strings.NewReader(body)))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the body is not valid JSON", func() {
			It("replies bad request without calling the service", func() {
				request := authenticated(httptest.NewRequest("POST", "/v1/forms", strings.NewReader("{not json")))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Context("updateForm", func() {
		body := `{"domainId":"` + domainID + `","name":{"en":"renamed"},"modelType":"asset"}`

		When("the update succeeds", func() {
			It("replies no content", func() {
				mockService.EXPECT().
					UpdateForm(gomock.Any(), principal, domain.ID(formID), gomock.Any()).
					Return(nil)

				request := authenticated(httptest.NewRequest("PUT", "/v1/forms/"+formID, strings.NewReader(body)))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNoContent))
				Expect(recorder.Body.Len()).To(BeZero())
			})
		})

		When("the form belongs to another client", func() {
			It("replies forbidden", func() {
				mockService.EXPECT().
					UpdateForm(gomock.Any(), principal, domain.ID(formID), gomock.Any()).
					Return(usecases.ErrFormAccessDenied)

				request := authenticated(httptest.NewRequest("PUT", "/v1/forms/"+formID, strings.NewReader(body)))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusForbidden))
			})
		})

		When("the form does not exist", func() {
			It("replies not found", func() {
				mockService.EXPECT().
					UpdateForm(gomock.Any(), principal, domain.ID(formID), gomock.Any()).
					Return(usecases.ErrFormNotFound)

				request := authenticated(httptest.NewRequest("PUT", "/v1/forms/"+formID, strings.NewReader(body)))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Context("deleteForm", func() {
		When("the delete succeeds", func() {
			It("replies no content", func() {
				mockService.EXPECT().
					DeleteForm(gomock.Any(), principal, domain.ID(formID)).
					Return(nil)

				request := authenticated(httptest.NewRequest("DELETE", "/v1/forms/"+formID, nil))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNoContent))
			})
		})

		When("the form does not exist", func() {
			It("replies not found", func() {
				mockService.EXPECT().
					DeleteForm(gomock.Any(), principal, domain.ID(formID)).
					Return(usecases.ErrFormNotFound)

				request := authenticated(httptest.NewRequest("DELETE", "/v1/forms/"+formID, nil))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the form belongs to another client", func() {
			It("replies forbidden", func() {
				mockService.EXPECT().
					DeleteForm(gomock.Any(), principal, domain.ID(formID)).
					Return(usecases.ErrFormAccessDenied)

				request := authenticated(httptest.NewRequest("DELETE", "/v1/forms/"+formID, nil))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusForbidden))
			})
		})
	})
})
