package httpapi_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"forms-server/internal/forms/domain"
	"forms-server/internal/forms/httpapi"
	mockusecases "forms-server/test/unit/doubles/forms/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("DomainController", func() {
	var controller *httpapi.DomainController
	var mockService *mockusecases.MockDomainService
	var ctrl *gomock.Controller
	var recorder *httptest.ResponseRecorder
	var router *http.ServeMux

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockDomainService(ctrl)
		controller = httpapi.NewDomainController(mockService)
		recorder = httptest.NewRecorder()
		router = http.NewServeMux()
		controller.AddRoutes(router)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	principal := domain.Principal{ClientID: domain.ID(clientID)}

	authenticated := func(request *http.Request) *http.Request {
		request.Header.Set("X-Client-ID", clientID)
		return request
	}

	Context("createDomain", func() {
		When("the caller is identified", func() {
			It("replies created with the new id", func() {
				mockService.EXPECT().
					CreateDomain(gomock.Any(), principal).
					Return(domain.ID(domainID), nil)

				request := authenticated(httptest.NewRequest("POST", "/v1/domains", nil))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusCreated))

				var response string
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response).To(Equal(domainID))
			})
		})

		When("the caller is not identified", func() {
			It("replies unauthorized", func() {
				request := httptest.NewRequest("POST", "/v1/domains", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("the service fails", func() {
			It("replies with internal server error", func() {
				mockService.EXPECT().
					CreateDomain(gomock.Any(), principal).
					Return(domain.ID(""), errors.New("disk full"))

				request := authenticated(httptest.NewRequest("POST", "/v1/domains", nil))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Context("listDomains", func() {
		When("the caller owns domains", func() {
			It("returns them", func() {
				mockService.EXPECT().
					ListDomains(gomock.Any(), principal).
					Return([]domain.Domain{{ID: domain.ID(domainID), ClientID: domain.ID(clientID)}}, nil)

				request := authenticated(httptest.NewRequest("GET", "/v1/domains", nil))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response []map[string]any
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response).To(HaveLen(1))
				Expect(response[0]).To(HaveKeyWithValue("id", domainID))
				Expect(response[0]).To(HaveKeyWithValue("clientId", clientID))
			})
		})
	})
})
