package httpapi_test

import (
	"net/http/httptest"

	"forms-server/internal/forms/domain"
	"forms-server/internal/forms/httpapi"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PrincipalFromRequest", func() {
	When("all identity headers are present", func() {
		It("builds the principal", func() {
			request := httptest.NewRequest("GET", "/v1/forms", nil)
			request.Header.Set("X-Client-ID", clientID)
			request.Header.Set("X-User-Name", "Jane Doe")
			request.Header.Set("X-User-Email", "jane@example.com")

			principal, err := httpapi.PrincipalFromRequest(request)
			Expect(err).NotTo(HaveOccurred())
			Expect(principal.ClientID).To(Equal(domain.ID(clientID)))
			Expect(principal.Name).To(Equal("Jane Doe"))
			Expect(principal.Email).To(Equal("jane@example.com"))
		})
	})

	When("the client header is absent", func() {
		It("fails", func() {
			request := httptest.NewRequest("GET", "/v1/forms", nil)

			_, err := httpapi.PrincipalFromRequest(request)
			Expect(err).To(HaveOccurred())
		})
	})

	When("the client header is not a UUID", func() {
		It("fails", func() {
			request := httptest.NewRequest("GET", "/v1/forms", nil)
			request.Header.Set("X-Client-ID", "not-a-uuid")

			_, err := httpapi.PrincipalFromRequest(request)
			Expect(err).To(HaveOccurred())
		})
	})
})
