package httpapi

import (
	"errors"
	"net/http"

	"forms-server/internal/forms/domain"
	"forms-server/internal/infra/utils"
)

// The authenticating gateway terminates the token exchange and forwards
// the caller's identity in these headers.
const (
	clientIDHeader  = "X-Client-ID"
	userNameHeader  = "X-User-Name"
	userEmailHeader = "X-User-Email"
)

var errMissingPrincipal = errors.New("missing or malformed client identity")

// PrincipalFromRequest derives the authenticated principal from the
// gateway-supplied identity headers.
func PrincipalFromRequest(r *http.Request) (domain.Principal, error) {
	clientID := r.Header.Get(clientIDHeader)
	if clientID == "" || !utils.IsValidUUID(clientID) {
		return domain.Principal{}, errMissingPrincipal
	}

	return domain.Principal{
		ClientID: domain.ID(clientID),
		Name:     r.Header.Get(userNameHeader),
		Email:    r.Header.Get(userEmailHeader),
	}, nil
}
