package domain

import (
	"time"

	"forms-server/internal/infra/utils"
)

// Domain is a sub-scope owned by exactly one tenant. Forms belong to a
// domain; the owning client is resolved through it at form creation time.
// Domain records are immutable once created.
type Domain struct {
	ID        ID
	ClientID  ID
	CreatedAt time.Time
}

func NewDomain(clientID ID) Domain {
	return Domain{
		ID:        ID(utils.GenerateUUID()),
		ClientID:  clientID,
		CreatedAt: time.Now(),
	}
}
