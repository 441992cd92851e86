package internal

import (
	"time"

	"forms-server/internal/forms/domain"
)

type Domain struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	ClientID  string    `json:"client_id" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `json:"created_at"`
}

func (Domain) TableName() string {
	return "domains"
}

func (d Domain) ToDomain() domain.Domain {
	return domain.Domain{
		ID:        domain.ID(d.ID),
		ClientID:  domain.ID(d.ClientID),
		CreatedAt: d.CreatedAt,
	}
}

func FromDomain(value domain.Domain) Domain {
	return Domain{
		ID:        value.ID.String(),
		ClientID:  value.ClientID.String(),
		CreatedAt: value.CreatedAt,
	}
}
