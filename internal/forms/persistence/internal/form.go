package internal

import (
	"time"

	"gorm.io/datatypes"

	"forms-server/internal/forms/domain"
)

type Form struct {
	ID          string            `json:"id" gorm:"type:uuid;primaryKey"`
	DomainID    string            `json:"domain_id" gorm:"type:uuid;not null;index:idx_forms_client_domain,priority:2"`
	ClientID    string            `json:"client_id" gorm:"type:uuid;not null;index:idx_forms_client_domain,priority:1"`
	Name        datatypes.JSONMap `json:"name" gorm:"not null"`
	ModelType   string            `json:"model_type" gorm:"not null"`
	SubType     *string           `json:"sub_type"`
	Content     datatypes.JSONMap `json:"content" gorm:"not null"`
	Translation datatypes.JSONMap `json:"translation" gorm:"not null"`
	Sorting     *string           `json:"sorting"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func (Form) TableName() string {
	return "forms"
}

// ProjectionColumns are the columns fetched for listings. Content and
// translation never leave the store on the list path.
const ProjectionColumns = "id, domain_id, client_id, name, model_type, sub_type, sorting"

func (f Form) ToDomain() domain.Form {
	return domain.Form{
		ID:          domain.ID(f.ID),
		DomainID:    domain.ID(f.DomainID),
		ClientID:    domain.ID(f.ClientID),
		Name:        toLocaleMap(f.Name),
		ModelType:   f.ModelType,
		SubType:     f.SubType,
		Content:     map[string]any(f.Content),
		Translation: toTranslationMap(f.Translation),
		Sorting:     f.Sorting,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func FromForm(value domain.Form) Form {
	return Form{
		ID:          value.ID.String(),
		DomainID:    value.DomainID.String(),
		ClientID:    value.ClientID.String(),
		Name:        fromLocaleMap(value.Name),
		ModelType:   value.ModelType,
		SubType:     value.SubType,
		Content:     datatypes.JSONMap(value.Content),
		Translation: fromTranslationMap(value.Translation),
		Sorting:     value.Sorting,
		CreatedAt:   value.CreatedAt,
		UpdatedAt:   value.UpdatedAt,
	}
}

// toLocaleMap narrows the stored document to its string values. Names are
// written through the typed request payload as locale-to-string pairs, so a
// non-string entry in a stored row is skipped rather than surfaced.
func toLocaleMap(value datatypes.JSONMap) map[string]string {
	result := make(map[string]string, len(value))
	for locale, name := range value {
		if s, ok := name.(string); ok {
			result[locale] = s
		}
	}
	return result
}

func fromLocaleMap(value map[string]string) datatypes.JSONMap {
	result := make(datatypes.JSONMap, len(value))
	for locale, name := range value {
		result[locale] = name
	}
	return result
}

// toTranslationMap applies the same narrowing per locale: entries that are
// not objects of strings are skipped.
func toTranslationMap(value datatypes.JSONMap) map[string]map[string]string {
	result := make(map[string]map[string]string, len(value))
	for locale, entries := range value {
		m, ok := entries.(map[string]any)
		if !ok {
			continue
		}
		translated := make(map[string]string, len(m))
		for key, text := range m {
			if s, ok := text.(string); ok {
				translated[key] = s
			}
		}
		result[locale] = translated
	}
	return result
}

func fromTranslationMap(value map[string]map[string]string) datatypes.JSONMap {
	result := make(datatypes.JSONMap, len(value))
	for locale, entries := range value {
		m := make(map[string]any, len(entries))
		for key, text := range entries {
			m[key] = text
		}
		result[locale] = m
	}
	return result
}
