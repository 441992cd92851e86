package domain

import (
	"errors"
	"time"

	"forms-server/internal/infra/utils"
)

// Form is a tenant-scoped form definition. Content and Translation are
// opaque documents; the server only guarantees round-trip fidelity.
type Form struct {
	ID          ID
	DomainID    ID
	ClientID    ID
	Name        map[string]string
	ModelType   string
	SubType     *string
	Content     map[string]any
	Translation map[string]map[string]string
	Sorting     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Replace overwrites every mutable field with the values from payload.
// ID, DomainID and ClientID are fixed at creation time. Fields absent from
// the payload have already been defaulted by the builder, so a missing
// sub type or sorting clears the stored one. The payload's timestamps are
// ignored: CreatedAt keeps the receiver's value and UpdatedAt is stamped
// here.
func (f *Form) Replace(payload Form) {
	f.Name = payload.Name
	f.ModelType = payload.ModelType
	f.SubType = payload.SubType
	f.Content = payload.Content
	f.Translation = payload.Translation
	f.Sorting = payload.Sorting
	f.UpdatedAt = time.Now()
}

func NewFormBuilder() *formBuilder {
	return &formBuilder{}
}

type formBuilder struct {
	actions []formHandler
}

type formHandler func(f *Form) error

func (b *formBuilder) WithDomainID(domainID ID) *formBuilder {
	b.actions = append(b.actions, func(f *Form) error {
		f.DomainID = domainID
		return nil
	})
	return b
}

func (b *formBuilder) WithClientID(clientID ID) *formBuilder {
	b.actions = append(b.actions, func(f *Form) error {
		f.ClientID = clientID
		return nil
	})
	return b
}

func (b *formBuilder) WithName(name map[string]string) *formBuilder {
	b.actions = append(b.actions, func(f *Form) error {
		if name != nil {
			f.Name = name
		}
		return nil
	})
	return b
}

func (b *formBuilder) WithModelType(modelType string) *formBuilder {
	b.actions = append(b.actions, func(f *Form) error {
		f.ModelType = modelType
		return nil
	})
	return b
}

func (b *formBuilder) WithSubType(subType *string) *formBuilder {
	b.actions = append(b.actions, func(f *Form) error {
		f.SubType = subType
		return nil
	})
	return b
}

func (b *formBuilder) WithContent(content map[string]any) *formBuilder {
	b.actions = append(b.actions, func(f *Form) error {
		if content != nil {
			f.Content = content
		}
		return nil
	})
	return b
}

func (b *formBuilder) WithTranslation(translation map[string]map[string]string) *formBuilder {
	b.actions = append(b.actions, func(f *Form) error {
		if translation != nil {
			f.Translation = translation
		}
		return nil
	})
	return b
}

func (b *formBuilder) WithSorting(sorting *string) *formBuilder {
	b.actions = append(b.actions, func(f *Form) error {
		f.Sorting = sorting
		return nil
	})
	return b
}

// Build assembles a Form with a generated ID and empty-map defaults for
// name, content and translation. The mapping fields are never nil.
func (b *formBuilder) Build() (Form, error) {
	now := time.Now()
	result := Form{
		ID:          ID(utils.GenerateUUID()),
		Name:        map[string]string{},
		Content:     map[string]any{},
		Translation: map[string]map[string]string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return Form{}, err
		}
	}

	if result.ModelType == "" {
		return Form{}, errors.New("model type is required")
	}
	if len(result.Name) == 0 {
		return Form{}, errors.New("name is required")
	}

	return result, nil
}
