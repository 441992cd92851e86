package internal

import (
	"forms-server/internal/forms/domain"
	"forms-server/internal/forms/usecases"
)

// FormRequest is the payload for both create and update. Update is a full
// replacement, so omitted fields reset the stored value.
type FormRequest struct {
	DomainID    string                       `json:"domainId"`
	Name        map[string]string            `json:"name"`
	ModelType   string                       `json:"modelType"`
	SubType     *string                      `json:"subType"`
	Content     map[string]any               `json:"content"`
	Translation map[string]map[string]string `json:"translation"`
	Sorting     *string                      `json:"sorting"`
}

func (r FormRequest) ToPayload() usecases.FormPayload {
	return usecases.FormPayload{
		DomainID:    domain.ID(r.DomainID),
		Name:        r.Name,
		ModelType:   r.ModelType,
		SubType:     r.SubType,
		Content:     r.Content,
		Translation: r.Translation,
		Sorting:     r.Sorting,
	}
}

// FormResponse is the full single-form representation.
type FormResponse struct {
	ID          string                       `json:"id"`
	DomainID    string                       `json:"domainId"`
	Name        map[string]string            `json:"name"`
	ModelType   string                       `json:"modelType"`
	SubType     *string                      `json:"subType,omitempty"`
	Content     map[string]any               `json:"content"`
	Translation map[string]map[string]string `json:"translation"`
	Sorting     *string                      `json:"sorting,omitempty"`
}

func ToFormResponse(form domain.Form) FormResponse {
	return FormResponse{
		ID:          form.ID.String(),
		DomainID:    form.DomainID.String(),
		Name:        form.Name,
		ModelType:   form.ModelType,
		SubType:     form.SubType,
		Content:     form.Content,
		Translation: form.Translation,
		Sorting:     form.Sorting,
	}
}

// FormListItemResponse is the listing projection. It never carries content
// or translation.
type FormListItemResponse struct {
	ID        string            `json:"id"`
	DomainID  string            `json:"domainId"`
	Name      map[string]string `json:"name"`
	ModelType string            `json:"modelType"`
	SubType   *string           `json:"subType,omitempty"`
	Sorting   *string           `json:"sorting,omitempty"`
}

func ToFormListItemResponse(form domain.Form) FormListItemResponse {
	return FormListItemResponse{
		ID:        form.ID.String(),
		DomainID:  form.DomainID.String(),
		Name:      form.Name,
		ModelType: form.ModelType,
		SubType:   form.SubType,
		Sorting:   form.Sorting,
	}
}

type DomainResponse struct {
	ID       string `json:"id"`
	ClientID string `json:"clientId"`
}

func ToDomainResponse(record domain.Domain) DomainResponse {
	return DomainResponse{
		ID:       record.ID.String(),
		ClientID: record.ClientID.String(),
	}
}
