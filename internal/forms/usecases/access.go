package usecases

import (
	"forms-server/internal/forms/domain"
)

// AuthorizeFormAccess decides whether the principal may operate on the
// form. Callers must check existence first, so a missing form is reported
// as not found rather than as an access violation.
func AuthorizeFormAccess(principal domain.Principal, form domain.Form) error {
	if principal.ClientID != form.ClientID {
		return ErrFormAccessDenied
	}

	return nil
}
