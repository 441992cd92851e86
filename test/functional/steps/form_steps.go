package steps

import (
	"net/http"
)

func (fc *FeatureContext) formBody(domainID, name string) map[string]any {
	return map[string]any{
		"domainId":  domainID,
		"name":      map[string]any{"en": name},
		"modelType": "asset",
		"subType":   "IT",
		"content":   map[string]any{"layout": "vertical"},
	}
}

func (fc *FeatureContext) aFormExistsInMyDomainWithName(name string) error {
	resp, err := fc.apiDriver.CreateForm(fc.clientID, fc.formBody(fc.domainID, name))
	fc.require.NoError(err)
	fc.require.Equal(http.StatusCreated, resp.StatusCode)

	var id string
	fc.require.NoError(fc.decodeBody(resp.Body, &id))
	fc.formID = id
	return nil
}

func (fc *FeatureContext) iCreateAFormInMyDomainWithName(name string) error {
	resp, err := fc.apiDriver.CreateForm(fc.clientID, fc.formBody(fc.domainID, name))
	fc.require.NoError(err)
	fc.response = resp

	if resp.StatusCode == http.StatusCreated {
		var id string
		fc.require.NoError(fc.decodeBody(resp.Body, &id))
		fc.formID = id
	}
	return nil
}

func (fc *FeatureContext) iCreateAFormInTheOtherClientsDomain() error {
	resp, err := fc.apiDriver.CreateForm(fc.clientID, fc.formBody(fc.otherDomainID, "intruder"))
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) iGetTheFormByItsID() error {
	resp, err := fc.apiDriver.GetForm(fc.clientID, fc.formID)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) theOtherClientGetsTheFormByItsID() error {
	resp, err := fc.apiDriver.GetForm(fc.otherClientID, fc.formID)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) iListMyForms() error {
	resp, err := fc.apiDriver.ListForms(fc.clientID)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) iListMyFormsFilteredByTheOtherClientsDomain() error {
	resp, err := fc.apiDriver.ListFormsByDomain(fc.clientID, fc.otherDomainID)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) theResponseShouldContainTheFormWithName(name string) error {
	var data map[string]any
	fc.require.NoError(fc.decodeBody(fc.response.Body, &data))

	names, ok := data["name"].(map[string]any)
	fc.require.True(ok, "response has no name document")
	fc.require.Equal(name, names["en"])
	return nil
}

func (fc *FeatureContext) listItems() []map[string]any {
	var items []map[string]any
	fc.require.NoError(fc.decodeBody(fc.response.Body, &items))
	return items
}

func (fc *FeatureContext) theListShouldContainTheFormWithName(name string) error {
	found := false
	for _, item := range fc.listItems() {
		if names, ok := item["name"].(map[string]any); ok && names["en"] == name {
			found = true
			break
		}
	}
	fc.require.True(found, "form not found in list")
	return nil
}

func (fc *FeatureContext) theListShouldBeEmpty() error {
	fc.require.Empty(fc.listItems())
	return nil
}

func (fc *FeatureContext) theListItemsShouldNotCarryContent() error {
	items := fc.listItems()
	fc.require.NotEmpty(items)
	for _, item := range items {
		fc.require.NotContains(item, "content")
		fc.require.NotContains(item, "translation")
	}
	return nil
}

func (fc *FeatureContext) iReplaceTheFormWithNameAndNoSubType(name string) error {
	body := map[string]any{
		"domainId":  fc.domainID,
		"name":      map[string]any{"en": name},
		"modelType": "asset",
	}
	resp, err := fc.apiDriver.UpdateForm(fc.clientID, fc.formID, body)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) theFormShouldHaveNameAndNoSubType(name string) error {
	resp, err := fc.apiDriver.GetForm(fc.clientID, fc.formID)
	fc.require.NoError(err)
	fc.require.Equal(http.StatusOK, resp.StatusCode)

	var data map[string]any
	fc.require.NoError(fc.decodeBody(resp.Body, &data))

	names, ok := data["name"].(map[string]any)
	fc.require.True(ok, "response has no name document")
	fc.require.Equal(name, names["en"])
	fc.require.NotContains(data, "subType")
	return nil
}

func (fc *FeatureContext) iDeleteTheForm() error {
	resp, err := fc.apiDriver.DeleteForm(fc.clientID, fc.formID)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) theOtherClientDeletesTheForm() error {
	resp, err := fc.apiDriver.DeleteForm(fc.otherClientID, fc.formID)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}
