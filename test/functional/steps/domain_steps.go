package steps

import (
	"net/http"
)

func (fc *FeatureContext) createDomainFor(clientID string) string {
	resp, err := fc.apiDriver.CreateDomain(clientID)
	fc.require.NoError(err)
	fc.require.Equal(http.StatusCreated, resp.StatusCode)

	var id string
	fc.require.NoError(fc.decodeBody(resp.Body, &id))
	return id
}

func (fc *FeatureContext) aClientWithADomain() error {
	fc.domainID = fc.createDomainFor(fc.clientID)
	return nil
}

func (fc *FeatureContext) anotherClientWithADomain() error {
	fc.otherDomainID = fc.createDomainFor(fc.otherClientID)
	return nil
}

func (fc *FeatureContext) iCreateANewDomain() error {
	resp, err := fc.apiDriver.CreateDomain(fc.clientID)
	fc.require.NoError(err)
	fc.response = resp

	if resp.StatusCode == http.StatusCreated {
		var id string
		fc.require.NoError(fc.decodeBody(resp.Body, &id))
		fc.domainID = id
	}
	return nil
}

func (fc *FeatureContext) iListMyDomains() error {
	resp, err := fc.apiDriver.ListDomains(fc.clientID)
	fc.require.NoError(err)
	fc.response = resp
	return nil
}

func (fc *FeatureContext) theListShouldContainMyDomain() error {
	var records []map[string]any
	fc.require.NoError(fc.decodeBody(fc.response.Body, &records))

	found := false
	for _, record := range records {
		if record["id"] == fc.domainID {
			found = true
			break
		}
	}
	fc.require.True(found, "domain not found in list")
	return nil
}
