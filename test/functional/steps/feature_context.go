package steps

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"forms-server/internal/infra/utils"
	"forms-server/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/stretchr/testify/require"
)

type FeatureContext struct {
	apiDriver     *driver.APIDriver
	response      *http.Response
	clientID      string
	otherClientID string
	domainID      string
	otherDomainID string
	formID        string
	require       *require.Assertions
	t             godog.TestingT
}

func NewFeatureContext() *FeatureContext {
	return &FeatureContext{
		apiDriver: driver.NewAPIDriver("http://localhost:3000"),
	}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)
	ctx.When(`^I check the service health$`, fc.iCheckTheServiceHealth)

	// Domain steps
	ctx.Given(`^a client with a domain$`, fc.aClientWithADomain)
	ctx.Given(`^another client with a domain$`, fc.anotherClientWithADomain)
	ctx.When(`^I create a new domain$`, fc.iCreateANewDomain)
	ctx.When(`^I list my domains$`, fc.iListMyDomains)
	ctx.Then(`^the list should contain my domain$`, fc.theListShouldContainMyDomain)

	// Form steps
	ctx.Given(`^a form exists in my domain with name "([^"]*)"$`, fc.aFormExistsInMyDomainWithName)
	ctx.When(`^I create a form in my domain with name "([^"]*)"$`, fc.iCreateAFormInMyDomainWithName)
	ctx.When(`^I create a form in the other client's domain$`, fc.iCreateAFormInTheOtherClientsDomain)
	ctx.When(`^I get the form by its ID$`, fc.iGetTheFormByItsID)
	ctx.When(`^the other client gets the form by its ID$`, fc.theOtherClientGetsTheFormByItsID)
	ctx.When(`^I list my forms$`, fc.iListMyForms)
	ctx.When(`^I list my forms filtered by the other client's domain$`, fc.iListMyFormsFilteredByTheOtherClientsDomain)
	ctx.Then(`^the response should contain the form with name "([^"]*)"$`, fc.theResponseShouldContainTheFormWithName)
	ctx.Then(`^the list should contain the form with name "([^"]*)"$`, fc.theListShouldContainTheFormWithName)
	ctx.Then(`^the list should be empty$`, fc.theListShouldBeEmpty)
	ctx.Then(`^the list items should not carry content$`, fc.theListItemsShouldNotCarryContent)
	ctx.When(`^I replace the form with name "([^"]*)" and no sub type$`, fc.iReplaceTheFormWithNameAndNoSubType)
	ctx.Then(`^the form should have name "([^"]*)" and no sub type$`, fc.theFormShouldHaveNameAndNoSubType)
	ctx.When(`^I delete the form$`, fc.iDeleteTheForm)
	ctx.When(`^the other client deletes the form$`, fc.theOtherClientDeletesTheForm)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, nil
	})
}

func (fc *FeatureContext) reset() {
	fc.response = nil
	fc.clientID = utils.GenerateUUID()
	fc.otherClientID = utils.GenerateUUID()
	fc.domainID = ""
	fc.otherDomainID = ""
	fc.formID = ""
}

func (fc *FeatureContext) decodeBody(body io.ReadCloser, target any) error {
	return json.NewDecoder(body).Decode(target)
}

func (fc *FeatureContext) theResponseStatusCodeShouldBe(code int) error {
	fc.require.NotNil(fc.response)
	fc.require.Equal(code, fc.response.StatusCode)
	return nil
}

func (fc *FeatureContext) iCheckTheServiceHealth() error {
	resp, err := fc.apiDriver.Healthz()
	fc.require.NoError(err)
	fc.response = resp
	return nil
}
