package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (d *APIDriver) do(method, path, clientID string, body any) (*http.Response, error) {
	var reader *bytes.Buffer
	if body != nil {
		reqBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		reader = bytes.NewBuffer(reqBody)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, fmt.Sprintf("%s%s", d.baseURL, path), reader)
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if clientID != "" {
		req.Header.Set("X-Client-ID", clientID)
	}
	return d.client.Do(req)
}

func (d *APIDriver) CreateDomain(clientID string) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/domains", clientID, nil)
}

func (d *APIDriver) ListDomains(clientID string) (*http.Response, error) {
	return d.do(http.MethodGet, "/v1/domains", clientID, nil)
}

func (d *APIDriver) CreateForm(clientID string, form map[string]any) (*http.Response, error) {
	return d.do(http.MethodPost, "/v1/forms", clientID, form)
}

func (d *APIDriver) GetForm(clientID, id string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/forms/%s", id), clientID, nil)
}

func (d *APIDriver) ListForms(clientID string) (*http.Response, error) {
	return d.do(http.MethodGet, "/v1/forms", clientID, nil)
}

func (d *APIDriver) ListFormsByDomain(clientID, domainID string) (*http.Response, error) {
	return d.do(http.MethodGet, fmt.Sprintf("/v1/forms?domainId=%s", domainID), clientID, nil)
}

func (d *APIDriver) UpdateForm(clientID, id string, form map[string]any) (*http.Response, error) {
	return d.do(http.MethodPut, fmt.Sprintf("/v1/forms/%s", id), clientID, form)
}

func (d *APIDriver) DeleteForm(clientID, id string) (*http.Response, error) {
	return d.do(http.MethodDelete, fmt.Sprintf("/v1/forms/%s", id), clientID, nil)
}

func (d *APIDriver) Healthz() (*http.Response, error) {
	return d.do(http.MethodGet, "/healthz", "", nil)
}
