package infrastructure

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rpcad/cadlogin/internal/webserver/model"
	"github.com/valyala/fasthttp"
)

const CadSettingsPath = "/admin/manage/cad-settings"

// ErrUpstream is wrapped by every error caused by the API, either because it could not
// be reached or because it returned an unexpected response.
var ErrUpstream = errors.New("CAD API request failed")

// Credentials are the authentication headers of an incoming request, forwarded
// untouched to the API.
type Credentials struct {
	Cookie        string
	Authorization string
}

// UpstreamError is returned when the API answers with a non successful status code
type UpstreamError struct {
	Path   string
	Status int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("API responded to %s with status %d", e.Path, e.Status)
}

func (e *UpstreamError) Unwrap() error {
	return ErrUpstream
}

// API is a client of the CAD REST API
type API struct {
	client  *fasthttp.Client
	baseURL string
	timeout time.Duration
}

// NewAPI returns a client for the API located at baseURL. A zero timeout means
// requests never time out.
func NewAPI(baseURL string, timeout time.Duration) *API {
	return &API{
		client: &fasthttp.Client{
			Name: "cadlogin",
		},
		baseURL: strings.TrimSuffix(baseURL, "/"),
		timeout: timeout,
	}
}

func (a *API) BaseURL() string {
	return a.baseURL
}

// FetchCadSettings retrieves the CAD settings on behalf of the user owning credentials.
func (a *API) FetchCadSettings(credentials Credentials) (*model.Settings, error) {
	body, err := a.get(CadSettingsPath, credentials)
	if err != nil {
		return nil, err
	}

	settings := &model.Settings{}
	if len(body) == 0 {
		return settings, nil
	}
	if err := json.Unmarshal(body, settings); err != nil {
		return nil, fmt.Errorf("%w: error decoding %s response: %w", ErrUpstream, CadSettingsPath, err)
	}
	return settings, nil
}

func (a *API) get(path string, credentials Credentials) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(a.baseURL + path)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	if credentials.Cookie != "" {
		req.Header.Set(fasthttp.HeaderCookie, credentials.Cookie)
	}
	if credentials.Authorization != "" {
		req.Header.Set(fasthttp.HeaderAuthorization, credentials.Authorization)
	}

	var err error
	if a.timeout > 0 {
		err = a.client.DoTimeout(req, resp, a.timeout)
	} else {
		err = a.client.Do(req, resp)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: error requesting %s: %w", ErrUpstream, path, err)
	}

	if status := resp.StatusCode(); status < fasthttp.StatusOK || status >= fasthttp.StatusMultipleChoices {
		return nil, &UpstreamError{Path: path, Status: status}
	}

	// resp is released on return, so its body must be copied
	return append([]byte(nil), resp.Body()...), nil
}
