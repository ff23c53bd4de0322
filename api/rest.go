package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/morikuni/failure/v2"
	"github.com/motemen/go-loghttp"
)

// DefaultTimeout is the default timeout for record service requests
var DefaultTimeout = 30 * time.Second

// RESTGateway is an HTTP implementation of the record gateway contract.
// It talks to a record service exposing:
//
//	GET {endpoint}/records/{id}  -> {"id": ..., "fields": {...}}
//	GET {endpoint}/records       -> {"records": [...]}
type RESTGateway struct {
	endpoint string
	client   *http.Client
}

// NewRESTGateway creates a gateway for the record service at endpoint.
// The trailing slash of the endpoint is ignored.
func NewRESTGateway(endpoint string, timeout time.Duration) *RESTGateway {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &RESTGateway{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		client: &http.Client{
			Transport: loghttp.DefaultTransport,
			Timeout:   timeout,
		},
	}
}

// errorBody is the error payload the record service returns on rejection
type errorBody struct {
	Message string `json:"message"`
}

type listBody struct {
	Records []Record `json:"records"`
}

// Record fetches a single record. The record identifier is taken from the
// "id" entry of the parameter bag.
func (g *RESTGateway) Record(ctx context.Context, params Params) (Record, error) {
	id := params.Get("id")
	if id == "" {
		return Record{}, failure.New(ErrInvalidRecordID,
			failure.Message("No record identifier given"),
		)
	}

	var rec Record
	if err := g.getJSON(ctx, fmt.Sprintf("%s/records/%s", g.endpoint, url.PathEscape(id)), &rec, failure.Context{"id": id}); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Records fetches all records from the service
func (g *RESTGateway) Records(ctx context.Context, params Params) ([]Record, error) {
	var body listBody
	if err := g.getJSON(ctx, g.endpoint+"/records", &body, nil); err != nil {
		return nil, err
	}
	return body.Records, nil
}

// RecordURL returns the canonical browser URL of a record
func (g *RESTGateway) RecordURL(id string) string {
	return fmt.Sprintf("%s/records/%s", g.endpoint, url.PathEscape(id))
}

func (g *RESTGateway) getJSON(ctx context.Context, rawURL string, out any, errCtx failure.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return failure.Wrap(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return failure.Wrap(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Prefer the service's own message when the rejection carries one
		msg := "Failed to fetch from record service"
		var eb errorBody
		if decErr := json.NewDecoder(resp.Body).Decode(&eb); decErr == nil && eb.Message != "" {
			msg = eb.Message
		}
		if errCtx == nil {
			errCtx = failure.Context{}
		}
		errCtx["url"] = rawURL
		errCtx["status_code"] = fmt.Sprint(resp.StatusCode)
		return failure.New(ErrRecordFetch,
			failure.Message(msg),
			errCtx,
		)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return failure.Wrap(err)
	}
	return nil
}
