// Package api is the HTTP gateway to the Patil Associates admin API.
//
// Every outgoing request carries the operator's bearer token (when a session
// exists) and a generated X-Request-ID. Responses use a common envelope:
//
//	{"success": bool, "data": <payload>, "message": "...", "pagination": {...}}
//
// A response with success=false or a non-2xx status is a failure even when a
// body is present. Payloads are decoded at this boundary; a shape mismatch
// fails fast as a validation error instead of leaking partially-decoded data
// into callers. Nothing is retried automatically, callers decide when to
// retry.
package api

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kbamnote/patil-admin/internal/logger"
	"github.com/kbamnote/patil-admin/internal/session"
)

// Pagination describes the server's paging metadata for list responses.
type Pagination struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalItems   int  `json:"totalItems"`
	ItemsPerPage int  `json:"itemsPerPage"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
}

// envelope is the wire-level response wrapper shared by all endpoints.
type envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message,omitempty"`
	Pagination *Pagination     `json:"pagination,omitempty"`
}

// Gateway executes requests against the remote API. It is safe for use from
// multiple goroutines; the session store is only ever read.
type Gateway struct {
	client  *resty.Client
	session session.Store
	log     zerolog.Logger
}

// New returns a gateway targeting baseURL. Retries are disabled: failed
// requests surface immediately and the operator retries by re-running the
// operation.
func New(baseURL string, timeout time.Duration, store session.Store) *Gateway {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json")

	return &Gateway{
		client:  client,
		session: store,
		log:     logger.WithComponent("api"),
	}
}

// BaseURL reports the host the gateway is configured against.
func (g *Gateway) BaseURL() string {
	return g.client.BaseURL
}

// Get performs a GET request and decodes the envelope's data into out.
// It returns the envelope's pagination block when the server sent one.
// Pass nil out to discard the payload.
func (g *Gateway) Get(ctx context.Context, op, path string, query url.Values, out any) (*Pagination, error) {
	req := g.newRequest(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	resp, err := req.Get(path)
	return g.handle(op, resp, err, out)
}

// Post performs a POST request with a JSON body and decodes data into out.
func (g *Gateway) Post(ctx context.Context, op, path string, body, out any) error {
	req := g.newRequest(ctx)
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Post(path)
	_, err = g.handle(op, resp, err, out)
	return err
}

// Put performs a PUT request with a JSON body and decodes data into out.
func (g *Gateway) Put(ctx context.Context, op, path string, body, out any) error {
	req := g.newRequest(ctx)
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Put(path)
	_, err = g.handle(op, resp, err, out)
	return err
}

// Delete performs a DELETE request. The envelope's data, if any, is discarded.
func (g *Gateway) Delete(ctx context.Context, op, path string) error {
	resp, err := g.newRequest(ctx).Delete(path)
	_, err = g.handle(op, resp, err, nil)
	return err
}

func (g *Gateway) newRequest(ctx context.Context) *resty.Request {
	req := g.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.New().String())

	// The credential is attached whenever one is present. Requests without a
	// session still go out; the server answers 401 for protected endpoints.
	if creds, err := g.session.Current(); err == nil {
		req.SetAuthToken(creds.Token)
	}
	return req
}

// handle turns a resty response into either a decoded payload or a taxonomy
// error. It never partially applies: out is only written on full success.
func (g *Gateway) handle(op string, resp *resty.Response, err error, out any) (*Pagination, error) {
	if err != nil {
		g.log.Warn().Err(err).Str("op", op).Msg("Request did not complete")
		return nil, newRequestError(op, ErrNetwork, "", 0)
	}

	status := resp.StatusCode()
	var env envelope
	envErr := json.Unmarshal(resp.Body(), &env)

	if !resp.IsSuccess() {
		kind := classifyStatus(status)
		message := ""
		if envErr == nil {
			message = env.Message
		}
		g.log.Warn().Str("op", op).Int("status", status).Msg("Request rejected")
		return nil, newRequestError(op, kind, message, status)
	}

	if envErr != nil {
		return nil, newRequestError(op, ErrValidation, "unexpected response from server", status)
	}
	if !env.Success {
		return nil, newRequestError(op, ErrServer, env.Message, status)
	}

	if out != nil {
		if len(env.Data) == 0 {
			return nil, newRequestError(op, ErrValidation, "response is missing data", status)
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			g.log.Warn().Err(err).Str("op", op).Msg("Response shape mismatch")
			return nil, newRequestError(op, ErrValidation, "unexpected response shape from server", status)
		}
	}
	return env.Pagination, nil
}
