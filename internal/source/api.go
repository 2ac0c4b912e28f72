package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"simaru-admin/internal/domain"
	"simaru-admin/internal/utils"
)

// CredentialProvider hands out the bearer token for protected calls.
// *session.Store satisfies it.
type CredentialProvider interface {
	Token() string
}

// NewClient builds the shared REST client for the SIMARU API.
func NewClient(baseURL string) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
}

// APISource talks to one resource of the authenticated REST API
// ("rooms", "bookings", "users", "categories"). Every call carries the
// bearer token; an absent token fails before any request goes out. The
// authoritative collection lives on the server, so mutations report
// RefetchAfterMutation and the caller reloads instead of patching.
type APISource[T any] struct {
	client   *resty.Client
	resource string
	creds    CredentialProvider
}

func NewAPI[T any](client *resty.Client, resource string, creds CredentialProvider) *APISource[T] {
	return &APISource[T]{client: client, resource: resource, creds: creds}
}

// listEnvelope is the API's collection response: {"data": [...], "message": "..."}.
type listEnvelope[T any] struct {
	Data    []T    `json:"data"`
	Message string `json:"message"`
}

type mutationEnvelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (s *APISource[T]) bearer() (string, error) {
	tok := s.creds.Token()
	if tok == "" {
		return "", domain.UnauthorizedError{Msg: "token tidak ditemukan, silakan login"}
	}
	return tok, nil
}

func (s *APISource[T]) Load(ctx context.Context) ([]T, error) {
	tok, err := s.bearer()
	if err != nil {
		return nil, err
	}

	var env listEnvelope[T]
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(tok).
		SetResult(&env).
		Get("/" + s.resource)
	if err != nil {
		return nil, domain.TransportError{Op: "load " + s.resource, Err: err}
	}
	if !resp.IsSuccess() {
		return nil, remoteError(resp)
	}
	// 2xx without a data field does not count as success.
	if env.Data == nil {
		return nil, domain.RemoteError{StatusCode: resp.StatusCode(), Message: nonEmpty(env.Message, "respons tanpa data")}
	}
	utils.LogEvent("", "source", "load", fmt.Sprintf("resource=%s count=%d", s.resource, len(env.Data)))
	return env.Data, nil
}

func (s *APISource[T]) Create(ctx context.Context, record T) (string, error) {
	return s.mutate(ctx, resty.MethodPost, "/"+s.resource, record)
}

func (s *APISource[T]) Update(ctx context.Context, id int64, record T) (string, error) {
	return s.mutate(ctx, resty.MethodPut, fmt.Sprintf("/%s/%d", s.resource, id), record)
}

func (s *APISource[T]) Delete(ctx context.Context, id int64) (string, error) {
	return s.mutate(ctx, resty.MethodDelete, fmt.Sprintf("/%s/%d", s.resource, id), nil)
}

func (s *APISource[T]) RefetchAfterMutation() bool { return true }

func (s *APISource[T]) mutate(ctx context.Context, method, path string, body any) (string, error) {
	tok, err := s.bearer()
	if err != nil {
		return "", err
	}

	var env mutationEnvelope
	req := s.client.R().
		SetContext(ctx).
		SetAuthToken(tok).
		SetResult(&env)
	if body != nil {
		req.SetBody(body)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		return "", domain.TransportError{Op: method + " " + path, Err: err}
	}
	if !resp.IsSuccess() {
		return "", remoteError(resp)
	}
	if !truthyData(env.Data) {
		return "", domain.RemoteError{StatusCode: resp.StatusCode(), Message: nonEmpty(env.Message, "mutasi ditolak server")}
	}
	return env.Message, nil
}

// truthyData mirrors the dashboard's `if (data.data)` success check.
func truthyData(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	switch string(trimmed) {
	case "", "null", "false", "0", `""`:
		return false
	}
	return true
}

func remoteError(resp *resty.Response) error {
	var env mutationEnvelope
	msg := ""
	if err := json.Unmarshal(resp.Body(), &env); err == nil {
		msg = env.Message
	}
	return domain.RemoteError{StatusCode: resp.StatusCode(), Message: msg}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
