package source

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-resty/resty/v2"

	"simaru-admin/internal/domain"
)

// StaticSource reads a bare JSON array from a fixture file, the way the
// dashboard fetched "/rooms.json" from its public directory. The fixture
// location may be a local directory or an http(s) base URL, such as the
// bundled fixture server. Mutations are accepted without persisting
// anything: the caller's in-memory collection is the only copy, and it
// lives exactly as long as the session.
type StaticSource[T any] struct {
	dir      string
	resource string
	client   *resty.Client
}

// NewStatic serves the fixture file named resource (e.g. "rooms.json")
// from dir, which is either a directory path or an http(s) base URL.
func NewStatic[T any](dir, resource string) *StaticSource[T] {
	s := &StaticSource[T]{dir: dir, resource: resource}
	if strings.HasPrefix(dir, "http://") || strings.HasPrefix(dir, "https://") {
		s.client = NewClient(dir)
	}
	return s
}

func (s *StaticSource[T]) Load(ctx context.Context) ([]T, error) {
	raw, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, domain.TransportError{Op: "parse " + s.resource, Err: err}
	}
	return items, nil
}

func (s *StaticSource[T]) read(ctx context.Context) ([]byte, error) {
	if s.client != nil {
		resp, err := s.client.R().SetContext(ctx).Get("/" + s.resource)
		if err != nil {
			return nil, domain.TransportError{Op: "baca " + s.resource, Err: err}
		}
		if !resp.IsSuccess() {
			return nil, domain.RemoteError{StatusCode: resp.StatusCode()}
		}
		return resp.Body(), nil
	}
	if err := ctx.Err(); err != nil {
		return nil, domain.TransportError{Op: "baca " + s.resource, Err: err}
	}
	raw, err := os.ReadFile(filepath.Join(s.dir, s.resource))
	if err != nil {
		return nil, domain.TransportError{Op: "baca " + s.resource, Err: err}
	}
	return raw, nil
}

func (s *StaticSource[T]) Create(ctx context.Context, record T) (string, error) {
	return "", nil
}

func (s *StaticSource[T]) Update(ctx context.Context, id int64, record T) (string, error) {
	return "", nil
}

func (s *StaticSource[T]) Delete(ctx context.Context, id int64) (string, error) {
	return "", nil
}

func (s *StaticSource[T]) RefetchAfterMutation() bool { return false }
