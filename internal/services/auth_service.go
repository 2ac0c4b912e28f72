package services

import (
	"context"
	"encoding/json"

	"github.com/go-resty/resty/v2"

	"simaru-admin/internal/domain"
	"simaru-admin/internal/session"
	"simaru-admin/internal/utils"
)

// The fixture variant has no auth endpoint; logging in just plants the
// placeholder credential, exactly as the original did.
const offlineToken = "dummy-token"

// AuthService logs staff in and out against /auth/* and keeps the result
// in the session store. Client is nil in offline (fixture) mode.
type AuthService struct {
	Client  *resty.Client
	Session *session.Store
	Offline bool
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authPayload struct {
	AccessToken string `json:"accessToken"`
	Message     string `json:"message"`
}

// Login exchanges credentials for a bearer token. The whole response blob
// is stored as the profile, the token under its own key.
func (s AuthService) Login(ctx context.Context, email, password string) error {
	utils.LogEvent("", "auth", "login", "email="+email)

	if s.Offline {
		return s.Session.SetLogin(offlineToken, nil)
	}

	resp, err := s.Client.R().
		SetContext(ctx).
		SetBody(credentials{Email: email, Password: password}).
		Post("/auth/login")
	if err != nil {
		return domain.TransportError{Op: "login", Err: err}
	}

	var payload authPayload
	_ = json.Unmarshal(resp.Body(), &payload)

	if !resp.IsSuccess() {
		msg := payload.Message
		if msg == "" {
			msg = "Login failed"
		}
		return domain.RemoteError{StatusCode: resp.StatusCode(), Message: msg}
	}
	if payload.AccessToken == "" {
		return domain.RemoteError{StatusCode: resp.StatusCode(), Message: "respons login tanpa accessToken"}
	}

	return s.Session.SetLogin(payload.AccessToken, json.RawMessage(resp.Body()))
}

// Register creates an account and returns the server message.
func (s AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	utils.LogEvent("", "auth", "register", "email="+email)

	if s.Offline {
		return "", domain.ValidationError{Msg: "registrasi tidak tersedia pada mode static"}
	}

	resp, err := s.Client.R().
		SetContext(ctx).
		SetBody(registerRequest{Name: name, Email: email, Password: password}).
		Post("/auth/register")
	if err != nil {
		return "", domain.TransportError{Op: "register", Err: err}
	}

	var payload authPayload
	_ = json.Unmarshal(resp.Body(), &payload)

	if !resp.IsSuccess() {
		msg := payload.Message
		if msg == "" {
			msg = "Registration failed"
		}
		return "", domain.RemoteError{StatusCode: resp.StatusCode(), Message: msg}
	}
	return payload.Message, nil
}

// Logout clears the persisted session.
func (s AuthService) Logout() error {
	utils.LogEvent("", "auth", "logout", "")
	return s.Session.Clear()
}
