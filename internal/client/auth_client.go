package client

import (
	"context"
	"net/http"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/usecase"
)

// AuthClient は/auth系のラッパ。ログインの成否はセッションへ反映する。
type AuthClient struct {
	c       *Client
	session *Session
}

func NewAuthClient(c *Client, session *Session) *AuthClient {
	return &AuthClient{c: c, session: session}
}

func (ac *AuthClient) Register(ctx context.Context, email, password, name string) (usecase.UserDTO, error) {
	var out usecase.UserDTO
	body := map[string]string{"email": email, "password": password, "name": name}
	err := ac.c.doPlain(ctx, http.MethodPost, "/auth/register", body, nil, &out)
	return out, err
}

// Login は成功時にトークンを保存してセッションを更新する。
func (ac *AuthClient) Login(ctx context.Context, email, password string) (usecase.AuthLoginOutput, error) {
	ac.session.SetStatus(StatusLoading)

	var out usecase.AuthLoginOutput
	body := map[string]string{"email": email, "password": password}
	if err := ac.c.doPlain(ctx, http.MethodPost, "/auth/login", body, nil, &out); err != nil {
		ac.session.SetStatus(StatusError)
		return usecase.AuthLoginOutput{}, err
	}

	SaveToken(ac.c.tokens, out.Token.AccessToken)
	user := out.User
	ac.session.Set(&user)
	return out, nil
}

// Logout はトークンとセッションを破棄する。
func (ac *AuthClient) Logout() {
	ClearToken(ac.c.tokens)
	ac.session.Clear()
}
