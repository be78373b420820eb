package gateway

import (
	"context"
	"net/http"

	"github.com/nakhazaman/restaurant-foh/models"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// AuthData adalah payload data dari /auth/login dan /auth/register.
type AuthData struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthData, string, error) {
	var data AuthData
	message, err := c.do(ctx, http.MethodPost, "/auth/login", "", creds, &data)
	if err != nil {
		return nil, message, err
	}
	return &data, message, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthData, string, error) {
	var data AuthData
	message, err := c.do(ctx, http.MethodPost, "/auth/register", "", req, &data)
	if err != nil {
		return nil, message, err
	}
	return &data, message, nil
}
