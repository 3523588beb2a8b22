package lavo

import "context"

const (
	loginFallbackDetail    = "Login failed"
	registerFallbackDetail = "Register failed"
)

type authRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

type authResponse struct {
	Token  string `json:"token"`
	Detail string `json:"detail"`
}

// Login exchanges credentials for a bearer token. A response without a token
// yields an *AuthError carrying the server-supplied detail. The client never
// stores the token; session ownership lives with the caller.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	return c.authenticate(ctx, "/auth/login", authRequest{Email: email, Password: password}, loginFallbackDetail)
}

// Register creates an account and returns its bearer token under the same
// contract as Login.
func (c *Client) Register(ctx context.Context, email, password, fullName string) (string, error) {
	return c.authenticate(ctx, "/auth/register", authRequest{Email: email, Password: password, FullName: fullName}, registerFallbackDetail)
}

func (c *Client) authenticate(ctx context.Context, path string, req authRequest, fallback string) (string, error) {
	var resp authResponse
	if err := c.postJSON(ctx, path, "", req, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		detail := resp.Detail
		if detail == "" {
			detail = fallback
		}
		return "", &AuthError{Detail: detail}
	}
	return resp.Token, nil
}
