package api

import "context"

// TokenPair is the response of POST token/
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST register/. The portal uses the email
// as the username, like the web client does.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

// Login exchanges credentials for a token pair
func (c *Client) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	var tokens TokenPair
	err := c.postJSON(ctx, "token/", "", loginRequest{Username: username, Password: password}, &tokens)
	if err != nil {
		return nil, err
	}
	return &tokens, nil
}

// Register creates a new account
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.postJSON(ctx, "register/", "", req, nil)
}
