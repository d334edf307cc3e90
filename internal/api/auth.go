package api

import "context"

// LoginResult is the credential pair issued by the server at login. The two
// values are exactly what the session store persists.
type LoginResult struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// Login exchanges operator credentials for a bearer token. The caller is
// responsible for saving the result into the session store.
func (g *Gateway) Login(ctx context.Context, email, password string) (LoginResult, error) {
	body := map[string]string{"email": email, "password": password}

	var result LoginResult
	if err := g.Post(ctx, "auth.Login", "/auth/login", body, &result); err != nil {
		return LoginResult{}, err
	}
	if result.Token == "" {
		return LoginResult{}, newRequestError("auth.Login", ErrValidation, "login response is missing a token", 0)
	}
	return result, nil
}
