package ports

import "context"

type AuthService interface {
	// Login verifies the credentials against the account store and returns
	// a signed bearer token carrying the username and an absolute expiry.
	Login(ctx context.Context, username, password string) (string, error)
}
