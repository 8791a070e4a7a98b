package domain

import "github.com/google/uuid"

// Person is the external profile record created by the registration saga.
// Owned by the person service; only the fields the saga needs are modeled.
type Person struct {
	Uid       uuid.UUID `json:"uid"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// TokenPair is the credential set returned by the identity provider after a
// successful login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
}
