package ports

import (
	"context"

	"wallet-transaction-engine/internal/core/domain"

	"github.com/google/uuid"
)

// PersonClient talks to the external person service holding profile records.
type PersonClient interface {
	CreatePerson(ctx context.Context, person domain.Person) (uuid.UUID, error)
	DeletePerson(ctx context.Context, personUid uuid.UUID) error
}

// IdentityClient talks to the external identity provider (account + tokens).
type IdentityClient interface {
	// CreateUser provisions an identity-provider account tagged with the
	// person uid so tokens carry it as the subject.
	CreateUser(ctx context.Context, email, password string, personUid uuid.UUID) error
	Login(ctx context.Context, email, password string) (*domain.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
}
