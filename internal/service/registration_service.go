package service

import (
	"context"
	"fmt"

	"wallet-transaction-engine/internal/core/domain"
	"wallet-transaction-engine/internal/core/ports"
	"wallet-transaction-engine/pkg/apperror"

	"github.com/rs/zerolog"
)

// RegistrationServiceImpl runs the registration saga against the external
// person and identity services: create person, create identity account, then
// log in. If identity creation fails the person record is deleted as
// compensation.
type RegistrationServiceImpl struct {
	personClient   ports.PersonClient
	identityClient ports.IdentityClient
	log            zerolog.Logger
}

// NewRegistrationService creates a new RegistrationServiceImpl.
func NewRegistrationService(personClient ports.PersonClient, identityClient ports.IdentityClient, log zerolog.Logger) *RegistrationServiceImpl {
	return &RegistrationServiceImpl{
		personClient:   personClient,
		identityClient: identityClient,
		log:            log,
	}
}

// Register executes the saga and returns the new user's tokens.
func (s *RegistrationServiceImpl) Register(ctx context.Context, params ports.RegisterParams) (*domain.TokenPair, error) {
	personUid, err := s.personClient.CreatePerson(ctx, domain.Person{
		Email:     params.Email,
		FirstName: params.FirstName,
		LastName:  params.LastName,
	})
	if err != nil {
		return nil, apperror.ErrRegistrationFailed(fmt.Errorf("create person: %w", err))
	}

	if err := s.identityClient.CreateUser(ctx, params.Email, params.Password, personUid); err != nil {
		// Compensate: the person record must not outlive a failed
		// identity provisioning. The root cause propagates either way.
		if compErr := s.personClient.DeletePerson(ctx, personUid); compErr != nil {
			s.log.Error().Err(compErr).
				Str("person_uid", personUid.String()).
				Str("email", params.Email).
				Msg("CRITICAL: failed to compensate person creation, orphaned record requires manual cleanup")
		} else {
			s.log.Info().
				Str("person_uid", personUid.String()).
				Msg("compensated person creation after identity failure")
		}
		return nil, apperror.ErrRegistrationFailed(fmt.Errorf("create identity: %w", err))
	}

	tokens, err := s.identityClient.Login(ctx, params.Email, params.Password)
	if err != nil {
		// The account exists; the caller can log in manually.
		return nil, apperror.ErrRegistrationFailed(fmt.Errorf("post-registration login: %w", err))
	}

	s.log.Info().
		Str("person_uid", personUid.String()).
		Msg("registered new user")

	return tokens, nil
}

// Login exchanges credentials for a token pair.
func (s *RegistrationServiceImpl) Login(ctx context.Context, email, password string) (*domain.TokenPair, error) {
	tokens, err := s.identityClient.Login(ctx, email, password)
	if err != nil {
		return nil, apperror.ErrInvalidCredentials()
	}
	return tokens, nil
}

// Refresh exchanges a refresh token for a fresh pair.
func (s *RegistrationServiceImpl) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	tokens, err := s.identityClient.Refresh(ctx, refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken(err)
	}
	return tokens, nil
}
