package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-employees/internal/config"
	"github.com/MKhiriev/go-employees/internal/logger"
	"github.com/MKhiriev/go-employees/internal/store"
	"github.com/MKhiriev/go-employees/internal/utils"
	"github.com/MKhiriev/go-employees/internal/validators"
	"github.com/MKhiriev/go-employees/models"
)

// authService is the concrete implementation of AuthService.
// It verifies submitted credentials against the configured bcrypt hashes and
// issues and checks HS256 bearer tokens.
type authService struct {
	// credentialRepository resolves usernames to their password hashes.
	credentialRepository store.CredentialRepository

	// validator rejects empty usernames and passwords before any lookup.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// CredentialRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(credentialRepository store.CredentialRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		credentialRepository: credentialRepository,
		validator:            validators.NewEmployeeValidator(),
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		tokenDuration:        cfg.TokenDuration,
		logger:               logger,
	}
}

// Login checks a username and password.
//
// Returns the matching credential or:
//   - ErrInvalidDataProvided if the username or password is empty.
//   - ErrInvalidCredentials if the username is unknown or the password does
//     not match its bcrypt hash.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Credential, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Error().Err(err).Str("username", credentials.Username).Msg("invalid credentials provided")
		return models.Credential{}, validationError(err)
	}

	credential, err := a.credentialRepository.FindByUsername(ctx, credentials.Username)
	if err != nil {
		log.Warn().Err(err).Str("username", credentials.Username).Msg("credential lookup failed")
		return models.Credential{}, ErrInvalidCredentials
	}

	if !utils.CheckPassword(credential.PasswordHash, credentials.Password) {
		log.Warn().Str("username", credentials.Username).Msg("wrong password")
		return models.Credential{}, ErrInvalidCredentials
	}

	return credential, nil
}

// CreateToken issues a signed JWT whose subject is the credential's username.
//
// The token carries the configured issuer and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, credential models.Credential) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, credential.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", credential.Username).Msg("token generation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string and resolves its subject.
//
// A bad signature, wrong issuer, expired or malformed token, or a subject that
// is no longer a known credential are all reported as
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token validation failed")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	if _, err = a.credentialRepository.FindByUsername(ctx, token.Username); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("username", token.Username).Msg("token subject is not a known user")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
