// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/drivenpass/drivenpass/internal/config"
	"github.com/drivenpass/drivenpass/internal/logger"
	"github.com/drivenpass/drivenpass/internal/store"
	"github.com/drivenpass/drivenpass/internal/utils"
	"github.com/drivenpass/drivenpass/models"
)

// minPasswordLength is the minimum accepted password length at registration.
const minPasswordLength = 6

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher computes and verifies salted bcrypt password digests.
	hasher *utils.Hasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, log *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         utils.NewHasher(cfg.BcryptCost),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         log,
	}
}

// RegisterUser creates a new user account.
//
// It validates that both Email and Password are present and that the password
// meets the minimum length, hashes the password with bcrypt, and delegates
// persistence to the UserRepository. The plaintext password is dropped before
// the user model leaves this method.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - *MissingFieldsError if Email or Password is empty.
//   - ErrPasswordTooShort if the password is shorter than six characters.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken — see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if missing := missingUserFields(user); len(missing) > 0 {
		log.Error().Str("email", user.Email).Strs("missing", missing).Msg("invalid user data provided")
		return models.User{}, &MissingFieldsError{Fields: missing}
	}
	if len(user.Password) < minPasswordLength {
		log.Error().Str("email", user.Email).Msg("password is too short")
		return models.User{}, ErrPasswordTooShort
	}

	hash, err := a.hasher.Hash(user.Password)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.PasswordHash = hash
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and issues a signed JWT.
//
// It validates that both Email and Password are present, looks up the account
// by email, and verifies the password against the stored bcrypt digest.
// An unknown email and a wrong password are reported identically.
//
// Returns the issued token or:
//   - *MissingFieldsError if Email or Password is empty.
//   - ErrInvalidCredentials if the account is unknown or the password is wrong.
//   - A wrapped storage or signing error otherwise.
func (a *authService) Login(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	if missing := missingUserFields(user); len(missing) > 0 {
		log.Error().Str("email", user.Email).Strs("missing", missing).Msg("invalid user data provided")
		return models.Token{}, &MissingFieldsError{Fields: missing}
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, user.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("email", user.Email).Msg("login attempt for unknown email")
			return models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", user.Email).Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(foundUser.PasswordHash, user.Password) {
		log.Warn().Int64("id", foundUser.UserID).Str("email", foundUser.Email).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	return a.createToken(foundUser)
}

// ListUsers returns all registered accounts. Password hashes are never
// included: the repository does not select them for listings.
func (a *authService) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := a.userRepository.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return users, nil
}

// createToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) createToken(user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func missingUserFields(user models.User) []string {
	var missing []string
	if user.Email == "" {
		missing = append(missing, "email")
	}
	if user.Password == "" {
		missing = append(missing, "password")
	}
	return missing
}
