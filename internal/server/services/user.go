// Package services contains server-side business logic. This file implements
// UserService, which owns the signup and login validation pipelines and
// composes the credential store, password hasher, and token issuer.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/lmartinezr/authcore/internal/common"
	"github.com/lmartinezr/authcore/internal/server/auth"
	"github.com/lmartinezr/authcore/internal/server/config"
	"github.com/lmartinezr/authcore/internal/server/hashing"
	"github.com/lmartinezr/authcore/internal/server/models"
	"github.com/lmartinezr/authcore/internal/server/repositories/repomanager"
)

// emailPattern checks the local@domain shape only; anything stricter belongs
// to a mail-delivery layer, not here.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// SignupRequest carries the raw signup input before validation.
type SignupRequest struct {
	FullName        string
	Username        string
	Password        string
	ConfirmPassword string
	Email           string
}

// AuthResult is returned on successful signup or login. It never carries the
// password hash.
type AuthResult struct {
	Token    string
	UserID   string
	FullName string
}

// ValidationError reports malformed or incomplete client input. It is
// surfaced to the caller verbatim.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func newMissingFieldsError(fields []string) *ValidationError {
	return &ValidationError{msg: "missing required fields: " + strings.Join(fields, ", ")}
}

// UserService provides authentication operations:
// - Signup: validate input, create the user, mint a token
// - Login: verify credentials and mint a token
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	hasher                hashing.Hasher
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories, a password
// hasher, and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, h hashing.Hasher, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		hasher:                h,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Signup runs the registration pipeline: input validation, duplicate check,
// password hashing, record creation, and token issuance. A concurrent signup
// racing past the lookup still fails on the store's atomic insert.
func (s *UserService) Signup(ctx context.Context, req SignupRequest) (*AuthResult, error) {
	if err := validateSignup(req); err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)

	if _, err := repo.GetUserByLogin(ctx, req.Username); err == nil {
		return nil, common.ErrorUsernameTaken
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		UserName:     req.Username,
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
	}

	created, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorUsernameTaken
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	token, err := auth.GenerateToken(created.ID, created.UserName, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{Token: token, UserID: created.ID, FullName: created.FullName}, nil
}

// Login verifies the password against the stored hash and, on success,
// returns a fresh token. An unknown username and a wrong password both yield
// common.ErrorInvalidCredentials so accounts cannot be enumerated.
func (s *UserService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	var missing []string
	if username == "" {
		missing = append(missing, "username")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, newMissingFieldsError(missing)
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.UserName, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{Token: token, UserID: user.ID, FullName: user.FullName}, nil
}

func validateSignup(req SignupRequest) error {
	var missing []string
	if req.FullName == "" {
		missing = append(missing, "fullName")
	}
	if req.Username == "" {
		missing = append(missing, "username")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	if req.ConfirmPassword == "" {
		missing = append(missing, "confirmPassword")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return newMissingFieldsError(missing)
	}

	if !emailPattern.MatchString(req.Email) {
		return &ValidationError{msg: "invalid email address"}
	}

	if req.Password != req.ConfirmPassword {
		return &ValidationError{msg: "passwords do not match"}
	}

	return nil
}
