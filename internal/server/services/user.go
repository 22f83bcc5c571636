// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, and issuing/refreshing JWTs
// plus server-stored refresh tokens.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/tenantline/internal/common"
	"github.com/dmitrijs2005/tenantline/internal/dbx"
	"github.com/dmitrijs2005/tenantline/internal/entitlements"
	"github.com/dmitrijs2005/tenantline/internal/server/auth"
	"github.com/dmitrijs2005/tenantline/internal/server/config"
	"github.com/dmitrijs2005/tenantline/internal/server/models"
	"github.com/dmitrijs2005/tenantline/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// UserService provides authentication-related operations:
// - Register: create users with a role and the configured default plan
// - Login: verify credentials and mint tokens
// - RefreshToken: rotate refresh tokens and mint new access tokens
type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	defaultPlan                  entitlements.Plan
}

// NewUserService constructs a UserService. An unknown DefaultPlan is an error
// so a typo in configuration cannot silently lock everybody out.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) (*UserService, error) {
	plan := entitlements.ParsePlan(cfg.DefaultPlan)
	if !plan.Valid() {
		return nil, fmt.Errorf("%w: unknown default plan %q", common.ErrorValidation, cfg.DefaultPlan)
	}
	return &UserService{
		db:                           db,
		repomanager:                  m,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		defaultPlan:                  plan,
	}, nil
}

// RefreshToken redeems a refresh token and returns a fresh TokenPair in one
// transaction. Unknown tokens are ErrorUnauthorized, expired ones
// ErrRefreshTokenExpired.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	var pair *TokenPair
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		token, err := s.repomanager.RefreshTokens(tx).Consume(ctx, refreshToken)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorUnauthorized
			}
			return fmt.Errorf("error consuming refresh token: %w", err)
		}
		if token.ExpiredAt(time.Now()) {
			return common.ErrRefreshTokenExpired
		}

		user, err := s.repomanager.Users(tx).GetUserByID(ctx, token.UserID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorUnauthorized
			}
			return fmt.Errorf("error loading user: %w", err)
		}

		pair, err = s.generateTokenPair(ctx, user, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

// Register creates a user. The role must be one of the marketplace roles;
// the plan is the configured default.
func (s *UserService) Register(ctx context.Context, username, role string, salt, verifier []byte) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", common.ErrorValidation)
	}
	r := entitlements.ParseRole(role)
	if !r.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", common.ErrorValidation, role)
	}
	if len(salt) == 0 || len(verifier) == 0 {
		return nil, fmt.Errorf("%w: salt and verifier are required", common.ErrorValidation)
	}

	user := &models.User{
		UserName: username,
		Role:     string(r),
		Plan:     string(s.defaultPlan),
		Salt:     salt,
		Verifier: verifier,
	}
	u, err := s.repomanager.Users(s.db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// GetSalt returns the user's stored salt or a random salt if the user is
// absent, so the answer does not reveal whether the account exists.
func (s *UserService) GetSalt(ctx context.Context, userName string) ([]byte, error) {
	user, err := s.repomanager.Users(s.db).GetUserByLogin(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return s.getRandomSalt(), nil
		}
		return nil, common.ErrorInternal
	}
	return user.Salt, nil
}

// Login verifies verifierCandidate against the stored verifier and, on
// success, returns a new TokenPair together with the user record.
func (s *UserService) Login(ctx context.Context, userName string, verifierCandidate []byte) (*TokenPair, *models.User, error) {
	user, err := s.repomanager.Users(s.db).GetUserByLogin(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, nil, common.ErrorUnauthorized
		}
		return nil, nil, common.ErrorInternal
	}
	if !s.checkVerifier(user.Verifier, verifierCandidate) {
		return nil, nil, common.ErrorUnauthorized
	}

	var pair *TokenPair
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.RefreshTokens(tx).DeleteExpired(ctx, user.ID); err != nil {
			return common.ErrorInternal
		}
		var genErr error
		pair, genErr = s.generateTokenPair(ctx, user, tx)
		return genErr
	})
	if err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

func (s *UserService) getRandomSalt() []byte { return common.GenerateRandByteArray(32) }

func (s *UserService) generateAccessToken(user *models.User) (string, error) {
	id := auth.Identity{UserID: user.ID, Plan: user.Plan, Role: user.Role}
	return auth.GenerateToken(id, s.jwtSecret, s.accessTokenValidityDuration)
}

func (s *UserService) generateRefreshToken() (string, error) {
	return common.MakeRandHexString(32)
}

func (s *UserService) checkVerifier(verifier []byte, candidate []byte) bool {
	return subtle.ConstantTimeCompare(verifier, candidate) == 1
}

func (s *UserService) generateTokenPair(ctx context.Context, user *models.User, tx dbx.DBTX) (*TokenPair, error) {
	access, err := s.generateAccessToken(user)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := s.generateRefreshToken()
	if err != nil {
		return nil, common.ErrorInternal
	}
	if err := s.repomanager.RefreshTokens(tx).Create(ctx, user.ID, refresh, s.refreshTokenValidityDuration); err != nil {
		return nil, common.ErrorInternal
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
