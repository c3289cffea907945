// Package services contains the server's operations. Every operation
// answers with a models.Result envelope rather than a Go error.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/staffql/internal/common"
	"github.com/dmitrijs2005/staffql/internal/logging"
	"github.com/dmitrijs2005/staffql/internal/server/auth"
	"github.com/dmitrijs2005/staffql/internal/server/config"
	"github.com/dmitrijs2005/staffql/internal/server/metrics"
	"github.com/dmitrijs2005/staffql/internal/server/models"
	"github.com/dmitrijs2005/staffql/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/staffql/internal/server/validation"
)

// AccountService handles signup and login.
type AccountService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
	logger                logging.Logger
	metrics               *metrics.Metrics
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config,
	logger logging.Logger, mt *metrics.Metrics) *AccountService {
	return &AccountService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
		logger:                logger.With("module", "accounts"),
		metrics:               mt,
	}
}

// Login checks credentials and issues a session token. Unknown accounts and
// wrong passwords are reported identically.
func (s *AccountService) Login(ctx context.Context, in models.LoginInput) (res *models.Result) {
	defer observe(ctx, s.logger, s.metrics, "login", time.Now(), &res)

	v := validation.Validate(validation.Login, validation.Record{
		"usernameOrEmail": in.UsernameOrEmail,
		"password":        in.Password,
	})
	if !v.Valid {
		return models.Invalid(v.Errors)
	}

	ident := v.Values["usernameOrEmail"].(string)

	account, err := s.repomanager.Accounts(s.db).FindByUsernameOrEmail(ctx, ident, ident)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return models.Fail(MsgInvalidCredentials)
		}
		s.logger.Error(ctx, "account lookup failed", logging.Err(err))
		return models.Fail(withCause(MsgLoginFailed, err))
	}

	if !auth.CheckPassword(in.Password, account.PasswordHash) {
		return models.Fail(MsgInvalidCredentials)
	}

	token, err := auth.GenerateToken(account.ID, account.Username, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		s.logger.Error(ctx, "token signing failed", logging.Err(err))
		return models.Fail(withCause(MsgLoginFailed, err))
	}

	return &models.Result{Success: true, Message: MsgLoginSuccessful, Token: token, User: account.View()}
}

// Signup creates an account and logs it in.
func (s *AccountService) Signup(ctx context.Context, in models.SignupInput) (res *models.Result) {
	defer observe(ctx, s.logger, s.metrics, "signup", time.Now(), &res)

	v := validation.Validate(validation.Signup, validation.Record{
		"username": in.Username,
		"email":    in.Email,
		"password": in.Password,
	})
	if !v.Valid {
		return models.Invalid(v.Errors)
	}

	username := v.Values["username"].(string)
	email := v.Values["email"].(string)

	repo := s.repomanager.Accounts(s.db)

	_, err := repo.FindByUsernameOrEmail(ctx, username, email)
	switch {
	case err == nil:
		return models.Fail(MsgAccountConflict)
	case !errors.Is(err, common.ErrorNotFound):
		s.logger.Error(ctx, "account lookup failed", logging.Err(err))
		return models.Fail(withCause(MsgSignupFailed, err))
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.Fail(withCause(MsgSignupFailed, err))
	}

	account, err := repo.Create(ctx, &models.Account{Username: username, Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return models.Fail(MsgAccountConflict)
		}
		s.logger.Error(ctx, "account create failed", logging.Err(err))
		return models.Fail(withCause(MsgSignupFailed, err))
	}

	token, err := auth.GenerateToken(account.ID, account.Username, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return models.Fail(withCause(MsgSignupFailed, err))
	}

	s.logger.Info(ctx, "account created", "account_id", account.ID, "username", account.Username)

	return &models.Result{Success: true, Message: MsgAccountCreated, Token: token, User: account.View()}
}

// Authenticate resolves a bearer token to the stored account. It returns nil
// for an invalid token and for an account that no longer exists.
func (s *AccountService) Authenticate(ctx context.Context, token string) *auth.Identity {
	id := auth.VerifyToken(token, s.jwtSecret)
	if id == nil {
		return nil
	}

	account, err := s.repomanager.Accounts(s.db).GetByID(ctx, id.AccountID)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "token account lookup failed", logging.Err(err))
		}
		return nil
	}

	return &auth.Identity{AccountID: account.ID, Username: account.Username}
}
