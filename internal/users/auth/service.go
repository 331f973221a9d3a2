// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/taibuivan/hirelane/internal/platform/apperr"
	"github.com/taibuivan/hirelane/internal/platform/constants"
	"github.com/taibuivan/hirelane/internal/platform/ctxutil"
	"github.com/taibuivan/hirelane/internal/platform/dberr"
	"github.com/taibuivan/hirelane/internal/platform/metrics"
	"github.com/taibuivan/hirelane/internal/platform/notify"
	"github.com/taibuivan/hirelane/internal/platform/sec"
	"github.com/taibuivan/hirelane/pkg/emailaddr"
	"github.com/taibuivan/hirelane/pkg/uuidv7"
)

// # Contracts & Types

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(plainTextPassword string) (string, error)
	Verify(plainTextPassword, existingHash string) bool
}

// SessionTokens issues and verifies the signed session tokens.
type SessionTokens interface {
	IssueAccess(accountID string) (string, error)
	IssueRefresh(accountID string, version int64) (string, error)
	VerifyRefresh(tokenString string) (*sec.SessionClaims, error)
}

// DispatchPolicy decides what happens to persisted state when an email fails.
type DispatchPolicy int

const (
	// BestEffortDispatch keeps whatever was persisted before the send.
	BestEffortDispatch DispatchPolicy = iota

	// CompensatingDispatch undoes the persisted state before failing.
	CompensatingDispatch
)

// LoginVariant selects the role checks applied by [Service.Login].
type LoginVariant int

const (
	// LoginAnyRole accepts every role.
	LoginAnyRole LoginVariant = iota

	// LoginCandidateOnly rejects accounts whose role is not Candidate.
	LoginCandidateOnly
)

// Options carries the immutable settings of the lifecycle manager.
type Options struct {
	// PublicBaseURL prefixes the links embedded in emails.
	PublicBaseURL string

	// ResetTTL is the absolute lifetime of a password reset token.
	ResetTTL time.Duration

	// Now is the clock; nil means time.Now.
	Now func() time.Time
}

// Dependencies groups the collaborators of [Service].
type Dependencies struct {
	Accounts           AccountRepository
	VerificationTokens VerificationTokenStore
	SessionVersions    SessionVersionStore
	Tokens             SessionTokens
	Hasher             PasswordHasher
	Mailer             notify.Dispatcher
	Metrics            *metrics.Recorder
}

// Service implements the account lifecycle: registration, verification,
// login, refresh, logout and password recovery.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, token
// handling or the ordering of login checks must be reviewed with care.
type Service struct {
	accounts           AccountRepository
	verificationTokens VerificationTokenStore
	sessionVersions    SessionVersionStore
	tokens             SessionTokens
	hasher             PasswordHasher
	mailer             notify.Dispatcher
	metrics            *metrics.Recorder

	publicBaseURL string
	resetTTL      time.Duration
	now           func() time.Time
}

// NewService constructs a new [Service].
func NewService(deps Dependencies, opts Options) *Service {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Service{
		accounts:           deps.Accounts,
		verificationTokens: deps.VerificationTokens,
		sessionVersions:    deps.SessionVersions,
		tokens:             deps.Tokens,
		hasher:             deps.Hasher,
		mailer:             deps.Mailer,
		metrics:            deps.Metrics,
		publicBaseURL:      opts.PublicBaseURL,
		resetTTL:           opts.ResetTTL,
		now:                now,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

/*
Register creates an unverified account and emails its verification link.

Description: The role is fixed by the calling route. Email delivery follows
[BestEffortDispatch]: a failed send leaves the account and token in place and
returns ErrEmailDispatchFailed.

Parameters:
  - context: context.Context
  - input: RegisterInput
  - role: sec.UserRole

Returns:
  - *Profile: Public projection of the created account
  - error: ErrAlreadyExists, ErrEmailDispatchFailed or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput, role sec.UserRole) (*Profile, error) {
	profile, err := service.register(context, input, role)
	service.record(flowRegister, err)
	return profile, err
}

func (service *Service) register(context context.Context, input RegisterInput, role sec.UserRole) (*Profile, error) {
	email := emailaddr.Normalize(input.Email)

	// Reject known emails early; the unique index catches the race below.
	_, err := service.accounts.FindByEmail(context, email)
	if err == nil {
		return nil, ErrAlreadyExists
	}
	if !errors.Is(err, ErrAccountNotFound) {
		return nil, fmt.Errorf("auth_service_register_lookup_failed: %w", err)
	}

	hashedPassword, err := service.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	account := &Account{
		ID:           uuidv7.New(),
		Name:         input.Name,
		Email:        email,
		Role:         role,
		PasswordHash: hashedPassword,
		IsVerified:   false,
	}

	if err := service.accounts.Create(context, account); err != nil {
		if dberr.IsUniqueViolation(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	token, err := service.verificationTokens.Create(context, account.ID)
	if err != nil {
		return nil, fmt.Errorf("auth_service_verify_token_failed: %w", err)
	}

	link := service.publicBaseURL + fmt.Sprintf(VerifyPathFormat, account.ID, token)
	message := notify.Message{
		To:      account.Email,
		Subject: SubjectVerify,
		Body:    fmt.Sprintf(bodyVerifyFormat, account.Name, link),
	}

	if err := service.dispatch(context, emailKindVerify, message, BestEffortDispatch, nil); err != nil {
		return nil, err
	}

	profile := account.Profile()
	return &profile, nil
}

// # Verification Flow

/*
Verify consumes a verification token and marks the account verified.

Description: The account is marked verified before the token is consumed.
Marking is idempotent, so a failed write leaves the link valid for a retry,
while GETDEL still lets only one attempt succeed.

Parameters:
  - context: context.Context
  - accountID: string
  - token: string

Returns:
  - error: ErrInvalidLink, ErrInvalidOrExpiredLink or storage errors
*/
func (service *Service) Verify(context context.Context, accountID, token string) error {
	err := service.verify(context, accountID, token)
	service.record(flowVerify, err)
	return err
}

func (service *Service) verify(context context.Context, accountID, token string) error {
	if _, err := uuid.Parse(accountID); err != nil {
		return ErrInvalidLink
	}

	if _, err := service.accounts.FindByID(context, accountID); err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return ErrInvalidLink
		}
		return fmt.Errorf("auth_service_verify_lookup_failed: %w", err)
	}

	live, err := service.verificationTokens.Exists(context, accountID, token)
	if err != nil {
		return fmt.Errorf("auth_service_verify_lookup_token_failed: %w", err)
	}
	if !live {
		return ErrInvalidOrExpiredLink
	}

	if err := service.accounts.MarkVerified(context, accountID); err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return ErrInvalidLink
		}
		return fmt.Errorf("auth_service_mark_verified_failed: %w", err)
	}

	consumed, err := service.verificationTokens.Consume(context, accountID, token)
	if err != nil {
		return fmt.Errorf("auth_service_verify_consume_failed: %w", err)
	}
	if !consumed {
		return ErrInvalidOrExpiredLink
	}

	return nil
}

// # Login Flow

// LoginInput holds the credentials submitted on login.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult is a freshly issued session.
type LoginResult struct {
	Profile      Profile
	AccessToken  string
	RefreshToken string
}

/*
Login authenticates an account and issues an access and a refresh token.

Description: Checks run in a fixed order: existence, role (candidate variant
only), password presence, verification, then the password itself.

Parameters:
  - context: context.Context
  - input: LoginInput
  - variant: LoginVariant

Returns:
  - *LoginResult: Profile and both tokens
  - error: ErrInvalidCredentials, ErrNotCandidate, ErrUnsupportedAuthMethod,
    ErrEmailNotVerified or storage errors
*/
func (service *Service) Login(context context.Context, input LoginInput, variant LoginVariant) (*LoginResult, error) {
	result, err := service.login(context, input, variant)
	service.record(flowLogin, err)
	return result, err
}

func (service *Service) login(context context.Context, input LoginInput, variant LoginVariant) (*LoginResult, error) {
	account, err := service.accounts.FindByEmail(context, emailaddr.Normalize(input.Email))
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth_service_login_lookup_failed: %w", err)
	}

	if variant == LoginCandidateOnly && !account.Role.Is(sec.RoleCandidate) {
		return nil, ErrNotCandidate
	}

	if !account.HasPassword() {
		return nil, ErrUnsupportedAuthMethod
	}

	if !account.IsVerified {
		return nil, ErrEmailNotVerified
	}

	if !service.hasher.Verify(input.Password, account.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	version, err := service.sessionVersions.Current(context, account.ID)
	if err != nil {
		return nil, fmt.Errorf("auth_service_session_version_failed: %w", err)
	}

	accessToken, err := service.tokens.IssueAccess(account.ID)
	if err != nil {
		return nil, fmt.Errorf("auth_service_issue_access_failed: %w", err)
	}

	refreshToken, err := service.tokens.IssueRefresh(account.ID, version)
	if err != nil {
		return nil, fmt.Errorf("auth_service_issue_refresh_failed: %w", err)
	}

	return &LoginResult{
		Profile:      account.Profile(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// # Session Flows

/*
Logout revokes every refresh token of the cookie's owner.

Description: An absent or unverifiable token is not an error; there is
simply nothing to revoke.

Parameters:
  - context: context.Context
  - refreshToken: string (Cookie value, may be empty)

Returns:
  - error: Revocation storage errors only
*/
func (service *Service) Logout(context context.Context, refreshToken string) error {
	err := service.logout(context, refreshToken)
	service.record(flowLogout, err)
	return err
}

func (service *Service) logout(context context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	claims, err := service.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		ctxutil.GetLogger(context).DebugContext(context, "logout_unverifiable_token", slog.String("reason", err.Error()))
		return nil
	}

	if _, err := service.sessionVersions.Revoke(context, claims.AccountID()); err != nil {
		return fmt.Errorf("auth_service_logout_revoke_failed: %w", err)
	}

	return nil
}

/*
Refresh exchanges a valid refresh token for a new access token.

Description: The refresh token is not rotated. It is rejected once its
session version falls behind the account's current version.

Parameters:
  - context: context.Context
  - refreshToken: string (Cookie value)

Returns:
  - string: New access token
  - error: ErrNoRefreshToken, ErrInvalidRefreshToken, ErrUserNotFound (401)
*/
func (service *Service) Refresh(context context.Context, refreshToken string) (string, error) {
	accessToken, err := service.refresh(context, refreshToken)
	service.record(flowRefresh, err)
	return accessToken, err
}

func (service *Service) refresh(context context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", ErrNoRefreshToken
	}

	claims, err := service.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		// The reason stays in the log; clients only ever see one error.
		ctxutil.GetLogger(context).InfoContext(context, "refresh_token_rejected", slog.String("reason", err.Error()))
		return "", ErrInvalidRefreshToken
	}

	account, err := service.accounts.FindByID(context, claims.AccountID())
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return "", ErrUserNotFound.WithStatus(http.StatusUnauthorized)
		}
		return "", fmt.Errorf("auth_service_refresh_lookup_failed: %w", err)
	}

	current, err := service.sessionVersions.Current(context, account.ID)
	if err != nil {
		return "", fmt.Errorf("auth_service_session_version_failed: %w", err)
	}
	if claims.Version < current {
		return "", ErrInvalidRefreshToken
	}

	accessToken, err := service.tokens.IssueAccess(account.ID)
	if err != nil {
		return "", fmt.Errorf("auth_service_issue_access_failed: %w", err)
	}

	return accessToken, nil
}

// # Password Recovery

/*
ForgotPassword stores a reset digest and emails the plaintext reset link.

Description: Email delivery follows [CompensatingDispatch]: a failed send
clears the digest and expiry before ErrEmailDispatchFailed is returned.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - error: ErrUserNotFound, ErrEmailDispatchFailed or storage errors
*/
func (service *Service) ForgotPassword(context context.Context, email string) error {
	err := service.forgotPassword(context, email)
	service.record(flowForgot, err)
	return err
}

func (service *Service) forgotPassword(context context.Context, email string) error {
	account, err := service.accounts.FindByEmail(context, emailaddr.Normalize(email))
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("auth_service_forgot_lookup_failed: %w", err)
	}

	token, err := sec.GenerateSecureToken(constants.ResetTokenBytes)
	if err != nil {
		return fmt.Errorf("auth_service_reset_token_failed: %w", err)
	}

	expiry := service.now().Add(service.resetTTL)
	if err := service.accounts.SetResetToken(context, account.ID, sec.HashToken(token), expiry); err != nil {
		return fmt.Errorf("auth_service_set_reset_token_failed: %w", err)
	}

	link := service.publicBaseURL + fmt.Sprintf(ResetPathFormat, token)
	message := notify.Message{
		To:      account.Email,
		Subject: SubjectReset,
		Body:    fmt.Sprintf(bodyResetFormat, describeLifetime(service.resetTTL), link),
	}

	return service.dispatch(context, emailKindReset, message, CompensatingDispatch, service.clearResetFields(account.ID))
}

// clearResetFields is the compensation of a failed reset email.
func (service *Service) clearResetFields(accountID string) func(context.Context) error {
	return func(ctx context.Context) error {
		return service.accounts.ClearResetToken(ctx, accountID)
	}
}

// describeLifetime renders a TTL for email copy, in whole hours when exact.
func describeLifetime(ttl time.Duration) string {
	unit, size := "minute", time.Minute
	if ttl >= time.Hour && ttl%time.Hour == 0 {
		unit, size = "hour", time.Hour
	}

	count := int64((ttl + size - 1) / size)
	if count == 1 {
		return "1 " + unit
	}
	return strconv.FormatInt(count, 10) + " " + unit + "s"
}

/*
ResetPassword sets a new password for the holder of an unexpired reset token.

Description: Both reset fields are cleared in the same statement that stores
the new hash, and every outstanding refresh token is revoked afterwards.

Parameters:
  - context: context.Context
  - token: string (Plaintext from the link)
  - password: string

Returns:
  - error: ErrInvalidOrExpiredToken or storage errors
*/
func (service *Service) ResetPassword(context context.Context, token, password string) error {
	err := service.resetPassword(context, token, password)
	service.record(flowReset, err)
	return err
}

func (service *Service) resetPassword(context context.Context, token, password string) error {
	if token == "" {
		return ErrInvalidOrExpiredToken
	}

	digest := sec.HashToken(token)

	account, err := service.accounts.FindByResetToken(context, digest, service.now())
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return ErrInvalidOrExpiredToken
		}
		return fmt.Errorf("auth_service_reset_lookup_failed: %w", err)
	}

	hashedPassword, err := service.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	if err := service.accounts.ResetPassword(context, account.ID, digest, hashedPassword); err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return ErrInvalidOrExpiredToken
		}
		return fmt.Errorf("auth_service_reset_password_failed: %w", err)
	}

	// The password is already changed; a revocation failure is logged, not returned.
	if _, err := service.sessionVersions.Revoke(context, account.ID); err != nil {
		ctxutil.GetLogger(context).ErrorContext(context, "reset_password_revoke_failed",
			slog.String("account_id", account.ID),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

// # Authorization

/*
RoleOf returns the current role of an account.

Description: Satisfies the role resolver used by the authorization middleware.

Parameters:
  - context: context.Context
  - accountID: string

Returns:
  - sec.UserRole: Current role
  - error: apperr.NotFound for unknown accounts
*/
func (service *Service) RoleOf(context context.Context, accountID string) (sec.UserRole, error) {
	account, err := service.accounts.FindByID(context, accountID)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return "", apperr.NotFound("User")
		}
		return "", fmt.Errorf("auth_service_role_lookup_failed: %w", err)
	}
	return account.Role, nil
}

// # Internal Helpers

// dispatch sends message and applies policy on failure.
func (service *Service) dispatch(context context.Context, kind string, message notify.Message, policy DispatchPolicy, compensate func(context.Context) error) error {
	err := service.mailer.Send(context, message)
	service.metrics.EmailDispatch(kind, err)
	if err == nil {
		return nil
	}

	logger := ctxutil.GetLogger(context)
	logger.ErrorContext(context, "email_dispatch_failed",
		slog.String("kind", kind),
		slog.String("error", err.Error()),
	)

	if policy == CompensatingDispatch && compensate != nil {
		// The request context may be the reason the send failed.
		compensateCtx, cancel := contextWithoutCancel(context)
		defer cancel()

		if compErr := compensate(compensateCtx); compErr != nil {
			logger.ErrorContext(context, "email_dispatch_compensation_failed",
				slog.String("kind", kind),
				slog.String("error", compErr.Error()),
			)
			err = errors.Join(err, compErr)
		}
	}

	return ErrEmailDispatchFailed.WithCause(err)
}

func contextWithoutCancel(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(parent), constants.GlobalRequestTimeout)
}

// record counts the flow result. Client errors count as failures too.
func (service *Service) record(flow string, err error) {
	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeFailure
	}
	service.metrics.AuthEvent(flow, outcome)
}
