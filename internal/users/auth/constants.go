// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

// # Credential Constraints

const (
	// PasswordMinLength is the shortest password accepted at registration and reset.
	PasswordMinLength = 6

	// PasswordMaxBytes is the bcrypt input limit.
	PasswordMaxBytes = 72

	// NameMaxLength bounds the display name.
	NameMaxLength = 100
)

// # Route Paths

// Link paths embedded in outbound email. They must match the routes in [Handler.Routes].
const (
	VerifyPathFormat = "/api/auth/verify/%s/%s"
	ResetPathFormat  = "/api/auth/resetpassword/%s"
)

// # Email Templates

const (
	SubjectVerify = "Verify Your Account"
	SubjectReset  = "Password Reset Request"

	bodyVerifyFormat = "Hello %s,\n\nPlease verify your account by clicking the link below:\n\n%s\n\nIf you did not create an account, you can ignore this email.\n"
	bodyResetFormat  = "You requested a password reset.\n\nPlease use the link below to set a new password. It expires in %s.\n\n%s\n\nIf you did not request this, you can ignore this email.\n"
)

// # Client Messages

const (
	MessageRegistered     = "Verification email sent. Please check your email to verify your account."
	MessageVerified       = "Account verified successfully. You can now log in."
	MessageLoggedOut      = "Logged out successfully"
	MessageResetSent      = "Password reset email sent"
	MessagePasswordUpdate = "Password updated successfully"
)

// # Metric Labels

// Flow names used for the auth event counter and email kinds.
const (
	flowRegister = "register"
	flowVerify   = "verify"
	flowLogin    = "login"
	flowLogout   = "logout"
	flowRefresh  = "refresh"
	flowForgot   = "forgot_password"
	flowReset    = "reset_password"

	emailKindVerify = "verification"
	emailKindReset  = "password_reset"
)
