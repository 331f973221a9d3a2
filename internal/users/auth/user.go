// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements the account identity and credential lifecycle layer.

It defines the core domain entity (Account) and the flows that move it through
its lifecycle: registration, email verification, login, refresh, logout and
password recovery.

# Architecture

This layer is the "Truth" of the system. Entities defined here have no external
dependencies and encapsulate all business rules related to account identity.
*/
package auth

import (
	"time"

	"github.com/taibuivan/hirelane/internal/platform/sec"
)

// # Domain Entities

// Account represents a registered member of the Hirelane platform.
//
// Secret material (password hash, reset digest) is never serialized.
type Account struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Email            string       `json:"email"`
	Role             sec.UserRole `json:"role"`
	PasswordHash     string       `json:"-"`
	IsVerified       bool         `json:"isVerified"`
	ResetTokenDigest *string      `json:"-"`
	ResetTokenExpiry *time.Time   `json:"-"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

// Profile is the only account shape ever returned to clients.
type Profile struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Email string       `json:"email"`
	Role  sec.UserRole `json:"role"`
}

// Profile returns the public projection of the account.
func (account *Account) Profile() Profile {
	return Profile{
		ID:    account.ID,
		Name:  account.Name,
		Email: account.Email,
		Role:  account.Role,
	}
}

// HasPassword reports whether the account can authenticate with a password.
func (account *Account) HasPassword() bool {
	return account.PasswordHash != ""
}

// HasPendingReset reports whether a reset digest is stored and unexpired at now.
func (account *Account) HasPendingReset(now time.Time) bool {
	return account.ResetTokenDigest != nil &&
		account.ResetTokenExpiry != nil &&
		account.ResetTokenExpiry.After(now)
}

// # Field Identifiers

// Field names for validation and identity mapping in the authentication domain.
const (
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldAccountID = "accountId"
	FieldToken     = "token"
)
