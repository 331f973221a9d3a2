// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package emailaddr canonicalises email addresses for uniqueness checks.
//
// # Normalization Pipeline
//
// 1. Trims surrounding whitespace.
// 2. Applies NFKC so visually identical compositions compare equal.
// 3. Applies Unicode case folding (handles "ß", Turkish dotted I and friends
// better than [strings.ToLower]).
//
// The whole address is folded, local part included. Every address the
// platform stores goes through [Normalize], so lookups and the unique index
// agree.
package emailaddr

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns the canonical form of address.
func Normalize(address string) string {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return ""
	}

	composed := norm.NFKC.String(trimmed)
	return cases.Fold().String(composed)
}

// Equal reports whether a and b are the same address after normalization.
func Equal(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
