// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package emailaddr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/hirelane/pkg/emailaddr"
)

/*
TestNormalize covers trimming, case folding, and compatibility forms.
*/
func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already_canonical", "a@x.com", "a@x.com"},
		{"upper_case", "Alice@Example.COM", "alice@example.com"},
		{"surrounding_space", "  a@x.com\t", "a@x.com"},
		{"fullwidth_letters", "ａ@x.com", "a@x.com"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, emailaddr.Normalize(tt.input))
		})
	}
}

/*
TestEqual compares addresses after normalization.
*/
func TestEqual(t *testing.T) {
	assert.True(t, emailaddr.Equal("A@X.com", "a@x.COM "))
	assert.False(t, emailaddr.Equal("a@x.com", "b@x.com"))
}
