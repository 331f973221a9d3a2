// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/hirelane/internal/platform/migration"
)

/*
TestToPgx5DSN covers the scheme rewrite.
*/
func TestToPgx5DSN(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"postgres://u:p@db:5432/hirelane", "pgx5://u:p@db:5432/hirelane"},
		{"postgresql://u:p@db/hirelane?sslmode=disable", "pgx5://u:p@db/hirelane?sslmode=disable"},
		{"pgx5://u@db/hirelane", "pgx5://u@db/hirelane"},
		{"host=db user=u", "host=db user=u"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, migration.ToPgx5DSN(tt.in))
	}
}
