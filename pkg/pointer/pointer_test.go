// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/hirelane/pkg/pointer"
)

func TestFallback(t *testing.T) {
	assert.True(t, pointer.Fallback(nil, true))
	assert.False(t, pointer.Fallback(pointer.To(false), true))
	assert.Equal(t, "Hired", pointer.Fallback(pointer.To("Hired"), "Applied"))
}
