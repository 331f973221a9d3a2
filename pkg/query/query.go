// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package query parses multi-value query parameters.
package query

import (
	"strings"

	"github.com/taibuivan/hirelane/pkg/slice"
)

// StringSlice splits a comma-separated query value into trimmed, non-empty
// entries. An empty value yields nil, meaning "no filter".
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	return slice.Filter(slice.Map(strings.Split(val, ","), strings.TrimSpace), func(entry string) bool {
		return entry != ""
	})
}
