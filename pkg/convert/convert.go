// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert parses query parameter strings without reporting errors.

Malformed input falls back to a default, so callers that must distinguish
"absent" from "invalid" should use [strconv] directly.
*/
package convert

import (
	"strconv"
)

// ToIntD converts str to an int, returning def if str is empty or malformed.
func ToIntD(str string, def int) int {
	if str == "" {
		return def
	}

	if v, err := strconv.Atoi(str); err == nil {
		return v
	}

	return def
}

// ToBool parses "true", "1", "false", "0" and the other forms accepted by
// [strconv.ParseBool]. Empty or malformed input is false.
func ToBool(s string) bool {
	v, _ := strconv.ParseBool(s)
	return v
}
