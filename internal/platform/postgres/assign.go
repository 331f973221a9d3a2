// Copyright (c) 2026 Hirelane. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres

import (
	"fmt"
	"strings"
)

// Assignments builds the SET clause of a partial UPDATE.
//
// The key arguments passed to [NewAssignments] occupy $1..$n; every [Assignments.Add]
// takes the next placeholder.
type Assignments struct {
	columns []string
	args    []any
}

// NewAssignments starts a clause whose leading placeholders are bound to keys.
func NewAssignments(keys ...any) *Assignments {
	return &Assignments{args: keys}
}

// Add binds column to value.
func (a *Assignments) Add(column string, value any) {
	a.args = append(a.args, value)
	a.columns = append(a.columns, fmt.Sprintf("%s = $%d", column, len(a.args)))
}

// Raw sets column to a SQL expression such as NOW().
func (a *Assignments) Raw(column, expression string) {
	a.columns = append(a.columns, column+" = "+expression)
}

// Clause renders "col = $3, col2 = NOW()".
func (a *Assignments) Clause() string {
	return strings.Join(a.columns, ", ")
}

// Args returns the keys followed by the bound values.
func (a *Assignments) Args() []any {
	return a.args
}
