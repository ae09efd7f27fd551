// Package errors re-exports github.com/cockroachdb/errors so the rest of
// the module has one import for creating, wrapping and inspecting errors.
//
//	if err := company.Add(e); err != nil {
//	    return errors.Wrap(err, "seed employee")
//	}
//
//	if errors.Is(err, domain.ErrNotFound) {
//	    // 404
//	}
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Creation and wrapping
var (
	New   = crdb.New
	Wrap  = crdb.Wrap
	Wrapf = crdb.Wrapf
)

// Inspection
var (
	Is    = crdb.Is
	IsAny = crdb.IsAny
)
