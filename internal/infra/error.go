package infra

import (
	"drivebook/internal/pkg/errs"
)

// WrapRepoErr marks unexpected storage failures so handlers can map them to
// a generic failure without leaking driver details.
func WrapRepoErr(msg string, err error) error {
	return errs.Mark(errs.Wrap(err, msg), errs.ErrStorageUnavailable)
}
