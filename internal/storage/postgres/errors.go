package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"media_archive/internal/domain"
)

// mapError translates driver-level failures into the domain taxonomy.
// Integrity violations are never swallowed; callers decide between
// retry-as-update and abort via errors.Is.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// class 23: integrity constraint violations
		if pqErr.Code.Class() == "23" {
			return fmt.Errorf("%w: %s", domain.ErrConstraint, pqErr.Message)
		}
	}
	return err
}

// requireRow turns a zero-row UPDATE/DELETE into ErrNotFound, so references
// to nonexistent ids surface as caller errors instead of silent no-ops.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
