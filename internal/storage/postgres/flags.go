package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"media_archive/internal/domain"
)

// setFlag sets or clears a single flag bit in one UPDATE, so the
// read-modify-write happens inside the statement under row-level isolation.
// Lost updates between concurrent writers to different bits of the same row
// are the hazard this guards against.
func setFlag(ctx context.Context, exec sqlx.ExtContext, table string, id int64, flag domain.Flags, on bool) error {
	var value int64
	if on {
		value = int64(flag)
	}

	query := fmt.Sprintf(
		`UPDATE %s SET flags = (flags & ~$2::bigint) | $3::bigint, updated_time = now() WHERE id = $1`,
		table,
	)

	res, err := exec.ExecContext(ctx, query, id, int64(flag), value)
	if err != nil {
		return mapError(err)
	}
	return requireRow(res)
}
