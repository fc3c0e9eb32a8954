package sqlite

import (
	"context"
	"database/sql"
)

// GetUserCountry returns the country code stored for the user.
// Unknown users resolve to an empty string, not an error.
func (r *implStore) GetUserCountry(ctx context.Context, userID string) (string, error) {
	const query = `SELECT country FROM users WHERE id = ?`

	var country string
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&country)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		r.l.Errorf(ctx, "region/repository/sqlite.GetUserCountry: %v", err)
		return "", err
	}
	return country, nil
}
