package resumemanager

import (
	"database/sql"
	"time"
)

func fmtTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func fmtNullTime(t sql.NullTime) *string {
	if !t.Valid {
		return nil
	}
	s := fmtTime(t.Time)
	return &s
}

func nullTimeFromPtr(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
