package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
)

/*
    Column    |          Type          | Collation | Nullable |      Default
--------------+------------------------+-----------+----------+--------------------
 id           | uuid                   |           | not null | gen_random_uuid()
 institution  | character varying(255) |           | not null |
 degree       | character varying(255) |           |          |
 translations | jsonb                  |           | not null |
 start_date   | timestamp              |           | not null |
 end_date     | timestamp              |           |          |
 created_at   | timestamp              |           | not null | now()
 updated_at   | timestamp              |           |          |
*/

// Education model definition
type Education struct {
	EducationID  uuid.UUID      `db:"id"`
	Institution  string         `db:"institution"`
	Degree       sql.NullString `db:"degree"`
	Translations pgtype.JSONB   `db:"translations"`
	StartDate    time.Time      `db:"start_date"`
	EndDate      sql.NullTime   `db:"end_date"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    sql.NullTime   `db:"updated_at"`
}
