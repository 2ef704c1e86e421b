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
 company_name | character varying(255) |           | not null |
 translations | jsonb                  |           | not null |
 start_date   | timestamp              |           | not null |
 end_date     | timestamp              |           |          |
 created_at   | timestamp              |           | not null | now()
 updated_at   | timestamp              |           |          |
*/

// Experience model definition
type Experience struct {
	ExperienceID uuid.UUID    `db:"id"`
	CompanyName  string       `db:"company_name"`
	Translations pgtype.JSONB `db:"translations"`
	StartDate    time.Time    `db:"start_date"`
	EndDate      sql.NullTime `db:"end_date"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    sql.NullTime `db:"updated_at"`
}
