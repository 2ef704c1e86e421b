package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
)

/*
    Column    |         Type         | Collation | Nullable |      Default
--------------+----------------------+-----------+----------+--------------------
 id           | uuid                 |           | not null | gen_random_uuid()
 translations | jsonb                |           | not null |
 level        | character varying(3) |           | not null |
 created_at   | timestamp            |           | not null | now()
 updated_at   | timestamp            |           |          |
*/

// Skill model definition. Level is numeric on the wire but stored as
// varchar(3), a quirk inherited from the original schema.
type Skill struct {
	SkillID      uuid.UUID    `db:"id"`
	Translations pgtype.JSONB `db:"translations"`
	Level        string       `db:"level"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    sql.NullTime `db:"updated_at"`
}
