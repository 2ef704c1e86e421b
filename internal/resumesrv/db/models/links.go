package models

import (
	"time"

	"github.com/google/uuid"
)

/*
    Column     | Type      | Collation | Nullable | Default
---------------+-----------+-----------+----------+---------
 skill_id      | uuid      |           | not null |
 experience_id | uuid      |           | not null |
 created_at    | timestamp |           | not null | now()

Composite primary key, both sides cascade-deleted.
*/

// SkillExperienceLink is a join-table row associating a skill with an experience.
type SkillExperienceLink struct {
	SkillID      uuid.UUID `db:"skill_id"`
	ExperienceID uuid.UUID `db:"experience_id"`
	CreatedAt    time.Time `db:"created_at"`
}

// SkillEducationLink is a join-table row associating a skill with an education.
type SkillEducationLink struct {
	SkillID     uuid.UUID `db:"skill_id"`
	EducationID uuid.UUID `db:"education_id"`
	CreatedAt   time.Time `db:"created_at"`
}
