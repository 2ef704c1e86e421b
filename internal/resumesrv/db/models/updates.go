package models

import (
	"time"

	"github.com/jackc/pgtype"
)

// Partial-update field sets. A nil field leaves the stored column unchanged;
// the store stamps updated_at on every update.

type ExperienceUpdate struct {
	CompanyName  *string
	Translations *pgtype.JSONB
	StartDate    *time.Time
	EndDate      *time.Time
}

type EducationUpdate struct {
	Institution  *string
	Degree       *string
	Translations *pgtype.JSONB
	StartDate    *time.Time
	EndDate      *time.Time
}

type SkillUpdate struct {
	Translations *pgtype.JSONB
	Level        *string
}
