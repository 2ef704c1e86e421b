package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/resumeworks/resumesrv/internal/common/apperrors"
	"github.com/resumeworks/resumesrv/internal/resumesrv/db/dbmanager"
	"github.com/resumeworks/resumesrv/internal/resumesrv/db/models"
	"github.com/resumeworks/resumesrv/internal/resumesrv/db/postgresql"
)

// ResumeManager is the store contract for all three domains and their links.
// Every failure is a tagged apperrors value; nothing panics or throws across
// this boundary.
type ResumeManager interface {
	// Experience
	AddExperience(ctx context.Context, experience *models.Experience) apperrors.Error
	GetExperience(ctx context.Context, experienceID uuid.UUID) (*models.Experience, apperrors.Error)
	ListExperiences(ctx context.Context) ([]*models.Experience, apperrors.Error)
	UpdateExperience(ctx context.Context, experienceID uuid.UUID, upd *models.ExperienceUpdate) (*models.Experience, apperrors.Error)
	DeleteExperience(ctx context.Context, experienceID uuid.UUID) (*models.Experience, apperrors.Error)

	// Education
	AddEducation(ctx context.Context, education *models.Education) apperrors.Error
	GetEducation(ctx context.Context, educationID uuid.UUID) (*models.Education, apperrors.Error)
	ListEducations(ctx context.Context) ([]*models.Education, apperrors.Error)
	UpdateEducation(ctx context.Context, educationID uuid.UUID, upd *models.EducationUpdate) (*models.Education, apperrors.Error)
	DeleteEducation(ctx context.Context, educationID uuid.UUID) (*models.Education, apperrors.Error)

	// Skill
	AddSkill(ctx context.Context, skill *models.Skill) apperrors.Error
	GetSkill(ctx context.Context, skillID uuid.UUID) (*models.Skill, apperrors.Error)
	ListSkills(ctx context.Context) ([]*models.Skill, apperrors.Error)
	UpdateSkill(ctx context.Context, skillID uuid.UUID, upd *models.SkillUpdate) (*models.Skill, apperrors.Error)
	DeleteSkill(ctx context.Context, skillID uuid.UUID) (*models.Skill, apperrors.Error)

	// Links
	LinkSkillToExperience(ctx context.Context, skillID, experienceID uuid.UUID) (*models.SkillExperienceLink, apperrors.Error)
	UnlinkSkillFromExperience(ctx context.Context, skillID, experienceID uuid.UUID) (*models.SkillExperienceLink, apperrors.Error)
	LinkSkillToEducation(ctx context.Context, skillID, educationID uuid.UUID) (*models.SkillEducationLink, apperrors.Error)
	UnlinkSkillFromEducation(ctx context.Context, skillID, educationID uuid.UUID) (*models.SkillEducationLink, apperrors.Error)
	ListLinkedExperiences(ctx context.Context, skillID uuid.UUID) ([]*models.SkillExperienceLink, apperrors.Error)
	ListLinkedEducations(ctx context.Context, skillID uuid.UUID) ([]*models.SkillEducationLink, apperrors.Error)
	ListLinksByExperience(ctx context.Context, experienceID uuid.UUID) ([]*models.SkillExperienceLink, apperrors.Error)
	ListLinksByEducation(ctx context.Context, educationID uuid.UUID) ([]*models.SkillEducationLink, apperrors.Error)
}

type ConnectionManager interface {
	Close(ctx context.Context)
}

type DB_ interface {
	ResumeManager
	ConnectionManager
}

type ctxDbKeyType string

const ctxDbKey ctxDbKeyType = "resumeDbConn"

var pool dbmanager.PooledDb

// Init creates the connection pool. Call once at process start, after config
// is loaded.
func Init(ctx context.Context) error {
	p := dbmanager.NewPooledDb(ctx, "postgresql")
	if p == nil {
		return errors.New("unable to initialize database connection pool")
	}
	pool = p
	return nil
}

// ConnCtx obtains a connection from the pool and stores it in the returned
// context. The caller owns the connection and must Close it via DB(ctx).
func ConnCtx(ctx context.Context) (context.Context, error) {
	if pool == nil {
		return ctx, errors.New("database connection pool not initialized")
	}
	conn, err := pool.Conn(ctx)
	if err != nil {
		return ctx, err
	}
	return context.WithValue(ctx, ctxDbKey, conn), nil
}

type resumeDb struct {
	ResumeManager
	ConnectionManager
}

// DB returns the store bound to the connection carried by ctx, or nil if the
// context carries none.
func DB(ctx context.Context) DB_ {
	if conn, ok := ctx.Value(ctxDbKey).(dbmanager.PooledConn); ok {
		rm := postgresql.NewResumeDb(conn)
		return &resumeDb{
			ResumeManager:     rm,
			ConnectionManager: rm,
		}
	}
	log.Ctx(ctx).Error().Msg("unable to get db connection from context")
	return nil
}

// Stats reports pool connection request/return counters.
func Stats() (requests, returns uint64) {
	if pool == nil {
		return 0, 0
	}
	return pool.Stats()
}
