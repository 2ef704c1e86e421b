package postgresql

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/rs/zerolog/log"

	"github.com/resumeworks/resumesrv/internal/common/apperrors"
	"github.com/resumeworks/resumesrv/internal/resumesrv/db/dberror"
	"github.com/resumeworks/resumesrv/internal/resumesrv/db/models"
)

// LinkSkillToExperience associates a skill with an experience. The referenced
// experience is verified inside the same transaction before the join row is
// inserted; linking to a missing experience reports experience-not-found and
// leaves the join table untouched.
func (rm *ResumeDb) LinkSkillToExperience(ctx context.Context, skillID, experienceID uuid.UUID) (link *models.SkillExperienceLink, err apperrors.Error) {
	tx, errdb := rm.conn().BeginTx(ctx, &sql.TxOptions{})
	if errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to start transaction")
		return nil, dberror.ErrDatabase.Err(errdb)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	exists, err := rm.experienceExistsWithTransaction(ctx, experienceID, tx)
	if err != nil {
		return nil, err
	}
	if !exists {
		log.Ctx(ctx).Info().Str("experience_id", experienceID.String()).Msg("experience not found")
		err = dberror.ErrExperienceNotFound.SetCtx(map[string]any{"id": experienceID.String()})
		return nil, err
	}

	query := `
		INSERT INTO skills_experiences (skill_id, experience_id)
		VALUES ($1, $2)
		RETURNING skill_id, experience_id, created_at;
	`
	link = &models.SkillExperienceLink{}
	row := tx.QueryRowContext(ctx, query, skillID, experienceID)
	if errdb := row.Scan(&link.SkillID, &link.ExperienceID, &link.CreatedAt); errdb != nil {
		err = mapLinkInsertError(ctx, errdb, skillID, experienceID, "experience")
		return nil, err
	}

	if errdb := tx.Commit(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to commit transaction")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}
	return link, nil
}

// UnlinkSkillFromExperience removes the exact composite-key row. A missing
// pair reports skill-link-not-found.
func (rm *ResumeDb) UnlinkSkillFromExperience(ctx context.Context, skillID, experienceID uuid.UUID) (link *models.SkillExperienceLink, err apperrors.Error) {
	tx, errdb := rm.conn().BeginTx(ctx, &sql.TxOptions{})
	if errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to start transaction")
		return nil, dberror.ErrDatabase.Err(errdb)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	query := `
		DELETE FROM skills_experiences
		WHERE skill_id = $1 AND experience_id = $2
		RETURNING skill_id, experience_id, created_at;
	`
	link = &models.SkillExperienceLink{}
	row := tx.QueryRowContext(ctx, query, skillID, experienceID)
	if errdb := row.Scan(&link.SkillID, &link.ExperienceID, &link.CreatedAt); errdb != nil {
		if errdb == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("skill_id", skillID.String()).Str("experience_id", experienceID.String()).Msg("skill link not found")
			err = dberror.ErrSkillLinkNotFound.SetCtx(map[string]any{
				"skillId": skillID.String(), "experienceId": experienceID.String(), "kind": "experience",
			})
			return nil, err
		}
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to unlink skill from experience")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}

	if errdb := tx.Commit(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to commit transaction")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}
	return link, nil
}

// LinkSkillToEducation associates a skill with an education, verifying the
// education row inside the same transaction.
func (rm *ResumeDb) LinkSkillToEducation(ctx context.Context, skillID, educationID uuid.UUID) (link *models.SkillEducationLink, err apperrors.Error) {
	tx, errdb := rm.conn().BeginTx(ctx, &sql.TxOptions{})
	if errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to start transaction")
		return nil, dberror.ErrDatabase.Err(errdb)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	exists, err := rm.educationExistsWithTransaction(ctx, educationID, tx)
	if err != nil {
		return nil, err
	}
	if !exists {
		log.Ctx(ctx).Info().Str("education_id", educationID.String()).Msg("education not found")
		err = dberror.ErrEducationNotFound.SetCtx(map[string]any{"id": educationID.String()})
		return nil, err
	}

	query := `
		INSERT INTO skills_educations (skill_id, education_id)
		VALUES ($1, $2)
		RETURNING skill_id, education_id, created_at;
	`
	link = &models.SkillEducationLink{}
	row := tx.QueryRowContext(ctx, query, skillID, educationID)
	if errdb := row.Scan(&link.SkillID, &link.EducationID, &link.CreatedAt); errdb != nil {
		err = mapLinkInsertError(ctx, errdb, skillID, educationID, "education")
		return nil, err
	}

	if errdb := tx.Commit(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to commit transaction")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}
	return link, nil
}

// UnlinkSkillFromEducation removes the exact composite-key row.
func (rm *ResumeDb) UnlinkSkillFromEducation(ctx context.Context, skillID, educationID uuid.UUID) (link *models.SkillEducationLink, err apperrors.Error) {
	tx, errdb := rm.conn().BeginTx(ctx, &sql.TxOptions{})
	if errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to start transaction")
		return nil, dberror.ErrDatabase.Err(errdb)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	query := `
		DELETE FROM skills_educations
		WHERE skill_id = $1 AND education_id = $2
		RETURNING skill_id, education_id, created_at;
	`
	link = &models.SkillEducationLink{}
	row := tx.QueryRowContext(ctx, query, skillID, educationID)
	if errdb := row.Scan(&link.SkillID, &link.EducationID, &link.CreatedAt); errdb != nil {
		if errdb == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("skill_id", skillID.String()).Str("education_id", educationID.String()).Msg("skill link not found")
			err = dberror.ErrSkillLinkNotFound.SetCtx(map[string]any{
				"skillId": skillID.String(), "educationId": educationID.String(), "kind": "education",
			})
			return nil, err
		}
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to unlink skill from education")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}

	if errdb := tx.Commit(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to commit transaction")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}
	return link, nil
}

// ListLinkedExperiences returns the link rows for a skill.
func (rm *ResumeDb) ListLinkedExperiences(ctx context.Context, skillID uuid.UUID) (links []*models.SkillExperienceLink, err apperrors.Error) {
	tx, errdb := rm.conn().BeginTx(ctx, &sql.TxOptions{})
	if errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to start transaction")
		return nil, dberror.ErrDatabase.Err(errdb)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	query := `SELECT skill_id, experience_id, created_at FROM skills_experiences WHERE skill_id = $1 ORDER BY created_at;`
	rows, errdb := tx.QueryContext(ctx, query, skillID)
	if errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to list linked experiences")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}
	defer rows.Close()

	links = []*models.SkillExperienceLink{}
	for rows.Next() {
		link := &models.SkillExperienceLink{}
		if errdb := rows.Scan(&link.SkillID, &link.ExperienceID, &link.CreatedAt); errdb != nil {
			log.Ctx(ctx).Error().Err(errdb).Msg("failed to scan skill-experience link")
			err = dberror.ErrDatabase.Err(errdb)
			return nil, err
		}
		links = append(links, link)
	}
	if errdb := rows.Err(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to iterate skill-experience links")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}

	if errdb := tx.Commit(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to commit transaction")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}
	return links, nil
}

// ListLinkedEducations returns the link rows for a skill.
func (rm *ResumeDb) ListLinkedEducations(ctx context.Context, skillID uuid.UUID) (links []*models.SkillEducationLink, err apperrors.Error) {
	tx, errdb := rm.conn().BeginTx(ctx, &sql.TxOptions{})
	if errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to start transaction")
		return nil, dberror.ErrDatabase.Err(errdb)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	query := `SELECT skill_id, education_id, created_at FROM skills_educations WHERE skill_id = $1 ORDER BY created_at;`
	rows, errdb := tx.QueryContext(ctx, query, skillID)
	if errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to list linked educations")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}
	defer rows.Close()

	links = []*models.SkillEducationLink{}
	for rows.Next() {
		link := &models.SkillEducationLink{}
		if errdb := rows.Scan(&link.SkillID, &link.EducationID, &link.CreatedAt); errdb != nil {
			log.Ctx(ctx).Error().Err(errdb).Msg("failed to scan skill-education link")
			err = dberror.ErrDatabase.Err(errdb)
			return nil, err
		}
		links = append(links, link)
	}
	if errdb := rows.Err(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to iterate skill-education links")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}

	if errdb := tx.Commit(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to commit transaction")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}
	return links, nil
}

// ListLinksByExperience returns the link rows pointing at an experience.
func (rm *ResumeDb) ListLinksByExperience(ctx context.Context, experienceID uuid.UUID) (links []*models.SkillExperienceLink, err apperrors.Error) {
	tx, errdb := rm.conn().BeginTx(ctx, &sql.TxOptions{})
	if errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to start transaction")
		return nil, dberror.ErrDatabase.Err(errdb)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	query := `SELECT skill_id, experience_id, created_at FROM skills_experiences WHERE experience_id = $1 ORDER BY created_at;`
	rows, errdb := tx.QueryContext(ctx, query, experienceID)
	if errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to list links by experience")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}
	defer rows.Close()

	links = []*models.SkillExperienceLink{}
	for rows.Next() {
		link := &models.SkillExperienceLink{}
		if errdb := rows.Scan(&link.SkillID, &link.ExperienceID, &link.CreatedAt); errdb != nil {
			log.Ctx(ctx).Error().Err(errdb).Msg("failed to scan skill-experience link")
			err = dberror.ErrDatabase.Err(errdb)
			return nil, err
		}
		links = append(links, link)
	}
	if errdb := rows.Err(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to iterate skill-experience links")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}

	if errdb := tx.Commit(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to commit transaction")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}
	return links, nil
}

// ListLinksByEducation returns the link rows pointing at an education.
func (rm *ResumeDb) ListLinksByEducation(ctx context.Context, educationID uuid.UUID) (links []*models.SkillEducationLink, err apperrors.Error) {
	tx, errdb := rm.conn().BeginTx(ctx, &sql.TxOptions{})
	if errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to start transaction")
		return nil, dberror.ErrDatabase.Err(errdb)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	query := `SELECT skill_id, education_id, created_at FROM skills_educations WHERE education_id = $1 ORDER BY created_at;`
	rows, errdb := tx.QueryContext(ctx, query, educationID)
	if errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to list links by education")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}
	defer rows.Close()

	links = []*models.SkillEducationLink{}
	for rows.Next() {
		link := &models.SkillEducationLink{}
		if errdb := rows.Scan(&link.SkillID, &link.EducationID, &link.CreatedAt); errdb != nil {
			log.Ctx(ctx).Error().Err(errdb).Msg("failed to scan skill-education link")
			err = dberror.ErrDatabase.Err(errdb)
			return nil, err
		}
		links = append(links, link)
	}
	if errdb := rows.Err(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to iterate skill-education links")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}

	if errdb := tx.Commit(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to commit transaction")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}
	return links, nil
}

// mapLinkInsertError translates join-table insert failures: a duplicate pair
// is a conflict, a violated skill FK means the skill is missing, a violated
// counterpart FK means the experience/education is missing.
func mapLinkInsertError(ctx context.Context, err error, skillID, otherID uuid.UUID, kind string) apperrors.Error {
	ectx := map[string]any{"skillId": skillID.String(), kind + "Id": otherID.String()}
	if pgErr, ok := err.(*pgconn.PgError); ok {
		if pgErr.Code == "23505" {
			log.Ctx(ctx).Info().Str("skill_id", skillID.String()).Str(kind+"_id", otherID.String()).Msg("link already exists")
			return dberror.ErrAlreadyExists.Msg("skill already linked").SetCtx(ectx)
		}
		if pgErr.Code == "23503" {
			if pgErr.ConstraintName == "skills_experiences_skill_id_fkey" || pgErr.ConstraintName == "skills_educations_skill_id_fkey" {
				log.Ctx(ctx).Info().Str("skill_id", skillID.String()).Msg("skill not found")
				return dberror.ErrSkillNotFound.SetCtx(map[string]any{"id": skillID.String()})
			}
			log.Ctx(ctx).Info().Str(kind+"_id", otherID.String()).Msg(kind + " not found")
			if kind == "education" {
				return dberror.ErrEducationNotFound.SetCtx(map[string]any{"id": otherID.String()})
			}
			return dberror.ErrExperienceNotFound.SetCtx(map[string]any{"id": otherID.String()})
		}
	}
	log.Ctx(ctx).Error().Err(err).Msg("failed to link skill")
	return dberror.ErrDatabase.Err(err).SetCtx(ectx)
}
