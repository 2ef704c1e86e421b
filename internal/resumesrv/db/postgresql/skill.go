package postgresql

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/resumeworks/resumesrv/internal/common/apperrors"
	"github.com/resumeworks/resumesrv/internal/resumesrv/db/dberror"
	"github.com/resumeworks/resumesrv/internal/resumesrv/db/models"
)

const skillColumns = "id, translations, level, created_at, updated_at"

// AddSkill inserts a new skill row with a store-assigned identifier and
// creation timestamp.
func (rm *ResumeDb) AddSkill(ctx context.Context, skill *models.Skill) (err apperrors.Error) {
	tx, errdb := rm.conn().BeginTx(ctx, &sql.TxOptions{})
	if errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to start transaction")
		return dberror.ErrDatabase.Err(errdb)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	query := `
		INSERT INTO skills (translations, level)
		VALUES ($1, $2)
		RETURNING ` + skillColumns + `;
	`
	row := tx.QueryRowContext(ctx, query, skill.Translations, skill.Level)
	if errdb := scanSkill(row, skill); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to insert skill")
		err = dberror.ErrDatabase.Err(errdb)
		return err
	}

	if errdb := tx.Commit(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to commit transaction")
		err = dberror.ErrDatabase.Err(errdb)
		return err
	}
	return nil
}

// GetSkill retrieves a skill by id.
func (rm *ResumeDb) GetSkill(ctx context.Context, skillID uuid.UUID) (skill *models.Skill, err apperrors.Error) {
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

	skill, err = rm.getSkillWithTransaction(ctx, skillID, tx)
	if err != nil {
		return nil, err
	}

	if errdb := tx.Commit(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to commit transaction")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}
	return skill, nil
}

func (rm *ResumeDb) getSkillWithTransaction(ctx context.Context, skillID uuid.UUID, tx *sql.Tx) (*models.Skill, apperrors.Error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE id = $1;`
	skill := &models.Skill{}
	row := tx.QueryRowContext(ctx, query, skillID)
	if err := scanSkill(row, skill); err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("skill_id", skillID.String()).Msg("skill not found")
			return nil, dberror.ErrSkillNotFound.SetCtx(map[string]any{"id": skillID.String()})
		}
		log.Ctx(ctx).Error().Err(err).Str("skill_id", skillID.String()).Msg("failed to get skill")
		return nil, dberror.ErrDatabase.Err(err)
	}
	return skill, nil
}

// ListSkills returns all skills ordered by creation time.
func (rm *ResumeDb) ListSkills(ctx context.Context) (skills []*models.Skill, err apperrors.Error) {
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

	query := `SELECT ` + skillColumns + ` FROM skills ORDER BY created_at;`
	rows, errdb := tx.QueryContext(ctx, query)
	if errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to list skills")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}
	defer rows.Close()

	skills = []*models.Skill{}
	for rows.Next() {
		skill := &models.Skill{}
		if errdb := scanSkill(rows, skill); errdb != nil {
			log.Ctx(ctx).Error().Err(errdb).Msg("failed to scan skill")
			err = dberror.ErrDatabase.Err(errdb)
			return nil, err
		}
		skills = append(skills, skill)
	}
	if errdb := rows.Err(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to iterate skills")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}

	if errdb := tx.Commit(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to commit transaction")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}
	return skills, nil
}

// UpdateSkill applies a partial field replacement and stamps updated_at.
func (rm *ResumeDb) UpdateSkill(ctx context.Context, skillID uuid.UUID, upd *models.SkillUpdate) (skill *models.Skill, err apperrors.Error) {
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
		UPDATE skills
		SET translations = COALESCE($2, translations),
		    level = COALESCE($3, level),
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + skillColumns + `;
	`
	skill = &models.Skill{}
	row := tx.QueryRowContext(ctx, query, skillID, upd.Translations, upd.Level)
	if errdb := scanSkill(row, skill); errdb != nil {
		if errdb == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("skill_id", skillID.String()).Msg("skill not found")
			err = dberror.ErrSkillNotFound.SetCtx(map[string]any{"id": skillID.String()})
			return nil, err
		}
		log.Ctx(ctx).Error().Err(errdb).Str("skill_id", skillID.String()).Msg("failed to update skill")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}

	if errdb := tx.Commit(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to commit transaction")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}
	return skill, nil
}

// DeleteSkill removes the row and returns its last-known values. Join rows in
// both link tables go with it via cascade.
func (rm *ResumeDb) DeleteSkill(ctx context.Context, skillID uuid.UUID) (skill *models.Skill, err apperrors.Error) {
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

	query := `DELETE FROM skills WHERE id = $1 RETURNING ` + skillColumns + `;`
	skill = &models.Skill{}
	row := tx.QueryRowContext(ctx, query, skillID)
	if errdb := scanSkill(row, skill); errdb != nil {
		if errdb == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("skill_id", skillID.String()).Msg("skill not found")
			err = dberror.ErrSkillNotFound.SetCtx(map[string]any{"id": skillID.String()})
			return nil, err
		}
		log.Ctx(ctx).Error().Err(errdb).Str("skill_id", skillID.String()).Msg("failed to delete skill")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}

	if errdb := tx.Commit(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to commit transaction")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}
	return skill, nil
}

func (rm *ResumeDb) skillExistsWithTransaction(ctx context.Context, skillID uuid.UUID, tx *sql.Tx) (bool, apperrors.Error) {
	var exists bool
	err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM skills WHERE id = $1);`, skillID).Scan(&exists)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("skill_id", skillID.String()).Msg("failed to check skill existence")
		return false, dberror.ErrDatabase.Err(err)
	}
	return exists, nil
}

func scanSkill(row rowScanner, s *models.Skill) error {
	return row.Scan(&s.SkillID, &s.Translations, &s.Level, &s.CreatedAt, &s.UpdatedAt)
}
