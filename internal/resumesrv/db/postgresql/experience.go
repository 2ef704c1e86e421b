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

const experienceColumns = "id, company_name, translations, start_date, end_date, created_at, updated_at"

// AddExperience inserts a new experience row. The identifier and creation
// timestamp are assigned by the store; the model is updated in place with the
// stored row.
func (rm *ResumeDb) AddExperience(ctx context.Context, experience *models.Experience) (err apperrors.Error) {
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

	err = rm.addExperienceWithTransaction(ctx, experience, tx)
	if err != nil {
		return err
	}

	if errdb := tx.Commit(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to commit transaction")
		err = dberror.ErrDatabase.Err(errdb)
		return err
	}
	return nil
}

func (rm *ResumeDb) addExperienceWithTransaction(ctx context.Context, experience *models.Experience, tx *sql.Tx) apperrors.Error {
	query := `
		INSERT INTO experiences (company_name, translations, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + experienceColumns + `;
	`
	row := tx.QueryRowContext(ctx, query,
		experience.CompanyName, experience.Translations, experience.StartDate, experience.EndDate)
	if err := scanExperience(row, experience); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("company_name", experience.CompanyName).Msg("failed to insert experience")
		return dberror.ErrDatabase.Err(err)
	}
	return nil
}

// GetExperience retrieves an experience by id. A missing row is a tagged
// not-found failure, never a nil success.
func (rm *ResumeDb) GetExperience(ctx context.Context, experienceID uuid.UUID) (experience *models.Experience, err apperrors.Error) {
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

	experience, err = rm.getExperienceWithTransaction(ctx, experienceID, tx)
	if err != nil {
		return nil, err
	}

	if errdb := tx.Commit(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to commit transaction")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}
	return experience, nil
}

func (rm *ResumeDb) getExperienceWithTransaction(ctx context.Context, experienceID uuid.UUID, tx *sql.Tx) (*models.Experience, apperrors.Error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences WHERE id = $1;`
	experience := &models.Experience{}
	row := tx.QueryRowContext(ctx, query, experienceID)
	if err := scanExperience(row, experience); err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("experience_id", experienceID.String()).Msg("experience not found")
			return nil, dberror.ErrExperienceNotFound.SetCtx(map[string]any{"id": experienceID.String()})
		}
		log.Ctx(ctx).Error().Err(err).Str("experience_id", experienceID.String()).Msg("failed to get experience")
		return nil, dberror.ErrDatabase.Err(err)
	}
	return experience, nil
}

// ListExperiences returns all experiences ordered by creation time. An empty
// list is a success.
func (rm *ResumeDb) ListExperiences(ctx context.Context) (experiences []*models.Experience, err apperrors.Error) {
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

	query := `SELECT ` + experienceColumns + ` FROM experiences ORDER BY created_at;`
	rows, errdb := tx.QueryContext(ctx, query)
	if errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to list experiences")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}
	defer rows.Close()

	experiences = []*models.Experience{}
	for rows.Next() {
		experience := &models.Experience{}
		if errdb := scanExperience(rows, experience); errdb != nil {
			log.Ctx(ctx).Error().Err(errdb).Msg("failed to scan experience")
			err = dberror.ErrDatabase.Err(errdb)
			return nil, err
		}
		experiences = append(experiences, experience)
	}
	if errdb := rows.Err(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to iterate experiences")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}

	if errdb := tx.Commit(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to commit transaction")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}
	return experiences, nil
}

// UpdateExperience applies a partial field replacement and stamps updated_at.
// Zero rows affected reports experience-not-found.
func (rm *ResumeDb) UpdateExperience(ctx context.Context, experienceID uuid.UUID, upd *models.ExperienceUpdate) (experience *models.Experience, err apperrors.Error) {
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
		UPDATE experiences
		SET company_name = COALESCE($2, company_name),
		    translations = COALESCE($3, translations),
		    start_date = COALESCE($4, start_date),
		    end_date = COALESCE($5, end_date),
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + experienceColumns + `;
	`
	experience = &models.Experience{}
	row := tx.QueryRowContext(ctx, query, experienceID,
		upd.CompanyName, upd.Translations, upd.StartDate, upd.EndDate)
	if errdb := scanExperience(row, experience); errdb != nil {
		if errdb == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("experience_id", experienceID.String()).Msg("experience not found")
			err = dberror.ErrExperienceNotFound.SetCtx(map[string]any{"id": experienceID.String()})
			return nil, err
		}
		log.Ctx(ctx).Error().Err(errdb).Str("experience_id", experienceID.String()).Msg("failed to update experience")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}

	if errdb := tx.Commit(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to commit transaction")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}
	return experience, nil
}

// DeleteExperience removes the row and returns its last-known values.
// Deleting an absent id reports experience-not-found.
func (rm *ResumeDb) DeleteExperience(ctx context.Context, experienceID uuid.UUID) (experience *models.Experience, err apperrors.Error) {
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

	query := `DELETE FROM experiences WHERE id = $1 RETURNING ` + experienceColumns + `;`
	experience = &models.Experience{}
	row := tx.QueryRowContext(ctx, query, experienceID)
	if errdb := scanExperience(row, experience); errdb != nil {
		if errdb == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("experience_id", experienceID.String()).Msg("experience not found")
			err = dberror.ErrExperienceNotFound.SetCtx(map[string]any{"id": experienceID.String()})
			return nil, err
		}
		log.Ctx(ctx).Error().Err(errdb).Str("experience_id", experienceID.String()).Msg("failed to delete experience")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}

	if errdb := tx.Commit(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to commit transaction")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}
	return experience, nil
}

func (rm *ResumeDb) experienceExistsWithTransaction(ctx context.Context, experienceID uuid.UUID, tx *sql.Tx) (bool, apperrors.Error) {
	var exists bool
	err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM experiences WHERE id = $1);`, experienceID).Scan(&exists)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("experience_id", experienceID.String()).Msg("failed to check experience existence")
		return false, dberror.ErrDatabase.Err(err)
	}
	return exists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExperience(row rowScanner, e *models.Experience) error {
	return row.Scan(&e.ExperienceID, &e.CompanyName, &e.Translations,
		&e.StartDate, &e.EndDate, &e.CreatedAt, &e.UpdatedAt)
}
