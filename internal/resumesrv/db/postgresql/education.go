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

const educationColumns = "id, institution, degree, translations, start_date, end_date, created_at, updated_at"

// AddEducation inserts a new education row with a store-assigned identifier
// and creation timestamp.
func (rm *ResumeDb) AddEducation(ctx context.Context, education *models.Education) (err apperrors.Error) {
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
		INSERT INTO educations (institution, degree, translations, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + educationColumns + `;
	`
	row := tx.QueryRowContext(ctx, query,
		education.Institution, education.Degree, education.Translations, education.StartDate, education.EndDate)
	if errdb := scanEducation(row, education); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Str("institution", education.Institution).Msg("failed to insert education")
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

// GetEducation retrieves an education by id.
func (rm *ResumeDb) GetEducation(ctx context.Context, educationID uuid.UUID) (education *models.Education, err apperrors.Error) {
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

	education, err = rm.getEducationWithTransaction(ctx, educationID, tx)
	if err != nil {
		return nil, err
	}

	if errdb := tx.Commit(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to commit transaction")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}
	return education, nil
}

func (rm *ResumeDb) getEducationWithTransaction(ctx context.Context, educationID uuid.UUID, tx *sql.Tx) (*models.Education, apperrors.Error) {
	query := `SELECT ` + educationColumns + ` FROM educations WHERE id = $1;`
	education := &models.Education{}
	row := tx.QueryRowContext(ctx, query, educationID)
	if err := scanEducation(row, education); err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("education_id", educationID.String()).Msg("education not found")
			return nil, dberror.ErrEducationNotFound.SetCtx(map[string]any{"id": educationID.String()})
		}
		log.Ctx(ctx).Error().Err(err).Str("education_id", educationID.String()).Msg("failed to get education")
		return nil, dberror.ErrDatabase.Err(err)
	}
	return education, nil
}

// ListEducations returns all educations ordered by creation time.
func (rm *ResumeDb) ListEducations(ctx context.Context) (educations []*models.Education, err apperrors.Error) {
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

	query := `SELECT ` + educationColumns + ` FROM educations ORDER BY created_at;`
	rows, errdb := tx.QueryContext(ctx, query)
	if errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to list educations")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}
	defer rows.Close()

	educations = []*models.Education{}
	for rows.Next() {
		education := &models.Education{}
		if errdb := scanEducation(rows, education); errdb != nil {
			log.Ctx(ctx).Error().Err(errdb).Msg("failed to scan education")
			err = dberror.ErrDatabase.Err(errdb)
			return nil, err
		}
		educations = append(educations, education)
	}
	if errdb := rows.Err(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to iterate educations")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}

	if errdb := tx.Commit(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to commit transaction")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}
	return educations, nil
}

// UpdateEducation applies a partial field replacement and stamps updated_at.
func (rm *ResumeDb) UpdateEducation(ctx context.Context, educationID uuid.UUID, upd *models.EducationUpdate) (education *models.Education, err apperrors.Error) {
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
		UPDATE educations
		SET institution = COALESCE($2, institution),
		    degree = COALESCE($3, degree),
		    translations = COALESCE($4, translations),
		    start_date = COALESCE($5, start_date),
		    end_date = COALESCE($6, end_date),
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + educationColumns + `;
	`
	education = &models.Education{}
	row := tx.QueryRowContext(ctx, query, educationID,
		upd.Institution, upd.Degree, upd.Translations, upd.StartDate, upd.EndDate)
	if errdb := scanEducation(row, education); errdb != nil {
		if errdb == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("education_id", educationID.String()).Msg("education not found")
			err = dberror.ErrEducationNotFound.SetCtx(map[string]any{"id": educationID.String()})
			return nil, err
		}
		log.Ctx(ctx).Error().Err(errdb).Str("education_id", educationID.String()).Msg("failed to update education")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}

	if errdb := tx.Commit(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to commit transaction")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}
	return education, nil
}

// DeleteEducation removes the row and returns its last-known values.
func (rm *ResumeDb) DeleteEducation(ctx context.Context, educationID uuid.UUID) (education *models.Education, err apperrors.Error) {
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

	query := `DELETE FROM educations WHERE id = $1 RETURNING ` + educationColumns + `;`
	education = &models.Education{}
	row := tx.QueryRowContext(ctx, query, educationID)
	if errdb := scanEducation(row, education); errdb != nil {
		if errdb == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("education_id", educationID.String()).Msg("education not found")
			err = dberror.ErrEducationNotFound.SetCtx(map[string]any{"id": educationID.String()})
			return nil, err
		}
		log.Ctx(ctx).Error().Err(errdb).Str("education_id", educationID.String()).Msg("failed to delete education")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}

	if errdb := tx.Commit(); errdb != nil {
		log.Ctx(ctx).Error().Err(errdb).Msg("failed to commit transaction")
		err = dberror.ErrDatabase.Err(errdb)
		return nil, err
	}
	return education, nil
}

func (rm *ResumeDb) educationExistsWithTransaction(ctx context.Context, educationID uuid.UUID, tx *sql.Tx) (bool, apperrors.Error) {
	var exists bool
	err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM educations WHERE id = $1);`, educationID).Scan(&exists)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("education_id", educationID.String()).Msg("failed to check education existence")
		return false, dberror.ErrDatabase.Err(err)
	}
	return exists, nil
}

func scanEducation(row rowScanner, e *models.Education) error {
	return row.Scan(&e.EducationID, &e.Institution, &e.Degree, &e.Translations,
		&e.StartDate, &e.EndDate, &e.CreatedAt, &e.UpdatedAt)
}
