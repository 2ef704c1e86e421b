package resumemanager

import (
	"context"
	"database/sql"

	"github.com/resumeworks/resumesrv/internal/common/apperrors"
	"github.com/resumeworks/resumesrv/internal/resumesrv/db"
	"github.com/resumeworks/resumesrv/internal/resumesrv/db/models"
)

// Education is the transport shape of an education record.
type Education struct {
	ID           string            `json:"id"`
	Institution  string            `json:"institution"`
	Degree       *string           `json:"degree,omitempty"`
	Translations EntryTranslations `json:"translations"`
	StartDate    string            `json:"start_date"`
	EndDate      *string           `json:"end_date,omitempty"`
	CreatedAt    string            `json:"created_at"`
	UpdatedAt    *string           `json:"updated_at,omitempty"`
}

// EducationRequest carries the caller-settable fields of an education.
type EducationRequest struct {
	Institution  string            `json:"institution" validate:"required"`
	Degree       *string           `json:"degree" validate:"omitempty,min=1"`
	Translations EntryTranslations `json:"translations" validate:"required,min=1,dive,keys,oneof=de en,endkeys"`
	StartDate    string            `json:"start_date" validate:"required"`
	EndDate      *string           `json:"end_date" validate:"omitempty"`
}

// EducationUpdateRequest carries a partial field replacement; nil fields
// stay unchanged.
type EducationUpdateRequest struct {
	Institution  *string           `json:"institution" validate:"omitempty,min=1"`
	Degree       *string           `json:"degree"`
	Translations EntryTranslations `json:"translations" validate:"omitempty,min=1,dive,keys,oneof=de en,endkeys"`
	StartDate    *string           `json:"start_date"`
	EndDate      *string           `json:"end_date"`
}

// GetEducation returns the education with the given id.
func GetEducation(ctx context.Context, id string) (*Education, apperrors.Error) {
	educationID, err := parseID("educationId", id)
	if err != nil {
		return nil, err
	}
	m, err := db.DB(ctx).GetEducation(ctx, educationID)
	if err != nil {
		return nil, err
	}
	return educationFromModel(m)
}

// ListEducations returns all educations; an empty list is a success.
func ListEducations(ctx context.Context) ([]*Education, apperrors.Error) {
	ms, err := db.DB(ctx).ListEducations(ctx)
	if err != nil {
		return nil, err
	}
	educations := make([]*Education, 0, len(ms))
	for _, m := range ms {
		education, err := educationFromModel(m)
		if err != nil {
			return nil, err
		}
		educations = append(educations, education)
	}
	return educations, nil
}

// AddEducation validates and stores a new education.
func AddEducation(ctx context.Context, req *EducationRequest) (*Education, apperrors.Error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	translations, err := toJSONB(req.Translations)
	if err != nil {
		return nil, err
	}

	m := &models.Education{
		Institution:  req.Institution,
		Degree:       nullStringFromPtr(req.Degree),
		Translations: translations,
		StartDate:    start,
		EndDate:      nullTimeFromPtr(end),
	}
	if err := db.DB(ctx).AddEducation(ctx, m); err != nil {
		return nil, err
	}
	return educationFromModel(m)
}

// UpdateEducation applies a partial update to an existing education.
func UpdateEducation(ctx context.Context, id string, req *EducationUpdateRequest) (*Education, apperrors.Error) {
	educationID, err := parseID("educationId", id)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	upd := &models.EducationUpdate{
		Institution: req.Institution,
		Degree:      req.Degree,
	}
	if req.Translations != nil {
		translations, err := toJSONB(req.Translations)
		if err != nil {
			return nil, err
		}
		upd.Translations = &translations
	}
	if req.StartDate != nil {
		start, err := parseDate("start_date", *req.StartDate)
		if err != nil {
			return nil, err
		}
		upd.StartDate = &start
	}
	if req.EndDate != nil {
		end, err := parseDate("end_date", *req.EndDate)
		if err != nil {
			return nil, err
		}
		if upd.StartDate != nil && end.Before(*upd.StartDate) {
			return nil, invalidDateRange(*req.StartDate, *req.EndDate)
		}
		upd.EndDate = &end
	}

	m, err := db.DB(ctx).UpdateEducation(ctx, educationID, upd)
	if err != nil {
		return nil, err
	}
	return educationFromModel(m)
}

// DeleteEducation removes an education and returns its last-known values.
func DeleteEducation(ctx context.Context, id string) (*Education, apperrors.Error) {
	educationID, err := parseID("educationId", id)
	if err != nil {
		return nil, err
	}
	m, err := db.DB(ctx).DeleteEducation(ctx, educationID)
	if err != nil {
		return nil, err
	}
	return educationFromModel(m)
}

func educationFromModel(m *models.Education) (*Education, apperrors.Error) {
	translations, err := entryTranslationsFromJSONB(m.Translations)
	if err != nil {
		return nil, err
	}
	var degree *string
	if m.Degree.Valid {
		d := m.Degree.String
		degree = &d
	}
	return &Education{
		ID:           m.EducationID.String(),
		Institution:  m.Institution,
		Degree:       degree,
		Translations: translations,
		StartDate:    fmtTime(m.StartDate),
		EndDate:      fmtNullTime(m.EndDate),
		CreatedAt:    fmtTime(m.CreatedAt),
		UpdatedAt:    fmtNullTime(m.UpdatedAt),
	}, nil
}

func nullStringFromPtr(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
