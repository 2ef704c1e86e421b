// Package resumemanager sits between the RPC handlers and the store. It
// validates inputs, converts between transport shapes and row models, and
// never holds a transaction of its own; the store owns transaction lifetime.
package resumemanager

import (
	"context"

	"github.com/resumeworks/resumesrv/internal/common/apperrors"
	"github.com/resumeworks/resumesrv/internal/resumesrv/db"
	"github.com/resumeworks/resumesrv/internal/resumesrv/db/models"
)

// Experience is the transport shape of an experience record.
type Experience struct {
	ID           string            `json:"id"`
	CompanyName  string            `json:"company_name"`
	Translations EntryTranslations `json:"translations"`
	StartDate    string            `json:"start_date"`
	EndDate      *string           `json:"end_date,omitempty"`
	CreatedAt    string            `json:"created_at"`
	UpdatedAt    *string           `json:"updated_at,omitempty"`
}

// ExperienceRequest carries the caller-settable fields of an experience.
// Identifier and timestamps are always store-assigned.
type ExperienceRequest struct {
	CompanyName  string            `json:"company_name" validate:"required"`
	Translations EntryTranslations `json:"translations" validate:"required,min=1,dive,keys,oneof=de en,endkeys"`
	StartDate    string            `json:"start_date" validate:"required"`
	EndDate      *string           `json:"end_date" validate:"omitempty"`
}

// ExperienceUpdateRequest carries a partial field replacement; nil fields
// stay unchanged.
type ExperienceUpdateRequest struct {
	CompanyName  *string           `json:"company_name" validate:"omitempty,min=1"`
	Translations EntryTranslations `json:"translations" validate:"omitempty,min=1,dive,keys,oneof=de en,endkeys"`
	StartDate    *string           `json:"start_date"`
	EndDate      *string           `json:"end_date"`
}

// GetExperience returns the experience with the given id.
func GetExperience(ctx context.Context, id string) (*Experience, apperrors.Error) {
	experienceID, err := parseID("experienceId", id)
	if err != nil {
		return nil, err
	}
	m, err := db.DB(ctx).GetExperience(ctx, experienceID)
	if err != nil {
		return nil, err
	}
	return experienceFromModel(m)
}

// ListExperiences returns all experiences; an empty list is a success.
func ListExperiences(ctx context.Context) ([]*Experience, apperrors.Error) {
	ms, err := db.DB(ctx).ListExperiences(ctx)
	if err != nil {
		return nil, err
	}
	experiences := make([]*Experience, 0, len(ms))
	for _, m := range ms {
		experience, err := experienceFromModel(m)
		if err != nil {
			return nil, err
		}
		experiences = append(experiences, experience)
	}
	return experiences, nil
}

// AddExperience validates and stores a new experience.
func AddExperience(ctx context.Context, req *ExperienceRequest) (*Experience, apperrors.Error) {
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

	m := &models.Experience{
		CompanyName:  req.CompanyName,
		Translations: translations,
		StartDate:    start,
		EndDate:      nullTimeFromPtr(end),
	}
	if err := db.DB(ctx).AddExperience(ctx, m); err != nil {
		return nil, err
	}
	return experienceFromModel(m)
}

// UpdateExperience applies a partial update to an existing experience.
func UpdateExperience(ctx context.Context, id string, req *ExperienceUpdateRequest) (*Experience, apperrors.Error) {
	experienceID, err := parseID("experienceId", id)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	upd := &models.ExperienceUpdate{
		CompanyName: req.CompanyName,
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

	m, err := db.DB(ctx).UpdateExperience(ctx, experienceID, upd)
	if err != nil {
		return nil, err
	}
	return experienceFromModel(m)
}

// DeleteExperience removes an experience and returns its last-known values.
func DeleteExperience(ctx context.Context, id string) (*Experience, apperrors.Error) {
	experienceID, err := parseID("experienceId", id)
	if err != nil {
		return nil, err
	}
	m, err := db.DB(ctx).DeleteExperience(ctx, experienceID)
	if err != nil {
		return nil, err
	}
	return experienceFromModel(m)
}

func experienceFromModel(m *models.Experience) (*Experience, apperrors.Error) {
	translations, err := entryTranslationsFromJSONB(m.Translations)
	if err != nil {
		return nil, err
	}
	return &Experience{
		ID:           m.ExperienceID.String(),
		CompanyName:  m.CompanyName,
		Translations: translations,
		StartDate:    fmtTime(m.StartDate),
		EndDate:      fmtNullTime(m.EndDate),
		CreatedAt:    fmtTime(m.CreatedAt),
		UpdatedAt:    fmtNullTime(m.UpdatedAt),
	}, nil
}
