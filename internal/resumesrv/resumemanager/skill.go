package resumemanager

import (
	"context"
	"strconv"

	"github.com/resumeworks/resumesrv/internal/common/apperrors"
	"github.com/resumeworks/resumesrv/internal/resumesrv/db"
	"github.com/resumeworks/resumesrv/internal/resumesrv/db/dberror"
	"github.com/resumeworks/resumesrv/internal/resumesrv/db/models"
)

// Skill is the transport shape of a skill record. Level is numeric on the
// wire and converted to the stored varchar form at this layer.
type Skill struct {
	ID           string            `json:"id"`
	Translations SkillTranslations `json:"translations"`
	Level        int               `json:"level"`
	CreatedAt    string            `json:"created_at"`
	UpdatedAt    *string           `json:"updated_at,omitempty"`
}

// SkillRequest carries the caller-settable fields of a skill.
type SkillRequest struct {
	Translations SkillTranslations `json:"translations" validate:"required,min=1,dive,keys,oneof=de en,endkeys"`
	Level        int               `json:"level" validate:"required,min=1,max=5"`
}

// SkillUpdateRequest carries a partial field replacement; nil fields stay
// unchanged.
type SkillUpdateRequest struct {
	Translations SkillTranslations `json:"translations" validate:"omitempty,min=1,dive,keys,oneof=de en,endkeys"`
	Level        *int              `json:"level" validate:"omitempty,min=1,max=5"`
}

// GetSkill returns the skill with the given id.
func GetSkill(ctx context.Context, id string) (*Skill, apperrors.Error) {
	skillID, err := parseID("skillId", id)
	if err != nil {
		return nil, err
	}
	m, err := db.DB(ctx).GetSkill(ctx, skillID)
	if err != nil {
		return nil, err
	}
	return skillFromModel(m)
}

// ListSkills returns all skills; an empty list is a success.
func ListSkills(ctx context.Context) ([]*Skill, apperrors.Error) {
	ms, err := db.DB(ctx).ListSkills(ctx)
	if err != nil {
		return nil, err
	}
	skills := make([]*Skill, 0, len(ms))
	for _, m := range ms {
		skill, err := skillFromModel(m)
		if err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}
	return skills, nil
}

// AddSkill validates and stores a new skill.
func AddSkill(ctx context.Context, req *SkillRequest) (*Skill, apperrors.Error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	translations, err := toJSONB(req.Translations)
	if err != nil {
		return nil, err
	}

	m := &models.Skill{
		Translations: translations,
		Level:        strconv.Itoa(req.Level),
	}
	if err := db.DB(ctx).AddSkill(ctx, m); err != nil {
		return nil, err
	}
	return skillFromModel(m)
}

// UpdateSkill applies a partial update to an existing skill.
func UpdateSkill(ctx context.Context, id string, req *SkillUpdateRequest) (*Skill, apperrors.Error) {
	skillID, err := parseID("skillId", id)
	if err != nil {
		return nil, err
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	upd := &models.SkillUpdate{}
	if req.Translations != nil {
		translations, err := toJSONB(req.Translations)
		if err != nil {
			return nil, err
		}
		upd.Translations = &translations
	}
	if req.Level != nil {
		level := strconv.Itoa(*req.Level)
		upd.Level = &level
	}

	m, err := db.DB(ctx).UpdateSkill(ctx, skillID, upd)
	if err != nil {
		return nil, err
	}
	return skillFromModel(m)
}

// DeleteSkill removes a skill and returns its last-known values. Links held
// by the skill are cascade-deleted by the store.
func DeleteSkill(ctx context.Context, id string) (*Skill, apperrors.Error) {
	skillID, err := parseID("skillId", id)
	if err != nil {
		return nil, err
	}
	m, err := db.DB(ctx).DeleteSkill(ctx, skillID)
	if err != nil {
		return nil, err
	}
	return skillFromModel(m)
}

func skillFromModel(m *models.Skill) (*Skill, apperrors.Error) {
	translations, err := skillTranslationsFromJSONB(m.Translations)
	if err != nil {
		return nil, err
	}
	level, convErr := strconv.Atoi(m.Level)
	if convErr != nil {
		return nil, dberror.ErrDatabase.
			MsgErr("unable to decode skill level", convErr).
			SetCtx(map[string]any{"level": m.Level})
	}
	return &Skill{
		ID:           m.SkillID.String(),
		Translations: translations,
		Level:        level,
		CreatedAt:    fmtTime(m.CreatedAt),
		UpdatedAt:    fmtNullTime(m.UpdatedAt),
	}, nil
}
