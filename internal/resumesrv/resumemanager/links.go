package resumemanager

import (
	"context"

	"github.com/resumeworks/resumesrv/internal/common/apperrors"
	"github.com/resumeworks/resumesrv/internal/resumesrv/db"
	"github.com/resumeworks/resumesrv/internal/resumesrv/db/models"
)

// SkillExperienceLink is the transport shape of a skill-experience association.
type SkillExperienceLink struct {
	SkillID      string `json:"skill_id"`
	ExperienceID string `json:"experience_id"`
	CreatedAt    string `json:"created_at"`
}

// SkillEducationLink is the transport shape of a skill-education association.
type SkillEducationLink struct {
	SkillID     string `json:"skill_id"`
	EducationID string `json:"education_id"`
	CreatedAt   string `json:"created_at"`
}

// LinkSkillToExperience associates a skill with an experience. Both sides
// must exist; linking the same pair twice is rejected.
func LinkSkillToExperience(ctx context.Context, skillID, experienceID string) (*SkillExperienceLink, apperrors.Error) {
	sid, err := parseID("skillId", skillID)
	if err != nil {
		return nil, err
	}
	eid, err := parseID("experienceId", experienceID)
	if err != nil {
		return nil, err
	}
	m, err := db.DB(ctx).LinkSkillToExperience(ctx, sid, eid)
	if err != nil {
		return nil, err
	}
	return skillExperienceLinkFromModel(m), nil
}

// UnlinkSkillFromExperience removes a skill-experience association.
func UnlinkSkillFromExperience(ctx context.Context, skillID, experienceID string) (*SkillExperienceLink, apperrors.Error) {
	sid, err := parseID("skillId", skillID)
	if err != nil {
		return nil, err
	}
	eid, err := parseID("experienceId", experienceID)
	if err != nil {
		return nil, err
	}
	m, err := db.DB(ctx).UnlinkSkillFromExperience(ctx, sid, eid)
	if err != nil {
		return nil, err
	}
	return skillExperienceLinkFromModel(m), nil
}

// LinkSkillToEducation associates a skill with an education. Both sides must
// exist; linking the same pair twice is rejected.
func LinkSkillToEducation(ctx context.Context, skillID, educationID string) (*SkillEducationLink, apperrors.Error) {
	sid, err := parseID("skillId", skillID)
	if err != nil {
		return nil, err
	}
	eid, err := parseID("educationId", educationID)
	if err != nil {
		return nil, err
	}
	m, err := db.DB(ctx).LinkSkillToEducation(ctx, sid, eid)
	if err != nil {
		return nil, err
	}
	return skillEducationLinkFromModel(m), nil
}

// UnlinkSkillFromEducation removes a skill-education association.
func UnlinkSkillFromEducation(ctx context.Context, skillID, educationID string) (*SkillEducationLink, apperrors.Error) {
	sid, err := parseID("skillId", skillID)
	if err != nil {
		return nil, err
	}
	eid, err := parseID("educationId", educationID)
	if err != nil {
		return nil, err
	}
	m, err := db.DB(ctx).UnlinkSkillFromEducation(ctx, sid, eid)
	if err != nil {
		return nil, err
	}
	return skillEducationLinkFromModel(m), nil
}

// ListLinkedExperiences returns the experience links held by a skill.
func ListLinkedExperiences(ctx context.Context, skillID string) ([]*SkillExperienceLink, apperrors.Error) {
	sid, err := parseID("skillId", skillID)
	if err != nil {
		return nil, err
	}
	ms, err := db.DB(ctx).ListLinkedExperiences(ctx, sid)
	if err != nil {
		return nil, err
	}
	return skillExperienceLinksFromModels(ms), nil
}

// ListLinkedEducations returns the education links held by a skill.
func ListLinkedEducations(ctx context.Context, skillID string) ([]*SkillEducationLink, apperrors.Error) {
	sid, err := parseID("skillId", skillID)
	if err != nil {
		return nil, err
	}
	ms, err := db.DB(ctx).ListLinkedEducations(ctx, sid)
	if err != nil {
		return nil, err
	}
	return skillEducationLinksFromModels(ms), nil
}

// ListLinksByExperience returns the skill links held by an experience.
func ListLinksByExperience(ctx context.Context, experienceID string) ([]*SkillExperienceLink, apperrors.Error) {
	eid, err := parseID("experienceId", experienceID)
	if err != nil {
		return nil, err
	}
	ms, err := db.DB(ctx).ListLinksByExperience(ctx, eid)
	if err != nil {
		return nil, err
	}
	return skillExperienceLinksFromModels(ms), nil
}

// ListLinksByEducation returns the skill links held by an education.
func ListLinksByEducation(ctx context.Context, educationID string) ([]*SkillEducationLink, apperrors.Error) {
	eid, err := parseID("educationId", educationID)
	if err != nil {
		return nil, err
	}
	ms, err := db.DB(ctx).ListLinksByEducation(ctx, eid)
	if err != nil {
		return nil, err
	}
	return skillEducationLinksFromModels(ms), nil
}

func skillExperienceLinkFromModel(m *models.SkillExperienceLink) *SkillExperienceLink {
	return &SkillExperienceLink{
		SkillID:      m.SkillID.String(),
		ExperienceID: m.ExperienceID.String(),
		CreatedAt:    fmtTime(m.CreatedAt),
	}
}

func skillExperienceLinksFromModels(ms []*models.SkillExperienceLink) []*SkillExperienceLink {
	links := make([]*SkillExperienceLink, 0, len(ms))
	for _, m := range ms {
		links = append(links, skillExperienceLinkFromModel(m))
	}
	return links
}

func skillEducationLinkFromModel(m *models.SkillEducationLink) *SkillEducationLink {
	return &SkillEducationLink{
		SkillID:     m.SkillID.String(),
		EducationID: m.EducationID.String(),
		CreatedAt:   fmtTime(m.CreatedAt),
	}
}

func skillEducationLinksFromModels(ms []*models.SkillEducationLink) []*SkillEducationLink {
	links := make([]*SkillEducationLink, 0, len(ms))
	for _, m := range ms {
		links = append(links, skillEducationLinkFromModel(m))
	}
	return links
}
