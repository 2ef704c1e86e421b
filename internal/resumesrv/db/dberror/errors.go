package dberror

import (
	"net/http"

	"github.com/resumeworks/resumesrv/internal/common/apperrors"
)

// Error-kind taxonomy. Every storage failure is converted into one of these
// tagged values before it leaves the db package; nothing throws across the
// boundary.
var (
	ErrDatabase            apperrors.Error = apperrors.New("db error").SetStatusCode(http.StatusInternalServerError)
	ErrInvalidInput        apperrors.Error = ErrDatabase.New("invalid input").SetStatusCode(http.StatusBadRequest)
	ErrAlreadyExists       apperrors.Error = ErrDatabase.New("already exists").SetStatusCode(http.StatusConflict)
	ErrExperienceNotFound  apperrors.Error = ErrDatabase.New("experience not found").SetStatusCode(http.StatusNotFound)
	ErrEducationNotFound   apperrors.Error = ErrDatabase.New("education not found").SetStatusCode(http.StatusNotFound)
	ErrSkillNotFound       apperrors.Error = ErrDatabase.New("skill not found").SetStatusCode(http.StatusNotFound)
	ErrSkillLinkNotFound   apperrors.Error = ErrDatabase.New("skill link not found").SetStatusCode(http.StatusNotFound)
)

// Wire tags for the error kinds, serialized in the response envelope.
const (
	TypePersistence        = "PERSISTENCE"
	TypeInvalidInput       = "INVALID_INPUT"
	TypeAlreadyExists      = "ALREADY_EXISTS"
	TypeExperienceNotFound = "EXPERIENCE_NOT_FOUND"
	TypeEducationNotFound  = "EDUCATION_NOT_FOUND"
	TypeSkillNotFound      = "SKILL_NOT_FOUND"
	TypeSkillLinkNotFound  = "SKILL_LINK_NOT_FOUND"
)

// Type resolves an error value to its wire tag. Unknown errors report as
// persistence failures, matching the defensive-normalization policy.
func Type(err error) string {
	appErr, ok := err.(apperrors.Error)
	if !ok {
		return TypePersistence
	}
	switch {
	case appErr.Is(ErrExperienceNotFound):
		return TypeExperienceNotFound
	case appErr.Is(ErrEducationNotFound):
		return TypeEducationNotFound
	case appErr.Is(ErrSkillNotFound):
		return TypeSkillNotFound
	case appErr.Is(ErrSkillLinkNotFound):
		return TypeSkillLinkNotFound
	case appErr.Is(ErrAlreadyExists):
		return TypeAlreadyExists
	case appErr.Is(ErrInvalidInput):
		return TypeInvalidInput
	default:
		return TypePersistence
	}
}
