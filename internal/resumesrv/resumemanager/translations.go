package resumemanager

import (
	"github.com/jackc/pgtype"
	jsoniter "github.com/json-iterator/go"

	"github.com/resumeworks/resumesrv/internal/common/apperrors"
	"github.com/resumeworks/resumesrv/internal/resumesrv/db/dberror"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LanguageCode is one of the closed set of supported translation languages.
type LanguageCode string

const (
	LangDE LanguageCode = "de"
	LangEN LanguageCode = "en"
)

// EntryTranslation is the per-language content of an experience or education.
type EntryTranslation struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// SkillTranslation is the per-language content of a skill. Skills carry no
// description.
type SkillTranslation struct {
	Title string `json:"title" validate:"required"`
}

type EntryTranslations map[LanguageCode]EntryTranslation

type SkillTranslations map[LanguageCode]SkillTranslation

// toJSONB marshals a translation map into the stored JSONB column value.
func toJSONB(v any) (pgtype.JSONB, apperrors.Error) {
	var j pgtype.JSONB
	b, err := json.Marshal(v)
	if err != nil {
		return j, dberror.ErrInvalidInput.MsgErr("unable to encode translations", err)
	}
	if err := j.Set(b); err != nil {
		return j, dberror.ErrInvalidInput.MsgErr("unable to encode translations", err)
	}
	return j, nil
}

func entryTranslationsFromJSONB(j pgtype.JSONB) (EntryTranslations, apperrors.Error) {
	t := EntryTranslations{}
	if j.Status != pgtype.Present {
		return t, nil
	}
	if err := json.Unmarshal(j.Bytes, &t); err != nil {
		return nil, dberror.ErrDatabase.MsgErr("unable to decode translations", err)
	}
	return t, nil
}

func skillTranslationsFromJSONB(j pgtype.JSONB) (SkillTranslations, apperrors.Error) {
	t := SkillTranslations{}
	if j.Status != pgtype.Present {
		return t, nil
	}
	if err := json.Unmarshal(j.Bytes, &t); err != nil {
		return nil, dberror.ErrDatabase.MsgErr("unable to decode translations", err)
	}
	return t, nil
}
