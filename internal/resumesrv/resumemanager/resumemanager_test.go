package resumemanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumeworks/resumesrv/internal/resumesrv/db/dberror"
	"github.com/resumeworks/resumesrv/internal/resumesrv/db/models"
)

func TestParseDate(t *testing.T) {
	got, err := parseDate("start_date", "2021-06-01")
	require.Nil(t, err)
	assert.Equal(t, 2021, got.Year())
	assert.Equal(t, time.June, got.Month())

	got, err = parseDate("start_date", "2021-06-01T09:30:00Z")
	require.Nil(t, err)
	assert.Equal(t, 9, got.Hour())

	_, err = parseDate("start_date", "June 1st 2021")
	require.NotNil(t, err)
	assert.ErrorIs(t, err, dberror.ErrInvalidInput)
}

func TestParseDateRange(t *testing.T) {
	end := "2020-01-01"
	_, _, err := parseDateRange("2021-06-01", &end)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, dberror.ErrInvalidInput)

	end = "2022-01-01"
	start, endT, err := parseDateRange("2021-06-01", &end)
	require.Nil(t, err)
	require.NotNil(t, endT)
	assert.True(t, start.Before(*endT))

	start, endT, err = parseDateRange("2021-06-01", nil)
	require.Nil(t, err)
	assert.Nil(t, endT)
	assert.False(t, start.IsZero())
}

func TestParseID(t *testing.T) {
	id := uuid.New()
	got, err := parseID("skillId", id.String())
	require.Nil(t, err)
	assert.Equal(t, id, got)

	_, err = parseID("skillId", "not-a-uuid")
	require.NotNil(t, err)
	assert.ErrorIs(t, err, dberror.ErrInvalidInput)
	assert.Equal(t, "not-a-uuid", err.Ctx()["skillId"])
}

func TestTranslationsRoundTrip(t *testing.T) {
	in := EntryTranslations{
		LangEN: {Title: "Engineer", Description: "Built backend services"},
		LangDE: {Title: "Ingenieur", Description: "Backend-Dienste gebaut"},
	}
	j, err := toJSONB(in)
	require.Nil(t, err)
	require.Equal(t, pgtype.Present, j.Status)

	out, err := entryTranslationsFromJSONB(j)
	require.Nil(t, err)
	assert.Equal(t, in, out)
}

func TestTranslationsFromNullJSONB(t *testing.T) {
	var j pgtype.JSONB
	j.Status = pgtype.Null

	out, err := entryTranslationsFromJSONB(j)
	require.Nil(t, err)
	assert.Empty(t, out)

	skills, err := skillTranslationsFromJSONB(j)
	require.Nil(t, err)
	assert.Empty(t, skills)
}

func TestSkillFromModel(t *testing.T) {
	translations, aerr := toJSONB(SkillTranslations{LangEN: {Title: "Go"}})
	require.Nil(t, aerr)

	m := &models.Skill{
		SkillID:      uuid.New(),
		Translations: translations,
		Level:        "4",
		CreatedAt:    time.Now(),
	}
	got, err := skillFromModel(m)
	require.Nil(t, err)
	assert.Equal(t, 4, got.Level)
	assert.Nil(t, got.UpdatedAt)

	m.Level = "abc"
	_, err = skillFromModel(m)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, dberror.ErrDatabase)
}

func TestFmtNullTime(t *testing.T) {
	assert.Nil(t, fmtNullTime(sql.NullTime{}))

	ts := time.Date(2021, 6, 1, 9, 30, 0, 0, time.UTC)
	got := fmtNullTime(sql.NullTime{Time: ts, Valid: true})
	require.NotNil(t, got)
	assert.Equal(t, "2021-06-01T09:30:00Z", *got)
}

func TestAddExperienceValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		req  *ExperienceRequest
	}{
		{
			name: "missing company name",
			req: &ExperienceRequest{
				Translations: EntryTranslations{LangEN: {Title: "t", Description: "d"}},
				StartDate:    "2021-06-01",
			},
		},
		{
			name: "missing translations",
			req: &ExperienceRequest{
				CompanyName: "Acme",
				StartDate:   "2021-06-01",
			},
		},
		{
			name: "unsupported language",
			req: &ExperienceRequest{
				CompanyName:  "Acme",
				Translations: EntryTranslations{"fr": {Title: "t", Description: "d"}},
				StartDate:    "2021-06-01",
			},
		},
		{
			name: "translation missing description",
			req: &ExperienceRequest{
				CompanyName:  "Acme",
				Translations: EntryTranslations{LangEN: {Title: "t"}},
				StartDate:    "2021-06-01",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AddExperience(ctx, tt.req)
			require.NotNil(t, err)
			assert.ErrorIs(t, err, dberror.ErrInvalidInput)
		})
	}
}

func TestAddExperienceDateOrder(t *testing.T) {
	end := "2020-01-01"
	_, err := AddExperience(context.Background(), &ExperienceRequest{
		CompanyName:  "Acme",
		Translations: EntryTranslations{LangEN: {Title: "t", Description: "d"}},
		StartDate:    "2021-06-01",
		EndDate:      &end,
	})
	require.NotNil(t, err)
	assert.ErrorIs(t, err, dberror.ErrInvalidInput)
}

func TestAddSkillValidation(t *testing.T) {
	ctx := context.Background()
	for _, level := range []int{0, 6, -1} {
		_, err := AddSkill(ctx, &SkillRequest{
			Translations: SkillTranslations{LangEN: {Title: "Go"}},
			Level:        level,
		})
		require.NotNil(t, err, "level %d", level)
		assert.ErrorIs(t, err, dberror.ErrInvalidInput)
	}
}

func TestUpdateRequestsRejectBadIDs(t *testing.T) {
	ctx := context.Background()

	_, err := UpdateExperience(ctx, "nope", &ExperienceUpdateRequest{})
	require.NotNil(t, err)
	assert.ErrorIs(t, err, dberror.ErrInvalidInput)

	_, err = LinkSkillToExperience(ctx, uuid.NewString(), "nope")
	require.NotNil(t, err)
	assert.ErrorIs(t, err, dberror.ErrInvalidInput)
}

func TestErrorIsChain(t *testing.T) {
	err := dberror.ErrSkillNotFound.Msg("skill not found")
	assert.True(t, errors.Is(err, dberror.ErrSkillNotFound))
	assert.False(t, errors.Is(err, dberror.ErrExperienceNotFound))
}
