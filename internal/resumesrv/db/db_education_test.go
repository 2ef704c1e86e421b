package db

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumeworks/resumesrv/internal/resumesrv/db/dberror"
	"github.com/resumeworks/resumesrv/internal/resumesrv/db/models"
)

func TestAddGetEducation(t *testing.T) {
	ctx := newDb(t)
	defer DB(ctx).Close(ctx)

	education := newTestEducation(t)
	err := DB(ctx).AddEducation(ctx, education)
	require.NoError(t, err)
	defer DB(ctx).DeleteEducation(ctx, education.EducationID)

	assert.NotEqual(t, uuid.Nil, education.EducationID)
	assert.False(t, education.CreatedAt.IsZero())

	got, err := DB(ctx).GetEducation(ctx, education.EducationID)
	require.NoError(t, err)
	assert.Equal(t, "TU Berlin", got.Institution)
	assert.False(t, got.Degree.Valid)
	assert.JSONEq(t, string(education.Translations.Bytes), string(got.Translations.Bytes))

	_, err = DB(ctx).GetEducation(ctx, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, dberror.ErrEducationNotFound)
}

func TestAddEducationWithDegree(t *testing.T) {
	ctx := newDb(t)
	defer DB(ctx).Close(ctx)

	education := newTestEducation(t)
	education.Degree = sql.NullString{String: "M.Sc.", Valid: true}
	require.NoError(t, DB(ctx).AddEducation(ctx, education))
	defer DB(ctx).DeleteEducation(ctx, education.EducationID)

	got, err := DB(ctx).GetEducation(ctx, education.EducationID)
	require.NoError(t, err)
	require.True(t, got.Degree.Valid)
	assert.Equal(t, "M.Sc.", got.Degree.String)
}

func TestUpdateEducation(t *testing.T) {
	ctx := newDb(t)
	defer DB(ctx).Close(ctx)

	education := newTestEducation(t)
	require.NoError(t, DB(ctx).AddEducation(ctx, education))
	defer DB(ctx).DeleteEducation(ctx, education.EducationID)

	degree := "B.Sc."
	got, err := DB(ctx).UpdateEducation(ctx, education.EducationID, &models.EducationUpdate{
		Degree: &degree,
	})
	require.NoError(t, err)
	require.True(t, got.Degree.Valid)
	assert.Equal(t, "B.Sc.", got.Degree.String)
	assert.Equal(t, "TU Berlin", got.Institution)
	assert.True(t, got.UpdatedAt.Valid)

	_, err = DB(ctx).UpdateEducation(ctx, uuid.New(), &models.EducationUpdate{Degree: &degree})
	require.Error(t, err)
	assert.ErrorIs(t, err, dberror.ErrEducationNotFound)
}

func TestDeleteEducation(t *testing.T) {
	ctx := newDb(t)
	defer DB(ctx).Close(ctx)

	education := newTestEducation(t)
	require.NoError(t, DB(ctx).AddEducation(ctx, education))

	got, err := DB(ctx).DeleteEducation(ctx, education.EducationID)
	require.NoError(t, err)
	assert.Equal(t, education.EducationID, got.EducationID)

	_, err = DB(ctx).DeleteEducation(ctx, education.EducationID)
	require.Error(t, err)
	assert.ErrorIs(t, err, dberror.ErrEducationNotFound)
}
