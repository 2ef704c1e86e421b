package db

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumeworks/resumesrv/internal/resumesrv/db/dberror"
	"github.com/resumeworks/resumesrv/internal/resumesrv/db/models"
)

func TestAddGetSkill(t *testing.T) {
	ctx := newDb(t)
	defer DB(ctx).Close(ctx)

	skill := newTestSkill(t)
	err := DB(ctx).AddSkill(ctx, skill)
	require.NoError(t, err)
	defer DB(ctx).DeleteSkill(ctx, skill.SkillID)

	assert.NotEqual(t, uuid.Nil, skill.SkillID)
	assert.False(t, skill.CreatedAt.IsZero())

	got, err := DB(ctx).GetSkill(ctx, skill.SkillID)
	require.NoError(t, err)
	assert.Equal(t, "4", got.Level)
	assert.JSONEq(t, string(skill.Translations.Bytes), string(got.Translations.Bytes))

	_, err = DB(ctx).GetSkill(ctx, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, dberror.ErrSkillNotFound)
}

func TestListSkills(t *testing.T) {
	ctx := newDb(t)
	defer DB(ctx).Close(ctx)

	skill := newTestSkill(t)
	require.NoError(t, DB(ctx).AddSkill(ctx, skill))
	defer DB(ctx).DeleteSkill(ctx, skill.SkillID)

	skills, err := DB(ctx).ListSkills(ctx)
	require.NoError(t, err)

	found := false
	for _, s := range skills {
		if s.SkillID == skill.SkillID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestUpdateSkill(t *testing.T) {
	ctx := newDb(t)
	defer DB(ctx).Close(ctx)

	skill := newTestSkill(t)
	require.NoError(t, DB(ctx).AddSkill(ctx, skill))
	defer DB(ctx).DeleteSkill(ctx, skill.SkillID)

	level := "5"
	got, err := DB(ctx).UpdateSkill(ctx, skill.SkillID, &models.SkillUpdate{Level: &level})
	require.NoError(t, err)
	assert.Equal(t, "5", got.Level)
	assert.True(t, got.UpdatedAt.Valid)
	assert.JSONEq(t, string(skill.Translations.Bytes), string(got.Translations.Bytes))

	_, err = DB(ctx).UpdateSkill(ctx, uuid.New(), &models.SkillUpdate{Level: &level})
	require.Error(t, err)
	assert.ErrorIs(t, err, dberror.ErrSkillNotFound)
}

func TestDeleteSkill(t *testing.T) {
	ctx := newDb(t)
	defer DB(ctx).Close(ctx)

	skill := newTestSkill(t)
	require.NoError(t, DB(ctx).AddSkill(ctx, skill))

	got, err := DB(ctx).DeleteSkill(ctx, skill.SkillID)
	require.NoError(t, err)
	assert.Equal(t, skill.SkillID, got.SkillID)

	_, err = DB(ctx).DeleteSkill(ctx, skill.SkillID)
	require.Error(t, err)
	assert.ErrorIs(t, err, dberror.ErrSkillNotFound)
}
