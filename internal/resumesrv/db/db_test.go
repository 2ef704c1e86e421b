package db

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgtype"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"

	"github.com/resumeworks/resumesrv/internal/resumesrv/config"
	"github.com/resumeworks/resumesrv/internal/resumesrv/db/migrations"
	"github.com/resumeworks/resumesrv/internal/resumesrv/db/models"
)

// Tests run against the dev database configured by the package defaults.

var testDbOnce sync.Once

func newDb(t *testing.T) context.Context {
	t.Helper()
	ctx := log.Logger.WithContext(context.Background())
	testDbOnce.Do(func() {
		require.NoError(t, migrations.Run(ctx, config.Config().DB.Dsn()))
		require.NoError(t, Init(ctx))
	})
	ctx, err := ConnCtx(ctx)
	require.NoError(t, err)
	return ctx
}

func newJSONB(t *testing.T, s string) pgtype.JSONB {
	t.Helper()
	var j pgtype.JSONB
	require.NoError(t, j.Set(s))
	return j
}

func newTestExperience(t *testing.T) *models.Experience {
	return &models.Experience{
		CompanyName: "Acme GmbH",
		Translations: newJSONB(t, `{
			"en": {"title": "Backend Engineer", "description": "Built the resume service"},
			"de": {"title": "Backend-Entwickler", "description": "Lebenslauf-Dienst gebaut"}
		}`),
		StartDate: time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func newTestEducation(t *testing.T) *models.Education {
	return &models.Education{
		Institution: "TU Berlin",
		Translations: newJSONB(t, `{
			"en": {"title": "Computer Science", "description": "Systems focus"},
			"de": {"title": "Informatik", "description": "Schwerpunkt Systeme"}
		}`),
		StartDate: time.Date(2016, 10, 1, 0, 0, 0, 0, time.UTC),
	}
}

func newTestSkill(t *testing.T) *models.Skill {
	return &models.Skill{
		Translations: newJSONB(t, `{"en": {"title": "Go"}, "de": {"title": "Go"}}`),
		Level:        "4",
	}
}
