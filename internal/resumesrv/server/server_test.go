package server

import (
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumeworks/resumesrv/internal/resumesrv/db/dberror"
	"github.com/resumeworks/resumesrv/internal/resumesrv/resumemanager"
)

func TestGetVersion(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "/version", nil)
	rr := executeTestRequest(t, req)

	require.Equal(t, http.StatusOK, rr.Code)
	checkHeader(t, rr.Result().Header)

	var rsp GetVersionRsp
	decodeResult(t, rr, &rsp)
	assert.NotEmpty(t, rsp.ServerVersion)
	assert.Equal(t, "v1", rsp.ApiVersion)
}

func TestExperienceLifecycle(t *testing.T) {
	// Create
	req, _ := http.NewRequest(http.MethodPost, "/experiences", nil)
	setRequestBodyAndHeader(t, req, `{
		"company_name": "Acme GmbH",
		"translations": {
			"en": {"title": "Backend Engineer", "description": "Built services"},
			"de": {"title": "Backend-Entwickler", "description": "Dienste gebaut"}
		},
		"start_date": "2021-06-01"
	}`)
	rr := executeTestRequest(t, req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	checkHeader(t, rr.Result().Header)

	var created resumemanager.Experience
	decodeResult(t, rr, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "/experiences/"+created.ID, rr.Result().Header.Get("Location"))
	assert.Equal(t, "Acme GmbH", created.CompanyName)
	assert.Equal(t, "Backend Engineer", created.Translations[resumemanager.LangEN].Title)
	assert.Nil(t, created.EndDate)
	defer deleteEntity(t, "/experiences/"+created.ID)

	// Get
	req, _ = http.NewRequest(http.MethodGet, "/experiences/"+created.ID, nil)
	rr = executeTestRequest(t, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var got resumemanager.Experience
	decodeResult(t, rr, &got)
	assert.Equal(t, created.ID, got.ID)

	// Partial update: only the company name changes.
	req, _ = http.NewRequest(http.MethodPut, "/experiences/"+created.ID, nil)
	setRequestBodyAndHeader(t, req, `{"company_name": "Initech"}`)
	rr = executeTestRequest(t, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var updated resumemanager.Experience
	decodeResult(t, rr, &updated)
	assert.Equal(t, "Initech", updated.CompanyName)
	assert.Equal(t, created.Translations, updated.Translations)
	assert.NotNil(t, updated.UpdatedAt)

	// Delete, then the id is gone.
	req, _ = http.NewRequest(http.MethodDelete, "/experiences/"+created.ID, nil)
	rr = executeTestRequest(t, req)
	require.Equal(t, http.StatusOK, rr.Code)

	req, _ = http.NewRequest(http.MethodGet, "/experiences/"+created.ID, nil)
	rr = executeTestRequest(t, req)
	require.Equal(t, http.StatusNotFound, rr.Code)
	env := decodeEnvelope(t, rr)
	require.NotNil(t, env.Error)
	assert.Equal(t, dberror.TypeExperienceNotFound, env.Error.Type)
	assert.Equal(t, "null", strings.TrimSpace(string(env.Result)))
}

func TestAddExperienceInvalidInput(t *testing.T) {
	req, _ := http.NewRequest(http.MethodPost, "/experiences", nil)
	setRequestBodyAndHeader(t, req, `{
		"translations": {"en": {"title": "t", "description": "d"}},
		"start_date": "2021-06-01"
	}`)
	rr := executeTestRequest(t, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	env := decodeEnvelope(t, rr)
	require.NotNil(t, env.Error)
	assert.Equal(t, dberror.TypeInvalidInput, env.Error.Type)
}

func TestAddExperienceRejectsBadDateOrder(t *testing.T) {
	req, _ := http.NewRequest(http.MethodPost, "/experiences", nil)
	setRequestBodyAndHeader(t, req, `{
		"company_name": "Acme",
		"translations": {"en": {"title": "t", "description": "d"}},
		"start_date": "2021-06-01",
		"end_date": "2020-01-01"
	}`)
	rr := executeTestRequest(t, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	env := decodeEnvelope(t, rr)
	require.NotNil(t, env.Error)
	assert.Equal(t, dberror.TypeInvalidInput, env.Error.Type)
}

func TestSkillLevelOnWire(t *testing.T) {
	req, _ := http.NewRequest(http.MethodPost, "/skills", nil)
	setRequestBodyAndHeader(t, req, `{"translations": {"en": {"title": "Go"}}, "level": 3}`)
	rr := executeTestRequest(t, req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var skill resumemanager.Skill
	decodeResult(t, rr, &skill)
	assert.Equal(t, 3, skill.Level)
	defer deleteEntity(t, "/skills/"+skill.ID)

	// Level bounds are enforced.
	req, _ = http.NewRequest(http.MethodPut, "/skills/"+skill.ID, nil)
	setRequestBodyAndHeader(t, req, `{"level": 9}`)
	rr = executeTestRequest(t, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	req, _ = http.NewRequest(http.MethodPut, "/skills/"+skill.ID, nil)
	setRequestBodyAndHeader(t, req, `{"level": 5}`)
	rr = executeTestRequest(t, req)
	require.Equal(t, http.StatusOK, rr.Code)
	decodeResult(t, rr, &skill)
	assert.Equal(t, 5, skill.Level)
}

func TestLinkProcedures(t *testing.T) {
	skill := createTestSkill(t)
	defer deleteEntity(t, "/skills/"+skill.ID)

	experience := createTestExperience(t)
	defer deleteEntity(t, "/experiences/"+experience.ID)

	linkPath := "/skills/" + skill.ID + "/experiences/" + experience.ID

	req, _ := http.NewRequest(http.MethodPost, linkPath, nil)
	rr := executeTestRequest(t, req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var link resumemanager.SkillExperienceLink
	decodeResult(t, rr, &link)
	assert.Equal(t, skill.ID, link.SkillID)
	assert.Equal(t, experience.ID, link.ExperienceID)

	// Linking the same pair again conflicts.
	req, _ = http.NewRequest(http.MethodPost, linkPath, nil)
	rr = executeTestRequest(t, req)
	require.Equal(t, http.StatusConflict, rr.Code)
	env := decodeEnvelope(t, rr)
	require.NotNil(t, env.Error)
	assert.Equal(t, dberror.TypeAlreadyExists, env.Error.Type)

	// A missing counterpart reports its own kind.
	req, _ = http.NewRequest(http.MethodPost, "/skills/"+skill.ID+"/experiences/"+uuid.NewString(), nil)
	rr = executeTestRequest(t, req)
	require.Equal(t, http.StatusNotFound, rr.Code)
	env = decodeEnvelope(t, rr)
	require.NotNil(t, env.Error)
	assert.Equal(t, dberror.TypeExperienceNotFound, env.Error.Type)

	// Listing from both sides.
	req, _ = http.NewRequest(http.MethodGet, "/skills/"+skill.ID+"/experiences", nil)
	rr = executeTestRequest(t, req)
	require.Equal(t, http.StatusOK, rr.Code)
	var links []resumemanager.SkillExperienceLink
	decodeResult(t, rr, &links)
	require.Len(t, links, 1)

	req, _ = http.NewRequest(http.MethodGet, "/experiences/"+experience.ID+"/skills", nil)
	rr = executeTestRequest(t, req)
	require.Equal(t, http.StatusOK, rr.Code)
	decodeResult(t, rr, &links)
	require.Len(t, links, 1)
	assert.Equal(t, skill.ID, links[0].SkillID)

	// Unlink, then the pair is gone.
	req, _ = http.NewRequest(http.MethodDelete, linkPath, nil)
	rr = executeTestRequest(t, req)
	require.Equal(t, http.StatusOK, rr.Code)

	req, _ = http.NewRequest(http.MethodDelete, linkPath, nil)
	rr = executeTestRequest(t, req)
	require.Equal(t, http.StatusNotFound, rr.Code)
	env = decodeEnvelope(t, rr)
	require.NotNil(t, env.Error)
	assert.Equal(t, dberror.TypeSkillLinkNotFound, env.Error.Type)
}

func TestResumePage(t *testing.T) {
	experience := createTestExperience(t)
	defer deleteEntity(t, "/experiences/"+experience.ID)

	req, _ := http.NewRequest(http.MethodGet, "/resume?lang=de", nil)
	rr := executeTestRequest(t, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Result().Header.Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), experience.CompanyName)
	assert.Contains(t, rr.Body.String(), experience.Translations[resumemanager.LangDE].Title)
}

func createTestExperience(t *testing.T) *resumemanager.Experience {
	t.Helper()
	req, _ := http.NewRequest(http.MethodPost, "/experiences", nil)
	setRequestBodyAndHeader(t, req, `{
		"company_name": "Acme GmbH",
		"translations": {
			"en": {"title": "Backend Engineer", "description": "Built services"},
			"de": {"title": "Backend-Entwickler", "description": "Dienste gebaut"}
		},
		"start_date": "2021-06-01"
	}`)
	rr := executeTestRequest(t, req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var experience resumemanager.Experience
	decodeResult(t, rr, &experience)
	return &experience
}

func createTestSkill(t *testing.T) *resumemanager.Skill {
	t.Helper()
	req, _ := http.NewRequest(http.MethodPost, "/skills", nil)
	setRequestBodyAndHeader(t, req, `{"translations": {"en": {"title": "Go"}, "de": {"title": "Go"}}, "level": 4}`)
	rr := executeTestRequest(t, req)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	var skill resumemanager.Skill
	decodeResult(t, rr, &skill)
	return &skill
}

func deleteEntity(t *testing.T, path string) {
	t.Helper()
	req, _ := http.NewRequest(http.MethodDelete, path, nil)
	rr := executeTestRequest(t, req)
	if rr.Code != http.StatusOK && rr.Code != http.StatusNotFound {
		t.Logf("cleanup delete %s returned %d", path, rr.Code)
	}
}
