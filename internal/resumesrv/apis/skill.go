package apis

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/resumeworks/resumesrv/internal/common/httpx"
	"github.com/resumeworks/resumesrv/internal/resumesrv/resumemanager"
)

func addSkill(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	req := &resumemanager.SkillRequest{}
	if err := httpx.GetRequestData(r, req); err != nil {
		return nil, err
	}
	skill, err := resumemanager.AddSkill(ctx, req)
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Location:   "/skills/" + skill.ID,
		Response:   skill,
	}, nil
}

func getSkill(r *http.Request) (*httpx.Response, error) {
	skill, err := resumemanager.GetSkill(r.Context(), chi.URLParam(r, "skillId"))
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   skill,
	}, nil
}

func listSkills(r *http.Request) (*httpx.Response, error) {
	skills, err := resumemanager.ListSkills(r.Context())
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   skills,
	}, nil
}

func updateSkill(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	req := &resumemanager.SkillUpdateRequest{}
	if err := httpx.GetRequestData(r, req); err != nil {
		return nil, err
	}
	skill, err := resumemanager.UpdateSkill(ctx, chi.URLParam(r, "skillId"), req)
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   skill,
	}, nil
}

func deleteSkill(r *http.Request) (*httpx.Response, error) {
	skill, err := resumemanager.DeleteSkill(r.Context(), chi.URLParam(r, "skillId"))
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   skill,
	}, nil
}
