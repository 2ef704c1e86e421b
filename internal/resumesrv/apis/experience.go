package apis

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/resumeworks/resumesrv/internal/common/httpx"
	"github.com/resumeworks/resumesrv/internal/resumesrv/resumemanager"
)

func addExperience(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	req := &resumemanager.ExperienceRequest{}
	if err := httpx.GetRequestData(r, req); err != nil {
		return nil, err
	}
	experience, err := resumemanager.AddExperience(ctx, req)
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Location:   "/experiences/" + experience.ID,
		Response:   experience,
	}, nil
}

func getExperience(r *http.Request) (*httpx.Response, error) {
	experience, err := resumemanager.GetExperience(r.Context(), chi.URLParam(r, "experienceId"))
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   experience,
	}, nil
}

func listExperiences(r *http.Request) (*httpx.Response, error) {
	experiences, err := resumemanager.ListExperiences(r.Context())
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   experiences,
	}, nil
}

func updateExperience(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	req := &resumemanager.ExperienceUpdateRequest{}
	if err := httpx.GetRequestData(r, req); err != nil {
		return nil, err
	}
	experience, err := resumemanager.UpdateExperience(ctx, chi.URLParam(r, "experienceId"), req)
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   experience,
	}, nil
}

func deleteExperience(r *http.Request) (*httpx.Response, error) {
	experience, err := resumemanager.DeleteExperience(r.Context(), chi.URLParam(r, "experienceId"))
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   experience,
	}, nil
}
