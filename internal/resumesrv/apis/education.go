package apis

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/resumeworks/resumesrv/internal/common/httpx"
	"github.com/resumeworks/resumesrv/internal/resumesrv/resumemanager"
)

func addEducation(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	req := &resumemanager.EducationRequest{}
	if err := httpx.GetRequestData(r, req); err != nil {
		return nil, err
	}
	education, err := resumemanager.AddEducation(ctx, req)
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Location:   "/educations/" + education.ID,
		Response:   education,
	}, nil
}

func getEducation(r *http.Request) (*httpx.Response, error) {
	education, err := resumemanager.GetEducation(r.Context(), chi.URLParam(r, "educationId"))
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   education,
	}, nil
}

func listEducations(r *http.Request) (*httpx.Response, error) {
	educations, err := resumemanager.ListEducations(r.Context())
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   educations,
	}, nil
}

func updateEducation(r *http.Request) (*httpx.Response, error) {
	ctx := r.Context()

	req := &resumemanager.EducationUpdateRequest{}
	if err := httpx.GetRequestData(r, req); err != nil {
		return nil, err
	}
	education, err := resumemanager.UpdateEducation(ctx, chi.URLParam(r, "educationId"), req)
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   education,
	}, nil
}

func deleteEducation(r *http.Request) (*httpx.Response, error) {
	education, err := resumemanager.DeleteEducation(r.Context(), chi.URLParam(r, "educationId"))
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   education,
	}, nil
}
