package apis

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/resumeworks/resumesrv/internal/common/httpx"
	"github.com/resumeworks/resumesrv/internal/resumesrv/resumemanager"
)

func linkSkillToExperience(r *http.Request) (*httpx.Response, error) {
	link, err := resumemanager.LinkSkillToExperience(r.Context(),
		chi.URLParam(r, "skillId"), chi.URLParam(r, "experienceId"))
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Response:   link,
	}, nil
}

func unlinkSkillFromExperience(r *http.Request) (*httpx.Response, error) {
	link, err := resumemanager.UnlinkSkillFromExperience(r.Context(),
		chi.URLParam(r, "skillId"), chi.URLParam(r, "experienceId"))
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   link,
	}, nil
}

func linkSkillToEducation(r *http.Request) (*httpx.Response, error) {
	link, err := resumemanager.LinkSkillToEducation(r.Context(),
		chi.URLParam(r, "skillId"), chi.URLParam(r, "educationId"))
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusCreated,
		Response:   link,
	}, nil
}

func unlinkSkillFromEducation(r *http.Request) (*httpx.Response, error) {
	link, err := resumemanager.UnlinkSkillFromEducation(r.Context(),
		chi.URLParam(r, "skillId"), chi.URLParam(r, "educationId"))
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   link,
	}, nil
}

func listLinkedExperiences(r *http.Request) (*httpx.Response, error) {
	links, err := resumemanager.ListLinkedExperiences(r.Context(), chi.URLParam(r, "skillId"))
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   links,
	}, nil
}

func listLinkedEducations(r *http.Request) (*httpx.Response, error) {
	links, err := resumemanager.ListLinkedEducations(r.Context(), chi.URLParam(r, "skillId"))
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   links,
	}, nil
}

func listLinksByExperience(r *http.Request) (*httpx.Response, error) {
	links, err := resumemanager.ListLinksByExperience(r.Context(), chi.URLParam(r, "experienceId"))
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   links,
	}, nil
}

func listLinksByEducation(r *http.Request) (*httpx.Response, error) {
	links, err := resumemanager.ListLinksByEducation(r.Context(), chi.URLParam(r, "educationId"))
	if err != nil {
		return nil, err
	}
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   links,
	}, nil
}
