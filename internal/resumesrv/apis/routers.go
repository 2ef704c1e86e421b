// Package apis binds the resume procedures to HTTP routes. Handlers decode
// and delegate to resumemanager; every response carries the result/error
// envelope written by httpx.
package apis

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/resumeworks/resumesrv/internal/common/httpx"
)

var resumeHandlers = []httpx.ResponseHandlerParam{
	{
		Method:  http.MethodPost,
		Path:    "/experiences",
		Handler: addExperience,
	},
	{
		Method:  http.MethodGet,
		Path:    "/experiences",
		Handler: listExperiences,
	},
	{
		Method:  http.MethodGet,
		Path:    "/experiences/{experienceId}",
		Handler: getExperience,
	},
	{
		Method:  http.MethodPut,
		Path:    "/experiences/{experienceId}",
		Handler: updateExperience,
	},
	{
		Method:  http.MethodDelete,
		Path:    "/experiences/{experienceId}",
		Handler: deleteExperience,
	},
	{
		Method:  http.MethodGet,
		Path:    "/experiences/{experienceId}/skills",
		Handler: listLinksByExperience,
	},
	{
		Method:  http.MethodPost,
		Path:    "/educations",
		Handler: addEducation,
	},
	{
		Method:  http.MethodGet,
		Path:    "/educations",
		Handler: listEducations,
	},
	{
		Method:  http.MethodGet,
		Path:    "/educations/{educationId}",
		Handler: getEducation,
	},
	{
		Method:  http.MethodPut,
		Path:    "/educations/{educationId}",
		Handler: updateEducation,
	},
	{
		Method:  http.MethodDelete,
		Path:    "/educations/{educationId}",
		Handler: deleteEducation,
	},
	{
		Method:  http.MethodGet,
		Path:    "/educations/{educationId}/skills",
		Handler: listLinksByEducation,
	},
	{
		Method:  http.MethodPost,
		Path:    "/skills",
		Handler: addSkill,
	},
	{
		Method:  http.MethodGet,
		Path:    "/skills",
		Handler: listSkills,
	},
	{
		Method:  http.MethodGet,
		Path:    "/skills/{skillId}",
		Handler: getSkill,
	},
	{
		Method:  http.MethodPut,
		Path:    "/skills/{skillId}",
		Handler: updateSkill,
	},
	{
		Method:  http.MethodDelete,
		Path:    "/skills/{skillId}",
		Handler: deleteSkill,
	},
	{
		Method:  http.MethodPost,
		Path:    "/skills/{skillId}/experiences/{experienceId}",
		Handler: linkSkillToExperience,
	},
	{
		Method:  http.MethodDelete,
		Path:    "/skills/{skillId}/experiences/{experienceId}",
		Handler: unlinkSkillFromExperience,
	},
	{
		Method:  http.MethodGet,
		Path:    "/skills/{skillId}/experiences",
		Handler: listLinkedExperiences,
	},
	{
		Method:  http.MethodPost,
		Path:    "/skills/{skillId}/educations/{educationId}",
		Handler: linkSkillToEducation,
	},
	{
		Method:  http.MethodDelete,
		Path:    "/skills/{skillId}/educations/{educationId}",
		Handler: unlinkSkillFromEducation,
	},
	{
		Method:  http.MethodGet,
		Path:    "/skills/{skillId}/educations",
		Handler: listLinkedEducations,
	},
}

func Router(r chi.Router) {
	for _, handler := range resumeHandlers {
		r.Method(handler.Method, handler.Path, httpx.WrapHttpRsp(handler.Handler))
	}
}
