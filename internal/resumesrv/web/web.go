// Package web serves the read-only resume page. It renders straight from the
// store; there is no client-side script.
package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/resumeworks/resumesrv/internal/resumesrv/resumemanager"
)

//go:embed templates/*.html
var templateFiles embed.FS

var resumeTemplate = template.Must(template.ParseFS(templateFiles, "templates/resume.html"))

func Router(r chi.Router) {
	r.Get("/resume", getResumePage)
}

type resumePage struct {
	Lang        resumemanager.LanguageCode
	Experiences []experienceView
	Educations  []educationView
	Skills      []skillView
}

type experienceView struct {
	CompanyName string
	Title       string
	Description string
	StartDate   string
	EndDate     string
	Skills      []skillView
}

type educationView struct {
	Institution string
	Degree      string
	Title       string
	Description string
	StartDate   string
	EndDate     string
}

type skillView struct {
	Title string
	Level int
}

func getResumePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	lang := resumemanager.LangEN
	if r.URL.Query().Get("lang") == string(resumemanager.LangDE) {
		lang = resumemanager.LangDE
	}

	page, err := buildResumePage(r, lang)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("unable to build resume page")
		http.Error(w, "unable to render resume", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := resumeTemplate.Execute(w, page); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("unable to render resume page")
	}
}

func buildResumePage(r *http.Request, lang resumemanager.LanguageCode) (*resumePage, error) {
	ctx := r.Context()

	experiences, err := resumemanager.ListExperiences(ctx)
	if err != nil {
		return nil, err
	}
	educations, err := resumemanager.ListEducations(ctx)
	if err != nil {
		return nil, err
	}
	skills, err := resumemanager.ListSkills(ctx)
	if err != nil {
		return nil, err
	}

	skillsByID := make(map[string]skillView, len(skills))
	skillViews := make([]skillView, 0, len(skills))
	for _, s := range skills {
		v := skillView{Title: s.Translations[lang].Title, Level: s.Level}
		skillsByID[s.ID] = v
		skillViews = append(skillViews, v)
	}

	page := &resumePage{Lang: lang, Skills: skillViews}

	for _, e := range experiences {
		links, err := resumemanager.ListLinksByExperience(ctx, e.ID)
		if err != nil {
			return nil, err
		}
		linked := make([]skillView, 0, len(links))
		for _, l := range links {
			if v, ok := skillsByID[l.SkillID]; ok {
				linked = append(linked, v)
			}
		}
		t := e.Translations[lang]
		page.Experiences = append(page.Experiences, experienceView{
			CompanyName: e.CompanyName,
			Title:       t.Title,
			Description: t.Description,
			StartDate:   datePart(e.StartDate),
			EndDate:     datePartPtr(e.EndDate),
			Skills:      linked,
		})
	}

	for _, e := range educations {
		t := e.Translations[lang]
		degree := ""
		if e.Degree != nil {
			degree = *e.Degree
		}
		page.Educations = append(page.Educations, educationView{
			Institution: e.Institution,
			Degree:      degree,
			Title:       t.Title,
			Description: t.Description,
			StartDate:   datePart(e.StartDate),
			EndDate:     datePartPtr(e.EndDate),
		})
	}

	return page, nil
}

func datePart(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}

func datePartPtr(ts *string) string {
	if ts == nil {
		return ""
	}
	return datePart(*ts)
}
