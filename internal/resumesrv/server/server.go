package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/resumeworks/resumesrv/internal/common/httpx"
	commonmiddleware "github.com/resumeworks/resumesrv/internal/common/middleware"
	"github.com/resumeworks/resumesrv/internal/resumesrv/apis"
	"github.com/resumeworks/resumesrv/internal/resumesrv/config"
	"github.com/resumeworks/resumesrv/internal/resumesrv/db"
	"github.com/resumeworks/resumesrv/internal/resumesrv/db/dberror"
	"github.com/resumeworks/resumesrv/internal/resumesrv/web"
)

type ResumeServer struct {
	Router *chi.Mux
}

func CreateNewServer() (*ResumeServer, error) {
	s := &ResumeServer{}
	s.Router = chi.NewRouter()
	httpx.SetErrorTypeResolver(dberror.Type)
	return s, nil
}

func (s *ResumeServer) MountHandlers() {
	s.Router.Use(commonmiddleware.RequestLogger)
	s.Router.Use(commonmiddleware.PanicHandler)
	if config.Config().HandleCORS {
		s.Router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}
	s.Router.Route("/", s.mountResumeHandlers)
}

func (s *ResumeServer) mountResumeHandlers(r chi.Router) {
	r.Use(db.LoadDBMiddleware)
	apis.Router(r)
	web.Router(r)
	r.Get("/version", s.getVersion)
}

type GetVersionRsp struct {
	ServerVersion string `json:"serverVersion"`
	ApiVersion    string `json:"apiVersion"`
}

func (s *ResumeServer) getVersion(w http.ResponseWriter, r *http.Request) {
	log.Ctx(r.Context()).Debug().Msg("GetVersion")
	rsp := &GetVersionRsp{
		ServerVersion: "Resume Server: 0.1.0",
		ApiVersion:    "v1",
	}
	httpx.SendJsonRsp(r.Context(), w, http.StatusOK, rsp)
}
