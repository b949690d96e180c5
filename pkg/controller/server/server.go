package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"path"

	"github.com/fmi4go/fmutest/pkg/domain/interfaces"
	"github.com/fmi4go/fmutest/pkg/domain/model"
	"github.com/fmi4go/fmutest/pkg/domain/types"
	"github.com/fmi4go/fmutest/pkg/utils/errutil"
	"github.com/go-chi/chi/v5"
)

type config struct {
	policy interfaces.Policy
}

type Option func(*config)

func WithPolicy(policy interfaces.Policy) Option {
	return func(cfg *config) {
		cfg.policy = policy
	}
}

func New(uc interfaces.UseCases, options ...Option) http.Handler {
	var cfg config
	for _, opt := range options {
		opt(&cfg)
	}

	route := chi.NewRouter()
	route.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK:" + types.AppVersion))
	})
	route.Route("/fixtures", func(r chi.Router) {
		r.Use(logger)
		if cfg.policy != nil {
			r.Use(authWithPolicy(cfg.policy))
		}

		r.Get("/", handleListFixtures(uc))
		r.Get("/{version}/{type}/{platform}/{tool}/{toolVersion}/{model}", handleGetFixture(uc))
	})

	return route
}

func handleError(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	var xErr types.Error
	if errors.As(err, &xErr) {
		code = xErr.Code()
	}

	if code == http.StatusInternalServerError {
		errutil.Handle(r.Context(), "failed to handle fixture request", err)
	}

	http.Error(w, err.Error(), code)
}

func handleListFixtures(uc interfaces.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		query := model.FixtureQuery{
			Version:     types.FMIVersion(q.Get("version")),
			Type:        types.FMUType(q.Get("type")),
			Platform:    types.Platform(q.Get("platform")),
			Tool:        q.Get("tool"),
			ToolVersion: q.Get("tool_version"),
			Model:       q.Get("model"),
		}

		fixtures, err := uc.ListFixtures(r.Context(), query)
		if err != nil {
			handleError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(fixtures); err != nil {
			errutil.Handle(r.Context(), "failed to write fixture list", err)
		}
	}
}

func handleGetFixture(uc interfaces.UseCases) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := model.FixtureQuery{
			Version:     types.FMIVersion(chi.URLParam(r, "version")),
			Type:        types.FMUType(chi.URLParam(r, "type")),
			Platform:    types.Platform(chi.URLParam(r, "platform")),
			Tool:        chi.URLParam(r, "tool"),
			ToolVersion: chi.URLParam(r, "toolVersion"),
			Model:       chi.URLParam(r, "model"),
		}

		f, err := uc.FindFixture(r.Context(), query)
		if err != nil {
			handleError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Disposition", `attachment; filename="`+path.Base(f.RelPath())+`"`)
		http.ServeFile(w, r, f.Path)
	}
}
