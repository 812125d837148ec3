package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MixCalc_Go/internal/mixing"
	"github.com/osse101/MixCalc_Go/internal/naming"
	"github.com/osse101/MixCalc_Go/internal/recipe"
)

// testDeps are real collaborators; every service is pure or in-memory
type testDeps struct {
	svc   mixing.Service
	names naming.Resolver
	book  *recipe.Book
}

func newTestDeps(t *testing.T) testDeps {
	t.Helper()
	names, err := naming.NewResolver("")
	require.NoError(t, err)
	return testDeps{
		svc:   mixing.NewService(32, time.Minute),
		names: names,
		book:  recipe.NewBook(),
	}
}

// router mounts the handlers on their production paths
func (d testDeps) router() http.Handler {
	mixHandler := NewMixHandler(d.svc, d.names)
	recipeHandler := NewRecipeHandler(d.book, d.svc, d.names)

	r := chi.NewRouter()
	r.Get("/api/v1/rules", HandleGetRules(d.svc, d.names))
	r.Post("/api/v1/mix", mixHandler.HandleMix)
	r.Route("/api/v1/recipes", func(r chi.Router) {
		r.Get("/", recipeHandler.HandleList)
		r.Post("/", recipeHandler.HandleSave)
		r.Post("/toggle", recipeHandler.HandleToggle)
		r.Get("/{key}", recipeHandler.HandleGet)
		r.Delete("/{key}", recipeHandler.HandleRemove)
	})
	return r
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(headerContentType, contentTypeJSON)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}
