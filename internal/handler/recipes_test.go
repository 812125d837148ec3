package handler

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestRecipeLifecycle(t *testing.T) {
	deps := newTestDeps(t)
	h := deps.router()
	const key = "MethCukeMotorOil"

	w := serve(h, http.MethodPost, "/api/v1/recipes", `{"product": "Meth", "ingredients": ["Cuke", "Motor Oil"], "name": "Slick"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	saved := gjson.Parse(w.Body.String())
	assert.Equal(t, MsgRecipeSaved, saved.Get("message").String())
	assert.Equal(t, key, saved.Get("recipe.key").String())
	assert.Equal(t, "Slick", saved.Get("recipe.mix.name").String())
	assert.True(t, deps.book.Contains(key))

	w = serve(h, http.MethodGet, "/api/v1/recipes", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), gjson.Get(w.Body.String(), "#").Int())

	w = serve(h, http.MethodGet, "/api/v1/recipes/"+key, "")
	require.Equal(t, http.StatusOK, w.Code)
	detail := gjson.Parse(w.Body.String())
	assert.Equal(t, key, detail.Get("recipe.key").String())
	assert.Equal(t, int64(102), detail.Get("report.economics.sell_price").Int())

	w = serve(h, http.MethodDelete, "/api/v1/recipes/"+key, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, deps.book.Len())

	w = serve(h, http.MethodDelete, "/api/v1/recipes/"+key, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgRecipeNotFoundError)
}

func TestHandleToggle(t *testing.T) {
	deps := newTestDeps(t)
	h := deps.router()
	body := `{"product": "OG Kush", "ingredients": ["Addy"]}`

	w := serve(h, http.MethodPost, "/api/v1/recipes/toggle", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"key": "Marijuana(Calming)Addy", "saved": true}`, w.Body.String())

	w = serve(h, http.MethodPost, "/api/v1/recipes/toggle", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"key": "Marijuana(Calming)Addy", "saved": false}`, w.Body.String())
	assert.Zero(t, deps.book.Len())
}

func TestRecipes_Errors(t *testing.T) {
	deps := newTestDeps(t)
	h := deps.router()

	t.Run("unmixed product cannot be saved", func(t *testing.T) {
		w := serve(h, http.MethodPost, "/api/v1/recipes", `{"product": "Cocaine"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgNothingToSaveError)
	})

	t.Run("unmixed product cannot be toggled", func(t *testing.T) {
		w := serve(h, http.MethodPost, "/api/v1/recipes/toggle", `{"product": "Cocaine", "ingredients": []}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("unknown ingredient", func(t *testing.T) {
		w := serve(h, http.MethodPost, "/api/v1/recipes", `{"product": "Meth", "ingredients": ["Salt"]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing recipe", func(t *testing.T) {
		w := serve(h, http.MethodGet, "/api/v1/recipes/Nope", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	assert.Zero(t, deps.book.Len())
}

func TestHandleGet_EscapedKey(t *testing.T) {
	deps := newTestDeps(t)
	h := deps.router()

	w := serve(h, http.MethodPost, "/api/v1/recipes", `{"product": "OG Kush", "ingredients": ["Horse Semen"]}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = serve(h, http.MethodGet, "/api/v1/recipes/"+url.PathEscape("Marijuana(Calming)HorseSemen"), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Marijuana(Calming)HorseSemen", gjson.Get(w.Body.String(), "recipe.key").String())
}
