package main

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/osse101/MixCalc_Go/internal/handler"
	"github.com/osse101/MixCalc_Go/internal/mixing"
	"github.com/osse101/MixCalc_Go/internal/naming"
)

func newTestFunction(t *testing.T, maxBytes int64) *function {
	t.Helper()
	names, err := naming.NewResolver("")
	require.NoError(t, err)
	return newFunction(mixing.NewService(16, time.Minute), names, maxBytes)
}

func post(body string) events.LambdaFunctionURLRequest {
	ev := events.LambdaFunctionURLRequest{Body: body}
	ev.RequestContext.RequestID = "req-1"
	ev.RequestContext.HTTP.Method = http.MethodPost
	return ev
}

func TestHandle_Mix(t *testing.T) {
	fn := newTestFunction(t, 1<<20)

	resp, err := fn.handle(context.Background(), post(`{"product": "Meth", "ingredients": ["Cuke", "motor oil"]}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, resp.Body)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])

	body := gjson.Parse(resp.Body)
	assert.Equal(t, "MethCukeMotorOil", body.Get("key").String())
	assert.Equal(t, int64(102), body.Get("economics.sell_price").Int())
}

func TestHandle_State(t *testing.T) {
	fn := newTestFunction(t, 1<<20)

	resp, err := fn.handle(context.Background(),
		post(`{"product": "OG Kush", "ingredients": ["Addy"], "state": {"additives": ["PGR"], "use_pot": true}}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, resp.Body)
	assert.Equal(t, int64(16), gjson.Get(resp.Body, "economics.yield").Int())
}

func TestHandle_Base64Body(t *testing.T) {
	fn := newTestFunction(t, 1<<20)

	ev := post(base64.StdEncoding.EncodeToString([]byte(`{"product": "Meth", "ingredients": ["Cuke"]}`)))
	ev.IsBase64Encoded = true

	resp, err := fn.handle(context.Background(), ev)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, resp.Body)
	assert.Equal(t, int64(85), gjson.Get(resp.Body, "economics.sell_price").Int())
}

func TestHandle_Errors(t *testing.T) {
	fn := newTestFunction(t, 64)

	tests := []struct {
		name       string
		event      events.LambdaFunctionURLRequest
		wantStatus int
		wantBody   string
	}{
		{
			name:       "wrong method",
			event:      func() events.LambdaFunctionURLRequest { ev := post(""); ev.RequestContext.HTTP.Method = http.MethodGet; return ev }(),
			wantStatus: http.StatusMethodNotAllowed,
			wantBody:   errMsgMethodNotAllowed,
		},
		{
			name:       "bad base64",
			event:      func() events.LambdaFunctionURLRequest { ev := post("%%%"); ev.IsBase64Encoded = true; return ev }(),
			wantStatus: http.StatusBadRequest,
			wantBody:   errMsgInvalidBase64,
		},
		{
			name:       "too large",
			event:      post(`{"product": "Meth", "name": "` + strings.Repeat("x", 80) + `"}`),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantBody:   handler.ErrMsgRequestTooLarge,
		},
		{
			name:       "malformed json",
			event:      post(`{"product": `),
			wantStatus: http.StatusBadRequest,
			wantBody:   handler.ErrMsgInvalidRequest,
		},
		{
			name:       "ingredients not an array",
			event:      post(`{"product": "Meth", "ingredients": "Cuke"}`),
			wantStatus: http.StatusBadRequest,
			wantBody:   handler.ErrMsgInvalidRequest,
		},
		{
			name:       "additives not an array",
			event:      post(`{"product": "Meth", "state": {"additives": "PGR"}}`),
			wantStatus: http.StatusBadRequest,
			wantBody:   handler.ErrMsgInvalidRequest,
		},
		{
			name:       "missing product",
			event:      post(`{"ingredients": ["Cuke"]}`),
			wantStatus: http.StatusBadRequest,
			wantBody:   `"product"`,
		},
		{
			name:       "unknown ingredient",
			event:      post(`{"product": "Meth", "ingredients": ["Bananna"]}`),
			wantStatus: http.StatusBadRequest,
			wantBody:   "did you mean",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := fn.handle(context.Background(), tt.event)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Contains(t, resp.Body, tt.wantBody)
		})
	}
}

func TestParseMixBody(t *testing.T) {
	doc := gjson.Parse(`{
		"product": "og kush",
		"ingredients": ["Addy", "Viagra"],
		"name": "Calm Down",
		"state": {"additives": ["PGR", "Speed Grow"], "soil": "Extra Long-Life Soil", "pseudo": "High", "use_pot": true}
	}`)

	got, err := parseMixBody(doc)
	require.NoError(t, err)
	assert.Equal(t, handler.MixBody{
		Product:     "og kush",
		Ingredients: []string{"Addy", "Viagra"},
		Name:        "Calm Down",
		State: handler.StateBody{
			Additives: []string{"PGR", "Speed Grow"},
			Soil:      "Extra Long-Life Soil",
			Pseudo:    "High",
			UsePot:    true,
		},
	}, got)

	empty, err := parseMixBody(gjson.Parse(`{}`))
	require.NoError(t, err)
	assert.Empty(t, empty.Product)
	assert.Nil(t, empty.Ingredients)
	assert.False(t, empty.State.UsePot)

	null, err := parseMixBody(gjson.Parse(`{"product": "Meth", "ingredients": null}`))
	require.NoError(t, err)
	assert.Nil(t, null.Ingredients)
}

func TestParseMixBody_ListFieldsMustBeArrays(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"ingredients as string", `{"product": "Meth", "ingredients": "Cuke"}`},
		{"ingredients as object", `{"product": "Meth", "ingredients": {"a": "Cuke"}}`},
		{"ingredients as number", `{"product": "Meth", "ingredients": 3}`},
		{"additives as string", `{"product": "Meth", "state": {"additives": "PGR"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseMixBody(gjson.Parse(tt.body))
			assert.ErrorIs(t, err, errNotAnArray)
		})
	}
}
