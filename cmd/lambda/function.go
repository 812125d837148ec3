package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/tidwall/gjson"

	"github.com/osse101/MixCalc_Go/internal/handler"
	"github.com/osse101/MixCalc_Go/internal/logger"
	"github.com/osse101/MixCalc_Go/internal/mixing"
	"github.com/osse101/MixCalc_Go/internal/naming"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

const (
	errMsgInvalidBase64    = "invalid base64 body"
	errMsgMethodNotAllowed = "Method not allowed"
)

var errNotAnArray = errors.New("field is not an array")

// function serves mix requests arriving through a Lambda function URL. The
// body has the same shape as POST /api/v1/mix.
type function struct {
	svc      mixing.Service
	names    naming.Resolver
	maxBytes int64
}

func newFunction(svc mixing.Service, names naming.Resolver, maxBytes int64) *function {
	return &function{svc: svc, names: names, maxBytes: maxBytes}
}

func (f *function) handle(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	requestID := event.RequestContext.RequestID
	if requestID == "" {
		requestID = logger.GenerateRequestID()
	}
	ctx = logger.WithRequestID(ctx, requestID)
	log := logger.FromContext(ctx)

	if method := event.RequestContext.HTTP.Method; method != "" && method != http.MethodPost {
		return errResp(http.StatusMethodNotAllowed, errMsgMethodNotAllowed)
	}

	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(http.StatusBadRequest, errMsgInvalidBase64)
		}
		body = string(decoded)
	}

	if f.maxBytes > 0 && int64(len(body)) > f.maxBytes {
		return errResp(http.StatusRequestEntityTooLarge, handler.ErrMsgRequestTooLarge)
	}
	if !gjson.Valid(body) {
		return errResp(http.StatusBadRequest, handler.ErrMsgInvalidRequest)
	}

	req, err := parseMixBody(gjson.Parse(body))
	if err != nil {
		return errResp(http.StatusBadRequest, handler.ErrMsgInvalidRequest)
	}
	if err := handler.GetValidator().ValidateStruct(req); err != nil {
		return jsonResp(http.StatusBadRequest, handler.ValidationErrorResponse{
			Error:  handler.ErrMsgInvalidRequestSummary,
			Fields: handler.FormatValidationError(err),
		})
	}

	mixReq, err := handler.ResolveMixRequest(f.names, req)
	if err != nil {
		return serviceErrResp(ctx, err)
	}

	report, err := f.svc.Mix(ctx, mixReq)
	if err != nil {
		return serviceErrResp(ctx, err)
	}

	log.Info("Mix evaluated", "key", report.Key, "sell_price", report.Economics.SellPrice)
	return jsonResp(http.StatusOK, report)
}

// parseMixBody extracts a mix request from doc. Missing fields stay empty and
// are caught by validation; list fields of the wrong type are rejected.
func parseMixBody(doc gjson.Result) (handler.MixBody, error) {
	state := doc.Get("state")

	ingredients, err := stringList(doc, "ingredients")
	if err != nil {
		return handler.MixBody{}, err
	}
	additives, err := stringList(state, "additives")
	if err != nil {
		return handler.MixBody{}, err
	}

	return handler.MixBody{
		Product:     doc.Get("product").String(),
		Ingredients: ingredients,
		Name:        doc.Get("name").String(),
		State: handler.StateBody{
			Additives: additives,
			Soil:      state.Get("soil").String(),
			Pseudo:    state.Get("pseudo").String(),
			UsePot:    state.Get("use_pot").Bool(),
		},
	}, nil
}

func stringList(doc gjson.Result, field string) ([]string, error) {
	r := doc.Get(field)
	if !r.Exists() || r.Type == gjson.Null {
		return nil, nil
	}
	if !r.IsArray() {
		return nil, fmt.Errorf("%w: %s", errNotAnArray, field)
	}
	items := r.Array()
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.String())
	}
	return out, nil
}

func serviceErrResp(ctx context.Context, err error) (events.LambdaFunctionURLResponse, error) {
	status, msg := handler.MapServiceError(err)

	log := logger.FromContext(ctx)
	if status >= http.StatusInternalServerError {
		log.Error(handler.ErrMsgMixFailed, "error", err)
	} else {
		log.Warn(handler.ErrMsgMixFailed, "error", err)
	}
	return errResp(status, msg)
}

func jsonResp(code int, payload any) (events.LambdaFunctionURLResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return events.LambdaFunctionURLResponse{}, errors.Join(errors.New(handler.ErrMsgGenericServerError), err)
	}
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	return jsonResp(code, handler.ErrorResponse{Error: msg})
}
