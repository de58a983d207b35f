package japi

import (
	"io"
	"mime"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/japi-fu/japi/parser"
	"github.com/japi-fu/japi/types"
)

const mediaType = "application/vnd.api+json"

type API struct {
	config *Config
	logger logrus.FieldLogger
}

func NewAPI(cfg *Config) (*API, error) {
	if cfg.ResolveResourceName == nil {
		return nil, errors.New("the config must provide ResolveResourceName")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &API{
		config: cfg,
		logger: logger,
	}, nil
}

// ParseRequest decodes and normalizes an inbound request's document. If the
// document is rejected, it returns the HTTP status code that should be used
// for the response along with the rejection error.
func (api *API) ParseRequest(r *http.Request) (*parser.ParsedRecord, int, error) {
	intent, ok := parser.IntentForMethod(r.Method)
	if !ok {
		return nil, http.StatusMethodNotAllowed, errors.Errorf("refusing to parse a document for %v requests", r.Method)
	}

	if contentType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err != nil || contentType != mediaType {
		return nil, http.StatusUnsupportedMediaType, errors.Errorf("the request content type must be %v", mediaType)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, http.StatusBadRequest, errors.Wrap(err, "error reading request body")
	}

	reqCtx := parser.RequestContext{
		ResourceName: api.config.ResolveResourceName(r),
		Intent:       intent,
	}
	if api.config.IsRelationshipEndpoint != nil {
		reqCtx.RelationshipEndpoint = api.config.IsRelationshipEndpoint(r)
	}

	record, err := Parse(body, reqCtx)
	if err != nil {
		status := http.StatusBadRequest
		var parseErr *parser.Error
		if errors.As(err, &parseErr) {
			status = parseErr.HTTPStatus()
		}
		api.logger.WithError(err).WithField("status", status).Debug("rejected request document")
		return nil, status, err
	}

	return record, http.StatusOK, nil
}

// Parse decodes and normalizes a request document for callers that have
// already routed the request themselves.
func Parse(body []byte, reqCtx parser.RequestContext) (*parser.ParsedRecord, error) {
	var doc types.RequestDocument
	if err := jsoniter.Unmarshal(body, &doc); err != nil {
		return nil, parser.NewError(parser.ErrMalformedPayload, "The request body is not a valid document: %v.", err)
	}
	return parser.ParseDocument(&doc, reqCtx)
}
