package japi

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// Config defines the endpoint lookups and other parameters for an API.
type Config struct {
	Logger logrus.FieldLogger

	// Invoked to get the resource type name of the collection a request's
	// endpoint represents, e.g. "articles". Required.
	ResolveResourceName func(r *http.Request) string

	// If given, requests for which this returns true are treated as
	// relationship endpoint requests: their primary data consists of resource
	// identifiers rather than a resource object.
	IsRelationshipEndpoint func(r *http.Request) bool
}
