package parser

import (
	"net/http"
)

// Intent is the mutation a request document was sent to perform. It is
// computed once at the HTTP boundary so that the parser itself never depends
// on HTTP vocabulary.
type Intent int

const (
	// IntentCreate creates a new resource. The resource object does not need
	// an id.
	IntentCreate Intent = iota

	// IntentReplace replaces an existing resource.
	IntentReplace

	// IntentPartialUpdate updates some of an existing resource's members.
	IntentPartialUpdate
)

// RequiresId reports whether the intent requires the resource object to carry
// an id.
func (i Intent) RequiresId() bool {
	return i == IntentReplace || i == IntentPartialUpdate
}

// IntentForMethod maps an HTTP method to its mutation intent. The second
// return value is false for methods that don't carry request documents.
func IntentForMethod(method string) (Intent, bool) {
	switch method {
	case http.MethodPost:
		return IntentCreate, true
	case http.MethodPut:
		return IntentReplace, true
	case http.MethodPatch:
		return IntentPartialUpdate, true
	}
	return 0, false
}

// RequestContext carries everything the parser needs to know about the
// endpoint a document was sent to. It is an immutable value constructed by
// the caller for each request.
type RequestContext struct {
	// The resource type name of the collection the endpoint represents, e.g.
	// "articles".
	ResourceName string

	// The mutation the document was sent to perform.
	Intent Intent

	// If true, the endpoint addresses a relationship rather than a resource,
	// and the primary data consists of resource identifiers.
	RelationshipEndpoint bool
}
