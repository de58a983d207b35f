package parser

import (
	"github.com/japi-fu/japi/types"
)

// validateResource checks the resource object's declared type and id against
// the request context. Rules are evaluated in order and the first failure
// wins.
func validateResource(resource *types.Resource, reqCtx RequestContext) *Error {
	if resource.Type != reqCtx.ResourceName {
		return NewError(ErrTypeConflict, "The resource object's type (%s) does not match the endpoint's resource type (%s).", resource.Type, reqCtx.ResourceName)
	}
	if resource.Id == "" && reqCtx.Intent.RequiresId() {
		return NewError(ErrMissingIdentifier, "The resource object must contain an id member for update requests.")
	}
	return nil
}
