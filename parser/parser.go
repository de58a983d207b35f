package parser

import (
	"github.com/japi-fu/japi/keycase"
	"github.com/japi-fu/japi/types"
)

// Record is a flattened resource object: its id plus its re-cased attributes
// and unwrapped relationship linkages, merged into one mapping. Relationship
// values are nil, a types.ResourceId, or a []types.ResourceId.
type Record map[string]any

// IncludedIndex groups a document's side-loaded resources by their re-cased
// type. Within a type, input order is preserved and duplicates are retained.
type IncludedIndex map[string][]Record

// ParsedRecord is the normalized form of a request document.
type ParsedRecord struct {
	// The flattened primary resource. Nil in relationship-endpoint mode.
	Record Record

	// The document's side-loaded resources, indexed by type. Nil in
	// relationship-endpoint mode.
	Included IncludedIndex

	// Exactly one of these is set in relationship-endpoint mode: the primary
	// data's identifier or identifiers, returned verbatim.
	Identifier  *types.ResourceId
	Identifiers []types.ResourceId
}

// ParseDocument normalizes a decoded request document against the given
// request context. It either returns a complete ParsedRecord or rejects the
// document with an *Error; it never returns a partial result.
func ParseDocument(doc *types.RequestDocument, reqCtx RequestContext) (*ParsedRecord, error) {
	if doc == nil || doc.Data == nil {
		return nil, NewError(ErrMissingPrimaryData, "The request document does not contain primary data.")
	}

	if reqCtx.RelationshipEndpoint {
		return parseIdentifiers(doc.Data)
	}

	resource, ok := doc.Data.One()
	if !ok {
		return nil, NewError(ErrMalformedPayload, "The primary data for this endpoint must be a single resource object, not an array.")
	}

	attributes := parseAttributes(resource)
	relationships := parseRelationships(resource)

	if err := validateResource(resource, reqCtx); err != nil {
		return nil, err
	}

	record := make(Record, len(attributes)+len(relationships)+1)
	if resource.Id != "" {
		record["id"] = resource.Id
	}
	for k, v := range attributes {
		record[k] = v
	}
	for k, v := range relationships {
		record[k] = v
	}

	return &ParsedRecord{
		Record:   record,
		Included: parseIncluded(doc.Included),
	}, nil
}

// parseIdentifiers handles relationship-endpoint mode: the primary data is
// one or more resource identifiers, which are validated for completeness and
// returned verbatim.
func parseIdentifiers(data *types.PrimaryData) (*ParsedRecord, error) {
	if ids, ok := data.Many(); ok {
		for i, id := range ids {
			if id.Type == "" || id.Id == "" {
				return nil, NewError(ErrMalformedResourceIdentifier, "The resource identifier at index %d is missing a type or id member.", i)
			}
		}
		return &ParsedRecord{Identifiers: ids}, nil
	}

	resource, _ := data.One()
	if resource.Type == "" || resource.Id == "" {
		return nil, NewError(ErrMalformedResourceIdentifier, "The primary data is not a valid resource identifier: it is missing a type or id member.")
	}
	return &ParsedRecord{
		Identifier: &types.ResourceId{Type: resource.Type, Id: resource.Id},
	}, nil
}

func parseAttributes(resource *types.Resource) Record {
	if len(resource.Attributes) == 0 {
		return Record{}
	}
	return Record(keycase.Tree(resource.Attributes, keycase.Snake).(map[string]any))
}

func parseRelationships(resource *types.Resource) Record {
	ret := make(Record, len(resource.Relationships))
	for name, relationship := range resource.Relationships {
		name = keycase.Value(name, keycase.Snake)
		if id, ok := relationship.Data.One(); ok {
			ret[name] = id
		} else if ids, ok := relationship.Data.Many(); ok {
			ret[name] = append([]types.ResourceId{}, ids...)
		} else {
			ret[name] = nil
		}
	}
	return ret
}

func parseIncluded(included []types.Resource) IncludedIndex {
	index := IncludedIndex{}
	for i := range included {
		resource := &included[i]
		typeName := keycase.Value(resource.Type, keycase.Snake)

		attributes := parseAttributes(resource)
		relationships := parseRelationships(resource)

		record := make(Record, len(attributes)+len(relationships)+1)
		record["id"] = resource.Id
		for k, v := range attributes {
			record[k] = v
		}
		for k, v := range relationships {
			record[k] = v
		}

		index[typeName] = append(index[typeName], record)
	}
	return index
}
