package types

import (
	jsoniter "github.com/json-iterator/go"
)

// This object defines a request document's "top level".
type RequestDocument struct {
	// The document's "primary data".
	Data *PrimaryData `json:"data,omitempty"`

	// Resource objects sent alongside the primary data.
	Included []Resource `json:"included,omitempty"`

	// A meta object containing non-standard meta-information.
	Meta map[string]any `json:"meta,omitempty"`
}

// PrimaryData is a document's primary data: either a single resource object
// or, for relationship endpoints, an array of resource identifiers.
type PrimaryData struct {
	one  *Resource
	many []ResourceId
}

// One returns the primary data's resource object, if it is the single-object
// form.
func (d *PrimaryData) One() (*Resource, bool) {
	return d.one, d.one != nil
}

// Many returns the primary data's resource identifiers, if it is the array
// form. The result is non-nil even for an empty array.
func (d *PrimaryData) Many() ([]ResourceId, bool) {
	return d.many, d.many != nil
}

func (d *PrimaryData) UnmarshalJSON(buf []byte) error {
	if len(buf) == 0 || string(buf) == "null" {
		return nil
	}

	if buf[0] == '[' {
		many := []ResourceId{}
		if err := jsoniter.Unmarshal(buf, &many); err != nil {
			return err
		}
		d.many = many
	} else {
		var one Resource
		if err := jsoniter.Unmarshal(buf, &one); err != nil {
			return err
		}
		d.one = &one
	}

	return nil
}

// Resource is the wire representation of a resource object.
type Resource struct {
	Type string `json:"type"`

	Id string `json:"id,omitempty"`

	// An attributes object representing some of the resource's data.
	Attributes map[string]any `json:"attributes,omitempty"`

	// A relationships object describing relationships between the resource and
	// other resources.
	Relationships map[string]Relationship `json:"relationships,omitempty"`

	// A meta object containing non-standard meta-information about the
	// resource that can not be represented as an attribute or relationship.
	Meta map[string]any `json:"meta,omitempty"`
}

// ResourceId is a minimal reference to a resource.
type ResourceId struct {
	Type string `json:"type"`

	Id string `json:"id"`
}

// A relationship as it appears inside a resource object's relationships
// member.
type Relationship struct {
	// The resource linkage.
	Data RelationshipData `json:"data"`

	// A meta object containing non-standard meta-information about the
	// relationship.
	Meta map[string]any `json:"meta,omitempty"`
}

type relationshipDataKind int

const (
	relationshipDataEmpty relationshipDataKind = iota
	relationshipDataOne
	relationshipDataMany
)

// RelationshipData is a relationship's resource linkage. It has exactly one
// of three shapes: empty (the data member was absent or null), a single
// resource identifier, or an ordered list of resource identifiers.
type RelationshipData struct {
	kind relationshipDataKind
	one  ResourceId
	many []ResourceId
}

// IsEmpty reports whether the linkage was absent or null.
func (d RelationshipData) IsEmpty() bool {
	return d.kind == relationshipDataEmpty
}

// One returns the linkage's identifier, if it is the to-one shape.
func (d RelationshipData) One() (ResourceId, bool) {
	return d.one, d.kind == relationshipDataOne
}

// Many returns the linkage's identifiers, if it is the to-many shape. The
// result is non-nil even for an empty array.
func (d RelationshipData) Many() ([]ResourceId, bool) {
	return d.many, d.kind == relationshipDataMany
}

func (d *RelationshipData) UnmarshalJSON(buf []byte) error {
	if len(buf) == 0 || string(buf) == "null" {
		*d = RelationshipData{}
		return nil
	}

	if buf[0] == '[' {
		many := []ResourceId{}
		if err := jsoniter.Unmarshal(buf, &many); err != nil {
			return err
		}
		*d = RelationshipData{kind: relationshipDataMany, many: many}
	} else {
		var one ResourceId
		if err := jsoniter.Unmarshal(buf, &one); err != nil {
			return err
		}
		*d = RelationshipData{kind: relationshipDataOne, one: one}
	}

	return nil
}
