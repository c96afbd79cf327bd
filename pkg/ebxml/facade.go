// Package ebxml defines the version-agnostic view of ebXML registry objects.
// Both wire schemas (ebXML 2.1 and ebXML 3.0) are adapted to these interfaces
// by the ebxml21 and ebxml30 packages, so the metadata transformers never
// depend on the wire version in play.
//
// Mutating operations follow one rule: parameters that the registry standard
// makes mandatory (schemes, names) must be non-empty or the call panics with
// an serrors.ErrPrecondition error, while absent optional values (a nil
// classification, an empty value) turn the call into a no-op.
package ebxml

import "xds/pkg/metadata"

// Slot is a named list of string values attached to a registry object.
type Slot interface {
	Name() string
	Values() []string
}

// SlotList is the slot collection of a registry object. Several slots may
// share a name.
type SlotList interface {
	// AddSlot appends values to the first slot named name, creating it when
	// missing. A call whose values are all empty is a no-op; otherwise empty
	// values keep their position.
	AddSlot(name string, values ...string)
	// SlotValues returns the values of all slots named name, in order.
	SlotValues(name string) []string
	// SingleSlotValue returns the first value of the slots named name.
	SingleSlotValue(name string) string
	// Slots returns all slots in wire order.
	Slots() []Slot
	// SlotsByName returns the slots named name in wire order.
	SlotsByName(name string) []Slot
}

// InternationalString is a multi-locale string. The metadata model only
// consumes the first localized variant.
type InternationalString interface {
	SingleLocalizedString() *metadata.LocalizedString
	LocalizedStrings() []metadata.LocalizedString
}

// RegistryEntry is any registry object: document entries, registry packages,
// classifications, external identifiers and associations.
type RegistryEntry interface {
	SlotList

	ID() string
	SetID(id string)
	ObjectType() string
	SetObjectType(objectType string)
	Status() string
	SetStatus(status string)
	Home() string
	SetHome(home string)

	Name() *metadata.LocalizedString
	SetName(name *metadata.LocalizedString)
	Description() *metadata.LocalizedString
	SetDescription(description *metadata.LocalizedString)

	// AddClassification sets the classification's scheme and classified
	// object to this entry, then appends it.
	AddClassification(classification Classification, scheme string)
	Classifications() []Classification
	ClassificationsByScheme(scheme string) []Classification
	// SingleClassification returns the first classification with the given
	// scheme, or nil.
	SingleClassification(scheme string) Classification

	// AddExternalIdentifier appends a new external identifier whose name is a
	// single localized string.
	AddExternalIdentifier(value, scheme, name string)
	ExternalIdentifiers() []ExternalIdentifier
	// ExternalIdentifierValue returns the value of the first external
	// identifier with the given scheme, or "".
	ExternalIdentifierValue(scheme string) string
}

// ExtrinsicObject is a registry entry describing a document.
type ExtrinsicObject interface {
	RegistryEntry

	MimeType() string
	SetMimeType(mimeType string)
}

// RegistryPackage is a registry entry grouping other entries: a submission
// set or a folder.
type RegistryPackage interface {
	RegistryEntry

	// AddNodeClassification nests c in the package as the marker of its
	// classification node. The node must be set.
	AddNodeClassification(classification Classification)
}

// Classification attaches a coded value or a classification node to a
// registry entry.
type Classification interface {
	RegistryEntry

	ClassifiedObject() string
	SetClassifiedObject(id string)
	ClassificationScheme() string
	SetClassificationScheme(scheme string)
	ClassificationNode() string
	SetClassificationNode(node string)
	NodeRepresentation() string
	SetNodeRepresentation(representation string)
}

// ExternalIdentifier is a scheme-qualified identifier of a registry entry.
type ExternalIdentifier interface {
	RegistryEntry

	RegistryObject() string
	IdentificationScheme() string
	SetIdentificationScheme(scheme string)
	Value() string
	SetValue(value string)
}

// Association links a source and a target registry object.
type Association interface {
	RegistryEntry

	AssociationType() string
	SetAssociationType(associationType string)
	SourceObject() string
	SetSourceObject(id string)
	TargetObject() string
	SetTargetObject(id string)
}

// ObjectLibrary is the flat object list carried by submissions and query
// results.
type ObjectLibrary interface {
	AddExtrinsicObject(obj ExtrinsicObject)
	AddRegistryPackage(pkg RegistryPackage)
	AddAssociation(assoc Association)
	// AddClassification appends a classification at list level, outside of
	// any registry entry.
	AddClassification(classification Classification)
	AddObjectRef(ref metadata.ObjectReference)

	// ExtrinsicObjects returns the extrinsic objects of the given object type,
	// or all of them when objectType is empty.
	ExtrinsicObjects(objectType string) []ExtrinsicObject
	// RegistryPackages returns the packages that are classified by node,
	// either through a list-level classification or a nested one. List-level
	// classifications without a classified object are ignored.
	RegistryPackages(node string) []RegistryPackage
	Associations() []Association
	ObjectRefs() []metadata.ObjectReference
}

// Factory allocates empty wire objects of one schema version, wrapped in
// their adapters. Factories hold no state.
type Factory interface {
	Version() Version

	NewExtrinsicObject(id string) ExtrinsicObject
	NewRegistryPackage(id string) RegistryPackage
	// NewClassification returns a classification carrying a fresh id.
	NewClassification() Classification
	NewAssociation(id string) Association
	NewObjectLibrary() ObjectLibrary
}
