// Package ebxml21 adapts the ebRIM/ebRS 2.1 wire schema used by XDS.a to the
// version-agnostic facade of package ebxml, and converts XDS transactions to
// and from their 2.1 wire messages.
//
// The adapters mirror those of package ebxml30 line for line. Each wraps its
// own wire types, so the two schemas can drift apart without touching the
// other version.
package ebxml21

import (
	"encoding/xml"

	"xds/pkg/ebxml"
)

const (
	// NamespaceRIM is the ebRIM 2.1 namespace.
	NamespaceRIM = "urn:oasis:names:tc:ebxml-regrep:rim:xsd:2.1"
	// NamespaceRS is the ebRS 2.1 registry service namespace.
	NamespaceRS = "urn:oasis:names:tc:ebxml-regrep:registry:xsd:2.1"
	// NamespaceQuery is the ebRS 2.1 query namespace.
	NamespaceQuery = "urn:oasis:names:tc:ebxml-regrep:query:xsd:2.1"
)

// Slot is a named value list.
type Slot struct {
	Name   string   `xml:"name,attr"`
	Values []string `xml:"ValueList>Value"`
}

// LocalizedString is one language variant of an InternationalString.
type LocalizedString struct {
	Lang    string `xml:"http://www.w3.org/XML/1998/namespace lang,attr,omitempty"`
	Charset string `xml:"charset,attr,omitempty"`
	Value   string `xml:"value,attr"`
}

// InternationalString is a multi-language string.
type InternationalString struct {
	LocalizedStrings []LocalizedString `xml:"LocalizedString"`
}

// RegistryObject holds the attributes and children shared by every 2.1
// registry object. In 2.1 names come before slots.
type RegistryObject struct {
	ID         string `xml:"id,attr,omitempty"`
	ObjectType string `xml:"objectType,attr,omitempty"`
	Status     string `xml:"status,attr,omitempty"`
	Home       string `xml:"home,attr,omitempty"`

	Name                *InternationalString  `xml:"Name"`
	Description         *InternationalString  `xml:"Description"`
	Slots               []*Slot               `xml:"Slot"`
	Classifications     []*Classification     `xml:"Classification"`
	ExternalIdentifiers []*ExternalIdentifier `xml:"ExternalIdentifier"`
}

// ExtrinsicObject describes a document.
type ExtrinsicObject struct {
	RegistryObject

	MimeType string `xml:"mimeType,attr,omitempty"`
}

// RegistryPackage is a submission set or a folder.
type RegistryPackage struct {
	RegistryObject
}

// Classification classifies a registry object.
type Classification struct {
	RegistryObject

	ClassificationScheme string `xml:"classificationScheme,attr,omitempty"`
	ClassifiedObject     string `xml:"classifiedObject,attr,omitempty"`
	ClassificationNode   string `xml:"classificationNode,attr,omitempty"`
	NodeRepresentation   string `xml:"nodeRepresentation,attr,omitempty"`
}

// ExternalIdentifier identifies a registry object within a scheme.
type ExternalIdentifier struct {
	RegistryObject

	RegistryObjectID     string `xml:"registryObject,attr,omitempty"`
	IdentificationScheme string `xml:"identificationScheme,attr"`
	Value                string `xml:"value,attr"`
}

// Association links two registry objects.
type Association struct {
	RegistryObject

	AssociationType string `xml:"associationType,attr"`
	SourceObject    string `xml:"sourceObject,attr"`
	TargetObject    string `xml:"targetObject,attr"`
}

// ObjectRef references a registry object by id.
type ObjectRef struct {
	ID   string `xml:"id,attr"`
	Home string `xml:"home,attr,omitempty"`
}

// ObjectList is the content of a LeafRegistryObjectList or an SQLQueryResult.
type ObjectList struct {
	ObjectRefs       []*ObjectRef       `xml:"ObjectRef"`
	ExtrinsicObjects []*ExtrinsicObject `xml:"ExtrinsicObject"`
	RegistryPackages []*RegistryPackage `xml:"RegistryPackage"`
	Classifications  []*Classification  `xml:"Classification"`
	Associations     []*Association     `xml:"Association"`
}

// SubmitObjectsRequest is the Register Document Set message.
type SubmitObjectsRequest struct {
	XMLName xml.Name `xml:"urn:oasis:names:tc:ebxml-regrep:registry:xsd:2.1 SubmitObjectsRequest"`

	LeafRegistryObjectList ObjectList `xml:"urn:oasis:names:tc:ebxml-regrep:rim:xsd:2.1 LeafRegistryObjectList"`
}

// Document is document content travelling next to the metadata. ContentID
// equals the id of the describing ExtrinsicObject.
type Document struct {
	ContentID string       `xml:"contentId,attr"`
	Value     ebxml.Base64 `xml:",chardata"`
}

// ProvideAndRegisterDocumentSetRequest bundles a SubmitObjectsRequest with
// the document contents that 2.1 transports as MIME attachments.
type ProvideAndRegisterDocumentSetRequest struct {
	XMLName xml.Name `xml:"urn:oasis:names:tc:ebxml-regrep:registry:xsd:2.1 ProvideAndRegisterDocumentSetRequest"`

	SubmitObjectsRequest SubmitObjectsRequest `xml:"urn:oasis:names:tc:ebxml-regrep:registry:xsd:2.1 SubmitObjectsRequest"`
	Documents            []*Document          `xml:"Document"`
}

// ResponseOption selects what a query returns.
type ResponseOption struct {
	ReturnType            string `xml:"returnType,attr,omitempty"`
	ReturnComposedObjects bool   `xml:"returnComposedObjects,attr"`
}

// StoredQuery names a stored query and its parameters. 2.1 has no native
// stored query element; this one carries XDS stored queries alongside the
// SQL form.
type StoredQuery struct {
	ID    string  `xml:"id,attr"`
	Slots []*Slot `xml:"Slot"`
}

// AdhocQueryRequest is the Query Registry message.
type AdhocQueryRequest struct {
	XMLName xml.Name `xml:"urn:oasis:names:tc:ebxml-regrep:query:xsd:2.1 AdhocQueryRequest"`

	ResponseOption ResponseOption `xml:"ResponseOption"`
	SQLQuery       string         `xml:"urn:oasis:names:tc:ebxml-regrep:registry:xsd:2.1 SQLQuery,omitempty"`
	StoredQuery    *StoredQuery   `xml:"StoredQuery"`
}

// RegistryError is a single error or warning of a RegistryResponse.
type RegistryError struct {
	ErrorCode   string `xml:"errorCode,attr"`
	CodeContext string `xml:"codeContext,attr,omitempty"`
	Location    string `xml:"location,attr,omitempty"`
	Severity    string `xml:"severity,attr,omitempty"`
}

// RegistryErrorList holds the errors of a RegistryResponse.
type RegistryErrorList struct {
	RegistryErrors []*RegistryError `xml:"RegistryError"`
}

// AdhocQueryResponse wraps the result of a query.
type AdhocQueryResponse struct {
	SQLQueryResult ObjectList `xml:"SQLQueryResult"`
}

// RegistryResponse answers both submissions and queries in 2.1.
type RegistryResponse struct {
	XMLName xml.Name `xml:"urn:oasis:names:tc:ebxml-regrep:registry:xsd:2.1 RegistryResponse"`

	Status             string              `xml:"status,attr"`
	AdhocQueryResponse *AdhocQueryResponse `xml:"AdhocQueryResponse"`
	RegistryErrorList  *RegistryErrorList  `xml:"RegistryErrorList"`
}
