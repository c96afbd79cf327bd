// Package ebxml30 adapts the ebRIM/ebRS 3.0 wire schema used by XDS.b to the
// version-agnostic facade of package ebxml, and converts XDS transactions to
// and from their 3.0 wire messages.
//
// The adapters mirror those of package ebxml21 line for line. Each wraps its
// own wire types, so the two schemas can drift apart without touching the
// other version.
package ebxml30

import (
	"encoding/xml"

	"xds/pkg/ebxml"
)

const (
	// NamespaceRIM is the ebRIM 3.0 namespace.
	NamespaceRIM = "urn:oasis:names:tc:ebxml-regrep:xsd:rim:3.0"
	// NamespaceLCM is the ebRS 3.0 life cycle management namespace.
	NamespaceLCM = "urn:oasis:names:tc:ebxml-regrep:xsd:lcm:3.0"
	// NamespaceRS is the ebRS 3.0 registry services namespace.
	NamespaceRS = "urn:oasis:names:tc:ebxml-regrep:xsd:rs:3.0"
	// NamespaceQuery is the ebRS 3.0 query namespace.
	NamespaceQuery = "urn:oasis:names:tc:ebxml-regrep:xsd:query:3.0"
	// NamespaceXDSB is the IHE XDS.b namespace.
	NamespaceXDSB = "urn:ihe:iti:xds-b:2007"

	// QueryLanguageSQL is the query language of SQL query expressions.
	QueryLanguageSQL = "urn:oasis:names:tc:ebxml-regrep:QueryLanguage:SQL-92"
)

// Slot is a named value list.
type Slot struct {
	Name     string   `xml:"name,attr"`
	SlotType string   `xml:"slotType,attr,omitempty"`
	Values   []string `xml:"ValueList>Value"`
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

// RegistryObject holds the attributes and children shared by every 3.0
// registry object. In 3.0 slots come before names.
type RegistryObject struct {
	ID         string `xml:"id,attr,omitempty"`
	Home       string `xml:"home,attr,omitempty"`
	ObjectType string `xml:"objectType,attr,omitempty"`
	Status     string `xml:"status,attr,omitempty"`

	Slots               []*Slot               `xml:"Slot"`
	Name                *InternationalString  `xml:"Name"`
	Description         *InternationalString  `xml:"Description"`
	Classifications     []*Classification     `xml:"Classification"`
	ExternalIdentifiers []*ExternalIdentifier `xml:"ExternalIdentifier"`
}

// ExtrinsicObject describes a document.
type ExtrinsicObject struct {
	RegistryObject

	MimeType string `xml:"mimeType,attr,omitempty"`
	IsOpaque bool   `xml:"isOpaque,attr,omitempty"`
}

// RegistryPackage is a submission set or a folder.
type RegistryPackage struct {
	RegistryObject
}

// Classification classifies a registry object.
type Classification struct {
	RegistryObject

	ClassificationScheme string `xml:"classificationScheme,attr,omitempty"`
	ClassifiedObject     string `xml:"classifiedObject,attr"`
	ClassificationNode   string `xml:"classificationNode,attr,omitempty"`
	NodeRepresentation   string `xml:"nodeRepresentation,attr,omitempty"`
}

// ExternalIdentifier identifies a registry object within a scheme.
type ExternalIdentifier struct {
	RegistryObject

	RegistryObjectID     string `xml:"registryObject,attr"`
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

// RegistryObjectList is the object list of submissions and query responses.
type RegistryObjectList struct {
	ObjectRefs       []*ObjectRef       `xml:"ObjectRef"`
	ExtrinsicObjects []*ExtrinsicObject `xml:"ExtrinsicObject"`
	RegistryPackages []*RegistryPackage `xml:"RegistryPackage"`
	Classifications  []*Classification  `xml:"Classification"`
	Associations     []*Association     `xml:"Association"`
}

// SubmitObjectsRequest is the Register Document Set-b message.
type SubmitObjectsRequest struct {
	XMLName xml.Name `xml:"urn:oasis:names:tc:ebxml-regrep:xsd:lcm:3.0 SubmitObjectsRequest"`

	RegistryObjectList RegistryObjectList `xml:"urn:oasis:names:tc:ebxml-regrep:xsd:rim:3.0 RegistryObjectList"`
}

// Document is inline document content. ID equals the id of the describing
// ExtrinsicObject.
type Document struct {
	ID    string       `xml:"id,attr"`
	Value ebxml.Base64 `xml:",chardata"`
}

// ProvideAndRegisterDocumentSetRequest is the Provide and Register Document
// Set-b message.
type ProvideAndRegisterDocumentSetRequest struct {
	XMLName xml.Name `xml:"urn:ihe:iti:xds-b:2007 ProvideAndRegisterDocumentSetRequest"`

	SubmitObjectsRequest SubmitObjectsRequest `xml:"urn:oasis:names:tc:ebxml-regrep:xsd:lcm:3.0 SubmitObjectsRequest"`
	Documents            []*Document          `xml:"Document"`
}

// ResponseOption selects what a query returns.
type ResponseOption struct {
	ReturnType            string `xml:"returnType,attr,omitempty"`
	ReturnComposedObjects bool   `xml:"returnComposedObjects,attr"`
}

// QueryExpression is a query in a query language such as SQL.
type QueryExpression struct {
	QueryLanguage string `xml:"queryLanguage,attr"`
	Value         string `xml:",chardata"`
}

// AdhocQuery is a stored query id with its parameters, or a query
// expression.
type AdhocQuery struct {
	ID              string           `xml:"id,attr,omitempty"`
	Slots           []*Slot          `xml:"Slot"`
	QueryExpression *QueryExpression `xml:"QueryExpression"`
}

// AdhocQueryRequest is the Registry Stored Query message.
type AdhocQueryRequest struct {
	XMLName xml.Name `xml:"urn:oasis:names:tc:ebxml-regrep:xsd:query:3.0 AdhocQueryRequest"`

	ResponseOption ResponseOption `xml:"ResponseOption"`
	AdhocQuery     AdhocQuery     `xml:"urn:oasis:names:tc:ebxml-regrep:xsd:rim:3.0 AdhocQuery"`
}

// RegistryError is a single error or warning.
type RegistryError struct {
	ErrorCode   string `xml:"errorCode,attr"`
	CodeContext string `xml:"codeContext,attr,omitempty"`
	Location    string `xml:"location,attr,omitempty"`
	Severity    string `xml:"severity,attr,omitempty"`
}

// RegistryErrorList holds the errors of a response.
type RegistryErrorList struct {
	HighestSeverity string           `xml:"highestSeverity,attr,omitempty"`
	RegistryErrors  []*RegistryError `xml:"RegistryError"`
}

// RegistryResponse answers submissions.
type RegistryResponse struct {
	XMLName xml.Name `xml:"urn:oasis:names:tc:ebxml-regrep:xsd:rs:3.0 RegistryResponse"`

	Status            string             `xml:"status,attr"`
	RegistryErrorList *RegistryErrorList `xml:"RegistryErrorList"`
}

// AdhocQueryResponse answers queries.
type AdhocQueryResponse struct {
	XMLName xml.Name `xml:"urn:oasis:names:tc:ebxml-regrep:xsd:query:3.0 AdhocQueryResponse"`

	Status             string             `xml:"status,attr"`
	RegistryErrorList  *RegistryErrorList `xml:"urn:oasis:names:tc:ebxml-regrep:xsd:rs:3.0 RegistryErrorList"`
	RegistryObjectList RegistryObjectList `xml:"urn:oasis:names:tc:ebxml-regrep:xsd:rim:3.0 RegistryObjectList"`
}
