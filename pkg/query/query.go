// Package query builds registry stored queries. Parameter values follow the
// stored-query quoting rules: single values are wrapped in single quotes and
// multi-valued parameters are rendered as a parenthesized, comma-separated
// list of quoted values.
package query

import (
	"strings"

	"xds/pkg/hl7"
	"xds/pkg/metadata"
)

// Stored query ids.
const (
	FindDocuments               = "urn:uuid:14d4debf-8f97-4251-9a74-a90016b0af0d"
	FindSubmissionSets          = "urn:uuid:f26abbcb-ac74-4422-8a30-edb644bbc1a9"
	FindFolders                 = "urn:uuid:958f3006-baad-4929-a4de-ff1114824431"
	GetAll                      = "urn:uuid:10b545ea-725c-446d-9b95-8aeb444eddf3"
	GetDocuments                = "urn:uuid:5c4f972b-d56b-40ac-a5fc-c8ca9b40b9d4"
	GetFolders                  = "urn:uuid:5737b14c-8a1a-4539-b659-e03a34a5e1e4"
	GetAssociations             = "urn:uuid:a7ae438b-4bc2-4642-93e9-be891f7bb155"
	GetSubmissionSetAndContents = "urn:uuid:e8e3cb2c-e39c-46b9-99e4-c12f57260b83"
)

// Stored query parameter names.
const (
	ParamPatientID                 = "$patientId"
	ParamDocumentEntryPatientID    = "$XDSDocumentEntryPatientId"
	ParamDocumentEntryStatus       = "$XDSDocumentEntryStatus"
	ParamDocumentEntryClassCode    = "$XDSDocumentEntryClassCode"
	ParamDocumentEntryCreationFrom = "$XDSDocumentEntryCreationTimeFrom"
	ParamDocumentEntryCreationTo   = "$XDSDocumentEntryCreationTimeTo"
	ParamDocumentEntryEntryUUID    = "$XDSDocumentEntryEntryUUID"
	ParamDocumentEntryUniqueID     = "$XDSDocumentEntryUniqueId"
	ParamSubmissionSetPatientID    = "$XDSSubmissionSetPatientId"
	ParamFolderPatientID           = "$XDSFolderPatientId"
	ParamUUID                      = "$uuid"
)

const statusPrefix = "urn:oasis:names:tc:ebxml-regrep:StatusType:"

// Quote wraps a single parameter value in single quotes, doubling embedded
// quotes.
func Quote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}

// QuoteList renders values as a stored-query list: ('a','b').
func QuoteList(values ...string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = Quote(v)
	}

	return "(" + strings.Join(quoted, ",") + ")"
}

// Unquote reverses Quote. Values that are not quoted are returned unchanged.
func Unquote(value string) string {
	if len(value) >= 2 && strings.HasPrefix(value, "'") && strings.HasSuffix(value, "'") {
		return strings.ReplaceAll(value[1:len(value)-1], "''", "'")
	}

	return value
}

// Builder accumulates stored query parameters in insertion order.
type Builder struct {
	q metadata.QueryRegistry
}

// New starts a stored query with the given id returning full objects.
func New(queryID string) *Builder {
	return &Builder{q: metadata.QueryRegistry{
		ReturnType: metadata.QueryReturnTypeLeafClass,
		QueryID:    queryID,
	}}
}

// ReturnType overrides the query return type.
func (b *Builder) ReturnType(rt metadata.QueryReturnType) *Builder {
	b.q.ReturnType = rt

	return b
}

// Param adds a single quoted value. Empty values are skipped.
func (b *Builder) Param(name, value string) *Builder {
	if value == "" {
		return b
	}
	b.q.Parameters = append(b.q.Parameters, metadata.Slot{Name: name, Values: []string{Quote(value)}})

	return b
}

// ParamList adds a list-valued parameter. An empty list is skipped.
func (b *Builder) ParamList(name string, values ...string) *Builder {
	if len(values) == 0 {
		return b
	}
	b.q.Parameters = append(b.q.Parameters, metadata.Slot{Name: name, Values: []string{QuoteList(values...)}})

	return b
}

// Raw adds a parameter whose values are already encoded.
func (b *Builder) Raw(name string, values ...string) *Builder {
	b.q.Parameters = append(b.q.Parameters, metadata.Slot{Name: name, Values: values})

	return b
}

// Build returns the assembled query.
func (b *Builder) Build() metadata.QueryRegistry {
	q := b.q
	q.Parameters = append([]metadata.Slot(nil), b.q.Parameters...)

	return q
}

// FindDocumentsQuery returns a FindDocuments stored query for the given
// patient restricted to the given availability statuses.
func FindDocumentsQuery(patientID *metadata.Identifiable, statuses ...metadata.AvailabilityStatus) metadata.QueryRegistry {
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = statusPrefix + string(s)
	}

	return New(FindDocuments).
		Param(ParamDocumentEntryPatientID, hl7.RenderCX(patientID)).
		ParamList(ParamDocumentEntryStatus, values...).
		Build()
}

// GetDocumentsQuery returns a GetDocuments stored query by entry UUIDs.
func GetDocumentsQuery(entryUUIDs ...string) metadata.QueryRegistry {
	return New(GetDocuments).ParamList(ParamDocumentEntryEntryUUID, entryUUIDs...).Build()
}
