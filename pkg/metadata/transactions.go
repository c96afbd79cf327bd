package metadata

import "bytes"

// Document pairs a document entry with the document's content. Either part
// may be absent.
type Document struct {
	DocumentEntry *DocumentEntry `json:"documentEntry,omitempty"`
	Content       []byte         `json:"content,omitempty"`
}

// Equal reports whether d and other describe the same entry and content.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}

	return d.DocumentEntry.Equal(other.DocumentEntry) && bytes.Equal(d.Content, other.Content)
}

// ProvideAndRegisterDocumentSet submits documents together with their
// metadata to a repository.
type ProvideAndRegisterDocumentSet struct {
	SubmissionSet *SubmissionSet `json:"submissionSet,omitempty"`
	Documents     []Document     `json:"documents,omitempty"`
	Folders       []Folder       `json:"folders,omitempty"`
	Associations  []Association  `json:"associations,omitempty"`
}

// Equal reports whether p and other are field-wise equal.
func (p *ProvideAndRegisterDocumentSet) Equal(other *ProvideAndRegisterDocumentSet) bool {
	if p == nil || other == nil {
		return p == other
	}

	return p.SubmissionSet.Equal(other.SubmissionSet) &&
		equalEach(p.Documents, other.Documents) &&
		equalEach(p.Folders, other.Folders) &&
		equalEach(p.Associations, other.Associations)
}

// RegisterDocumentSet submits metadata to a registry without document content.
type RegisterDocumentSet struct {
	SubmissionSet   *SubmissionSet  `json:"submissionSet,omitempty"`
	DocumentEntries []DocumentEntry `json:"documentEntries,omitempty"`
	Folders         []Folder        `json:"folders,omitempty"`
	Associations    []Association   `json:"associations,omitempty"`
}

// Equal reports whether r and other are field-wise equal.
func (r *RegisterDocumentSet) Equal(other *RegisterDocumentSet) bool {
	if r == nil || other == nil {
		return r == other
	}

	return r.SubmissionSet.Equal(other.SubmissionSet) &&
		equalEach(r.DocumentEntries, other.DocumentEntries) &&
		equalEach(r.Folders, other.Folders) &&
		equalEach(r.Associations, other.Associations)
}

// Slot is a named, ordered list of string values.
type Slot struct {
	Name   string   `json:"name"`
	Values []string `json:"values,omitempty"`
}

// Equal reports whether s and other have the same name and values in order.
func (s *Slot) Equal(other *Slot) bool {
	if s == nil || other == nil {
		return s == other
	}

	return s.Name == other.Name && equalStrings(s.Values, other.Values)
}

// QueryRegistry is a registry query. A stored query is selected by QueryID
// and parameterized by Parameters; an ad-hoc SQL query sets SQL instead.
type QueryRegistry struct {
	ReturnType QueryReturnType `json:"returnType,omitempty"`
	QueryID    string          `json:"queryId,omitempty"`
	Parameters []Slot          `json:"parameters,omitempty"`
	SQL        string          `json:"sql,omitempty"`
}

// Equal reports whether q and other are field-wise equal.
func (q *QueryRegistry) Equal(other *QueryRegistry) bool {
	if q == nil || other == nil {
		return q == other
	}

	return q.ReturnType == other.ReturnType &&
		q.QueryID == other.QueryID &&
		equalEach(q.Parameters, other.Parameters) &&
		q.SQL == other.SQL
}

// Parameter returns the values of the first parameter named name.
func (q *QueryRegistry) Parameter(name string) []string {
	for _, p := range q.Parameters {
		if p.Name == name {
			return p.Values
		}
	}

	return nil
}

// ErrorInfo is a single registry error or warning.
type ErrorInfo struct {
	ErrorCode   ErrorCode `json:"errorCode"`
	CodeContext string    `json:"codeContext,omitempty"`
	Location    string    `json:"location,omitempty"`
	Severity    Severity  `json:"severity,omitempty"`
}

// Equal reports whether e and other are field-wise equal.
func (e *ErrorInfo) Equal(other *ErrorInfo) bool {
	if e == nil || other == nil {
		return e == other
	}

	return *e == *other
}

// Response is the outcome of a submission transaction.
type Response struct {
	Status Status      `json:"status"`
	Errors []ErrorInfo `json:"errors,omitempty"`
}

// Equal reports whether r and other are field-wise equal.
func (r *Response) Equal(other *Response) bool {
	if r == nil || other == nil {
		return r == other
	}

	return r.Status == other.Status && equalEach(r.Errors, other.Errors)
}

// QueryResponse is the outcome of a registry query.
type QueryResponse struct {
	Status          Status            `json:"status"`
	Errors          []ErrorInfo       `json:"errors,omitempty"`
	DocumentEntries []DocumentEntry   `json:"documentEntries,omitempty"`
	SubmissionSets  []SubmissionSet   `json:"submissionSets,omitempty"`
	Folders         []Folder          `json:"folders,omitempty"`
	Associations    []Association     `json:"associations,omitempty"`
	References      []ObjectReference `json:"references,omitempty"`
}

// Equal reports whether r and other are field-wise equal.
func (r *QueryResponse) Equal(other *QueryResponse) bool {
	if r == nil || other == nil {
		return r == other
	}

	return r.Status == other.Status &&
		equalEach(r.Errors, other.Errors) &&
		equalEach(r.DocumentEntries, other.DocumentEntries) &&
		equalEach(r.SubmissionSets, other.SubmissionSets) &&
		equalEach(r.Folders, other.Folders) &&
		equalEach(r.Associations, other.Associations) &&
		equalEach(r.References, other.References)
}
