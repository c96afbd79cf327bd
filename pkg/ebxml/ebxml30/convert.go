package ebxml30

import (
	"xds/pkg/ebxml"
	"xds/pkg/metadata"
	"xds/pkg/transform"
)

// ToProvideAndRegisterRequest converts a Provide and Register Document Set-b
// transaction. Each Document element carries the id of its document entry;
// content without an entry gets a fresh id.
func ToProvideAndRegisterRequest(req *metadata.ProvideAndRegisterDocumentSet) *ProvideAndRegisterDocumentSetRequest {
	if req == nil {
		return nil
	}

	entries, contents := transform.SplitDocuments(req.Documents)
	msg := &ProvideAndRegisterDocumentSetRequest{}
	for _, c := range contents {
		msg.Documents = append(msg.Documents, &Document{ID: c.ID, Value: c.Value})
	}
	transform.ToSubmitObjects(Factory{}, WrapRegistryObjectList(&msg.SubmitObjectsRequest.RegistryObjectList), &transform.SubmitObjects{
		SubmissionSet:   req.SubmissionSet,
		DocumentEntries: entries,
		Folders:         req.Folders,
		Associations:    req.Associations,
	})

	return msg
}

// FromProvideAndRegisterRequest converts a 3.0 message back to the
// transaction. Documents follow the order of their entries; content that no
// entry refers to keeps its place among the Document elements.
func FromProvideAndRegisterRequest(msg *ProvideAndRegisterDocumentSetRequest) *metadata.ProvideAndRegisterDocumentSet {
	if msg == nil {
		return nil
	}

	objects := transform.FromSubmitObjects(ebxml.Version30, WrapRegistryObjectList(&msg.SubmitObjectsRequest.RegistryObjectList))
	contents := make([]transform.Content, 0, len(msg.Documents))
	for _, d := range msg.Documents {
		contents = append(contents, transform.Content{ID: d.ID, Value: d.Value})
	}

	return &metadata.ProvideAndRegisterDocumentSet{
		SubmissionSet: objects.SubmissionSet,
		Documents:     transform.JoinDocuments(objects.DocumentEntries, contents),
		Folders:       objects.Folders,
		Associations:  objects.Associations,
	}
}

// ToSubmitObjectsRequest converts a Register Document Set-b transaction.
func ToSubmitObjectsRequest(req *metadata.RegisterDocumentSet) *SubmitObjectsRequest {
	if req == nil {
		return nil
	}

	msg := &SubmitObjectsRequest{}
	transform.ToSubmitObjects(Factory{}, WrapRegistryObjectList(&msg.RegistryObjectList), &transform.SubmitObjects{
		SubmissionSet:   req.SubmissionSet,
		DocumentEntries: req.DocumentEntries,
		Folders:         req.Folders,
		Associations:    req.Associations,
	})

	return msg
}

// FromSubmitObjectsRequest converts a 3.0 SubmitObjectsRequest back to the
// Register Document Set-b transaction.
func FromSubmitObjectsRequest(msg *SubmitObjectsRequest) *metadata.RegisterDocumentSet {
	if msg == nil {
		return nil
	}

	objects := transform.FromSubmitObjects(ebxml.Version30, WrapRegistryObjectList(&msg.RegistryObjectList))

	return &metadata.RegisterDocumentSet{
		SubmissionSet:   objects.SubmissionSet,
		DocumentEntries: objects.DocumentEntries,
		Folders:         objects.Folders,
		Associations:    objects.Associations,
	}
}

// ToAdhocQueryRequest converts a registry query. The query id becomes the
// AdhocQuery id and each parameter its own slot; SQL travels as a query
// expression.
func ToAdhocQueryRequest(q *metadata.QueryRegistry) *AdhocQueryRequest {
	if q == nil {
		return nil
	}

	msg := &AdhocQueryRequest{
		ResponseOption: ResponseOption{ReturnType: string(q.ReturnType), ReturnComposedObjects: true},
		AdhocQuery:     AdhocQuery{ID: q.QueryID},
	}
	for _, p := range q.Parameters {
		msg.AdhocQuery.Slots = append(msg.AdhocQuery.Slots, &Slot{Name: p.Name, Values: append([]string(nil), p.Values...)})
	}
	if q.SQL != "" {
		msg.AdhocQuery.QueryExpression = &QueryExpression{QueryLanguage: QueryLanguageSQL, Value: q.SQL}
	}

	return msg
}

// FromAdhocQueryRequest converts a 3.0 AdhocQueryRequest back to the query.
func FromAdhocQueryRequest(msg *AdhocQueryRequest) *metadata.QueryRegistry {
	if msg == nil {
		return nil
	}

	q := &metadata.QueryRegistry{
		ReturnType: metadata.QueryReturnType(msg.ResponseOption.ReturnType),
		QueryID:    msg.AdhocQuery.ID,
	}
	for _, s := range msg.AdhocQuery.Slots {
		q.Parameters = append(q.Parameters, metadata.Slot{Name: s.Name, Values: s.Values})
	}
	if msg.AdhocQuery.QueryExpression != nil {
		q.SQL = msg.AdhocQuery.QueryExpression.Value
	}

	return q
}

func toErrorList(errs []metadata.ErrorInfo) *RegistryErrorList {
	if len(errs) == 0 {
		return nil
	}

	highest := metadata.SeverityWarning
	list := &RegistryErrorList{}
	for _, e := range errs {
		if e.Severity == metadata.SeverityError {
			highest = metadata.SeverityError
		}
		list.RegistryErrors = append(list.RegistryErrors, &RegistryError{
			ErrorCode:   string(e.ErrorCode),
			CodeContext: e.CodeContext,
			Location:    e.Location,
			Severity:    ebxml.Version30.Severity(e.Severity),
		})
	}
	list.HighestSeverity = ebxml.Version30.Severity(highest)

	return list
}

func fromErrorList(list *RegistryErrorList) []metadata.ErrorInfo {
	if list == nil {
		return nil
	}

	var errs []metadata.ErrorInfo
	for _, e := range list.RegistryErrors {
		errs = append(errs, metadata.ErrorInfo{
			ErrorCode:   metadata.ErrorCode(e.ErrorCode),
			CodeContext: e.CodeContext,
			Location:    e.Location,
			Severity:    ebxml.Version30.ParseSeverity(e.Severity),
		})
	}

	return errs
}

// ToRegistryResponse converts the response to a submission.
func ToRegistryResponse(r *metadata.Response) *RegistryResponse {
	if r == nil {
		return nil
	}

	return &RegistryResponse{
		Status:            ebxml.Version30.ResponseStatus(r.Status),
		RegistryErrorList: toErrorList(r.Errors),
	}
}

// FromRegistryResponse converts a 3.0 RegistryResponse back to a response.
func FromRegistryResponse(msg *RegistryResponse) *metadata.Response {
	if msg == nil {
		return nil
	}

	return &metadata.Response{
		Status: ebxml.Version30.ParseResponseStatus(msg.Status),
		Errors: fromErrorList(msg.RegistryErrorList),
	}
}

// ToQueryResponse converts a query response to an AdhocQueryResponse.
func ToQueryResponse(r *metadata.QueryResponse) *AdhocQueryResponse {
	if r == nil {
		return nil
	}

	msg := &AdhocQueryResponse{
		Status:            ebxml.Version30.ResponseStatus(r.Status),
		RegistryErrorList: toErrorList(r.Errors),
	}
	transform.ToQueryResults(Factory{}, WrapRegistryObjectList(&msg.RegistryObjectList), r)

	return msg
}

// FromQueryResponse converts a 3.0 AdhocQueryResponse back to a query
// response.
func FromQueryResponse(msg *AdhocQueryResponse) *metadata.QueryResponse {
	if msg == nil {
		return nil
	}

	r := &metadata.QueryResponse{
		Status: ebxml.Version30.ParseResponseStatus(msg.Status),
		Errors: fromErrorList(msg.RegistryErrorList),
	}
	transform.FromQueryResults(ebxml.Version30, WrapRegistryObjectList(&msg.RegistryObjectList), r)

	return r
}
