package ebxml21

import (
	"xds/pkg/ebxml"
	"xds/pkg/metadata"
	"xds/pkg/transform"
)

// ToProvideAndRegisterRequest converts a Provide and Register Document Set
// transaction to its 2.1 message. Content is linked to its document entry by
// id; content without an entry gets a fresh id.
func ToProvideAndRegisterRequest(req *metadata.ProvideAndRegisterDocumentSet) *ProvideAndRegisterDocumentSetRequest {
	if req == nil {
		return nil
	}

	entries, contents := transform.SplitDocuments(req.Documents)
	msg := &ProvideAndRegisterDocumentSetRequest{}
	for _, c := range contents {
		msg.Documents = append(msg.Documents, &Document{ContentID: c.ID, Value: c.Value})
	}
	transform.ToSubmitObjects(Factory{}, WrapObjectList(&msg.SubmitObjectsRequest.LeafRegistryObjectList), &transform.SubmitObjects{
		SubmissionSet:   req.SubmissionSet,
		DocumentEntries: entries,
		Folders:         req.Folders,
		Associations:    req.Associations,
	})

	return msg
}

// FromProvideAndRegisterRequest converts a 2.1 message back to the
// transaction. Documents follow the order of their entries; content that no
// entry refers to keeps its place among the Document elements.
func FromProvideAndRegisterRequest(msg *ProvideAndRegisterDocumentSetRequest) *metadata.ProvideAndRegisterDocumentSet {
	if msg == nil {
		return nil
	}

	objects := transform.FromSubmitObjects(ebxml.Version21, WrapObjectList(&msg.SubmitObjectsRequest.LeafRegistryObjectList))
	contents := make([]transform.Content, 0, len(msg.Documents))
	for _, d := range msg.Documents {
		contents = append(contents, transform.Content{ID: d.ContentID, Value: d.Value})
	}

	return &metadata.ProvideAndRegisterDocumentSet{
		SubmissionSet: objects.SubmissionSet,
		Documents:     transform.JoinDocuments(objects.DocumentEntries, contents),
		Folders:       objects.Folders,
		Associations:  objects.Associations,
	}
}

// ToSubmitObjectsRequest converts a Register Document Set transaction.
func ToSubmitObjectsRequest(req *metadata.RegisterDocumentSet) *SubmitObjectsRequest {
	if req == nil {
		return nil
	}

	msg := &SubmitObjectsRequest{}
	transform.ToSubmitObjects(Factory{}, WrapObjectList(&msg.LeafRegistryObjectList), &transform.SubmitObjects{
		SubmissionSet:   req.SubmissionSet,
		DocumentEntries: req.DocumentEntries,
		Folders:         req.Folders,
		Associations:    req.Associations,
	})

	return msg
}

// FromSubmitObjectsRequest converts a 2.1 SubmitObjectsRequest back to the
// Register Document Set transaction.
func FromSubmitObjectsRequest(msg *SubmitObjectsRequest) *metadata.RegisterDocumentSet {
	if msg == nil {
		return nil
	}

	objects := transform.FromSubmitObjects(ebxml.Version21, WrapObjectList(&msg.LeafRegistryObjectList))

	return &metadata.RegisterDocumentSet{
		SubmissionSet:   objects.SubmissionSet,
		DocumentEntries: objects.DocumentEntries,
		Folders:         objects.Folders,
		Associations:    objects.Associations,
	}
}

// ToAdhocQueryRequest converts a registry query. Each parameter becomes its
// own slot so repeated parameter names survive.
func ToAdhocQueryRequest(q *metadata.QueryRegistry) *AdhocQueryRequest {
	if q == nil {
		return nil
	}

	msg := &AdhocQueryRequest{
		ResponseOption: ResponseOption{ReturnType: string(q.ReturnType), ReturnComposedObjects: true},
		SQLQuery:       q.SQL,
	}
	if q.QueryID != "" || len(q.Parameters) > 0 {
		msg.StoredQuery = &StoredQuery{ID: q.QueryID}
		for _, p := range q.Parameters {
			msg.StoredQuery.Slots = append(msg.StoredQuery.Slots, &Slot{Name: p.Name, Values: append([]string(nil), p.Values...)})
		}
	}

	return msg
}

// FromAdhocQueryRequest converts a 2.1 AdhocQueryRequest back to the query.
func FromAdhocQueryRequest(msg *AdhocQueryRequest) *metadata.QueryRegistry {
	if msg == nil {
		return nil
	}

	q := &metadata.QueryRegistry{
		ReturnType: metadata.QueryReturnType(msg.ResponseOption.ReturnType),
		SQL:        msg.SQLQuery,
	}
	if msg.StoredQuery != nil {
		q.QueryID = msg.StoredQuery.ID
		for _, s := range msg.StoredQuery.Slots {
			q.Parameters = append(q.Parameters, metadata.Slot{Name: s.Name, Values: s.Values})
		}
	}

	return q
}

func toErrorList(errs []metadata.ErrorInfo) *RegistryErrorList {
	if len(errs) == 0 {
		return nil
	}

	list := &RegistryErrorList{}
	for _, e := range errs {
		list.RegistryErrors = append(list.RegistryErrors, &RegistryError{
			ErrorCode:   string(e.ErrorCode),
			CodeContext: e.CodeContext,
			Location:    e.Location,
			Severity:    ebxml.Version21.Severity(e.Severity),
		})
	}

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
			Severity:    ebxml.Version21.ParseSeverity(e.Severity),
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
		Status:            ebxml.Version21.ResponseStatus(r.Status),
		RegistryErrorList: toErrorList(r.Errors),
	}
}

// FromRegistryResponse converts a 2.1 RegistryResponse back to a response.
func FromRegistryResponse(msg *RegistryResponse) *metadata.Response {
	if msg == nil {
		return nil
	}

	return &metadata.Response{
		Status: ebxml.Version21.ParseResponseStatus(msg.Status),
		Errors: fromErrorList(msg.RegistryErrorList),
	}
}

// ToQueryResponse converts a query response. 2.1 answers queries with a
// RegistryResponse carrying an SQLQueryResult.
func ToQueryResponse(r *metadata.QueryResponse) *RegistryResponse {
	if r == nil {
		return nil
	}

	msg := &RegistryResponse{
		Status:             ebxml.Version21.ResponseStatus(r.Status),
		AdhocQueryResponse: &AdhocQueryResponse{},
		RegistryErrorList:  toErrorList(r.Errors),
	}
	transform.ToQueryResults(Factory{}, WrapObjectList(&msg.AdhocQueryResponse.SQLQueryResult), r)

	return msg
}

// FromQueryResponse converts a 2.1 RegistryResponse back to a query response.
func FromQueryResponse(msg *RegistryResponse) *metadata.QueryResponse {
	if msg == nil {
		return nil
	}

	r := &metadata.QueryResponse{
		Status: ebxml.Version21.ParseResponseStatus(msg.Status),
		Errors: fromErrorList(msg.RegistryErrorList),
	}
	if msg.AdhocQueryResponse != nil {
		transform.FromQueryResults(ebxml.Version21, WrapObjectList(&msg.AdhocQueryResponse.SQLQueryResult), r)
	}

	return r
}
