package ebxml30_test

import (
	"testing"
	"xds/pkg/ebxml"
	"xds/pkg/ebxml/ebxml30"
	"xds/pkg/metadata"
	"xds/pkg/sample"

	"github.com/stretchr/testify/require"
)

func TestProvideAndRegisterScenario(t *testing.T) {
	req := &metadata.ProvideAndRegisterDocumentSet{
		SubmissionSet: &metadata.SubmissionSet{EntryUUID: "ss1"},
		Documents: []metadata.Document{{
			DocumentEntry: &metadata.DocumentEntry{
				EntryUUID: "entry1",
				UniqueID:  "doc1",
				ClassCode: &metadata.Code{Code: "Consult"},
			},
			Content: []byte("content"),
		}},
	}

	msg := ebxml30.ToProvideAndRegisterRequest(req)
	require.Len(t, msg.Documents, 1)
	require.Equal(t, "entry1", msg.Documents[0].ID)

	list := msg.SubmitObjectsRequest.RegistryObjectList
	require.Len(t, list.ExtrinsicObjects, 1)
	obj := ebxml30.WrapExtrinsicObject(list.ExtrinsicObjects[0])
	require.Equal(t, "doc1", obj.ExternalIdentifierValue(ebxml.DocumentEntryUniqueID))
	require.Equal(t, "Consult", obj.SingleClassification(ebxml.DocumentEntryClassCode).NodeRepresentation())

	got := ebxml30.FromProvideAndRegisterRequest(msg)
	require.Equal(t, "ss1", got.SubmissionSet.EntryUUID)
	require.Len(t, got.Documents, 1)
	require.Equal(t, "doc1", got.Documents[0].DocumentEntry.UniqueID)
	require.Equal(t, "Consult", got.Documents[0].DocumentEntry.ClassCode.Code)
	require.Equal(t, []byte("content"), got.Documents[0].Content)
	require.True(t, req.Equal(got))
}

func TestProvideAndRegisterDocumentOrder(t *testing.T) {
	req := &metadata.ProvideAndRegisterDocumentSet{
		Documents: []metadata.Document{
			{DocumentEntry: &metadata.DocumentEntry{EntryUUID: "a"}, Content: []byte("a")},
			{DocumentEntry: &metadata.DocumentEntry{EntryUUID: "b"}},
			{Content: []byte("orphan")},
		},
	}

	got := ebxml30.FromProvideAndRegisterRequest(ebxml30.ToProvideAndRegisterRequest(req))
	require.True(t, req.Equal(got), "got %+v", got)
	require.Nil(t, got.Documents[1].Content)
	require.Nil(t, got.Documents[2].DocumentEntry)
}

func TestRoundTrip(t *testing.T) {
	t.Run("ProvideAndRegister", func(t *testing.T) {
		want := sample.ProvideAndRegister()
		require.True(t, want.Equal(ebxml30.FromProvideAndRegisterRequest(ebxml30.ToProvideAndRegisterRequest(want))))
	})
	t.Run("Register", func(t *testing.T) {
		want := sample.Register()
		got := ebxml30.FromSubmitObjectsRequest(ebxml30.ToSubmitObjectsRequest(want))
		require.True(t, want.Equal(got))
	})
	t.Run("Query", func(t *testing.T) {
		want := sample.Query()
		require.True(t, want.Equal(ebxml30.FromAdhocQueryRequest(ebxml30.ToAdhocQueryRequest(want))))
	})
	t.Run("SQLQuery", func(t *testing.T) {
		want := &metadata.QueryRegistry{
			ReturnType: metadata.QueryReturnTypeObjectRef,
			SQL:        "SELECT id FROM ExtrinsicObject",
		}
		msg := ebxml30.ToAdhocQueryRequest(want)
		require.Empty(t, msg.AdhocQuery.ID)
		require.Equal(t, ebxml30.QueryLanguageSQL, msg.AdhocQuery.QueryExpression.QueryLanguage)
		require.True(t, want.Equal(ebxml30.FromAdhocQueryRequest(msg)))
	})
	t.Run("Response", func(t *testing.T) {
		want := sample.Response()
		require.True(t, want.Equal(ebxml30.FromRegistryResponse(ebxml30.ToRegistryResponse(want))))
	})
	t.Run("QueryResponse", func(t *testing.T) {
		want := sample.QueryResponse()
		require.True(t, want.Equal(ebxml30.FromQueryResponse(ebxml30.ToQueryResponse(want))))
	})
	t.Run("Nil", func(t *testing.T) {
		require.Nil(t, ebxml30.ToProvideAndRegisterRequest(nil))
		require.Nil(t, ebxml30.FromSubmitObjectsRequest(nil))
		require.Nil(t, ebxml30.ToAdhocQueryRequest(nil))
		require.Nil(t, ebxml30.FromQueryResponse(nil))
	})
}

func TestQueryParameterQuoting(t *testing.T) {
	q := &metadata.QueryRegistry{
		QueryID:    "urn:uuid:14d4debf-8f97-4251-9a74-a90016b0af0d",
		Parameters: []metadata.Slot{{Name: "$patientId", Values: []string{"'1234^^^&1.2.3&ISO'"}}},
	}

	msg := ebxml30.ToAdhocQueryRequest(q)
	require.Equal(t, q.QueryID, msg.AdhocQuery.ID)
	require.Len(t, msg.AdhocQuery.Slots, 1)
	require.Nil(t, msg.AdhocQuery.QueryExpression)

	got := ebxml30.FromAdhocQueryRequest(msg)
	require.Equal(t, []string{"'1234^^^&1.2.3&ISO'"}, got.Parameter("$patientId"))
}

func TestWireSpellings(t *testing.T) {
	msg := ebxml30.ToSubmitObjectsRequest(sample.Register())
	list := msg.RegistryObjectList

	require.Equal(t, "urn:oasis:names:tc:ebxml-regrep:StatusType:Approved", list.ExtrinsicObjects[0].Status)
	require.Equal(t, "urn:oasis:names:tc:ebxml-regrep:AssociationType:HasMember", list.Associations[0].AssociationType)
	require.Equal(t, ebxml30.ObjectTypeAssociation, list.Associations[0].ObjectType)

	resp := ebxml30.ToRegistryResponse(sample.Response())
	require.Equal(t, "urn:ihe:iti:2007:ResponseStatusType:PartialSuccess", resp.Status)
	errs := resp.RegistryErrorList
	require.Equal(t, "urn:oasis:names:tc:ebxml-regrep:ErrorSeverityType:Warning", errs.RegistryErrors[0].Severity)
	require.Equal(t, "urn:oasis:names:tc:ebxml-regrep:ErrorSeverityType:Warning", errs.HighestSeverity)
}

func TestMarkersAreListLevel(t *testing.T) {
	msg := ebxml30.ToSubmitObjectsRequest(sample.Register())
	list := msg.RegistryObjectList

	nodes := map[string]string{}
	for _, c := range list.Classifications {
		nodes[c.ClassifiedObject] = c.ClassificationNode
	}
	require.Equal(t, map[string]string{
		sample.SubmissionSetUUID: ebxml.NodeSubmissionSet,
		sample.FolderUUID:        ebxml.NodeFolder,
	}, nodes)
}

func TestProvideAndRegisterWithoutEntryIDs(t *testing.T) {
	req := &metadata.ProvideAndRegisterDocumentSet{
		Documents: []metadata.Document{
			{Content: []byte("orphan")},
			{DocumentEntry: &metadata.DocumentEntry{UniqueID: "a"}, Content: []byte("A")},
			{DocumentEntry: &metadata.DocumentEntry{UniqueID: "b"}, Content: []byte("B")},
			{DocumentEntry: &metadata.DocumentEntry{UniqueID: "c"}},
		},
	}

	msg := ebxml30.ToProvideAndRegisterRequest(req)
	require.Len(t, msg.Documents, 4)
	require.Empty(t, msg.Documents[3].ID)

	got := ebxml30.FromProvideAndRegisterRequest(msg)
	require.True(t, req.Equal(got), "got %+v", got.Documents)
	require.Nil(t, got.Documents[0].DocumentEntry)
	require.Equal(t, "a", got.Documents[1].DocumentEntry.UniqueID)
	require.Equal(t, []byte("A"), got.Documents[1].Content)
	require.Equal(t, []byte("B"), got.Documents[2].Content)
	require.Empty(t, got.Documents[3].Content)
}
