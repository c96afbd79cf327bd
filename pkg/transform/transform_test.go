package transform_test

import (
	"testing"
	"xds/pkg/ebxml"
	"xds/pkg/ebxml/ebxml21"
	"xds/pkg/ebxml/ebxml30"
	"xds/pkg/metadata"
	"xds/pkg/sample"
	"xds/pkg/transform"

	"github.com/stretchr/testify/require"
)

func TestCodeRoundTrip(t *testing.T) {
	for _, f := range []ebxml.Factory{ebxml21.Factory{}, ebxml30.Factory{}} {
		code := &metadata.Code{
			Code:        "Consult",
			DisplayName: &metadata.LocalizedString{Value: "Consultation", Lang: "en-US"},
			SchemeName:  "Connect-a-thon classCodes",
		}
		c := transform.ToCode(f, code)
		require.Equal(t, "Consult", c.NodeRepresentation())
		require.Equal(t, []string{"Connect-a-thon classCodes"}, c.SlotValues(ebxml.SlotCodingScheme))
		require.True(t, code.Equal(transform.FromCode(c)))

		require.Nil(t, transform.ToCode(f, nil))
		require.Nil(t, transform.FromCode(nil))
	}
}

func TestAuthorRoundTrip(t *testing.T) {
	for _, f := range []ebxml.Factory{ebxml21.Factory{}, ebxml30.Factory{}} {
		author := sample.Author()
		c := transform.ToAuthor(f, author)
		require.Empty(t, c.NodeRepresentation())
		require.Equal(t, []string{"id1^Joman^Tom^^^Dr.^^^&1.1&ISO"}, c.SlotValues(ebxml.SlotAuthorPerson))
		require.Len(t, c.SlotValues(ebxml.SlotAuthorInstitution), 2)
		require.True(t, author.Equal(transform.FromAuthor(c)))
	}
}

func TestDocumentEntryAbsentFields(t *testing.T) {
	f := ebxml30.Factory{}
	entry := &metadata.DocumentEntry{EntryUUID: "doc1"}

	obj := transform.ToDocumentEntry(f, entry)
	require.Empty(t, obj.Slots())
	require.Empty(t, obj.Classifications())
	require.Empty(t, obj.ExternalIdentifiers())
	require.True(t, entry.Equal(transform.FromDocumentEntry(f.Version(), obj)))
}

func TestDocumentEntryInvalidSize(t *testing.T) {
	f := ebxml21.Factory{}
	obj := f.NewExtrinsicObject("doc1")
	obj.AddSlot(ebxml.SlotSize, "large")

	require.Nil(t, transform.FromDocumentEntry(f.Version(), obj).Size)
}

// Converting through either wire version must yield the same domain object.
func TestCrossVersionEquivalence(t *testing.T) {
	t.Run("ProvideAndRegister", func(t *testing.T) {
		want := sample.ProvideAndRegister()
		via21 := ebxml21.FromProvideAndRegisterRequest(ebxml21.ToProvideAndRegisterRequest(want))
		via30 := ebxml30.FromProvideAndRegisterRequest(ebxml30.ToProvideAndRegisterRequest(want))
		require.True(t, via21.Equal(via30))
		require.True(t, want.Equal(via30))
	})
	t.Run("Register", func(t *testing.T) {
		want := sample.Register()
		via21 := ebxml21.FromSubmitObjectsRequest(ebxml21.ToSubmitObjectsRequest(want))
		via30 := ebxml30.FromSubmitObjectsRequest(ebxml30.ToSubmitObjectsRequest(want))
		require.True(t, via21.Equal(via30))
		require.True(t, want.Equal(via30))
	})
	t.Run("Query", func(t *testing.T) {
		want := sample.Query()
		via21 := ebxml21.FromAdhocQueryRequest(ebxml21.ToAdhocQueryRequest(want))
		via30 := ebxml30.FromAdhocQueryRequest(ebxml30.ToAdhocQueryRequest(want))
		require.True(t, via21.Equal(via30))
		require.True(t, want.Equal(via30))
	})
	t.Run("Response", func(t *testing.T) {
		want := sample.Response()
		via21 := ebxml21.FromRegistryResponse(ebxml21.ToRegistryResponse(want))
		via30 := ebxml30.FromRegistryResponse(ebxml30.ToRegistryResponse(want))
		require.True(t, via21.Equal(via30))
		require.True(t, want.Equal(via30))
	})
	t.Run("QueryResponse", func(t *testing.T) {
		want := sample.QueryResponse()
		via21 := ebxml21.FromQueryResponse(ebxml21.ToQueryResponse(want))
		via30 := ebxml30.FromQueryResponse(ebxml30.ToQueryResponse(want))
		require.True(t, via21.Equal(via30))
		require.True(t, want.Equal(via30))
	})
}

func TestFromSubmitObjectsWithoutSubmissionSet(t *testing.T) {
	f := ebxml21.Factory{}
	lib := f.NewObjectLibrary()
	transform.ToSubmitObjects(f, lib, &transform.SubmitObjects{
		DocumentEntries: []metadata.DocumentEntry{*sample.DocumentEntry()},
	})

	got := transform.FromSubmitObjects(f.Version(), lib)
	require.Nil(t, got.SubmissionSet)
	require.Len(t, got.DocumentEntries, 1)
	require.Empty(t, got.Folders)
}

func TestSubmitObjectsWithoutIDs(t *testing.T) {
	for _, f := range []ebxml.Factory{ebxml21.Factory{}, ebxml30.Factory{}} {
		t.Run(f.Version().String(), func(t *testing.T) {
			want := &transform.SubmitObjects{
				SubmissionSet: &metadata.SubmissionSet{UniqueID: "1.2.3"},
				Folders: []metadata.Folder{
					{UniqueID: "4.5.6"},
					{UniqueID: "7.8.9"},
				},
			}

			lib := f.NewObjectLibrary()
			transform.ToSubmitObjects(f, lib, want)
			require.Len(t, lib.RegistryPackages(ebxml.NodeSubmissionSet), 1)
			require.Len(t, lib.RegistryPackages(ebxml.NodeFolder), 2)

			got := transform.FromSubmitObjects(f.Version(), lib)
			require.True(t, want.SubmissionSet.Equal(got.SubmissionSet))
			require.Len(t, got.Folders, 2)
			require.Equal(t, "4.5.6", got.Folders[0].UniqueID)
			require.Equal(t, "7.8.9", got.Folders[1].UniqueID)
		})
	}
}

func TestRegistryPackagesIgnoresUnboundMarker(t *testing.T) {
	for _, f := range []ebxml.Factory{ebxml21.Factory{}, ebxml30.Factory{}} {
		lib := f.NewObjectLibrary()
		lib.AddRegistryPackage(f.NewRegistryPackage(""))

		marker := f.NewClassification()
		marker.SetClassificationNode(ebxml.NodeFolder)
		lib.AddClassification(marker)

		require.Empty(t, lib.RegistryPackages(ebxml.NodeFolder))
	}
}

func TestSplitJoinDocuments(t *testing.T) {
	entry := func(uniqueID string) *metadata.DocumentEntry {
		return &metadata.DocumentEntry{UniqueID: uniqueID}
	}

	tests := []struct {
		name     string
		docs     []metadata.Document
		contents int
	}{
		{
			name: "entries without ids",
			docs: []metadata.Document{
				{DocumentEntry: entry("a"), Content: []byte("A")},
				{DocumentEntry: entry("b"), Content: []byte("B")},
			},
			contents: 2,
		},
		{
			name: "shared id without content",
			docs: []metadata.Document{
				{DocumentEntry: entry("a")},
				{DocumentEntry: entry("b"), Content: []byte("B")},
			},
			contents: 2,
		},
		{
			name: "unique id without content",
			docs: []metadata.Document{
				{DocumentEntry: &metadata.DocumentEntry{EntryUUID: "e1"}},
				{DocumentEntry: &metadata.DocumentEntry{EntryUUID: "e2"}, Content: []byte("B")},
			},
			contents: 1,
		},
		{
			name: "content without entry first",
			docs: []metadata.Document{
				{Content: []byte("orphan")},
				{DocumentEntry: &metadata.DocumentEntry{EntryUUID: "e1"}, Content: []byte("A")},
			},
			contents: 2,
		},
		{
			name: "content without entry between",
			docs: []metadata.Document{
				{DocumentEntry: &metadata.DocumentEntry{EntryUUID: "e1"}, Content: []byte("A")},
				{Content: []byte("orphan")},
				{DocumentEntry: &metadata.DocumentEntry{EntryUUID: "e2"}, Content: []byte("B")},
			},
			contents: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := &metadata.ProvideAndRegisterDocumentSet{Documents: tt.docs}

			entries, contents := transform.SplitDocuments(tt.docs)
			require.Len(t, contents, tt.contents)

			got := &metadata.ProvideAndRegisterDocumentSet{Documents: transform.JoinDocuments(entries, contents)}
			require.True(t, want.Equal(got), "got %+v", got.Documents)
		})
	}
}

func TestJoinDocumentsUnclaimedContentLast(t *testing.T) {
	docs := transform.JoinDocuments(
		[]metadata.DocumentEntry{{EntryUUID: "e1"}},
		[]transform.Content{{ID: "e1", Value: []byte("A")}, {ID: "other", Value: []byte("B")}},
	)

	require.Len(t, docs, 2)
	require.Equal(t, "e1", docs[0].DocumentEntry.EntryUUID)
	require.Equal(t, []byte("A"), docs[0].Content)
	require.Nil(t, docs[1].DocumentEntry)
	require.Equal(t, []byte("B"), docs[1].Content)
}
