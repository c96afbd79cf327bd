package metadata_test

import (
	"testing"
	"xds/pkg/metadata"

	"github.com/stretchr/testify/require"
)

func TestEqualNilSafety(t *testing.T) {
	var entry *metadata.DocumentEntry
	require.True(t, entry.Equal(nil))
	require.False(t, entry.Equal(&metadata.DocumentEntry{}))
	require.False(t, (&metadata.DocumentEntry{}).Equal(nil))

	var code *metadata.Code
	require.True(t, code.Equal(nil))
	require.False(t, (&metadata.Code{Code: "x"}).Equal(nil))

	var resp *metadata.QueryResponse
	require.True(t, resp.Equal(nil))
}

func TestEqualSlicesNilAndEmpty(t *testing.T) {
	a := &metadata.Folder{EntryUUID: "f1", Codes: nil}
	b := &metadata.Folder{EntryUUID: "f1", Codes: []metadata.Code{}}
	require.True(t, a.Equal(b))

	s1 := &metadata.SubmissionSet{IntendedRecipients: nil}
	s2 := &metadata.SubmissionSet{IntendedRecipients: []string{}}
	require.True(t, s1.Equal(s2))
}

func TestEqualDeep(t *testing.T) {
	size := int64(42)
	otherSize := int64(43)
	newEntry := func() *metadata.DocumentEntry {
		return &metadata.DocumentEntry{
			EntryUUID: "doc1",
			PatientID: &metadata.Identifiable{
				ID:                 "1234",
				AssigningAuthority: &metadata.AssigningAuthority{UniversalID: "1.2.3", UniversalIDType: "ISO"},
			},
			ClassCode:            &metadata.Code{Code: "Consult", SchemeName: "scheme", DisplayName: metadata.NewLocalizedString("Consult")},
			ConfidentialityCodes: []metadata.Code{{Code: "N"}},
			Author: &metadata.Author{
				Person:       &metadata.Person{Name: &metadata.Name{FamilyName: "Smith"}},
				Institutions: []metadata.Organization{{Name: "Hospital"}},
				Roles:        []string{"Attending"},
			},
			Title: &metadata.LocalizedString{Value: "Report", Lang: "en-US"},
			Size:  &size,
		}
	}

	require.True(t, newEntry().Equal(newEntry()))

	tests := []struct {
		name   string
		modify func(e *metadata.DocumentEntry)
	}{
		{name: "authority", modify: func(e *metadata.DocumentEntry) { e.PatientID.AssigningAuthority.UniversalID = "9.9" }},
		{name: "display name", modify: func(e *metadata.DocumentEntry) { e.ClassCode.DisplayName.Value = "Other" }},
		{name: "code order", modify: func(e *metadata.DocumentEntry) {
			e.ConfidentialityCodes = append(e.ConfidentialityCodes, metadata.Code{Code: "R"})
		}},
		{name: "institution", modify: func(e *metadata.DocumentEntry) { e.Author.Institutions[0].IDNumber = "7" }},
		{name: "title lang", modify: func(e *metadata.DocumentEntry) { e.Title.Lang = "de-CH" }},
		{name: "size", modify: func(e *metadata.DocumentEntry) { e.Size = &otherSize }},
		{name: "no size", modify: func(e *metadata.DocumentEntry) { e.Size = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changed := newEntry()
			tt.modify(changed)
			require.False(t, newEntry().Equal(changed))
		})
	}
}

func TestDocumentEqual(t *testing.T) {
	a := &metadata.Document{Content: []byte("content")}
	require.True(t, a.Equal(&metadata.Document{Content: []byte("content")}))
	require.False(t, a.Equal(&metadata.Document{Content: []byte("other")}))
	require.True(t, (&metadata.Document{}).Equal(&metadata.Document{Content: []byte{}}))
}

func TestQueryParameter(t *testing.T) {
	q := &metadata.QueryRegistry{Parameters: []metadata.Slot{
		{Name: "$XDSDocumentEntryStatus", Values: []string{"('a')"}},
		{Name: "$XDSDocumentEntryStatus", Values: []string{"('b')"}},
	}}
	require.Equal(t, []string{"('a')"}, q.Parameter("$XDSDocumentEntryStatus"))
	require.Nil(t, q.Parameter("$XDSDocumentEntryPatientId"))
}
