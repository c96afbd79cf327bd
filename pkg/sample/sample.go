// Package sample builds fully populated XDS transactions. The CLI prints
// them as wire messages and the tests use them as round-trip fixtures.
package sample

import (
	"xds/pkg/metadata"
	"xds/pkg/query"
)

const (
	SubmissionSetUUID = "urn:uuid:5f3e2a14-7c8d-4b9e-a1f0-3d2c1b0a9e8f"
	DocumentUUID      = "urn:uuid:0b8d4c2e-6a1f-4e3d-9c7b-2a5f8e1d0c3b"
	FolderUUID        = "urn:uuid:9a7c5e3b-1d2f-4a6c-8e0b-4f2d6a8c0e1a"
)

func authority(oid string) *metadata.AssigningAuthority {
	return &metadata.AssigningAuthority{UniversalID: oid, UniversalIDType: "ISO"}
}

// PatientID returns the affinity domain patient id used by every sample.
func PatientID() *metadata.Identifiable {
	return &metadata.Identifiable{ID: "id3", AssigningAuthority: authority("1.3.6.1.4.1.21367.2005.3.7")}
}

func code(value, display, scheme string) metadata.Code {
	return metadata.Code{
		Code:        value,
		DisplayName: &metadata.LocalizedString{Value: display, Lang: "en-US", Charset: "UTF-8"},
		SchemeName:  scheme,
	}
}

func codeRef(value, display, scheme string) *metadata.Code {
	c := code(value, display, scheme)

	return &c
}

// Author returns a populated author.
func Author() *metadata.Author {
	return &metadata.Author{
		Person: &metadata.Person{
			ID:   &metadata.Identifiable{ID: "id1", AssigningAuthority: authority("1.1")},
			Name: &metadata.Name{FamilyName: "Joman", GivenName: "Tom", Prefix: "Dr."},
		},
		Institutions: []metadata.Organization{
			{Name: "Some Hospital", IDNumber: "1.2.3.9.1789.45", AssigningAuthority: authority("1.2.3.9")},
			{Name: "Other Hospital"},
		},
		Roles:       []string{"Attending", "Primary Surgeon"},
		Specialties: []string{"Orthopedic"},
	}
}

// DocumentEntry returns a document entry with every field set.
func DocumentEntry() *metadata.DocumentEntry {
	size := int64(123)

	return &metadata.DocumentEntry{
		EntryUUID:       DocumentUUID,
		UniqueID:        "1.2.300.4.5.6.7.8.9.1",
		PatientID:       PatientID(),
		SourcePatientID: &metadata.Identifiable{ID: "id4", AssigningAuthority: authority("1.2.4")},
		SourcePatientInfo: &metadata.PatientInfo{
			IDs:         []metadata.Identifiable{{ID: "id4", AssigningAuthority: authority("1.2.4")}},
			Name:        &metadata.Name{FamilyName: "Doe", GivenName: "John"},
			DateOfBirth: "19800102",
			Gender:      "M",
		},
		ClassCode:                  codeRef("Consult", "Consultation", "Connect-a-thon classCodes"),
		TypeCode:                   codeRef("34108-1", "Outpatient Note", "LOINC"),
		FormatCode:                 codeRef("urn:ihe:pcc:xphr:2007", "XPHR", "Connect-a-thon formatCodes"),
		HealthcareFacilityTypeCode: codeRef("Outpatient", "Outpatient", "Connect-a-thon healthcareFacilityTypeCodes"),
		PracticeSettingCode:        codeRef("General Medicine", "General Medicine", "Connect-a-thon practiceSettingCodes"),
		ConfidentialityCodes: []metadata.Code{
			code("N", "Normal", "2.16.840.1.113883.5.25"),
			code("R", "Restricted", "2.16.840.1.113883.5.25"),
		},
		EventCodes: []metadata.Code{
			code("T-D4909", "Kidney", "SNM3"),
		},
		Author: Author(),
		LegalAuthenticator: &metadata.Person{
			ID:   &metadata.Identifiable{ID: "id2", AssigningAuthority: authority("1.1")},
			Name: &metadata.Name{FamilyName: "Smith", GivenName: "Jane"},
		},
		Title:              &metadata.LocalizedString{Value: "Consultation note", Lang: "en-US", Charset: "UTF-8"},
		Comments:           metadata.NewLocalizedString("Follow-up in two weeks"),
		MimeType:           "text/xml",
		LanguageCode:       "en-US",
		CreationTime:       "20051224",
		ServiceStartTime:   "200412230800",
		ServiceStopTime:    "200412230801",
		Hash:               "4cf4f82d78b5e2aac35c31bca8cb79fe6bd6a41e",
		Size:               &size,
		URI:                "http://localhost/doc1",
		RepositoryUniqueID: "1.19.6.24.109.42.1.5",
		AvailabilityStatus: metadata.AvailabilityStatusApproved,
		HomeCommunityID:    "urn:oid:1.2.3.4",
	}
}

// SubmissionSet returns a submission set with every field set.
func SubmissionSet() *metadata.SubmissionSet {
	return &metadata.SubmissionSet{
		EntryUUID:          SubmissionSetUUID,
		UniqueID:           "1.123",
		SourceID:           "1.2.3.4.5",
		PatientID:          PatientID(),
		ContentTypeCode:    codeRef("Communication", "Communication", "Connect-a-thon contentTypeCodes"),
		Author:             Author(),
		IntendedRecipients: []string{"Some Hospital^^^^^^^^^1.2.3.9.1789.45|^Wel^Marcus^^^Prof.^^^"},
		SubmissionTime:     "20041225235050",
		Title:              metadata.NewLocalizedString("Submission"),
		Comments:           metadata.NewLocalizedString("Annual physical"),
		AvailabilityStatus: metadata.AvailabilityStatusSubmitted,
	}
}

// Folder returns a folder with every field set.
func Folder() *metadata.Folder {
	return &metadata.Folder{
		EntryUUID:          FolderUUID,
		UniqueID:           "1.48574589",
		PatientID:          PatientID(),
		Codes:              []metadata.Code{code("Referrals", "Referrals", "Connect-a-thon folderCodeList")},
		LastUpdateTime:     "20041225212010",
		Title:              metadata.NewLocalizedString("Folder"),
		Comments:           metadata.NewLocalizedString("Referral documents"),
		AvailabilityStatus: metadata.AvailabilityStatusApproved,
	}
}

// Associations links the submission set to the document and the folder, and
// the folder to the document.
func Associations() []metadata.Association {
	return []metadata.Association{
		{
			EntryUUID:  "urn:uuid:1f2e3d4c-5b6a-4978-8a9b-0c1d2e3f4a5b",
			Type:       metadata.AssociationTypeHasMember,
			SourceUUID: SubmissionSetUUID,
			TargetUUID: DocumentUUID,
			Label:      metadata.AssociationLabelOriginal,
		},
		{
			EntryUUID:  "urn:uuid:2a3b4c5d-6e7f-4801-9a2b-3c4d5e6f7a8b",
			Type:       metadata.AssociationTypeHasMember,
			SourceUUID: SubmissionSetUUID,
			TargetUUID: FolderUUID,
		},
		{
			EntryUUID:  "urn:uuid:3b4c5d6e-7f80-4912-8b3c-4d5e6f7a8b9c",
			Type:       metadata.AssociationTypeHasMember,
			SourceUUID: FolderUUID,
			TargetUUID: DocumentUUID,
		},
	}
}

// ProvideAndRegister returns a Provide and Register Document Set transaction
// with one document and its content.
func ProvideAndRegister() *metadata.ProvideAndRegisterDocumentSet {
	return &metadata.ProvideAndRegisterDocumentSet{
		SubmissionSet: SubmissionSet(),
		Documents:     []metadata.Document{{DocumentEntry: DocumentEntry(), Content: []byte("<ClinicalDocument/>")}},
		Folders:       []metadata.Folder{*Folder()},
		Associations:  Associations(),
	}
}

// Register returns a Register Document Set transaction.
func Register() *metadata.RegisterDocumentSet {
	return &metadata.RegisterDocumentSet{
		SubmissionSet:   SubmissionSet(),
		DocumentEntries: []metadata.DocumentEntry{*DocumentEntry()},
		Folders:         []metadata.Folder{*Folder()},
		Associations:    Associations(),
	}
}

// Query returns a FindDocuments stored query for the sample patient.
func Query() *metadata.QueryRegistry {
	q := query.FindDocumentsQuery(PatientID(),
		metadata.AvailabilityStatusApproved, metadata.AvailabilityStatusSubmitted)

	return &q
}

// Response returns a partially successful submission response.
func Response() *metadata.Response {
	return &metadata.Response{
		Status: metadata.StatusPartialSuccess,
		Errors: []metadata.ErrorInfo{
			{
				ErrorCode:   metadata.ErrorCodeRegistryMetadataError,
				CodeContext: "unknown format code",
				Location:    DocumentUUID,
				Severity:    metadata.SeverityWarning,
			},
		},
	}
}

// QueryResponse returns a successful LeafClass query response.
func QueryResponse() *metadata.QueryResponse {
	return &metadata.QueryResponse{
		Status:          metadata.StatusSuccess,
		DocumentEntries: []metadata.DocumentEntry{*DocumentEntry()},
		SubmissionSets:  []metadata.SubmissionSet{*SubmissionSet()},
		Folders:         []metadata.Folder{*Folder()},
		Associations:    Associations(),
		References:      []metadata.ObjectReference{{ID: "urn:uuid:4c5d6e7f-8091-4a23-9c4d-5e6f7a8b9c0d", Home: "urn:oid:1.2.3.4"}},
	}
}
