package ebxml

// Object types.
const (
	ObjectTypeDocumentEntry = "urn:uuid:7edca82f-054d-47f2-a032-9b2a5b5186c1"
)

// Classification nodes marking registry packages.
const (
	NodeSubmissionSet = "urn:uuid:a54d6aa5-d40d-43f9-88c5-b4633d873bdd"
	NodeFolder        = "urn:uuid:d9d542f3-6cc4-48b6-8870-ea235fbc94c2"
)

// Document entry classification and identification schemes.
const (
	DocumentEntryClassCode                  = "urn:uuid:41a5887f-8865-4c09-adf7-e362475b143a"
	DocumentEntryConfidentialityCode        = "urn:uuid:f4f85eac-e6cb-4883-b524-f2705394840f"
	DocumentEntryEventCode                  = "urn:uuid:2c6b8cb7-8b2a-4051-b291-b1ae6a575ef4"
	DocumentEntryFormatCode                 = "urn:uuid:a09d5840-386c-46f2-b5ad-9c3699a4309d"
	DocumentEntryHealthcareFacilityTypeCode = "urn:uuid:f33fb8ac-18af-42cc-ae0e-ed0b0bdb91e1"
	DocumentEntryPracticeSettingCode        = "urn:uuid:cccf5598-8b07-4b77-a05e-ae952c785ead"
	DocumentEntryTypeCode                   = "urn:uuid:f0306f51-975f-434e-a61c-c59651d33983"
	DocumentEntryAuthor                     = "urn:uuid:93606bcf-9494-43ec-9b4e-a7748d1a838d"
	DocumentEntryPatientID                  = "urn:uuid:58a6f841-87b3-4a3e-92fd-a8ffeff98427"
	DocumentEntryUniqueID                   = "urn:uuid:2e82c1f6-a085-4c72-9da3-8640a32e42ab"

	DocumentEntryPatientIDName = "XDSDocumentEntry.patientId"
	DocumentEntryUniqueIDName  = "XDSDocumentEntry.uniqueId"
)

// Submission set classification and identification schemes.
const (
	SubmissionSetAuthor          = "urn:uuid:a7058bb9-b4e4-4307-ba5b-e3f0ab85e12d"
	SubmissionSetContentTypeCode = "urn:uuid:aa543740-bdda-424e-8c96-df4873be8500"
	SubmissionSetPatientID       = "urn:uuid:6b5aea1a-874d-4603-a4bc-96a0a7b38446"
	SubmissionSetSourceID        = "urn:uuid:554ac39e-e3fe-47fe-b233-965d2a147832"
	SubmissionSetUniqueID        = "urn:uuid:96fdda7c-d067-4183-912e-bf5ee74998a8"

	SubmissionSetPatientIDName = "XDSSubmissionSet.patientId"
	SubmissionSetSourceIDName  = "XDSSubmissionSet.sourceId"
	SubmissionSetUniqueIDName  = "XDSSubmissionSet.uniqueId"
)

// Folder classification and identification schemes.
const (
	FolderCodeList  = "urn:uuid:1ba97051-7806-41a8-a48b-8fce7af683c5"
	FolderPatientID = "urn:uuid:f64ffdf0-4b97-4e06-b79f-a52b38ec2f8a"
	FolderUniqueID  = "urn:uuid:75df8f67-9973-4fbe-a900-df66cefecc5a"

	FolderPatientIDName = "XDSFolder.patientId"
	FolderUniqueIDName  = "XDSFolder.uniqueId"
)

// Slot names.
const (
	SlotAuthorInstitution   = "authorInstitution"
	SlotAuthorPerson        = "authorPerson"
	SlotAuthorRole          = "authorRole"
	SlotAuthorSpecialty     = "authorSpecialty"
	SlotCodingScheme        = "codingScheme"
	SlotCreationTime        = "creationTime"
	SlotHash                = "hash"
	SlotIntendedRecipient   = "intendedRecipient"
	SlotLanguageCode        = "languageCode"
	SlotLastUpdateTime      = "lastUpdateTime"
	SlotLegalAuthenticator  = "legalAuthenticator"
	SlotRepositoryUniqueID  = "repositoryUniqueId"
	SlotServiceStartTime    = "serviceStartTime"
	SlotServiceStopTime     = "serviceStopTime"
	SlotSize                = "size"
	SlotSourcePatientID     = "sourcePatientId"
	SlotSourcePatientInfo   = "sourcePatientInfo"
	SlotSubmissionSetStatus = "SubmissionSetStatus"
	SlotSubmissionTime      = "submissionTime"
	SlotURI                 = "URI"
)
