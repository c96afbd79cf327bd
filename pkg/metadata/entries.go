package metadata

// DocumentEntry is the registry metadata describing a single document.
type DocumentEntry struct {
	EntryUUID                  string             `json:"entryUuid"`
	UniqueID                   string             `json:"uniqueId,omitempty"`
	PatientID                  *Identifiable      `json:"patientId,omitempty"`
	SourcePatientID            *Identifiable      `json:"sourcePatientId,omitempty"`
	SourcePatientInfo          *PatientInfo       `json:"sourcePatientInfo,omitempty"`
	ClassCode                  *Code              `json:"classCode,omitempty"`
	TypeCode                   *Code              `json:"typeCode,omitempty"`
	FormatCode                 *Code              `json:"formatCode,omitempty"`
	HealthcareFacilityTypeCode *Code              `json:"healthcareFacilityTypeCode,omitempty"`
	PracticeSettingCode        *Code              `json:"practiceSettingCode,omitempty"`
	ConfidentialityCodes       []Code             `json:"confidentialityCodes,omitempty"`
	EventCodes                 []Code             `json:"eventCodes,omitempty"`
	Author                     *Author            `json:"author,omitempty"`
	LegalAuthenticator         *Person            `json:"legalAuthenticator,omitempty"`
	Title                      *LocalizedString   `json:"title,omitempty"`
	Comments                   *LocalizedString   `json:"comments,omitempty"`
	MimeType                   string             `json:"mimeType,omitempty"`
	LanguageCode               string             `json:"languageCode,omitempty"`
	CreationTime               string             `json:"creationTime,omitempty"`
	ServiceStartTime           string             `json:"serviceStartTime,omitempty"`
	ServiceStopTime            string             `json:"serviceStopTime,omitempty"`
	Hash                       string             `json:"hash,omitempty"`
	Size                       *int64             `json:"size,omitempty"`
	URI                        string             `json:"uri,omitempty"`
	RepositoryUniqueID         string             `json:"repositoryUniqueId,omitempty"`
	AvailabilityStatus         AvailabilityStatus `json:"availabilityStatus,omitempty"`
	HomeCommunityID            string             `json:"homeCommunityId,omitempty"`
}

// Equal reports whether e and other are field-wise equal.
func (e *DocumentEntry) Equal(other *DocumentEntry) bool {
	if e == nil || other == nil {
		return e == other
	}

	return e.EntryUUID == other.EntryUUID &&
		e.UniqueID == other.UniqueID &&
		e.PatientID.Equal(other.PatientID) &&
		e.SourcePatientID.Equal(other.SourcePatientID) &&
		e.SourcePatientInfo.Equal(other.SourcePatientInfo) &&
		e.ClassCode.Equal(other.ClassCode) &&
		e.TypeCode.Equal(other.TypeCode) &&
		e.FormatCode.Equal(other.FormatCode) &&
		e.HealthcareFacilityTypeCode.Equal(other.HealthcareFacilityTypeCode) &&
		e.PracticeSettingCode.Equal(other.PracticeSettingCode) &&
		equalEach(e.ConfidentialityCodes, other.ConfidentialityCodes) &&
		equalEach(e.EventCodes, other.EventCodes) &&
		e.Author.Equal(other.Author) &&
		e.LegalAuthenticator.Equal(other.LegalAuthenticator) &&
		e.Title.Equal(other.Title) &&
		e.Comments.Equal(other.Comments) &&
		e.MimeType == other.MimeType &&
		e.LanguageCode == other.LanguageCode &&
		e.CreationTime == other.CreationTime &&
		e.ServiceStartTime == other.ServiceStartTime &&
		e.ServiceStopTime == other.ServiceStopTime &&
		e.Hash == other.Hash &&
		equalSize(e.Size, other.Size) &&
		e.URI == other.URI &&
		e.RepositoryUniqueID == other.RepositoryUniqueID &&
		e.AvailabilityStatus == other.AvailabilityStatus &&
		e.HomeCommunityID == other.HomeCommunityID
}

func equalSize(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}

// SubmissionSet groups the entries submitted in one transaction.
type SubmissionSet struct {
	EntryUUID          string             `json:"entryUuid"`
	UniqueID           string             `json:"uniqueId,omitempty"`
	SourceID           string             `json:"sourceId,omitempty"`
	PatientID          *Identifiable      `json:"patientId,omitempty"`
	ContentTypeCode    *Code              `json:"contentTypeCode,omitempty"`
	Author             *Author            `json:"author,omitempty"`
	IntendedRecipients []string           `json:"intendedRecipients,omitempty"`
	SubmissionTime     string             `json:"submissionTime,omitempty"`
	Title              *LocalizedString   `json:"title,omitempty"`
	Comments           *LocalizedString   `json:"comments,omitempty"`
	AvailabilityStatus AvailabilityStatus `json:"availabilityStatus,omitempty"`
}

// Equal reports whether s and other are field-wise equal.
func (s *SubmissionSet) Equal(other *SubmissionSet) bool {
	if s == nil || other == nil {
		return s == other
	}

	return s.EntryUUID == other.EntryUUID &&
		s.UniqueID == other.UniqueID &&
		s.SourceID == other.SourceID &&
		s.PatientID.Equal(other.PatientID) &&
		s.ContentTypeCode.Equal(other.ContentTypeCode) &&
		s.Author.Equal(other.Author) &&
		equalStrings(s.IntendedRecipients, other.IntendedRecipients) &&
		s.SubmissionTime == other.SubmissionTime &&
		s.Title.Equal(other.Title) &&
		s.Comments.Equal(other.Comments) &&
		s.AvailabilityStatus == other.AvailabilityStatus
}

// Folder is a named collection of document entries of one patient.
type Folder struct {
	EntryUUID          string             `json:"entryUuid"`
	UniqueID           string             `json:"uniqueId,omitempty"`
	PatientID          *Identifiable      `json:"patientId,omitempty"`
	Codes              []Code             `json:"codes,omitempty"`
	LastUpdateTime     string             `json:"lastUpdateTime,omitempty"`
	Title              *LocalizedString   `json:"title,omitempty"`
	Comments           *LocalizedString   `json:"comments,omitempty"`
	AvailabilityStatus AvailabilityStatus `json:"availabilityStatus,omitempty"`
}

// Equal reports whether f and other are field-wise equal.
func (f *Folder) Equal(other *Folder) bool {
	if f == nil || other == nil {
		return f == other
	}

	return f.EntryUUID == other.EntryUUID &&
		f.UniqueID == other.UniqueID &&
		f.PatientID.Equal(other.PatientID) &&
		equalEach(f.Codes, other.Codes) &&
		f.LastUpdateTime == other.LastUpdateTime &&
		f.Title.Equal(other.Title) &&
		f.Comments.Equal(other.Comments) &&
		f.AvailabilityStatus == other.AvailabilityStatus
}

// Association links two registry entries, e.g. a submission set and one of
// its members.
type Association struct {
	EntryUUID  string           `json:"entryUuid"`
	Type       AssociationType  `json:"type"`
	SourceUUID string           `json:"sourceUuid"`
	TargetUUID string           `json:"targetUuid"`
	Label      AssociationLabel `json:"label,omitempty"`
}

// Equal reports whether a and other are field-wise equal.
func (a *Association) Equal(other *Association) bool {
	if a == nil || other == nil {
		return a == other
	}

	return *a == *other
}

// ObjectReference points at a registry object by id, optionally qualified by
// the home community that holds it.
type ObjectReference struct {
	ID   string `json:"id"`
	Home string `json:"home,omitempty"`
}

// Equal reports whether r and other are field-wise equal.
func (r *ObjectReference) Equal(other *ObjectReference) bool {
	if r == nil || other == nil {
		return r == other
	}

	return *r == *other
}
