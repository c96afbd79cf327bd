package transform

import (
	"strconv"

	"xds/pkg/ebxml"
	"xds/pkg/hl7"
	"xds/pkg/metadata"
)

// ToDocumentEntry builds the extrinsic object describing entry.
func ToDocumentEntry(f ebxml.Factory, entry *metadata.DocumentEntry) ebxml.ExtrinsicObject {
	if entry == nil {
		return nil
	}

	obj := f.NewExtrinsicObject(entry.EntryUUID)
	obj.SetObjectType(ebxml.ObjectTypeDocumentEntry)
	obj.SetStatus(f.Version().AvailabilityStatus(entry.AvailabilityStatus))
	obj.SetHome(entry.HomeCommunityID)
	obj.SetMimeType(entry.MimeType)
	obj.SetName(entry.Title)
	obj.SetDescription(entry.Comments)

	obj.AddSlot(ebxml.SlotCreationTime, entry.CreationTime)
	obj.AddSlot(ebxml.SlotServiceStartTime, entry.ServiceStartTime)
	obj.AddSlot(ebxml.SlotServiceStopTime, entry.ServiceStopTime)
	obj.AddSlot(ebxml.SlotHash, entry.Hash)
	if entry.Size != nil {
		obj.AddSlot(ebxml.SlotSize, strconv.FormatInt(*entry.Size, 10))
	}
	obj.AddSlot(ebxml.SlotURI, entry.URI)
	obj.AddSlot(ebxml.SlotLanguageCode, entry.LanguageCode)
	obj.AddSlot(ebxml.SlotRepositoryUniqueID, entry.RepositoryUniqueID)
	obj.AddSlot(ebxml.SlotLegalAuthenticator, hl7.RenderXCN(entry.LegalAuthenticator))
	obj.AddSlot(ebxml.SlotSourcePatientID, hl7.RenderCX(entry.SourcePatientID))
	obj.AddSlot(ebxml.SlotSourcePatientInfo, hl7.RenderPatientInfo(entry.SourcePatientInfo)...)

	obj.AddClassification(ToAuthor(f, entry.Author), ebxml.DocumentEntryAuthor)
	obj.AddClassification(ToCode(f, entry.ClassCode), ebxml.DocumentEntryClassCode)
	addCodes(f, obj, entry.ConfidentialityCodes, ebxml.DocumentEntryConfidentialityCode)
	addCodes(f, obj, entry.EventCodes, ebxml.DocumentEntryEventCode)
	obj.AddClassification(ToCode(f, entry.FormatCode), ebxml.DocumentEntryFormatCode)
	obj.AddClassification(ToCode(f, entry.HealthcareFacilityTypeCode), ebxml.DocumentEntryHealthcareFacilityTypeCode)
	obj.AddClassification(ToCode(f, entry.PracticeSettingCode), ebxml.DocumentEntryPracticeSettingCode)
	obj.AddClassification(ToCode(f, entry.TypeCode), ebxml.DocumentEntryTypeCode)

	obj.AddExternalIdentifier(hl7.RenderCX(entry.PatientID), ebxml.DocumentEntryPatientID, ebxml.DocumentEntryPatientIDName)
	obj.AddExternalIdentifier(entry.UniqueID, ebxml.DocumentEntryUniqueID, ebxml.DocumentEntryUniqueIDName)

	return obj
}

// FromDocumentEntry reads a document entry from its extrinsic object.
func FromDocumentEntry(v ebxml.Version, obj ebxml.ExtrinsicObject) *metadata.DocumentEntry {
	if obj == nil {
		return nil
	}

	entry := &metadata.DocumentEntry{
		EntryUUID:          obj.ID(),
		AvailabilityStatus: v.ParseAvailabilityStatus(obj.Status()),
		HomeCommunityID:    obj.Home(),
		MimeType:           obj.MimeType(),
		Title:              obj.Name(),
		Comments:           obj.Description(),

		CreationTime:       obj.SingleSlotValue(ebxml.SlotCreationTime),
		ServiceStartTime:   obj.SingleSlotValue(ebxml.SlotServiceStartTime),
		ServiceStopTime:    obj.SingleSlotValue(ebxml.SlotServiceStopTime),
		Hash:               obj.SingleSlotValue(ebxml.SlotHash),
		URI:                obj.SingleSlotValue(ebxml.SlotURI),
		LanguageCode:       obj.SingleSlotValue(ebxml.SlotLanguageCode),
		RepositoryUniqueID: obj.SingleSlotValue(ebxml.SlotRepositoryUniqueID),
		LegalAuthenticator: hl7.ParseXCN(obj.SingleSlotValue(ebxml.SlotLegalAuthenticator)),
		SourcePatientID:    hl7.ParseCX(obj.SingleSlotValue(ebxml.SlotSourcePatientID)),
		SourcePatientInfo:  hl7.ParsePatientInfo(obj.SlotValues(ebxml.SlotSourcePatientInfo)),

		Author:                     FromAuthor(obj.SingleClassification(ebxml.DocumentEntryAuthor)),
		ClassCode:                  FromCode(obj.SingleClassification(ebxml.DocumentEntryClassCode)),
		ConfidentialityCodes:       codes(obj, ebxml.DocumentEntryConfidentialityCode),
		EventCodes:                 codes(obj, ebxml.DocumentEntryEventCode),
		FormatCode:                 FromCode(obj.SingleClassification(ebxml.DocumentEntryFormatCode)),
		HealthcareFacilityTypeCode: FromCode(obj.SingleClassification(ebxml.DocumentEntryHealthcareFacilityTypeCode)),
		PracticeSettingCode:        FromCode(obj.SingleClassification(ebxml.DocumentEntryPracticeSettingCode)),
		TypeCode:                   FromCode(obj.SingleClassification(ebxml.DocumentEntryTypeCode)),

		PatientID: hl7.ParseCX(obj.ExternalIdentifierValue(ebxml.DocumentEntryPatientID)),
		UniqueID:  obj.ExternalIdentifierValue(ebxml.DocumentEntryUniqueID),
	}

	// a size that is not a number is dropped like any other unreadable value
	if size, err := strconv.ParseInt(obj.SingleSlotValue(ebxml.SlotSize), 10, 64); err == nil {
		entry.Size = &size
	}

	return entry
}

// ToSubmissionSet builds the registry package describing set. The package
// still has to be marked as a submission set in its object library.
func ToSubmissionSet(f ebxml.Factory, set *metadata.SubmissionSet) ebxml.RegistryPackage {
	if set == nil {
		return nil
	}

	pkg := f.NewRegistryPackage(set.EntryUUID)
	pkg.SetStatus(f.Version().AvailabilityStatus(set.AvailabilityStatus))
	pkg.SetName(set.Title)
	pkg.SetDescription(set.Comments)

	pkg.AddSlot(ebxml.SlotSubmissionTime, set.SubmissionTime)
	pkg.AddSlot(ebxml.SlotIntendedRecipient, set.IntendedRecipients...)

	pkg.AddClassification(ToAuthor(f, set.Author), ebxml.SubmissionSetAuthor)
	pkg.AddClassification(ToCode(f, set.ContentTypeCode), ebxml.SubmissionSetContentTypeCode)

	pkg.AddExternalIdentifier(set.UniqueID, ebxml.SubmissionSetUniqueID, ebxml.SubmissionSetUniqueIDName)
	pkg.AddExternalIdentifier(set.SourceID, ebxml.SubmissionSetSourceID, ebxml.SubmissionSetSourceIDName)
	pkg.AddExternalIdentifier(hl7.RenderCX(set.PatientID), ebxml.SubmissionSetPatientID, ebxml.SubmissionSetPatientIDName)

	return pkg
}

// FromSubmissionSet reads a submission set from its registry package.
func FromSubmissionSet(v ebxml.Version, pkg ebxml.RegistryPackage) *metadata.SubmissionSet {
	if pkg == nil {
		return nil
	}

	return &metadata.SubmissionSet{
		EntryUUID:          pkg.ID(),
		AvailabilityStatus: v.ParseAvailabilityStatus(pkg.Status()),
		Title:              pkg.Name(),
		Comments:           pkg.Description(),
		SubmissionTime:     pkg.SingleSlotValue(ebxml.SlotSubmissionTime),
		IntendedRecipients: pkg.SlotValues(ebxml.SlotIntendedRecipient),
		Author:             FromAuthor(pkg.SingleClassification(ebxml.SubmissionSetAuthor)),
		ContentTypeCode:    FromCode(pkg.SingleClassification(ebxml.SubmissionSetContentTypeCode)),
		UniqueID:           pkg.ExternalIdentifierValue(ebxml.SubmissionSetUniqueID),
		SourceID:           pkg.ExternalIdentifierValue(ebxml.SubmissionSetSourceID),
		PatientID:          hl7.ParseCX(pkg.ExternalIdentifierValue(ebxml.SubmissionSetPatientID)),
	}
}

// ToFolder builds the registry package describing folder. The package still
// has to be marked as a folder in its object library.
func ToFolder(f ebxml.Factory, folder *metadata.Folder) ebxml.RegistryPackage {
	if folder == nil {
		return nil
	}

	pkg := f.NewRegistryPackage(folder.EntryUUID)
	pkg.SetStatus(f.Version().AvailabilityStatus(folder.AvailabilityStatus))
	pkg.SetName(folder.Title)
	pkg.SetDescription(folder.Comments)

	pkg.AddSlot(ebxml.SlotLastUpdateTime, folder.LastUpdateTime)
	addCodes(f, pkg, folder.Codes, ebxml.FolderCodeList)

	pkg.AddExternalIdentifier(folder.UniqueID, ebxml.FolderUniqueID, ebxml.FolderUniqueIDName)
	pkg.AddExternalIdentifier(hl7.RenderCX(folder.PatientID), ebxml.FolderPatientID, ebxml.FolderPatientIDName)

	return pkg
}

// FromFolder reads a folder from its registry package.
func FromFolder(v ebxml.Version, pkg ebxml.RegistryPackage) *metadata.Folder {
	if pkg == nil {
		return nil
	}

	return &metadata.Folder{
		EntryUUID:          pkg.ID(),
		AvailabilityStatus: v.ParseAvailabilityStatus(pkg.Status()),
		Title:              pkg.Name(),
		Comments:           pkg.Description(),
		LastUpdateTime:     pkg.SingleSlotValue(ebxml.SlotLastUpdateTime),
		Codes:              codes(pkg, ebxml.FolderCodeList),
		UniqueID:           pkg.ExternalIdentifierValue(ebxml.FolderUniqueID),
		PatientID:          hl7.ParseCX(pkg.ExternalIdentifierValue(ebxml.FolderPatientID)),
	}
}

// ToAssociation builds the wire association for assoc. The label travels in
// the SubmissionSetStatus slot.
func ToAssociation(f ebxml.Factory, assoc *metadata.Association) ebxml.Association {
	if assoc == nil {
		return nil
	}

	a := f.NewAssociation(assoc.EntryUUID)
	a.SetAssociationType(f.Version().AssociationType(assoc.Type))
	a.SetSourceObject(assoc.SourceUUID)
	a.SetTargetObject(assoc.TargetUUID)
	a.AddSlot(ebxml.SlotSubmissionSetStatus, string(assoc.Label))

	return a
}

// FromAssociation reads an association.
func FromAssociation(v ebxml.Version, a ebxml.Association) *metadata.Association {
	if a == nil {
		return nil
	}

	return &metadata.Association{
		EntryUUID:  a.ID(),
		Type:       v.ParseAssociationType(a.AssociationType()),
		SourceUUID: a.SourceObject(),
		TargetUUID: a.TargetObject(),
		Label:      metadata.AssociationLabel(a.SingleSlotValue(ebxml.SlotSubmissionSetStatus)),
	}
}
