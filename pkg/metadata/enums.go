package metadata

// AvailabilityStatus is the lifecycle status of a registry entry.
type AvailabilityStatus string

const (
	// AvailabilityStatusApproved marks an entry available for use.
	AvailabilityStatusApproved AvailabilityStatus = "Approved"
	// AvailabilityStatusDeprecated marks an entry that was replaced.
	AvailabilityStatusDeprecated AvailabilityStatus = "Deprecated"
	// AvailabilityStatusSubmitted marks an entry that is not yet approved.
	AvailabilityStatusSubmitted AvailabilityStatus = "Submitted"
)

// AssociationType is the kind of relationship an association expresses.
type AssociationType string

const (
	AssociationTypeHasMember           AssociationType = "HasMember"
	AssociationTypeReplace             AssociationType = "Replace"
	AssociationTypeTransform           AssociationType = "Transform"
	AssociationTypeAppend              AssociationType = "Append"
	AssociationTypeTransformAndReplace AssociationType = "TransformAndReplace"
	AssociationTypeSigns               AssociationType = "Signs"
)

// AssociationLabel tells whether a HasMember association from a submission
// set to a document entry refers to an original or an existing document.
type AssociationLabel string

const (
	AssociationLabelOriginal  AssociationLabel = "Original"
	AssociationLabelReference AssociationLabel = "Reference"
)

// Status is the overall outcome of a registry transaction.
type Status string

const (
	StatusSuccess        Status = "Success"
	StatusFailure        Status = "Failure"
	StatusPartialSuccess Status = "PartialSuccess"
)

// Severity is the severity of a registry error.
type Severity string

const (
	SeverityError   Severity = "Error"
	SeverityWarning Severity = "Warning"
)

// QueryReturnType selects whether a query returns full objects or references.
type QueryReturnType string

const (
	// QueryReturnTypeLeafClass returns complete metadata objects.
	QueryReturnTypeLeafClass QueryReturnType = "LeafClass"
	// QueryReturnTypeObjectRef returns object references only.
	QueryReturnTypeObjectRef QueryReturnType = "ObjectRef"
)

// ErrorCode is an XDS registry error code.
type ErrorCode string

const (
	ErrorCodeRegistryError           ErrorCode = "XDSRegistryError"
	ErrorCodeRepositoryError         ErrorCode = "XDSRepositoryError"
	ErrorCodeRegistryMetadataError   ErrorCode = "XDSRegistryMetadataError"
	ErrorCodeUnknownPatientID        ErrorCode = "XDSUnknownPatientId"
	ErrorCodePatientIDDoesNotMatch   ErrorCode = "XDSPatientIdDoesNotMatch"
	ErrorCodeDuplicateUniqueIDInReg  ErrorCode = "XDSDuplicateUniqueIdInRegistry"
	ErrorCodeMissingDocument         ErrorCode = "XDSMissingDocument"
	ErrorCodeMissingDocumentMetadata ErrorCode = "XDSMissingDocumentMetadata"
	ErrorCodeStoredQueryParamNumber  ErrorCode = "XDSStoredQueryParamNumber"
	ErrorCodeTooManyResults          ErrorCode = "XDSTooManyResults"
)
