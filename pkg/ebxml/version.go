package ebxml

import (
	"github.com/google/uuid"

	"xds/pkg/metadata"
	"xds/pkg/serrors"
)

// Version identifies an ebXML wire schema version.
type Version string

const (
	// Version21 is the SOAP-era ebRS/ebRIM 2.1 schema used by XDS.a.
	Version21 Version = "2.1"
	// Version30 is the ebRIM/ebRS 3.0 schema used by XDS.b.
	Version30 Version = "3.0"
)

// Versions lists the supported wire versions.
var Versions = []Version{Version21, Version30} //nolint: gochecknoglobals

// ParseVersion parses a wire version string.
func ParseVersion(s string) (Version, error) {
	switch Version(s) {
	case Version21, Version30:
		return Version(s), nil
	default:
		return "", serrors.With(serrors.ErrUnsupported, "unsupported ebXML version %q", s)
	}
}

func (v Version) String() string { return string(v) }

func (v Version) index() int {
	if v == Version21 {
		return 0
	}

	return 1
}

// NewID returns a fresh "urn:uuid:" identifier for registry objects that
// carry no metadata-level id.
func NewID() string {
	return "urn:uuid:" + uuid.NewString()
}

// spellings maps a metadata enum to its wire form in 2.1 and 3.0.
type spellings[T ~string] map[T][2]string

// encode returns the wire form of t. Values outside the table pass through.
func (s spellings[T]) encode(v Version, t T) string {
	if forms, ok := s[t]; ok {
		return forms[v.index()]
	}

	return string(t)
}

// decode returns the metadata form of a wire value. Unknown values pass
// through so that round trips stay lossless.
func (s spellings[T]) decode(v Version, wire string) T {
	for t, forms := range s {
		if forms[v.index()] == wire {
			return t
		}
	}

	return T(wire)
}

var availabilityStatuses = spellings[metadata.AvailabilityStatus]{ //nolint: gochecknoglobals
	metadata.AvailabilityStatusApproved:   {"Approved", "urn:oasis:names:tc:ebxml-regrep:StatusType:Approved"},
	metadata.AvailabilityStatusDeprecated: {"Deprecated", "urn:oasis:names:tc:ebxml-regrep:StatusType:Deprecated"},
	metadata.AvailabilityStatusSubmitted:  {"Submitted", "urn:oasis:names:tc:ebxml-regrep:StatusType:Submitted"},
}

var associationTypes = spellings[metadata.AssociationType]{ //nolint: gochecknoglobals
	metadata.AssociationTypeHasMember:           {"HasMember", "urn:oasis:names:tc:ebxml-regrep:AssociationType:HasMember"},
	metadata.AssociationTypeReplace:             {"RPLC", "urn:ihe:iti:2007:AssociationType:RPLC"},
	metadata.AssociationTypeTransform:           {"XFRM", "urn:ihe:iti:2007:AssociationType:XFRM"},
	metadata.AssociationTypeAppend:              {"APND", "urn:ihe:iti:2007:AssociationType:APND"},
	metadata.AssociationTypeTransformAndReplace: {"XFRM_RPLC", "urn:ihe:iti:2007:AssociationType:XFRM_RPLC"},
	metadata.AssociationTypeSigns:               {"signs", "urn:ihe:iti:2007:AssociationType:signs"},
}

var statuses = spellings[metadata.Status]{ //nolint: gochecknoglobals
	metadata.StatusSuccess:        {"Success", "urn:oasis:names:tc:ebxml-regrep:ResponseStatusType:Success"},
	metadata.StatusFailure:        {"Failure", "urn:oasis:names:tc:ebxml-regrep:ResponseStatusType:Failure"},
	metadata.StatusPartialSuccess: {"PartialSuccess", "urn:ihe:iti:2007:ResponseStatusType:PartialSuccess"},
}

var severities = spellings[metadata.Severity]{ //nolint: gochecknoglobals
	metadata.SeverityError:   {"Error", "urn:oasis:names:tc:ebxml-regrep:ErrorSeverityType:Error"},
	metadata.SeverityWarning: {"Warning", "urn:oasis:names:tc:ebxml-regrep:ErrorSeverityType:Warning"},
}

// AvailabilityStatus returns the wire spelling of s.
func (v Version) AvailabilityStatus(s metadata.AvailabilityStatus) string {
	return availabilityStatuses.encode(v, s)
}

// ParseAvailabilityStatus returns the metadata form of a wire status.
func (v Version) ParseAvailabilityStatus(s string) metadata.AvailabilityStatus {
	return availabilityStatuses.decode(v, s)
}

// AssociationType returns the wire spelling of t.
func (v Version) AssociationType(t metadata.AssociationType) string {
	return associationTypes.encode(v, t)
}

// ParseAssociationType returns the metadata form of a wire association type.
func (v Version) ParseAssociationType(s string) metadata.AssociationType {
	return associationTypes.decode(v, s)
}

// ResponseStatus returns the wire spelling of s.
func (v Version) ResponseStatus(s metadata.Status) string {
	return statuses.encode(v, s)
}

// ParseResponseStatus returns the metadata form of a wire response status.
func (v Version) ParseResponseStatus(s string) metadata.Status {
	return statuses.decode(v, s)
}

// Severity returns the wire spelling of s.
func (v Version) Severity(s metadata.Severity) string {
	return severities.encode(v, s)
}

// ParseSeverity returns the metadata form of a wire severity.
func (v Version) ParseSeverity(s string) metadata.Severity {
	return severities.decode(v, s)
}
