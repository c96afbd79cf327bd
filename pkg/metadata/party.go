package metadata

// AssigningAuthority identifies the authority that issued an identifier,
// usually by ISO OID.
type AssigningAuthority struct {
	UniversalID     string `json:"universalId"`
	UniversalIDType string `json:"universalIdType,omitempty"`
}

// Equal reports whether a and other are field-wise equal.
func (a *AssigningAuthority) Equal(other *AssigningAuthority) bool {
	if a == nil || other == nil {
		return a == other
	}

	return *a == *other
}

// Identifiable is an identifier scoped by its assigning authority, such as a
// patient id.
type Identifiable struct {
	ID                 string              `json:"id"`
	AssigningAuthority *AssigningAuthority `json:"assigningAuthority,omitempty"`
}

// Equal reports whether i and other are field-wise equal.
func (i *Identifiable) Equal(other *Identifiable) bool {
	if i == nil || other == nil {
		return i == other
	}

	return i.ID == other.ID && i.AssigningAuthority.Equal(other.AssigningAuthority)
}

// Name is a person's name.
type Name struct {
	FamilyName                 string `json:"familyName,omitempty"`
	GivenName                  string `json:"givenName,omitempty"`
	SecondAndFurtherGivenNames string `json:"secondAndFurtherGivenNames,omitempty"`
	Suffix                     string `json:"suffix,omitempty"`
	Prefix                     string `json:"prefix,omitempty"`
}

// Equal reports whether n and other are field-wise equal.
func (n *Name) Equal(other *Name) bool {
	if n == nil || other == nil {
		return n == other
	}

	return *n == *other
}

// Person is an identified person, such as an author or a legal authenticator.
type Person struct {
	ID   *Identifiable `json:"id,omitempty"`
	Name *Name         `json:"name,omitempty"`
}

// Equal reports whether p and other are field-wise equal.
func (p *Person) Equal(other *Person) bool {
	if p == nil || other == nil {
		return p == other
	}

	return p.ID.Equal(other.ID) && p.Name.Equal(other.Name)
}

// Organization is an identified organization, such as an author institution.
type Organization struct {
	Name               string              `json:"name"`
	IDNumber           string              `json:"idNumber,omitempty"`
	AssigningAuthority *AssigningAuthority `json:"assigningAuthority,omitempty"`
}

// Equal reports whether o and other are field-wise equal.
func (o *Organization) Equal(other *Organization) bool {
	if o == nil || other == nil {
		return o == other
	}

	return o.Name == other.Name &&
		o.IDNumber == other.IDNumber &&
		o.AssigningAuthority.Equal(other.AssigningAuthority)
}

// PatientInfo holds the demographics of the patient as known by the source
// system.
type PatientInfo struct {
	IDs         []Identifiable `json:"ids,omitempty"`
	Name        *Name          `json:"name,omitempty"`
	DateOfBirth string         `json:"dateOfBirth,omitempty"`
	Gender      string         `json:"gender,omitempty"`
}

// Equal reports whether p and other are field-wise equal.
func (p *PatientInfo) Equal(other *PatientInfo) bool {
	if p == nil || other == nil {
		return p == other
	}

	return equalEach(p.IDs, other.IDs) &&
		p.Name.Equal(other.Name) &&
		p.DateOfBirth == other.DateOfBirth &&
		p.Gender == other.Gender
}

// Author describes who authored a document entry or a submission set.
type Author struct {
	Person       *Person        `json:"person,omitempty"`
	Institutions []Organization `json:"institutions,omitempty"`
	Roles        []string       `json:"roles,omitempty"`
	Specialties  []string       `json:"specialties,omitempty"`
}

// Equal reports whether a and other are field-wise equal.
func (a *Author) Equal(other *Author) bool {
	if a == nil || other == nil {
		return a == other
	}

	return a.Person.Equal(other.Person) &&
		equalEach(a.Institutions, other.Institutions) &&
		equalStrings(a.Roles, other.Roles) &&
		equalStrings(a.Specialties, other.Specialties)
}
