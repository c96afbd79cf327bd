package metadata

// LocalizedString is a string value qualified by an optional language tag and
// character set.
type LocalizedString struct {
	Value   string `json:"value"`
	Lang    string `json:"lang,omitempty"`
	Charset string `json:"charset,omitempty"`
}

// NewLocalizedString returns a LocalizedString without language or charset.
func NewLocalizedString(value string) *LocalizedString {
	return &LocalizedString{Value: value}
}

// Equal reports whether s and other hold the same value, language and charset.
func (s *LocalizedString) Equal(other *LocalizedString) bool {
	if s == nil || other == nil {
		return s == other
	}

	return *s == *other
}

// Code is a coded value from an external coding scheme, such as a class code
// or a confidentiality code.
type Code struct {
	// Code is the code value within its scheme.
	Code string `json:"code"`
	// DisplayName is the human-readable name of the code.
	DisplayName *LocalizedString `json:"displayName,omitempty"`
	// SchemeName identifies the coding scheme the code belongs to.
	SchemeName string `json:"schemeName,omitempty"`
}

// Equal reports whether c and other are field-wise equal.
func (c *Code) Equal(other *Code) bool {
	if c == nil || other == nil {
		return c == other
	}

	return c.Code == other.Code &&
		c.SchemeName == other.SchemeName &&
		c.DisplayName.Equal(other.DisplayName)
}
