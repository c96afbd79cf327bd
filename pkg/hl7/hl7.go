// Package hl7 renders and parses the HL7 v2 composite data types that XDS
// metadata embeds in slot values and external identifiers: CX (identifiers),
// XCN (persons), XON (organizations), XPN (names) and the PID-n source
// patient info lines.
//
// Escape sequences are not interpreted; values are expected to be free of the
// '^', '&' and '|' delimiters.
package hl7

import (
	"strings"

	"xds/pkg/metadata"
)

const (
	componentSeparator    = "^"
	subcomponentSeparator = "&"
	fieldSeparator        = "|"
)

// component returns the i-th element of parts, or "" when out of range.
func component(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}

	return ""
}

// join concatenates parts with sep and drops trailing empty elements.
func join(sep string, parts ...string) string {
	end := len(parts)
	for end > 0 && parts[end-1] == "" {
		end--
	}

	return strings.Join(parts[:end], sep)
}

func renderAuthority(a *metadata.AssigningAuthority) string {
	if a == nil {
		return ""
	}

	return join(subcomponentSeparator, "", a.UniversalID, a.UniversalIDType)
}

func parseAuthority(s string) *metadata.AssigningAuthority {
	parts := strings.Split(s, subcomponentSeparator)
	a := metadata.AssigningAuthority{
		UniversalID:     component(parts, 1),
		UniversalIDType: component(parts, 2),
	}
	if a == (metadata.AssigningAuthority{}) {
		return nil
	}

	return &a
}

// RenderCX renders an identifier as "id^^^&oid&type".
func RenderCX(id *metadata.Identifiable) string {
	if id == nil {
		return ""
	}

	return join(componentSeparator, id.ID, "", "", renderAuthority(id.AssigningAuthority))
}

// ParseCX parses an identifier rendered by RenderCX. It returns nil for an
// empty value.
func ParseCX(s string) *metadata.Identifiable {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, componentSeparator)

	return &metadata.Identifiable{
		ID:                 component(parts, 0),
		AssigningAuthority: parseAuthority(component(parts, 3)),
	}
}

func nameComponents(n *metadata.Name) []string {
	if n == nil {
		return []string{"", "", "", "", ""}
	}

	return []string{n.FamilyName, n.GivenName, n.SecondAndFurtherGivenNames, n.Suffix, n.Prefix}
}

func parseName(parts []string) *metadata.Name {
	n := metadata.Name{
		FamilyName:                 component(parts, 0),
		GivenName:                  component(parts, 1),
		SecondAndFurtherGivenNames: component(parts, 2),
		Suffix:                     component(parts, 3),
		Prefix:                     component(parts, 4),
	}
	if n == (metadata.Name{}) {
		return nil
	}

	return &n
}

// RenderXPN renders a name as "family^given^second^suffix^prefix".
func RenderXPN(n *metadata.Name) string {
	return join(componentSeparator, nameComponents(n)...)
}

// ParseXPN parses a name rendered by RenderXPN.
func ParseXPN(s string) *metadata.Name {
	if s == "" {
		return nil
	}

	return parseName(strings.Split(s, componentSeparator))
}

// RenderXCN renders a person as "id^family^given^second^suffix^prefix^^^&oid&type".
func RenderXCN(p *metadata.Person) string {
	if p == nil {
		return ""
	}
	parts := make([]string, 0, 9)
	var authority string
	if p.ID != nil {
		parts = append(parts, p.ID.ID)
		authority = renderAuthority(p.ID.AssigningAuthority)
	} else {
		parts = append(parts, "")
	}
	parts = append(parts, nameComponents(p.Name)...)
	parts = append(parts, "", "", authority)

	return join(componentSeparator, parts...)
}

// ParseXCN parses a person rendered by RenderXCN.
func ParseXCN(s string) *metadata.Person {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, componentSeparator)

	p := &metadata.Person{Name: parseName(parts[1:])}
	id := component(parts, 0)
	authority := parseAuthority(component(parts, 8))
	if id != "" || authority != nil {
		p.ID = &metadata.Identifiable{ID: id, AssigningAuthority: authority}
	}

	return p
}

// RenderXON renders an organization as "name^^^^^&oid&type^^^^idNumber".
func RenderXON(o *metadata.Organization) string {
	if o == nil {
		return ""
	}

	return join(componentSeparator,
		o.Name, "", "", "", "", renderAuthority(o.AssigningAuthority), "", "", "", o.IDNumber)
}

// ParseXON parses an organization rendered by RenderXON.
func ParseXON(s string) *metadata.Organization {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, componentSeparator)

	return &metadata.Organization{
		Name:               component(parts, 0),
		AssigningAuthority: parseAuthority(component(parts, 5)),
		IDNumber:           component(parts, 9),
	}
}
