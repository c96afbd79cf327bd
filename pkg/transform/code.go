package transform

import (
	"xds/pkg/ebxml"
	"xds/pkg/hl7"
	"xds/pkg/metadata"
)

// ToCode builds the classification representing code. The classification
// scheme is set when the result is added to its entry.
func ToCode(f ebxml.Factory, code *metadata.Code) ebxml.Classification {
	if code == nil {
		return nil
	}

	c := f.NewClassification()
	c.SetNodeRepresentation(code.Code)
	c.SetName(code.DisplayName)
	c.AddSlot(ebxml.SlotCodingScheme, code.SchemeName)

	return c
}

// FromCode reads a code from its classification.
func FromCode(c ebxml.Classification) *metadata.Code {
	if c == nil {
		return nil
	}

	return &metadata.Code{
		Code:        c.NodeRepresentation(),
		DisplayName: c.Name(),
		SchemeName:  c.SingleSlotValue(ebxml.SlotCodingScheme),
	}
}

func addCodes(f ebxml.Factory, entry ebxml.RegistryEntry, codes []metadata.Code, scheme string) {
	for i := range codes {
		entry.AddClassification(ToCode(f, &codes[i]), scheme)
	}
}

func codes(entry ebxml.RegistryEntry, scheme string) []metadata.Code {
	var out []metadata.Code
	for _, c := range entry.ClassificationsByScheme(scheme) {
		out = append(out, *FromCode(c))
	}

	return out
}

// ToAuthor builds the classification representing author. Authors carry no
// node representation, only slots.
func ToAuthor(f ebxml.Factory, author *metadata.Author) ebxml.Classification {
	if author == nil {
		return nil
	}

	c := f.NewClassification()
	c.SetNodeRepresentation("")
	c.AddSlot(ebxml.SlotAuthorPerson, hl7.RenderXCN(author.Person))
	for i := range author.Institutions {
		c.AddSlot(ebxml.SlotAuthorInstitution, hl7.RenderXON(&author.Institutions[i]))
	}
	c.AddSlot(ebxml.SlotAuthorRole, author.Roles...)
	c.AddSlot(ebxml.SlotAuthorSpecialty, author.Specialties...)

	return c
}

// FromAuthor reads an author from its classification.
func FromAuthor(c ebxml.Classification) *metadata.Author {
	if c == nil {
		return nil
	}

	author := &metadata.Author{
		Person:      hl7.ParseXCN(c.SingleSlotValue(ebxml.SlotAuthorPerson)),
		Roles:       c.SlotValues(ebxml.SlotAuthorRole),
		Specialties: c.SlotValues(ebxml.SlotAuthorSpecialty),
	}
	for _, v := range c.SlotValues(ebxml.SlotAuthorInstitution) {
		if o := hl7.ParseXON(v); o != nil {
			author.Institutions = append(author.Institutions, *o)
		}
	}

	return author
}
