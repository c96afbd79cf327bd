package ebxml21

import (
	"xds/pkg/ebxml"
	"xds/pkg/metadata"
	"xds/pkg/serrors"
)

type slot struct{ s *Slot }

func (s slot) Name() string     { return s.s.Name }
func (s slot) Values() []string { return s.s.Values }

// slotList operates on the slot slice of a wire object in place.
type slotList struct{ slots *[]*Slot }

func (l slotList) AddSlot(name string, values ...string) {
	serrors.Require(name != "", "slot name cannot be empty")

	if allEmpty(values) {
		return
	}
	values = append([]string(nil), values...)
	for _, s := range *l.slots {
		if s.Name == name {
			s.Values = append(s.Values, values...)

			return
		}
	}
	*l.slots = append(*l.slots, &Slot{Name: name, Values: values})
}

func (l slotList) SlotValues(name string) []string {
	var values []string
	for _, s := range *l.slots {
		if s.Name == name {
			values = append(values, s.Values...)
		}
	}

	return values
}

func (l slotList) SingleSlotValue(name string) string {
	for _, s := range *l.slots {
		if s.Name == name && len(s.Values) > 0 {
			return s.Values[0]
		}
	}

	return ""
}

func (l slotList) Slots() []ebxml.Slot {
	slots := make([]ebxml.Slot, 0, len(*l.slots))
	for _, s := range *l.slots {
		slots = append(slots, slot{s})
	}

	return slots
}

func (l slotList) SlotsByName(name string) []ebxml.Slot {
	var slots []ebxml.Slot
	for _, s := range *l.slots {
		if s.Name == name {
			slots = append(slots, slot{s})
		}
	}

	return slots
}

func allEmpty(values []string) bool {
	for _, v := range values {
		if v != "" {
			return false
		}
	}

	return true
}

type internationalString struct{ s *InternationalString }

func (i internationalString) SingleLocalizedString() *metadata.LocalizedString {
	if i.s == nil || len(i.s.LocalizedStrings) == 0 {
		return nil
	}
	l := i.s.LocalizedStrings[0]

	return &metadata.LocalizedString{Value: l.Value, Lang: l.Lang, Charset: l.Charset}
}

func (i internationalString) LocalizedStrings() []metadata.LocalizedString {
	if i.s == nil {
		return nil
	}
	out := make([]metadata.LocalizedString, 0, len(i.s.LocalizedStrings))
	for _, l := range i.s.LocalizedStrings {
		out = append(out, metadata.LocalizedString{Value: l.Value, Lang: l.Lang, Charset: l.Charset})
	}

	return out
}

func newInternationalString(l *metadata.LocalizedString) *InternationalString {
	if l == nil {
		return nil
	}

	return &InternationalString{LocalizedStrings: []LocalizedString{{Value: l.Value, Lang: l.Lang, Charset: l.Charset}}}
}

// WrapInternationalString returns the facade view of s, which may be nil.
func WrapInternationalString(s *InternationalString) ebxml.InternationalString {
	return internationalString{s}
}

type registryEntry struct {
	slotList

	obj *RegistryObject
}

func newRegistryEntry(obj *RegistryObject) registryEntry {
	return registryEntry{slotList: slotList{&obj.Slots}, obj: obj}
}

func (e registryEntry) ID() string                      { return e.obj.ID }
func (e registryEntry) SetID(id string)                 { e.obj.ID = id }
func (e registryEntry) ObjectType() string              { return e.obj.ObjectType }
func (e registryEntry) SetObjectType(objectType string) { e.obj.ObjectType = objectType }
func (e registryEntry) Status() string                  { return e.obj.Status }
func (e registryEntry) SetStatus(status string)         { e.obj.Status = status }
func (e registryEntry) Home() string                    { return e.obj.Home }
func (e registryEntry) SetHome(home string)             { e.obj.Home = home }

func (e registryEntry) Name() *metadata.LocalizedString {
	return internationalString{e.obj.Name}.SingleLocalizedString()
}

func (e registryEntry) SetName(name *metadata.LocalizedString) {
	e.obj.Name = newInternationalString(name)
}

func (e registryEntry) Description() *metadata.LocalizedString {
	return internationalString{e.obj.Description}.SingleLocalizedString()
}

func (e registryEntry) SetDescription(description *metadata.LocalizedString) {
	e.obj.Description = newInternationalString(description)
}

func (e registryEntry) AddClassification(c ebxml.Classification, scheme string) {
	serrors.Require(scheme != "", "classification scheme cannot be empty")

	if c == nil {
		return
	}
	wire, ok := c.(*classification)
	serrors.Require(ok, "classification %T does not belong to ebXML 2.1", c)

	wire.SetClassificationScheme(scheme)
	wire.SetClassifiedObject(e.obj.ID)
	e.obj.Classifications = append(e.obj.Classifications, wire.c)
}

func (e registryEntry) Classifications() []ebxml.Classification {
	out := make([]ebxml.Classification, 0, len(e.obj.Classifications))
	for _, c := range e.obj.Classifications {
		out = append(out, wrapClassification(c))
	}

	return out
}

func (e registryEntry) ClassificationsByScheme(scheme string) []ebxml.Classification {
	var out []ebxml.Classification
	for _, c := range e.obj.Classifications {
		if c.ClassificationScheme == scheme {
			out = append(out, wrapClassification(c))
		}
	}

	return out
}

func (e registryEntry) SingleClassification(scheme string) ebxml.Classification {
	for _, c := range e.obj.Classifications {
		if c.ClassificationScheme == scheme {
			return wrapClassification(c)
		}
	}

	return nil
}

func (e registryEntry) AddExternalIdentifier(value, scheme, name string) {
	serrors.Require(scheme != "", "identification scheme cannot be empty")
	serrors.Require(name != "", "external identifier name cannot be empty")

	if value == "" {
		return
	}
	e.obj.ExternalIdentifiers = append(e.obj.ExternalIdentifiers, &ExternalIdentifier{
		RegistryObject: RegistryObject{
			ID:   ebxml.NewID(),
			Name: newInternationalString(metadata.NewLocalizedString(name)),
		},
		RegistryObjectID:     e.obj.ID,
		IdentificationScheme: scheme,
		Value:                value,
	})
}

func (e registryEntry) ExternalIdentifiers() []ebxml.ExternalIdentifier {
	out := make([]ebxml.ExternalIdentifier, 0, len(e.obj.ExternalIdentifiers))
	for _, id := range e.obj.ExternalIdentifiers {
		out = append(out, &externalIdentifier{newRegistryEntry(&id.RegistryObject), id})
	}

	return out
}

func (e registryEntry) ExternalIdentifierValue(scheme string) string {
	for _, id := range e.obj.ExternalIdentifiers {
		if id.IdentificationScheme == scheme {
			return id.Value
		}
	}

	return ""
}

type extrinsicObject struct {
	registryEntry

	o *ExtrinsicObject
}

// WrapExtrinsicObject returns the facade view of o.
func WrapExtrinsicObject(o *ExtrinsicObject) ebxml.ExtrinsicObject {
	return &extrinsicObject{newRegistryEntry(&o.RegistryObject), o}
}

func (o *extrinsicObject) MimeType() string            { return o.o.MimeType }
func (o *extrinsicObject) SetMimeType(mimeType string) { o.o.MimeType = mimeType }

type registryPackage struct {
	registryEntry

	p *RegistryPackage
}

// WrapRegistryPackage returns the facade view of p.
func WrapRegistryPackage(p *RegistryPackage) ebxml.RegistryPackage {
	return &registryPackage{newRegistryEntry(&p.RegistryObject), p}
}

func (p *registryPackage) AddNodeClassification(c ebxml.Classification) {
	if c == nil {
		return
	}
	wire, ok := c.(*classification)
	serrors.Require(ok, "classification %T does not belong to ebXML 2.1", c)
	serrors.Require(wire.c.ClassificationNode != "", "classification node cannot be empty")

	wire.SetClassifiedObject(p.p.ID)
	p.p.Classifications = append(p.p.Classifications, wire.c)
}

type classification struct {
	registryEntry

	c *Classification
}

func wrapClassification(c *Classification) *classification {
	return &classification{newRegistryEntry(&c.RegistryObject), c}
}

// WrapClassification returns the facade view of c.
func WrapClassification(c *Classification) ebxml.Classification {
	return wrapClassification(c)
}

func (c *classification) ClassifiedObject() string         { return c.c.ClassifiedObject }
func (c *classification) SetClassifiedObject(id string)    { c.c.ClassifiedObject = id }
func (c *classification) ClassificationScheme() string     { return c.c.ClassificationScheme }
func (c *classification) ClassificationNode() string       { return c.c.ClassificationNode }
func (c *classification) SetClassificationNode(n string)   { c.c.ClassificationNode = n }
func (c *classification) NodeRepresentation() string       { return c.c.NodeRepresentation }
func (c *classification) SetClassificationScheme(s string) { c.c.ClassificationScheme = s }

func (c *classification) SetNodeRepresentation(representation string) {
	c.c.NodeRepresentation = representation
}

type externalIdentifier struct {
	registryEntry

	i *ExternalIdentifier
}

func (i *externalIdentifier) RegistryObject() string           { return i.i.RegistryObjectID }
func (i *externalIdentifier) IdentificationScheme() string     { return i.i.IdentificationScheme }
func (i *externalIdentifier) SetIdentificationScheme(s string) { i.i.IdentificationScheme = s }
func (i *externalIdentifier) Value() string                    { return i.i.Value }
func (i *externalIdentifier) SetValue(value string)            { i.i.Value = value }

type association struct {
	registryEntry

	a *Association
}

// WrapAssociation returns the facade view of a.
func WrapAssociation(a *Association) ebxml.Association {
	return &association{newRegistryEntry(&a.RegistryObject), a}
}

func (a *association) AssociationType() string     { return a.a.AssociationType }
func (a *association) SetAssociationType(t string) { a.a.AssociationType = t }
func (a *association) SourceObject() string        { return a.a.SourceObject }
func (a *association) SetSourceObject(id string)   { a.a.SourceObject = id }
func (a *association) TargetObject() string        { return a.a.TargetObject }
func (a *association) SetTargetObject(id string)   { a.a.TargetObject = id }

type objectLibrary struct{ l *ObjectList }

// WrapObjectList returns the facade view of l.
func WrapObjectList(l *ObjectList) ebxml.ObjectLibrary {
	return objectLibrary{l}
}

func (l objectLibrary) AddExtrinsicObject(obj ebxml.ExtrinsicObject) {
	if obj == nil {
		return
	}
	wire, ok := obj.(*extrinsicObject)
	serrors.Require(ok, "extrinsic object %T does not belong to ebXML 2.1", obj)
	l.l.ExtrinsicObjects = append(l.l.ExtrinsicObjects, wire.o)
}

func (l objectLibrary) AddRegistryPackage(pkg ebxml.RegistryPackage) {
	if pkg == nil {
		return
	}
	wire, ok := pkg.(*registryPackage)
	serrors.Require(ok, "registry package %T does not belong to ebXML 2.1", pkg)
	l.l.RegistryPackages = append(l.l.RegistryPackages, wire.p)
}

func (l objectLibrary) AddAssociation(assoc ebxml.Association) {
	if assoc == nil {
		return
	}
	wire, ok := assoc.(*association)
	serrors.Require(ok, "association %T does not belong to ebXML 2.1", assoc)
	l.l.Associations = append(l.l.Associations, wire.a)
}

func (l objectLibrary) AddClassification(c ebxml.Classification) {
	if c == nil {
		return
	}
	wire, ok := c.(*classification)
	serrors.Require(ok, "classification %T does not belong to ebXML 2.1", c)
	l.l.Classifications = append(l.l.Classifications, wire.c)
}

func (l objectLibrary) AddObjectRef(ref metadata.ObjectReference) {
	l.l.ObjectRefs = append(l.l.ObjectRefs, &ObjectRef{ID: ref.ID, Home: ref.Home})
}

func (l objectLibrary) ExtrinsicObjects(objectType string) []ebxml.ExtrinsicObject {
	var out []ebxml.ExtrinsicObject
	for _, o := range l.l.ExtrinsicObjects {
		if objectType == "" || o.ObjectType == objectType {
			out = append(out, WrapExtrinsicObject(o))
		}
	}

	return out
}

func (l objectLibrary) RegistryPackages(node string) []ebxml.RegistryPackage {
	classified := map[string]bool{}
	for _, c := range l.l.Classifications {
		if c.ClassificationNode == node && c.ClassifiedObject != "" {
			classified[c.ClassifiedObject] = true
		}
	}

	var out []ebxml.RegistryPackage
	for _, p := range l.l.RegistryPackages {
		if classified[p.ID] || hasNode(p.Classifications, node) {
			out = append(out, WrapRegistryPackage(p))
		}
	}

	return out
}

func hasNode(classifications []*Classification, node string) bool {
	for _, c := range classifications {
		if c.ClassificationNode == node {
			return true
		}
	}

	return false
}

func (l objectLibrary) Associations() []ebxml.Association {
	out := make([]ebxml.Association, 0, len(l.l.Associations))
	for _, a := range l.l.Associations {
		out = append(out, WrapAssociation(a))
	}

	return out
}

func (l objectLibrary) ObjectRefs() []metadata.ObjectReference {
	var out []metadata.ObjectReference
	for _, r := range l.l.ObjectRefs {
		out = append(out, metadata.ObjectReference{ID: r.ID, Home: r.Home})
	}

	return out
}
