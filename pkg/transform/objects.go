package transform

import (
	"xds/pkg/ebxml"
	"xds/pkg/metadata"
)

// SubmitObjects is the metadata a submission carries in its object list.
type SubmitObjects struct {
	SubmissionSet   *metadata.SubmissionSet
	DocumentEntries []metadata.DocumentEntry
	Folders         []metadata.Folder
	Associations    []metadata.Association
}

// ToSubmitObjects adds the objects of s to lib: the submission set first,
// then document entries, folders and associations.
func ToSubmitObjects(f ebxml.Factory, lib ebxml.ObjectLibrary, s *SubmitObjects) {
	if s == nil {
		return
	}

	if s.SubmissionSet != nil {
		addPackage(f, lib, ToSubmissionSet(f, s.SubmissionSet), ebxml.NodeSubmissionSet)
	}
	addEntries(f, lib, s.DocumentEntries, s.Folders, s.Associations)
}

// FromSubmitObjects reads the submission content of lib. Only the first
// package marked as a submission set is used.
func FromSubmitObjects(v ebxml.Version, lib ebxml.ObjectLibrary) *SubmitObjects {
	s := &SubmitObjects{
		DocumentEntries: documentEntries(v, lib),
		Folders:         folders(v, lib),
		Associations:    associations(v, lib),
	}
	if sets := lib.RegistryPackages(ebxml.NodeSubmissionSet); len(sets) > 0 {
		s.SubmissionSet = FromSubmissionSet(v, sets[0])
	}

	return s
}

// ToQueryResults adds the objects of a query response to lib: submission
// sets, document entries, folders, associations and object references.
func ToQueryResults(f ebxml.Factory, lib ebxml.ObjectLibrary, r *metadata.QueryResponse) {
	if r == nil {
		return
	}

	for i := range r.SubmissionSets {
		addPackage(f, lib, ToSubmissionSet(f, &r.SubmissionSets[i]), ebxml.NodeSubmissionSet)
	}
	addEntries(f, lib, r.DocumentEntries, r.Folders, r.Associations)
	for _, ref := range r.References {
		lib.AddObjectRef(ref)
	}
}

// FromQueryResults reads the objects of lib into r.
func FromQueryResults(v ebxml.Version, lib ebxml.ObjectLibrary, r *metadata.QueryResponse) {
	r.DocumentEntries = documentEntries(v, lib)
	r.Folders = folders(v, lib)
	r.Associations = associations(v, lib)
	r.References = lib.ObjectRefs()
	for _, pkg := range lib.RegistryPackages(ebxml.NodeSubmissionSet) {
		r.SubmissionSets = append(r.SubmissionSets, *FromSubmissionSet(v, pkg))
	}
}

func addEntries(f ebxml.Factory,
	lib ebxml.ObjectLibrary,
	entries []metadata.DocumentEntry,
	fs []metadata.Folder,
	as []metadata.Association) {
	for i := range entries {
		lib.AddExtrinsicObject(ToDocumentEntry(f, &entries[i]))
	}
	for i := range fs {
		addPackage(f, lib, ToFolder(f, &fs[i]), ebxml.NodeFolder)
	}
	for i := range as {
		lib.AddAssociation(ToAssociation(f, &as[i]))
	}
}

// addPackage adds pkg to lib together with the classification marking it
// with node. The marker sits at list level; a package without an id cannot
// be referenced from there, so its marker is nested instead.
func addPackage(f ebxml.Factory, lib ebxml.ObjectLibrary, pkg ebxml.RegistryPackage, node string) {
	lib.AddRegistryPackage(pkg)

	marker := f.NewClassification()
	marker.SetClassificationNode(node)
	if pkg.ID() == "" {
		pkg.AddNodeClassification(marker)

		return
	}
	marker.SetClassifiedObject(pkg.ID())
	lib.AddClassification(marker)
}

func documentEntries(v ebxml.Version, lib ebxml.ObjectLibrary) []metadata.DocumentEntry {
	var out []metadata.DocumentEntry
	for _, obj := range lib.ExtrinsicObjects(ebxml.ObjectTypeDocumentEntry) {
		out = append(out, *FromDocumentEntry(v, obj))
	}

	return out
}

func folders(v ebxml.Version, lib ebxml.ObjectLibrary) []metadata.Folder {
	var out []metadata.Folder
	for _, pkg := range lib.RegistryPackages(ebxml.NodeFolder) {
		out = append(out, *FromFolder(v, pkg))
	}

	return out
}

func associations(v ebxml.Version, lib ebxml.ObjectLibrary) []metadata.Association {
	var out []metadata.Association
	for _, a := range lib.Associations() {
		out = append(out, *FromAssociation(v, a))
	}

	return out
}
