package ebxml21

import (
	"xds/pkg/ebxml"
)

// Factory allocates empty ebXML 2.1 objects.
type Factory struct{}

var _ ebxml.Factory = Factory{}

func (Factory) Version() ebxml.Version { return ebxml.Version21 }

func (Factory) NewExtrinsicObject(id string) ebxml.ExtrinsicObject {
	return WrapExtrinsicObject(&ExtrinsicObject{RegistryObject: RegistryObject{ID: id}})
}

func (Factory) NewRegistryPackage(id string) ebxml.RegistryPackage {
	return WrapRegistryPackage(&RegistryPackage{RegistryObject: RegistryObject{ID: id}})
}

func (Factory) NewClassification() ebxml.Classification {
	return WrapClassification(&Classification{RegistryObject: RegistryObject{ID: ebxml.NewID()}})
}

func (Factory) NewAssociation(id string) ebxml.Association {
	return WrapAssociation(&Association{RegistryObject: RegistryObject{ID: id}})
}

func (Factory) NewObjectLibrary() ebxml.ObjectLibrary {
	return WrapObjectList(&ObjectList{})
}
