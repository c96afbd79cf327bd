package ebxml30

import (
	"xds/pkg/ebxml"
)

// Object types that 3.0 producers put on structural registry objects.
const (
	ObjectTypeClassification     = "urn:oasis:names:tc:ebxml-regrep:ObjectType:RegistryObject:Classification"
	ObjectTypeExternalIdentifier = "urn:oasis:names:tc:ebxml-regrep:ObjectType:RegistryObject:ExternalIdentifier"
	ObjectTypeAssociation        = "urn:oasis:names:tc:ebxml-regrep:ObjectType:RegistryObject:Association"
	ObjectTypeRegistryPackage    = "urn:oasis:names:tc:ebxml-regrep:ObjectType:RegistryObject:RegistryPackage"
)

// Factory allocates empty ebXML 3.0 objects.
type Factory struct{}

var _ ebxml.Factory = Factory{}

func (Factory) Version() ebxml.Version { return ebxml.Version30 }

func (Factory) NewExtrinsicObject(id string) ebxml.ExtrinsicObject {
	return WrapExtrinsicObject(&ExtrinsicObject{RegistryObject: RegistryObject{ID: id}})
}

func (Factory) NewRegistryPackage(id string) ebxml.RegistryPackage {
	return WrapRegistryPackage(&RegistryPackage{RegistryObject: RegistryObject{ID: id, ObjectType: ObjectTypeRegistryPackage}})
}

func (Factory) NewClassification() ebxml.Classification {
	return WrapClassification(&Classification{RegistryObject: RegistryObject{
		ID:         ebxml.NewID(),
		ObjectType: ObjectTypeClassification,
	}})
}

func (Factory) NewAssociation(id string) ebxml.Association {
	return WrapAssociation(&Association{RegistryObject: RegistryObject{ID: id, ObjectType: ObjectTypeAssociation}})
}

func (Factory) NewObjectLibrary() ebxml.ObjectLibrary {
	return WrapRegistryObjectList(&RegistryObjectList{})
}
