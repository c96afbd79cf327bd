// Package transform maps the metadata model onto registry objects and back.
// It only talks to the ebxml facade, so one set of rules serves every wire
// version: callers pass the factory of the target version when building and
// the version of the source tree when reading.
//
// Every ToX function returns nil for a nil input so that its result can be
// handed straight to the facade, which ignores absent optional objects.
package transform
