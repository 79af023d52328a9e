// Package resolve indexes the identified objects of a GML model tree
// and resolves the XLink references between them.
//
// Only local references, of the form "#id", are resolved. References
// to other documents are reported as remote and left to the caller.
package resolve
