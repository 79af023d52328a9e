// Copyright 2018 Andrew Fort

// Package schema validates GML model trees against the constraints of
// the GML 3.1.1 schema that decoding does not enforce.
//
// Decoding accepts any document whose elements are known: a LineString
// with a single position, an Edge with one directed node or a property
// carrying both a value and an xlink:href all decode. Validate walks a
// decoded tree and reports each such violation as a *gmlerr.Error,
// collected in a gmlerr.List.
//
// Constraint checks
//
// For every object in the tree Validate checks;
//
//   cardinality
//       Each element and attribute occurs within the bounds of its
//       gml:"occurs" tag (min-occurs, max-occurs, missing-attribute),
//       and exactly one branch of each choice group is present
//       (choice).
//
//   property content
//       A property holds a value or an xlink:href, not both
//       (property-content). An empty property is a warning.
//
//   values
//       Enumerations, bounded numbers and fixed-length lists hold
//       allowed values (invalid-value).
//
//   positions
//       LineString and LineStringSegment have at least two positions,
//       LinearRing at least four (too-few-positions).
//
//   identifiers
//       Every gml:id is unique (duplicate-id) and every definition has
//       one (missing-attribute). A coordinate system has the number of
//       axes its type allows.
package schema
