// Package services holds the domain services of the hub operations core.
//
//   - DocumentEngine applies grouping-document operations to a document and
//     the consignments it touches, for any document kind.
//   - CodeAllocator mints unique human-readable codes.
package services
