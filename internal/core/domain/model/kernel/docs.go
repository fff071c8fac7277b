// Package kernel provides the shared value objects of the hub operations domain.
//
// The package includes:
//   - UUID: identifier for batches, grouping documents and document members
//   - WeightBand: the weight interval a pricing rule applies to
//
// Both are immutable and reject their zero value through Validate.
package kernel
