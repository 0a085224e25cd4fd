// SPDX-License-Identifier: MIT

package convert

// Test-Bridge (White-Box) for the options snapshot.
//
// Purpose:
//   - Expose a read-only view of the gathered Options to convert_test only,
//     without widening the production API.

// OptionsSnapshot mirrors the unexported Options fields.
type OptionsSnapshot struct {
	Eps     float64
	Checked bool
}

// GatherOptionsSnapshot_TestOnly applies opts over the defaults and returns the result.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, Checked: o.checked}
}
