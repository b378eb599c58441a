//go:build !faultline_nodiag

package faultline

// diagnosticsEnabled gates the guard functions at build time. Building with
// the faultline_nodiag tag degrades each guard per its documented rules; the
// boundary's classification is unaffected.
const diagnosticsEnabled = true
