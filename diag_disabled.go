//go:build faultline_nodiag

package faultline

const diagnosticsEnabled = false
