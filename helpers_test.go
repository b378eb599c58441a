package faultline_test

import (
	"github.com/faultline/faultline"
)

var errBad = faultline.Declare("mod.Thing", "Bad")

// capture runs fn and returns the *Failure it raised, or nil.
func capture(fn func()) (failure *faultline.Failure) {
	defer func() {
		if r := recover(); r != nil {
			failure = r.(*faultline.Failure)
		}
	}()
	fn()
	return nil
}
