package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLabel(t *testing.T) {
	for _, testcase := range []struct {
		name     string
		fname    string
		args     []interface{}
		expected string
	}{
		{name: "no args", fname: "store.Open", args: nil, expected: "store.Open()"},
		{name: "one arg", fname: "store.Get", args: []interface{}{"key"}, expected: "store.Get(key)"},
		{name: "mixed args", fname: "grid.At", args: []interface{}{2, 7, true}, expected: "grid.At(2, 7, true)"},
	} {
		t.Run(testcase.name, func(t *testing.T) {
			assert.Equal(t, testcase.expected, formatLabel(testcase.fname, testcase.args))
		})
	}
}
