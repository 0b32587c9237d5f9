package proxy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupKey(t *testing.T) {
	tests := map[string]string{
		"Introduce":    "introduce",
		"introduce":    "introduce",
		"SayWhereFrom": "sayWhereFrom",
		"sayWhereFrom": "sayWhereFrom",
		"":             "",
		"Ärger":        "ärger",
	}
	for in, want := range tests {
		assert.Equal(t, want, lookupKey(in), in)
	}
}
