package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseModel_AliasNormalization(t *testing.T) {
	cases := map[string]Model{
		"B":        ModelB,
		"b":        ModelB,
		"erlangB":  ModelB,
		"Erlang B": ModelB,
		"erlang-b": ModelB,
		"C":        ModelC,
		"c":        ModelC,
		"erlangC":  ModelC,
		"A":        ModelA,
		"erlang_a": ModelA,
	}
	for in, want := range cases {
		assert.Equalf(t, want, ParseModel(in), "ParseModel(%q)", in)
	}
}

func TestParseModel_UnknownDefaultsToC(t *testing.T) {
	for _, in := range []string{"", "erlang", "D", "m/m/1", "  "} {
		assert.Equalf(t, ModelC, ParseModel(in), "ParseModel(%q)", in)
	}
}
