package engine

import "strings"

// Model selects which queueing discipline drives a calculation.
type Model string

const (
	// ModelB is the loss system: no queue, blocked contacts are lost.
	ModelB Model = "B"
	// ModelC is the infinite-patience queue, the default discipline.
	ModelC Model = "C"
	// ModelA is the abandonment-aware queue; requires average patience.
	ModelA Model = "A"
)

// ParseModel normalizes a model selector string. Matching is
// case-insensitive and accepts the bare letter or an "erlang" prefix
// ("erlangC", "erlang-a", "Erlang B"). Unrecognized strings resolve to
// ModelC, the discipline the rest of the industry defaults to.
func ParseModel(s string) Model {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.TrimPrefix(v, "erlang")
	v = strings.TrimLeft(v, " -_")
	switch v {
	case "b":
		return ModelB
	case "a":
		return ModelA
	case "c":
		return ModelC
	default:
		return ModelC
	}
}
