package engine

// TrafficIntensity converts an interval workload into offered load in
// Erlangs: volume * AHT / interval length. One Erlang is the continuous
// occupancy of one agent.
//
// Any non-positive input means "no load" and yields 0, not an error: zero
// contacts pose no queueing problem.
func TrafficIntensity(volume, ahtSeconds, intervalSeconds float64) float64 {
	if volume <= 0 || ahtSeconds <= 0 || intervalSeconds <= 0 {
		return 0
	}
	return volume * ahtSeconds / intervalSeconds
}
