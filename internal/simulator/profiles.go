package simulator

// Profile bounds the initial value range and the per-tick perturbation
// for one sensor type.
type Profile struct {
	Min    float64
	Max    float64
	Jitter float64
}

// Closed mapping from known type tags to baseline profiles. Unknown
// types fall back to defaultProfile explicitly; never extend behavior by
// string fallthrough.
var profiles = map[string]Profile{
	"temperature": {Min: 18, Max: 28, Jitter: 0.5},
	"humidity":    {Min: 30, Max: 60, Jitter: 2},
	"pressure":    {Min: 980, Max: 1040, Jitter: 1.5},
	"light":       {Min: 100, Max: 900, Jitter: 50},
	"co2":         {Min: 400, Max: 1200, Jitter: 40},
	"voltage":     {Min: 3.0, Max: 4.2, Jitter: 0.05},
}

var defaultProfile = Profile{Min: 0, Max: 100, Jitter: 5}

func profileFor(sensorType string) Profile {
	if p, ok := profiles[sensorType]; ok {
		return p
	}
	return defaultProfile
}
