package config

var Presets = map[string]map[string]*Config{
	"decay": {
		"textbook": {
			Problem: "decay", Method: "euler", Dt: 0.1, Steps: 10,
			InitState: []float64{1.0},
		},
		"fine": {
			Problem: "decay", Method: "rk4", Dt: 0.01, Steps: 1000,
			InitState: []float64{1.0},
		},
	},
	"oscillator": {
		"unit": {
			Problem: "oscillator", Method: "rk4", Dt: 0.01, Steps: 2000,
			InitState: []float64{1.0, 0.0},
		},
		"kicked": {
			Problem: "oscillator", Method: "rk4", Dt: 0.01, Steps: 2000,
			InitState: []float64{0.0, 2.0},
		},
		"coarse": {
			Problem: "oscillator", Method: "euler", Dt: 0.1, Steps: 200,
			InitState: []float64{1.0, 0.0},
		},
	},
	"logistic": {
		"growth": {
			Problem: "logistic", Method: "rk4", Dt: 0.01, Steps: 1000,
			InitState: []float64{0.5},
		},
	},
	"shifted_sqrt": {
		"classic": {
			Problem: "shifted_sqrt", Method: "rk4", Dt: 0.5, Steps: 10,
			InitState: []float64{1.0},
		},
	},
}

func GetPreset(problem, name string) *Config {
	group, ok := Presets[problem]
	if !ok {
		return nil
	}
	return group[name]
}

func ListPresets(problem string) []string {
	group, ok := Presets[problem]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
