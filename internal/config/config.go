// Package config handles simulation configuration loading and management.
package config

// Config holds all clothsim settings.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SimulationConfig holds the tunable parameters of a cloth simulation run.
// The blend weights and wrinkle threshold are tuning knobs, not contracts;
// callers relying on exact force output should pin their own copy.
type SimulationConfig struct {
	TimeStep       float32 `yaml:"time_step"`       // seconds per integration step
	Steps          int     `yaml:"steps"`           // steps per generation request
	MaxVertices    int     `yaml:"max_vertices"`    // adaptive LOD ceiling
	TemporalMemory int     `yaml:"temporal_memory"` // past frames kept for derivative terms

	Damping       float32 `yaml:"damping"`        // global velocity damping factor
	Gravity       float32 `yaml:"gravity"`        // m/s², applied along -Y
	WindAmplitude float32 `yaml:"wind_amplitude"` // peak wind force

	CollisionRadius float32 `yaml:"collision_radius"` // body sphere radius at scale 1.0
	CollisionPush   float32 `yaml:"collision_push"`   // push strength per unit of penetration

	LinearWeight     float32 `yaml:"linear_weight"`     // spring+damping branch
	NonlinearWeight  float32 `yaml:"nonlinear_weight"`  // bending+stretch+wrinkle branch
	TemporalWeight   float32 `yaml:"temporal_weight"`   // velocity-change branch
	WrinkleThreshold float32 `yaml:"wrinkle_threshold"` // curvature above which wrinkles trigger
	WrinkleScale     float32 `yaml:"wrinkle_scale"`     // amplitude of the wrinkle perturbation
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			TimeStep:         1.0 / 60.0,
			Steps:            60,
			MaxVertices:      2000,
			TemporalMemory:   8,
			Damping:          0.3,
			Gravity:          9.81,
			WindAmplitude:    0.15,
			CollisionRadius:  0.35,
			CollisionPush:    8.0,
			LinearWeight:     0.5,
			NonlinearWeight:  0.3,
			TemporalWeight:   0.2,
			WrinkleThreshold: 0.1,
			WrinkleScale:     0.05,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
