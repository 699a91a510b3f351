package profile

// Config selects what to profile and where the profile is written.
type Config struct {
	// Mode is one of [Modes]. An empty Mode disables profiling.
	Mode string
	// Dir receives the profile file. Empty means the working directory.
	Dir string
	// Quiet suppresses the start and stop messages of the profiler.
	Quiet bool
}

// Profiler is a running profile.
type Profiler interface {
	// Stop ends profiling and flushes the profile to disk.
	Stop()
}

// Start begins profiling in the configured mode.
//
// An empty or unknown mode, or a binary built without the pprof tag, yields a
// Profiler whose Stop does nothing.
func (c Config) Start() Profiler {
	if c.Mode == "" {
		return ignore{}
	}

	return start(c)
}

type ignore struct{}

func (ignore) Stop() {}
