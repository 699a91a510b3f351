// Package profile provides optional runtime profiling for lamb.
//
// Profiling is backed by [github.com/pkg/profile] and compiled in only with
// the "pprof" build tag. Without the tag, [Modes] is empty and
// [Config.Start] returns a no-op.
//
//	go build -tags pprof .
//	lamb --pprof-mode cpu --pprof-dir ./profiles '\a -> \b -> a'
//	go tool pprof -http=: ./profiles/cpu.pprof
//
// Supported modes are allocs, block, clock, cpu, goroutine, heap, mem, mutex,
// thread, and trace. Profiles are written to [Config.Dir], or to the working
// directory when it is empty.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
