// Package profile provides optional runtime profiling for the calc
// command.
//
// It integrates [github.com/pkg/profile] behind the "pprof" build tag.
// When built without the tag (the default), all operations are no-ops with
// zero runtime overhead.
//
// Supported modes when built with the tag: allocs, block, clock, cpu,
// goroutine, heap, mem, mutex, thread, trace. Use [Modes] to retrieve the
// list programmatically. Profile files are written to the configured
// output directory with names matching the mode (e.g. cpu.pprof) and can
// be analyzed with:
//
//	go tool pprof calc cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
