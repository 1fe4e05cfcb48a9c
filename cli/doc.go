// Package cli contains the command line interface for calc.
//
// # Commands
//
//   - repl (default): interactive session; terminates on "exit" or "quit"
//   - run FILES...: evaluate each non-blank line of the given files,
//     reporting results per line and continuing past errors
//   - eval [STMT...]: evaluate argument statements, or statements read
//     line by line from stdin when no arguments are given
//
// All commands share one environment per invocation: assignments and
// function definitions on earlier lines are visible to later lines.
//
// # Configuration
//
// Flags can be seeded from a YAML config file at
// $XDG_CONFIG_HOME/calc/config.yaml (see [resolveYAML]). Command-line
// flags override config file values.
//
// # Logging Options
//
//   - --log-level: minimum log level (trace, debug, info, warn, error)
//   - --log-format: log output format (text, json)
//   - --log-time: timestamp layout (RFC3339, RFC3339Nano, none, ...)
//   - --log-caller: include caller information in log output
//
// Logs are written to stderr; stdout carries only evaluation output.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof .
//
//   - --pprof-mode: enable profiling (allocs, block, clock, cpu,
//     goroutine, heap, mem, mutex, thread, trace)
//   - --pprof-dir: profile output directory (default:
//     ~/.cache/calc/pprof)
package cli
