// Package cmd provides the run, eval, and repl subcommands for evaluating
// calculator statements.
package cmd

// CacheIdentifier is the kong variable identifier containing the path to
// the runtime cache directory.
var CacheIdentifier = "cache"
