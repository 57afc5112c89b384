// Package core is the parsing engine: a single left-to-right pass over tokenized
// arguments that binds values to registered flags and collects operands.
//
// The pass keeps one piece of state between tokens, the rule still waiting for a
// value. Long and extended-short tokens are matched by name (exact when written with
// '=', longest prefix otherwise); short tokens are walked as clusters.
package core
