// Package match implements the template matcher at the heart of marquee.
//
// A Template is an ordered sequence of tokens: literal words, single
// wildcards (exactly one input token) and multi wildcards (one or more
// contiguous input tokens). Match compares a template against a tokenized
// question and returns the strings captured by the wildcards, in
// left-to-right order.
//
// The package is pure: no IO, no shared state, safe for concurrent use.
package match
