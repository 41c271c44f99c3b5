// Package cfront wires together stream, reader, diag, strpool and lexer
// into the small set of entry points most callers actually need: open a
// file or an in-memory buffer and get back a *lexer.Lexer ready to Next
// tokens from.
//
// Using the subpackages directly (reader.New, stream.Open, lexer.New) is
// just as supported and gives finer control (pushing multiple streams
// for #include-like nesting, swapping the string pool, giving the Reader
// and the Lexer different diag.Sinks); this package only saves the
// boilerplate for the common single-file/single-string case.
package cfront
