// Package ident encodes and decodes numeric identifiers and constructs
// process-unique and correlation IDs.
package ident
