// Package fsutil builds filesystem helpers on top of the random and
// identifier packages: secure random directories and tracked temporary file
// copies.
package fsutil
