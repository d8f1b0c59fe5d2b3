// Package pkgfile reads and writes JSON documents on local disk.
//
// Stores use it to keep small data sets in human-readable files. Missing or
// unreadable documents load as empty, and writes replace the file atomically.
package pkgfile
