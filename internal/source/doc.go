// Package source reads a pre-rendered listing (the host) into a
// listing.Host. Hosts come from an HTML table identified by its id, a CSV
// file, or a SQLite query result.
package source
