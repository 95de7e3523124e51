// Package pagination provides page-size values, pagination metadata, and the
// pagination strip layout shared by every listing renderer.
//
// This package contains:
//   - PageSize: a bounded page size or the Unbounded ("All") marker
//   - Meta: the resolved window (start, end, total pages) for a view length
//   - Controls: the Previous / page / ellipsis / Next strip as data
//
// Nothing here knows about entries or displays; renderers turn Controls into
// buttons, links, or styled text.
package pagination
