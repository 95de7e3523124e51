// Package listview provides a windowed row viewport for Bubble Tea views.
//
// Only the rows that fit the viewport height are rendered. The viewport keeps
// a cursor and scrolls so the cursor row is always visible; callers replace
// the items whenever the underlying page changes.
package listview
