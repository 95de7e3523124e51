// Package listing implements the sort / filter / paginate controller that sits
// on top of an already-rendered tabular listing.
//
// A Host is the listing as it was captured: its columns and the complete,
// immutable collection of entries. Everything else is derived State: the
// current search term, the filtered and ordered view, pagination and sort.
// State changes only through Intents applied by a Reducer, and every change is
// projected into a View: the rows, summary, column indicators and pagination
// strip a renderer should display. Renderers never touch State directly.
//
// A Controller bundles a Host, a Reducer, the current State and the last View
// for renderers that want an object to drive. It is not safe for concurrent
// use; give each display its own Controller.
package listing
