// Package tui renders a listing.Controller in the terminal: an interactive
// Bubble Tea model plus styled and plain one-shot renderers.
package tui
