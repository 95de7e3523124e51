// Package web serves a listing over HTTP. Every request replays the query
// string as intents against a fresh controller over the shared host, so the
// URL is the whole state: q, sort, dir, size and page.
package web
