// Package logging builds zerolog loggers for listctl and carries them, along
// with a per-invocation trace id, through context.Context.
//
// Every component logs through FromContext(ctx) and tags its events with
// "component" and "operation" fields. When an event is bound to a context via
// Event.Ctx, the trace id stored in that context is added automatically.
package logging
