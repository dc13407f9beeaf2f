// Package web serves the two-step account form over HTTP.
//
// Each browser gets one in-memory form session addressed by a signed cookie.
// Handlers translate form posts and htmx field updates into wizard
// operations and render the card with hand-built templ components.
package web
