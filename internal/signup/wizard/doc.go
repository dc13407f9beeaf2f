// Package wizard drives the two-step account form.
//
// A Session owns one set of form values and the current step. Identity
// fields (username, email, phone, role) gate the move to the credentials
// step; the credentials step ends in a submission that cross-checks the two
// password fields before handing the values to a Sink. Rendering is left to
// callers, which read field state and receive one-shot notifications through
// a Notifier.
//
// A Session is owned by a single caller and is not safe for concurrent use.
package wizard
