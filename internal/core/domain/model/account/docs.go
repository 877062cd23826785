// Package account contains identity value objects: the closed Role set and
// the resolved Session threaded through every role-scoped call.
//
// Roles form a closed enum rather than free-form strings, so an unrecognized
// role is a parse error at the boundary, never a reachable state inside the
// core. A Session is produced once per request by the session resolver and is
// immutable; there is no ambient "current session" anywhere in the core.
package account
