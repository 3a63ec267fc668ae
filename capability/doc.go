// Package capability discovers the members of a composed robot that implement
// one of the lifecycle capabilities (core.Resettable, core.SafeStateable,
// core.AutonomousCandidate) and sweeps an operation across them.
//
// # Discovery
//
// Discover inspects the root's directly declared struct fields, in
// declaration order, and keeps the ones whose declared type implements the
// capability interface. Traversal is one level deep: a field that is itself a
// composite is a single member, and its own fields are not visited. Embedded
// fields are members like any other field.
//
// A field is inspected by its declared type, not by its dynamic value: a field
// declared as `any` or as an unrelated interface never qualifies, even when the
// value it holds would.
//
// Discovery never fails. Members that qualify but cannot be used (unexported,
// nil, or needing a pointer receiver on a root passed by value) are logged as
// *core.AccessError and skipped.
//
// Components may also register themselves explicitly with Registry.Register;
// registered members are appended after the discovered fields.
//
// # Sweeps
//
// Sweep invokes one operation on every member of an Index. Each member is
// isolated: a returned error or a panic is captured as a *core.SweepError in
// the SweepReport and the sweep continues with the next member.
//
// Indices are built once before the control loop starts and are read-only
// afterwards, so no locking is performed.
package capability
