// Package session holds the client's single authenticated session: the bearer
// credential issued by the backend and the identity derived from it.
//
// # Lifecycle
//
// The composition root creates exactly one Store per process, calls
// Initialize once to restore a session persisted by a previous run, and calls
// Teardown on exit. Every other component receives the Store explicitly and
// reads it through IsActive, CurrentIdentity and Credential.
//
// # States
//
// A Store is either Anonymous or Authenticated. Login moves it to
// Authenticated (replacing any previous session); Logout and a failed restore
// leave it Anonymous. Credential and identity are always set and cleared
// together under one lock, so readers never see one without the other.
//
// # Durable record
//
// The credential is persisted under common.CredentialRecordKey. It is written
// on Login, erased on Logout, read once by Initialize and erased there when it
// no longer decodes or has expired. The Store is the only writer.
//
// # Expiration
//
// Expiration is checked when a credential enters the Store (Initialize and
// Login). It is not re-checked on reads: a credential that expires mid-run
// stays active until the backend rejects a request.
package session
