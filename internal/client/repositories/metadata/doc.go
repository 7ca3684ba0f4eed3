// Package metadata persists small client-side values in the local SQLite
// database, keyed by name. The session store keeps its durable credential
// record here.
//
// Contract
//
//   - Get returns (nil, nil) when the key is absent.
//   - Set upserts.
//   - Delete is idempotent.
//
// The table is created by the embedded migrations in internal/client/migrations.
package metadata
