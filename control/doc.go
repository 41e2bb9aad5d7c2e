// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics, connection journal, and debug introspection layer
// for the streamix server.
//
// Provides concurrent-safe state handling primitives including:
//   - Counter registry with atomic increments and snapshot reads
//   - Bounded FIFO journal of recent per-connection outcomes
//   - Debug hook and probe registration
package control
