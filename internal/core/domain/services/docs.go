// Package services provides domain services that work across aggregates.
//
// The package includes:
//   - Geofence: finds the delivery zone containing a coordinate
//   - HandoffComposer: renders a placed order as the chat message sent to the store
package services
