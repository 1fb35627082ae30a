// Package ports holds the interfaces the roster layers meet at.
//
// Handlers call RosterService and FormService. Services persist through
// RosterRepository, which sits on a DocumentBackend that each store adapter
// implements. rosterctl talks to the server through RosterClient.
package ports
