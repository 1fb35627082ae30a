// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
//
// RosterService owns the create pipeline (trim, validate, stage, commit).
// FormController drives the HTML form on top of it.
package app
