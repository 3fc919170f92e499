// Package services implements the driving port interfaces.
// Services hold the editing session around the domain grid and
// orchestrate calls to driven ports (adapters).
//
// Services are pure Go with no CGO dependencies.
package services
