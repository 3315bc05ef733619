package autologic

import "github.com/joshuavictorchen/autologic-sub000/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types
// and interfaces via type aliases. Internal packages depend on the
// types subpackage directly, which avoids import cycles while users
// still get autologic.Roster, autologic.Outcome, etc.
type (
	Participant    = types.Participant
	Category       = types.Category
	Heat           = types.Heat
	Roster         = types.Roster
	Qualifications = types.Qualifications
	Role           = types.Role
	Assignment     = types.Assignment
	RoleMinima     = types.RoleMinima
	Rules          = types.Rules
	RoleShortfall  = types.RoleShortfall
	Progress       = types.Progress
	Outcome        = types.Outcome
)

// Re-export interfaces from the types subpackage for convenience.
type (
	RoleStrategy      = types.RoleStrategy
	ParticipantSource = types.ParticipantSource
	MetricsCollector  = types.MetricsCollector
	Logger            = types.Logger
	Hooks             = types.Hooks
)

// Re-export Outcome constants from the types subpackage.
const (
	OutcomeAccepted   = types.OutcomeAccepted
	OutcomeExhausted  = types.OutcomeExhausted
	OutcomeCancelled  = types.OutcomeCancelled
	OutcomeInfeasible = types.OutcomeInfeasible
)

// Re-export Role constants from the types subpackage.
const (
	RoleInstructor = types.RoleInstructor
	RoleTiming     = types.RoleTiming
	RoleGrid       = types.RoleGrid
	RoleStart      = types.RoleStart
	RoleCaptain    = types.RoleCaptain
)
