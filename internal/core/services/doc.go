// Package services implements the core application logic behind the
// driving ports: the search session state machine, the refinement
// command interpreter, the result organiser, the suggestion generator,
// and the recent-search ledger.
package services
