// Package handler implements the HTTP handlers for the Carnet de Bord API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, trip.go, etc.) but all share the same Server struct so
// they can access its dependencies.
package handler

import (
	"github.com/cna-archives/carnet-bord/internal/domain"
	"github.com/cna-archives/carnet-bord/internal/logbook"
)

// LogbookServicer defines the business operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the real logbook.
type LogbookServicer interface {
	Vehicles() []domain.Vehicle
	Create(candidate domain.Trip) (domain.Trip, error)
	Get(id int) (domain.Trip, error)
	Update(id int, candidate domain.Trip) (domain.Trip, error)
	Delete(id int) error
	Query(f logbook.Filter) []domain.Trip
	Statistics() domain.Statistics
	Snapshot() domain.Snapshot
}

// SessionManager defines the authentication operations the handlers depend on.
// *auth.Sessions satisfies it.
type SessionManager interface {
	Login(password string) (string, error)
	Logout(token string)
}

// Server holds the dependencies shared by all endpoint methods.
// Wire it in main.go via Server.Routes.
type Server struct {
	logbook  LogbookServicer
	sessions SessionManager
}

// NewServer constructs the Server with all its dependencies.
func NewServer(logbook LogbookServicer, sessions SessionManager) *Server {
	return &Server{logbook: logbook, sessions: sessions}
}
