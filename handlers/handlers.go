package handlers

import "food-delivery-api/auth"

var store *auth.Store

// Init wires the shared auth store used by the session, user, and reset
// handlers. Called once from route setup.
func Init(s *auth.Store) {
	store = s
}
