package shared

import "github.com/google/uuid"

// Capability names a privileged action an actor may perform.
type Capability string

const (
	// CapabilityOverrideLock allows editing locked orders and toggling order locks.
	CapabilityOverrideLock Capability = "order:override_lock"
)

// Actor is the authenticated principal performing an operation.
type Actor struct {
	UserID       uuid.UUID
	Username     string
	capabilities map[Capability]struct{}
}

// NewActor creates an actor with the given capabilities.
func NewActor(userID uuid.UUID, username string, caps ...Capability) Actor {
	set := make(map[Capability]struct{}, len(caps))
	for _, c := range caps {
		set[c] = struct{}{}
	}
	return Actor{UserID: userID, Username: username, capabilities: set}
}

// Can reports whether the actor holds the given capability.
func (a Actor) Can(cap Capability) bool {
	_, ok := a.capabilities[cap]
	return ok
}
