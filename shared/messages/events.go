package messages

// TeleportEvent is broadcast when an entity is moved without travelling. The
// new position arrives with the entity's next world snapshot, which clients
// snap to instead of sliding.
type TeleportEvent struct {
	NetworkID uint
}

// DespawnEvent is broadcast when an entity is removed
type DespawnEvent struct {
	NetworkID uint
}
