package protocol

import (
	"fmt"

	"github.com/automoto/cyberia-client/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetPosition    uint = 10
	SyncIDNetDimensions  uint = 11
	SyncIDNetEntityState uint = 12
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and client before any network operations.
// No interpolation functions are registered: the client blends positions itself
// against its own receive clock.
func RegisterComponents() error {
	if err := esync.RegisterComponent(
		SyncIDNetPosition,
		netcomponents.NetPositionData{},
		netcomponents.NetPosition,
	); err != nil {
		return fmt.Errorf("register position: %w", err)
	}

	if err := esync.RegisterComponent(
		SyncIDNetDimensions,
		netcomponents.NetDimensionsData{},
		netcomponents.NetDimensions,
	); err != nil {
		return fmt.Errorf("register dimensions: %w", err)
	}

	if err := esync.RegisterComponent(
		SyncIDNetEntityState,
		netcomponents.NetEntityStateData{},
		netcomponents.NetEntityState,
	); err != nil {
		return fmt.Errorf("register entity state: %w", err)
	}

	return nil
}
