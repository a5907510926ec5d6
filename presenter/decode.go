package presenter

import (
	"time"

	"github.com/automoto/cyberia-client/shared/netcomponents"
	"github.com/automoto/cyberia-client/shared/netconfig"
	"github.com/yohamta/donburi/features/math"
)

// FromComponents builds a snapshot from the deserialized components of one
// synced entity. Entities without a position are not presentable and report
// false. Without a server timestamp the receive time stands in.
func FromComponents(id netconfig.EntityID, comps []any, receivedAt time.Time) (EntitySnapshot, bool) {
	s := EntitySnapshot{
		ID:         id,
		ServerTime: receivedAt.UnixMilli(),
		ReceivedAt: receivedAt,
	}
	hasPos := false
	for _, c := range comps {
		switch v := c.(type) {
		case netcomponents.NetPositionData:
			s.Position = math.Vec2{X: v.X, Y: v.Y}
			hasPos = true
		case netcomponents.NetDimensionsData:
			s.Width, s.Height = v.W, v.H
		case netcomponents.NetEntityStateData:
			s.Layers = v.Layers
			if v.Explicit && v.Direction.Valid() {
				s.Direction, s.Mode, s.Explicit = v.Direction, v.Mode, true
			}
			if v.Timestamp > 0 {
				s.ServerTime = v.Timestamp
			}
		}
	}
	return s, hasPos
}
