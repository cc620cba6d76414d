package broadcast

// Outbound event names
const (
	EventConnected     = "on_connect"
	EventUpdateRoom    = "update_room"
	EventUpdateColours = "update_colours"
	EventSendHome      = "send_home"
	EventPlayerJoined  = "player_joined"
	EventPlayerLeft    = "player_left"
	EventError         = "error"
)
