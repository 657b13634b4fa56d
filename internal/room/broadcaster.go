package room

// Broadcaster fans a room event out to every live subscriber. The websocket
// hub implements it; tests plug in recorders.
type Broadcaster interface {
	Broadcast(roomCode string, action string, data interface{})
}

// NopBroadcaster drops every event. A Manager uses it until a real hub is
// attached.
type NopBroadcaster struct{}

// Broadcast implements Broadcaster.
func (NopBroadcaster) Broadcast(string, string, interface{}) {}
