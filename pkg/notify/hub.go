package notify

import (
	"github.com/loraroute/loraroute-go/pkg/route"
)

// Action tags an event as an addition or a removal.
type Action uint8

const (
	// ActionAdd marks entity creation or binding addition.
	ActionAdd Action = iota
	// ActionRemove marks entity deletion or binding removal.
	ActionRemove
)

// String returns the action name.
func (a Action) String() string {
	if a == ActionRemove {
		return "remove"
	}
	return "add"
}

// RouteEvent is one change on the route topic. Exactly one of Route,
// EuiPair and DevaddrRange is set.
type RouteEvent struct {
	Action       Action
	Route        *route.Route
	EuiPair      *route.EuiPair
	DevaddrRange *route.DevaddrRange
}

// FilterEvent is one change on the filter topic.
type FilterEvent struct {
	Action Action
	Filter route.SessionKeyFilter
}

// Hub owns the two broadcast topics. One hub is constructed at process
// start and injected into the registry; nothing here is a package global.
type Hub struct {
	routes  *Topic[RouteEvent]
	filters *Topic[FilterEvent]
}

// NewHub creates a hub with the default per-subscriber buffer.
func NewHub() *Hub {
	return NewHubWithBuffer(DefaultBuffer)
}

// NewHubWithBuffer creates a hub with a custom per-subscriber buffer depth.
func NewHubWithBuffer(buffer int) *Hub {
	return &Hub{
		routes:  NewTopic[RouteEvent](buffer),
		filters: NewTopic[FilterEvent](buffer),
	}
}

// Routes returns the route-change topic.
func (h *Hub) Routes() *Topic[RouteEvent] {
	return h.routes
}

// Filters returns the filter-change topic.
func (h *Hub) Filters() *Topic[FilterEvent] {
	return h.filters
}

// PublishRoute publishes a route add/remove event.
func (h *Hub) PublishRoute(action Action, r route.Route) {
	h.routes.Publish(RouteEvent{Action: action, Route: &r})
}

// PublishEuiPair publishes an EUI pair add/remove event.
func (h *Hub) PublishEuiPair(action Action, pair route.EuiPair) {
	h.routes.Publish(RouteEvent{Action: action, EuiPair: &pair})
}

// PublishDevaddrRange publishes a DevAddr range add/remove event.
func (h *Hub) PublishDevaddrRange(action Action, r route.DevaddrRange) {
	h.routes.Publish(RouteEvent{Action: action, DevaddrRange: &r})
}

// PublishFilter publishes a session key filter add/remove event.
func (h *Hub) PublishFilter(action Action, filter route.SessionKeyFilter) {
	h.filters.Publish(FilterEvent{Action: action, Filter: filter})
}
