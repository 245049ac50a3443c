// Package notify implements the registry's live-update fan-out.
//
// Two independent broadcast topics exist: the route topic carries route,
// EUI pair and DevAddr range add/remove events, the filter topic carries
// session key filter add/remove events. A subscriber observes only events
// published after it subscribed; there is no history replay. Consumers that
// need a full picture list first, then subscribe.
//
// # Slow Subscribers
//
// Publication never blocks the publisher. Each subscriber owns a bounded
// channel; when it is full the event is dropped for that subscriber and its
// lag counter advances. A subscriber that observes lag should resynchronize
// by re-listing rather than treat it as fatal.
//
// Closed subscribers are swept lazily on the next publish to the topic.
package notify
