package registry

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/loraroute/loraroute-go/pkg/auth"
	"github.com/loraroute/loraroute-go/pkg/lorafield"
	"github.com/loraroute/loraroute-go/pkg/notify"
	"github.com/loraroute/loraroute-go/pkg/route"
	"github.com/loraroute/loraroute-go/pkg/subnet"
)

var (
	testOwner = auth.PublicKey{0x01, 0x02}
	testPayer = auth.PublicKey{0x03, 0x04}
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	return New(notify.NewHub())
}

// drainRouteEvents returns the events currently buffered on the
// subscriber without blocking.
func drainRouteEvents(sub *notify.Subscriber[notify.RouteEvent]) []notify.RouteEvent {
	var events []notify.RouteEvent
	for {
		select {
		case ev := <-sub.Events():
			events = append(events, ev)
		default:
			return events
		}
	}
}

func drainFilterEvents(sub *notify.Subscriber[notify.FilterEvent]) []notify.FilterEvent {
	var events []notify.FilterEvent
	for {
		select {
		case ev := <-sub.Events():
			events = append(events, ev)
		default:
			return events
		}
	}
}

func TestCreateHeliumOrg(t *testing.T) {
	t.Run("FirstAllocation", func(t *testing.T) {
		reg := newTestRegistry(t)

		org, err := reg.CreateHeliumOrg(testOwner, testPayer, 8)
		if err != nil {
			t.Fatalf("CreateHeliumOrg: %v", err)
		}
		if org.OUI != 1 {
			t.Errorf("first OUI: got %d, want 1", org.OUI)
		}
		if len(org.Constraints) != 1 {
			t.Fatalf("constraints: got %d, want 1", len(org.Constraints))
		}
		want := subnet.Constraint{Start: 0xFC014C00, End: 0xFC014C07}
		if org.Constraints[0] != want {
			t.Errorf("constraint: got %s, want %s", org.Constraints[0], want)
		}
	})

	t.Run("SequentialBlocks", func(t *testing.T) {
		reg := newTestRegistry(t)

		first, err := reg.CreateHeliumOrg(testOwner, testPayer, 16)
		if err != nil {
			t.Fatalf("first CreateHeliumOrg: %v", err)
		}
		second, err := reg.CreateHeliumOrg(testOwner, testPayer, 8)
		if err != nil {
			t.Fatalf("second CreateHeliumOrg: %v", err)
		}
		if got := first.Constraints[0].End + 1; got != second.Constraints[0].Start {
			t.Errorf("blocks not adjacent: first ends %s, second starts %s",
				first.Constraints[0].End, second.Constraints[0].Start)
		}
	})

	t.Run("InvalidCount", func(t *testing.T) {
		reg := newTestRegistry(t)

		for _, count := range []uint32{0, 1, 7, 12} {
			if _, err := reg.CreateHeliumOrg(testOwner, testPayer, count); !errors.Is(err, ErrInvalidDevaddrCount) {
				t.Errorf("count %d: got %v, want ErrInvalidDevaddrCount", count, err)
			}
		}
	})

	t.Run("SpaceExhausted", func(t *testing.T) {
		// The default Helium NetID is type 6 with 10 address bits,
		// so the whole space is 1024 addresses.
		reg := newTestRegistry(t)

		if _, err := reg.CreateHeliumOrg(testOwner, testPayer, 1024); err != nil {
			t.Fatalf("allocating full space: %v", err)
		}
		if _, err := reg.CreateHeliumOrg(testOwner, testPayer, 8); !errors.Is(err, ErrHeliumSpaceExhausted) {
			t.Errorf("got %v, want ErrHeliumSpaceExhausted", err)
		}
	})
}

func TestCreateRoamerOrg(t *testing.T) {
	reg := newTestRegistry(t)

	org, err := reg.CreateRoamerOrg(testOwner, testPayer, 0x000024)
	if err != nil {
		t.Fatalf("CreateRoamerOrg: %v", err)
	}
	want := subnet.Constraint{Start: 0x48000000, End: 0x49FFFFFF}
	if len(org.Constraints) != 1 || org.Constraints[0] != want {
		t.Errorf("constraints: got %v, want [%s]", org.Constraints, want)
	}
}

func TestOUIUniqueness(t *testing.T) {
	const n = 32
	reg := newTestRegistry(t)

	ouis := make([]uint64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			org, err := reg.CreateHeliumOrg(testOwner, testPayer, 8)
			if err != nil {
				t.Errorf("CreateHeliumOrg: %v", err)
				return
			}
			ouis[i] = org.OUI
		}()
	}
	wg.Wait()

	seen := make(map[uint64]bool, n)
	for _, oui := range ouis {
		if seen[oui] {
			t.Fatalf("duplicate OUI %d", oui)
		}
		seen[oui] = true
	}
	for oui := uint64(1); oui <= n; oui++ {
		if !seen[oui] {
			t.Errorf("gap in OUI sequence: %d never assigned", oui)
		}
	}
}

func TestGrantConstraint(t *testing.T) {
	reg := newTestRegistry(t)
	org, err := reg.CreateHeliumOrg(testOwner, testPayer, 8)
	if err != nil {
		t.Fatalf("CreateHeliumOrg: %v", err)
	}

	extra := subnet.Constraint{Start: 0x11000000, End: 0x110000FF}
	updated, err := reg.GrantConstraint(org.OUI, extra)
	if err != nil {
		t.Fatalf("GrantConstraint: %v", err)
	}
	if len(updated.Constraints) != 2 {
		t.Fatalf("constraints: got %d, want 2", len(updated.Constraints))
	}
	if updated.Constraints[1] != extra {
		t.Errorf("appended constraint: got %s, want %s", updated.Constraints[1], extra)
	}

	if _, err := reg.GrantConstraint(99, extra); !errors.Is(err, ErrOrgNotFound) {
		t.Errorf("unknown oui: got %v, want ErrOrgNotFound", err)
	}
	backwards := subnet.Constraint{Start: 0x20, End: 0x10}
	if _, err := reg.GrantConstraint(org.OUI, backwards); !errors.Is(err, subnet.ErrBackwardsRange) {
		t.Errorf("backwards range: got %v, want ErrBackwardsRange", err)
	}
}

func TestRouteLifecycle(t *testing.T) {
	reg := newTestRegistry(t)
	org, err := reg.CreateRoamerOrg(testOwner, testPayer, 0x000024)
	if err != nil {
		t.Fatalf("CreateRoamerOrg: %v", err)
	}

	rt, err := reg.CreateRoute(org.OUI, route.Route{
		NetID:     0x000024,
		MaxCopies: 5,
		Active:    true,
		Server:    route.Server{Host: "lns.example.com", Port: 8080},
	})
	if err != nil {
		t.Fatalf("CreateRoute: %v", err)
	}
	if rt.ID == "" {
		t.Error("CreateRoute did not assign an ID")
	}
	if rt.Nonce != route.InitialNonce {
		t.Errorf("nonce: got %d, want %d", rt.Nonce, route.InitialNonce)
	}
	if rt.OUI != org.OUI {
		t.Errorf("oui: got %d, want %d", rt.OUI, org.OUI)
	}

	t.Run("UnknownOrg", func(t *testing.T) {
		if _, err := reg.CreateRoute(42, route.Route{}); !errors.Is(err, ErrOrgNotFound) {
			t.Errorf("got %v, want ErrOrgNotFound", err)
		}
	})

	t.Run("Get", func(t *testing.T) {
		got, err := reg.GetRoute(rt.ID)
		if err != nil {
			t.Fatalf("GetRoute: %v", err)
		}
		if got.ID != rt.ID || got.Server.Host != "lns.example.com" {
			t.Errorf("GetRoute returned %+v", got)
		}
		if _, err := reg.GetRoute("missing"); !errors.Is(err, ErrRouteNotFound) {
			t.Errorf("missing id: got %v, want ErrRouteNotFound", err)
		}
	})

	t.Run("Update", func(t *testing.T) {
		mod := rt
		mod.MaxCopies = 9
		mod.OUI = 777        // must be ignored
		mod.NetID = 0xC00053 // must be ignored
		mod.Nonce = 100      // must be ignored

		updated, err := reg.UpdateRoute(mod)
		if err != nil {
			t.Fatalf("UpdateRoute: %v", err)
		}
		if updated.MaxCopies != 9 {
			t.Errorf("max copies: got %d, want 9", updated.MaxCopies)
		}
		if updated.OUI != org.OUI || updated.NetID != 0x000024 {
			t.Errorf("immutable fields changed: oui=%d netid=%s", updated.OUI, updated.NetID)
		}
		if updated.Nonce != rt.Nonce+1 {
			t.Errorf("nonce: got %d, want %d", updated.Nonce, rt.Nonce+1)
		}
	})

	t.Run("List", func(t *testing.T) {
		list, err := reg.ListRoutes(org.OUI)
		if err != nil {
			t.Fatalf("ListRoutes: %v", err)
		}
		if len(list) != 1 {
			t.Errorf("routes: got %d, want 1", len(list))
		}
		if _, err := reg.ListRoutes(42); !errors.Is(err, ErrOrgNotFound) {
			t.Errorf("unknown oui: got %v, want ErrOrgNotFound", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if _, err := reg.DeleteRoute(rt.ID); err != nil {
			t.Fatalf("DeleteRoute: %v", err)
		}
		if _, err := reg.GetRoute(rt.ID); !errors.Is(err, ErrRouteNotFound) {
			t.Errorf("after delete: got %v, want ErrRouteNotFound", err)
		}
		if _, err := reg.DeleteRoute(rt.ID); !errors.Is(err, ErrRouteNotFound) {
			t.Errorf("double delete: got %v, want ErrRouteNotFound", err)
		}
	})
}

func TestRouteCopiesNotReferences(t *testing.T) {
	reg := newTestRegistry(t)
	org, err := reg.CreateRoamerOrg(testOwner, testPayer, 0x000024)
	if err != nil {
		t.Fatalf("CreateRoamerOrg: %v", err)
	}

	proto := route.NewGwmp(route.RegionUS915, 1700)
	rt, err := reg.CreateRoute(org.OUI, route.Route{
		NetID:  0x000024,
		Server: route.Server{Host: "gwmp.example.com", Port: 1700, Protocol: &proto},
	})
	if err != nil {
		t.Fatalf("CreateRoute: %v", err)
	}

	t.Run("InputDetachedOnCreate", func(t *testing.T) {
		if err := rt.Server.GwmpAddMapping(route.GwmpMap{route.RegionEU868: 9999}); err != nil {
			t.Fatalf("GwmpAddMapping: %v", err)
		}
		stored, err := reg.GetRoute(rt.ID)
		if err != nil {
			t.Fatalf("GetRoute: %v", err)
		}
		if _, ok := stored.Server.Protocol.Gwmp.Mapping[route.RegionEU868]; ok {
			t.Error("mutating the creator's copy reached stored state")
		}
	})

	t.Run("GetDetached", func(t *testing.T) {
		got, err := reg.GetRoute(rt.ID)
		if err != nil {
			t.Fatalf("GetRoute: %v", err)
		}
		if err := got.Server.GwmpAddMapping(route.GwmpMap{route.RegionAU915: 1702}); err != nil {
			t.Fatalf("GwmpAddMapping: %v", err)
		}
		again, err := reg.GetRoute(rt.ID)
		if err != nil {
			t.Fatalf("GetRoute: %v", err)
		}
		if _, ok := again.Server.Protocol.Gwmp.Mapping[route.RegionAU915]; ok {
			t.Error("mutating a fetched route reached stored state")
		}
	})

	t.Run("ListDetached", func(t *testing.T) {
		list, err := reg.ListRoutes(org.OUI)
		if err != nil {
			t.Fatalf("ListRoutes: %v", err)
		}
		if len(list) != 1 {
			t.Fatalf("routes: got %d, want 1", len(list))
		}
		if err := list[0].Server.GwmpAddMapping(route.GwmpMap{route.RegionAS923_1: 1703}); err != nil {
			t.Fatalf("GwmpAddMapping: %v", err)
		}
		stored, err := reg.GetRoute(rt.ID)
		if err != nil {
			t.Fatalf("GetRoute: %v", err)
		}
		if _, ok := stored.Server.Protocol.Gwmp.Mapping[route.RegionAS923_1]; ok {
			t.Error("mutating a listed route reached stored state")
		}
	})

	t.Run("InputDetachedOnUpdate", func(t *testing.T) {
		mod, err := reg.GetRoute(rt.ID)
		if err != nil {
			t.Fatalf("GetRoute: %v", err)
		}
		if _, err := reg.UpdateRoute(mod); err != nil {
			t.Fatalf("UpdateRoute: %v", err)
		}
		if err := mod.Server.GwmpAddMapping(route.GwmpMap{route.RegionEU868: 1}); err != nil {
			t.Fatalf("GwmpAddMapping: %v", err)
		}
		stored, err := reg.GetRoute(rt.ID)
		if err != nil {
			t.Fatalf("GetRoute: %v", err)
		}
		if _, ok := stored.Server.Protocol.Gwmp.Mapping[route.RegionEU868]; ok {
			t.Error("mutating the updater's copy reached stored state")
		}
	})
}

func TestListOrgsOrdered(t *testing.T) {
	reg := newTestRegistry(t)
	for i := 0; i < 5; i++ {
		if _, err := reg.CreateHeliumOrg(testOwner, testPayer, 8); err != nil {
			t.Fatalf("CreateHeliumOrg: %v", err)
		}
	}

	orgs := reg.ListOrgs()
	if len(orgs) != 5 {
		t.Fatalf("orgs: got %d, want 5", len(orgs))
	}
	for i, org := range orgs {
		if org.OUI != uint64(i+1) {
			t.Errorf("orgs[%d].OUI = %d, want %d", i, org.OUI, i+1)
		}
	}
}

func TestConstraintEnforcement(t *testing.T) {
	reg := newTestRegistry(t)
	org, err := reg.CreateRoamerOrg(testOwner, testPayer, 0x000024)
	if err != nil {
		t.Fatalf("CreateRoamerOrg: %v", err)
	}
	rt, err := reg.CreateRoute(org.OUI, route.Route{NetID: 0x000024})
	if err != nil {
		t.Fatalf("CreateRoute: %v", err)
	}
	sub := reg.WatchRoutes()
	defer sub.Close()

	t.Run("Within", func(t *testing.T) {
		added, err := reg.AddDevaddrRange(route.DevaddrRange{
			RouteID: rt.ID, Start: 0x48000000, End: 0x480000FF,
		})
		if err != nil || !added {
			t.Fatalf("in-range add: got (%v, %v), want (true, nil)", added, err)
		}
		if events := drainRouteEvents(sub); len(events) != 1 {
			t.Errorf("events after in-range add: got %d, want 1", len(events))
		}
	})

	t.Run("Outside", func(t *testing.T) {
		added, err := reg.AddDevaddrRange(route.DevaddrRange{
			RouteID: rt.ID, Start: 0x4A000000, End: 0x4A0000FF,
		})
		if !errors.Is(err, ErrOutOfConstraint) {
			t.Fatalf("out-of-range add: got %v, want ErrOutOfConstraint", err)
		}
		if added {
			t.Error("out-of-range add reported stored")
		}
		if len(reg.ListDevaddrRanges(rt.ID)) != 1 {
			t.Error("declined range was stored")
		}
		if events := drainRouteEvents(sub); len(events) != 0 {
			t.Errorf("events after declined add: got %d, want 0", len(events))
		}
	})

	t.Run("Straddling", func(t *testing.T) {
		// Starts inside the allocation but ends past it.
		_, err := reg.AddDevaddrRange(route.DevaddrRange{
			RouteID: rt.ID, Start: 0x49FFFF00, End: 0x4A000010,
		})
		if !errors.Is(err, ErrOutOfConstraint) {
			t.Errorf("straddling add: got %v, want ErrOutOfConstraint", err)
		}
	})

	t.Run("Backwards", func(t *testing.T) {
		_, err := reg.AddDevaddrRange(route.DevaddrRange{
			RouteID: rt.ID, Start: 0x48000010, End: 0x48000000,
		})
		if !errors.Is(err, subnet.ErrBackwardsRange) {
			t.Errorf("backwards add: got %v, want ErrBackwardsRange", err)
		}
	})

	t.Run("UnknownRoute", func(t *testing.T) {
		_, err := reg.AddDevaddrRange(route.DevaddrRange{
			RouteID: "missing", Start: 0x48000000, End: 0x48000001,
		})
		if !errors.Is(err, ErrRouteNotFound) {
			t.Errorf("unknown route: got %v, want ErrRouteNotFound", err)
		}
	})

	t.Run("SecondConstraint", func(t *testing.T) {
		extra := subnet.Constraint{Start: 0x11000000, End: 0x110000FF}
		if _, err := reg.GrantConstraint(org.OUI, extra); err != nil {
			t.Fatalf("GrantConstraint: %v", err)
		}
		added, err := reg.AddDevaddrRange(route.DevaddrRange{
			RouteID: rt.ID, Start: 0x11000000, End: 0x1100000F,
		})
		if err != nil || !added {
			t.Errorf("add within granted constraint: got (%v, %v), want (true, nil)", added, err)
		}
	})
}

func TestEuiPairIdempotency(t *testing.T) {
	reg := newTestRegistry(t)
	org, _ := reg.CreateHeliumOrg(testOwner, testPayer, 8)
	rt, err := reg.CreateRoute(org.OUI, route.Route{NetID: 0xC00053})
	if err != nil {
		t.Fatalf("CreateRoute: %v", err)
	}
	sub := reg.WatchRoutes()
	defer sub.Close()

	pair := route.EuiPair{RouteID: rt.ID, AppEUI: 0x6081F9A4E1A1D01D, DevEUI: 0x6081F9C8B7F3A0FF}
	if !reg.AddEuiPair(pair) {
		t.Error("first add: got false, want true")
	}
	if reg.AddEuiPair(pair) {
		t.Error("duplicate add: got true, want false")
	}
	if got := len(drainRouteEvents(sub)); got != 1 {
		t.Errorf("events after duplicate add: got %d, want 1", got)
	}
	if got := len(reg.ListEuiPairs(rt.ID)); got != 1 {
		t.Errorf("pairs stored: got %d, want 1", got)
	}

	if !reg.RemoveEuiPair(pair) {
		t.Error("remove existing: got false, want true")
	}
	if reg.RemoveEuiPair(pair) {
		t.Error("remove absent: got true, want false")
	}
	if got := len(drainRouteEvents(sub)); got != 1 {
		t.Errorf("events after absent remove: got %d, want 1", got)
	}
}

func TestCascadeDelete(t *testing.T) {
	reg := newTestRegistry(t)
	org, err := reg.CreateRoamerOrg(testOwner, testPayer, 0x000024)
	if err != nil {
		t.Fatalf("CreateRoamerOrg: %v", err)
	}
	rt, err := reg.CreateRoute(org.OUI, route.Route{NetID: 0x000024})
	if err != nil {
		t.Fatalf("CreateRoute: %v", err)
	}

	pairs := []route.EuiPair{
		{RouteID: rt.ID, AppEUI: 0x01, DevEUI: 0x0A},
		{RouteID: rt.ID, AppEUI: 0x02, DevEUI: 0x0B},
	}
	for _, p := range pairs {
		if !reg.AddEuiPair(p) {
			t.Fatalf("AddEuiPair(%v) failed", p)
		}
	}
	if _, err := reg.AddDevaddrRange(route.DevaddrRange{
		RouteID: rt.ID, Start: 0x48000000, End: 0x480000FF,
	}); err != nil {
		t.Fatalf("AddDevaddrRange: %v", err)
	}

	sub := reg.WatchRoutes()
	defer sub.Close()

	if _, err := reg.DeleteRoute(rt.ID); err != nil {
		t.Fatalf("DeleteRoute: %v", err)
	}

	if got := len(reg.ListEuiPairs(rt.ID)); got != 0 {
		t.Errorf("pairs after delete: got %d, want 0", got)
	}
	if got := len(reg.ListDevaddrRanges(rt.ID)); got != 0 {
		t.Errorf("ranges after delete: got %d, want 0", got)
	}

	events := drainRouteEvents(sub)
	if len(events) != 4 {
		t.Fatalf("cascade events: got %d, want 4 (2 pairs, 1 range, 1 route)", len(events))
	}
	var pairRemovals, rangeRemovals, routeRemovals int
	for _, ev := range events {
		if ev.Action != notify.ActionRemove {
			t.Errorf("event action: got %s, want remove", ev.Action)
		}
		switch {
		case ev.EuiPair != nil:
			pairRemovals++
		case ev.DevaddrRange != nil:
			rangeRemovals++
		case ev.Route != nil:
			routeRemovals++
		}
	}
	if pairRemovals != 2 || rangeRemovals != 1 || routeRemovals != 1 {
		t.Errorf("removal mix: pairs=%d ranges=%d routes=%d", pairRemovals, rangeRemovals, routeRemovals)
	}
	// The route removal must come last so a consumer tearing down
	// per-route state sees bindings vanish first.
	if events[len(events)-1].Route == nil {
		t.Error("route removal was not the final event")
	}
}

func TestSessionKeyFilters(t *testing.T) {
	reg := newTestRegistry(t)
	org, _ := reg.CreateHeliumOrg(testOwner, testPayer, 8)
	sub := reg.WatchFilters()
	defer sub.Close()

	f := route.SessionKeyFilter{
		OUI:        org.OUI,
		Devaddr:    0xFC014C00,
		SessionKey: "F70CA6E95FE2E0A2D1B2E497F1D54F21",
		MaxCopies:  3,
	}
	if !reg.AddFilter(f) {
		t.Error("first add: got false, want true")
	}

	// Identity ignores MaxCopies.
	dup := f
	dup.MaxCopies = 7
	if reg.AddFilter(dup) {
		t.Error("add with same identity: got true, want false")
	}

	if got := len(reg.ListFilters(org.OUI)); got != 1 {
		t.Errorf("filters: got %d, want 1", got)
	}
	if got := reg.GetFilters(org.OUI, 0xFC014C00); len(got) != 1 {
		t.Errorf("GetFilters: got %d, want 1", len(got))
	}
	if got := reg.GetFilters(org.OUI, 0xFC014C01); len(got) != 0 {
		t.Errorf("GetFilters other addr: got %d, want 0", len(got))
	}

	if !reg.RemoveFilter(f) {
		t.Error("remove existing: got false, want true")
	}
	if reg.RemoveFilter(f) {
		t.Error("remove absent: got true, want false")
	}

	events := drainFilterEvents(sub)
	if len(events) != 2 {
		t.Fatalf("filter events: got %d, want 2", len(events))
	}
	if events[0].Action != notify.ActionAdd || events[1].Action != notify.ActionRemove {
		t.Errorf("event order: got %s then %s", events[0].Action, events[1].Action)
	}
}

func TestWatchSeesOnlyLaterEvents(t *testing.T) {
	reg := newTestRegistry(t)
	org, err := reg.CreateRoamerOrg(testOwner, testPayer, 0x000024)
	if err != nil {
		t.Fatalf("CreateRoamerOrg: %v", err)
	}

	if _, err := reg.CreateRoute(org.OUI, route.Route{NetID: 0x000024}); err != nil {
		t.Fatalf("CreateRoute: %v", err)
	}

	sub := reg.WatchRoutes()
	defer sub.Close()

	after, err := reg.CreateRoute(org.OUI, route.Route{NetID: 0x000024})
	if err != nil {
		t.Fatalf("CreateRoute: %v", err)
	}

	events := drainRouteEvents(sub)
	if len(events) != 1 {
		t.Fatalf("events: got %d, want 1", len(events))
	}
	if events[0].Route == nil || events[0].Route.ID != after.ID {
		t.Errorf("event route: got %+v, want id %s", events[0].Route, after.ID)
	}
}

func TestConcurrentMutations(t *testing.T) {
	reg := newTestRegistry(t)
	org, err := reg.CreateRoamerOrg(testOwner, testPayer, 0x000024)
	if err != nil {
		t.Fatalf("CreateRoamerOrg: %v", err)
	}
	rt, err := reg.CreateRoute(org.OUI, route.Route{NetID: 0x000024})
	if err != nil {
		t.Fatalf("CreateRoute: %v", err)
	}

	const workers = 8
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				pair := route.EuiPair{
					RouteID: rt.ID,
					AppEUI:  lorafield.EUI(w),
					DevEUI:  lorafield.EUI(i),
				}
				reg.AddEuiPair(pair)
				reg.ListEuiPairs(rt.ID)
				if i%2 == 0 {
					reg.RemoveEuiPair(pair)
				}
			}
		}()
	}
	wg.Wait()

	want := workers * 25
	if got := len(reg.ListEuiPairs(rt.ID)); got != want {
		t.Errorf("pairs after concurrent churn: got %d, want %d", got, want)
	}
}

func TestWithHeliumNetIDOverride(t *testing.T) {
	// A type 3 NetID gives 17 address bits.
	reg := New(notify.NewHub(), WithHeliumNetID(lorafield.NetID(0x600020)))

	org, err := reg.CreateHeliumOrg(testOwner, testPayer, 8)
	if err != nil {
		t.Fatalf("CreateHeliumOrg: %v", err)
	}
	want := subnet.Constraint{Start: 0xE0400000, End: 0xE0400007}
	if org.Constraints[0] != want {
		t.Errorf("constraint: got %s, want %s", org.Constraints[0], want)
	}
}

func ExampleRegistry_AddDevaddrRange() {
	reg := New(notify.NewHub())
	org, _ := reg.CreateRoamerOrg(testOwner, testPayer, 0x000024)
	rt, _ := reg.CreateRoute(org.OUI, route.Route{NetID: 0x000024})

	added, err := reg.AddDevaddrRange(route.DevaddrRange{
		RouteID: rt.ID, Start: 0x48000000, End: 0x480000FF,
	})
	fmt.Println(added, err)
	// Output: true <nil>
}
