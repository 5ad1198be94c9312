// This file is part of gnunet-go, a GNUnet-implementation in Golang.
// Copyright (C) 2019-2022 Bernd Fix  >Y<
//
// gnunet-go is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// gnunet-go is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later

package transport

import (
	"testing"
	"time"

	"gnunet/message"
	"gnunet/util"
)

// TestManipulationZeroDelaySendsImmediately checks that with no delay
// configured, send bypasses the FIFO entirely.
func TestManipulationZeroDelaySendsImmediately(t *testing.T) {
	var sent *util.PeerID
	m := NewManipulation(func(peer *util.PeerID, msg message.Message, cont SendContinuation) {
		sent = peer
		cont(true, 1, 1)
	})
	peer := testPeer(1)
	msg := message.NewHelloMsg(peer)

	called := false
	m.Send(peer, msg, 10, time.Second, func(ok bool, bytesMsg, bytesPhysical uint32) {
		called = true
		if !ok {
			t.Fatal("expected success continuation")
		}
	})
	if sent == nil || !sent.Equals(peer) {
		t.Fatal("neighbour send was not invoked directly")
	}
	if !called {
		t.Fatal("continuation was not invoked")
	}
}

// TestManipulationFIFOOrder is scenario S4 in miniature: multiple queued
// sends to the same peer must be released to the neighbour facade in the
// order they were enqueued (§8 invariant 4).
func TestManipulationFIFOOrder(t *testing.T) {
	var order []int
	m := NewManipulation(func(peer *util.PeerID, msg message.Message, cont SendContinuation) {
		order = append(order, int(msg.Header().MsgSize))
		cont(true, 0, 0)
	})
	peer := testPeer(1)
	m.SetMetric(peer, 0, 30*time.Millisecond, nil)

	for _, size := range []int{10, 20, 30} {
		msg := message.NewHelloMsg(peer)
		msg.MsgSize = uint16(size)
		m.Send(peer, msg, uint32(size), time.Second, func(ok bool, bytesMsg, bytesPhysical uint32) {})
	}

	deadline := time.Now().Add(time.Second)
	for len(order) < 3 && time.Now().Before(deadline) {
		select {
		case <-m.Wake():
			m.Tick()
		case <-time.After(50 * time.Millisecond):
		}
	}
	if len(order) != 3 {
		t.Fatalf("expected 3 releases, got %d", len(order))
	}
	if order[0] != 10 || order[1] != 20 || order[2] != 30 {
		t.Fatalf("expected FIFO order [10 20 30], got %v", order)
	}
}

// TestManipulationPeerDisconnectDrainsFIFO checks that peer_disconnect
// fails every queued entry for that peer with a zero-byte continuation.
func TestManipulationPeerDisconnectDrainsFIFO(t *testing.T) {
	m := NewManipulation(func(peer *util.PeerID, msg message.Message, cont SendContinuation) {
		t.Fatal("neighbour send should never fire for a disconnected peer's queued entries")
	})
	peer := testPeer(2)
	m.SetMetric(peer, 0, time.Hour, nil)

	var gotOK bool
	var gotBytes uint32
	msg := message.NewHelloMsg(peer)
	msg.MsgSize = 32
	m.Send(peer, msg, 32, time.Second, func(ok bool, bytesMsg, bytesPhysical uint32) {
		gotOK = ok
		gotBytes = bytesPhysical
	})
	m.PeerDisconnect(peer)
	if gotOK {
		t.Fatal("expected failure continuation on peer disconnect")
	}
	if gotBytes != 0 {
		t.Fatalf("expected zero bytes-on-wire, got %d", gotBytes)
	}
}

// TestManipulationSetMetricGlobalRoundTrip checks the idempotence law
// from §8: setting then clearing the global delay restores the default.
func TestManipulationSetMetricGlobalRoundTrip(t *testing.T) {
	m := NewManipulation(func(peer *util.PeerID, msg message.Message, cont SendContinuation) {})
	zero := util.NewPeerID(nil)
	m.SetMetric(zero, 0, 100*time.Millisecond, nil)
	if m.global.delayOut != 100*time.Millisecond {
		t.Fatalf("expected global delayOut set, got %v", m.global.delayOut)
	}
	m.SetMetric(zero, 0, 0, nil)
	if m.global.delayOut != 0 {
		t.Fatalf("expected global delayOut restored to 0, got %v", m.global.delayOut)
	}
}
