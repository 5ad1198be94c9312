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

	"gnunet/util"
)

// TestBlacklistStaticRule checks that a statically configured rule denies
// without ever asking a decision client.
func TestBlacklistStaticRule(t *testing.T) {
	asked := false
	b := NewBlacklist(func(clientID int, peer *util.PeerID, transport string) {
		asked = true
	})
	peer := testPeer(1)
	b.AddPeer(peer, "")

	var got BlacklistDecision
	b.TestAllowed(peer, "tcp", func(d BlacklistDecision) { got = d })
	if got != BlacklistDenied {
		t.Fatalf("expected denied, got %v", got)
	}
	if asked {
		t.Fatal("decision client should not be consulted once a static rule denies")
	}
}

// TestBlacklistNoClientsAllows checks that with no registered deciders
// and no matching rule, the request is allowed synchronously.
func TestBlacklistNoClientsAllows(t *testing.T) {
	b := NewBlacklist(func(clientID int, peer *util.PeerID, transport string) {
		t.Fatal("ask should not be called with no registered clients")
	})
	peer := testPeer(1)

	var got BlacklistDecision
	b.TestAllowed(peer, "tcp", func(d BlacklistDecision) { got = d })
	if got != BlacklistAllowed {
		t.Fatalf("expected allowed, got %v", got)
	}
}

// TestBlacklistDenyWins is scenario S5: two decision clients, one allows,
// one denies; the overall result is deny.
func TestBlacklistDenyWins(t *testing.T) {
	peer := testPeer(0x22)
	var b *Blacklist
	b = NewBlacklist(func(clientID int, p *util.PeerID, transport string) {
		// client 1 allows, client 2 denies
		if clientID == 1 {
			b_reply(b, 1, p, true)
		} else {
			b_reply(b, 2, p, false)
		}
	})
	b.RegisterClient(1)
	b.RegisterClient(2)

	var got BlacklistDecision
	done := false
	b.TestAllowed(peer, "tcp", func(d BlacklistDecision) {
		got = d
		done = true
	})
	if !done {
		t.Fatal("callback did not fire")
	}
	if got != BlacklistDenied {
		t.Fatalf("expected denied once any client denies, got %v", got)
	}
}

// b_reply is a small helper so the ask callback above can call back into
// Blacklist.Reply while TestAllowed is still on the stack, mirroring how
// a real client's BLACKLIST_REPLY would be dispatched.
func b_reply(b *Blacklist, clientID int, peer *util.PeerID, allowed bool) {
	b.Reply(clientID, peer, allowed)
}

// TestBlacklistDisconnectTreatedAsAllow checks that a decision client
// which disconnects mid-query resolves as "allow" for its pending query.
func TestBlacklistDisconnectTreatedAsAllow(t *testing.T) {
	peer := testPeer(3)
	b := NewBlacklist(func(clientID int, p *util.PeerID, transport string) {
		// neither client replies; client 2 disconnects instead
	})
	b.RegisterClient(1)
	b.RegisterClient(2)

	var got BlacklistDecision
	done := false
	b.TestAllowed(peer, "tcp", func(d BlacklistDecision) {
		got = d
		done = true
	})
	if done {
		t.Fatal("callback fired before all clients resolved")
	}
	b.Reply(1, peer, true)
	if done {
		t.Fatal("callback fired before client 2 resolved")
	}
	b.UnregisterClient(2)
	if !done {
		t.Fatal("disconnecting the last pending client should resolve the query")
	}
	if got != BlacklistAllowed {
		t.Fatalf("expected allowed (disconnect treated as allow), got %v", got)
	}
}
