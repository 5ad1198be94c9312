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

	"gnunet/enums"
	"gnunet/util"
)

func testPeer(b byte) *util.PeerID {
	buf := make([]byte, 32)
	buf[0] = b
	return util.NewPeerID(buf)
}

func TestATSAddAddressRejectsUnspecifiedNetwork(t *testing.T) {
	r := NewAddressRegistry(func(Session) enums.NetworkType { return enums.NetworkUnspecified })
	peer := testPeer(1)
	addr := util.NewAddress("tcp", []byte{1, 2, 3, 4, 0, 80})
	if err := r.AddAddress(peer, addr, nil, nil); err != ErrATSBadNetwork {
		t.Fatalf("expected ErrATSBadNetwork, got %v", err)
	}
}

func TestATSAddAddressRejectsInboundWithoutSession(t *testing.T) {
	r := NewAddressRegistry(nil)
	peer := testPeer(1)
	addr := util.NewAddress("tcp", []byte{1, 2, 3, 4, 0, 80})
	addr.Options |= enums.AddressOptionInbound
	if err := r.AddAddress(peer, addr, nil, nil); err != ErrATSInboundNoSess {
		t.Fatalf("expected ErrATSInboundNoSess, got %v", err)
	}
}

func TestATSAddAddressRejectsDuplicate(t *testing.T) {
	r := NewAddressRegistry(nil)
	peer := testPeer(1)
	addr := util.NewAddress("tcp", []byte{1, 2, 3, 4, 0, 80})
	if err := r.AddAddress(peer, addr, nil, nil); err != nil {
		t.Fatal(err)
	}
	if err := r.AddAddress(peer, addr, nil, nil); err != ErrATSAlreadyKnown {
		t.Fatalf("expected ErrATSAlreadyKnown, got %v", err)
	}
}

// TestATSRoundTrip checks the round-trip law from §8: add, detach, expire
// leaves the registry without the record.
func TestATSRoundTrip(t *testing.T) {
	r := NewAddressRegistry(nil)
	peer := testPeer(1)
	addr := util.NewAddress("tcp", []byte{1, 2, 3, 4, 0, 80})
	sess := new(int)

	if err := r.AddAddress(peer, addr, nil, nil); err != nil {
		t.Fatal(err)
	}
	if err := r.NewSession(peer, addr, sess); err != nil {
		t.Fatal(err)
	}
	if !r.IsKnown(peer, addr, sess) {
		t.Fatal("session record not known after new_session")
	}
	if err := r.DelSession(peer, addr, sess); err != nil {
		t.Fatal(err)
	}
	// outbound address demoted back to sessionless, not gone
	if !r.IsKnown(peer, addr, nil) {
		t.Fatal("sessionless record missing after del_session on outbound address")
	}
	if err := r.ExpireAddress(peer, addr); err != nil {
		t.Fatal(err)
	}
	if r.IsKnown(peer, addr, nil) {
		t.Fatal("record still known after expire_address")
	}
	if recs := r.Records(peer); len(recs) != 0 {
		t.Fatalf("expected no records left for peer, got %d", len(recs))
	}
}

// TestATSInboundCascadesOnDelSession checks that an inbound address
// record is destroyed, not demoted, once its session dies (§4.2).
func TestATSInboundCascadesOnDelSession(t *testing.T) {
	r := NewAddressRegistry(nil)
	peer := testPeer(2)
	addr := util.NewAddress("tcp", []byte{5, 6, 7, 8, 0, 80})
	addr.Options |= enums.AddressOptionInbound
	sess := new(int)

	if err := r.AddAddress(peer, addr, sess, nil); err != nil {
		t.Fatal(err)
	}
	if err := r.DelSession(peer, addr, sess); err != nil {
		t.Fatal(err)
	}
	if r.IsKnown(peer, addr, nil) {
		t.Fatal("inbound address survived session death as a sessionless record")
	}
	if recs := r.Records(peer); len(recs) != 0 {
		t.Fatalf("expected inbound record gone, got %d records", len(recs))
	}
}

// TestATSOutboundAndInboundCoexist checks the invariant that an outbound
// record and a per-session inbound record may coexist for the same
// address (§4.2 invariant).
func TestATSOutboundAndInboundCoexist(t *testing.T) {
	r := NewAddressRegistry(nil)
	peer := testPeer(3)
	out := util.NewAddress("tcp", []byte{9, 9, 9, 9, 0, 80})
	in := util.NewAddress("tcp", []byte{9, 9, 9, 9, 0, 80})
	in.Options |= enums.AddressOptionInbound
	sess := new(int)

	if err := r.AddAddress(peer, out, nil, nil); err != nil {
		t.Fatal(err)
	}
	if err := r.AddAddress(peer, in, sess, nil); err != nil {
		t.Fatal(err)
	}
	if recs := r.Records(peer); len(recs) != 2 {
		t.Fatalf("expected 2 coexisting records, got %d", len(recs))
	}
}

type fakeCache struct {
	saved map[string][]*util.Address
}

func newFakeCache() *fakeCache {
	return &fakeCache{saved: make(map[string][]*util.Address)}
}

func (c *fakeCache) Save(peer *util.PeerID, addr *util.Address) {
	c.saved[peer.String()] = append(c.saved[peer.String()], addr)
}

func (c *fakeCache) Delete(peer *util.PeerID, addr *util.Address) {
	list := c.saved[peer.String()]
	out := list[:0]
	for _, a := range list {
		if !a.Equals(addr) {
			out = append(out, a)
		}
	}
	c.saved[peer.String()] = out
}

func (c *fakeCache) LoadAll() map[string][]*util.Address {
	return c.saved
}

// TestATSCacheReplay checks that a sessionless address persists through
// SetCache/LoadFromCache on a freshly constructed registry.
func TestATSCacheReplay(t *testing.T) {
	cache := newFakeCache()
	r1 := NewAddressRegistry(nil)
	r1.SetCache(cache)
	peer := testPeer(4)
	addr := util.NewAddress("tcp", []byte{1, 1, 1, 1, 0, 80})
	if err := r1.AddAddress(peer, addr, nil, nil); err != nil {
		t.Fatal(err)
	}

	r2 := NewAddressRegistry(nil)
	r2.SetCache(cache)
	r2.LoadFromCache()
	if !r2.IsKnown(peer, addr, nil) {
		t.Fatal("address not replayed from cache into fresh registry")
	}
}
