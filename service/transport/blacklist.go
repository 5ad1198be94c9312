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
	"gnunet/util"

	"github.com/bfix/gospel/logger"
)

// blacklistRule is {peer, transport_name}; an empty transport name
// matches any transport for that peer (§3 BlacklistRule).
type blacklistRule struct {
	peer      string
	transport string
}

// BlacklistDecision is the answer to a test_allowed query.
type BlacklistDecision int

const (
	BlacklistAllowed BlacklistDecision = iota
	BlacklistDenied
)

// blacklistQuery tracks one outstanding async decision round, one
// per (peer, transport) pair, waiting on every registered decision
// client.
type blacklistQuery struct {
	peer      *util.PeerID
	transport string
	pending   map[int]bool // clientID -> still waiting
	denied    bool
	callback  func(BlacklistDecision)
}

// Blacklist arbitrates connection attempts against a static rule set
// and the live decisions of registered blacklist clients (§4.4).
type Blacklist struct {
	rules   map[blacklistRule]bool
	clients map[int]bool // registered decision clients (BLACKLIST_INIT)
	queries map[string]*blacklistQuery
	// ask sends a BLACKLIST_QUERY to a single decision client.
	ask func(clientID int, peer *util.PeerID, transport string)
}

// NewBlacklist creates an arbiter with an empty rule set. ask is called
// once per registered decision client for every test_allowed round.
func NewBlacklist(ask func(clientID int, peer *util.PeerID, transport string)) *Blacklist {
	return &Blacklist{
		rules:   make(map[blacklistRule]bool),
		clients: make(map[int]bool),
		queries: make(map[string]*blacklistQuery),
		ask:     ask,
	}
}

// AddPeer inserts a static rule (§4.4 add_peer). transport == "" denies
// every transport for peer.
func (b *Blacklist) AddPeer(peer *util.PeerID, transport string) {
	b.rules[blacklistRule{peer.String(), transport}] = true
}

// Test performs the synchronous local rule check only (§4.4 test).
func (b *Blacklist) Test(peer *util.PeerID, transport string) BlacklistDecision {
	if b.rules[blacklistRule{peer.String(), transport}] || b.rules[blacklistRule{peer.String(), ""}] {
		return BlacklistDenied
	}
	return BlacklistAllowed
}

// RegisterClient marks clientID as a blacklist decision client
// (BLACKLIST_INIT, §4.4).
func (b *Blacklist) RegisterClient(clientID int) {
	b.clients[clientID] = true
}

// UnregisterClient drops a disconnected client; every query still
// waiting on it is resolved as "allow" for that client (§4.4).
func (b *Blacklist) UnregisterClient(clientID int) {
	delete(b.clients, clientID)
	for key, q := range b.queries {
		if _, waiting := q.pending[clientID]; waiting {
			delete(q.pending, clientID)
			b.maybeFinish(key, q)
		}
	}
}

// TestAllowed runs the full check (§4.4 test_allowed): local rules
// first, then a round of BLACKLIST_QUERY to every registered decision
// client. callback fires exactly once, synchronously if the local
// rules already deny or no clients are registered.
func (b *Blacklist) TestAllowed(peer *util.PeerID, transport string, callback func(BlacklistDecision)) {
	if b.Test(peer, transport) == BlacklistDenied {
		logger.Printf(logger.INFO, "[blacklist] %s/%s denied by static rule", peer.Short(), transport)
		callback(BlacklistDenied)
		return
	}
	if len(b.clients) == 0 {
		callback(BlacklistAllowed)
		return
	}
	key := peer.String() + "|" + transport
	q := &blacklistQuery{
		peer:      peer,
		transport: transport,
		pending:   make(map[int]bool, len(b.clients)),
		callback:  callback,
	}
	for id := range b.clients {
		q.pending[id] = true
	}
	b.queries[key] = q
	for id := range b.clients {
		b.ask(id, peer, transport)
	}
}

// Reply correlates a BLACKLIST_REPLY from clientID to its outstanding
// query for peer (§4.4).
func (b *Blacklist) Reply(clientID int, peer *util.PeerID, allowed bool) {
	for key, q := range b.queries {
		if !q.peer.Equals(peer) {
			continue
		}
		if _, waiting := q.pending[clientID]; !waiting {
			continue
		}
		delete(q.pending, clientID)
		if !allowed {
			q.denied = true
		}
		b.maybeFinish(key, q)
		return
	}
}

func (b *Blacklist) maybeFinish(key string, q *blacklistQuery) {
	if len(q.pending) > 0 {
		return
	}
	delete(b.queries, key)
	if q.denied {
		logger.Printf(logger.INFO, "[blacklist] %s/%s denied by decision client", q.peer.Short(), q.transport)
		q.callback(BlacklistDenied)
		return
	}
	q.callback(BlacklistAllowed)
}
