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
	"context"

	"gnunet/core"
	"gnunet/enums"
	"gnunet/message"
	"gnunet/util"
)

// Neighbour is the contract the transport core assumes from the
// neighbour subsystem (§4 component 5): connectedness test,
// force-connect, force-disconnect, iterate, send. It is specified only
// as an interface; transitions of the peer state machine live on the
// other side of it.
type Neighbour interface {
	Connected(peer *util.PeerID) bool
	State(peer *util.PeerID) enums.PeerState
	TryConnect(peer *util.PeerID) error
	ForceDisconnect(peer *util.PeerID)
	Iterate(f func(peer *util.PeerID))
	Send(ctx context.Context, peer *util.PeerID, msg message.Message) error
	QuotaIn(peer *util.PeerID) uint32
	QuotaOut(peer *util.PeerID) uint32
}

// defaultQuota is reported for every connected peer. The core has no
// bandwidth allocator of its own (congestion control beyond per-client
// backpressure is out of scope); a real deployment would source this
// from ATS.
const defaultQuota = uint32(65536)

// CoreNeighbour adapts *core.Core, the corpus's concrete neighbour
// implementation, to the Neighbour facade the transport core consumes.
type CoreNeighbour struct {
	c *core.Core
}

// NewCoreNeighbour wraps c.
func NewCoreNeighbour(c *core.Core) *CoreNeighbour {
	return &CoreNeighbour{c: c}
}

func (n *CoreNeighbour) Connected(peer *util.PeerID) bool {
	return n.c.Connected(peer)
}

func (n *CoreNeighbour) State(peer *util.PeerID) enums.PeerState {
	if n.c.Connected(peer) {
		return enums.PeerStateConnected
	}
	return enums.PeerStateNotConnected
}

func (n *CoreNeighbour) TryConnect(peer *util.PeerID) error {
	return n.c.TryConnect(peer, nil)
}

func (n *CoreNeighbour) ForceDisconnect(peer *util.PeerID) {
	n.c.ForceDisconnect(peer)
}

func (n *CoreNeighbour) Iterate(f func(peer *util.PeerID)) {
	n.c.IteratePeers(f)
}

func (n *CoreNeighbour) Send(ctx context.Context, peer *util.PeerID, msg message.Message) error {
	return n.c.Send(ctx, peer, msg)
}

func (n *CoreNeighbour) QuotaIn(peer *util.PeerID) uint32  { return defaultQuota }
func (n *CoreNeighbour) QuotaOut(peer *util.PeerID) uint32 { return defaultQuota }
