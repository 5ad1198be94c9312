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
	"sync"

	"gnunet/message"
	"gnunet/transport"
	"gnunet/util"

	"github.com/bfix/gospel/logger"
)

// MaxPending is the soft limit on a client's outbound queue (§3
// ClientConnection, §4.1 backpressure). Frames enqueued with mayDrop
// beyond this limit are dropped; control frames are always queued.
const MaxPending = 128 * 1024

// addrToStringContext is a single outstanding ADDRESS_TO_STRING
// resolution (§4.6). The core only ever has at most one per request;
// cancel is called on client disconnect or timeout.
type addrToStringContext struct {
	id     int
	cancel func()
}

// ClientConnection is the per-client state the transport service keeps
// for every local subsystem connected to it (§3 ClientConnection).
type ClientConnection struct {
	ID          int
	ch          *transport.MsgChannel
	mu          sync.Mutex
	queue       []message.Message
	writing     bool
	dropped     uint64
	started     bool
	sendPayload bool
	self        *util.PeerID

	// outstanding ADDRESS_TO_STRING contexts, most recent first.
	resolutions []*addrToStringContext
}

// NewClientConnection wraps a freshly accepted client channel.
func NewClientConnection(id int, ch *transport.MsgChannel) *ClientConnection {
	return &ClientConnection{
		ID: id,
		ch: ch,
	}
}

// Enqueue appends msg to the client's outbound FIFO (§4.1 backpressure).
// mayDrop messages are dropped once the queue is at MaxPending; control
// frames (mayDrop == false) are always queued. Returns false if the
// frame was dropped.
func (cc *ClientConnection) Enqueue(msg message.Message, mayDrop bool) bool {
	cc.mu.Lock()
	if mayDrop && len(cc.queue) >= MaxPending {
		cc.dropped++
		cc.mu.Unlock()
		return false
	}
	cc.queue = append(cc.queue, msg)
	drain := !cc.writing
	if drain {
		cc.writing = true
	}
	cc.mu.Unlock()
	if drain {
		go cc.drain()
	}
	return true
}

// drain transmits queued frames one at a time (single in-flight
// transmit per client, §4.1) until the queue is empty.
func (cc *ClientConnection) drain() {
	for {
		cc.mu.Lock()
		if len(cc.queue) == 0 {
			cc.writing = false
			cc.mu.Unlock()
			return
		}
		msg := cc.queue[0]
		cc.queue = cc.queue[1:]
		cc.mu.Unlock()

		if err := cc.ch.Send(msg, nil); err != nil {
			logger.Printf(logger.WARN, "[transport] client %d send failed: %s", cc.ID, err.Error())
			cc.mu.Lock()
			cc.writing = false
			cc.mu.Unlock()
			return
		}
	}
}

// Dropped returns the number of mayDrop frames dropped so far.
func (cc *ClientConnection) Dropped() uint64 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.dropped
}

// addResolution registers an outstanding ADDRESS_TO_STRING context. The
// callback driving it (plugin or timeout) may run on any goroutine.
func (cc *ClientConnection) addResolution(ctx *addrToStringContext) {
	cc.mu.Lock()
	cc.resolutions = append(cc.resolutions, ctx)
	cc.mu.Unlock()
}

// removeResolution drops a completed/cancelled context by id.
func (cc *ClientConnection) removeResolution(id int) {
	cc.mu.Lock()
	out := cc.resolutions[:0]
	for _, r := range cc.resolutions {
		if r.id != id {
			out = append(out, r)
		}
	}
	cc.resolutions = out
	cc.mu.Unlock()
}

// Cancel tears down all outstanding work for this client on disconnect
// (§5 cancellation/timeouts): pending address resolutions, and the
// in-flight transmit is simply abandoned since the channel is closing.
func (cc *ClientConnection) Cancel() {
	cc.mu.Lock()
	resolutions := cc.resolutions
	cc.resolutions = nil
	cc.mu.Unlock()
	for _, r := range resolutions {
		r.cancel()
	}
}
