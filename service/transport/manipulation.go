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
	"time"

	"gnunet/message"
	"gnunet/util"

	"github.com/bfix/gospel/logger"
)

// SendContinuation is invoked once a manipulated send either reaches the
// neighbour facade or is abandoned (peer disconnect, shutdown).
type SendContinuation func(ok bool, bytesMsg, bytesPhysical uint32)

// NeighbourSend is the subset of the neighbour facade the manipulation
// layer hands delayed sends off to.
type NeighbourSend func(peer *util.PeerID, msg message.Message, cont SendContinuation)

// DelayQueueEntry is one artificially-delayed outbound payload (§3).
type DelayQueueEntry struct {
	Peer   *util.PeerID
	Msg    message.Message
	SentAt time.Time
	Cont   SendContinuation
}

// manipulationPeer is the per-peer overlay of artificial delay and
// synthetic link quality (§3 ManipulationPeer).
type manipulationPeer struct {
	delayIn, delayOut time.Duration
	props             []ATSProperty
	fifo              []*DelayQueueEntry
}

// Manipulation is the transparent delay/metric-injection layer sitting
// between the client façade and the neighbour facade (§4.3).
type Manipulation struct {
	global   manipulationPeer
	perPeer  map[string]*manipulationPeer
	globalQ  []*DelayQueueEntry
	send     NeighbourSend
	timer    *time.Timer
	wake     chan struct{}
}

// NewManipulation creates a manipulation layer with zero default delay.
// send is the neighbour facade's send function, called once a queued
// entry's delay has elapsed.
func NewManipulation(send NeighbourSend) *Manipulation {
	return &Manipulation{
		perPeer: make(map[string]*manipulationPeer),
		send:    send,
		wake:    make(chan struct{}, 1),
	}
}

func (m *Manipulation) overlay(peer *util.PeerID) *manipulationPeer {
	return m.perPeer[peer.String()]
}

// SetMetric implements the TRAFFIC_METRIC client command (§4.3
// set_metric). A zero peer identity updates the global defaults;
// otherwise the per-peer overlay is created (if necessary) and updated.
func (m *Manipulation) SetMetric(peer *util.PeerID, delayIn, delayOut time.Duration, props []ATSProperty) {
	if util.NewPeerID(nil).Equals(peer) {
		m.global.delayIn = delayIn
		m.global.delayOut = delayOut
		m.global.props = props
		return
	}
	ov, ok := m.perPeer[peer.String()]
	if !ok {
		ov = &manipulationPeer{}
		m.perPeer[peer.String()] = ov
	}
	ov.delayIn = delayIn
	ov.delayOut = delayOut
	ov.props = props
}

// Send injects msg into the manipulated outbound path (§4.3 send).
func (m *Manipulation) Send(peer *util.PeerID, msg message.Message, size uint32, timeout time.Duration, cont SendContinuation) {
	delay := m.global.delayOut
	ov := m.overlay(peer)
	if ov != nil && ov.delayOut != 0 {
		delay = ov.delayOut
	}
	if delay == 0 {
		m.send(peer, msg, cont)
		return
	}
	entry := &DelayQueueEntry{
		Peer:   peer,
		Msg:    msg,
		SentAt: time.Now().Add(delay),
		Cont:   cont,
	}
	if ov != nil {
		ov.fifo = append(ov.fifo, entry)
	} else {
		m.globalQ = append(m.globalQ, entry)
	}
	m.arm()
}

// RecvDelay computes the pause (§4.3 recv) a plugin should observe
// before delivering the next message from this peer/session, combining
// the configured inbound delay with a caller-supplied rate-limiter
// delay. It never causes a message to be dropped.
func (m *Manipulation) RecvDelay(peer *util.PeerID, quotaDelay time.Duration) time.Duration {
	delay := m.global.delayIn
	if ov := m.overlay(peer); ov != nil && ov.delayIn != 0 {
		delay = ov.delayIn
	}
	if quotaDelay > delay {
		return quotaDelay
	}
	return delay
}

// ManipulateMetrics overlays synthetic ATS properties for a peer, if a
// per-peer overlay with properties has been configured (§4.3
// manipulate_metrics).
func (m *Manipulation) ManipulateMetrics(peer *util.PeerID, props []ATSProperty) []ATSProperty {
	if ov := m.overlay(peer); ov != nil && len(ov.props) > 0 {
		return ov.props
	}
	return props
}

// PeerDisconnect drops every queued entry targeting peer, reporting
// failure to each continuation (§4.3 peer_disconnect).
func (m *Manipulation) PeerDisconnect(peer *util.PeerID) {
	if ov := m.overlay(peer); ov != nil {
		for _, e := range ov.fifo {
			e.Cont(false, uint32(e.Msg.Header().MsgSize), 0)
		}
		ov.fifo = nil
		return
	}
	kept := make([]*DelayQueueEntry, 0, len(m.globalQ))
	for _, e := range m.globalQ {
		if e.Peer.Equals(peer) {
			e.Cont(false, uint32(e.Msg.Header().MsgSize), 0)
			continue
		}
		kept = append(kept, e)
	}
	m.globalQ = kept
	m.arm()
}

// arm (re)schedules the timer for the earliest head-of-line entry
// across the global FIFO and every per-peer FIFO.
func (m *Manipulation) arm() {
	var head *DelayQueueEntry
	consider := func(e *DelayQueueEntry) {
		if e == nil {
			return
		}
		if head == nil || e.SentAt.Before(head.SentAt) {
			head = e
		}
	}
	if len(m.globalQ) > 0 {
		consider(m.globalQ[0])
	}
	for _, ov := range m.perPeer {
		if len(ov.fifo) > 0 {
			consider(ov.fifo[0])
		}
	}
	if head == nil {
		return
	}
	if m.timer != nil {
		m.timer.Stop()
	}
	d := time.Until(head.SentAt)
	if d < 0 {
		d = 0
	}
	m.timer = time.AfterFunc(d, func() {
		select {
		case m.wake <- struct{}{}:
		default:
		}
	})
}

// Wake returns the channel the owning event loop must select on to know
// when a delayed send has come due; on wake, call Tick.
func (m *Manipulation) Wake() <-chan struct{} {
	return m.wake
}

// Tick dequeues and sends every entry that is now due, then re-arms the
// timer for whatever remains (§4.3 send, step 4).
func (m *Manipulation) Tick() {
	now := time.Now()
	drain := func(fifo []*DelayQueueEntry) []*DelayQueueEntry {
		i := 0
		for i < len(fifo) && !fifo[i].SentAt.After(now) {
			e := fifo[i]
			logger.Printf(logger.DBG, "[manipulation] releasing delayed send to %s", e.Peer.Short())
			m.send(e.Peer, e.Msg, e.Cont)
			i++
		}
		return fifo[i:]
	}
	m.globalQ = drain(m.globalQ)
	for _, ov := range m.perPeer {
		ov.fifo = drain(ov.fifo)
	}
	m.arm()
}
