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
	"net/http"
	"time"

	"gnunet/config"
	"gnunet/core"
	"gnunet/message"
	"gnunet/service"
	gtransport "gnunet/transport"
	"gnunet/util"

	"github.com/bfix/gospel/logger"
)

// clientEvent carries one decoded inbound frame -- or a connect/disconnect
// marker -- from a client's reader goroutine to the single dispatch loop.
// Exactly one of ch, msg, err is set.
type clientEvent struct {
	clientID int
	ch       *gtransport.MsgChannel // set on connect
	msg      message.Message        // set on a decoded frame
	err      error                  // set on disconnect (read failure)
}

// Service is the transport service core: client façade, blacklist
// arbiter, manipulation layer and ATS address bookkeeping bound
// together behind the gnunet/service.Service interface (§2).
type Service struct {
	cfg   *config.TransportConfig
	self  *util.PeerID
	hello *message.HelloMsg

	neigh   Neighbour
	ats     *AddressRegistry
	manip   *Manipulation
	bl      *Blacklist
	plugins *PluginRegistry

	clients    map[int]*ClientConnection
	peerMon    map[int]*util.PeerID // clientID -> filter, registered MONITOR_PEER_REQUEST
	validMon   map[int]*util.PeerID // clientID -> filter, registered MONITOR_VALIDATION_REQUEST
	bytesDrop  uint64

	inbound chan *clientEvent
	events  chan *core.Event
	quit    chan struct{}
}

// NewService creates a transport service core bound to neigh (the
// neighbour facade) for the given local identity and default HELLO.
func NewService(cfg *config.TransportConfig, neigh Neighbour, self *util.PeerID, hello *message.HelloMsg) *Service {
	s := &Service{
		cfg:      cfg,
		self:     self,
		hello:    hello,
		neigh:    neigh,
		plugins:  NewPluginRegistry(),
		clients:  make(map[int]*ClientConnection),
		peerMon:  make(map[int]*util.PeerID),
		validMon: make(map[int]*util.PeerID),
		inbound:  make(chan *clientEvent),
		events:   make(chan *core.Event, 16),
		quit:     make(chan struct{}),
	}
	s.manip = NewManipulation(s.neighbourSend)
	s.bl = NewBlacklist(s.askBlacklistClient)
	s.ats = NewAddressRegistry(s.plugins.GetNetwork)
	s.ats.SetManipulation(s.manip.ManipulateMetrics)
	if cfg != nil {
		if cache := NewRedisAddressCache(cfg.AddressCache); cache != nil {
			s.ats.SetCache(cache)
		}
	}
	return s
}

// RegisterPlugin adds a wire-transport plugin the core can hand off to.
func (s *Service) RegisterPlugin(p Plugin) {
	s.plugins.Register(p)
}

// Events returns the channel on which the owning process should forward
// core.Event notifications (peer connect/disconnect, messages) so the
// transport core can broadcast CONNECT/DISCONNECT to clients.
func (s *Service) Events() chan *core.Event {
	return s.events
}

// Start loads static configuration (blacklist rules, manipulation
// defaults) and launches the single dispatch loop. spec is unused here;
// the listening socket itself is owned by service.Impl.
func (s *Service) Start(spec string) error {
	s.ats.LoadFromCache()
	for _, rule := range s.cfg.Blacklist {
		if rule.Allow {
			continue
		}
		peer, err := util.PeerIDFromString(rule.Peer)
		if err != nil {
			logger.Printf(logger.WARN, "[transport] skipping malformed blacklist rule for '%s'", rule.Peer)
			continue
		}
		s.bl.AddPeer(peer, rule.Plugin)
	}
	if s.cfg.Manipulation != nil {
		zero := util.NewPeerID(nil)
		if d, ok := s.cfg.Manipulation.DelayOutMS["*"]; ok {
			s.manip.SetMetric(zero, s.manip.global.delayIn, time.Duration(d)*time.Millisecond, nil)
		}
		if d, ok := s.cfg.Manipulation.DelayInMS["*"]; ok {
			s.manip.SetMetric(zero, time.Duration(d)*time.Millisecond, s.manip.global.delayOut, nil)
		}
	}
	go s.run()
	return nil
}

// Stop shuts the dispatch loop down.
func (s *Service) Stop() error {
	close(s.quit)
	return nil
}

// RPC exposes a minimal plain-text HTTP status endpoint (§2 service
// entry/shutdown).
func (s *Service) RPC() (string, func(http.ResponseWriter, *http.Request)) {
	return "/transport/status", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("transport core running"))
	}
}

// ServeClient is run once per accepted client channel: it registers a
// ClientConnection, pumps decoded frames to the dispatch loop, and
// cleans up on disconnect.
func (s *Service) ServeClient(ctx *service.SessionContext, ch *gtransport.MsgChannel) {
	id := ctx.ID
	s.inbound <- &clientEvent{clientID: id, ch: ch}

	for {
		msg, err := ch.Receive(nil)
		if err != nil {
			s.inbound <- &clientEvent{clientID: id, err: err}
			return
		}
		s.inbound <- &clientEvent{clientID: id, msg: msg}
	}
}

//----------------------------------------------------------------------
// dispatch loop
//----------------------------------------------------------------------

func (s *Service) run() {
	for {
		select {
		case <-s.quit:
			return
		case ce := <-s.inbound:
			s.handleClientEvent(ce)
		case ev := <-s.events:
			s.handleCoreEvent(ev)
		case <-s.manip.Wake():
			s.manip.Tick()
		}
	}
}

func (s *Service) handleClientEvent(ce *clientEvent) {
	if ce.ch != nil {
		s.clients[ce.clientID] = NewClientConnection(ce.clientID, ce.ch)
		return
	}
	if ce.err != nil {
		s.disconnectClient(ce.clientID)
		return
	}
	cc, ok := s.clients[ce.clientID]
	if !ok {
		return
	}
	if err := s.dispatch(cc, ce.msg); err != nil {
		logger.Printf(logger.WARN, "[transport] client %d protocol error: %s", cc.ID, err.Error())
		s.disconnectClient(cc.ID)
	}
}

func (s *Service) disconnectClient(id int) {
	cc, ok := s.clients[id]
	if !ok {
		return
	}
	cc.Cancel()
	delete(s.clients, id)
	delete(s.peerMon, id)
	delete(s.validMon, id)
	s.bl.UnregisterClient(id)
}

func (s *Service) handleCoreEvent(ev *core.Event) {
	switch ev.ID {
	case core.EV_CONNECT:
		s.broadcastConnect(ev.Peer)
		s.notifyPeerMonitors(ev.Peer)
	case core.EV_DISCONNECT:
		s.manip.PeerDisconnect(ev.Peer)
		s.broadcastDisconnect(ev.Peer)
		s.notifyPeerMonitors(ev.Peer)
	case core.EV_MESSAGE:
		if delay := s.manip.RecvDelay(ev.Peer, 0); delay > 0 {
			logger.Printf(logger.DBG, "[transport] inbound message from %s should be paced by %s", ev.Peer.Short(), delay)
		}
	}
}

// monitorMatches reports whether a MONITOR_*_REQUEST filter (zero
// identity means "all peers") matches peer (§4.6).
func monitorMatches(filter, peer *util.PeerID) bool {
	zero := util.NewPeerID(nil)
	return filter.Equals(zero) || filter.Equals(peer)
}

// notifyPeerMonitors delivers a fresh MONITOR_PEER_RESPONSE snapshot of
// peer to every client with a matching continuous registration (§4.1,
// §4.6: "notifications additionally go only to monitors whose filter
// matches").
func (s *Service) notifyPeerMonitors(peer *util.PeerID) {
	for clientID, filter := range s.peerMon {
		if !monitorMatches(filter, peer) {
			continue
		}
		if cc, ok := s.clients[clientID]; ok {
			s.emitPeerResponses(cc, peer)
		}
	}
}

// notifyValidationMonitors is the MONITOR_VALIDATION_REQUEST analogue of
// notifyPeerMonitors, triggered on address-validation progress.
func (s *Service) notifyValidationMonitors(peer *util.PeerID) {
	for clientID, filter := range s.validMon {
		if !monitorMatches(filter, peer) {
			continue
		}
		if cc, ok := s.clients[clientID]; ok {
			s.emitValidationResponses(cc, peer)
		}
	}
}

// broadcast sends msg to every client whose mayDrop policy allows it
// (§4.1 broadcast discipline).
func (s *Service) broadcast(msg message.Message, mayDrop bool) {
	for _, cc := range s.clients {
		if !cc.started {
			continue
		}
		if mayDrop && !cc.sendPayload {
			continue
		}
		cc.Enqueue(msg, mayDrop)
	}
}

func (s *Service) broadcastConnect(peer *util.PeerID) {
	m := message.NewConnectMsg(peer)
	m.QuotaIn = s.neigh.QuotaIn(peer)
	m.QuotaOut = s.neigh.QuotaOut(peer)
	s.broadcast(m, false)
}

func (s *Service) broadcastDisconnect(peer *util.PeerID) {
	s.broadcast(message.NewDisconnectMsg(peer), false)
}

// neighbourSend is the manipulation layer's callback into the
// neighbour facade once a (possibly delayed) send is due.
func (s *Service) neighbourSend(peer *util.PeerID, msg message.Message, cont SendContinuation) {
	err := s.neigh.Send(context.Background(), peer, msg)
	size := uint32(msg.Header().MsgSize)
	cont(err == nil, size, size)
}

// askBlacklistClient sends a BLACKLIST_QUERY to one decision client.
func (s *Service) askBlacklistClient(clientID int, peer *util.PeerID, transport string) {
	cc, ok := s.clients[clientID]
	if !ok {
		return
	}
	cc.Enqueue(message.NewBlacklistQueryMsg(peer, transport), false)
}
