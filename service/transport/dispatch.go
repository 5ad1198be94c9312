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
	"fmt"
	"sync"
	"time"

	"gnunet/enums"
	"gnunet/message"
	"gnunet/util"

	"github.com/bfix/gospel/logger"
)

// dispatch applies one decoded client frame to the core's state (§4.1).
// It is only ever called from the single event-loop goroutine.
func (s *Service) dispatch(cc *ClientConnection, msg message.Message) error {
	switch msg.Header().MsgType {
	case enums.MSG_TRANSPORT_START:
		m, ok := msg.(*message.StartMsg)
		if !ok {
			return fmt.Errorf("malformed START")
		}
		return s.handleStart(cc, m)

	case enums.MSG_HELLO, enums.MSG_HELLO_LEGACY:
		m, ok := msg.(*message.HelloMsg)
		if !ok {
			return fmt.Errorf("malformed HELLO")
		}
		return s.handleHello(cc, m)

	case enums.MSG_TRANSPORT_SEND:
		m, ok := msg.(*message.OutboundMsg)
		if !ok {
			return fmt.Errorf("malformed SEND")
		}
		return s.handleSend(cc, m)

	case enums.MSG_TRANSPORT_REQUEST_CONNECT:
		m, ok := msg.(*message.RequestConnectMsg)
		if !ok {
			return fmt.Errorf("malformed REQUEST_CONNECT")
		}
		return s.handleRequestConnect(cc, m)

	case enums.MSG_TRANSPORT_ADDRESS_TO_STRING:
		m, ok := msg.(*message.AddressToStringMsg)
		if !ok {
			return fmt.Errorf("malformed ADDRESS_TO_STRING")
		}
		return s.handleAddressToString(cc, m)

	case enums.MSG_TRANSPORT_MONITOR_PEER_REQUEST:
		m, ok := msg.(*message.MonitorPeerRequestMsg)
		if !ok {
			return fmt.Errorf("malformed MONITOR_PEER_REQUEST")
		}
		return s.handleMonitorPeer(cc, m)

	case enums.MSG_TRANSPORT_MONITOR_VALIDATION_REQUEST:
		m, ok := msg.(*message.MonitorValidationRequestMsg)
		if !ok {
			return fmt.Errorf("malformed MONITOR_VALIDATION_REQUEST")
		}
		return s.handleMonitorValidation(cc, m)

	case enums.MSG_TRANSPORT_BLACKLIST_INIT:
		s.bl.RegisterClient(cc.ID)
		return nil

	case enums.MSG_TRANSPORT_BLACKLIST_REPLY:
		m, ok := msg.(*message.BlacklistReplyMsg)
		if !ok {
			return fmt.Errorf("malformed BLACKLIST_REPLY")
		}
		s.bl.Reply(cc.ID, m.Peer, m.Allowed())
		return nil

	case enums.MSG_TRANSPORT_TRAFFIC_METRIC:
		m, ok := msg.(*message.TrafficMetricMsg)
		if !ok {
			return fmt.Errorf("malformed TRAFFIC_METRIC")
		}
		s.manip.SetMetric(m.Peer,
			time.Duration(m.DelayIn)*time.Microsecond,
			time.Duration(m.DelayOut)*time.Microsecond,
			nil)
		return nil

	default:
		logger.Printf(logger.WARN, "[transport] client %d sent unhandled message type %d", cc.ID, msg.Header().MsgType)
		return nil
	}
}

// handleStart processes TRANSPORT_START (§4.1 start): optional self-check,
// then the client is fed the local HELLO and a CONNECT notification for
// every peer already connected.
func (s *Service) handleStart(cc *ClientConnection, m *message.StartMsg) error {
	if cc.started {
		return fmt.Errorf("repeated START from client %d", cc.ID)
	}
	if m.Options&message.StartFlagCheckSelf != 0 && !m.Self.Equals(s.self) {
		return fmt.Errorf("client self-check failed: expected %s, got %s", s.self.Short(), m.Self.Short())
	}
	cc.started = true
	cc.sendPayload = m.Options&message.StartFlagSendPayload != 0
	cc.self = s.self
	if s.hello != nil {
		cc.Enqueue(s.hello, false)
	}
	s.neigh.Iterate(func(peer *util.PeerID) {
		c := message.NewConnectMsg(peer)
		c.QuotaIn = s.neigh.QuotaIn(peer)
		c.QuotaOut = s.neigh.QuotaOut(peer)
		cc.Enqueue(c, false)
	})
	return nil
}

// handleHello hands a client-supplied HELLO to the address registry as a
// set of learned, sessionless addresses pending validation (§4.1 hello).
// A malformed HELLO or an address already known is logged and skipped;
// the client is always acked OK (there is no per-address failure path
// back to it).
func (s *Service) handleHello(cc *ClientConnection, m *message.HelloMsg) error {
	addrs, err := m.Addresses()
	if err != nil {
		logger.Printf(logger.WARN, "[transport] client %d sent malformed HELLO: %s", cc.ID, err.Error())
		return nil
	}
	added := 0
	for _, a := range addrs {
		addr := a.Wrap()
		if err := s.ats.AddAddress(m.Peer, addr, nil, nil); err != nil {
			logger.Printf(logger.DBG, "[transport] HELLO address %s for %s not added: %s", addr.URI(), m.Peer.Short(), err.Error())
			continue
		}
		s.ats.UpdateValidation(m.Peer, addr, nil, ValidationInfo{State: enums.ValidationProbing})
		added++
	}
	logger.Printf(logger.DBG, "[transport] client %d offered %d addresses for %s", cc.ID, len(addrs), m.Peer.Short())
	if added > 0 {
		s.notifyValidationMonitors(m.Peer)
	}
	return nil
}

// handleSend processes TRANSPORT_SEND (§4.1 send): a disconnected target
// is silently dropped (the client learns nothing beyond the missing
// SEND_OK; the dropped-bytes counter is bumped); otherwise the payload
// is handed to the manipulation layer and SEND_OK follows asynchronously
// once the continuation fires.
func (s *Service) handleSend(cc *ClientConnection, m *message.OutboundMsg) error {
	if !cc.started {
		return fmt.Errorf("SEND before START")
	}
	if !s.neigh.Connected(m.Peer) {
		s.bytesDrop += uint64(len(m.Payload))
		return nil
	}
	payload := message.NewOutboundMsg(m.Peer, m.Payload)
	size := uint32(m.Header().MsgSize)
	timeout := time.Duration(m.Timeout) * time.Microsecond
	sentAt := time.Now()
	s.manip.Send(m.Peer, payload, size, timeout, func(ok bool, bytesMsg, bytesPhysical uint32) {
		reply := message.NewSendOkMsg(m.Peer)
		if ok {
			reply.Success = uint32(message.ResultOK)
		} else {
			reply.Success = uint32(message.ResultSysErr)
		}
		reply.BytesMsg = bytesMsg
		reply.BytesPhysical = bytesPhysical
		reply.Latency = uint64(time.Since(sentAt) / time.Microsecond)
		cc.Enqueue(reply, false)
		if ok {
			props := []ATSProperty{{Type: ATSPropertyLatency, Value: uint32(reply.Latency)}}
			if err := s.ats.UpdateMetricsForPeer(m.Peer, props); err != nil {
				logger.Printf(logger.DBG, "[transport] no ATS record to update metrics for %s: %s", m.Peer.Short(), err.Error())
			}
		}
	})
	return nil
}

// handleRequestConnect processes TRANSPORT_REQUEST_CONNECT (§4.1
// request_connect): a self-targeted request is ignored, connect=0 forces
// an immediate disconnect, connect=1 first clears the blacklist before
// attempting to connect. Any other value is a protocol error.
func (s *Service) handleRequestConnect(cc *ClientConnection, m *message.RequestConnectMsg) error {
	if m.Peer.Equals(s.self) {
		logger.Printf(logger.INFO, "[transport] client %d sent REQUEST_CONNECT to self, ignoring", cc.ID)
		return nil
	}
	switch m.Connect {
	case 0:
		s.neigh.ForceDisconnect(m.Peer)
		return nil
	case 1:
		s.bl.TestAllowed(m.Peer, "", func(d BlacklistDecision) {
			if d == BlacklistDenied {
				logger.Printf(logger.INFO, "[transport] REQUEST_CONNECT to %s denied by blacklist", m.Peer.Short())
				return
			}
			if err := s.neigh.TryConnect(m.Peer); err != nil {
				logger.Printf(logger.WARN, "[transport] REQUEST_CONNECT to %s failed: %s", m.Peer.Short(), err.Error())
			}
		})
		return nil
	default:
		return fmt.Errorf("REQUEST_CONNECT: invalid connect value %d", m.Connect)
	}
}

// handleAddressToString processes TRANSPORT_ADDRESS_TO_STRING (§4.6): the
// request is handed to the owning plugin's pretty printer; absence of
// a registered plugin yields a single SYSERR frame followed immediately
// by the OK terminator. Otherwise the request carries its own timeout
// (§5): it is enforced here, independently of the plugin, by emitting
// the res=OK, len=0 terminator even if the plugin never calls back.
func (s *Service) handleAddressToString(cc *ClientConnection, m *message.AddressToStringMsg) error {
	pluginName := m.PluginName()
	plugin := s.plugins.Lookup(pluginName)
	if plugin == nil {
		cc.Enqueue(message.NewAddressToStringErrorMsg(), false)
		cc.Enqueue(message.NewAddressToStringReplyMsg(""), false)
		return nil
	}
	timeout := time.Duration(m.Timeout) * time.Microsecond
	id := util.NextID()
	var mu sync.Mutex
	done := false

	terminate := func() {
		mu.Lock()
		if done {
			mu.Unlock()
			return
		}
		done = true
		mu.Unlock()
		cc.Enqueue(message.NewAddressToStringReplyMsg(""), false)
		cc.removeResolution(id)
	}
	timer := time.AfterFunc(timeout, terminate)
	cc.addResolution(&addrToStringContext{
		id: id,
		cancel: func() {
			timer.Stop()
			mu.Lock()
			done = true
			mu.Unlock()
		},
	})

	plugin.AddressPrettyPrinter(m.AddressBytes(), m.NumericOnly != 0, timeout, func(str string, res int32) {
		mu.Lock()
		if done {
			mu.Unlock()
			return
		}
		mu.Unlock()
		if res != message.ResultOK {
			cc.Enqueue(message.NewAddressToStringErrorMsg(), false)
			return
		}
		if len(str) == 0 {
			// plugin-driven terminator: same effect as the timeout firing.
			timer.Stop()
			mu.Lock()
			done = true
			mu.Unlock()
			cc.Enqueue(message.NewAddressToStringReplyMsg(""), false)
			cc.removeResolution(id)
			return
		}
		cc.Enqueue(message.NewAddressToStringReplyMsg(str), false)
	})
	return nil
}

// emitPeerResponses sends one MONITOR_PEER_RESPONSE per known address
// record of peer to cc (§4.6).
func (s *Service) emitPeerResponses(cc *ClientConnection, peer *util.PeerID) {
	state := uint32(enums.PeerStateNotConnected)
	if s.neigh.Connected(peer) {
		state = uint32(enums.PeerStateConnected)
	}
	for _, rec := range s.ats.Records(peer) {
		reply := message.NewMonitorPeerResponseFor(peer, rec.Address.Address, rec.Address.Transport, 0, state, util.AbsoluteTimeNever())
		cc.Enqueue(reply, false)
	}
}

// emitValidationResponses sends one MONITOR_VALIDATION_RESPONSE per
// known address record of peer to cc (§4.6).
func (s *Service) emitValidationResponses(cc *ClientConnection, peer *util.PeerID) {
	for _, rec := range s.ats.Records(peer) {
		v := rec.Validation
		reply := message.NewMonitorValidationResponseFor(peer, rec.Address.Address, rec.Address.Transport, 0,
			uint32(v.State), v.LastValidation, v.ValidUntil, v.NextValidation)
		cc.Enqueue(reply, false)
	}
}

// handleMonitorPeer processes TRANSPORT_MONITOR_PEER_REQUEST (§4.6): a
// zero peer identity snapshots (or subscribes to) every known peer.
// Continuous (non-one-shot) registration is kept in s.peerMon and
// consulted on every subsequent connect/disconnect/address change;
// registering a client twice is a protocol error.
func (s *Service) handleMonitorPeer(cc *ClientConnection, m *message.MonitorPeerRequestMsg) error {
	zero := util.NewPeerID(nil)
	oneShot := m.OneShot != 0
	if !oneShot {
		if _, dup := s.peerMon[cc.ID]; dup {
			return fmt.Errorf("client %d already registered for MONITOR_PEER_REQUEST", cc.ID)
		}
	}
	if m.Peer.Equals(zero) {
		for _, id := range s.ats.AllPeers() {
			if peer, err := util.PeerIDFromString(id); err == nil {
				s.emitPeerResponses(cc, peer)
			}
		}
	} else {
		s.emitPeerResponses(cc, m.Peer)
	}
	if oneShot {
		cc.Enqueue(message.NewMonitorPeerResponseMsg(), false)
	} else {
		s.peerMon[cc.ID] = m.Peer
	}
	return nil
}

// handleMonitorValidation processes TRANSPORT_MONITOR_VALIDATION_REQUEST
// (§4.6); shaped identically to handleMonitorPeer but over per-address
// validation progress rather than connectedness.
func (s *Service) handleMonitorValidation(cc *ClientConnection, m *message.MonitorValidationRequestMsg) error {
	zero := util.NewPeerID(nil)
	oneShot := m.OneShot != 0
	if !oneShot {
		if _, dup := s.validMon[cc.ID]; dup {
			return fmt.Errorf("client %d already registered for MONITOR_VALIDATION_REQUEST", cc.ID)
		}
	}
	if m.Peer.Equals(zero) {
		for _, id := range s.ats.AllPeers() {
			if peer, err := util.PeerIDFromString(id); err == nil {
				s.emitValidationResponses(cc, peer)
			}
		}
	} else {
		s.emitValidationResponses(cc, m.Peer)
	}
	if oneShot {
		cc.Enqueue(message.NewMonitorValidationResponseMsg(), false)
	} else {
		s.validMon[cc.ID] = m.Peer
	}
	return nil
}
