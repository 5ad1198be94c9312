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

package message

import (
	"bytes"
	"fmt"

	"gnunet/enums"
	"gnunet/util"
)

// Result codes used on the client<->service channel. They mirror the
// classic GNUNET_OK / GNUNET_SYSERR convention.
const (
	ResultOK     int32 = 1
	ResultSysErr int32 = -1
)

//----------------------------------------------------------------------
// TRANSPORT_START
//
// First message a client sends on a transport connection. If the
// check-self bit is set in Options, the service compares Self against
// its own identity and disconnects the client on mismatch.
//----------------------------------------------------------------------

const (
	StartFlagCheckSelf   = uint32(1) << 0
	StartFlagSendPayload = uint32(1) << 1
)

// StartMsg is sent by a client to start a transport session.
type StartMsg struct {
	MsgHeader
	Options uint32 `order:"big"`
	Self    *util.PeerID
}

// NewStartMsg creates a new START request.
func NewStartMsg(options uint32, self *util.PeerID) *StartMsg {
	if self == nil {
		self = util.NewPeerID(nil)
	}
	return &StartMsg{
		MsgHeader: MsgHeader{40, enums.MSG_TRANSPORT_START},
		Options:   options,
		Self:      self,
	}
}

// String returns a human-readable representation of the message.
func (m *StartMsg) String() string {
	return fmt.Sprintf("StartMsg{options=%d,self=%s}", m.Options, m.Self)
}

// Init called after unmarshalling a message to setup internal state
func (m *StartMsg) Init() error { return nil }

//----------------------------------------------------------------------
// TRANSPORT_SEND
//
// Client request to transmit a payload message to a peer.
//----------------------------------------------------------------------

// OutboundMsg wraps a client payload addressed to a peer.
type OutboundMsg struct {
	MsgHeader
	Reserved uint32 `order:"big"`
	Peer     *util.PeerID
	Timeout  uint64 `order:"big"` // microseconds
	Payload  []byte `size:"*"`
}

// NewOutboundMsg creates a new SEND request for the given peer.
func NewOutboundMsg(peer *util.PeerID, payload []byte) *OutboundMsg {
	if peer == nil {
		peer = util.NewPeerID(nil)
	}
	return &OutboundMsg{
		MsgHeader: MsgHeader{uint16(48 + len(payload)), enums.MSG_TRANSPORT_SEND},
		Peer:      peer,
		Payload:   payload,
	}
}

// String returns a human-readable representation of the message.
func (m *OutboundMsg) String() string {
	return fmt.Sprintf("OutboundMsg{peer=%s,size=%d}", m.Peer, len(m.Payload))
}

// Init called after unmarshalling a message to setup internal state
func (m *OutboundMsg) Init() error { return nil }

//----------------------------------------------------------------------
// TRANSPORT_SEND_OK
//
// Service confirmation for a previous SEND; does not imply the message
// reached the wire, only that it was handed off (or failed to be).
//----------------------------------------------------------------------

// SendOkMsg confirms (or denies) delivery of an OutboundMsg.
type SendOkMsg struct {
	MsgHeader
	Success       uint32 `order:"big"` // ResultOK or ResultSysErr
	BytesMsg      uint32 `order:"big"`
	BytesPhysical uint32 `order:"big"`
	Latency       uint64 `order:"big"` // microseconds
	Peer          *util.PeerID
}

// NewSendOkMsg creates a SEND_OK reply for the given peer.
func NewSendOkMsg(peer *util.PeerID) *SendOkMsg {
	if peer == nil {
		peer = util.NewPeerID(nil)
	}
	return &SendOkMsg{
		MsgHeader: MsgHeader{56, enums.MSG_TRANSPORT_SEND_OK},
		Peer:      peer,
	}
}

// String returns a human-readable representation of the message.
func (m *SendOkMsg) String() string {
	return fmt.Sprintf("SendOkMsg{peer=%s,success=%d}", m.Peer, m.Success)
}

// Init called after unmarshalling a message to setup internal state
func (m *SendOkMsg) Init() error { return nil }

//----------------------------------------------------------------------
// TRANSPORT_CONNECT / TRANSPORT_DISCONNECT
//
// Asynchronous notifications to a client about neighbour state changes.
//----------------------------------------------------------------------

// ConnectMsg notifies a client that a peer is now connected.
type ConnectMsg struct {
	MsgHeader
	QuotaIn  uint32 `order:"big"`
	QuotaOut uint32 `order:"big"`
	Peer     *util.PeerID
}

// NewConnectMsg creates a CONNECT notification for the given peer.
func NewConnectMsg(peer *util.PeerID) *ConnectMsg {
	if peer == nil {
		peer = util.NewPeerID(nil)
	}
	return &ConnectMsg{
		MsgHeader: MsgHeader{44, enums.MSG_TRANSPORT_CONNECT},
		Peer:      peer,
	}
}

// String returns a human-readable representation of the message.
func (m *ConnectMsg) String() string {
	return fmt.Sprintf("ConnectMsg{peer=%s,in=%d,out=%d}", m.Peer, m.QuotaIn, m.QuotaOut)
}

// Init called after unmarshalling a message to setup internal state
func (m *ConnectMsg) Init() error { return nil }

// DisconnectMsg notifies a client that a peer has disconnected.
type DisconnectMsg struct {
	MsgHeader
	Reserved uint32 `order:"big"`
	Peer     *util.PeerID
}

// NewDisconnectMsg creates a DISCONNECT notification for the given peer.
func NewDisconnectMsg(peer *util.PeerID) *DisconnectMsg {
	if peer == nil {
		peer = util.NewPeerID(nil)
	}
	return &DisconnectMsg{
		MsgHeader: MsgHeader{40, enums.MSG_TRANSPORT_DISCONNECT},
		Peer:      peer,
	}
}

// String returns a human-readable representation of the message.
func (m *DisconnectMsg) String() string {
	return fmt.Sprintf("DisconnectMsg{peer=%s}", m.Peer)
}

// Init called after unmarshalling a message to setup internal state
func (m *DisconnectMsg) Init() error { return nil }

//----------------------------------------------------------------------
// TRANSPORT_REQUEST_CONNECT
//
// Client request to connect to (or drop) a given peer.
//----------------------------------------------------------------------

// RequestConnectMsg asks the service to establish or drop a connection.
type RequestConnectMsg struct {
	MsgHeader
	Connect uint32 `order:"big"` // 1 = connect, 0 = disconnect
	Peer    *util.PeerID
}

// NewRequestConnectMsg creates a REQUEST_CONNECT message for the given peer.
func NewRequestConnectMsg(peer *util.PeerID) *RequestConnectMsg {
	if peer == nil {
		peer = util.NewPeerID(nil)
	}
	return &RequestConnectMsg{
		MsgHeader: MsgHeader{40, enums.MSG_TRANSPORT_REQUEST_CONNECT},
		Connect:   1,
		Peer:      peer,
	}
}

// String returns a human-readable representation of the message.
func (m *RequestConnectMsg) String() string {
	return fmt.Sprintf("RequestConnectMsg{peer=%s,connect=%d}", m.Peer, m.Connect)
}

// Init called after unmarshalling a message to setup internal state
func (m *RequestConnectMsg) Init() error { return nil }

//----------------------------------------------------------------------
// TRANSPORT_ADDRESS_TO_STRING / _REPLY
//
// Client request for a human-readable rendering of an address; the
// service streams zero or more string replies followed by a terminator
// with Res = ResultOK and an empty body.
//----------------------------------------------------------------------

// AddressToStringMsg requests a pretty-printed form of an address.
type AddressToStringMsg struct {
	MsgHeader
	NumericOnly int16  `order:"big"`
	AddrSize    uint16 `order:"big"`
	Timeout     uint64 `order:"big"` // microseconds
	Body        []byte `size:"*"`    // address bytes, then nul-terminated plugin name
}

// NewAddressToStringMsg creates a lookup request for the given address.
func NewAddressToStringMsg(addr *util.Address) *AddressToStringMsg {
	var plugin string
	var abytes []byte
	if addr != nil {
		plugin = addr.Transport
		abytes = addr.Address
	}
	name := append([]byte(plugin), 0)
	body := make([]byte, 0, len(abytes)+len(name))
	body = append(body, abytes...)
	body = append(body, name...)
	return &AddressToStringMsg{
		MsgHeader:   MsgHeader{uint16(16 + len(body)), enums.MSG_TRANSPORT_ADDRESS_TO_STRING},
		AddrSize:    uint16(len(abytes)),
		Body:        body,
	}
}

// AddressBytes returns the opaque address part of the request.
func (m *AddressToStringMsg) AddressBytes() []byte {
	return m.Body[:m.AddrSize]
}

// PluginName returns the plugin (transport) name for the request.
func (m *AddressToStringMsg) PluginName() string {
	return string(bytes.TrimRight(m.Body[m.AddrSize:], "\x00"))
}

// String returns a human-readable representation of the message.
func (m *AddressToStringMsg) String() string {
	return fmt.Sprintf("AddressToStringMsg{plugin=%s,len=%d}", m.PluginName(), m.AddrSize)
}

// Init called after unmarshalling a message to setup internal state
func (m *AddressToStringMsg) Init() error { return nil }

// AddressToStringReplyMsg carries one rendered address string, or acts as
// the terminating empty frame of the stream.
type AddressToStringReplyMsg struct {
	MsgHeader
	Res     int32  `order:"big"`
	AddrLen uint32 `order:"big"`
	Addr    []byte `size:"*"` // nul-terminated string; empty when AddrLen == 0
}

// NewAddressToStringReplyMsg creates a reply frame. An empty string
// produces the OK terminator frame.
func NewAddressToStringReplyMsg(s string) *AddressToStringReplyMsg {
	if len(s) == 0 {
		return &AddressToStringReplyMsg{
			MsgHeader: MsgHeader{12, enums.MSG_TRANSPORT_ADDRESS_TO_STRING_REPLY},
			Res:       ResultOK,
		}
	}
	b := append([]byte(s), 0)
	return &AddressToStringReplyMsg{
		MsgHeader: MsgHeader{uint16(12 + len(b)), enums.MSG_TRANSPORT_ADDRESS_TO_STRING_REPLY},
		Res:       ResultOK,
		AddrLen:   uint32(len(b)),
		Addr:      b,
	}
}

// NewAddressToStringErrorMsg creates a non-terminal SYSERR reply frame.
func NewAddressToStringErrorMsg() *AddressToStringReplyMsg {
	return &AddressToStringReplyMsg{
		MsgHeader: MsgHeader{12, enums.MSG_TRANSPORT_ADDRESS_TO_STRING_REPLY},
		Res:       ResultSysErr,
	}
}

// String returns a human-readable representation of the message.
func (m *AddressToStringReplyMsg) String() string {
	return fmt.Sprintf("AddressToStringReplyMsg{res=%d,len=%d}", m.Res, m.AddrLen)
}

// Init called after unmarshalling a message to setup internal state
func (m *AddressToStringReplyMsg) Init() error { return nil }

//----------------------------------------------------------------------
// TRANSPORT_MONITOR_PEER_REQUEST / _RESPONSE
//----------------------------------------------------------------------

// MonitorPeerRequestMsg subscribes (or snapshots) peer-state monitoring.
type MonitorPeerRequestMsg struct {
	MsgHeader
	OneShot uint32 `order:"big"`
	Peer    *util.PeerID // zero identity means "all peers"
}

// NewMonitorPeerRequestMsg creates a peer-monitor request.
func NewMonitorPeerRequestMsg(peer *util.PeerID) *MonitorPeerRequestMsg {
	if peer == nil {
		peer = util.NewPeerID(nil)
	}
	return &MonitorPeerRequestMsg{
		MsgHeader: MsgHeader{40, enums.MSG_TRANSPORT_MONITOR_PEER_REQUEST},
		Peer:      peer,
	}
}

// String returns a human-readable representation of the message.
func (m *MonitorPeerRequestMsg) String() string {
	return fmt.Sprintf("MonitorPeerRequestMsg{peer=%s,oneShot=%d}", m.Peer, m.OneShot)
}

// Init called after unmarshalling a message to setup internal state
func (m *MonitorPeerRequestMsg) Init() error { return nil }

// MonitorPeerResponseMsg reports the state of one (peer, address) pair, or
// acts as the terminating zero-length frame of a one-shot request.
type MonitorPeerResponseMsg struct {
	MsgHeader
	Reserved     uint32 `order:"big"`
	Peer         *util.PeerID
	AddrLen      uint32 `order:"big"`
	PluginLen    uint32 `order:"big"`
	LocalInfo    uint32 `order:"big"`
	State        uint32 `order:"big"`
	StateTimeout uint64 `order:"big"`
	Body         []byte `size:"*"` // address bytes, then plugin name bytes
}

// NewMonitorPeerResponseMsg creates the empty terminator frame.
func NewMonitorPeerResponseMsg() *MonitorPeerResponseMsg {
	return &MonitorPeerResponseMsg{
		MsgHeader: MsgHeader{64, enums.MSG_TRANSPORT_MONITOR_PEER_RESPONSE},
		Peer:      util.NewPeerID(nil),
	}
}

// NewMonitorPeerResponseFor creates a populated peer-state snapshot frame.
func NewMonitorPeerResponseFor(peer *util.PeerID, addr []byte, plugin string, localInfo, state uint32, timeout util.AbsoluteTime) *MonitorPeerResponseMsg {
	body := make([]byte, 0, len(addr)+len(plugin))
	body = append(body, addr...)
	body = append(body, []byte(plugin)...)
	return &MonitorPeerResponseMsg{
		MsgHeader:    MsgHeader{uint16(64 + len(body)), enums.MSG_TRANSPORT_MONITOR_PEER_RESPONSE},
		Peer:         peer,
		AddrLen:      uint32(len(addr)),
		PluginLen:    uint32(len(plugin)),
		LocalInfo:    localInfo,
		State:        state,
		StateTimeout: timeout.Val,
		Body:         body,
	}
}

// Address returns the address part of the snapshot.
func (m *MonitorPeerResponseMsg) Address() []byte {
	return m.Body[:m.AddrLen]
}

// PluginName returns the plugin (transport) name of the snapshot.
func (m *MonitorPeerResponseMsg) PluginName() string {
	return string(m.Body[m.AddrLen : m.AddrLen+m.PluginLen])
}

// String returns a human-readable representation of the message.
func (m *MonitorPeerResponseMsg) String() string {
	return fmt.Sprintf("MonitorPeerResponseMsg{peer=%s,state=%d}", m.Peer, m.State)
}

// Init called after unmarshalling a message to setup internal state
func (m *MonitorPeerResponseMsg) Init() error { return nil }

//----------------------------------------------------------------------
// TRANSPORT_MONITOR_VALIDATION_REQUEST / _RESPONSE
//----------------------------------------------------------------------

// MonitorValidationRequestMsg subscribes (or snapshots) address-validation
// monitoring; same shape as MonitorPeerRequestMsg.
type MonitorValidationRequestMsg struct {
	MsgHeader
	OneShot uint32 `order:"big"`
	Peer    *util.PeerID
}

// NewMonitorValidationRequestMsg creates a validation-monitor request.
func NewMonitorValidationRequestMsg(peer *util.PeerID) *MonitorValidationRequestMsg {
	if peer == nil {
		peer = util.NewPeerID(nil)
	}
	return &MonitorValidationRequestMsg{
		MsgHeader: MsgHeader{40, enums.MSG_TRANSPORT_MONITOR_VALIDATION_REQUEST},
		Peer:      peer,
	}
}

// String returns a human-readable representation of the message.
func (m *MonitorValidationRequestMsg) String() string {
	return fmt.Sprintf("MonitorValidationRequestMsg{peer=%s,oneShot=%d}", m.Peer, m.OneShot)
}

// Init called after unmarshalling a message to setup internal state
func (m *MonitorValidationRequestMsg) Init() error { return nil }

// MonitorValidationResponseMsg reports the state of one address-probe, or
// acts as the terminating zero-length frame of a one-shot request.
type MonitorValidationResponseMsg struct {
	MsgHeader
	Reserved        uint32 `order:"big"`
	Peer            *util.PeerID
	AddrLen         uint32 `order:"big"`
	PluginLen       uint32 `order:"big"`
	LocalInfo       uint32 `order:"big"`
	ValidationState uint32 `order:"big"`
	LastValidation  uint64 `order:"big"`
	ValidUntil      uint64 `order:"big"`
	NextValidation  uint64 `order:"big"`
	Body            []byte `size:"*"` // address bytes, then plugin name bytes
}

// NewMonitorValidationResponseMsg creates the empty terminator frame.
func NewMonitorValidationResponseMsg() *MonitorValidationResponseMsg {
	return &MonitorValidationResponseMsg{
		MsgHeader: MsgHeader{80, enums.MSG_TRANSPORT_MONITOR_VALIDATION_RESPONSE},
		Peer:      util.NewPeerID(nil),
	}
}

// NewMonitorValidationResponseFor creates a populated validation snapshot frame.
func NewMonitorValidationResponseFor(peer *util.PeerID, addr []byte, plugin string, localInfo, state uint32, last, until, next util.AbsoluteTime) *MonitorValidationResponseMsg {
	body := make([]byte, 0, len(addr)+len(plugin))
	body = append(body, addr...)
	body = append(body, []byte(plugin)...)
	return &MonitorValidationResponseMsg{
		MsgHeader:       MsgHeader{uint16(80 + len(body)), enums.MSG_TRANSPORT_MONITOR_VALIDATION_RESPONSE},
		Peer:            peer,
		AddrLen:         uint32(len(addr)),
		PluginLen:       uint32(len(plugin)),
		LocalInfo:       localInfo,
		ValidationState: state,
		LastValidation:  last.Val,
		ValidUntil:      until.Val,
		NextValidation:  next.Val,
		Body:            body,
	}
}

// Address returns the address part of the snapshot.
func (m *MonitorValidationResponseMsg) Address() []byte {
	return m.Body[:m.AddrLen]
}

// PluginName returns the plugin (transport) name of the snapshot.
func (m *MonitorValidationResponseMsg) PluginName() string {
	return string(m.Body[m.AddrLen : m.AddrLen+m.PluginLen])
}

// String returns a human-readable representation of the message.
func (m *MonitorValidationResponseMsg) String() string {
	return fmt.Sprintf("MonitorValidationResponseMsg{peer=%s,state=%d}", m.Peer, m.ValidationState)
}

// Init called after unmarshalling a message to setup internal state
func (m *MonitorValidationResponseMsg) Init() error { return nil }

//----------------------------------------------------------------------
// TRANSPORT_TRAFFIC_METRIC
//
// Adjusts the manipulation layer's delay/property overlay for a peer
// (zero identity addresses the global default).
//----------------------------------------------------------------------

// TrafficMetricMsg carries manipulation parameters from a client.
type TrafficMetricMsg struct {
	MsgHeader
	Peer     *util.PeerID
	DelayIn  uint64 `order:"big"` // microseconds
	DelayOut uint64 `order:"big"` // microseconds
	Props    []byte `size:"*"`    // opaque ATS property block
}

// NewTrafficMetricMsg creates a TRAFFIC_METRIC message for the given peer
// (nil selects the global default).
func NewTrafficMetricMsg(peer *util.PeerID) *TrafficMetricMsg {
	if peer == nil {
		peer = util.NewPeerID(nil)
	}
	return &TrafficMetricMsg{
		MsgHeader: MsgHeader{52, enums.MSG_TRANSPORT_TRAFFIC_METRIC},
		Peer:      peer,
	}
}

// String returns a human-readable representation of the message.
func (m *TrafficMetricMsg) String() string {
	return fmt.Sprintf("TrafficMetricMsg{peer=%s,in=%d,out=%d}", m.Peer, m.DelayIn, m.DelayOut)
}

// Init called after unmarshalling a message to setup internal state
func (m *TrafficMetricMsg) Init() error { return nil }

//----------------------------------------------------------------------
// TRANSPORT_BLACKLIST_INIT / _QUERY / _REPLY
//----------------------------------------------------------------------

// BlacklistInitMsg registers the sending client as a blacklist decider.
// It carries no body.
type BlacklistInitMsg struct {
	MsgHeader
}

// String returns a human-readable representation of the message.
func (m *BlacklistInitMsg) String() string {
	return "BlacklistInitMsg{}"
}

// Init called after unmarshalling a message to setup internal state
func (m *BlacklistInitMsg) Init() error { return nil }

// BlacklistQueryMsg asks a blacklist decision client whether a peer may
// use the given transport.
type BlacklistQueryMsg struct {
	MsgHeader
	Reserved uint32 `order:"big"`
	Peer     *util.PeerID
	Name     []byte `size:"*"` // transport name, nul-terminated
}

// NewBlacklistQueryMsg creates a query for the given peer and transport.
// An empty transport name matches any transport.
func NewBlacklistQueryMsg(peer *util.PeerID, transport string) *BlacklistQueryMsg {
	if peer == nil {
		peer = util.NewPeerID(nil)
	}
	name := append([]byte(transport), 0)
	return &BlacklistQueryMsg{
		MsgHeader: MsgHeader{uint16(40 + len(name)), enums.MSG_TRANSPORT_BLACKLIST_QUERY},
		Peer:      peer,
		Name:      name,
	}
}

// TransportName returns the transport name carried by the query.
func (m *BlacklistQueryMsg) TransportName() string {
	return string(bytes.TrimRight(m.Name, "\x00"))
}

// String returns a human-readable representation of the message.
func (m *BlacklistQueryMsg) String() string {
	return fmt.Sprintf("BlacklistQueryMsg{peer=%s,transport=%s}", m.Peer, m.TransportName())
}

// Init called after unmarshalling a message to setup internal state
func (m *BlacklistQueryMsg) Init() error { return nil }

// BlacklistReplyMsg answers an outstanding BlacklistQueryMsg.
type BlacklistReplyMsg struct {
	MsgHeader
	IsAllowed uint32 `order:"big"`
	Peer      *util.PeerID
}

// NewBlacklistReplyMsg creates a reply for the most recent query.
func NewBlacklistReplyMsg(allowed bool) *BlacklistReplyMsg {
	var v uint32
	if allowed {
		v = 1
	}
	return &BlacklistReplyMsg{
		MsgHeader: MsgHeader{40, enums.MSG_TRANSPORT_BLACKLIST_REPLY},
		IsAllowed: v,
		Peer:      util.NewPeerID(nil),
	}
}

// Allowed returns true if the reply grants the connection.
func (m *BlacklistReplyMsg) Allowed() bool {
	return m.IsAllowed != 0
}

// String returns a human-readable representation of the message.
func (m *BlacklistReplyMsg) String() string {
	return fmt.Sprintf("BlacklistReplyMsg{peer=%s,allowed=%v}", m.Peer, m.Allowed())
}

// Init called after unmarshalling a message to setup internal state
func (m *BlacklistReplyMsg) Init() error { return nil }
