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
	"fmt"
	"gnunet/enums"
)

// NewEmptyMessage creates a new empty message object for the given type.
//
//nolint:gocyclo // it's a long switch intentionally
func NewEmptyMessage(msgType uint16) (Message, error) {
	switch msgType {
	//------------------------------------------------------------------
	// Transport wire protocol (peer-to-peer)
	//------------------------------------------------------------------
	case enums.MSG_TRANSPORT_TCP_WELCOME:
		return NewTransportTCPWelcomeMsg(nil), nil
	case enums.MSG_HELLO:
		return NewHelloMsg(nil), nil
	case enums.MSG_TRANSPORT_SESSION_QUOTA:
		return NewSessionQuotaMsg(0), nil
	case enums.MSG_TRANSPORT_SESSION_SYN:
		return NewSessionSynMsg(), nil
	case enums.MSG_TRANSPORT_SESSION_SYN_ACK:
		return NewSessionSynAckMsg(), nil
	case enums.MSG_TRANSPORT_SESSION_ACK:
		return new(SessionAckMsg), nil
	case enums.MSG_TRANSPORT_PING:
		return NewTransportPingMsg(nil, nil), nil
	case enums.MSG_TRANSPORT_PONG:
		return NewTransportPongMsg(0, nil), nil
	case enums.MSG_TRANSPORT_SESSION_KEEPALIVE:
		return NewSessionKeepAliveMsg(), nil

	//------------------------------------------------------------------
	// Core (ephemeral key exchange)
	//------------------------------------------------------------------
	case enums.MSG_CORE_EPHEMERAL_KEY:
		return NewEphemeralKeyMsg(), nil

	//------------------------------------------------------------------
	// Transport client API (client <-> service)
	//------------------------------------------------------------------
	case enums.MSG_TRANSPORT_START:
		return NewStartMsg(0, nil), nil
	case enums.MSG_TRANSPORT_SEND:
		return NewOutboundMsg(nil, nil), nil
	case enums.MSG_TRANSPORT_SEND_OK:
		return NewSendOkMsg(nil), nil
	case enums.MSG_TRANSPORT_CONNECT:
		return NewConnectMsg(nil), nil
	case enums.MSG_TRANSPORT_DISCONNECT:
		return NewDisconnectMsg(nil), nil
	case enums.MSG_TRANSPORT_REQUEST_CONNECT:
		return NewRequestConnectMsg(nil), nil
	case enums.MSG_TRANSPORT_ADDRESS_TO_STRING:
		return NewAddressToStringMsg(nil), nil
	case enums.MSG_TRANSPORT_ADDRESS_TO_STRING_REPLY:
		return NewAddressToStringReplyMsg(""), nil
	case enums.MSG_TRANSPORT_MONITOR_PEER_REQUEST:
		return NewMonitorPeerRequestMsg(nil), nil
	case enums.MSG_TRANSPORT_MONITOR_PEER_RESPONSE:
		return NewMonitorPeerResponseMsg(), nil
	case enums.MSG_TRANSPORT_MONITOR_VALIDATION_REQUEST:
		return NewMonitorValidationRequestMsg(nil), nil
	case enums.MSG_TRANSPORT_MONITOR_VALIDATION_RESPONSE:
		return NewMonitorValidationResponseMsg(), nil
	case enums.MSG_TRANSPORT_TRAFFIC_METRIC:
		return NewTrafficMetricMsg(nil), nil
	case enums.MSG_TRANSPORT_BLACKLIST_INIT:
		return new(BlacklistInitMsg), nil
	case enums.MSG_TRANSPORT_BLACKLIST_QUERY:
		return NewBlacklistQueryMsg(nil, ""), nil
	case enums.MSG_TRANSPORT_BLACKLIST_REPLY:
		return NewBlacklistReplyMsg(false), nil
	}
	return nil, fmt.Errorf("unknown message type %d", msgType)
}
