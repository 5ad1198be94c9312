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

package enums

// Address option bits carried in util.Address.Options.
const (
	// AddressOptionInbound marks an address as peer-initiated; such
	// addresses must always carry a live session.
	AddressOptionInbound = uint32(1) << 0
)

// NetworkType classifies an address by the kind of network it was
// learned on (loopback, LAN, WAN, ...). Reported by a plugin's
// get_network() and mirrored into the ATS property set of a new
// address.
type NetworkType uint32

const (
	NetworkUnspecified NetworkType = iota
	NetworkLoopback
	NetworkLAN
	NetworkWAN
	NetworkWLAN
	NetworkBluetooth
)

// PeerState is the neighbour connection state machine, as seen (read-only)
// by the transport client façade when it reports MONITOR_PEER_RESPONSE
// frames. Transitions are owned by the neighbour facade.
type PeerState uint32

const (
	PeerStateNotConnected PeerState = iota
	PeerStateConnectSent
	PeerStateConnectRecv
	PeerStateReconnectATS
	PeerStateReconnectSent
	PeerStateConnected
	PeerStateDisconnect
	PeerStateDisconnectFinished
)

// ValidationState describes the progress of an address-probing attempt.
type ValidationState uint32

const (
	ValidationNone ValidationState = iota
	ValidationProbing
	ValidationValidated
	ValidationExpired
	ValidationTimeout
)
