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

package core

import (
	"fmt"
	"testing"
	"time"

	"gnunet/config"
	"gnunet/util"
)

var peerCfg = &config.NodeConfig{
	Name:        "p1",
	PrivateSeed: "iYK1wSi5XtCP774eNFk1LYXqKlOPEpwKBw+2/bMkE24=",
	Endpoints: []*config.EndpointConfig{
		{
			ID:      "p1",
			Network: "ip+udp",
			Address: "172.17.0.1",
			Port:    2086,
			TTL:     86400,
		},
	},
}

// TestHelloRoundtrip builds a HELLO message for a local peer and checks
// that its embedded address list survives an encode/parse cycle.
func TestHelloRoundtrip(t *testing.T) {
	peer, err := NewLocalPeer(peerCfg)
	if err != nil {
		t.Fatal(err)
	}
	as := fmt.Sprintf("%s://%s:%d",
		peerCfg.Endpoints[0].Network,
		peerCfg.Endpoints[0].Address,
		peerCfg.Endpoints[0].Port,
	)
	listen, err := util.ParseAddress(as)
	if err != nil {
		t.Fatal(err)
	}
	listen.Expires = util.NewAbsoluteTime(time.Now().Add(time.Hour))
	aList := []*util.Address{listen}

	hd, err := peer.HelloData(time.Hour, aList)
	if err != nil {
		t.Fatal(err)
	}
	if !hd.Peer.Equals(peer.GetID()) {
		t.Fatal("peer ID mismatch in HELLO")
	}
	addrs, err := hd.Addresses()
	if err != nil {
		t.Fatal(err)
	}
	if len(addrs) != len(aList) {
		t.Fatalf("expected %d address, got %d", len(aList), len(addrs))
	}
	back := addrs[0].Wrap()
	if back.Transport != listen.Transport {
		t.Fatalf("transport mismatch: %s != %s", back.Transport, listen.Transport)
	}
}
