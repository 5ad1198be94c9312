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
	"net"
	"testing"
	"time"

	"gnunet/enums"
	"gnunet/message"
	"gnunet/transport"
	"gnunet/util"

	"github.com/bfix/gospel/concurrent"
)

// pipeChannel adapts one end of a net.Pipe to transport.Channel, so a
// ClientConnection's outbound frames can be decoded by a real
// transport.MsgChannel on the other end instead of a hand-rolled fake.
type pipeChannel struct {
	conn net.Conn
}

func (c *pipeChannel) Open(spec string) error { return nil }
func (c *pipeChannel) Close() error           { return c.conn.Close() }
func (c *pipeChannel) IsOpen() bool           { return true }
func (c *pipeChannel) Read(buf []byte, sig *concurrent.Signaller) (int, error) {
	return c.conn.Read(buf)
}
func (c *pipeChannel) Write(buf []byte, sig *concurrent.Signaller) (int, error) {
	return c.conn.Write(buf)
}

// newTestClient wires a ClientConnection to an in-process pipe and starts
// a receiver goroutine decoding everything the service enqueues for it.
func newTestClient(id int) (cc *ClientConnection, recv <-chan message.Message, closeFn func()) {
	a, b := net.Pipe()
	serverSide := transport.NewMsgChannel(&pipeChannel{conn: a})
	clientSide := transport.NewMsgChannel(&pipeChannel{conn: b})

	ch := make(chan message.Message, 16)
	go func() {
		for {
			msg, err := clientSide.Receive(nil)
			if err != nil {
				close(ch)
				return
			}
			ch <- msg
		}
	}()
	return NewClientConnection(id, serverSide), ch, func() { a.Close(); b.Close() }
}

// fakeNeighbour is a minimal, test-controlled Neighbour.
type fakeNeighbour struct {
	connected map[string]bool
}

func newFakeNeighbour() *fakeNeighbour {
	return &fakeNeighbour{connected: make(map[string]bool)}
}

func (n *fakeNeighbour) connect(peer *util.PeerID) { n.connected[peer.String()] = true }

func (n *fakeNeighbour) Connected(peer *util.PeerID) bool { return n.connected[peer.String()] }
func (n *fakeNeighbour) State(peer *util.PeerID) enums.PeerState {
	if n.Connected(peer) {
		return enums.PeerStateConnected
	}
	return enums.PeerStateNotConnected
}
func (n *fakeNeighbour) TryConnect(peer *util.PeerID) error { return nil }
func (n *fakeNeighbour) ForceDisconnect(peer *util.PeerID)  {}
func (n *fakeNeighbour) Iterate(f func(peer *util.PeerID)) {
	for id, up := range n.connected {
		if !up {
			continue
		}
		peer, err := util.PeerIDFromString(id)
		if err == nil {
			f(peer)
		}
	}
}
func (n *fakeNeighbour) Send(ctx context.Context, peer *util.PeerID, msg message.Message) error {
	return nil
}
func (n *fakeNeighbour) QuotaIn(peer *util.PeerID) uint32  { return defaultQuota }
func (n *fakeNeighbour) QuotaOut(peer *util.PeerID) uint32 { return defaultQuota }

// fakePlugin is the minimal Plugin stub the registry needs to classify
// freshly added addresses as WAN; none of the dispatch scenarios exercise
// an actual wire transport.
type fakePlugin struct{}

func (fakePlugin) Name() string { return "tcp" }
func (fakePlugin) Send(sess Session, payload []byte, cont func(ok bool, bytesPhysical uint32)) error {
	return nil
}
func (fakePlugin) DisconnectSession(sess Session)                  {}
func (fakePlugin) GetNetwork(sess Session) enums.NetworkType       { return enums.NetworkWAN }
func (fakePlugin) CheckOption(addr []byte, option int) bool        { return false }
func (fakePlugin) AddressPrettyPrinter(addr []byte, numericOnly bool, timeout time.Duration, cb PrettyPrintCallback) {
}

func newTestService(self *util.PeerID, hello *message.HelloMsg) (*Service, *fakeNeighbour) {
	neigh := newFakeNeighbour()
	s := NewService(nil, neigh, self, hello)
	s.RegisterPlugin(fakePlugin{})
	return s, neigh
}

// drainFor collects whatever arrives on recv within d, then stops.
func drainFor(recv <-chan message.Message, d time.Duration) []message.Message {
	var got []message.Message
	deadline := time.After(d)
	for {
		select {
		case m, ok := <-recv:
			if !ok {
				return got
			}
			got = append(got, m)
		case <-deadline:
			return got
		}
	}
}

// TestDispatchHelloRelay is scenario S1: START with no neighbours yields
// exactly one HELLO and nothing else within 100ms.
func TestDispatchHelloRelay(t *testing.T) {
	self := testPeer(0xca)
	hello := message.NewHelloMsg(self)
	s, _ := newTestService(self, hello)
	cc, recv, closeFn := newTestClient(1)
	defer closeFn()

	start := message.NewStartMsg(0, util.NewPeerID(nil))
	if err := s.dispatch(cc, start); err != nil {
		t.Fatalf("unexpected dispatch error: %s", err.Error())
	}

	got := drainFor(recv, 100*time.Millisecond)
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 frame, got %d", len(got))
	}
	if got[0].Header().MsgType != enums.MSG_HELLO {
		t.Fatalf("expected HELLO, got msg type %d", got[0].Header().MsgType)
	}
}

// TestDispatchSelfStartRejection is scenario S2: START with a mismatched
// self-check identity is a protocol error, disconnecting the client
// before any response frame is sent.
func TestDispatchSelfStartRejection(t *testing.T) {
	self := testPeer(0xca)
	s, _ := newTestService(self, message.NewHelloMsg(self))
	cc, recv, closeFn := newTestClient(1)
	defer closeFn()

	other := testPeer(0xde)
	start := message.NewStartMsg(message.StartFlagCheckSelf, other)
	if err := s.dispatch(cc, start); err == nil {
		t.Fatal("expected self-check mismatch to return an error")
	}

	got := drainFor(recv, 50*time.Millisecond)
	if len(got) != 0 {
		t.Fatalf("expected no response frames before disconnect, got %d", len(got))
	}
}

// TestDispatchSendToUnknownPeerDrops is scenario S3: SEND to a
// disconnected peer is silently dropped and counted, with no SEND_OK.
func TestDispatchSendToUnknownPeerDrops(t *testing.T) {
	self := testPeer(0xca)
	s, _ := newTestService(self, message.NewHelloMsg(self))
	cc, recv, closeFn := newTestClient(1)
	defer closeFn()

	if err := s.dispatch(cc, message.NewStartMsg(0, util.NewPeerID(nil))); err != nil {
		t.Fatal(err)
	}
	drainFor(recv, 20*time.Millisecond) // consume the HELLO from START

	unknown := testPeer(0x11)
	payload := make([]byte, 32)
	before := s.bytesDrop
	if err := s.dispatch(cc, message.NewOutboundMsg(unknown, payload)); err != nil {
		t.Fatal(err)
	}
	if s.bytesDrop-before != 32 {
		t.Fatalf("expected drop counter to increase by 32, got %d", s.bytesDrop-before)
	}

	got := drainFor(recv, 50*time.Millisecond)
	if len(got) != 0 {
		t.Fatalf("expected no frames for a dropped SEND, got %d", len(got))
	}
}

// TestDispatchOneShotMonitorTerminator is scenario S6: a one-shot
// MONITOR_PEER_REQUEST over two connected neighbours yields exactly
// three frames (two populated, one zero-length terminator) and leaves
// no continuous registration behind.
func TestDispatchOneShotMonitorTerminator(t *testing.T) {
	self := testPeer(0xca)
	s, neigh := newTestService(self, message.NewHelloMsg(self))
	cc, recv, closeFn := newTestClient(1)
	defer closeFn()

	peer1 := testPeer(0x01)
	peer2 := testPeer(0x02)
	neigh.connect(peer1)
	neigh.connect(peer2)
	addr1 := util.NewAddress("tcp", []byte{1, 1, 1, 1, 0, 80})
	addr2 := util.NewAddress("tcp", []byte{2, 2, 2, 2, 0, 80})
	if err := s.ats.AddAddress(peer1, addr1, nil, nil); err != nil {
		t.Fatal(err)
	}
	if err := s.ats.AddAddress(peer2, addr2, nil, nil); err != nil {
		t.Fatal(err)
	}

	req := message.NewMonitorPeerRequestMsg(util.NewPeerID(nil))
	req.OneShot = 1
	if err := s.dispatch(cc, req); err != nil {
		t.Fatal(err)
	}

	got := drainFor(recv, 100*time.Millisecond)
	if len(got) != 3 {
		t.Fatalf("expected exactly 3 frames, got %d", len(got))
	}
	last := got[len(got)-1]
	resp, ok := last.(*message.MonitorPeerResponseMsg)
	if !ok {
		t.Fatalf("expected last frame to be a MonitorPeerResponseMsg, got %T", last)
	}
	if resp.AddrLen != 0 {
		t.Fatal("expected a zero-length terminator as the last frame")
	}
	if _, present := s.peerMon[cc.ID]; present {
		t.Fatal("one-shot monitor must not be added to the continuous peer-monitor list")
	}
}
