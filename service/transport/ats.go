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
	"errors"
	"fmt"

	"gnunet/enums"
	"gnunet/util"

	"github.com/bfix/gospel/logger"
)

// Error codes for the address registry.
var (
	ErrATSUnknownAddress  = errors.New("address not known to ATS")
	ErrATSAlreadyKnown    = errors.New("address already known to ATS")
	ErrATSInboundNoSess   = errors.New("inbound address without session")
	ErrATSSessionMismatch = errors.New("session does not match address record")
	ErrATSBadNetwork      = errors.New("plugin reported unspecified network")
)

// Session is a plugin-owned, opaque handle for a live conversation over
// one address. A nil Session means the address is known but currently
// has no active channel.
type Session interface{}

// ATSProperty is a single named quality metric reported to (and
// overridable by) the address-selection subsystem.
type ATSProperty struct {
	Type  uint32
	Value uint32
}

// Well-known ATS property types. NetworkType is prepended to every
// freshly registered address; Latency is refreshed opportunistically
// off the back of completed sends.
const (
	ATSPropertyNetworkType = uint32(1)
	ATSPropertyLatency     = uint32(2)
)

// ATSRecord is the opaque handle into the external address-selection
// subsystem. This core only notifies it of changes; it never inspects
// the handle's contents.
type ATSRecord struct {
	Props []ATSProperty
	InUse bool
	gone  bool
}

// ValidationInfo tracks the address-probing progress for one address
// record, mirrored opaquely into MONITOR_VALIDATION_RESPONSE frames.
type ValidationInfo struct {
	State          enums.ValidationState
	LastValidation util.AbsoluteTime
	ValidUntil     util.AbsoluteTime
	NextValidation util.AbsoluteTime
}

// AddressRecord binds a single (address, session) pair for a peer to
// its ATS handle.
type AddressRecord struct {
	Address    *util.Address
	Session    Session
	ats        *ATSRecord
	Validation ValidationInfo
}

// key identifies an AddressRecord within a peer's record set; the
// session identity participates so that an outbound and an inbound
// record for the same wire address may coexist.
func recordKey(addr *util.Address, sess Session) string {
	return fmt.Sprintf("%s|%v", addr.URI(), sess)
}

// GetNetwork is the subset of the plugin interface the address
// registry consumes directly (§4.5).
type GetNetwork func(sess Session) enums.NetworkType

// AddressRegistry owns the canonical peer -> {address, session} bindings
// (§4.2). It is only ever touched from the single event-loop goroutine
// that also drives the rest of the transport service core, so it needs
// no internal locking.
type AddressRegistry struct {
	byPeer     map[string]map[string]*AddressRecord
	getNetwork GetNetwork
	cache      AddressCache
	manipulate func(peer *util.PeerID, props []ATSProperty) []ATSProperty
}

// SetCache attaches a persistence backend; addresses already registered
// are not retroactively persisted. Pass nil to disable persistence.
func (r *AddressRegistry) SetCache(cache AddressCache) {
	r.cache = cache
}

// SetManipulation attaches the manipulation layer's metric overlay, so
// that update_metrics pipes through it before reaching ATS (§4.2
// update_metrics). Pass nil to update ATS directly.
func (r *AddressRegistry) SetManipulation(fn func(peer *util.PeerID, props []ATSProperty) []ATSProperty) {
	r.manipulate = fn
}

// LoadFromCache seeds sessionless address records from the attached
// cache (§4.2, restart recovery). Has no effect if no cache is attached.
func (r *AddressRegistry) LoadFromCache() {
	if r.cache == nil {
		return
	}
	for peerStr, addrs := range r.cache.LoadAll() {
		peer, err := util.PeerIDFromString(peerStr)
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			if err := r.AddAddress(peer, addr, nil, nil); err != nil {
				logger.Printf(logger.DBG, "[ats] cache replay skipped %s/%s: %s", peer.Short(), addr.URI(), err.Error())
			}
		}
	}
}

// NewAddressRegistry creates an empty registry. getNetwork classifies a
// session's network category on add_address; nil falls back to
// "WAN" for every session (suitable for tests that don't care).
func NewAddressRegistry(getNetwork GetNetwork) *AddressRegistry {
	if getNetwork == nil {
		getNetwork = func(Session) enums.NetworkType { return enums.NetworkWAN }
	}
	return &AddressRegistry{
		byPeer:     make(map[string]map[string]*AddressRecord),
		getNetwork: getNetwork,
	}
}

// IsKnown reports whether (address, session) is already registered.
func (r *AddressRegistry) IsKnown(peer *util.PeerID, addr *util.Address, sess Session) bool {
	recs, ok := r.byPeer[peer.String()]
	if !ok {
		return false
	}
	_, ok = recs[recordKey(addr, sess)]
	return ok
}

// AddAddress registers a freshly reported address (§4.2 add_address).
func (r *AddressRegistry) AddAddress(peer *util.PeerID, addr *util.Address, sess Session, props []ATSProperty) error {
	if len(addr.Transport) == 0 {
		return fmt.Errorf("address has no transport name")
	}
	if addr.Options&enums.AddressOptionInbound != 0 && sess == nil {
		return ErrATSInboundNoSess
	}
	if r.IsKnown(peer, addr, sess) {
		return ErrATSAlreadyKnown
	}
	netw := r.getNetwork(sess)
	if netw == enums.NetworkUnspecified {
		logger.Printf(logger.WARN, "[ats] rejecting address %s: plugin reports unspecified network", addr.URI())
		return ErrATSBadNetwork
	}
	all := append([]ATSProperty{{Type: ATSPropertyNetworkType, Value: uint32(netw)}}, props...)
	rec := &AddressRecord{
		Address: addr,
		Session: sess,
		ats:     &ATSRecord{Props: all},
	}
	recs, ok := r.byPeer[peer.String()]
	if !ok {
		recs = make(map[string]*AddressRecord)
		r.byPeer[peer.String()] = recs
	}
	recs[recordKey(addr, sess)] = rec
	if r.cache != nil && sess == nil {
		r.cache.Save(peer, addr)
	}
	return nil
}

// NewSession attaches a session to a previously sessionless outbound
// record (§4.2 new_session). Idempotent if the pair is already present.
func (r *AddressRegistry) NewSession(peer *util.PeerID, addr *util.Address, sess Session) error {
	if r.IsKnown(peer, addr, sess) {
		return r.SetInUse(peer, addr, sess, true)
	}
	recs, ok := r.byPeer[peer.String()]
	if !ok {
		return ErrATSUnknownAddress
	}
	rec, ok := recs[recordKey(addr, nil)]
	if !ok {
		return ErrATSUnknownAddress
	}
	delete(recs, recordKey(addr, nil))
	rec.Session = sess
	recs[recordKey(addr, sess)] = rec
	return r.SetInUse(peer, addr, sess, true)
}

// DelSession detaches a session from a record (§4.2 del_session). If the
// address was outbound (had a NULL-session sibling possible) the record
// is demoted back to sessionless; otherwise (inbound) it is expired.
func (r *AddressRegistry) DelSession(peer *util.PeerID, addr *util.Address, sess Session) error {
	if sess == nil {
		return fmt.Errorf("del_session requires a non-nil session")
	}
	recs, ok := r.byPeer[peer.String()]
	if !ok {
		return ErrATSUnknownAddress
	}
	key := recordKey(addr, sess)
	rec, ok := recs[key]
	if !ok {
		return ErrATSUnknownAddress
	}
	_ = r.SetInUse(peer, addr, sess, false)
	delete(recs, key)
	if addr.Options&enums.AddressOptionInbound != 0 {
		// inbound addresses cannot survive without a session
		return nil
	}
	rec.Session = nil
	recs[recordKey(addr, nil)] = rec
	return nil
}

// UpdateMetrics pipes new quality properties through the manipulation
// overlay (if attached), then forwards the result to the ATS record
// (§4.2 update_metrics).
func (r *AddressRegistry) UpdateMetrics(peer *util.PeerID, addr *util.Address, sess Session, props []ATSProperty) error {
	rec, err := r.find(peer, addr, sess)
	if err != nil {
		return err
	}
	if r.manipulate != nil {
		props = r.manipulate(peer, props)
	}
	rec.ats.Props = props
	return nil
}

// UpdateMetricsForPeer applies update_metrics to the peer's outbound
// (sessionless) address record. Callers that only know the peer --  not
// the specific (address, session) pair chosen by the neighbour facade
// for a given send -- use this instead of UpdateMetrics directly.
func (r *AddressRegistry) UpdateMetricsForPeer(peer *util.PeerID, props []ATSProperty) error {
	recs, ok := r.byPeer[peer.String()]
	if !ok {
		return ErrATSUnknownAddress
	}
	for _, rec := range recs {
		if rec.Session == nil {
			return r.UpdateMetrics(peer, rec.Address, nil, props)
		}
	}
	return ErrATSUnknownAddress
}

// UpdateValidation records the outcome of an address-probing attempt
// against a record (forwarded opaquely in MONITOR_VALIDATION_RESPONSE).
func (r *AddressRegistry) UpdateValidation(peer *util.PeerID, addr *util.Address, sess Session, info ValidationInfo) error {
	rec, err := r.find(peer, addr, sess)
	if err != nil {
		return err
	}
	rec.Validation = info
	return nil
}

// SetInUse forwards an in-use flag to the ATS record (§4.2 set_in_use).
func (r *AddressRegistry) SetInUse(peer *util.PeerID, addr *util.Address, sess Session, flag bool) error {
	rec, err := r.find(peer, addr, sess)
	if err != nil {
		return err
	}
	rec.ats.InUse = flag
	return nil
}

// ExpireAddress destroys a sessionless record (§4.2 expire_address).
func (r *AddressRegistry) ExpireAddress(peer *util.PeerID, addr *util.Address) error {
	recs, ok := r.byPeer[peer.String()]
	if !ok {
		return ErrATSUnknownAddress
	}
	key := recordKey(addr, nil)
	rec, ok := recs[key]
	if !ok {
		return ErrATSUnknownAddress
	}
	rec.ats.gone = true
	delete(recs, key)
	if len(recs) == 0 {
		delete(r.byPeer, peer.String())
	}
	if r.cache != nil {
		r.cache.Delete(peer, addr)
	}
	return nil
}

// Records returns a snapshot of all address records known for a peer
// (used by MONITOR_PEER_REQUEST/MONITOR_VALIDATION_REQUEST).
func (r *AddressRegistry) Records(peer *util.PeerID) (out []*AddressRecord) {
	for _, rec := range r.byPeer[peer.String()] {
		out = append(out, rec)
	}
	return
}

// AllPeers returns every peer identity with at least one known address,
// keyed by its string form (used for a wildcard MONITOR_PEER_REQUEST).
func (r *AddressRegistry) AllPeers() []string {
	out := make([]string, 0, len(r.byPeer))
	for id := range r.byPeer {
		out = append(out, id)
	}
	return out
}

func (r *AddressRegistry) find(peer *util.PeerID, addr *util.Address, sess Session) (*AddressRecord, error) {
	recs, ok := r.byPeer[peer.String()]
	if !ok {
		return nil, ErrATSUnknownAddress
	}
	rec, ok := recs[recordKey(addr, sess)]
	if !ok {
		return nil, ErrATSUnknownAddress
	}
	return rec, nil
}
