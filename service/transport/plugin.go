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

	"gnunet/enums"
)

// PrettyPrintCallback is invoked by a plugin's AddressPrettyPrinter,
// zero or more times with (string, OK), optionally interleaved with
// (*, SYSERR) for a transient conversion error, and terminated by
// exactly one (nil, OK) call (§4.5).
type PrettyPrintCallback func(s string, res int32)

// Plugin is the capability set the transport core consumes from each
// wire-level transport module (§4.5). The core never looks inside
// address bytes; it only forwards them to the owning plugin.
type Plugin interface {
	Name() string
	Send(sess Session, payload []byte, cont func(ok bool, bytesPhysical uint32)) error
	DisconnectSession(sess Session)
	GetNetwork(sess Session) enums.NetworkType
	CheckOption(addr []byte, option int) bool
	AddressPrettyPrinter(addr []byte, numericOnly bool, timeout time.Duration, cb PrettyPrintCallback)
}

// PluginRegistry resolves a plugin by its wire name, as configured via
// transport.plugins.
type PluginRegistry struct {
	plugins map[string]Plugin
}

// NewPluginRegistry creates an empty registry.
func NewPluginRegistry() *PluginRegistry {
	return &PluginRegistry{plugins: make(map[string]Plugin)}
}

// Register binds a plugin under its own name.
func (r *PluginRegistry) Register(p Plugin) {
	r.plugins[p.Name()] = p
}

// Lookup returns the plugin for name, or nil if none is registered.
func (r *PluginRegistry) Lookup(name string) Plugin {
	return r.plugins[name]
}

// GetNetwork asks every registered plugin to classify sess (§4.5), and
// returns the first non-unspecified answer. A plugin that does not own
// sess is expected to report "unspecified". Suitable as the classifier
// handed to NewAddressRegistry.
func (r *PluginRegistry) GetNetwork(sess Session) enums.NetworkType {
	for _, p := range r.plugins {
		if nt := p.GetNetwork(sess); nt != enums.NetworkUnspecified {
			return nt
		}
	}
	return enums.NetworkUnspecified
}
