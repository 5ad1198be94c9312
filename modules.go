// This file is part of gnunet-go, a GNUnet-implementation in Golang.
// Copyright (C) 2019, 2020 Bernd Fix  >Y<
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

//======================================================================
// Standalone (all-in-one) implementation of GNUnet:
// -------------------------------------------------
// Instead of running GNUnet services like transport in separate
// processes communicating (exchanging messages) with each other over
// Unix Domain Sockets, the standalone implementation combines service
// modules into a single binary running go-routines to concurrently
// perform their tasks.
//======================================================================

package gnunet

import (
	"gnunet/service"
	"gnunet/service/transport"
)

// Instances holds a list of all GNUnet service modules run in this
// process.
type Instances struct {
	Transport *transport.Service
}

// Register modules for JSON-RPC
func (inst Instances) Register() {
	service.RegisterRPC(inst.Transport)
}

// Local reference to instance list. The service entry point does not
// assign it; its fields stay nil unless a caller sets them.
var (
	Modules Instances
)
