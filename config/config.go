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

package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"reflect"
	"regexp"
	"strings"

	"github.com/bfix/gospel/logger"
)

///////////////////////////////////////////////////////////////////////
// Local node / endpoint configuration (used by core and transport)

// EndpointConfig describes a single listening or remote endpoint.
type EndpointConfig struct {
	ID      string `json:"id"`      // endpoint identifier in configuration
	Network string `json:"network"` // transport/plugin name (e.g. "tcp", "ip+udp")
	Address string `json:"address"` // IP address, hostname or "upnp:<spec>"
	Port    uint16 `json:"port"`    // port number (0 = pick dynamically)
	TTL     int    `json:"ttl"`     // address validity (seconds)
}

// Addr returns the endpoint as a "network://address:port" string that
// can be parsed with util.ParseAddress.
func (e *EndpointConfig) Addr() string {
	return fmt.Sprintf("%s://%s:%d", e.Network, e.Address, e.Port)
}

// NodeConfig describes a local GNUnet peer: its identity and the set of
// endpoints it listens on or can be reached at.
type NodeConfig struct {
	Name        string            `json:"name"`        // human-readable node name
	PrivateSeed string            `json:"privateSeed"` // base64-encoded Ed25519 seed
	Endpoints   []*EndpointConfig `json:"endpoints"`   // configured endpoints
}

///////////////////////////////////////////////////////////////////////
// TRANSPORT service configuration

// PluginConfig binds a named communication plugin (e.g. "tcp", "udp")
// to the endpoints it should bind and its library-specific options.
type PluginConfig struct {
	Name    string            `json:"name"`    // plugin/transport name
	Bind    []string          `json:"bind"`    // listen addresses, "ip:port"
	Options map[string]string `json:"options"` // plugin-specific key/value options
}

// BlacklistRuleConfig is a single statically configured blacklist rule.
// An empty Plugin matches any plugin for the given peer.
type BlacklistRuleConfig struct {
	Peer   string `json:"peer"`   // peer identity (base32); a deny rule with a non-base32 value such as "*" is skipped
	Plugin string `json:"plugin"` // plugin name, "" for any
	Allow  bool   `json:"allow"`  // true: explicit allow, false: deny
}

// ManipulationConfig holds default artificial delay/distance settings for
// the transport manipulation layer, keyed by peer identity ("*" for
// the default bucket). The transport service applies only the "*" entries
// of DelayInMS and DelayOutMS at start-up; per-peer entries and
// DistanceMap are not read.
type ManipulationConfig struct {
	DelayInMS   map[string]uint32 `json:"delayIn"`  // inbound delay, milliseconds
	DelayOutMS  map[string]uint32 `json:"delayOut"` // outbound delay, milliseconds
	DistanceMap map[string]uint32 `json:"distance"` // synthetic ATS distance
}

// AddressCacheConfig points the ATS address registry at a Redis instance
// used to persist learned (peer, address) bindings across restarts. A
// nil value disables persistence; the registry then starts empty.
type AddressCacheConfig struct {
	RedisAddr string `json:"redisAddr"` // "host:port" of the Redis instance
	RedisDB   int    `json:"redisDB"`   // Redis logical database index
}

// TransportConfig is the aggregated configuration for the TRANSPORT
// service core: plugins to load, static blacklist rules and the
// manipulation layer defaults.
type TransportConfig struct {
	Unixpath     string                 `json:"unixpath"`     // client API socket path
	Plugins      []*PluginConfig        `json:"plugins"`      // enabled communication plugins
	Blacklist    []*BlacklistRuleConfig `json:"blacklist"`    // static blacklist rules
	Manipulation *ManipulationConfig    `json:"manipulation"` // artificial delay defaults
	MaxConnects  int                    `json:"maxConnects"`  // neighbour limit (0 = unlimited)
	AddressCache *AddressCacheConfig    `json:"addressCache"` // persistent address bookkeeping
}

///////////////////////////////////////////////////////////////////////
// JSON-RPC admin/monitor interface

// RPCConfig describes the HTTP end-point used for the JSON-RPC
// admin/monitor interface exposed alongside a service.
type RPCConfig struct {
	Endpoint string `json:"endpoint"` // "host:port" for the RPC HTTP server
}

///////////////////////////////////////////////////////////////////////

// Environment settings
type Environ map[string]string

// Config is the aggregated configuration for GNUnet.
type Config struct {
	Env       Environ          `json:"environ"`
	Node      *NodeConfig      `json:"node"`
	Transport *TransportConfig `json:"transport"`
	RPC       *RPCConfig       `json:"rpc"`
}

var (
	// Cfg is the global configuration
	Cfg *Config
)

// Parse a JSON-encoded configuration file map it to the Config data structure.
func ParseConfig(fileName string) (err error) {
	// parse configuration file
	file, err := ioutil.ReadFile(fileName)
	if err != nil {
		return
	}
	return ParseConfigBytes(file, true)
}

// ParseConfigBytes unmarshals a JSON-encoded configuration. If subst is
// true, environment-variable substitutions are applied to string values
// after parsing.
func ParseConfigBytes(data []byte, subst bool) (err error) {
	Cfg = new(Config)
	if err = json.Unmarshal(data, Cfg); err != nil {
		return
	}
	if subst {
		applySubstitutions(Cfg, Cfg.Env)
	}
	return
}

var (
	rx = regexp.MustCompile("\\$\\{([^\\}]*)\\}")
)

// substString is a helper function to substitute environment variables
// with actual values.
func substString(s string, env map[string]string) string {
	matches := rx.FindAllStringSubmatch(s, -1)
	for _, m := range matches {
		if len(m[1]) != 0 {
			subst, ok := env[m[1]]
			if !ok {
				continue
			}
			s = strings.Replace(s, "${"+m[1]+"}", subst, -1)
		}
	}
	return s
}

// applySubstitutions traverses the configuration data structure
// and applies string substitutions to all string values.
func applySubstitutions(x interface{}, env map[string]string) {

	var process func(v reflect.Value)
	process = func(v reflect.Value) {
		for i := 0; i < v.NumField(); i++ {
			fld := v.Field(i)
			if fld.CanSet() {
				switch fld.Kind() {
				case reflect.String:
					// check for substitution
					s := fld.Interface().(string)
					for {
						s1 := substString(s, env)
						if s1 == s {
							break
						}
						logger.Printf(logger.DBG, "[config] %s --> %s\n", s, s1)
						fld.SetString(s1)
						s = s1
					}

				case reflect.Struct:
					// handle nested struct
					process(fld)

				case reflect.Ptr:
					// handle pointer
					e := fld.Elem()
					if e.IsValid() {
						process(fld.Elem())
					} else {
						logger.Printf(logger.ERROR, "[config] 'nil' pointer encountered")
					}
				}
			}
		}
	}
	// start processing at the top-level structure
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Ptr:
		// indirect top-level
		e := v.Elem()
		if e.IsValid() {
			process(e)
		} else {
			logger.Printf(logger.ERROR, "[config] 'nil' pointer encountered")
		}
	case reflect.Struct:
		// direct top-level
		process(v)
	}
}
