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

	"gnunet/config"
	"gnunet/util"

	"github.com/bfix/gospel/data"
	"github.com/bfix/gospel/logger"
	"github.com/go-redis/redis/v8"
)

// AddressCache persists sessionless (peer, address) bindings so a
// restarted core does not have to wait for fresh HELLOs before it can
// attempt outbound connections again. Sessions themselves are never
// persisted: they are only meaningful while the owning plugin process
// is alive.
type AddressCache interface {
	Save(peer *util.PeerID, addr *util.Address)
	Delete(peer *util.PeerID, addr *util.Address)
	LoadAll() map[string][]*util.Address
}

// RedisAddressCache is an AddressCache backed by Redis: one set per peer
// (keyed "transport:ats:<peer>"), holding the binary-marshalled
// util.Address of every address that peer has ever been learned under.
type RedisAddressCache struct {
	cli *redis.Client
	ctx context.Context
}

// NewRedisAddressCache dials Redis per cfg. A nil cfg disables the cache.
func NewRedisAddressCache(cfg *config.AddressCacheConfig) *RedisAddressCache {
	if cfg == nil {
		return nil
	}
	return &RedisAddressCache{
		cli: redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB}),
		ctx: context.Background(),
	}
}

func addressCacheKey(peer *util.PeerID) string {
	return "transport:ats:" + peer.String()
}

// Save adds addr to peer's persisted address set.
func (c *RedisAddressCache) Save(peer *util.PeerID, addr *util.Address) {
	buf, err := data.Marshal(addr)
	if err != nil {
		logger.Printf(logger.WARN, "[ats-cache] marshal failed for %s: %s", addr.URI(), err.Error())
		return
	}
	if err := c.cli.SAdd(c.ctx, addressCacheKey(peer), buf).Err(); err != nil {
		logger.Printf(logger.WARN, "[ats-cache] redis SADD failed: %s", err.Error())
	}
}

// Delete removes addr from peer's persisted address set.
func (c *RedisAddressCache) Delete(peer *util.PeerID, addr *util.Address) {
	buf, err := data.Marshal(addr)
	if err != nil {
		return
	}
	if err := c.cli.SRem(c.ctx, addressCacheKey(peer), buf).Err(); err != nil {
		logger.Printf(logger.WARN, "[ats-cache] redis SREM failed: %s", err.Error())
	}
}

// LoadAll scans every persisted peer address set and returns it keyed by
// the peer's string identity.
func (c *RedisAddressCache) LoadAll() map[string][]*util.Address {
	out := make(map[string][]*util.Address)
	iter := c.cli.Scan(c.ctx, 0, "transport:ats:*", 0).Iterator()
	for iter.Next(c.ctx) {
		key := iter.Val()
		peerID := key[len("transport:ats:"):]
		members, err := c.cli.SMembers(c.ctx, key).Result()
		if err != nil {
			logger.Printf(logger.WARN, "[ats-cache] redis SMEMBERS failed for %s: %s", key, err.Error())
			continue
		}
		for _, m := range members {
			addr := new(util.Address)
			if err := data.Unmarshal(addr, []byte(m)); err != nil {
				continue
			}
			out[peerID] = append(out[peerID], addr)
		}
	}
	if err := iter.Err(); err != nil {
		logger.Printf(logger.WARN, "[ats-cache] redis SCAN failed: %s", err.Error())
	}
	return out
}
