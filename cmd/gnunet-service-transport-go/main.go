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

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"gnunet/config"
	"gnunet/core"
	"gnunet/message"
	"gnunet/service"
	"gnunet/service/transport"

	"github.com/bfix/gospel/logger"
)

func main() {
	defer func() {
		logger.Println(logger.INFO, "[transport] Bye.")
		logger.Flush()
	}()
	logger.Println(logger.INFO, "[transport] Starting service...")

	var (
		cfgFile  string
		srvEndp  string
		err      error
		logLevel int
		rpcEndp  string
	)
	flag.StringVar(&cfgFile, "c", "gnunet-config.json", "GNUnet configuration file")
	flag.StringVar(&srvEndp, "s", "", "TRANSPORT service end-point (client API socket)")
	flag.IntVar(&logLevel, "L", logger.INFO, "TRANSPORT log level (default: INFO)")
	flag.StringVar(&rpcEndp, "R", "", "JSON-RPC endpoint (default: none)")
	flag.Parse()

	if err = config.ParseConfig(cfgFile); err != nil {
		logger.Printf(logger.ERROR, "[transport] Invalid configuration file: %s\n", err.Error())
		return
	}
	logger.SetLogLevel(logLevel)
	if len(srvEndp) == 0 {
		srvEndp = config.Cfg.Transport.Unixpath
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// core drives neighbour state and the underlying wire endpoints; the
	// transport service core sits on top of it as the client-facing
	// façade, blacklist arbiter and manipulation layer.
	c, err := core.NewCore(ctx, config.Cfg.Node)
	if err != nil {
		logger.Printf(logger.ERROR, "[transport] core failed to start: %s", err.Error())
		return
	}
	defer c.Shutdown()

	self := c.PeerID()
	hello := message.NewHelloMsg(self)
	addrs, err := c.Addresses()
	if err != nil {
		logger.Printf(logger.WARN, "[transport] could not enumerate local addresses: %s", err.Error())
	}
	list := make([]*message.HelloAddress, 0, len(addrs))
	for _, a := range addrs {
		list = append(list, message.NewHelloAddress(a))
	}
	hello.SetAddresses(list)

	svc := transport.NewService(config.Cfg.Transport, transport.NewCoreNeighbour(c), self, hello)
	c.Register("transport", core.NewListener(svc.Events(), nil))

	srv := service.NewServiceImpl("transport", svc)
	if err = srv.Start(srvEndp); err != nil {
		logger.Printf(logger.ERROR, "[transport] Error: '%s'", err.Error())
		return
	}

	var rpcCancel func() = func() {}
	if len(rpcEndp) > 0 {
		var rpcCtx context.Context
		rpcCtx, rpcCancel = context.WithCancel(context.Background())
		parts := strings.Split(rpcEndp, "+")
		if parts[0] != "tcp" {
			logger.Println(logger.ERROR, "[transport] RPC must have a TCP/IP endpoint")
			return
		}
		config.Cfg.RPC = &config.RPCConfig{Endpoint: parts[1]}
		if err = service.StartRPC(rpcCtx); err != nil {
			logger.Printf(logger.ERROR, "[transport] RPC failed to start: %s", err.Error())
			return
		}
		service.RegisterRPC(svc)
	}

	sigCh := make(chan os.Signal, 5)
	signal.Notify(sigCh)
	tick := time.NewTicker(5 * time.Minute)

loop:
	for {
		select {
		case sig := <-sigCh:
			switch sig {
			case syscall.SIGKILL, syscall.SIGINT, syscall.SIGTERM:
				logger.Printf(logger.INFO, "[transport] Terminating service (on signal '%s')\n", sig)
				break loop
			case syscall.SIGHUP:
				logger.Println(logger.INFO, "[transport] SIGHUP")
			case syscall.SIGURG:
				// TODO: https://github.com/golang/go/issues/37942
			default:
				logger.Println(logger.INFO, "[transport] Unhandled signal: "+sig.String())
			}
		case now := <-tick.C:
			logger.Println(logger.INFO, "[transport] Heart beat at "+now.String())
		}
	}

	rpcCancel()
	srv.Stop()
}
