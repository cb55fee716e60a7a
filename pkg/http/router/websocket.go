package router

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/gobwas/ws"
	"github.com/lintang-b-s/flightplanner/pkg/concurrent"
	"github.com/lintang-b-s/flightplanner/pkg/http/router/controllers"
	http_server "github.com/lintang-b-s/flightplanner/pkg/http/server"
	"github.com/mailru/easygo/netpoll"
	"go.uber.org/zap"
)

const (
	WEBSOCKET_POOL_SIZE  = 128
	WEBSOCKET_POOL_QUEUE = 64
	WEBSOCKET_POOL_SPAWN = 16

	acceptScheduleTimeout = 1000 * time.Millisecond
	acceptCooldown        = 5 * time.Millisecond
)

// handleWebsocket. route-query websocket server on config.WebsocketPort. connections are watched with epoll
// (netpoll) and served by a bounded goroutine pool instead of one blocked goroutine per connection.
// returns once ctx is done.
func (api *API) handleWebsocket(ctx context.Context, config http_server.Config,
	routingService controllers.RoutingService,
) error {
	srv := http_server.New(ctx, nil, config, true)
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return err
	}
	api.log.Info(fmt.Sprintf("route query websocket API run on port %d", config.WebsocketPort))

	acceptDesc, err := netpoll.HandleListener(ln, netpoll.EventRead|netpoll.EventOneShot)
	if err != nil {
		ln.Close()
		return err
	}

	api.poller, err = netpoll.New(nil)
	if err != nil {
		ln.Close()
		return err
	}

	api.pool = concurrent.NewGoroutinePool(WEBSOCKET_POOL_SIZE, WEBSOCKET_POOL_QUEUE, WEBSOCKET_POOL_SPAWN)
	api.hub = controllers.NewHub(routingService, config.Timeout, api.log)

	// accept is a channel to signal about next incoming connection Accept() results.
	accept := make(chan error, 1)

	err = api.poller.Start(acceptDesc, func(ev netpoll.Event) {
		defer api.poller.Resume(acceptDesc)

		err := api.pool.ScheduleTimeout(acceptScheduleTimeout, func() {
			conn, err := ln.Accept()
			if err != nil {
				accept <- err
				return
			}

			accept <- nil
			api.handle(conn)
		})
		if err == nil {
			err = <-accept
		}
		if err == nil {
			return
		}

		var ne net.Error
		switch {
		case errors.Is(err, concurrent.ErrScheduleTimeout):
			// every pool goroutine is busy, cool down before accepting again
			api.log.Sugar().Infof("accept error: %v; retrying in %s", err, acceptCooldown)
			time.Sleep(acceptCooldown)
		case errors.As(err, &ne) && ne.Timeout():
			api.log.Sugar().Infof("accept error: %v; retrying in %s", err, acceptCooldown)
			time.Sleep(acceptCooldown)
		case errors.Is(err, net.ErrClosed), errors.Is(err, concurrent.ErrPoolClosed):
		default:
			api.log.Error("accept error", zap.Error(err))
		}
	})
	if err != nil {
		ln.Close()
		return err
	}

	<-ctx.Done()

	api.poller.Stop(acceptDesc)
	ln.Close()
	api.hub.RemoveAllUser()
	api.pool.Close()

	api.log.Info("websocket server stopped")
	return nil
}

// handle. upgrade one tcp connection and register its reads with the poller. each readable event schedules one
// route query on the pool.
func (api *API) handle(conn net.Conn) {
	br := bufio.NewReader(conn)

	rw := struct {
		io.Reader
		io.Writer
	}{br, conn}

	hs, err := ws.Upgrade(rw)
	if err != nil {
		api.log.Info("upgrade error", zap.Error(err), zap.String("connection", nameConn(conn)))
		conn.Close()
		return
	}

	api.log.Info("established websocket connection", zap.String("connection", nameConn(conn)),
		zap.String("protocol", hs.Protocol))

	user := api.hub.Register(conn)

	desc, err := netpoll.HandleRead(conn)
	if err != nil {
		api.log.Error("netpoll handle error", zap.Error(err))
		conn.Close()
		api.hub.Remove(user)
		return
	}

	err = api.poller.Start(desc, func(ev netpoll.Event) {
		if ev&(netpoll.EventReadHup|netpoll.EventHup) != 0 {
			// peer closed its end
			api.log.Info("user disconnected from websocket server", zap.Uint("user", user.GetId()))

			api.poller.Stop(desc)
			api.hub.Remove(user)
			conn.Close()
			return
		}

		err := api.pool.Schedule(func() {
			if err := user.ComputeRoute(); err != nil {
				api.log.Info("closing websocket connection", zap.Uint("user", user.GetId()), zap.Error(err))
				api.poller.Stop(desc)
				api.hub.Remove(user)
			}
		})
		if err != nil {
			api.poller.Stop(desc)
			api.hub.Remove(user)
			conn.Close()
		}
	})
	if err != nil {
		api.log.Error("netpoll start error", zap.Error(err))
		conn.Close()
		api.hub.Remove(user)
	}
}

func nameConn(conn net.Conn) string {
	return conn.LocalAddr().String() + " > " + conn.RemoteAddr().String()
}
