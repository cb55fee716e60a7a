package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port          int
	WebsocketPort int
	Timeout       time.Duration
}

// New. http.Server with timeouts from viper. websocket=true binds WebsocketPort, whose connections outlive
// the request timeout.
func New(ctx context.Context, handler http.Handler, config Config, websocket bool) *http.Server {
	port := config.Port
	writeTimeout := config.Timeout + viper.GetDuration("HTTP_SERVER_WRITE_TIMEOUT")
	if websocket {
		port = config.WebsocketPort
		writeTimeout = 0
	} else if config.Timeout > 0 {
		handler = http.TimeoutHandler(handler, config.Timeout, "request timed out")
	}

	return &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},

		ReadTimeout:       viper.GetDuration("HTTP_SERVER_READ_TIMEOUT"),
		WriteTimeout:      writeTimeout,
		IdleTimeout:       viper.GetDuration("HTTP_SERVER_IDLE_TIMEOUT"),
		ReadHeaderTimeout: viper.GetDuration("HTTP_SERVER_READ_HEADER_TIMEOUT"),
	}
}
