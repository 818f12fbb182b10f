package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rueian/httpecho/pkg/config"
	"github.com/rueian/httpecho/pkg/echo"
	"github.com/rueian/httpecho/pkg/logger"
	"github.com/rueian/httpecho/pkg/metrics"
	"github.com/rueian/httpecho/pkg/server"
	"github.com/spf13/pflag"
)

// https://patorjk.com/software/taag/#p=display&f=Delta Corps Priest 1&t=echo
const banner = `
    ┌─┐┌─┐┬ ┬┌─┐
    ├┤ │  ├─┤│ │
    └─┘└─┘┴ ┴└─┘
`

var l logger.Logger = &logger.Std{}

func main() {
	dotenv := godotenv.Load()

	conf, err := config.GetEcho(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		l.Fatalf("config error %+v", err)
	}

	if l, err = logger.New(conf.LogFormat, conf.LogLevel); err != nil {
		l = &logger.Std{}
		l.Fatalf("logger error %+v", err)
	}
	if z, ok := l.(*logger.Zap); ok {
		defer z.Sync()
	}
	if dotenv != nil {
		l.Debugf("no .env loaded: %v", dotenv)
	}

	fmt.Print(banner, "\n")
	l.Infof("datacenter: %s", conf.DC)

	mux := http.NewServeMux()
	echo.NewHandler(l, echo.MaxBodyBytes(conf.MaxBodyBytes)).Register(mux)

	var handler http.Handler = mux
	if conf.Metrics {
		m := metrics.New()
		mux.Handle("GET /metrics", m.Handler())
		handler = m.Handle(mux)
	}

	plain, err := net.Listen("tcp", conf.Addr())
	if err != nil {
		l.Fatalf("listen error %+v", err)
	}
	l.Infof("Running on http://%s", plain.Addr().String())

	var (
		secure    net.Listener
		tlsConfig *tls.Config
	)
	if conf.TLS {
		if tlsConfig, err = server.LoadTLSConfig(conf.CertFile, conf.KeyFile); err != nil {
			l.Fatalf("tls error %+v", err)
		}
		if secure, err = net.Listen("tcp", conf.TLSAddr()); err != nil {
			l.Fatalf("listen error %+v", err)
		}
		l.Infof("Running on https://%s", secure.Addr().String())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(l, handler, server.TLSConfig(tlsConfig))
	if err := srv.Run(ctx, plain, secure); err != nil {
		l.Fatalf("serve error %+v", err)
	}
}
