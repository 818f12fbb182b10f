package config

import (
	"net"
	"strconv"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/pflag"
)

type Echo struct {
	Address      string `envconfig:"ECHO_LISTEN_ADDR"    default:"localhost"`
	Port         uint16 `envconfig:"ECHO_PORT"           default:"8080"`
	DC           string `envconfig:"DC"                  default:"Unknown"`
	TLS          bool   `envconfig:"ECHO_TLS"            default:"false"`
	TLSPort      uint16 `envconfig:"ECHO_TLS_PORT"       default:"8443"`
	CertFile     string `envconfig:"ECHO_TLS_CERT"       default:"cert.pem"`
	KeyFile      string `envconfig:"ECHO_TLS_KEY"        default:"key.pem"`
	MaxBodyBytes int64  `envconfig:"ECHO_MAX_BODY_BYTES" default:"0"`
	Metrics      bool   `envconfig:"ECHO_METRICS"        default:"false"`
	LogLevel     string `envconfig:"LOG_LEVEL"           default:"info"`
	LogFormat    string `envconfig:"LOG_FORMAT"          default:"text"`
}

// GetEcho resolves the environment first and lets command line flags in args
// override it. It returns pflag.ErrHelp when -h or --help is given.
func GetEcho(args []string) (out Echo, err error) {
	if err = envconfig.Process("", &out); err != nil {
		return
	}

	fs := pflag.NewFlagSet("echo", pflag.ContinueOnError)
	fs.StringVarP(&out.Address, "address", "a", out.Address, "address to listen on")
	fs.Uint16VarP(&out.Port, "port", "p", out.Port, "port to listen on")
	fs.BoolVar(&out.TLS, "tls", out.TLS, "also serve https on --tls-port")
	fs.Uint16Var(&out.TLSPort, "tls-port", out.TLSPort, "port to listen on for https")
	fs.StringVar(&out.CertFile, "cert", out.CertFile, "tls certificate file")
	fs.StringVar(&out.KeyFile, "key", out.KeyFile, "tls private key file")
	fs.Int64Var(&out.MaxBodyBytes, "max-body-bytes", out.MaxBodyBytes, "reject bodies larger than this, 0 means unlimited")
	fs.BoolVar(&out.Metrics, "metrics", out.Metrics, "expose prometheus metrics on GET /metrics")
	err = fs.Parse(args)
	return
}

func (e Echo) Addr() string {
	return net.JoinHostPort(e.Address, strconv.Itoa(int(e.Port)))
}

func (e Echo) TLSAddr() string {
	return net.JoinHostPort(e.Address, strconv.Itoa(int(e.TLSPort)))
}
