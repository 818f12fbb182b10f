package echo

import (
	"fmt"
	"net"
	"net/http"
	"sort"
	"strings"
	"unicode/utf8"
)

const UnknownIP = "unknown-ip"

// Headers flattens the request headers into name -> value. Names are lower
// cased and the last value wins for repeated names. Host, Transfer-Encoding
// and Trailer, which net/http moves out of r.Header while parsing, are put
// back.
//
// A value that is valid UTF-8 is returned as is. Otherwise every '%' and
// every byte outside a valid UTF-8 sequence is written as %XX, so the
// original bytes can be recovered by percent-decoding.
func Headers(r *http.Request) map[string]string {
	headers := make(map[string]string, len(r.Header)+3)
	for name, values := range r.Header {
		if len(values) == 0 {
			continue
		}
		headers[strings.ToLower(name)] = textValue(values[len(values)-1])
	}
	if r.Host != "" {
		headers["host"] = textValue(r.Host)
	}
	if _, ok := headers["transfer-encoding"]; !ok && len(r.TransferEncoding) > 0 {
		headers["transfer-encoding"] = textValue(strings.Join(r.TransferEncoding, ", "))
	}
	if _, ok := headers["trailer"]; !ok && len(r.Trailer) > 0 {
		names := make([]string, 0, len(r.Trailer))
		for name := range r.Trailer {
			names = append(names, name)
		}
		sort.Strings(names)
		headers["trailer"] = textValue(strings.Join(names, ", "))
	}
	return headers
}

func textValue(v string) string {
	if utf8.ValidString(v) {
		return v
	}
	var b strings.Builder
	for i := 0; i < len(v); {
		r, size := utf8.DecodeRuneInString(v[i:])
		if (r == utf8.RuneError && size == 1) || v[i] == '%' {
			fmt.Fprintf(&b, "%%%02X", v[i])
		} else {
			b.WriteString(v[i : i+size])
		}
		i += size
	}
	return b.String()
}

// ClientIP returns the IP of the transport peer. Forwarding headers such as
// X-Forwarded-For are ignored.
func ClientIP(r *http.Request) string {
	if r.RemoteAddr == "" {
		return UnknownIP
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if i := strings.IndexByte(host, '%'); i >= 0 {
		host = host[:i]
	}
	if ip := net.ParseIP(host); ip != nil {
		return ip.String()
	}
	return UnknownIP
}

func newResponse(r *http.Request) Response {
	return Response{
		Headers:  Headers(r),
		Method:   r.Method,
		Query:    r.URL.RawQuery,
		ClientIP: ClientIP(r),
	}
}
