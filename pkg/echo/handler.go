package echo

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/envoyproxy/go-control-plane/pkg/log"
)

var ErrInvalidBody = errors.New("request body is not valid utf-8")

func NewHandler(logger log.Logger, options ...func(h *Handler)) *Handler {
	h := &Handler{logger: logger}
	for _, o := range options {
		o(h)
	}
	return h
}

// MaxBodyBytes caps the request body. Zero or less means unlimited.
func MaxBodyBytes(n int64) func(h *Handler) {
	return func(h *Handler) { h.maxBodyBytes = n }
}

// Handler holds no per-request state and is safe for concurrent use.
type Handler struct {
	logger       log.Logger
	maxBodyBytes int64
}

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /get", h.Get)
	mux.HandleFunc("POST /post", h.WithBody)
	mux.HandleFunc("PUT /put", h.WithBody)
	mux.HandleFunc("PATCH /patch", h.WithBody)
	mux.HandleFunc("GET /{$}", h.Get)
	mux.HandleFunc("POST /{$}", h.WithBody)
}

// Get serves GET only. ServeMux also routes HEAD to GET patterns, which
// gets the same 405 the mux gives any other unregistered method.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		allow := http.MethodGet
		if r.URL.Path == "/" {
			allow = "GET, POST"
		}
		w.Header().Set("Allow", allow)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	h.write(w, r, newResponse(r))
}

// WithBody drains the whole body before anything is written back.
func (h *Handler) WithBody(w http.ResponseWriter, r *http.Request) {
	data, err := h.readBody(w, r)
	if err != nil {
		h.logger.Debugf("%s %s from %s: %v", r.Method, r.URL.Path, r.RemoteAddr, err)

		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
		case errors.Is(err, ErrInvalidBody):
			http.Error(w, ErrInvalidBody.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "failed to read body", http.StatusInternalServerError)
		}
		return
	}

	h.write(w, r, ResponseWithBody{
		Response: newResponse(r),
		Data:     data,
	})
}

func (h *Handler) readBody(w http.ResponseWriter, r *http.Request) (string, error) {
	defer r.Body.Close()

	body := r.Body
	if h.maxBodyBytes > 0 {
		body = http.MaxBytesReader(w, body, h.maxBodyBytes)
	}

	bs, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(bs) {
		return "", ErrInvalidBody
	}
	return string(bs), nil
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		h.logger.Debugf("%s %s from %s: write response: %v", r.Method, r.URL.Path, r.RemoteAddr, err)
	}
}
