package proxy

import (
	"encoding/base64"
	"io"
	"net/http"
)

// maxBody caps inbound request bodies; quiz_inspi carries every viewed record.
const maxBody = 4 << 20

func decodeBase64(s string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	return string(b), err
}

// ServeHTTP makes Handler usable as a plain net/http handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body string
	if r.Body != nil {
		raw, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
		if err != nil {
			h.writeResponse(w, errorResponse(http.StatusInternalServerError, msgServer))
			return
		}
		body = string(raw)
	}
	h.writeResponse(w, h.Handle(r.Context(), r.Method, body))
}

func (h *Handler) writeResponse(w http.ResponseWriter, resp Response) {
	for k, v := range corsHeaders {
		w.Header().Set(k, v)
	}
	w.WriteHeader(resp.Status)
	_, _ = io.WriteString(w, resp.Body)
}
