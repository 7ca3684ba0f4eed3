package client

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/dungeonkeeper/internal/common"
	"github.com/dmitrijs2005/dungeonkeeper/internal/logging"
	"github.com/google/uuid"
)

// CredentialSource yields the credential of the active session, if any.
type CredentialSource interface {
	Credential() (string, bool)
}

// BearerTransport decorates outbound requests with the session credential.
type BearerTransport struct {
	source CredentialSource
	base   http.RoundTripper
	log    logging.Logger
	newID  func() string
}

// NewBearerTransport wraps base (http.DefaultTransport when nil).
func NewBearerTransport(source CredentialSource, base http.RoundTripper, log logging.Logger) *BearerTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	if log == nil {
		log = logging.Discard()
	}
	return &BearerTransport{source: source, base: base, log: log, newID: uuid.NewString}
}

func (t *BearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())

	r.Header.Del(common.AuthorizationHeaderName)
	if t.source != nil {
		if cred, ok := t.source.Credential(); ok {
			r.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+cred)
		}
	}

	id := r.Header.Get(common.RequestIDHeaderName)
	if id == "" {
		id = t.newID()
		r.Header.Set(common.RequestIDHeaderName, id)
	}

	start := time.Now()
	resp, err := t.base.RoundTrip(r)
	if err != nil {
		t.log.Debug(r.Context(), "request failed",
			"method", r.Method, "path", r.URL.Path, "request_id", id, "error", err)
		return nil, err
	}

	t.log.Debug(r.Context(), "request done",
		"method", r.Method, "path", r.URL.Path, "status", resp.StatusCode,
		"request_id", id, "elapsed", time.Since(start))
	return resp, nil
}
