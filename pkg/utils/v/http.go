package v

import "net/textproto"

var (
	HeaderTraceID = textproto.CanonicalMIMEHeaderKey("X-Trace-ID")

	HeaderContentType = textproto.CanonicalMIMEHeaderKey("Content-Type")
)

const (
	// MIMEJSONUTF8 children responses are always utf-8 json
	MIMEJSONUTF8 = "application/json; charset=utf-8"
)
