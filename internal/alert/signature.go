package alert

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// SignPayload returns the signature header value for a payload sent at timestamp.
// The signed content is "{timestamp}.{body}" and the header format is "sha256=<hex>".
func SignPayload(secret string, timestamp int64, payload []byte) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(fmt.Sprintf("%d.%s", timestamp, payload)))
	return "sha256=" + hex.EncodeToString(h.Sum(nil))
}

// VerifyPayload reports whether signature matches the payload and timestamp
func VerifyPayload(secret string, timestamp int64, payload []byte, signature string) bool {
	return hmac.Equal([]byte(SignPayload(secret, timestamp, payload)), []byte(signature))
}
