package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strconv"
	"time"
)

// Sign computes the request signature expected by the upstream provider: an
// HMAC-SHA256 over timestamp+method+endpoint+body (no delimiters), base64
// encoded. The endpoint component is the path only; query strings never enter
// the preimage.
func Sign(secret []byte, timestamp, method, endpoint, body string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(timestamp + method + endpoint + body))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Timestamp renders t in the provider's microsecond scale: milliseconds since
// the epoch multiplied by 1000, stringified.
func Timestamp(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli()*1000, 10)
}
