package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	apperrors "posterworks/internal/errors"
)

// DefaultTolerance bounds how stale a signed webhook timestamp may be before
// the delivery is rejected as a possible replay.
const DefaultTolerance = 5 * time.Minute

// VerifySignature checks the provider's signature header against the raw
// payload. The header carries a unix timestamp and one or more HMAC-SHA256
// signatures over "<timestamp>.<payload>": "t=1699000000,v1=abc...".
// Verification failure is always an error; there is no trusted-payload
// fallback.
func VerifySignature(payload []byte, header, secret string, tolerance time.Duration, now time.Time) error {
	if header == "" {
		return apperrors.NewSignatureError("missing signature header")
	}

	var timestamp int64
	var candidates []string
	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			ts, err := strconv.ParseInt(kv[1], 10, 64)
			if err != nil {
				return apperrors.NewSignatureError("malformed signature timestamp")
			}
			timestamp = ts
		case "v1":
			candidates = append(candidates, kv[1])
		}
	}

	if timestamp == 0 || len(candidates) == 0 {
		return apperrors.NewSignatureError("malformed signature header")
	}

	age := now.Sub(time.Unix(timestamp, 0))
	if age > tolerance || age < -tolerance {
		return apperrors.NewSignatureError("signature timestamp outside tolerance")
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	for _, candidate := range candidates {
		if hmac.Equal([]byte(candidate), []byte(expected)) {
			return nil
		}
	}

	return apperrors.NewSignatureError("no matching signature")
}
