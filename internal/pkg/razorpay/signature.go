package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// Sign computes the hex HMAC-SHA256 of payload with the given secret.
func Sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyPaymentSignature checks the signature the hosted checkout returns
// after a successful payment: HMAC-SHA256 of "orderID|paymentID" keyed by
// the key secret.
func VerifyPaymentSignature(orderID, paymentID, signature, keySecret string) bool {
	expected := Sign([]byte(orderID+"|"+paymentID), keySecret)
	return equalHex(expected, signature)
}

// VerifyWebhookSignature checks the X-Razorpay-Signature header against the
// raw webhook body keyed by the webhook secret.
func VerifyWebhookSignature(body []byte, signature, webhookSecret string) bool {
	expected := Sign(body, webhookSecret)
	return equalHex(expected, signature)
}

func equalHex(expectedHex, receivedHex string) bool {
	expected := strings.ToLower(strings.TrimSpace(expectedHex))
	received := strings.ToLower(strings.TrimSpace(receivedHex))
	return subtle.ConstantTimeCompare([]byte(expected), []byte(received)) == 1
}
