package razorpay

import "testing"

func TestSign_KnownVector(t *testing.T) {
	// HMAC-SHA256("abc", key "key")
	sig := Sign([]byte("abc"), "key")
	if sig != "9c196e32dc0175f86f4b1cb89289d6619de6bee699e4c378e68309ed97a1a6ab" {
		t.Fatalf("unexpected hmac: %s", sig)
	}
}

func TestVerifyPaymentSignature(t *testing.T) {
	orderID := "order_9A33XWu170gUtm"
	paymentID := "pay_29QQoUBi66xm2f"
	secret := "secret"

	good := Sign([]byte(orderID+"|"+paymentID), secret)
	if !VerifyPaymentSignature(orderID, paymentID, good, secret) {
		t.Fatal("expected valid signature to verify")
	}
	if VerifyPaymentSignature(orderID, paymentID, good, "other-secret") {
		t.Fatal("expected signature with wrong secret to fail")
	}
	if VerifyPaymentSignature(orderID, "pay_other", good, secret) {
		t.Fatal("expected signature over different payment to fail")
	}
}

func TestVerifyWebhookSignature_CaseAndWhitespaceTolerant(t *testing.T) {
	body := []byte(`{"event":"payment.captured"}`)
	sig := Sign(body, "whsec")
	upper := "  " + toUpper(sig) + " "
	if !VerifyWebhookSignature(body, upper, "whsec") {
		t.Fatal("expected case-insensitive trimmed comparison")
	}
}

func toUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'f' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
