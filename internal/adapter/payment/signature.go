package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"github.com/sellaro/storefront/internal/domain/model"
)

// Signer computes and verifies provider signatures. The provider signs
// an HMAC-SHA256 digest over an ampersand-joined key=value string with
// keys in alphabetical order, hex encoded.
type Signer struct {
	partnerCode string
	accessKey   string
	secret      []byte
}

// NewSigner builds a Signer for the given provider credentials.
func NewSigner(partnerCode, accessKey, secretKey string) *Signer {
	return &Signer{partnerCode: partnerCode, accessKey: accessKey, secret: []byte(secretKey)}
}

// NotificationPayload renders the canonical string the provider signs
// for an IPN callback.
func (s *Signer) NotificationPayload(n model.PaymentNotification) string {
	return "accessKey=" + s.accessKey +
		"&amount=" + n.Amount.String() +
		"&extraData=" + n.ExtraData +
		"&orderId=" + n.OrderCode +
		"&partnerCode=" + s.partnerCode +
		"&requestId=" + n.RequestID +
		"&resultCode=" + strconv.Itoa(n.ResultCode) +
		"&transId=" + n.TransactionID
}

// Sign returns the hex-encoded HMAC-SHA256 of the payload.
func (s *Signer) Sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyNotification reports whether the notification's signature
// matches the expected digest.
func (s *Signer) VerifyNotification(n model.PaymentNotification) bool {
	expected := s.Sign(s.NotificationPayload(n))
	return hmac.Equal([]byte(expected), []byte(n.Signature))
}
