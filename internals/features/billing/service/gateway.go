package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/shopspring/decimal"
)

// ErrInvalidSignature rejects a payment whose provider signature does not
// match. Nothing is persisted on this path.
var ErrInvalidSignature = errors.New("payment signature mismatch")

// OrderCreator hides the provider SDK; tests substitute a stub.
type OrderCreator interface {
	CreateOrder(amount decimal.Decimal, planName string) (orderID string, err error)
}

type Gateway struct {
	KeyID         string
	keySecret     string
	webhookSecret string
	orders        OrderCreator
}

// razorpayOrders is the production OrderCreator over the provider SDK.
type razorpayOrders struct {
	client *razorpay.Client
}

func (r *razorpayOrders) CreateOrder(amount decimal.Decimal, planName string) (string, error) {
	// Provider amounts are in the smallest currency unit.
	paise := amount.Mul(decimal.NewFromInt(100)).IntPart()
	data := map[string]interface{}{
		"amount":   paise,
		"currency": "INR",
		"notes":    map[string]interface{}{"plan": planName},
	}
	body, err := r.client.Order.Create(data, nil)
	if err != nil {
		return "", err
	}
	id, ok := body["id"].(string)
	if !ok || id == "" {
		return "", fmt.Errorf("provider returned no order id")
	}
	return id, nil
}

func NewGateway(keyID, keySecret, webhookSecret string) *Gateway {
	if webhookSecret == "" {
		webhookSecret = keySecret
	}
	return &Gateway{
		KeyID:         keyID,
		keySecret:     keySecret,
		webhookSecret: webhookSecret,
		orders:        &razorpayOrders{client: razorpay.NewClient(keyID, keySecret)},
	}
}

// NewGatewayWithOrders is the test seam.
func NewGatewayWithOrders(keyID, keySecret string, orders OrderCreator) *Gateway {
	return &Gateway{KeyID: keyID, keySecret: keySecret, webhookSecret: keySecret, orders: orders}
}

func (g *Gateway) CreateOrder(amount decimal.Decimal, planName string) (string, error) {
	return g.orders.CreateOrder(amount, planName)
}

// SignPayment is the provider's documented scheme: hex HMAC-SHA256 over
// "orderID|paymentID" with the key secret.
func (g *Gateway) SignPayment(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature compares in constant time.
func (g *Gateway) VerifySignature(orderID, paymentID, signature string) error {
	expected := g.SignPayment(orderID, paymentID)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}
	return nil
}

// VerifyWebhook checks the provider's webhook signature: hex HMAC-SHA256
// over the raw request body with the webhook secret.
func (g *Gateway) VerifyWebhook(body []byte, signature string) error {
	mac := hmac.New(sha256.New, []byte(g.webhookSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}
	return nil
}

// PlanExpiry advances from start by the plan's duration. Unknown plans get
// no extension. time.AddDate normalization applies at month ends
// (Jan 31 + 1 month lands in early March).
func PlanExpiry(planName string, start time.Time) time.Time {
	switch planName {
	case "1 Month":
		return start.AddDate(0, 1, 0)
	case "6 Months":
		return start.AddDate(0, 6, 0)
	case "12 Months":
		return start.AddDate(1, 0, 0)
	default:
		return start
	}
}
