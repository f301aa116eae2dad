package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrders struct {
	orderID string
	err     error
}

func (s *stubOrders) CreateOrder(amount decimal.Decimal, planName string) (string, error) {
	return s.orderID, s.err
}

func testGateway() *Gateway {
	return NewGatewayWithOrders("rzp_test_key", "test_secret", &stubOrders{orderID: "order_123"})
}

func TestVerifySignature_RoundTrip(t *testing.T) {
	g := testGateway()

	sig := g.SignPayment("order_123", "pay_456")
	// Precomputed with: echo -n 'order_123|pay_456' | openssl dgst -sha256 -hmac test_secret
	assert.Equal(t, "6c343620f1910da483982cf25b9dc33d709afdd25930f08964ef60b65aefa831", sig)

	require.NoError(t, g.VerifySignature("order_123", "pay_456", sig))
}

func TestVerifySignature_SingleByteMutationRejected(t *testing.T) {
	g := testGateway()
	sig := g.SignPayment("order_123", "pay_456")

	for i := 0; i < len(sig); i++ {
		mutated := []byte(sig)
		if mutated[i] == 'a' {
			mutated[i] = 'b'
		} else {
			mutated[i] = 'a'
		}
		assert.ErrorIs(t, g.VerifySignature("order_123", "pay_456", string(mutated)),
			ErrInvalidSignature, "mutation at byte %d must be rejected", i)
	}
}

func TestVerifySignature_WrongSecret(t *testing.T) {
	g := testGateway()
	other := NewGatewayWithOrders("rzp_test_key", "other_secret", &stubOrders{})

	sig := other.SignPayment("order_123", "pay_456")
	assert.ErrorIs(t, g.VerifySignature("order_123", "pay_456", sig), ErrInvalidSignature)
}

func TestVerifyWebhook(t *testing.T) {
	g := testGateway()
	body := []byte(`{"event":"payment.captured"}`)

	mac := hmac.New(sha256.New, []byte("test_secret"))
	mac.Write(body)
	sig := hex.EncodeToString(mac.Sum(nil))

	require.NoError(t, g.VerifyWebhook(body, sig))
	assert.ErrorIs(t, g.VerifyWebhook([]byte(`{"event":"tampered"}`), sig), ErrInvalidSignature)
}

func TestPlanExpiry(t *testing.T) {
	start := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, time.April, 15, 10, 0, 0, 0, time.UTC), PlanExpiry("1 Month", start))
	assert.Equal(t, time.Date(2026, time.September, 15, 10, 0, 0, 0, time.UTC), PlanExpiry("6 Months", start))
	assert.Equal(t, time.Date(2027, time.March, 15, 10, 0, 0, 0, time.UTC), PlanExpiry("12 Months", start))

	// Unknown plans get no extension.
	assert.Equal(t, start, PlanExpiry("Lifetime", start))
	assert.Equal(t, start, PlanExpiry("", start))
}

func TestPlanExpiry_MonthEndRollover(t *testing.T) {
	// time.AddDate normalizes: Jan 31 + 1 month = Feb 31 = Mar 3 (2026 is
	// not a leap year). Pinned here on purpose.
	start := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC), PlanExpiry("1 Month", start))

	// Leap year: Jan 31 2024 + 1 month = Feb 31 = Mar 2.
	leap := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC), PlanExpiry("1 Month", leap))
}
