package payments

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chillapavankarthik-codes/fullstack-sportstore/models"
)

// Gateway creates hosted payment sessions for an order. The checkout engine
// depends only on this interface; the Stripe client below implements it.
type Gateway interface {
	CreateSession(order models.Order) (Session, error)
}

// Session is what the caller gets redirected with.
type Session struct {
	ID  string
	URL string
}

const sessionsURL = "https://api.stripe.com/v1/checkout/sessions"

// Client talks to the Stripe Checkout Sessions API. Calls are best-effort:
// one request, no retry.
type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{httpClient: &http.Client{Timeout: 20 * time.Second}}
}

// Configured reports whether a Stripe secret key is present. Checkout
// rejects external payments up front when it is not.
func Configured() bool {
	return os.Getenv("STRIPE_SECRET_KEY") != ""
}

// getStripeConfig reads the provider configuration from the environment.
func getStripeConfig() (secretKey, currency, origin string, err error) {
	secretKey = os.Getenv("STRIPE_SECRET_KEY")
	currency = os.Getenv("STRIPE_PRICE_CURRENCY")
	if currency == "" {
		currency = "usd"
	}
	origin = os.Getenv("APP_ORIGIN")
	if origin == "" {
		origin = "http://127.0.0.1:8080"
	}
	if secretKey == "" {
		err = fmt.Errorf("stripe configuration missing")
	}
	return
}

type sessionResponse struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// CreateSession posts a Checkout Session to Stripe with one price_data line
// per order item and returns the session id and redirect URL.
func (cl *Client) CreateSession(order models.Order) (Session, error) {
	secretKey, currency, origin, err := getStripeConfig()
	if err != nil {
		return Session{}, err
	}

	params := url.Values{}
	params.Set("mode", "payment")
	params.Set("success_url", origin+"/orders.html?status=success")
	params.Set("cancel_url", origin+"/checkout.html?status=cancel")
	for i, item := range order.Items {
		prefix := fmt.Sprintf("line_items[%d]", i)
		params.Set(prefix+"[price_data][currency]", currency)
		params.Set(prefix+"[price_data][product_data][name]", item.Name)
		params.Set(prefix+"[price_data][unit_amount]", strconv.Itoa(int(math.Round(item.Price*100))))
		params.Set(prefix+"[quantity]", strconv.Itoa(item.Qty))
	}

	req, err := http.NewRequest(http.MethodPost, sessionsURL, strings.NewReader(params.Encode()))
	if err != nil {
		return Session{}, err
	}
	req.Header.Set("Authorization", "Bearer "+secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := cl.httpClient.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("failed to reach Stripe: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var out sessionResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return Session{}, fmt.Errorf("failed to parse Stripe response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		if out.Error != nil && out.Error.Message != "" {
			return Session{}, fmt.Errorf("stripe error: %s", out.Error.Message)
		}
		return Session{}, fmt.Errorf("stripe API error (%d): %s", resp.StatusCode, string(body))
	}
	if out.URL == "" {
		return Session{}, fmt.Errorf("stripe returned empty checkout URL")
	}

	return Session{ID: out.ID, URL: out.URL}, nil
}
