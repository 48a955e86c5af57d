package paychangu

import (
	"log/slog"
	"net/http"
	"strings"
)

// DefaultBaseURL is the production PayChangu API root.
const DefaultBaseURL = "https://api.paychangu.com/"

// Client talks to the PayChangu API with a single secret key.
// It holds no per-call state and may be shared between goroutines.
type Client struct {
	secretKey  string
	baseURL    string
	header     http.Header
	httpClient *http.Client
	logger     *slog.Logger
}

type Option func(*Client)

// WithHTTPClient sets the transport. Timeouts, proxies and TLS settings are
// configured there; the default is http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithBaseURL points the client at another API root, such as a local stub.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/") + "/"
		}
	}
}

// WithLogger enables debug records for each request. Secrets and bodies are
// never logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger.With(slog.String("component", "paychangu"))
		}
	}
}

// New returns a Client authenticating with secretKey. A blank key fails with
// an *InvalidInputError. No network activity happens here.
func New(secretKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(secretKey) == "" {
		return nil, &InvalidInputError{Message: "Secret key not provided!"}
	}

	header := make(http.Header, 2)
	header.Set("Authorization", "Bearer "+secretKey)
	header.Set("Accept", "application/json")

	c := &Client{
		secretKey:  secretKey,
		baseURL:    DefaultBaseURL,
		header:     header,
		httpClient: http.DefaultClient,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) SecretKey() string {
	return c.secretKey
}

func (c *Client) BaseURL() string {
	return c.baseURL
}
