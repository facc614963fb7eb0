package utils

import (
	"fmt"
	"net/http/cookiejar"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a resty client that keeps cookies between requests, so a
// session started by one call is sent with the next.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client rooted at baseURL with its own cookie jar.
func NewHTTPClient(baseURL string) (*HTTPClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("error creating cookie jar: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetCookieJar(jar).
		SetHeader("Content-Type", "application/json")

	return &HTTPClient{Client: client}, nil
}
