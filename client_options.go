package resourceclient

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type ClientOptionFunc func(*Client) error

// WithBaseURL sets the base URL for API requests to a custom endpoint. The
// string is stored as given.
func WithBaseURL(urlStr string) ClientOptionFunc {
	return func(c *Client) error {
		return c.setBaseURL(urlStr)
	}
}

// WithHTTPClient replaces the pooled HTTP client used as transport.
func WithHTTPClient(httpClient *http.Client) ClientOptionFunc {
	return func(c *Client) error {
		if httpClient == nil {
			return errors.New("http client can not be nil")
		}
		c.client.HTTPClient = httpClient
		return nil
	}
}

// WithLogger sets the logger requests are traced to.
func WithLogger(log logrus.FieldLogger) ClientOptionFunc {
	return func(c *Client) error {
		if log == nil {
			return errors.New("logger can not be nil")
		}
		c.log = log
		return nil
	}
}
