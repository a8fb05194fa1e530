package resourceclient

import (
	"context"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	defaultBaseURL = "http://localhost:8082/MantenimientoWebApp-1.0-SNAPSHOT/ws/"
)

// Resource is the set of lookups every REST resource client offers. Concrete
// resource types satisfy it by embedding *Client.
type Resource interface {
	URL() string
	FindByName(name string, options ...RequestOptionFunc) (*Response, error)
	FindByID(id interface{}, options ...RequestOptionFunc) (*Response, error)
	FindAll(options ...RequestOptionFunc) (*Response, error)
}

// Client issues GET requests against a family of endpoints rooted at a fixed
// base URL. A Client is immutable after construction and safe for concurrent
// use.
type Client struct {
	// HTTP client used to communicate with the API.
	client *retryablehttp.Client

	// Base URL for API requests. Segments are appended verbatim, so it should
	// normally be specified with a trailing slash.
	baseURL string

	log logrus.FieldLogger
}

// Response wraps the http.Response returned by the server. The body is never
// read by the client; callers must close it.
type Response struct {
	*http.Response
}

// NewClient returns a new resource client. Without options it targets the
// default maintenance web service.
func NewClient(options ...ClientOptionFunc) (*Client, error) {
	c := &Client{
		baseURL: defaultBaseURL,
		log:     discardLogger(),
	}

	c.client = &retryablehttp.Client{
		Backoff:      retryablehttp.DefaultBackoff,
		CheckRetry:   neverRetry,
		ErrorHandler: retryablehttp.PassthroughErrorHandler,
		HTTPClient:   cleanhttp.DefaultPooledClient(),
		RetryMax:     0,
	}

	// Apply any given client options.
	for _, fn := range options {
		if fn == nil {
			continue
		}
		if err := fn(c); err != nil {
			return nil, err
		}
	}

	c.client.Logger = &leveledLogger{log: c.log}
	return c, nil
}

// neverRetry provides a callback for Client.CheckRetry which hands every
// response and transport error straight back to the caller.
func neverRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	return false, err
}

// URL returns the base URL the client was configured with.
func (c *Client) URL() string {
	return c.baseURL
}

// Resource returns a client rooted at the base URL with segment appended.
// The new client shares the transport and logger of c.
func (c *Client) Resource(segment string) *Client {
	return &Client{
		client:  c.client,
		baseURL: c.baseURL + segment,
		log:     c.log,
	}
}

// setBaseURL sets the base URL for API requests to a custom endpoint.
func (c *Client) setBaseURL(urlStr string) error {
	if urlStr == "" {
		return errors.New("base URL can not be blank")
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return errors.Wrapf(err, "invalid base URL %q", urlStr)
	}
	if !u.IsAbs() || u.Host == "" {
		return errors.Errorf("base URL %q must be absolute", urlStr)
	}

	c.baseURL = urlStr
	return nil
}

// NewRequest creates a GET request for the base URL with segment appended.
// The segment is not escaped and no separator is inserted.
func (c *Client) NewRequest(segment string, options []RequestOptionFunc) (*retryablehttp.Request, error) {
	req, err := retryablehttp.NewRequest(http.MethodGet, c.baseURL+segment, nil)
	if err != nil {
		return nil, err
	}

	for _, fn := range options {
		if fn == nil {
			continue
		}
		if err := fn(req); err != nil {
			return nil, err
		}
	}

	return req, nil
}

// Do sends a request and returns the response whatever its status code. An
// error is returned only when no response was received; it is the transport
// error itself.
func (c *Client) Do(req *retryablehttp.Request) (*Response, error) {
	entry := c.log.WithFields(logrus.Fields{
		"method": req.Method,
		"url":    req.URL.String(),
	})
	entry.Debug("sending request")

	resp, err := c.client.Do(req)
	if err != nil {
		entry.WithError(err).Debug("request failed")
		return nil, err
	}

	entry.WithField("status", resp.StatusCode).Debug("received response")
	return &Response{Response: resp}, nil
}

func (c *Client) get(segment string, options []RequestOptionFunc) (*Response, error) {
	req, err := c.NewRequest(segment, options)
	if err != nil {
		return nil, err
	}
	return c.Do(req)
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(ioutil.Discard)
	return l
}

// drain empties and closes a response body so the connection can be reused.
func drain(body io.ReadCloser) {
	io.Copy(ioutil.Discard, body)
	body.Close()
}
