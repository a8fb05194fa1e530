package resourceclient

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// An ErrorResponse reports a response whose status code signals a failure.
type ErrorResponse struct {
	Body     []byte
	Response *http.Response
	Message  string
}

// Error renders the failed request with its full URL, raw path included, and
// the status line of the response.
func (e *ErrorResponse) Error() string {
	msg := fmt.Sprintf("%s %s returned %s", e.Response.Request.Method, e.Response.Request.URL.String(), e.Response.Status)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// CheckResponse checks the response status and returns an *ErrorResponse for
// anything other than 2xx or 304. The lookups never call it; it is there for
// callers that want status codes turned into errors. On failure the body is
// consumed and closed.
func CheckResponse(r *http.Response) error {
	if c := r.StatusCode; (200 <= c && c <= 299) || c == http.StatusNotModified {
		return nil
	}

	errorResponse := &ErrorResponse{Response: r}
	data, err := ioutil.ReadAll(r.Body)
	r.Body.Close()
	if err == nil && len(data) > 0 {
		errorResponse.Body = data

		var raw interface{}
		if err := json.Unmarshal(data, &raw); err != nil {
			errorResponse.Message = strings.TrimSpace(string(data))
		} else {
			errorResponse.Message = flattenMessage(raw)
		}
	}

	return errorResponse
}

// flattenMessage turns a decoded JSON error payload into one line. Objects
// become sorted key=value pairs and arrays are joined with "; ".
func flattenMessage(raw interface{}) string {
	switch raw := raw.(type) {
	case nil:
		return ""

	case string:
		return raw

	case []interface{}:
		parts := make([]string, 0, len(raw))
		for _, v := range raw {
			parts = append(parts, flattenMessage(v))
		}
		return strings.Join(parts, "; ")

	case map[string]interface{}:
		parts := make([]string, 0, len(raw))
		for k, v := range raw {
			parts = append(parts, k+"="+flattenMessage(v))
		}
		sort.Strings(parts)
		return strings.Join(parts, ", ")

	default:
		return fmt.Sprint(raw)
	}
}

// DecodeJSON decodes the body of resp into v and closes it. An empty body
// leaves v untouched.
func DecodeJSON(resp *Response, v interface{}) error {
	defer drain(resp.Body)

	err := json.NewDecoder(resp.Body).Decode(v)
	if err == io.EOF {
		return nil
	}
	return errors.Wrap(err, "decode response body")
}
