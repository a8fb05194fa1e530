package resourceclient

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// FindByName requests the record stored under name. The name is appended to
// the base URL as is, so it must already be URL-safe.
func (c *Client) FindByName(name string, options ...RequestOptionFunc) (*Response, error) {
	return c.get(name, options)
}

// FindByID requests the record with the given id. Strings, fmt.Stringers,
// integers and floats are accepted; any other value, nil included, is rejected
// before a request is sent.
func (c *Client) FindByID(id interface{}, options ...RequestOptionFunc) (*Response, error) {
	segment, err := formatID(id)
	if err != nil {
		return nil, err
	}
	return c.get(segment, options)
}

// FindAll requests the base URL itself.
func (c *Client) FindAll(options ...RequestOptionFunc) (*Response, error) {
	return c.get("", options)
}

func formatID(id interface{}) (string, error) {
	switch v := id.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	case int, int8, int16, int32, int64:
		return fmt.Sprint(v), nil
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(v), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", errors.Errorf("unsupported id type %T", id)
	}
}
