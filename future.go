package resourceclient

// Future holds the outcome of a lookup running on its own goroutine.
type Future struct {
	done chan struct{}
	resp *Response
	err  error
}

func newFuture(fn func() (*Response, error)) *Future {
	f := &Future{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.resp, f.err = fn()
	}()
	return f
}

// Done is closed once the lookup has completed.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the lookup completes and returns its result.
func (f *Future) Await() (*Response, error) {
	<-f.done
	return f.resp, f.err
}

// FindByNameAsync dispatches FindByName without blocking.
func (c *Client) FindByNameAsync(name string, options ...RequestOptionFunc) *Future {
	return newFuture(func() (*Response, error) { return c.FindByName(name, options...) })
}

// FindByIDAsync dispatches FindByID without blocking.
func (c *Client) FindByIDAsync(id interface{}, options ...RequestOptionFunc) *Future {
	return newFuture(func() (*Response, error) { return c.FindByID(id, options...) })
}

// FindAllAsync dispatches FindAll without blocking.
func (c *Client) FindAllAsync(options ...RequestOptionFunc) *Future {
	return newFuture(func() (*Response, error) { return c.FindAll(options...) })
}
