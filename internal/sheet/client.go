package sheet

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// FetchError wraps any failure to obtain a source table.
type FetchError struct {
	Source string
	URL    string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s table from %s: %v", e.Source, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

type Client struct {
	client *resty.Client
	format Format
}

func NewClient(timeout time.Duration, format Format) *Client {
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("User-Agent", "Mozilla/5.0")
	return &Client{client: client, format: format}
}

// Fetch downloads one exported sheet and parses it into a Table.
func (c *Client) Fetch(ctx context.Context, source, url string) (*Table, error) {
	resp, err := c.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, &FetchError{Source: source, URL: url, Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &FetchError{Source: source, URL: url, Err: fmt.Errorf("status %d", resp.StatusCode())}
	}

	body := resp.Body()
	if isHTML(resp.Header().Get("Content-Type"), body) {
		return nil, &FetchError{Source: source, URL: url, Err: fmt.Errorf("got HTML page %q instead of %s export", pageTitle(body), c.format)}
	}

	table, err := Parse(body, c.format)
	if err != nil {
		return nil, &FetchError{Source: source, URL: url, Err: err}
	}
	return table, nil
}
