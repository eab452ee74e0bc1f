package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rajan221209/Chemistry-Calculator/internal/domain"
	"github.com/rajan221209/Chemistry-Calculator/internal/evaluator"
)

// Client drives one server-side session.
type Client struct {
	Base string
	HTTP *http.Client

	// ID is the server session in use; empty until the first call creates one.
	ID domain.SessionID
	// OnCreate, if set, is called with the ID of a newly created session.
	OnCreate func(domain.SessionID)
}

// NewHTTP returns a Client for the server at base using httpClient, or
// http.DefaultClient when nil.
func NewHTTP(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{Base: base, HTTP: httpClient}
}

// Press sends keys to the session. They are pressed as given, with no alias
// expansion on the server.
func (c *Client) Press(ctx context.Context, keys ...rune) (domain.Display, error) {
	var st domain.State
	in := struct {
		Keys string `json:"keys"`
		Raw  bool   `json:"raw"`
	}{Keys: string(keys), Raw: true}
	if err := c.sessionPost(ctx, "/keys", in, &st); err != nil {
		return "", err
	}
	return domain.Display(st.Text), nil
}

// Clear empties the session buffer.
func (c *Client) Clear(ctx context.Context) error {
	return c.sessionPost(ctx, "/clear", nil, nil)
}

// Backspace removes the last character of the session buffer.
func (c *Client) Backspace(ctx context.Context) (domain.Display, error) {
	var st domain.State
	if err := c.sessionPost(ctx, "/backspace", nil, &st); err != nil {
		return "", err
	}
	return domain.Display(st.Text), nil
}

// Evaluate evaluates the session buffer on the server. The server does not
// return the numeric value or the failure cause; a failed evaluation is
// reported as evaluator.ErrParse wrapping domain.ErrEvaluation.
func (c *Client) Evaluate(ctx context.Context) (domain.Outcome, error) {
	var st domain.State
	if err := c.sessionPost(ctx, "/evaluate", nil, &st); err != nil {
		return domain.Outcome{}, err
	}
	out := domain.Outcome{Normalized: st.Normalized, Display: domain.Display(st.Text)}
	if st.OK != nil && !*st.OK {
		out.Err = fmt.Errorf("%w: remote evaluation of %q", evaluator.ErrParse, st.Normalized)
	}
	return out, nil
}

// Text returns the session buffer.
func (c *Client) Text(ctx context.Context) (domain.Display, error) {
	if err := c.ensure(ctx); err != nil {
		return "", err
	}
	var st domain.State
	if err := c.getJSON(ctx, c.sessionPath(""), &st); err != nil {
		return "", err
	}
	return domain.Display(st.Text), nil
}

// History returns up to limit recent evaluations of the session.
func (c *Client) History(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if err := c.ensure(ctx); err != nil {
		return nil, err
	}
	path := c.sessionPath("/history")
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var out []domain.HistoryEntry
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Normalize asks the server to normalize expr without touching the session.
func (c *Client) Normalize(ctx context.Context, expr string) (string, error) {
	var out struct {
		Normalized string `json:"normalized"`
	}
	in := struct {
		Expr string `json:"expr"`
	}{Expr: expr}
	if err := c.post(ctx, "/normalize", in, &out); err != nil {
		return "", err
	}
	return out.Normalized, nil
}

// Close deletes the server session, if one was created.
func (c *Client) Close(ctx context.Context) error {
	if c.ID == "" {
		return nil
	}
	if err := c.do(ctx, http.MethodDelete, c.sessionPath(""), nil, nil); err != nil {
		return err
	}
	c.ID = ""
	return nil
}

func (c *Client) ensure(ctx context.Context) error {
	if c.ID != "" {
		return nil
	}
	var st domain.State
	if err := c.post(ctx, "/sessions", nil, &st); err != nil {
		return err
	}
	c.ID = st.ID
	if c.OnCreate != nil {
		c.OnCreate(c.ID)
	}
	return nil
}

func (c *Client) sessionPath(suffix string) string {
	return "/sessions/" + url.PathEscape(c.ID.String()) + suffix
}

func (c *Client) sessionPost(ctx context.Context, suffix string, in, out any) error {
	if err := c.ensure(ctx); err != nil {
		return err
	}
	return c.post(ctx, c.sessionPath(suffix), in, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
		body = buf
	}
	u := c.Base + path
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("remote %s %s: %s", method, u, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// Compile-time assertion that Client implements domain.CalculatorService.
var _ domain.CalculatorService = (*Client)(nil)
