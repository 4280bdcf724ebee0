// Package readability downloads web pages and extracts their main article
// text for chapter import.
package readability

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"net/url"
	"strings"
	"syscall"
	"time"

	"github.com/go-shiori/go-readability"
)

var (
	// ErrInvalidURL is returned for URLs that are not absolute http(s) URLs.
	ErrInvalidURL = errors.New("readability: invalid url")
	// ErrTooLarge is returned when the page exceeds the configured size limit.
	ErrTooLarge = errors.New("readability: page exceeds size limit")
	// ErrNoContent is returned when no article text could be extracted.
	ErrNoContent = errors.New("readability: no article content")
	// ErrForbiddenAddress is returned when the host resolves to a loopback,
	// private, link-local or otherwise non-public address.
	ErrForbiddenAddress = errors.New("readability: address not allowed")
)

const maxRedirects = 5

// sharedAddressSpace is the carrier-grade NAT range (RFC 6598), not covered by netip.Addr.IsPrivate.
var sharedAddressSpace = netip.MustParsePrefix("100.64.0.0/10")

// Article is the readable part of a fetched page.
type Article struct {
	Title    string
	Text     string
	SiteName string
	URL      string
}

// Fetcher downloads pages with a bounded body size.
// Only public unicast addresses are dialed, including after redirects.
type Fetcher struct {
	httpClient *http.Client
	maxBytes   int64
	userAgent  string
	allowAddr  func(netip.Addr) bool
	log        *slog.Logger
}

// NewFetcher creates a Fetcher. maxBytes bounds the HTML body read from the remote server.
func NewFetcher(timeout time.Duration, maxBytes int64, userAgent string, logger *slog.Logger) *Fetcher {
	f := &Fetcher{
		maxBytes:  maxBytes,
		userAgent: userAgent,
		allowAddr: isPublicAddr,
		log:       logger.With("adapter", "readability"),
	}

	dialer := &net.Dialer{Timeout: timeout, Control: f.checkDial}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	// An environment proxy would be dialed instead of the target host.
	transport.Proxy = nil
	transport.DialContext = dialer.DialContext

	f.httpClient = &http.Client{
		Timeout:       timeout,
		Transport:     transport,
		CheckRedirect: checkRedirect,
	}
	return f
}

// checkDial runs after DNS resolution, once per connection attempt.
func (f *Fetcher) checkDial(_, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrForbiddenAddress, address)
	}
	addr, err := netip.ParseAddr(host)
	if err != nil || !f.allowAddr(addr.Unmap()) {
		return fmt.Errorf("%w: %s", ErrForbiddenAddress, host)
	}
	return nil
}

func checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("readability: stopped after %d redirects", maxRedirects)
	}
	if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
		return fmt.Errorf("%w %q", ErrInvalidURL, req.URL.String())
	}
	return nil
}

func isPublicAddr(addr netip.Addr) bool {
	switch {
	case !addr.IsValid(),
		addr.IsUnspecified(),
		addr.IsLoopback(),
		addr.IsPrivate(),
		addr.IsLinkLocalUnicast(),
		addr.IsLinkLocalMulticast(),
		addr.IsInterfaceLocalMulticast(),
		addr.IsMulticast(),
		sharedAddressSpace.Contains(addr):
		return false
	}
	return addr.IsGlobalUnicast()
}

// Fetch downloads rawURL and extracts its article.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Article, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("%w %q", ErrInvalidURL, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("readability: create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.log.WarnContext(ctx, "fetch failed", slog.String("url", rawURL), slog.String("error", err.Error()))
		return nil, fmt.Errorf("readability: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("readability: unexpected status %d", resp.StatusCode)
	}
	if resp.ContentLength > f.maxBytes {
		return nil, ErrTooLarge
	}

	// Read one byte past the limit to tell a truncated body from one of exactly maxBytes.
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("readability: read body: %w", err)
	}
	if int64(len(body)) > f.maxBytes {
		return nil, ErrTooLarge
	}

	article, err := readability.FromReader(bytes.NewReader(body), parsed)
	if err != nil {
		return nil, fmt.Errorf("readability: extract article: %w", err)
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return nil, ErrNoContent
	}

	f.log.DebugContext(ctx, "article extracted",
		slog.String("url", rawURL),
		slog.String("title", article.Title),
		slog.Int("chars", len(text)),
	)

	return &Article{
		Title:    strings.TrimSpace(article.Title),
		Text:     text,
		SiteName: article.SiteName,
		URL:      parsed.String(),
	}, nil
}
