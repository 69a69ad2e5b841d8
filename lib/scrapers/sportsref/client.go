package sportsref

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/DoubleBarrelBirds/sportsipy/lib/configutil"
	"github.com/DoubleBarrelBirds/sportsipy/lib/htmlutil"
	"github.com/DoubleBarrelBirds/sportsipy/lib/telemetry"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/sportsref")

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

type ClientOptions struct {
	UserAgent      string `json:"user_agent"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// Client fetches stats pages and hands them to the extraction engine as
// parsed documents. It is the only component in the library that performs
// I/O.
type Client struct {
	http *resty.Client
}

func NewClient(opts ClientOptions) *Client {
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.TimeoutSeconds <= 0 {
		opts.TimeoutSeconds = 30
	}

	client := resty.New()
	client.SetHeader("user-agent", opts.UserAgent)
	client.SetTimeout(time.Duration(opts.TimeoutSeconds) * time.Second)

	telemetry.InstrumentResty(client, "scrapers/sportsref/http")

	return &Client{http: client}
}

// NewClientFromEnv builds a client from a sportsref.json5 config found by
// searching up the filesystem, falling back to defaults when there is none.
func NewClientFromEnv() *Client {
	opts, err := configutil.ReadRecursively[ClientOptions]("sportsref.json5")
	if err != nil {
		return NewClient(ClientOptions{})
	}
	return NewClient(opts)
}

// DefaultClient serves queries that do not need custom fetch behavior.
var DefaultClient = NewClient(ClientOptions{})

// Document fetches a page and returns it parsed, with HTML comment markers
// stripped first so that commented-out stats tables are reachable by the
// schemes.
func (c *Client) Document(ctx context.Context, url string) (*goquery.Document, error) {
	ctx, span := tracer.Start(ctx, "client:Document")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch page")
		return nil, err
	}
	if res.StatusCode() >= 400 {
		err := fmt.Errorf("unexpected status %d fetching %s", res.StatusCode(), url)
		span.RecordError(err)
		span.SetStatus(codes.Error, "bad response status")
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(htmlutil.StripComments(res.Body())))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, err
	}
	return doc, nil
}
