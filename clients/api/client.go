// Package api is the HTTP client of the Sirius Scholar backend.
package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/sirius-scholar/scholar"
	"github.com/sirius-scholar/scholar/errors"
	"github.com/sirius-scholar/scholar/log"
)

// DefaultBaseURL is the address of a backend running locally.
const DefaultBaseURL = "http://127.0.0.1:5000/api"

type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Client implements scholar.API. Each backend call is a go-kit client
// endpoint.
type Client struct {
	articles      endpoint.Endpoint
	users         endpoint.Endpoint
	login         endpoint.Endpoint
	register      endpoint.Endpoint
	like          endpoint.Endpoint
	createArticle endpoint.Endpoint
}

var _ scholar.API = (*Client)(nil)

type options struct {
	timeout time.Duration
	logger  log.Logger
}

type Option func(*options)

// WithTimeout bounds every call. Zero, the default, leaves the lifetime of
// a call to the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

func WithLogger(l log.Logger) Option {
	return func(o *options) { o.logger = l }
}

func NewClient(c HTTPClient, baseURL string, opts ...Option) (*Client, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	base, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, errors.New("invalid backend url", errors.WithCause(err))
	}

	mw := middlewares(o)
	newEndpoint := func(name, method, path string, enc kithttp.EncodeRequestFunc, dec kithttp.DecodeResponseFunc, mutating bool) endpoint.Endpoint {
		clientOpts := []kithttp.ClientOption{kithttp.SetClient(c)}
		if mutating {
			clientOpts = append(clientOpts, kithttp.ClientBefore(setIdempotencyKey))
		}

		ep := kithttp.NewClient(method, base.JoinPath(path), enc, dec, clientOpts...).Endpoint()
		return mw(name, ep)
	}

	return &Client{
		articles:      newEndpoint("articles", http.MethodGet, "articles", encodeNothing, decodeResponse[[]scholar.Article], false),
		users:         newEndpoint("users", http.MethodGet, "users", encodeNothing, decodeResponse[[]scholar.User], false),
		login:         newEndpoint("login", http.MethodPost, "login", kithttp.EncodeJSONRequest, decodeResponse[scholar.User], false),
		register:      newEndpoint("register", http.MethodPost, "register", kithttp.EncodeJSONRequest, decodeResponse[scholar.User], true),
		like:          newEndpoint("like", http.MethodPost, "like", kithttp.EncodeJSONRequest, decodeStatus, true),
		createArticle: newEndpoint("create_article", http.MethodPost, "articles", kithttp.EncodeJSONRequest, decodeResponse[scholar.Article], true),
	}, nil
}

func (c *Client) Articles(ctx context.Context) ([]scholar.Article, error) {
	res, err := call(ctx, c.articles, nil)
	if err != nil {
		return nil, err
	}
	return res.([]scholar.Article), nil
}

func (c *Client) Users(ctx context.Context) ([]scholar.User, error) {
	res, err := call(ctx, c.users, nil)
	if err != nil {
		return nil, err
	}
	return res.([]scholar.User), nil
}

func (c *Client) Login(ctx context.Context, creds scholar.Credentials) (scholar.User, error) {
	res, err := call(ctx, c.login, creds)
	if err != nil {
		return scholar.User{}, err
	}
	return res.(scholar.User), nil
}

func (c *Client) Register(ctx context.Context, r scholar.Registration) (scholar.User, error) {
	res, err := call(ctx, c.register, r)
	if err != nil {
		return scholar.User{}, err
	}
	return res.(scholar.User), nil
}

type likeRequest struct {
	UserID    int `json:"userId"`
	ArticleID int `json:"articleId"`
}

func (c *Client) Like(ctx context.Context, userID, articleID int) error {
	_, err := call(ctx, c.like, likeRequest{UserID: userID, ArticleID: articleID})
	return err
}

func (c *Client) CreateArticle(ctx context.Context, a scholar.NewArticle) (scholar.Article, error) {
	res, err := call(ctx, c.createArticle, a)
	if err != nil {
		return scholar.Article{}, err
	}
	return res.(scholar.Article), nil
}

// call runs ep and turns transport failures into Unavailable errors. Errors
// built by the decoders already carry the status of the backend.
func call(ctx context.Context, ep endpoint.Endpoint, req interface{}) (interface{}, error) {
	res, err := ep(ctx, req)
	if err == nil {
		return res, nil
	}

	if _, ok := err.(errors.Error); ok {
		return nil, err
	}
	return nil, errors.New("backend unreachable", errors.Unavailable(), errors.WithCause(err))
}
