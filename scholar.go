// Package scholar holds the data model of the Sirius Scholar web client:
// researchers, their articles and the computations the views derive from
// them. Persistence, authentication and recommendations belong to the
// backend, reached through API.
package scholar

//go:generate mockgen -source=scholar.go -destination=mock/scholar.go -package=mock

import (
	"context"
	"time"
)

// API is the backend the client delegates to.
type API interface {
	Articles(ctx context.Context) ([]Article, error)
	Users(ctx context.Context) ([]User, error)
	Login(ctx context.Context, c Credentials) (User, error)
	Register(ctx context.Context, r Registration) (User, error)
	Like(ctx context.Context, userID, articleID int) error
	CreateArticle(ctx context.Context, a NewArticle) (Article, error)
}

// StateStore keeps the encoded client state of each browser session.
type StateStore interface {
	// Get returns nil data and no error when id is unknown.
	Get(ctx context.Context, id string) ([]byte, error)
	Put(ctx context.Context, id string, data []byte) error
	Delete(ctx context.Context, id string) error

	// Sweep removes the states untouched for longer than idle and returns
	// how many were removed.
	Sweep(ctx context.Context, idle time.Duration) (int, error)
}
