package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-kit/kit/endpoint"
	"github.com/google/uuid"

	"github.com/sirius-scholar/scholar/errors"
	"github.com/sirius-scholar/scholar/log"
)

// IdempotencyHeader is sent with every call that creates or toggles
// something on the backend.
const IdempotencyHeader = "Idempotency-Key"

type idempotencyKey struct{}

// WithIdempotencyKey makes the next mutating call issued with ctx use key.
func WithIdempotencyKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, idempotencyKey{}, key)
}

func setIdempotencyKey(ctx context.Context, r *http.Request) context.Context {
	key, _ := ctx.Value(idempotencyKey{}).(string)
	if key == "" {
		key = uuid.NewString()
	}
	r.Header.Set(IdempotencyHeader, key)
	return ctx
}

func encodeNothing(context.Context, *http.Request, interface{}) error {
	return nil
}

// maxErrorBody caps how much of a failed response is read for its message.
const maxErrorBody = 4 << 10

func checkStatus(res *http.Response) error {
	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return nil
	}

	var callErr struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	data, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	msg := http.StatusText(res.StatusCode)
	if err := json.Unmarshal(data, &callErr); err == nil {
		switch {
		case callErr.Error != "":
			msg = callErr.Error
		case callErr.Message != "":
			msg = callErr.Message
		}
	}

	return errors.New(fmt.Sprintf("error in call: %s", msg), errors.WithCode(res.StatusCode))
}

func decodeResponse[T any](_ context.Context, res *http.Response) (interface{}, error) {
	if err := checkStatus(res); err != nil {
		return nil, err
	}

	var v T
	if err := json.NewDecoder(res.Body).Decode(&v); err != nil {
		return nil, errors.New("invalid response body", errors.WithCode(http.StatusBadGateway), errors.WithCause(err))
	}
	return v, nil
}

// decodeStatus is used for calls whose response body is not used.
func decodeStatus(_ context.Context, res *http.Response) (interface{}, error) {
	if err := checkStatus(res); err != nil {
		return nil, err
	}
	return nil, nil
}

func middlewares(o options) func(string, endpoint.Endpoint) endpoint.Endpoint {
	return func(name string, next endpoint.Endpoint) endpoint.Endpoint {
		ep := next
		if o.timeout > 0 {
			ep = timeoutMiddleware(o.timeout)(ep)
		}
		if o.logger != nil {
			ep = loggingMiddleware(o.logger.WithField("call", name))(ep)
		}
		return ep
	}
}

func timeoutMiddleware(d time.Duration) endpoint.Middleware {
	return func(next endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			ctx, cancel := context.WithTimeout(ctx, d)
			defer cancel()
			return next(ctx, req)
		}
	}
}

func loggingMiddleware(logger log.Logger) endpoint.Middleware {
	return func(next endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			start := time.Now()
			res, err := next(ctx, req)
			if err != nil {
				logger.Errorf("backend call failed after %v: %v", time.Since(start), err)
			} else {
				logger.Printf("backend call done in %v", time.Since(start))
			}
			return res, err
		}
	}
}
