package audit

import (
	"context"
	"fmt"
	"math/rand/v2"
)

type contextKey string

const contextKeyOrigin contextKey = "audit_origin"

// Origin is where a tracked action came from.
type Origin struct {
	IP        string
	Location  string
	Simulated bool
}

// WithOrigin attaches an observed origin to ctx. Entries recorded with this
// context are not flagged as simulated.
func WithOrigin(ctx context.Context, ip, location string) context.Context {
	return context.WithValue(ctx, contextKeyOrigin, Origin{IP: ip, Location: location})
}

func originFromContext(ctx context.Context) (Origin, bool) {
	if ctx == nil {
		return Origin{}, false
	}
	o, ok := ctx.Value(contextKeyOrigin).(Origin)
	return o, ok
}

// SimulatedOrigin fabricates a private-range IP at the given location.
func SimulatedOrigin(location string) func() Origin {
	return func() Origin {
		return Origin{
			IP:        fmt.Sprintf("192.168.1.%d", rand.IntN(255)),
			Location:  location,
			Simulated: true,
		}
	}
}
