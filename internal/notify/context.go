package notify

import "context"

type providerKey struct{}

// WithProvider returns a copy of ctx carrying p.
func WithProvider(ctx context.Context, p *Provider) context.Context {
	return context.WithValue(ctx, providerKey{}, p)
}

// FromContext returns the provider carried by ctx. It fails with ErrNoProvider when
// ctx has none and with ErrProviderClosed when the scope was already torn down.
func FromContext(ctx context.Context) (*Provider, error) {
	p, ok := ctx.Value(providerKey{}).(*Provider)
	if !ok || p == nil {
		return nil, ErrNoProvider
	}
	if p.Closed() {
		return nil, ErrProviderClosed
	}
	return p, nil
}
