package activity

import "context"

type metaKey struct{}

// Meta is the request information attached to activity entries.
type Meta struct {
	IP        string
	UserAgent string
	RequestID string
}

func WithMeta(ctx context.Context, meta Meta) context.Context {
	return context.WithValue(ctx, metaKey{}, meta)
}

func MetaFromContext(ctx context.Context) Meta {
	if ctx == nil {
		return Meta{}
	}
	meta, _ := ctx.Value(metaKey{}).(Meta)
	return meta
}
