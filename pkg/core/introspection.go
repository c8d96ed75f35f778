package core

import (
	"github.com/aretw0/introspection"
)

// RouterState exposes internal state for observability.
type RouterState struct {
	PendingClears int    `json:"pending_clears"`
	StoreType     string `json:"store_type"`
}

// State implements introspection.Introspectable.
func (r *Router) State() any {
	storeType := "unknown"
	if r.svc != nil && r.svc.store != nil {
		storeType = "store"
		if comp, ok := r.svc.store.(introspection.Component); ok {
			storeType = comp.ComponentType()
		}
	}

	return RouterState{
		PendingClears: r.sessions.Len(),
		StoreType:     storeType,
	}
}

// ComponentType implements introspection.Component.
func (r *Router) ComponentType() string {
	return "router"
}

var _ introspection.Introspectable = (*Router)(nil)
var _ introspection.Component = (*Router)(nil)
