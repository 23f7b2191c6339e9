package domain

import "context"

// MergeHooks fans events out to every non-nil hook in the given sets, in
// order. Used to combine independent observers (e.g. debug logging and
// metrics) into the single hook set the engine accepts.
func MergeHooks(sets ...LifecycleHooks) LifecycleHooks {
	var merged LifecycleHooks

	for _, h := range sets {
		merged.OnQueryStart = chainQuery(merged.OnQueryStart, h.OnQueryStart)
		merged.OnQueryEnd = chainQuery(merged.OnQueryEnd, h.OnQueryEnd)
		merged.OnAPICall = chainAPI(merged.OnAPICall, h.OnAPICall)
		merged.OnAPIReturn = chainAPI(merged.OnAPIReturn, h.OnAPIReturn)
	}

	return merged
}

func chainQuery(a, b func(context.Context, *QueryEvent)) func(context.Context, *QueryEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *QueryEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}

func chainAPI(a, b func(context.Context, *APIEvent)) func(context.Context, *APIEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *APIEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
