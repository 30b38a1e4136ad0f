package hydrate

import "slices"

// Preset is a reusable bundle of query keys, such as a profile.
type Preset interface {
	ApplyTo(q *Query) error
}

// Hydrator chains query mutators and fills on one host.
// The first mutator error is kept and returned by the next fill, which then
// does nothing but clear the query.
type Hydrator[H Host] struct {
	host H
	opts []Option
	err  error
}

// For wraps host. opts apply to every fill made through the Hydrator.
func For[H Host](host H, opts ...Option) *Hydrator[H] {
	return &Hydrator[H]{host: host, opts: opts}
}

func (h *Hydrator[H]) Host() H {
	return h.host
}

// Err returns the pending mutator error, if any.
func (h *Hydrator[H]) Err() error {
	return h.err
}

// Only adds keys to the host's allow-list.
func (h *Hydrator[H]) Only(keys any) *Hydrator[H] {
	return h.mutate(func(q *Query) error { return q.Only(keys) })
}

// Exclude adds keys to the host's deny-list.
func (h *Hydrator[H]) Exclude(keys any) *Hydrator[H] {
	return h.mutate(func(q *Query) error { return q.Exclude(keys) })
}

// Apply adds the keys of every preset to the host's query.
func (h *Hydrator[H]) Apply(presets ...Preset) *Hydrator[H] {
	return h.mutate(func(q *Query) error {
		for _, p := range presets {
			if err := p.ApplyTo(q); err != nil {
				return err
			}
		}

		return nil
	})
}

// SkipQuery clears the host's query and drops a pending mutator error.
func (h *Hydrator[H]) SkipQuery() *Hydrator[H] {
	h.err = nil

	if t, err := resolveHost(h.host); err == nil {
		t.state.query.Reset()
	}

	return h
}

// FillBy runs a push fill, see the package-level FillBy.
func (h *Hydrator[H]) FillBy(source any, opts ...Option) (H, error) {
	if err := h.takeErr(); err != nil {
		return h.host, err
	}

	return h.host, fillBy(h.host, source, newConfig(h.options(opts)...))
}

// FillPropsBy runs a pull fill, see the package-level FillPropsBy.
func (h *Hydrator[H]) FillPropsBy(source any, opts ...Option) (H, error) {
	if err := h.takeErr(); err != nil {
		return h.host, err
	}

	return h.host, fillPropsBy(h.host, source, newConfig(h.options(opts)...))
}

func (h *Hydrator[H]) mutate(fn func(q *Query) error) *Hydrator[H] {
	if h.err != nil {
		return h
	}

	t, err := resolveHost(h.host)
	if err != nil {
		h.err = err
		return h
	}

	h.err = fn(&t.state.query)

	return h
}

// takeErr returns and clears the pending error. The aborted fill still
// consumes the query.
func (h *Hydrator[H]) takeErr() error {
	err := h.err
	if err == nil {
		return nil
	}

	h.err = nil

	if t, resolveErr := resolveHost(h.host); resolveErr == nil {
		t.state.query.Reset()
	}

	return err
}

func (h *Hydrator[H]) options(extra []Option) []Option {
	return append(slices.Clip(h.opts), extra...)
}
