package screen

// State is the lifecycle of a lazily fetched value.
type State int

const (
	Unfetched State = iota
	Loading
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Unfetched:
		return "unfetched"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Policy decides when activating a resource issues a request.
type Policy int

const (
	// FetchOnce fetches until a non-empty value is cached.
	FetchOnce Policy = iota
	// FetchOnActivate fetches on every activation and every key change.
	FetchOnActivate
)

// Resource tracks one auxiliary value of a screen together with the request
// parameter (key) it was fetched for. Every request gets a token; outcomes
// carrying an older token are dropped.
type Resource[K comparable, V any] struct {
	Policy Policy
	// Empty reports whether a ready value should be treated as missing by
	// FetchOnce. Nil means any ready value is kept.
	Empty func(V) bool

	state State
	key   K
	value V
	err   error
	token uint64
}

func (r *Resource[K, V]) State() State { return r.state }
func (r *Resource[K, V]) Key() K       { return r.key }
func (r *Resource[K, V]) Value() V     { return r.value }
func (r *Resource[K, V]) Err() error   { return r.err }
func (r *Resource[K, V]) Loading() bool {
	return r.state == Loading
}

// ShouldFetch reports whether activating the resource for key needs a request.
func (r *Resource[K, V]) ShouldFetch(key K) bool {
	if r.Policy == FetchOnActivate {
		return true
	}

	switch r.state {
	case Loading:
		return r.key != key
	case Ready:
		if r.key != key {
			return true
		}
		return r.Empty != nil && r.Empty(r.value)
	default:
		return true
	}
}

// Begin marks the resource as loading for key and returns the token the
// outcome must carry. A value fetched for another key is dropped; a refetch
// for the same key keeps the previous value until the outcome arrives.
func (r *Resource[K, V]) Begin(key K) uint64 {
	if r.key != key {
		var zero V
		r.value = zero
	}
	r.token++
	r.state = Loading
	r.key = key
	r.err = nil
	return r.token
}

// Resolve stores the outcome of the request identified by token. A failed
// request leaves the zero value behind. It reports whether the outcome was
// current and got applied.
func (r *Resource[K, V]) Resolve(token uint64, value V, err error) bool {
	if token != r.token || r.state != Loading {
		return false
	}

	if err != nil {
		var zero V
		r.value = zero
		r.err = err
		r.state = Failed
		return true
	}

	r.value = value
	r.state = Ready
	return true
}

// Reset forgets the cached value and invalidates in-flight requests.
func (r *Resource[K, V]) Reset() {
	var (
		zeroK K
		zeroV V
	)
	r.token++
	r.state = Unfetched
	r.key = zeroK
	r.value = zeroV
	r.err = nil
}
