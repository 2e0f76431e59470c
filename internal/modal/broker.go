package modal

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Pending is the caller's handle on a submitted request.
type Pending struct {
	prompt  Prompt
	done    chan struct{}
	outcome Outcome
	settled bool
}

// Prompt returns the normalized request.
func (p *Pending) Prompt() Prompt {
	return p.prompt
}

// Done is closed once the request has been settled.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Outcome returns the settlement, or false while the request is unsettled.
func (p *Pending) Outcome() (Outcome, bool) {
	select {
	case <-p.done:
		return p.outcome, true
	default:
		return "", false
	}
}

// Wait blocks until the request settles or ctx ends. An abandoned wait leaves
// the request in place; use Broker.Dismiss to withdraw it.
func (p *Pending) Wait(ctx context.Context) (Outcome, error) {
	select {
	case <-p.done:
		return p.outcome, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// State is a snapshot of what a UI layer should render.
type State struct {
	IsOpen bool
	// Settled is true when a confirm prompt was confirmed but the caller has
	// not closed it yet.
	Settled bool
	Prompt  Prompt
	Queued  int
}

// Broker shows at most one prompt at a time. Requests submitted while a
// prompt is open wait in FIFO order.
type Broker struct {
	mu          sync.Mutex
	current     *Pending
	queue       []*Pending
	subscribers map[chan struct{}]struct{}
}

// NewBroker constructs an idle broker.
func NewBroker() *Broker {
	return &Broker{subscribers: make(map[chan struct{}]struct{})}
}

// Request submits req and returns its handle.
func (b *Broker) Request(req Request) *Pending {
	prompt := req.Normalize()
	prompt.ID = uuid.NewString()
	p := &Pending{prompt: prompt, done: make(chan struct{})}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil {
		b.current = p
	} else {
		b.queue = append(b.queue, p)
	}
	b.notifyLocked()
	return p
}

// ShowSuccess shows a success notice.
func (b *Broker) ShowSuccess(message string) *Pending {
	return b.Request(Request{Kind: KindSuccess, Message: message})
}

// ShowError shows an error notice.
func (b *Broker) ShowError(message string) *Pending {
	return b.Request(Request{Kind: KindError, Message: message})
}

// ShowWarning shows a warning notice.
func (b *Broker) ShowWarning(message string) *Pending {
	return b.Request(Request{Kind: KindWarning, Message: message})
}

// ShowInfo shows an informational notice.
func (b *Broker) ShowInfo(message string) *Pending {
	return b.Request(Request{Kind: KindInfo, Message: message})
}

// ShowConfirm asks a yes/no question.
func (b *Broker) ShowConfirm(message string) *Pending {
	return b.Request(Request{Kind: KindConfirm, Message: message})
}

// Confirm asks a yes/no question and reports whether the user confirmed.
// The prompt is closed before Confirm returns.
func (b *Broker) Confirm(ctx context.Context, message string) (bool, error) {
	p := b.ShowConfirm(message)
	outcome, err := p.Wait(ctx)
	b.Dismiss(p)
	if err != nil {
		return false, err
	}
	return outcome == OutcomeConfirm, nil
}

// ResolveConfirm settles the open prompt with OutcomeConfirm. Confirm prompts
// stay open until closed; every other kind closes immediately.
func (b *Broker) ResolveConfirm() {
	b.mu.Lock()
	defer b.mu.Unlock()
	cur := b.current
	if cur == nil || cur.settled {
		return
	}
	settle(cur, OutcomeConfirm)
	if cur.prompt.Kind != KindConfirm {
		b.advanceLocked()
	}
	b.notifyLocked()
}

// ResolveCancel settles the open prompt with OutcomeCancel and closes it.
// It does nothing when the prompt has no cancel button.
func (b *Broker) ResolveCancel() {
	b.mu.Lock()
	defer b.mu.Unlock()
	cur := b.current
	if cur == nil || cur.settled || !cur.prompt.ShowCancel {
		return
	}
	settle(cur, OutcomeCancel)
	b.advanceLocked()
	b.notifyLocked()
}

// ResolveClose closes the open prompt, settling it with OutcomeClose unless
// it was already settled.
func (b *Broker) ResolveClose() {
	b.mu.Lock()
	defer b.mu.Unlock()
	cur := b.current
	if cur == nil {
		return
	}
	settle(cur, OutcomeClose)
	b.advanceLocked()
	b.notifyLocked()
}

// Dismiss withdraws p: it is closed if showing, removed if queued, and
// settled with OutcomeClose if nobody answered it yet.
func (b *Broker) Dismiss(p *Pending) {
	if p == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == p {
		settle(p, OutcomeClose)
		b.advanceLocked()
		b.notifyLocked()
		return
	}
	for i, queued := range b.queue {
		if queued == p {
			b.queue = append(b.queue[:i], b.queue[i+1:]...)
			settle(p, OutcomeClose)
			b.notifyLocked()
			return
		}
	}
}

// Reset settles every outstanding request with OutcomeClose and leaves the
// broker closed.
func (b *Broker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil && len(b.queue) == 0 {
		return
	}
	if b.current != nil {
		settle(b.current, OutcomeClose)
		b.current = nil
	}
	for _, p := range b.queue {
		settle(p, OutcomeClose)
	}
	b.queue = nil
	b.notifyLocked()
}

// State returns the current snapshot.
func (b *Broker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil {
		return State{Queued: len(b.queue)}
	}
	return State{
		IsOpen:  true,
		Settled: b.current.settled,
		Prompt:  b.current.prompt,
		Queued:  len(b.queue),
	}
}

// Subscribe returns a channel signalled after every state change. Signals
// coalesce; read State after each one. Call the returned func to unsubscribe.
func (b *Broker) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	b.mu.Lock()
	b.subscribers[ch] = struct{}{}
	b.mu.Unlock()
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subscribers, ch)
			b.mu.Unlock()
		})
	}
}

func (b *Broker) advanceLocked() {
	b.current = nil
	if len(b.queue) > 0 {
		b.current = b.queue[0]
		b.queue[0] = nil
		b.queue = b.queue[1:]
	}
}

func (b *Broker) notifyLocked() {
	for ch := range b.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func settle(p *Pending, outcome Outcome) {
	if p.settled {
		return
	}
	p.outcome = outcome
	p.settled = true
	close(p.done)
}
