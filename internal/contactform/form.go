package contactform

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"contactrelay/internal/domain"
)

// DefaultSuccessWindow is how long the success state is shown
const DefaultSuccessWindow = 5 * time.Second

var (
	// ErrSubmitting is returned when a submission is already in flight.
	ErrSubmitting = errors.New("contactform: submission already in progress")
	// ErrInvalid is returned when the fields fail validation.
	ErrInvalid = errors.New("contactform: invalid fields")
	// ErrClosed is returned by Submit after Close.
	ErrClosed = errors.New("contactform: form is closed")
)

// Toasts shown to the user
var (
	ToastSent = Toast{
		Title:       "Message sent!",
		Description: "Thanks for reaching out! I'll get back to you soon.",
	}
	ToastFailed = Toast{
		Title:       "Failed to send message",
		Description: "Please try again or email me directly.",
		Destructive: true,
	}
)

// State is the display state of the form
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Toast is a transient notification for the user.
type Toast struct {
	Title       string
	Description string
	Destructive bool
}

// Result describes the outcome of one Submit call.
type Result struct {
	Toast       Toast
	FieldErrors domain.FieldErrors
}

// Submitter delivers a validated submission to the relay. *Client
// implements it.
type Submitter interface {
	Submit(ctx context.Context, s domain.ContactSubmission) (string, error)
}

// Form tracks one contact form instance.
type Form struct {
	relay         Submitter
	successWindow time.Duration
	onChange      func(State)
	logger        *zap.Logger

	mu     sync.Mutex
	state  State
	timer  *time.Timer
	gen    uint64
	closed bool
}

// Option configures a Form
type Option func(*Form)

// WithSuccessWindow overrides DefaultSuccessWindow
func WithSuccessWindow(d time.Duration) Option {
	return func(f *Form) { f.successWindow = d }
}

// OnStateChange registers fn to be called after every state transition.
// fn may be called from the revert timer's goroutine.
func OnStateChange(fn func(State)) Option {
	return func(f *Form) { f.onChange = fn }
}

// WithLogger sets the logger used for failed submissions
func WithLogger(logger *zap.Logger) Option {
	return func(f *Form) { f.logger = logger }
}

// NewForm creates a Form in the idle state
func NewForm(relay Submitter, opts ...Option) *Form {
	f := &Form{
		relay:         relay,
		successWindow: DefaultSuccessWindow,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// State returns the current state
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Submit validates fields and, if they pass, sends them to the relay.
// Invalid fields are reported without any network call.
func (f *Form) Submit(ctx context.Context, fields Fields) (Result, error) {
	submission, fieldErrs := Validate(fields)
	if fieldErrs.HasErrors() {
		return Result{FieldErrors: fieldErrs}, ErrInvalid
	}

	f.mu.Lock()
	switch {
	case f.closed:
		f.mu.Unlock()
		return Result{}, ErrClosed
	case f.state == StateSubmitting:
		f.mu.Unlock()
		return Result{}, ErrSubmitting
	}
	f.stopTimerLocked()
	f.state = StateSubmitting
	f.mu.Unlock()
	f.notify(StateSubmitting)

	_, err := f.relay.Submit(ctx, submission)
	if err != nil {
		f.logger.Warn("failed to send message", zap.Error(err))
		f.transition(StateError)
		f.transition(StateIdle)
		return Result{Toast: ToastFailed}, err
	}

	f.mu.Lock()
	f.state = StateSuccess
	if !f.closed {
		f.gen++
		gen := f.gen
		f.timer = time.AfterFunc(f.successWindow, func() { f.revert(gen) })
	}
	f.mu.Unlock()
	f.notify(StateSuccess)

	return Result{Toast: ToastSent}, nil
}

// Close cancels a pending success revert. Submit fails after Close.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.stopTimerLocked()
}

// revert returns to idle if the timer identified by gen is still current.
func (f *Form) revert(gen uint64) {
	f.mu.Lock()
	if f.gen != gen || f.state != StateSuccess {
		f.mu.Unlock()
		return
	}
	f.timer = nil
	f.state = StateIdle
	f.mu.Unlock()
	f.notify(StateIdle)
}

func (f *Form) transition(s State) {
	f.mu.Lock()
	f.state = s
	f.mu.Unlock()
	f.notify(s)
}

func (f *Form) stopTimerLocked() {
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.gen++
}

func (f *Form) notify(s State) {
	if f.onChange != nil {
		f.onChange(s)
	}
}
