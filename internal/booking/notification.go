package booking

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultNotificationDuration is how long a notification stays visible.
const DefaultNotificationDuration = 2 * time.Second

// Notification texts raised after successful mutations.
const (
	MessageBooked  = "Appointment booked successfully."
	MessageUpdated = "Appointment updated successfully."
	MessageDeleted = "Appointment deleted successfully."
)

// Notifier raises a transient message for the user.
type Notifier interface {
	Raise(message string)
}

// Notice is the currently visible notification.
type Notice struct {
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Notifications keeps at most one live message. Raising a new message
// replaces the current one and restarts the expiry timer.
type Notifications struct {
	mu       sync.Mutex
	clock    Clock
	duration time.Duration
	log      *logrus.Entry

	current Notice
	live    bool
	timer   Timer
	// generation guards against a stopped timer whose callback already started.
	generation uint64
}

// NewNotifications creates a notification channel with the given visible
// duration. A non-positive duration uses DefaultNotificationDuration.
func NewNotifications(clock Clock, duration time.Duration, log *logrus.Entry) *Notifications {
	if clock == nil {
		clock = SystemClock()
	}
	if duration <= 0 {
		duration = DefaultNotificationDuration
	}
	return &Notifications{clock: clock, duration: duration, log: log}
}

// Raise shows message, replacing any live one.
func (n *Notifications) Raise(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	n.generation++
	gen := n.generation

	n.current = Notice{Message: message, ExpiresAt: n.clock.Now().Add(n.duration)}
	n.live = true
	n.timer = n.clock.AfterFunc(n.duration, func() { n.expire(gen) })

	if n.log != nil {
		n.log.WithField("notification", message).Debug("Notification raised")
	}
}

func (n *Notifications) expire(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if gen != n.generation {
		return
	}
	n.current = Notice{}
	n.live = false
	n.timer = nil
}

// Current returns the live notification, if any.
func (n *Notifications) Current() (Notice, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current, n.live
}

// Stop cancels any pending expiry and clears the message.
func (n *Notifications) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	n.generation++
	n.current = Notice{}
	n.live = false
	n.timer = nil
}
