package session

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/samosastudio/samosa/internal/models"
	"github.com/samosastudio/samosa/internal/scene"
)

const (
	progressCeiling = 90
	progressStep    = 15
)

// ErrBusy is returned when a generation is already in flight
var ErrBusy = errors.New("a generation is already in progress")

// Controller owns the GenerationState of one user session. The progress it
// reports is an estimate only; the gateway gives no progress signal.
type Controller struct {
	client   Client
	interval time.Duration
	rnd      *rand.Rand
	now      func() time.Time
	observer func(models.GenerationState)

	mu    sync.Mutex
	state models.GenerationState
}

type Option func(*Controller)

// WithInterval sets how often the progress estimate advances. Non-positive
// durations are ignored.
func WithInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithRand sets the source of progress increments
func WithRand(rnd *rand.Rand) Option {
	return func(c *Controller) { c.rnd = rnd }
}

// WithObserver registers fn to receive a snapshot after every state change
func WithObserver(fn func(models.GenerationState)) Option {
	return func(c *Controller) { c.observer = fn }
}

func NewController(client Client, opts ...Option) *Controller {
	c := &Controller{
		client:   client,
		interval: 2 * time.Second,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot of the current state
func (c *Controller) State() models.GenerationState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *Controller) snapshot() models.GenerationState {
	s := c.state
	s.History = append([]models.GeneratedImage(nil), c.state.History...)
	return s
}

// update applies fn under the lock and then notifies the observer
func (c *Controller) update(fn func(*models.GenerationState)) {
	c.mu.Lock()
	fn(&c.state)
	s := c.snapshot()
	c.mu.Unlock()

	if c.observer != nil {
		c.observer(s)
	}
}

// Generate submits settings and records the result. Only one generation may
// run at a time.
func (c *Controller) Generate(ctx context.Context, settings scene.Settings) (*models.GeneratedImage, error) {
	c.mu.Lock()
	if c.state.IsGenerating {
		c.mu.Unlock()
		return nil, ErrBusy
	}
	c.state.IsGenerating = true
	c.mu.Unlock()

	c.update(func(s *models.GenerationState) {
		s.Progress = 0
		s.Error = nil
	})

	estimateCtx, stop := context.WithCancel(ctx)
	done := make(chan struct{})
	go c.estimate(estimateCtx, done)

	reply, err := c.client.Generate(ctx, settings)
	stop()
	<-done

	if err == nil && (!reply.Success || reply.ImageURL == "") {
		err = errors.New(lo.Ternary(reply.Error != "", reply.Error, "Unknown error occurred"))
	}
	if err != nil {
		message := err.Error()
		c.update(func(s *models.GenerationState) {
			s.IsGenerating = false
			s.Progress = 0
			s.Error = &message
		})
		return nil, err
	}

	image := models.GeneratedImage{
		ID:        uuid.NewString(),
		URL:       reply.ImageURL,
		Prompt:    lo.Ternary(reply.Prompt != "", reply.Prompt, models.DefaultPromptLabel),
		Timestamp: c.now(),
		Settings:  settings,
	}
	c.update(func(s *models.GenerationState) {
		s.IsGenerating = false
		s.Progress = 100
		s.CurrentImage = lo.ToPtr(image.URL)
		s.History = append([]models.GeneratedImage{image}, s.History...)
		s.Error = nil
	})
	return &image, nil
}

func (c *Controller) estimate(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			step := c.rnd.Float64() * progressStep
			c.update(func(s *models.GenerationState) {
				s.Progress = math.Min(s.Progress+step, progressCeiling)
			})
		}
	}
}

// Select makes the history entry with id the current image
func (c *Controller) Select(id string) bool {
	c.mu.Lock()
	image, ok := lo.Find(c.state.History, func(img models.GeneratedImage) bool {
		return img.ID == id
	})
	c.mu.Unlock()
	if !ok {
		return false
	}

	c.update(func(s *models.GenerationState) {
		s.CurrentImage = lo.ToPtr(image.URL)
	})
	return true
}

// Clear drops the history and the current image
func (c *Controller) Clear() {
	c.update(func(s *models.GenerationState) {
		s.History = nil
		s.CurrentImage = nil
	})
}
