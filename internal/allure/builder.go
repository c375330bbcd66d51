package allure

import (
	"time"

	"github.com/google/uuid"
)

// Clock supplies the instant used for unset timestamps.
type Clock interface {
	Now() time.Time
}

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock is the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// IDGenerator supplies record and history identifiers.
type IDGenerator interface {
	NewID() string
}

type IDGeneratorFunc func() string

func (f IDGeneratorFunc) NewID() string {
	return f()
}

// UUIDGenerator draws random v4 UUIDs.
var UUIDGenerator IDGenerator = IDGeneratorFunc(func() string {
	return uuid.New().String()
})

type BuilderOption func(*Builder)

func WithClock(clock Clock) BuilderOption {
	return func(b *Builder) {
		b.clock = clock
	}
}

func WithIDGenerator(ids IDGenerator) BuilderOption {
	return func(b *Builder) {
		b.ids = ids
	}
}

func NewBuilder(opts ...BuilderOption) *Builder {
	b := Builder{clock: SystemClock, ids: UUIDGenerator}
	for _, o := range opts {
		o(&b)
	}

	return &b
}

// Builder creates result records with every unset field defaulted. It does
// not validate its input.
type Builder struct {
	clock Clock
	ids   IDGenerator
}

func (b *Builder) Now() time.Time {
	return b.clock.Now()
}

// TestFields are the caller supplied parts of a Test.
type TestFields struct {
	Name          string
	FullName      string
	Status        string
	StatusDetails StatusDetails
	Start         time.Time
	Stop          time.Time
	Labels        []Label
	Parameters    []Parameter
	Steps         []Step
	Description   string
}

func (b *Builder) NewTest(f TestFields) Test {
	start, stop := b.span(f.Start, f.Stop)

	fullName := f.FullName
	if fullName == "" {
		fullName = f.Name
	}

	return Test{
		UUID:          b.ids.NewID(),
		HistoryID:     b.ids.NewID(),
		Name:          f.Name,
		FullName:      fullName,
		Status:        f.Status,
		StatusDetails: f.StatusDetails,
		Stage:         StageFinished,
		Start:         start.UnixMilli(),
		Stop:          stop.UnixMilli(),
		Labels:        orEmpty(f.Labels),
		Parameters:    orEmpty(f.Parameters),
		Steps:         orEmpty(f.Steps),
		Attachments:   make([]Attachment, 0),
		Description:   f.Description,
	}
}

// NewStep returns a finished leaf step.
func (b *Builder) NewStep(name, status string, start, stop time.Time, params ...Parameter) Step {
	start, stop = b.span(start, stop)

	return Step{
		Name:        name,
		Status:      status,
		Stage:       StageFinished,
		Start:       start.UnixMilli(),
		Stop:        stop.UnixMilli(),
		Parameters:  orEmpty(params),
		Steps:       make([]Step, 0),
		Attachments: make([]Attachment, 0),
	}
}

func (b *Builder) span(start, stop time.Time) (time.Time, time.Time) {
	if start.IsZero() || stop.IsZero() {
		now := b.clock.Now()
		if start.IsZero() {
			start = now
		}
		if stop.IsZero() {
			stop = now
		}
	}

	return start, stop
}

func orEmpty[T any](list []T) []T {
	if list == nil {
		return make([]T, 0)
	}

	return list
}
