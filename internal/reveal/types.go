package reveal

// Direction selects whether a run grows or shrinks the visible prefix.
type Direction int

const (
	Reveal Direction = iota
	Conceal
)

func (d Direction) String() string {
	switch d {
	case Reveal:
		return "reveal"
	case Conceal:
		return "conceal"
	default:
		return "unknown"
	}
}

// RunID identifies one run of a Text. Effects carry it so that ticks from a
// superseded or cancelled run can be recognised and dropped.
type RunID uint64

// TickParams are the run parameters carried by a scheduled tick. Start is the
// original start timestamp of the run and is never refreshed.
type TickParams struct {
	Run       RunID
	Direction Direction
	Text      string
	Start     float64
	Duration  float64
}

type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectTick
	EffectStop
)

func (k EffectKind) String() string {
	switch k {
	case EffectNone:
		return "none"
	case EffectTick:
		return "tick"
	case EffectStop:
		return "stop"
	default:
		return "unknown"
	}
}

// Effect is what an operation asks its host to do next.
type Effect struct {
	Kind   EffectKind
	Params TickParams
}

func none() Effect { return Effect{Kind: EffectNone} }

func tickEffect(p TickParams) Effect { return Effect{Kind: EffectTick, Params: p} }

func stopEffect(p TickParams) Effect { return Effect{Kind: EffectStop, Params: p} }

// IsNone reports whether the effect requests nothing from the host.
func (e Effect) IsNone() bool { return e.Kind == EffectNone }

// Apply hands the effect to s. A none effect is dropped.
func (e Effect) Apply(s Scheduler) {
	switch e.Kind {
	case EffectTick:
		s.ScheduleTick(e.Params)
	case EffectStop:
		s.ScheduleStop(e.Params.Run)
	}
}

// Scheduler is the host capability a Text needs. On ScheduleTick the host
// must, at its next opportunity, call Text.Tick with exactly p. On
// ScheduleStop it must call Text.Finish with run. Deliveries for one Text
// must be serialized.
type Scheduler interface {
	ScheduleTick(p TickParams)
	ScheduleStop(run RunID)
}

// SchedulerFuncs adapts a pair of callbacks to a Scheduler.
type SchedulerFuncs struct {
	OnScheduleTick func(TickParams)
	OnScheduleStop func(RunID)
}

func (f SchedulerFuncs) ScheduleTick(p TickParams) {
	if f.OnScheduleTick != nil {
		f.OnScheduleTick(p)
	}
}

func (f SchedulerFuncs) ScheduleStop(run RunID) {
	if f.OnScheduleStop != nil {
		f.OnScheduleStop(run)
	}
}

// Clock returns a monotonic timestamp in milliseconds.
type Clock interface {
	Now() float64
}

// Cue is a fire-and-forget sound played when a reveal starts. Implementations
// must not block and must swallow their own failures.
type Cue interface {
	Play()
}

// Sample describes one computed tick.
type Sample struct {
	Run       RunID
	Direction Direction
	Elapsed   float64 // clamped time since start
	Progress  float64 // elapsed, inverted for conceal
	Duration  float64
	Target    int
	Total     int
	Visible   string
	Continue  bool
}

// Observer is notified after every tick of the current run.
type Observer interface {
	OnTick(s Sample)
}

// Frame is the renderer's view of a Text.
type Frame struct {
	Source    string
	Visible   string
	Animating bool
}
