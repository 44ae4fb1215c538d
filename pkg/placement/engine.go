package placement

import (
	"io"

	"github.com/charmbracelet/log"

	gerr "github.com/pictolab/glyphgrid/pkg/errors"
	"github.com/pictolab/glyphgrid/pkg/geometry"
	"github.com/pictolab/glyphgrid/pkg/pictograph"
	"github.com/pictolab/glyphgrid/pkg/placement/assets"
)

// Engine is the positioning orchestrator. It composes the location,
// orientation, rotation, key, adjustment, tuple, separation and mirror
// stages into the three calls the rendering collaborator consumes.
//
// An Engine holds only immutable state: the placement asset snapshot and
// the configured prop size. Concurrent calls are safe without locking.
type Engine struct {
	store    *assets.Assets
	propSize PropSize
	logger   *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger attaches a logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithPropSize sets the prop size category driving separation magnitudes.
func WithPropSize(s PropSize) Option {
	return func(e *Engine) { e.propSize = s }
}

// New builds an Engine around an immutable asset snapshot. The fixed
// geometry tables are validated here; a failure is a configuration-load
// error and fatal to the caller. A nil store behaves as an empty one.
func New(store *assets.Assets, opts ...Option) (*Engine, error) {
	if err := geometry.ValidateTables(); err != nil {
		return nil, gerr.Wrap(gerr.ErrCodeTableInvalid, err, "geometry tables")
	}
	if store == nil {
		store = assets.Empty()
	}
	e := &Engine{
		store:    store,
		propSize: DefaultPropSize,
		logger:   log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Placement is the computed placement of one arrow.
type Placement struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
	Mirror   bool    `json:"mirror"`

	// Location is the calculated compass location the position derives
	// from.
	Location pictograph.Location `json:"location"`

	// Source records which adjustment phase produced the offset from the
	// initial coordinate.
	Source AdjustmentSource `json:"source"`

	// SwapPropBeta carries the special config's boolean swap flag when one
	// was set for this arrow. The engine surfaces the flag but never acts
	// on it.
	SwapPropBeta bool `json:"swap_prop_beta,omitempty"`
}

// PositionAndRotation computes the final (x, y, rotation) for one arrow in
// its pictograph context. Validation and context errors surface here; the
// caller should skip the arrow and keep the rest of the pictograph.
func (e *Engine) PositionAndRotation(a pictograph.Arrow, pic *pictograph.Pictograph) (Placement, error) {
	if pic == nil {
		return Placement{}, gerr.New(gerr.ErrCodeContextRequired, "pictograph context is required")
	}
	if err := pic.Validate(); err != nil {
		return Placement{}, gerr.Wrap(gerr.ErrCodeInvalidInput, err, "invalid pictograph")
	}
	if err := a.Validate(); err != nil {
		return Placement{}, gerr.Wrap(gerr.ErrCodeInvalidMotion, err, "invalid %s arrow", a.Color)
	}
	return e.placeArrow(a, pic, e.endOrientations(pic))
}

// placeArrow runs the per-arrow pipeline with already-resolved end
// orientations.
func (e *Engine) placeArrow(a pictograph.Arrow, pic *pictograph.Pictograph, endOris map[pictograph.Color]pictograph.Orientation) (Placement, error) {
	loc, err := CalcLocation(a, pic)
	if err != nil {
		return Placement{}, err
	}

	if _, ok := endOris[a.Color]; !ok {
		// The arrow's own orientation must resolve; recompute for the error.
		if _, err := EndOrientation(a.Motion); err != nil {
			return Placement{}, err
		}
	}

	initial, ok := geometry.InitialPosition(a.Motion.Type, loc)
	if !ok {
		return Placement{}, gerr.New(gerr.ErrCodeInvalidLocation,
			"no coordinate for %s at %s", a.Motion.Type, loc)
	}

	adj := LookupAdjustment(a, pic, endOris, e.store)
	tuples := DirectionalTuples(adj.Point, a.Motion, pic.GridMode)
	final, ok := SelectCandidate(tuples, a.Motion, loc)
	if !ok {
		// Off-ring locations cannot come out of CalcLocation; treat as a
		// zero adjustment rather than failing the arrow.
		final = geometry.Point{}
	}

	pos := initial.Add(final.X, final.Y)
	return Placement{
		X:            pos.X,
		Y:            pos.Y,
		Rotation:     Rotation(a.Motion, loc),
		Mirror:       ShouldMirror(a),
		Location:     loc,
		Source:       adj.Source,
		SwapPropBeta: adj.Swap,
	}, nil
}

// SeparationOffsets computes the blue/red offset pair for a pictograph.
// Non-beta letters and non-overlapping configurations yield zero offsets.
func (e *Engine) SeparationOffsets(pic *pictograph.Pictograph) (Offsets, error) {
	if pic == nil {
		return Offsets{}, gerr.New(gerr.ErrCodeContextRequired, "pictograph context is required")
	}
	if err := pic.Validate(); err != nil {
		return Offsets{}, gerr.Wrap(gerr.ErrCodeInvalidInput, err, "invalid pictograph")
	}
	return SeparationOffsets(pic, e.endOrientations(pic), e.store, e.propSize), nil
}

// Result is a whole pictograph's worth of computed placements. Arrows that
// fail keep their error in Errors; the rest of the pictograph still
// resolves (skip the arrow, keep rendering the rest).
type Result struct {
	Placements map[pictograph.Color]Placement `json:"placements"`
	Offsets    Offsets                        `json:"offsets"`
	Errors     map[pictograph.Color]string    `json:"errors,omitempty"`
}

// Compute runs the full pipeline for every arrow of a pictograph plus the
// separation offsets. Only pictograph-level validation fails the call;
// per-arrow errors are isolated into the result.
func (e *Engine) Compute(pic *pictograph.Pictograph) (Result, error) {
	if pic == nil {
		return Result{}, gerr.New(gerr.ErrCodeContextRequired, "pictograph context is required")
	}
	if err := pic.Validate(); err != nil {
		return Result{}, gerr.Wrap(gerr.ErrCodeInvalidInput, err, "invalid pictograph")
	}

	endOris := e.endOrientations(pic)
	res := Result{Placements: map[pictograph.Color]Placement{}}
	for _, c := range pictograph.Colors {
		a, ok := pic.Arrow(c)
		if !ok {
			continue
		}
		p, err := e.placeArrow(a, pic, endOris)
		if err != nil {
			e.logger.Warn("arrow placement failed", "color", c, "letter", pic.Letter, "err", err)
			if res.Errors == nil {
				res.Errors = map[pictograph.Color]string{}
			}
			res.Errors[c] = err.Error()
			continue
		}
		res.Placements[c] = p
	}

	res.Offsets = SeparationOffsets(pic, endOris, e.store, e.propSize)
	return res, nil
}

// endOrientations resolves the end orientation of every arrow that has one.
// Arrows whose orientation fails to resolve are simply absent; their error
// surfaces when the arrow itself is placed.
func (e *Engine) endOrientations(pic *pictograph.Pictograph) map[pictograph.Color]pictograph.Orientation {
	out := make(map[pictograph.Color]pictograph.Orientation, len(pic.Arrows))
	for c, a := range pic.Arrows {
		if ori, err := EndOrientation(a.Motion); err == nil {
			out[c] = ori
		}
	}
	return out
}
