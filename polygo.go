package polygo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/polygo/internal/resource"
	"github.com/hupe1980/polygo/spatial"
	"github.com/hupe1980/polygo/store"
)

// NoTag is reported by ClosestVertexTags when no vertex can be matched.
const NoTag = -1

// State is the lifecycle stage of a Context.
type State int

const (
	// StateEmpty accepts polygons; distance queries fail with ErrEmpty.
	StateEmpty State = iota
	// StatePolygonsLoaded accepts polygons and queries.
	StatePolygonsLoaded
	// StateIndexesBuilt accepts queries only. Entered by the first query.
	StateIndexesBuilt
	// StateFailed is entered when an index build fails. Every operation
	// returns the build error.
	StateFailed
	// StateClosed is entered by Close.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePolygonsLoaded:
		return "polygons_loaded"
	case StateIndexesBuilt:
		return "indexes_built"
	case StateFailed:
		return "failed"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Context holds a fixed set of polygons and the indexes built over them.
//
// Polygons are added first; the first query seals the context and later
// AddPolygon calls fail with ErrSealed. Queries may run concurrently with
// each other. Distinct contexts share no state.
type Context struct {
	id      uuid.UUID
	opts    options
	metrics MetricsCollector
	logger  *Logger
	k       int

	mu          sync.Mutex
	state       State
	failure     error
	store       *store.Store
	vertices    *spatial.VertexIndex
	edges       *spatial.EdgeIndex
	containment *spatial.ContainmentIndex

	rc       *resource.Controller
	reserved int64 // bytes charged to rc by this context's indexes
}

// New creates an empty context whose vertices carry coefficientsPerPoint
// coefficients each. Zero disables CustomVertexDistances.
//
// Example:
//
//	pc, err := polygo.New(2, polygo.WithWorkers(4))
//	if err != nil {
//	    return err
//	}
//	defer pc.Close()
func New(coefficientsPerPoint int, optFns ...Option) (*Context, error) {
	o, err := applyOptions(optFns)
	if err != nil {
		return nil, err
	}

	s, err := store.New(coefficientsPerPoint)
	if err != nil {
		return nil, translateError(err)
	}

	id := uuid.New()
	c := &Context{
		id:      id,
		opts:    o,
		metrics: o.metricsCollector,
		logger:  o.logger.WithContextID(id),
		k:       coefficientsPerPoint,
		store:   s,
		rc: resource.NewController(resource.Config{
			MemoryLimitBytes: o.memoryLimit,
			MaxWorkers:       int64(o.workers),
			PointsPerSecond:  o.pointsPerSecond,
			Burst:            chunkSize,
		}),
	}

	return c, nil
}

// ID returns the identifier attached to the context's log records.
func (c *Context) ID() uuid.UUID { return c.id }

// CoefficientsPerPoint returns the coefficient arity fixed at creation.
func (c *Context) CoefficientsPerPoint() int { return c.k }

// AddPolygon appends a polygon given as parallel coordinate slices.
//
// xs, ys and tags must have the same length of at least three. When the
// context carries coefficients, coefficients holds CoefficientsPerPoint
// values per vertex in vertex order; otherwise it is ignored. The ring may
// repeat its first point at the end. A rejected polygon leaves the context
// unchanged.
func (c *Context) AddPolygon(xs, ys []float64, tags []int, coefficients []float64) error {
	start := time.Now()
	id, err := c.addPolygon(xs, ys, tags, coefficients)
	c.metrics.RecordAddPolygon(time.Since(start), err)
	c.logger.LogAddPolygon(context.Background(), id, len(xs), err)
	return err
}

func (c *Context) addPolygon(xs, ys []float64, tags []int, coefficients []float64) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateClosed:
		return 0, ErrClosed
	case StateFailed:
		return 0, c.failure
	case StateIndexesBuilt:
		return 0, ErrSealed
	}

	id, err := c.store.Add(xs, ys, tags, coefficients)
	if err != nil {
		return 0, translateError(err)
	}
	c.state = StatePolygonsLoaded

	return id, nil
}

// Stats is a snapshot of a Context.
type Stats struct {
	ID                    uuid.UUID
	State                 State
	CoefficientsPerPoint  int
	Polygons              int
	Vertices              int
	VertexIndexBuilt      bool
	EdgeIndexBuilt        bool
	ContainmentIndexBuilt bool
	VertexIndexHeight     int
	EdgeIndexHeight       int

	// ReservedBytes is the estimated index memory charged to MemoryLimit.
	ReservedBytes int64
	MemoryLimit   int64
}

// Stats returns a snapshot of the context.
func (c *Context) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := Stats{
		ID:                    c.id,
		State:                 c.state,
		CoefficientsPerPoint:  c.k,
		VertexIndexBuilt:      c.vertices != nil,
		EdgeIndexBuilt:        c.edges != nil,
		ContainmentIndexBuilt: c.containment != nil,
		ReservedBytes:         c.rc.MemoryUsage(),
		MemoryLimit:           c.rc.MemoryLimit(),
	}
	if c.store != nil {
		st.Polygons = c.store.Len()
		st.Vertices = c.store.VertexCount()
	}
	if c.vertices != nil {
		st.VertexIndexHeight = c.vertices.Height()
	}
	if c.edges != nil {
		st.EdgeIndexHeight = c.edges.Height()
	}
	return st
}
