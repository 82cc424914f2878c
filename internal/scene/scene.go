package scene

import (
	"fmt"
	"slices"

	"github.com/Faultbox/orrery/pkg/math"
)

// Scene owns a validated body tree and the per-frame matrix buffers.
// It is not safe for concurrent use; the frame loop is its only caller.
type Scene struct {
	bodies  []Body
	parents []int // parent index, -1 for roots
	order   []int // parents before children, declaration order otherwise
	index   map[string]int

	placement []math.Mat4
	world     []math.Mat4
}

// New validates the bodies and builds a scene from a copy of them.
// Names must be unique and non-empty, parents must exist and the parent
// graph must be a forest. These checks run once here, never per frame.
func New(bodies []Body) (*Scene, error) {
	s := &Scene{
		bodies:    slices.Clone(bodies),
		parents:   make([]int, len(bodies)),
		index:     make(map[string]int, len(bodies)),
		placement: make([]math.Mat4, len(bodies)),
		world:     make([]math.Mat4, len(bodies)),
	}

	for i := range s.bodies {
		b := &s.bodies[i]
		if b.Name == "" {
			return nil, fmt.Errorf("body %d: %w", i, ErrEmptyName)
		}
		if _, dup := s.index[b.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateBody, b.Name)
		}
		s.index[b.Name] = i

		if b.Scale == (math.Vec3{}) {
			b.Scale = math.Splat(1)
		}
		if b.Color == (math.Vec3{}) {
			b.Color = math.Splat(1)
		}
	}

	for i, b := range s.bodies {
		s.parents[i] = -1
		if b.Parent == "" {
			continue
		}
		p, ok := s.index[b.Parent]
		if !ok {
			return nil, fmt.Errorf("%w %q for body %q", ErrUnknownParent, b.Parent, b.Name)
		}
		s.parents[i] = p
	}

	depth := make([]int, len(s.bodies))
	for i := range s.bodies {
		d, err := s.depthOf(i)
		if err != nil {
			return nil, err
		}
		depth[i] = d
	}

	s.order = make([]int, len(s.bodies))
	for i := range s.order {
		s.order[i] = i
	}
	slices.SortStableFunc(s.order, func(a, b int) int {
		return depth[a] - depth[b]
	})

	s.Compose()
	return s, nil
}

// depthOf walks the ancestors of body i. A walk longer than the body count
// can only happen on a cycle.
func (s *Scene) depthOf(i int) (int, error) {
	d := 0
	for p := s.parents[i]; p >= 0; p = s.parents[p] {
		d++
		if p == i || d > len(s.bodies) {
			return 0, fmt.Errorf("%w at %q", ErrCycle, s.bodies[i].Name)
		}
	}
	return d, nil
}

// Len returns the number of bodies.
func (s *Scene) Len() int {
	return len(s.bodies)
}

// Body returns body i for reading or tuning. Structural fields (Name,
// Parent) must not be changed after New.
func (s *Scene) Body(i int) *Body {
	return &s.bodies[i]
}

// Lookup returns the index of the named body.
func (s *Scene) Lookup(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Parent returns the parent index of body i, or -1 for a root.
func (s *Scene) Parent(i int) int {
	return s.parents[i]
}

// Order returns body indices with every parent ahead of its children.
// The slice is shared; do not modify it.
func (s *Scene) Order() []int {
	return s.order
}
