package scene

import (
	"errors"
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/orrery/pkg/math"
)

func assertVec(t *testing.T, want, got math.Vec3, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "x")
	assert.InDelta(t, want.Y, got.Y, delta, "y")
	assert.InDelta(t, want.Z, got.Z, delta, "z")
}

func TestNewRejectsInvalidTrees(t *testing.T) {
	tests := []struct {
		name   string
		bodies []Body
		want   error
	}{
		{
			name:   "empty name",
			bodies: []Body{{Name: "a"}, {}},
			want:   ErrEmptyName,
		},
		{
			name:   "duplicate",
			bodies: []Body{{Name: "a"}, {Name: "a"}},
			want:   ErrDuplicateBody,
		},
		{
			name:   "unknown parent",
			bodies: []Body{{Name: "a", Parent: "nope"}},
			want:   ErrUnknownParent,
		},
		{
			name:   "self parent",
			bodies: []Body{{Name: "a", Parent: "a"}},
			want:   ErrCycle,
		},
		{
			name: "three cycle",
			bodies: []Body{
				{Name: "root"},
				{Name: "a", Parent: "c"},
				{Name: "b", Parent: "a"},
				{Name: "c", Parent: "b"},
			},
			want: ErrCycle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.bodies)
			assert.Nil(t, s)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}

func TestNewEmpty(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	s.Advance(1)
	s.Compose()
}

func TestNewDefaultsScaleAndColor(t *testing.T) {
	s, err := New([]Body{{Name: "a"}})
	require.NoError(t, err)
	assert.Equal(t, math.Splat(1), s.Body(0).Scale)
	assert.Equal(t, math.Splat(1), s.Body(0).Color)
}

func TestNewCopiesInput(t *testing.T) {
	in := []Body{{Name: "a", OrbitRate: 1}}
	s, err := New(in)
	require.NoError(t, err)
	s.Advance(1)
	if in[0].OrbitAngle != 0 {
		t.Errorf("caller slice mutated: OrbitAngle = %v", in[0].OrbitAngle)
	}
}

func TestOrderPutsParentsFirst(t *testing.T) {
	s, err := New([]Body{
		{Name: "grandchild", Parent: "child"},
		{Name: "child", Parent: "root"},
		{Name: "other"},
		{Name: "root"},
	})
	require.NoError(t, err)

	seen := make(map[int]bool)
	for _, i := range s.Order() {
		if p := s.Parent(i); p >= 0 && !seen[p] {
			t.Errorf("%s composed before its parent", s.Body(i).Name)
		}
		seen[i] = true
	}
	assert.Len(t, seen, 4)

	// roots keep declaration order
	assert.Equal(t, []int{2, 3, 1, 0}, s.Order())
}

func TestAdvanceIsAdditive(t *testing.T) {
	bodies := []Body{
		{Name: "a", OrbitRadius: 3, OrbitRate: 0.7, SpinRate: -1.3},
		{Name: "b", Parent: "a", OrbitRadius: 1, OrbitRate: 2.1, SpinRate: 4},
	}
	small, err := New(bodies)
	require.NoError(t, err)
	big, err := New(bodies)
	require.NoError(t, err)

	for range 1000 {
		small.Advance(0.005)
	}
	big.Advance(5)

	for i := range bodies {
		assert.InDelta(t, stdmath.Cos(big.Body(i).OrbitAngle), stdmath.Cos(small.Body(i).OrbitAngle), 1e-9)
		assert.InDelta(t, stdmath.Sin(big.Body(i).OrbitAngle), stdmath.Sin(small.Body(i).OrbitAngle), 1e-9)
		assert.InDelta(t, stdmath.Cos(big.Body(i).SpinAngle), stdmath.Cos(small.Body(i).SpinAngle), 1e-9)
	}

	small.Compose()
	big.Compose()
	assertVec(t, big.Position(1), small.Position(1), 1e-4)
}

func TestAdvanceIgnoresNegativeDelta(t *testing.T) {
	s, err := New([]Body{{Name: "a", OrbitRate: 1, SpinRate: 1}})
	require.NoError(t, err)
	s.Advance(-3)
	assert.Zero(t, s.Body(0).OrbitAngle)
	assert.Zero(t, s.Body(0).SpinAngle)
}

func TestAdvanceWrapsAngles(t *testing.T) {
	s, err := New([]Body{{Name: "a", OrbitRate: 100, SpinRate: -100}})
	require.NoError(t, err)
	for range 50 {
		s.Advance(1.7)
	}
	assert.Less(t, stdmath.Abs(s.Body(0).OrbitAngle), 2*stdmath.Pi)
	assert.Less(t, stdmath.Abs(s.Body(0).SpinAngle), 2*stdmath.Pi)
}

func TestRootAtOriginStaysPut(t *testing.T) {
	s, err := New([]Body{{Name: "sun", OrbitRate: 3, SpinRate: 5, Scale: math.Splat(0.2)}})
	require.NoError(t, err)
	for range 100 {
		s.Advance(0.37)
		s.Compose()
		assertVec(t, math.Vec3{}, s.Position(0), 1e-6)
	}
}

func TestChildOffsetFromParent(t *testing.T) {
	for _, inherit := range []Inherit{InheritPlacement, InheritWorld} {
		t.Run(inherit.String(), func(t *testing.T) {
			s, err := New([]Body{
				{Name: "parent", OrbitRadius: 10, Inherit: inherit},
				{Name: "child", Parent: "parent", OrbitRadius: 0.5},
			})
			require.NoError(t, err)

			want := s.Position(0).Add(math.V3(0.5, 0, 0))
			assertVec(t, want, s.Position(1), 1e-6)
		})
	}
}

func TestPlacementIgnoresParentScale(t *testing.T) {
	s, err := New([]Body{
		{Name: "earth", OrbitRadius: 10, Scale: math.Splat(0.05), Inherit: InheritPlacement},
		{Name: "moon", Parent: "earth", OrbitRadius: 0.5},
	})
	require.NoError(t, err)
	assertVec(t, math.V3(10.5, 0, 0), s.Position(1), 1e-6)
}

func TestWorldInheritsParentScale(t *testing.T) {
	s, err := New([]Body{
		{Name: "parent", Scale: math.V3(1.5, 0.5, 1.5), Inherit: InheritWorld},
		{Name: "child", Parent: "parent", Lift: 1},
	})
	require.NoError(t, err)
	assertVec(t, math.V3(0, 0.5, 0), s.Position(1), 1e-6)
}

func TestOrbitQuarterTurn(t *testing.T) {
	s, err := New([]Body{{Name: "p", OrbitRadius: 4, OrbitRate: stdmath.Pi / 2}})
	require.NoError(t, err)
	s.Advance(1)
	s.Compose()
	// counterclockwise seen from +Y: +X goes to -Z
	assertVec(t, math.V3(0, 0, -4), s.Position(0), 1e-5)
}

func TestWorldMatrixMatchesCompose(t *testing.T) {
	s, err := New(RobotArm())
	require.NoError(t, err)
	s.Advance(0.9)
	s.Compose()
	for i := range s.Len() {
		want := s.World(i)
		got := s.WorldMatrix(i)
		for k := range want {
			assert.InDelta(t, want[k], got[k], 1e-5, "%s[%d]", s.Body(i).Name, k)
		}
	}
}

func TestSolarSystemMoonFollowsEarth(t *testing.T) {
	s, err := New(SolarSystem())
	require.NoError(t, err)
	earth, ok := s.Lookup("earth")
	require.True(t, ok)
	moon, ok := s.Lookup("moon")
	require.True(t, ok)

	for range 40 {
		s.Advance(0.25)
		s.Compose()
		assert.InDelta(t, 10, s.Position(earth).Length(), 1e-4)
		assert.InDelta(t, 0.5, s.Position(moon).Distance(s.Position(earth)), 1e-4)
	}
}

func TestSolarSystemAlignment(t *testing.T) {
	s, err := New(SolarSystem())
	require.NoError(t, err)
	sun, _ := s.Lookup("sun")
	// the mesh pole on +Z ends up pointing at +Y, scaled by 0.2
	pole := s.World(sun).TransformDirection(math.UnitZ)
	assertVec(t, math.V3(0, 0.2, 0), pole, 1e-6)
}

func TestPresetColors(t *testing.T) {
	white := math.Splat(1)

	solar, err := New(SolarSystem())
	require.NoError(t, err)
	seen := make(map[math.Vec3]string)
	for i := range solar.Len() {
		b := solar.Body(i)
		assert.NotEqual(t, white, b.Color, "%s has no tint", b.Name)
		if other, dup := seen[b.Color]; dup {
			t.Errorf("%s and %s share a color", b.Name, other)
		}
		seen[b.Color] = b.Name
	}

	arm, err := New(RobotArm())
	require.NoError(t, err)
	for i := range arm.Len() {
		assert.Equal(t, white, arm.Body(i).Color, arm.Body(i).Name)
	}
}

func TestRobotArmJoints(t *testing.T) {
	s, err := New(RobotArm())
	require.NoError(t, err)
	arm1, _ := s.Lookup("arm1")
	arm2, _ := s.Lookup("arm2")
	floor, _ := s.Lookup("floor")

	for range 10 {
		assertVec(t, math.V3(0, 0.5, 0), s.Position(arm1), 1e-5)
		assertVec(t, math.V3(0, 1, 0), s.Position(arm2), 1e-5)
		assertVec(t, math.V3(0, -2, 0), s.Position(floor), 1e-5)
		s.Advance(0.31)
		s.Compose()
	}
}
