package sim

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/cube-boxer/target"
	"github.com/lixenwraith/cube-boxer/vmath"
)

func testConfig() Config {
	return Config{BaseSpeed: 5, LifeTime: 10 * time.Second, DestroyPlaneZ: -1}
}

func TestStepMovesTowardPlayer(t *testing.T) {
	s := New(testConfig())
	tg := s.Add(target.KindLeft, vmath.V3(0.1, 1.3, 12), 0)

	s.Step(100*time.Millisecond, 100*time.Millisecond, 1.6)

	// 5 * 1.6 * 0.1 = 0.8
	if math.Abs(tg.Position.Z-11.2) > 1e-9 {
		t.Errorf("z = %v, want 11.2", tg.Position.Z)
	}
	if tg.Position.X != 0.1 || tg.Position.Y != 1.3 {
		t.Errorf("lateral position changed: %+v", tg.Position)
	}
}

func TestStepBoundaryMiss(t *testing.T) {
	s := New(testConfig())
	tg := s.Add(target.KindRight, vmath.V3(0, 0, -0.5), 0)

	misses := s.Step(100*time.Millisecond, 100*time.Millisecond, 1)
	if len(misses) != 1 || misses[0].Reason != MissBoundary {
		t.Fatalf("misses = %+v, want one boundary miss", misses)
	}
	if misses[0].Target.ID != tg.ID || misses[0].Target.Outcome != target.OutcomeMissed {
		t.Errorf("miss target = %+v", misses[0].Target)
	}
	if s.Len() != 0 {
		t.Errorf("resolved target must leave the live set, len=%d", s.Len())
	}
	if _, ok := s.Get(tg.ID); ok {
		t.Error("resolved target still reachable by id")
	}
}

func TestStepTimeoutMiss(t *testing.T) {
	s := New(testConfig())
	s.Add(target.KindLeft, vmath.V3(0, 0, 1000), 0)

	if misses := s.Step(time.Second, 9999*time.Millisecond, 1); len(misses) != 0 {
		t.Fatalf("premature timeout: %+v", misses)
	}
	misses := s.Step(time.Millisecond, 10*time.Second, 1)
	if len(misses) != 1 || misses[0].Reason != MissTimeout {
		t.Fatalf("misses = %+v, want one timeout miss", misses)
	}
}

func TestStepBoundaryCheckedBeforeTimeout(t *testing.T) {
	s := New(testConfig())
	s.Add(target.KindLeft, vmath.V3(0, 0, -0.9), 0)

	misses := s.Step(time.Second, 20*time.Second, 1)
	if len(misses) != 1 || misses[0].Reason != MissBoundary {
		t.Fatalf("misses = %+v, want boundary first", misses)
	}
}

func TestStepSkipsResolvedTargets(t *testing.T) {
	s := New(testConfig())
	hit := s.Add(target.KindLeft, vmath.V3(0, 0, -5), 0)
	hit.Resolve(target.OutcomeHit)
	other := s.Add(target.KindRight, vmath.V3(0, 0, 10), 0)

	misses := s.Step(time.Millisecond, time.Millisecond, 1)
	if len(misses) != 0 {
		t.Fatalf("resolved target produced a miss: %+v", misses)
	}
	if s.Len() != 1 {
		t.Fatalf("len = %d, want 1", s.Len())
	}
	if snap := s.Snapshot(); snap[0].ID != other.ID {
		t.Errorf("surviving target = %d, want %d", snap[0].ID, other.ID)
	}
}

func TestRemoveAndClear(t *testing.T) {
	s := New(testConfig())
	a := s.Add(target.KindLeft, vmath.Vec3{}, 0)
	b := s.Add(target.KindRight, vmath.Vec3{}, 0)
	s.Add(target.KindForbidden, vmath.Vec3{}, 0)

	if !s.Remove(a.ID) || s.Remove(a.ID) {
		t.Error("Remove must succeed exactly once")
	}
	if snap := s.Snapshot(); len(snap) != 2 || snap[0].ID != b.ID {
		t.Errorf("snapshot after remove = %+v", snap)
	}

	if n := s.Clear(); n != 2 {
		t.Errorf("Clear dropped %d, want 2", n)
	}
	c := s.Add(target.KindLeft, vmath.Vec3{}, 0)
	if c.ID <= b.ID {
		t.Errorf("ids must keep increasing after Clear: %d <= %d", c.ID, b.ID)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	s := New(testConfig())
	s.Add(target.KindLeft, vmath.V3(0, 0, 5), 0)
	snap := s.Snapshot()
	snap[0].Position.Z = 99

	if tg, _ := s.Get(snap[0].ID); tg.Position.Z != 5 {
		t.Error("snapshot mutation leaked into the live set")
	}
}
