package drawingboard

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestNewClockRejectsNonPositiveRate(t *testing.T) {
	for _, rate := range []float64{0, -1, math.NaN()} {
		if _, err := NewClock(rate); !errors.Is(err, ErrInvalidFrameRate) {
			t.Errorf("NewClock(%v) error = %v, want ErrInvalidFrameRate", rate, err)
		}
	}
}

func TestClockSetTargetFrameRateKeepsOldOnError(t *testing.T) {
	c, err := NewClock(30)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.SetTargetFrameRate(-5); !errors.Is(err, ErrInvalidFrameRate) {
		t.Fatalf("SetTargetFrameRate(-5) error = %v", err)
	}
	if c.TargetFrameRate() != 30 {
		t.Errorf("TargetFrameRate = %v, want 30", c.TargetFrameRate())
	}
	assertNear(t, "TargetFramePeriod", c.TargetFramePeriod(), 1.0/30)
}

func TestClockShouldTrigger(t *testing.T) {
	c, _ := NewClock(10)
	tests := []struct {
		elapsed float64
		want    bool
	}{
		{0, false},
		{0.05, false},
		{0.1, false},
		{0.1000001, true},
		{1, true},
	}
	for _, tt := range tests {
		if got := c.ShouldTrigger(tt.elapsed); got != tt.want {
			t.Errorf("ShouldTrigger(%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
}

func TestClockGating(t *testing.T) {
	c, _ := NewClock(30)
	period := c.TargetFramePeriod()
	var last float64
	triggers := 0
	for ms := 1; ms <= 1000; ms++ {
		e := float64(ms) / 1000
		if !c.ShouldTrigger(e) {
			continue
		}
		if e-last <= period {
			t.Fatalf("frame at %v only %v after previous, period %v", e, e-last, period)
		}
		c.Advance(e)
		last = e
		triggers++
	}
	if triggers < 29 || triggers > 30 {
		t.Errorf("triggers in 1s = %d, want 29 or 30", triggers)
	}
	if c.FrameCount() != triggers {
		t.Errorf("FrameCount = %d, want %d", c.FrameCount(), triggers)
	}
}

func TestClockNoStarvation(t *testing.T) {
	c, _ := NewClock(60)
	c.Advance(2)
	if !c.ShouldTrigger(2 + c.TargetFramePeriod() + 1e-6) {
		t.Error("frame not due one period after the last trigger")
	}
}

func TestClockAdvanceTracksDelta(t *testing.T) {
	c, _ := NewClock(10)
	c.Advance(0.15)
	c.Advance(0.4)
	assertNear(t, "LastFrameDelta", c.LastFrameDelta(), 0.25)
	assertNear(t, "Elapsed", c.Elapsed(), 0.4)

	c.Observe(0.45)
	assertNear(t, "Elapsed after Observe", c.Elapsed(), 0.45)
	if c.FrameCount() != 2 {
		t.Errorf("FrameCount = %d, want 2", c.FrameCount())
	}
}

func TestClockRateConverges(t *testing.T) {
	c, _ := NewClock(30)
	for i := 1; i <= 200; i++ {
		e := float64(i) / 60
		c.Advance(e)
		c.RecordFrame(e)
	}
	if math.Abs(c.FrameRate()-60) > 1e-6 {
		t.Errorf("FrameRate = %v, want 60", c.FrameRate())
	}
}

func TestClockRateZeroElapsed(t *testing.T) {
	c, _ := NewClock(25)
	c.RecordFrame(0)
	if c.FrameRate() != 25 {
		t.Errorf("FrameRate after RecordFrame(0) = %v, want 25", c.FrameRate())
	}
	if math.IsNaN(c.FrameRate()) || math.IsInf(c.FrameRate(), 0) {
		t.Error("FrameRate is not finite")
	}
}

func TestClockSampleWindowBounded(t *testing.T) {
	c, _ := NewClock(30)
	for i := 1; i <= 500; i++ {
		c.RecordFrame(float64(i) / 30)
	}
	if c.SampleCount() != rateWindowSize {
		t.Errorf("SampleCount = %d, want %d", c.SampleCount(), rateWindowSize)
	}
}

func TestClockTick(t *testing.T) {
	c, _ := NewClock(30)
	base := time.Unix(100, 0)
	c.start = base
	c.now = func() time.Time { return base.Add(1500 * time.Millisecond) }
	assertNear(t, "Tick", c.Tick(), 1.5)
	assertNear(t, "Tick again", c.Tick(), 1.5)
	if c.FrameCount() != 0 {
		t.Error("Tick should not advance the clock")
	}
}
