package drawingboard

import (
	"fmt"
	"time"
)

// Frame-rate estimator tuning.
const (
	rateSmoothing     = 0.9 // weight of the windowed average in the blend
	rateMinFrames     = 5   // triggered frames between two rate samples
	rateWindowSize    = 5   // samples kept in the moving window
	defaultTargetRate = 30.0
)

// Clock is the frame loop's time source. It decides when the next frame is
// due and keeps a smoothed estimate of the achieved frame rate.
//
// Elapsed time is measured from a monotonic start instant and expressed in
// seconds. All methods except Tick take the elapsed time as an argument so
// that tests can drive the clock synthetically.
type Clock struct {
	now   func() time.Time
	start time.Time

	targetRate  float64
	period      float64
	lastTrigger float64
	elapsed     float64
	lastDelta   float64
	frames      int

	// rate estimation
	sinceSample int
	lastSample  float64
	samples     [rateWindowSize]float64
	sampleHead  int
	sampleCount int
	sampleSum   float64
	smoothed    float64
}

// NewClock creates a clock started now, targeting the given frame rate.
func NewClock(targetRate float64) (*Clock, error) {
	c := &Clock{now: time.Now}
	if err := c.SetTargetFrameRate(targetRate); err != nil {
		return nil, err
	}
	c.start = c.now()
	return c, nil
}

// SetTargetFrameRate changes the target rate. Non-positive rates are rejected.
func (c *Clock) SetTargetFrameRate(rate float64) error {
	if !(rate > 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidFrameRate, rate)
	}
	c.targetRate = rate
	c.period = 1 / rate
	return nil
}

// TargetFrameRate returns the configured target rate in frames per second.
func (c *Clock) TargetFrameRate() float64 { return c.targetRate }

// TargetFramePeriod returns 1/TargetFrameRate in seconds.
func (c *Clock) TargetFramePeriod() float64 { return c.period }

// Tick returns the seconds elapsed since the clock was created.
// It has no side effects.
func (c *Clock) Tick() float64 {
	return c.now().Sub(c.start).Seconds()
}

// ShouldTrigger reports whether more than one target period has passed since
// the last triggered frame.
func (c *Clock) ShouldTrigger(elapsed float64) bool {
	return elapsed-c.lastTrigger > c.period
}

// Advance records a triggered frame at the given elapsed time.
func (c *Clock) Advance(elapsed float64) {
	c.lastDelta = elapsed - c.lastTrigger
	c.lastTrigger = elapsed
	c.elapsed = elapsed
	c.frames++
}

// Observe records the latest polled elapsed time without triggering a frame.
func (c *Clock) Observe(elapsed float64) {
	c.elapsed = elapsed
}

// RecordFrame updates the frame-rate estimate. Call once per triggered frame.
//
// Every rateMinFrames frames an instantaneous rate is sampled into a bounded
// window, and the smoothed rate is blended toward the window average.
func (c *Clock) RecordFrame(elapsed float64) {
	if elapsed <= 0 {
		c.smoothed = c.targetRate
		return
	}
	c.sinceSample++
	if c.sinceSample < rateMinFrames {
		return
	}
	dt := elapsed - c.lastSample
	if dt > 0 {
		c.pushSample(float64(c.sinceSample) / dt)
		avg := c.sampleSum / float64(c.sampleCount)
		c.smoothed = rateSmoothing*avg + (1-rateSmoothing)*c.smoothed
	}
	c.lastSample = elapsed
	c.sinceSample = 0
}

// pushSample appends to the ring window, evicting the oldest sample when full.
func (c *Clock) pushSample(s float64) {
	if c.sampleCount == rateWindowSize {
		c.sampleSum -= c.samples[c.sampleHead]
	} else {
		c.sampleCount++
	}
	c.samples[c.sampleHead] = s
	c.sampleSum += s
	c.sampleHead = (c.sampleHead + 1) % rateWindowSize
}

// FrameRate returns the smoothed frame-rate estimate.
func (c *Clock) FrameRate() float64 { return c.smoothed }

// FrameCount returns the number of triggered frames.
func (c *Clock) FrameCount() int { return c.frames }

// Elapsed returns the elapsed time last seen by Advance or Observe.
func (c *Clock) Elapsed() float64 { return c.elapsed }

// LastFrameDelta returns the seconds between the two most recent triggered
// frames.
func (c *Clock) LastFrameDelta() float64 { return c.lastDelta }

// SampleCount returns the number of samples currently in the rate window.
func (c *Clock) SampleCount() int { return c.sampleCount }
