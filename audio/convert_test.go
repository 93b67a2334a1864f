package audio

import "testing"

func TestRateConverterPassthroughAtUnityRatio(t *testing.T) {
	r := newRateConverter(FramesPerSecond)
	input := []Frame{{1, 1}, {2, 2}, {3, 3}, {4, 4}}
	output := make([]Frame, 4)

	consumed, produced := r.process(input, output)
	if consumed != 4 || produced != 4 {
		t.Fatalf("consumed=%d produced=%d, want 4/4 at unity ratio", consumed, produced)
	}
}

func TestRateConverterUpsampleDoublesOutput(t *testing.T) {
	r := newRateConverter(FramesPerSecond / 2) // ratio = 2: input rate half of output
	input := []Frame{{0, 0}, {1, 1}}
	output := make([]Frame, 4)

	_, produced := r.process(input, output)
	if produced != 4 {
		t.Fatalf("produced=%d, want 4 (2x upsample of 2 input frames)", produced)
	}
}

func TestRateConverterRequiredInputFrames(t *testing.T) {
	r := newRateConverter(FramesPerSecond)
	if got := r.requiredInputFrames(10); got != 11 {
		t.Fatalf("requiredInputFrames(10) at unity ratio = %d, want 11", got)
	}
}

func TestRateConverterSetSpeedAdjustsRatio(t *testing.T) {
	r := newRateConverter(FramesPerSecond)
	r.setSpeed(FramesPerSecond, 2.0) // play twice as fast halves the ratio
	if got := r.requiredInputFrames(10); got <= 11 {
		t.Fatalf("requiredInputFrames(10) after 2x speed = %d, want more input frames needed", got)
	}
}

func TestRateConverterSetSpeedClampsToMinSpeed(t *testing.T) {
	r := newRateConverter(FramesPerSecond)
	r.setSpeed(FramesPerSecond, 0) // below MinSpeed
	unclamped := newRateConverter(FramesPerSecond)
	unclamped.setSpeed(FramesPerSecond, MinSpeed)
	if r.ratio != unclamped.ratio {
		t.Fatalf("setSpeed(0) ratio = %v, want clamped to MinSpeed's ratio %v", r.ratio, unclamped.ratio)
	}
}
