package renderer

import (
	"reflect"
	"testing"
)

type recordingStateDevice struct {
	calls []string
}

func (d *recordingStateDevice) SetDepthFunc(fn DepthFunc) {
	d.calls = append(d.calls, "depth:"+fn.String())
}

func (d *recordingStateDevice) SetBlend(enabled bool) {
	if enabled {
		d.calls = append(d.calls, "blend:on")
	} else {
		d.calls = append(d.calls, "blend:off")
	}
}

func (d *recordingStateDevice) SetDepthWrite(enabled bool) {
	if enabled {
		d.calls = append(d.calls, "mask:on")
	} else {
		d.calls = append(d.calls, "mask:off")
	}
}

func TestStateTrackerFirstApplyIssuesEverything(t *testing.T) {
	dev := &recordingStateDevice{}
	var tracker StateTracker

	tracker.Apply(dev, DefaultPipelineState)

	want := []string{"depth:LESS", "blend:off", "mask:on"}
	if !reflect.DeepEqual(dev.calls, want) {
		t.Errorf("Expected %v, got %v", want, dev.calls)
	}
}

func TestStateTrackerOnlyIssuesChanges(t *testing.T) {
	dev := &recordingStateDevice{}
	var tracker StateTracker
	tracker.Apply(dev, DefaultPipelineState)
	dev.calls = nil

	transparent := PipelineState{DepthFunc: DepthLess, Blend: true, DepthWrite: true}
	tracker.Apply(dev, transparent)
	tracker.Apply(dev, transparent)

	skybox := PipelineState{DepthFunc: DepthLessEqual, Blend: false, DepthWrite: true}
	tracker.Apply(dev, skybox)
	tracker.Apply(dev, DefaultPipelineState)

	want := []string{"blend:on", "depth:LEQUAL", "blend:off", "depth:LESS"}
	if !reflect.DeepEqual(dev.calls, want) {
		t.Errorf("Expected %v, got %v", want, dev.calls)
	}

	cur, ok := tracker.Current()
	if !ok || cur != DefaultPipelineState {
		t.Errorf("Current should be the default state, got %+v", cur)
	}
}

func TestStateTrackerInvalidate(t *testing.T) {
	dev := &recordingStateDevice{}
	var tracker StateTracker
	tracker.Apply(dev, DefaultPipelineState)
	tracker.Invalidate()
	dev.calls = nil

	tracker.Apply(dev, DefaultPipelineState)

	if len(dev.calls) != 3 {
		t.Errorf("Invalidated tracker should reissue all state, got %v", dev.calls)
	}
}
