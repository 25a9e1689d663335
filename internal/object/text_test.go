package object

import (
	"testing"

	"github.com/tomz197/classicroids/internal/loop/config"
)

func TestStatusTextFades(t *testing.T) {
	var st StatusText
	st.Show("Level 1")
	if !st.Visible() || st.Alpha != 1 {
		t.Fatalf("shown text should be opaque, got %v", st.Alpha)
	}

	ticks := 0
	for st.Visible() {
		st.Fade()
		ticks++
		if ticks > 1000 {
			t.Fatal("text never faded")
		}
	}
	// 2.5 seconds at 30 ticks per second
	want := int(config.TextFade.Seconds()*config.FPS) + 1
	if ticks < want-1 || ticks > want {
		t.Errorf("text faded after %d ticks, want about %d", ticks, want)
	}

	alpha := st.Alpha
	st.Fade()
	if st.Alpha != alpha {
		t.Error("invisible text should stop fading")
	}
}
