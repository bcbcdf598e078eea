package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep/generators"
)

func TestCrashGeneratorDecays(t *testing.T) {
	g := NewCrashGenerator(sampleRate, 7)
	buf := make([][2]float64, sampleRate.N(1e8)) // 100ms per chunk

	peak := func() float64 {
		n, ok := g.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("stream returned n=%d ok=%v", n, ok)
		}
		p := 0.0
		for _, s := range buf {
			if s[0] != s[1] {
				t.Fatal("crash should be mono")
			}
			p = math.Max(p, math.Abs(s[0]))
		}
		return p
	}

	first := peak()
	for i := 0; i < 5; i++ {
		peak()
	}
	late := peak()
	if first > 0.5 || first == 0 {
		t.Fatalf("first chunk peak %v out of range", first)
	}
	if late >= first/10 {
		t.Fatalf("noise should decay: first peak %v, late peak %v", first, late)
	}
}

func TestAttenuateScalesTone(t *testing.T) {
	raw, err := generators.SineTone(sampleRate, 440)
	if err != nil {
		t.Fatal(err)
	}
	tone, err := generators.SineTone(sampleRate, 440)
	if err != nil {
		t.Fatal(err)
	}
	quiet := attenuate(tone, 0.25)

	want := make([][2]float64, 512)
	got := make([][2]float64, 512)
	raw.Stream(want)
	if n, ok := quiet.Stream(got); n != len(got) || !ok {
		t.Fatalf("stream returned n=%d ok=%v", n, ok)
	}
	for i := range got {
		if math.Abs(got[i][0]-want[i][0]*0.25) > 1e-9 {
			t.Fatalf("sample %d: got %v, want %v", i, got[i][0], want[i][0]*0.25)
		}
	}
	if quiet.Err() != nil {
		t.Fatal(quiet.Err())
	}
}

func TestUninitializedManagerIsSilent(t *testing.T) {
	sm := NewSoundManager()
	// Without Initialize these must not touch the speaker.
	sm.PlayCrash()
	sm.PlayWin()
	sm.Cleanup()
}
