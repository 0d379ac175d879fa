package timer

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	bufferSize = 10
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(
			sampleRate,
			sampleRate.N(time.Duration(int(time.Second)/bufferSize)),
		)
	})

	return speakerErr
}

// Chime plays a short sine tone through the default audio device. It
// satisfies Notifier so that it can be triggered alongside the desktop
// notification.
type Chime struct {
	Frequency float64
	Length    time.Duration
}

// DefaultChime is a 660Hz tone lasting 400ms.
var DefaultChime = Chime{
	Frequency: 660,
	Length:    400 * time.Millisecond,
}

// Notify plays the chime and blocks until it has finished.
func (c Chime) Notify(string) error {
	err := initSpeaker()
	if err != nil {
		return err
	}

	tone, err := generators.SineTone(sampleRate, c.Frequency)
	if err != nil {
		return err
	}

	done := make(chan struct{})

	speaker.Play(beep.Seq(
		beep.Take(sampleRate.N(c.Length), tone),
		beep.Callback(func() {
			close(done)
		}),
	))

	<-done

	return nil
}
