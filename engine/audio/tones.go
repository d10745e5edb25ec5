package audio

import (
	"encoding/binary"
	"math"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/sirupsen/logrus"

	"github.com/jamesEmerson112/Valentine-2026/engine/logger"
)

// SampleRate of the generated tones
const SampleRate = 48000

// tone is a short sine blip with a linear fade out
type tone struct {
	freq float64 // Hz
	ms   float64
}

var tones = map[SoundID]tone{
	SndStart:   {523.25, 150},
	SndCatch:   {880, 90},
	SndHit:     {220, 160},
	SndWilt:    {110, 400},
	SndBloom:   {659.25, 120},
	SndWave:    {440, 200},
	SndVictory: {1046.5, 500},
	SndDefeat:  {98, 600},
}

// Synth renders 16-bit little endian stereo PCM, the format ebiten's
// players expect.
func Synth(freq, ms float64, sampleRate int) []byte {
	n := int(float64(sampleRate) * ms / 1000)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		env := 1 - float64(i)/float64(n)
		v := int16(math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)) * env * 0.6 * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}

// EbitenOutput plays synthesized tones through an ebiten audio context
type EbitenOutput struct {
	players map[SoundID]*ebaudio.Player
	log     logrus.FieldLogger
}

// NewEbitenOutput prepares one player per sound. Only one audio context
// may exist per process, so the caller passes it in.
func NewEbitenOutput(ctx *ebaudio.Context) *EbitenOutput {
	o := &EbitenOutput{
		players: make(map[SoundID]*ebaudio.Player, len(tones)),
		log:     logger.Log.WithField("component", "audio"),
	}
	for id, t := range tones {
		o.players[id] = ctx.NewPlayerFromBytes(Synth(t.freq, t.ms, ctx.SampleRate()))
	}
	return o
}

func (o *EbitenOutput) Play(id SoundID, volume float64) {
	p, ok := o.players[id]
	if !ok {
		return
	}
	p.SetVolume(volume)
	if err := p.Rewind(); err != nil {
		o.log.WithError(err).WithField("sound", id).Warn("failed to rewind sound")
	}
	p.Play()
}
