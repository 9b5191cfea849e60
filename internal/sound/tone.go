package sound

import (
	"bytes"
	"encoding/binary"
	"math"
	"time"
)

// tone is a sine sweep with a linear fade out.
type tone struct {
	from, to float64 // Hz
	length   time.Duration
	gain     float64
}

var (
	jumpTone = tone{from: 660, to: 990, length: 90 * time.Millisecond, gain: 0.4}
	hitTone  = tone{from: 180, to: 70, length: 220 * time.Millisecond, gain: 0.6}
)

// samples renders the tone as 16-bit mono samples.
func (t tone) samples(sampleRate int) []int16 {
	n := int(int64(sampleRate) * int64(t.length) / int64(time.Second))
	out := make([]int16, n)
	phase := 0.0
	for i := range out {
		progress := float64(i) / float64(n)
		freq := t.from + (t.to-t.from)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)
		v := math.Sin(phase) * t.gain * (1 - progress)
		out[i] = int16(v * math.MaxInt16)
	}
	return out
}

// wav wraps the samples in a 16-bit stereo PCM RIFF file.
func (t tone) wav(sampleRate int) []byte {
	const (
		channels      = 2
		bitsPerSample = 16
	)
	samples := t.samples(sampleRate)
	dataSize := len(samples) * channels * bitsPerSample / 8
	blockAlign := channels * bitsPerSample / 8

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVEfmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	_ = binary.Write(&buf, binary.LittleEndian, uint16(channels))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*blockAlign))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))
	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(dataSize))
	for _, s := range samples {
		_ = binary.Write(&buf, binary.LittleEndian, s)
		_ = binary.Write(&buf, binary.LittleEndian, s)
	}
	return buf.Bytes()
}
