package audio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	"github.com/mewkiz/flac"
)

// Clip is a decoded audio file reduced to a mono float64 signal in
// [-1, 1], ready for windowing and spectral analysis.
type Clip struct {
	Samples    []float64
	SampleRate int
}

// Duration returns the clip length.
func (c Clip) Duration() time.Duration {
	if c.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(len(c.Samples)) / float64(c.SampleRate) * float64(time.Second))
}

// SupportedExts lists the analyzable file extensions.
func SupportedExts() []string {
	return []string{".wav", ".mp3", ".flac", ".ogg"}
}

// IsSupportedExt reports whether ext (lowercase, with dot) is decodable.
func IsSupportedExt(ext string) bool {
	for _, e := range SupportedExts() {
		if e == ext {
			return true
		}
	}
	return false
}

// DecodeFile detects format by extension and decodes the whole file to
// a mono clip.
func DecodeFile(path string) (Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return Clip{}, err
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		return decodeWAV(f)
	case ".mp3":
		return decodeMP3(f)
	case ".flac":
		return decodeFLAC(f)
	case ".ogg":
		return decodeOGG(f)
	default:
		return Clip{}, fmt.Errorf("unsupported format: %s (supported: %s)", ext, strings.Join(SupportedExts(), ", "))
	}
}

func decodeWAV(f *os.File) (Clip, error) {
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return Clip{}, fmt.Errorf("invalid WAV file")
	}

	format := dec.Format()
	channels := format.NumChannels
	if channels < 1 {
		channels = 1
	}
	scale := float64(int(1) << (dec.BitDepth - 1))

	var mono []float64
	buf := &goaudio.IntBuffer{Data: make([]int, 8192*channels), Format: format}
	for {
		n, err := dec.PCMBuffer(buf)
		if err != nil && err != io.EOF {
			return Clip{}, fmt.Errorf("reading WAV PCM: %w", err)
		}
		for frame := 0; frame+channels <= n; frame += channels {
			sum := 0.0
			for ch := range channels {
				sum += float64(buf.Data[frame+ch])
			}
			mono = append(mono, sum/float64(channels)/scale)
		}
		if n == 0 || err == io.EOF {
			break
		}
	}
	return Clip{Samples: mono, SampleRate: int(format.SampleRate)}, nil
}

func decodeMP3(f *os.File) (Clip, error) {
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return Clip{}, fmt.Errorf("decoding MP3: %w", err)
	}

	// go-mp3 always emits 16-bit stereo at the stream rate.
	raw, err := io.ReadAll(dec)
	if err != nil {
		return Clip{}, fmt.Errorf("reading MP3 PCM: %w", err)
	}

	frames := len(raw) / 4
	mono := make([]float64, frames)
	for i := range frames {
		l := int16(uint16(raw[i*4]) | uint16(raw[i*4+1])<<8)
		r := int16(uint16(raw[i*4+2]) | uint16(raw[i*4+3])<<8)
		mono[i] = (float64(l) + float64(r)) / 2 / 32768.0
	}
	return Clip{Samples: mono, SampleRate: dec.SampleRate()}, nil
}

func decodeFLAC(f *os.File) (Clip, error) {
	stream, err := flac.New(f)
	if err != nil {
		return Clip{}, fmt.Errorf("decoding FLAC: %w", err)
	}

	info := stream.Info
	channels := int(info.NChannels)
	scale := float64(int64(1) << (info.BitsPerSample - 1))

	var mono []float64
	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Clip{}, fmt.Errorf("reading FLAC frame: %w", err)
		}
		nSamples := int(frame.Subframes[0].NSamples)
		for i := range nSamples {
			sum := 0.0
			for ch := range channels {
				sum += float64(frame.Subframes[ch].Samples[i])
			}
			mono = append(mono, sum/float64(channels)/scale)
		}
	}
	return Clip{Samples: mono, SampleRate: int(info.SampleRate)}, nil
}

func decodeOGG(f *os.File) (Clip, error) {
	data, format, err := oggvorbis.ReadAll(f)
	if err != nil {
		return Clip{}, fmt.Errorf("decoding OGG: %w", err)
	}

	channels := format.Channels
	if channels < 1 {
		channels = 1
	}
	frames := len(data) / channels
	mono := make([]float64, frames)
	for i := range frames {
		sum := 0.0
		for ch := range channels {
			sum += float64(data[i*channels+ch])
		}
		mono[i] = sum / float64(channels)
	}
	return Clip{Samples: mono, SampleRate: format.SampleRate}, nil
}
