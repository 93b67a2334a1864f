package host

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"image"
	_ "image/png" // register the PNG format with image.Decode
	"os"

	_ "golang.org/x/image/bmp" // register the BMP format with image.Decode

	"github.com/tofuengine/tofu/audio"
	"github.com/tofuengine/tofu/graphics"
)

func openAsset(path string) (*os.File, error) { return os.Open(path) }
func readAsset(path string) ([]byte, error)   { return os.ReadFile(path) }

// DecodeSurface reads a PNG or BMP file and nearest-colour matches every
// pixel against `palette`, producing an indexed Surface of the image's own
// dimensions. A zero-alpha source pixel is left as index 0 (the default
// transparent index) rather than matched; everything else is matched
// regardless of alpha.
func DecodeSurface(path string, palette *graphics.Palette) (*graphics.Surface, error) {
	f, err := openAsset(path)
	if err != nil {
		return nil, &Error{Operation: "decode surface", Details: path, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, &Error{Operation: "decode surface", Details: path, Err: err}
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	surface := graphics.NewSurface(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if a == 0 {
				surface.Data[y*width+x] = 0
				continue
			}
			color := graphics.Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255}
			surface.Data[y*width+x] = palette.FindNearest(color)
		}
	}
	return surface, nil
}

// LoadCellTable reads a sheet's binary cell table (an array of 32-bit
// little-endian (x, y, width, height) records) whole, ready to pass to
// graphics.NewSheet.
func LoadCellTable(path string) ([]byte, error) {
	data, err := readAsset(path)
	if err != nil {
		return nil, &Error{Operation: "load cell table", Details: path, Err: err}
	}
	return data, nil
}

// waveDecoder implements audio.Decoder over an in-memory 8- or 16-bit PCM WAV
// file, the minimal format every platform's bundled tools can produce
// without needing a licensed codec. Richer formats (tracker modules, FLAC)
// plug into the same audio.Decoder interface from outside.
type waveDecoder struct {
	rate     int
	channels int
	samples  []int16 // interleaved, native channel count
	cursor   int     // frame index
}

// DecodeWave parses a canonical WAV file (RIFF/WAVE, PCM, 8 or 16 bit,
// mono or stereo) into an audio.Decoder.
func DecodeWave(path string) (audio.Decoder, error) {
	data, err := readAsset(path)
	if err != nil {
		return nil, &Error{Operation: "decode wave", Details: path, Err: err}
	}
	return parseWave(data)
}

func parseWave(data []byte) (*waveDecoder, error) {
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, fmt.Errorf("host: not a RIFF/WAVE file")
	}

	d := &waveDecoder{}
	var bitsPerSample int
	var dataBytes []byte

	offset := 12
	for offset+8 <= len(data) {
		id := string(data[offset : offset+4])
		size := int(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))
		body := data[offset+8:]
		if size > len(body) {
			size = len(body)
		}

		switch id {
		case "fmt ":
			d.channels = int(binary.LittleEndian.Uint16(body[2:4]))
			d.rate = int(binary.LittleEndian.Uint32(body[4:8]))
			bitsPerSample = int(binary.LittleEndian.Uint16(body[14:16]))
		case "data":
			dataBytes = body[:size]
		}

		offset += 8 + size
		if size%2 == 1 {
			offset++ // chunks are word-aligned
		}
	}

	if d.channels == 0 || d.rate == 0 || dataBytes == nil {
		return nil, fmt.Errorf("host: missing fmt or data chunk")
	}

	switch bitsPerSample {
	case 16:
		d.samples = make([]int16, len(dataBytes)/2)
		for i := range d.samples {
			d.samples[i] = int16(binary.LittleEndian.Uint16(dataBytes[i*2 : i*2+2]))
		}
	case 8:
		d.samples = make([]int16, len(dataBytes))
		for i, b := range dataBytes {
			d.samples[i] = (int16(b) - 128) << 8
		}
	default:
		return nil, fmt.Errorf("host: unsupported WAV bit depth %d", bitsPerSample)
	}

	return d, nil
}

func (d *waveDecoder) Rate() int { return d.rate }

// Read converts up to len(buffer) frames of native PCM into stereo float32,
// duplicating a mono channel across both outputs.
func (d *waveDecoder) Read(buffer []audio.Frame) int {
	totalFrames := len(d.samples) / d.channels
	n := 0
	for n < len(buffer) && d.cursor < totalFrames {
		base := d.cursor * d.channels
		left := float32(d.samples[base]) / 32768
		right := left
		if d.channels > 1 {
			right = float32(d.samples[base+1]) / 32768
		}
		buffer[n] = audio.Frame{left, right}
		d.cursor++
		n++
	}
	return n
}

func (d *waveDecoder) Seek(frame int) {
	d.cursor = frame
}
