// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"slices"
	"testing"
	"testing/iotest"
	"time"

	"github.com/ik5/stegwav/audio"
)

// Helper function to create a minimal valid WAV file. samples are interleaved.
func createWAVFile(sampleRate, channels, bitsPerSample int, samples []int16) []byte {
	return riffFile("WAVE",
		rawChunk("fmt ", fmtBody(1, uint16(channels), uint32(sampleRate), uint16(bitsPerSample))),
		rawChunk("data", pcmBody(samples...)),
	)
}

func riffFile(form string, chunks ...[]byte) []byte {
	body := new(bytes.Buffer)
	body.WriteString(form)
	for _, c := range chunks {
		body.Write(c)
	}

	buf := new(bytes.Buffer)
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(body.Len()))
	buf.Write(body.Bytes())

	return buf.Bytes()
}

// rawChunk frames body as a RIFF chunk, adding the pad byte for odd sizes.
func rawChunk(id string, body []byte) []byte {
	buf := new(bytes.Buffer)
	buf.WriteString(id)
	binary.Write(buf, binary.LittleEndian, uint32(len(body)))
	buf.Write(body)
	if len(body)%2 == 1 {
		buf.WriteByte(0)
	}

	return buf.Bytes()
}

func fmtBody(tag, channels uint16, sampleRate uint32, bits uint16, extra ...byte) []byte {
	blockAlign := channels * (bits / 8)

	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, tag)
	binary.Write(buf, binary.LittleEndian, channels)
	binary.Write(buf, binary.LittleEndian, sampleRate)
	binary.Write(buf, binary.LittleEndian, sampleRate*uint32(blockAlign))
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bits)
	buf.Write(extra)

	return buf.Bytes()
}

func pcmBody(samples ...int16) []byte {
	buf := new(bytes.Buffer)
	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, s)
	}

	return buf.Bytes()
}

func readAll(t *testing.T, src audio.Source) []audio.Frame {
	t.Helper()

	frames, err := audio.ReadAll(src, 3)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}

	return frames
}

func TestDecoder_ValidWAVFile(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 100, 200, -100, -200, 32767}
	wavData := createWAVFile(8000, 2, 16, samples)

	decoder := Decoder{}
	src, err := decoder.Decode(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}

	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	got := readAll(t, src)
	want := []audio.Frame{{0, 100}, {200, -100}, {-200, 32767}}
	if !slices.Equal(got, want) {
		t.Errorf("frames = %v, want %v", got, want)
	}
}

func TestNewSource_Header(t *testing.T) {
	t.Parallel()

	src, err := NewSource(bytes.NewReader(createWAVFile(44100, 2, 16, make([]int16, 10))))
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}

	h := src.Header()
	want := Header{
		RIFFSize:      36 + 20,
		FmtSize:       16,
		FormatTag:     1,
		Channels:      2,
		SampleRate:    44100,
		ByteRate:      44100 * 4,
		BlockAlign:    4,
		BitsPerSample: 16,
		DataSize:      20,
		Frames:        5,
	}

	if h.FmtSize != want.FmtSize || h.RIFFSize != want.RIFFSize ||
		h.FormatTag != want.FormatTag || h.Channels != want.Channels ||
		h.SampleRate != want.SampleRate || h.ByteRate != want.ByteRate ||
		h.BlockAlign != want.BlockAlign || h.BitsPerSample != want.BitsPerSample ||
		h.DataSize != want.DataSize || h.Frames != want.Frames {
		t.Errorf("Header() = %+v, want %+v", h, want)
	}

	if len(h.SkippedChunks) != 0 {
		t.Errorf("SkippedChunks = %v, want none", h.SkippedChunks)
	}
}

func TestHeader_Duration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		h    Header
		want time.Duration
	}{
		{"one second", Header{SampleRate: 44100, Frames: 44100}, time.Second},
		{"half second", Header{SampleRate: 8000, Frames: 4000}, 500 * time.Millisecond},
		{"no rate", Header{Frames: 10}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.h.Duration(); got != tt.want {
				t.Errorf("Duration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecoder_Rejects(t *testing.T) {
	t.Parallel()

	pcm := rawChunk("data", pcmBody(1, 2))

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{
			name: "not a RIFF file",
			data: []byte("NOTAWAVFILE_________________________"),
			want: ErrNotWavFile,
		},
		{
			name: "wrong form type",
			data: riffFile("AVI ", rawChunk("fmt ", fmtBody(1, 2, 8000, 16)), pcm),
			want: ErrNotWavFile,
		},
		{
			name: "truncated header",
			data: []byte("RIFF\x00\x00"),
			want: ErrNotWavFile,
		},
		{
			name: "empty input",
			data: nil,
			want: ErrNotWavFile,
		},
		{
			name: "mono",
			data: createWAVFile(8000, 1, 16, []int16{1, 2}),
			want: ErrNotStereo,
		},
		{
			name: "six channels",
			data: riffFile("WAVE", rawChunk("fmt ", fmtBody(1, 6, 8000, 16)), pcm),
			want: ErrNotStereo,
		},
		{
			name: "8-bit",
			data: riffFile("WAVE", rawChunk("fmt ", fmtBody(1, 2, 8000, 8)), pcm),
			want: ErrOnlyPCM16bitSupported,
		},
		{
			name: "24-bit",
			data: riffFile("WAVE", rawChunk("fmt ", fmtBody(1, 2, 8000, 24)), pcm),
			want: ErrOnlyPCM16bitSupported,
		},
		{
			name: "IEEE float",
			data: riffFile("WAVE", rawChunk("fmt ", fmtBody(3, 2, 8000, 16)), pcm),
			want: ErrOnlyPCM16bitSupported,
		},
		{
			name: "extensible",
			data: riffFile("WAVE", rawChunk("fmt ", fmtBody(0xFFFE, 2, 8000, 16, make([]byte, 24)...)), pcm),
			want: ErrOnlyPCM16bitSupported,
		},
		{
			name: "short fmt chunk",
			data: riffFile("WAVE", rawChunk("fmt ", fmtBody(1, 2, 8000, 16)[:14]), pcm),
			want: ErrUnsupportedWavLayout,
		},
		{
			name: "bad block align",
			data: riffFile("WAVE", rawChunk("fmt ", func() []byte {
				b := fmtBody(1, 2, 8000, 16)
				binary.LittleEndian.PutUint16(b[12:14], 2)
				return b
			}()), pcm),
			want: ErrUnsupportedWavLayout,
		},
		{
			name: "data before fmt",
			data: riffFile("WAVE", pcm, rawChunk("fmt ", fmtBody(1, 2, 8000, 16))),
			want: ErrUnsupportedWavChunks,
		},
		{
			name: "no data chunk",
			data: riffFile("WAVE", rawChunk("fmt ", fmtBody(1, 2, 8000, 16))),
			want: ErrUnsupportedWavChunks,
		},
		{
			name: "no chunks",
			data: riffFile("WAVE"),
			want: ErrUnsupportedWavChunks,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src, err := Decoder{}.Decode(bytes.NewReader(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}

			if src != nil {
				t.Error("Decode() returned a source on error")
			}
		})
	}
}

func TestDecoder_WithUnknownChunks(t *testing.T) {
	t.Parallel()

	data := riffFile("WAVE",
		rawChunk("LIST", []byte("INFOISFT\x04\x00\x00\x00abc\x00")),
		rawChunk("fmt ", fmtBody(1, 2, 8000, 16)),
		rawChunk("fact", []byte{1, 0, 0, 0}),
		rawChunk("data", pcmBody(100, 200)),
	)

	src, err := NewSource(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewSource() error = %v, want nil (should skip unknown chunks)", err)
	}

	if got, want := src.Header().SkippedChunks, []string{"LIST", "fact"}; !slices.Equal(got, want) {
		t.Errorf("SkippedChunks = %v, want %v", got, want)
	}

	if got := readAll(t, src); !slices.Equal(got, []audio.Frame{{100, 200}}) {
		t.Errorf("frames = %v, want [{100 200}]", got)
	}
}

func TestDecoder_OddSizedChunkPadding(t *testing.T) {
	t.Parallel()

	data := riffFile("WAVE",
		rawChunk("junk", []byte{9, 9, 9}),
		rawChunk("fmt ", fmtBody(1, 2, 8000, 16)),
		rawChunk("bext", []byte{7}),
		rawChunk("data", pcmBody(-1, 1, 3, -3)),
	)

	src, err := NewSource(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewSource() error = %v, want nil", err)
	}

	want := []audio.Frame{{-1, 1}, {3, -3}}
	if got := readAll(t, src); !slices.Equal(got, want) {
		t.Errorf("frames = %v, want %v", got, want)
	}
}

// rawChunkSized frames body under a declared size that may not match it.
func rawChunkSized(id string, declared uint32, body []byte) []byte {
	buf := new(bytes.Buffer)
	buf.WriteString(id)
	binary.Write(buf, binary.LittleEndian, declared)
	buf.Write(body)

	return buf.Bytes()
}

func TestDecoder_TruncatedChunkBody(t *testing.T) {
	t.Parallel()

	// A data chunk header hidden inside a chunk body must never be reached.
	hidden := rawChunk("data", pcmBody(1, 1))

	tests := []struct {
		name     string
		declared uint32
	}{
		{"maximum size", 0xFFFFFFFF},
		{"odd size past end", 0xFFFFFFFD},
		{"short body", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := riffFile("WAVE",
				rawChunk("fmt ", fmtBody(1, 2, 8000, 16)),
				rawChunkSized("junk", tt.declared, hidden),
			)

			src, err := NewSource(bytes.NewReader(data))
			if !errors.Is(err, ErrUnsupportedWavChunks) || !errors.Is(err, io.ErrUnexpectedEOF) {
				t.Errorf("NewSource() error = %v, want %v wrapping %v", err, ErrUnsupportedWavChunks, io.ErrUnexpectedEOF)
			}

			if src != nil {
				t.Errorf("NewSource() decoded %d frames from inside a skipped chunk", src.Header().Frames)
			}
		})
	}
}

func TestDecoder_TruncatedFmtExtension(t *testing.T) {
	t.Parallel()

	full := riffFile("WAVE", rawChunk("fmt ", fmtBody(1, 2, 8000, 16, make([]byte, 22)...)))
	data := full[:len(full)-10]

	_, err := NewSource(bytes.NewReader(data))
	if !errors.Is(err, ErrUnsupportedWavChunks) || !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("NewSource() error = %v, want %v wrapping %v", err, ErrUnsupportedWavChunks, io.ErrUnexpectedEOF)
	}
}

func TestDecoder_ReadErrorWhileSkipping(t *testing.T) {
	t.Parallel()

	errDisk := errors.New("disk read failed")
	head := riffFile("WAVE",
		rawChunk("fmt ", fmtBody(1, 2, 8000, 16)),
		rawChunkSized("junk", 64, []byte{1, 2, 3}),
	)

	_, err := NewSource(io.MultiReader(bytes.NewReader(head), iotest.ErrReader(errDisk)))
	if !errors.Is(err, errDisk) {
		t.Errorf("NewSource() error = %v, want %v", err, errDisk)
	}

	if errors.Is(err, ErrUnsupportedWavChunks) {
		t.Errorf("NewSource() error = %v, a read failure is not a framing error", err)
	}
}

func TestDecoder_ExtendedFmtChunk(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		extra []byte
	}{
		{"cbSize zero", []byte{0, 0}},
		{"odd extension", []byte{1, 0, 0xAB}},
		{"long extension", make([]byte, 22)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			data := riffFile("WAVE",
				rawChunk("fmt ", fmtBody(1, 2, 22050, 16, tt.extra...)),
				rawChunk("data", pcmBody(5, 6)),
			)

			src, err := NewSource(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("NewSource() error = %v", err)
			}

			if got, want := src.Header().FmtSize, uint32(16+len(tt.extra)); got != want {
				t.Errorf("FmtSize = %d, want %d", got, want)
			}

			if got := readAll(t, src); !slices.Equal(got, []audio.Frame{{5, 6}}) {
				t.Errorf("frames = %v, want [{5 6}]", got)
			}
		})
	}
}

func TestSource_TrailingChunkNotRead(t *testing.T) {
	t.Parallel()

	data := riffFile("WAVE",
		rawChunk("fmt ", fmtBody(1, 2, 8000, 16)),
		rawChunk("data", pcmBody(1, 2, 3, 4)),
		rawChunk("LIST", []byte("INFOICMT\x02\x00\x00\x00x\x00")),
	)

	src, err := NewSource(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}

	want := []audio.Frame{{1, 2}, {3, 4}}
	if got := readAll(t, src); !slices.Equal(got, want) {
		t.Errorf("frames = %v, want %v", got, want)
	}
}

func TestSource_PartialFrameDropped(t *testing.T) {
	t.Parallel()

	// 6 bytes of data: one full frame plus half of another.
	data := riffFile("WAVE",
		rawChunk("fmt ", fmtBody(1, 2, 8000, 16)),
		rawChunk("data", pcmBody(10, 20, 30)),
	)

	src, err := NewSource(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}

	if src.Header().Frames != 1 {
		t.Errorf("Frames = %d, want 1", src.Header().Frames)
	}

	if got := readAll(t, src); !slices.Equal(got, []audio.Frame{{10, 20}}) {
		t.Errorf("frames = %v, want [{10 20}]", got)
	}
}

func TestSource_TruncatedData(t *testing.T) {
	t.Parallel()

	full := createWAVFile(8000, 2, 16, []int16{1, 2, 3, 4, 5, 6, 7, 8})
	// Cut the last frame and a half.
	data := full[:len(full)-6]

	src, err := NewSource(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}

	if src.Header().Frames != 4 {
		t.Errorf("Frames = %d, want 4 (declared)", src.Header().Frames)
	}

	want := []audio.Frame{{1, 2}, {3, 4}}
	if got := readAll(t, src); !slices.Equal(got, want) {
		t.Errorf("frames = %v, want %v", got, want)
	}
}

func TestSource_ReadFrames_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src, err := NewSource(bytes.NewReader(createWAVFile(8000, 2, 16, []int16{1, 2})))
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}

	n, err := src.ReadFrames(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadFrames(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReadFrames_EOF(t *testing.T) {
	t.Parallel()

	src, err := NewSource(bytes.NewReader(createWAVFile(8000, 2, 16, []int16{1, 2, 3, 4})))
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}

	dst := make([]audio.Frame, 10)

	n, err := src.ReadFrames(dst)
	if n != 2 || err != nil {
		t.Fatalf("first ReadFrames() = (%d, %v), want (2, nil)", n, err)
	}

	n, err = src.ReadFrames(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("second ReadFrames() = (%d, %v), want (0, EOF)", n, err)
	}
}

func TestSource_Close(t *testing.T) {
	t.Parallel()

	src, err := NewSource(bytes.NewReader(createWAVFile(8000, 2, 16, []int16{1, 2})))
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}

	if err := src.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if _, err := src.ReadFrames(make([]audio.Frame, 1)); !errors.Is(err, audio.ErrSourceClosed) {
		t.Errorf("ReadFrames() after Close error = %v, want %v", err, audio.ErrSourceClosed)
	}
}

func TestDecoder_VariousSampleRates(t *testing.T) {
	t.Parallel()

	for _, rate := range []int{8000, 11025, 22050, 44100, 48000, 96000} {
		src, err := Decoder{}.Decode(bytes.NewReader(createWAVFile(rate, 2, 16, []int16{1, 2})))
		if err != nil {
			t.Errorf("Decode(%d Hz) error = %v", rate, err)
			continue
		}

		if src.SampleRate() != rate {
			t.Errorf("SampleRate() = %d, want %d", src.SampleRate(), rate)
		}
	}
}

// BenchmarkDecoder_Decode benchmarks WAV header parsing
func BenchmarkDecoder_Decode(b *testing.B) {
	wavData := createWAVFile(44100, 2, 16, make([]int16, 44100*2))

	b.ReportAllocs()

	for b.Loop() {
		_, _ = Decoder{}.Decode(bytes.NewReader(wavData))
	}
}

// BenchmarkSource_ReadFrames benchmarks draining one second of audio
func BenchmarkSource_ReadFrames(b *testing.B) {
	samples := make([]int16, 44100*2)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}
	wavData := createWAVFile(44100, 2, 16, samples)
	dst := make([]audio.Frame, 4096)

	b.ReportAllocs()

	for b.Loop() {
		src, _ := NewSource(bytes.NewReader(wavData))
		for {
			if _, err := src.ReadFrames(dst); err != nil {
				break
			}
		}
	}
}
