// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level types shared by the decoders and the
// LSB extraction engine.
//
// # Frames
//
// Every decoder in this module produces stereo 16-bit PCM. A Frame holds one
// time-aligned sample per channel:
//
//	type Frame struct {
//	    Left  int16
//	    Right int16
//	}
//
// Samples are kept as raw integers. Nothing in the module rescales them,
// because the least-significant bit of each amplitude is the data being
// analyzed.
//
// # Source Interface
//
// The Source interface is the foundation of the pipeline:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadFrames(dst []Frame) (int, error)
//	    Close() error
//	}
//
// ReadFrames returns io.EOF once the stream is drained:
//
//	for {
//	    n, err := source.ReadFrames(buf)
//	    // process buf[:n]
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
//
// # Format Registry
//
// The registry maps a format key to its decoder:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// # In-memory Sources
//
// SliceSource serves frames already held in memory, and ReadAll drains any
// Source into a slice.
package audio
