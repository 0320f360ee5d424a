// SPDX-License-Identifier: EPL-2.0

// Package stegwav recovers data hidden in the least significant bits of
// stereo 16-bit PCM audio.
//
// A run takes a carrier and an extraction mode. The mode says which channel
// supplies each bit and where it lands in the byte being assembled:
//
//	L    left LSB only, one bit per frame
//	R    right LSB only, one bit per frame
//	LR   left then right, two bits per frame
//	RL   right then left, two bits per frame
//	LRA  one bit per frame, starting left, switching channel after every byte
//	RLA  one bit per frame, starting right, switching channel after every byte
//
// Bits are placed least significant first. Bytes are reported in the order
// they complete, and bits left over at the end of the stream are dropped.
// Nothing here guesses the right mode.
//
// # Quick Start
//
//	src, err := stegwav.OpenFile("carrier.wav")
//	if err != nil {
//	    // errors.Is(err, stegwav.ErrFormat), errors.Is(err, stegwav.ErrIO)
//	}
//	defer src.Close()
//
//	m, _ := lsb.ParseMode("lra")
//	res, err := stegwav.Analyze(src, m, 4096)
//	fmt.Printf("%s\n", res.Printable)
//
// Hide is the inverse and is used to build carriers with a known payload.
//
// # Packages
//
//   - audio: frames, sources and the decoder registry
//   - formats/wav and formats/aiff: sources for the two supported containers
//   - lsb: modes, the bit assembly fold, Embed and output filtering
//
// # Errors
//
// Errors returned here wrap one of ErrArgument, ErrIO or ErrFormat and keep
// the lower level sentinel in the chain, so both
// errors.Is(err, stegwav.ErrFormat) and errors.Is(err, wav.ErrNotStereo)
// hold for a mono WAV.
package stegwav
