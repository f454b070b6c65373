package speech

import (
	"os"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
)

// decodeWAV decodes a synthesized utterance file. All supported
// synthesizers are asked for 16-bit PCM WAV output.
func decodeWAV(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	return wav.Decode(f)
}
