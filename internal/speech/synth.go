package speech

import (
	"bytes"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// SynthesisRequest describes one utterance to render.
type SynthesisRequest struct {
	Text  string
	Voice string // synthesizer voice ID, "" for the default
	Rate  int    // words per minute
}

// Synthesizer renders an utterance to a WAV file in outDir and returns its
// path. Implementations wrap an external TTS binary.
type Synthesizer interface {
	Synthesize(req SynthesisRequest, outDir string) (string, error)
	Voices() ([]Voice, error)
	Name() string
}

// NewSynthesizer selects the platform synthesizer. binary, when non-empty,
// overrides detection and is treated as an espeak-compatible command.
func NewSynthesizer(binary string) (Synthesizer, error) {
	if binary != "" {
		path, err := exec.LookPath(binary)
		if err != nil {
			return nil, fmt.Errorf("speech binary %q not found: %w", binary, err)
		}
		return &espeakSynth{binary: path}, nil
	}

	if runtime.GOOS == "darwin" {
		if path, err := exec.LookPath("say"); err == nil {
			return &saySynth{binary: path}, nil
		}
	}
	for _, name := range []string{"espeak-ng", "espeak"} {
		if path, err := exec.LookPath(name); err == nil {
			return &espeakSynth{binary: path}, nil
		}
	}
	return nil, fmt.Errorf("no speech synthesizer found (tried espeak-ng, espeak)")
}

// utterancePath builds a unique WAV path for a new utterance.
func utterancePath(outDir string) string {
	return filepath.Join(outDir, fmt.Sprintf("utterance-%d.wav", time.Now().UnixNano()))
}

// espeakSynth drives espeak or espeak-ng. Text is fed on stdin to avoid
// argv length limits with long pages.
type espeakSynth struct {
	binary string
}

func (s *espeakSynth) Name() string {
	return filepath.Base(s.binary)
}

func (s *espeakSynth) Synthesize(req SynthesisRequest, outDir string) (string, error) {
	out := utterancePath(outDir)

	cmd := exec.Command(s.binary, s.buildArgs(req, out)...)
	cmd.Stdin = strings.NewReader(req.Text)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("%s: %s: %w", s.Name(), msg, err)
		}
		return "", fmt.Errorf("%s: %w", s.Name(), err)
	}
	return out, nil
}

func (s *espeakSynth) buildArgs(req SynthesisRequest, outPath string) []string {
	args := []string{"--stdin", "-w", outPath}
	if req.Rate > 0 {
		args = append(args, "-s", strconv.Itoa(req.Rate))
	}
	if req.Voice != "" {
		args = append(args, "-v", req.Voice)
	}
	return args
}

func (s *espeakSynth) Voices() ([]Voice, error) {
	out, err := exec.Command(s.binary, "--voices").Output()
	if err != nil {
		return nil, fmt.Errorf("%s --voices: %w", s.Name(), err)
	}
	return parseEspeakVoices(string(out)), nil
}

// parseEspeakVoices parses `espeak --voices` output. Columns:
//
//	Pty Language Age/Gender VoiceName          File          Other Languages
//	 5  en-gb          M  english             en            (en 2)
func parseEspeakVoices(out string) []Voice {
	var voices []Voice
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if i == 0 { // header
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		gender := ""
		switch ag := fields[2]; {
		case strings.HasSuffix(ag, "M"):
			gender = "M"
		case strings.HasSuffix(ag, "F"):
			gender = "F"
		}
		voices = append(voices, Voice{
			ID:       fields[1],
			Name:     fields[3],
			Language: fields[1],
			Gender:   gender,
		})
	}
	return voices
}

// saySynth drives the macOS `say` command.
type saySynth struct {
	binary string
}

func (s *saySynth) Name() string {
	return "say"
}

func (s *saySynth) Synthesize(req SynthesisRequest, outDir string) (string, error) {
	out := utterancePath(outDir)

	args := []string{"-o", out, "--data-format=LEI16@22050", "-f", "-"}
	if req.Rate > 0 {
		args = append(args, "-r", strconv.Itoa(req.Rate))
	}
	if req.Voice != "" {
		args = append(args, "-v", req.Voice)
	}

	cmd := exec.Command(s.binary, args...)
	cmd.Stdin = strings.NewReader(req.Text)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("say: %s: %w", msg, err)
		}
		return "", fmt.Errorf("say: %w", err)
	}
	return out, nil
}

func (s *saySynth) Voices() ([]Voice, error) {
	out, err := exec.Command(s.binary, "-v", "?").Output()
	if err != nil {
		return nil, fmt.Errorf("say -v ?: %w", err)
	}
	return parseSayVoices(string(out)), nil
}

// parseSayVoices parses `say -v ?` output:
//
//	Alex                en_US    # Most people recognize me by my voice.
func parseSayVoices(out string) []Voice {
	var voices []Voice
	for _, line := range strings.Split(out, "\n") {
		// Voice names may contain spaces ("Bad News"); the language code is
		// always the last field before the comment.
		fields := strings.Fields(strings.SplitN(line, "#", 2)[0])
		if len(fields) < 2 {
			continue
		}
		name := strings.Join(fields[:len(fields)-1], " ")
		lang := fields[len(fields)-1]
		voices = append(voices, Voice{
			ID:       name,
			Name:     name,
			Language: strings.ReplaceAll(lang, "_", "-"),
		})
	}
	return voices
}
