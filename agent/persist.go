package agent

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Save writes the brain as text, one value per line: the layer count, the input
// size of the first layer, the output size of every layer, then every weight
// ordered by layer, input and output.
func Save(w io.Writer, b *Brain) error {
	bw := bufio.NewWriter(w)
	weights := b.Weights()

	lines := []string{strconv.Itoa(len(b.layout)), strconv.Itoa(Inputs)}
	for _, outputs := range b.layout {
		lines = append(lines, strconv.Itoa(outputs))
	}
	for _, line := range lines {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return errors.Wrap(err, "failed to write brain header")
		}
	}

	inputs := Inputs
	for l, outputs := range b.layout {
		for i := 0; i < inputs; i++ {
			for o := 0; o < outputs; o++ {
				line := strconv.FormatFloat(weights[l][o][i], 'g', -1, 64) + "\n"
				if _, err := bw.WriteString(line); err != nil {
					return errors.Wrapf(err, "failed to write weight %d/%d/%d", l, i, o)
				}
			}
		}
		inputs = outputs
	}
	return errors.Wrap(bw.Flush(), "failed to flush brain")
}

// Load reads a brain written by Save.
func Load(r io.Reader) (*Brain, error) {
	lr := &lineReader{scanner: bufio.NewScanner(r)}

	numLayers, err := lr.int()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read layer count")
	}
	if numLayers < 1 {
		return nil, errors.Errorf("invalid layer count %d", numLayers)
	}

	sizes := make([]int, numLayers+1)
	for i := range sizes {
		if sizes[i], err = lr.int(); err != nil {
			return nil, errors.Wrapf(err, "failed to read size of layer %d", i)
		}
		if sizes[i] < 1 {
			return nil, errors.Errorf("invalid size %d for layer %d", sizes[i], i)
		}
	}
	if sizes[0] != Inputs || sizes[numLayers] != 1 {
		return nil, errors.Errorf("unsupported shape %v: want %d inputs and 1 output", sizes, Inputs)
	}

	b := newBrain(sizes[1:])
	weights := b.Weights()
	for l := 0; l < numLayers; l++ {
		for i := 0; i < sizes[l]; i++ {
			for o := 0; o < sizes[l+1]; o++ {
				if weights[l][o][i], err = lr.float(); err != nil {
					return nil, errors.Wrapf(err, "failed to read weight %d/%d/%d", l, i, o)
				}
			}
		}
	}
	b.net.ApplyWeights(weights)
	return b, nil
}

func SaveFile(path string, b *Brain) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create brain file %s", path)
	}
	defer f.Close()
	return Save(f, b)
}

func LoadFile(path string) (*Brain, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open brain file %s", path)
	}
	defer f.Close()
	return Load(f)
}

// LoadOrRandom loads the brain at path, falling back to a random brain when the
// file is missing or malformed.
func LoadOrRandom(path string) *Brain {
	if path == "" {
		return NewBrain()
	}
	b, err := LoadFile(path)
	if err != nil {
		log.Warn().Err(err).Msgf("could not load brain from %s, using a random brain", path)
		return NewBrain()
	}
	log.Info().Msgf("loaded brain from %s with layout %v", path, b.Layout())
	return b
}

type lineReader struct {
	scanner *bufio.Scanner
	line    int
}

func (lr *lineReader) next() (string, error) {
	for lr.scanner.Scan() {
		lr.line++
		text := strings.TrimSpace(lr.scanner.Text())
		if text != "" {
			return text, nil
		}
	}
	if err := lr.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.ErrUnexpectedEOF
}

func (lr *lineReader) int() (int, error) {
	text, err := lr.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(text)
	return v, errors.Wrapf(err, "line %d", lr.line)
}

func (lr *lineReader) float() (float64, error) {
	text, err := lr.next()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(text, 64)
	return v, errors.Wrapf(err, "line %d", lr.line)
}
