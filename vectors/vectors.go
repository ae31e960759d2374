package vectors

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-errors/errors"
	"github.com/jesseduffield/yaml"
	"github.com/nPaBwaYT/kalyna/cripta"
	"github.com/spkg/bom"
)

//go:embed reference.yml
var referenceYAML []byte

// Direction of a known-answer vector
type Direction string

const (
	Encipher Direction = "encipher"
	Decipher Direction = "decipher"
)

// Vector is a known-answer test: Input run through Direction under Key must
// give Expected
type Vector struct {
	Name      string
	Params    cripta.Params
	Direction Direction
	Key       []uint64
	Input     []uint64
	Expected  []uint64
}

// VectorError says which vector in a file is broken
type VectorError struct {
	Name string
	Err  error
}

func (e *VectorError) Error() string {
	return fmt.Sprintf("vector %q: %v", e.Name, e.Err)
}

func (e *VectorError) Unwrap() error {
	return e.Err
}

type vectorFile struct {
	Vectors []rawVector `yaml:"vectors"`
}

type rawVector struct {
	Name      string    `yaml:"name"`
	BlockBits int       `yaml:"blockBits"`
	KeyBits   int       `yaml:"keyBits"`
	Direction Direction `yaml:"direction"`
	Key       []string  `yaml:"key"`
	Input     []string  `yaml:"input"`
	Expected  []string  `yaml:"expected"`
}

// Reference returns the known-answer vectors published with the standard
func Reference() ([]Vector, error) {
	return Load(referenceYAML)
}

// LoadFile reads vectors from a yaml file in the reference.yml format
func LoadFile(path string) ([]Vector, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}
	return Load(content)
}

// Load parses and validates vectors
func Load(data []byte) ([]Vector, error) {
	var file vectorFile
	if err := yaml.Unmarshal(bom.Clean(data), &file); err != nil {
		return nil, errors.Wrap(err, 0)
	}

	vectors := make([]Vector, 0, len(file.Vectors))
	for _, raw := range file.Vectors {
		vector, err := raw.parse()
		if err != nil {
			return nil, errors.Wrap(&VectorError{Name: raw.Name, Err: err}, 0)
		}
		vectors = append(vectors, vector)
	}

	return vectors, nil
}

func (raw rawVector) parse() (Vector, error) {
	params, err := cripta.ResolveParams(raw.BlockBits, raw.KeyBits)
	if err != nil {
		return Vector{}, err
	}

	if raw.Direction != Encipher && raw.Direction != Decipher {
		return Vector{}, errors.Errorf("unknown direction %q", raw.Direction)
	}

	vector := Vector{
		Name:      raw.Name,
		Params:    params,
		Direction: raw.Direction,
	}

	fields := []struct {
		name  string
		hex   []string
		words int
		out   *[]uint64
	}{
		{"key", raw.Key, params.Nk, &vector.Key},
		{"input", raw.Input, params.Nb, &vector.Input},
		{"expected", raw.Expected, params.Nb, &vector.Expected},
	}

	for _, field := range fields {
		words, err := ParseWords(field.hex)
		if err != nil {
			return Vector{}, err
		}
		if len(words) != field.words {
			return Vector{}, errors.Errorf("%s has %d words, want %d", field.name, len(words), field.words)
		}
		*field.out = words
	}

	return vector, nil
}
