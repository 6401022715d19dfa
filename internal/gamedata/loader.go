package gamedata

import (
	"encoding/json"
	"os"

	"github.com/samber/oops"
)

// Error codes returned by this package.
const (
	ErrCodeReadFailed  = "DATA_READ_FAILED"
	ErrCodeParseFailed = "DATA_PARSE_FAILED"
	ErrCodeInvalidData = "DATA_INVALID"
)

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	content, err := dataFS.ReadFile(filename)
	if err != nil {
		var zero T
		return zero, oops.Code(ErrCodeReadFailed).With("file", filename).Wrapf(err, "read embedded file")
	}
	return parse[T](filename, content)
}

// LoadFile reads and unmarshals a JSON file from disk.
func LoadFile[T any](path string) (T, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		var zero T
		return zero, oops.Code(ErrCodeReadFailed).With("file", path).Wrapf(err, "read file")
	}
	return parse[T](path, content)
}

func parse[T any](name string, content []byte) (T, error) {
	var result T
	if err := json.Unmarshal(content, &result); err != nil {
		return result, oops.Code(ErrCodeParseFailed).With("file", name).Wrapf(err, "parse JSON")
	}
	return result, nil
}
