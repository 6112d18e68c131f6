// Package report writes the artifacts of a build: the normalized dataset
// and the Markdown sources log.
package report

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/swatchmap/pkg/constants"
	"github.com/agentstation/swatchmap/pkg/errors"
	"github.com/agentstation/swatchmap/pkg/swatches"
)

// EncodeDataset renders the dataset. JSON uses a two-space indent, leaves
// HTML characters unescaped, and ends with a newline.
func EncodeDataset(list []swatches.Swatch, opts ...Option) ([]byte, error) {
	o := Defaults().Apply(opts...)
	if list == nil {
		list = []swatches.Swatch{}
	}

	var (
		data []byte
		err  error
	)
	switch o.Format() {
	case FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		err = enc.Encode(list)
		data = buf.Bytes()
	case FormatYAML:
		data, err = yaml.Marshal(list)
	default:
		return nil, errors.NewValidationError("format", o.Format(), "unsupported dataset format")
	}
	if err != nil {
		return nil, errors.WrapParse(o.Format().String(), "", err)
	}

	if w := o.Writer(); w != nil {
		if _, err := w.Write(data); err != nil {
			return nil, errors.WrapIO("write", "dataset", err)
		}
	}
	return data, nil
}

// WriteDataset writes the dataset as JSON to path, creating parent
// directories as needed.
func WriteDataset(path string, list []swatches.Swatch) error {
	data, err := EncodeDataset(list)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

// WriteDatasetYAML writes the dataset as YAML to path.
func WriteDatasetYAML(path string, list []swatches.Swatch) error {
	data, err := EncodeDataset(list, WithFormat(FormatYAML))
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

// ReadDataset decodes a JSON dataset previously written by WriteDataset.
func ReadDataset(r io.Reader) ([]swatches.Swatch, error) {
	var list []swatches.Swatch
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return nil, errors.WrapParse("json", "", err)
	}
	return list, nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
