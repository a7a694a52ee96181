package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/altlist/pkg/catalog"
	"github.com/matzehuels/altlist/pkg/errors"
)

// ReadJSON decodes an artifact from r.
// The input must be a JSON array of tool objects; ReadJSON does not close r.
func ReadJSON(r io.Reader) ([]catalog.Tool, error) {
	var tools []catalog.Tool
	if err := json.NewDecoder(r).Decode(&tools); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return tools, nil
}

// ImportJSON reads the artifact at path.
func ImportJSON(path string) ([]catalog.Tool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "artifact %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
