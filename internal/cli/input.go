package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/reoring/jsonutil"
)

// readInput returns the bytes of args[0], or of stdin when no argument (or
// "-") is given, together with a display name.
func readInput(in io.Reader, args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(in)
		return data, "-", err
	}
	data, err := os.ReadFile(args[0])
	return data, args[0], err
}

// decodeDocument decodes data as JSON or YAML. "auto" picks YAML for .yaml
// and .yml files and JSON otherwise.
func decodeDocument(n *jsonutil.Normalizer, data []byte, name, format string) (any, error) {
	if format == "auto" {
		switch strings.ToLower(filepath.Ext(name)) {
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "json"
		}
	}
	switch format {
	case "json":
		return n.Decode(data)
	case "yaml":
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	}
	return nil, fmt.Errorf("unknown input format %q (want auto|json|yaml)", format)
}
