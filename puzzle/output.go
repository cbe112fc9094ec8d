package puzzle

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Output formats understood by Write.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Write encodes |a| to |w| in |format|. The text format is two lines:
//
//	Part 1 result: <value>
//	Part 2 result: <value>
func Write(w io.Writer, a Answer, format string) error {
	switch format {
	case FormatText, "":
		_, err := fmt.Fprintf(w, "Part 1 result: %s\nPart 2 result: %s\n", a.Part1, a.Part2)
		return err
	case FormatYAML:
		b, err := yaml.Marshal(a)
		if err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		_, err = w.Write(b)
		return err
	case FormatJSON:
		return json.NewEncoder(w).Encode(a)
	default:
		return errors.Errorf("unknown output format %q", format)
	}
}
