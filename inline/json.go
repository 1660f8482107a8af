package inline

import (
	"encoding/json"
	"io"

	"github.com/youngoor/youngoor/source"
)

// Output is the document written in json mode.
type Output struct {
	// URL is the page that was resolved.
	URL string `json:"url"`
	// Source is the name of the source that resolved it.
	Source string `json:"source"`
	// Quality is the requested quality. Every media reports the tier it was served at.
	Quality source.Quality  `json:"quality"`
	Result  []*source.Media `json:"result"`
}

func writeJson(out io.Writer, output *Output) error {
	if output.Result == nil {
		output.Result = []*source.Media{}
	}

	encoder := json.NewEncoder(out)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(output)
}
