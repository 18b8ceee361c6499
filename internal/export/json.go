package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/sortviz/internal/sorts"
	"github.com/san-kum/sortviz/internal/trace"
)

// Document is the exported form of a trace.
type Document struct {
	Algorithm string      `json:"algorithm"`
	Length    int         `json:"length"`
	Steps     trace.Trace `json:"steps"`
}

func NewDocument(alg sorts.Algorithm, tr trace.Trace) Document {
	if tr == nil {
		tr = trace.Trace{}
	}
	return Document{Algorithm: alg.String(), Length: tr.Len(), Steps: tr}
}

// TraceJSON writes tr as indented JSON.
func TraceJSON(w io.Writer, alg sorts.Algorithm, tr trace.Trace) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewDocument(alg, tr))
}

// WriteTraceJSON writes tr to a new file at path.
func WriteTraceJSON(path string, alg sorts.Algorithm, tr trace.Trace) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return TraceJSON(file, alg, tr)
}

// ReadTraceJSON decodes a document written by TraceJSON.
func ReadTraceJSON(r io.Reader) (sorts.Algorithm, trace.Trace, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return 0, nil, err
	}
	alg, err := sorts.Parse(doc.Algorithm)
	if err != nil {
		return 0, nil, err
	}
	return alg, doc.Steps, nil
}
