package jsonrepair

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Decoder reads repaired JSON from an underlying io.Reader, the way
// json.Decoder does for strict JSON.
type Decoder struct {
	r    io.Reader
	opts Options
}

// NewDecoder returns a Decoder that reads from r and repairs what it reads
// before decoding it into the destination passed to Decode.
func NewDecoder(r io.Reader, opts Options) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads all of the underlying reader, repairs it, and unmarshals the
// result into v using encoding/json.
func (d *Decoder) Decode(v any) error {
	data, err := io.ReadAll(d.r)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrIO, err)
	}
	repaired, err := Repair(string(data), d.opts)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(repaired), v)
}

// Encoder writes values as JSON to an underlying io.Writer, running the
// marshaled output back through Repair first. This is mostly useful paired
// with Options.EnsureASCII or Options.Indent, since encoding/json's own
// output never needs structural repair.
type Encoder struct {
	w    io.Writer
	opts Options
}

// NewEncoder returns an Encoder that writes repaired, optionally indented
// JSON to w.
func NewEncoder(w io.Writer, opts Options) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode marshals v, repairs the result, and writes it to the underlying
// writer followed by a newline.
func (e *Encoder) Encode(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	repaired, err := Repair(string(b), e.opts)
	if err != nil {
		return err
	}
	if e.opts.Indent > 0 {
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(repaired), "", strings.Repeat(" ", e.opts.Indent)); err != nil {
			return err
		}
		repaired = buf.String()
	}
	_, err = io.WriteString(e.w, repaired+"\n")
	return err
}
