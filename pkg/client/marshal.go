// Copyright 2026, The heroku-go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

// jsonIterConfig behaves like encoding/json, but writes map keys in sorted order so request bodies are deterministic.
var jsonIterConfig = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

type countingWriter struct {
	w       io.Writer
	written int64
}

var _ io.Writer = (*countingWriter)(nil)

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	if err == nil {
		cw.written += int64(n)
	}
	return n, err
}

type jsonMarshalWriterTo struct {
	message interface{}
}

var _ io.WriterTo = (*jsonMarshalWriterTo)(nil)

func (m *jsonMarshalWriterTo) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	encoder := jsonIterConfig.NewEncoder(cw)
	if err := encoder.Encode(m.message); err != nil {
		return cw.written, fmt.Errorf("JSON marshalling error: %w", err)
	}
	return cw.written, nil
}

type bytesWriterTo struct {
	message []byte
}

var _ io.WriterTo = &bytesWriterTo{}

func (x *bytesWriterTo) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(x.message)
	return int64(n), err
}

// newBodyWriter picks how a descriptor body is written. Pre-marshalled JSON and io.WriterTo values are sent verbatim.
// A body may be written several times (to measure it, to send it, to log it), so a caller's io.WriterTo is copied
// once up front; readers such as *bytes.Buffer are drained by their first WriteTo.
func newBodyWriter(body interface{}) (io.WriterTo, error) {
	switch b := body.(type) {
	case json.RawMessage:
		return &bytesWriterTo{[]byte(b)}, nil
	case jsoniter.RawMessage:
		return &bytesWriterTo{[]byte(b)}, nil
	case io.WriterTo:
		var buf bytes.Buffer
		if _, err := b.WriteTo(&buf); err != nil {
			return nil, fmt.Errorf("reading request body: %w", err)
		}
		return &bytesWriterTo{buf.Bytes()}, nil
	default:
		return &jsonMarshalWriterTo{body}, nil
	}
}

type limitWriter struct {
	buf      bytes.Buffer
	maxBytes int
	written  int64
}

var _ io.Writer = &limitWriter{}

func (lw *limitWriter) Overflow() bool {
	return lw.buf.Len() > lw.maxBytes
}

func (lw *limitWriter) Write(bytes []byte) (int, error) {
	if lw.Overflow() {
		n := len(bytes)
		lw.written += int64(n)
		return n, nil
	}
	n, err := lw.buf.Write(bytes)
	lw.written += int64(n)
	return n, err
}
