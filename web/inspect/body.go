package inspect

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"unicode/utf8"
)

// maxBodySize bounds how much of a request body the decoders will read.
const maxBodySize = 1024 * 1024 // 1MiB

// PayloadKind identifies which variant of a Payload is populated.
type PayloadKind int

// Payload variants.
const (
	PayloadNone PayloadKind = iota
	PayloadJSON
	PayloadForm
	PayloadFiles
)

// Payload is the decoded request body. Exactly one variant is populated
// per request, since the body can only be consumed once.
type Payload struct {
	kind  PayloadKind
	json  any
	data  string
	form  map[string]string
	files map[string]string
}

// Kind returns the populated variant.
func (p Payload) Kind() PayloadKind {
	return p.kind
}

// JSON returns the generic value decoded from a JSON body, or nil for
// any other variant.
func (p Payload) JSON() any {
	return p.json
}

// Data returns the canonical re-serialization of a decoded JSON body,
// or the empty string for any other variant.
func (p Payload) Data() string {
	return p.data
}

// Form returns the key/value mapping decoded from a urlencoded body.
func (p Payload) Form() map[string]string {
	return p.form
}

// Files returns the mapping of multipart field names to their text
// content.
func (p Payload) Files() map[string]string {
	return p.files
}

// DecodeJSON decodes a JSON request body into a generic tree value, and
// records its canonical re-serialization. An absent or empty body
// yields the None variant; malformed JSON is a decode failure.
func DecodeJSON(body io.Reader) (Payload, error) {
	raw, err := readBody(body)
	if err != nil {
		return Payload{}, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return Payload{}, nil
	}

	var value any
	if err = json.Unmarshal(raw, &value); err != nil {
		return Payload{}, fmt.Errorf("failed decoding request body as JSON: %w", err)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return Payload{}, fmt.Errorf("failed re-serializing JSON body: %w", err)
	}

	return Payload{kind: PayloadJSON, json: value, data: string(data)}, nil
}

// DecodeForm decodes a urlencoded request body into a flat key/value
// mapping, with the same splitting and last-value-wins semantics as
// query string parsing.
func DecodeForm(body io.Reader) (Payload, error) {
	raw, err := readBody(body)
	if err != nil {
		return Payload{}, err
	}

	return Payload{kind: PayloadForm, form: ParseQuery(string(raw))}, nil
}

// DecodeMultipart iterates the parts of a multipart/form-data body in
// arrival order, mapping each part's field name to its content
// interpreted as UTF-8 text. Parts sharing a name overwrite earlier
// ones. A part without a field name, or with content that is not valid
// UTF-8, is a decode failure.
func DecodeMultipart(body io.Reader, contentType string) (Payload, error) {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return Payload{}, fmt.Errorf("failed parsing Content-Type: %w", err)
	}
	boundary, ok := params["boundary"]
	if !ok {
		return Payload{}, errors.New("multipart body is missing a boundary")
	}

	files := make(map[string]string)
	mr := multipart.NewReader(io.LimitReader(body, maxBodySize), boundary)
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Payload{}, fmt.Errorf("failed reading multipart body: %w", err)
		}

		name := part.FormName()
		if name == "" {
			return Payload{}, errors.New("multipart part is missing a field name")
		}

		content, err := io.ReadAll(part)
		if err != nil {
			return Payload{}, fmt.Errorf("failed reading multipart part %q: %w", name, err)
		}
		if !utf8.Valid(content) {
			return Payload{}, fmt.Errorf("content of multipart part %q is not valid UTF-8", name)
		}

		files[name] = string(content)
	}

	return Payload{kind: PayloadFiles, files: files}, nil
}

func readBody(body io.Reader) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	raw, err := io.ReadAll(io.LimitReader(body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed reading request body: %w", err)
	}
	return raw, nil
}
