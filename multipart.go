package oai

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"

	"github.com/casualjim/oai/param"
)

// Form builds a multipart/form-data request body from file parts and text
// parts. Files are read when they are added, so a missing or unreadable file
// surfaces as a LocalIO error before any request is dispatched. Errors are
// sticky; the first one wins and is reported by Err and at send time.
type Form struct {
	buf bytes.Buffer
	w   *multipart.Writer
	err error
}

// NewForm returns an empty Form.
func NewForm() *Form {
	f := &Form{}
	f.w = multipart.NewWriter(&f.buf)
	return f
}

// Text appends a text part.
func (f *Form) Text(name, value string) *Form {
	if f.err != nil {
		return f
	}
	f.err = wrapErr(ErrEncoding, f.w.WriteField(name, value))
	return f
}

// TextOpt appends a text part for v only when it is present. The value is
// rendered with fmt.Sprint, matching how the API expects numeric and boolean
// form fields.
func TextOpt[T any](f *Form, name string, v param.Opt[T]) *Form {
	if value, ok := param.Text(v); ok {
		f.Text(name, value)
	}
	return f
}

// File reads path from local storage and appends its contents as a file part
// named field, using the file's base name as the part filename.
func (f *Form) File(field, path, contentType string) *Form {
	if f.err != nil {
		return f
	}
	data, err := os.ReadFile(path)
	if err != nil {
		f.err = wrapErr(ErrLocalIO, err)
		return f
	}
	return f.Bytes(field, filepath.Base(path), contentType, data)
}

// Bytes appends data as a file part named field with the given filename and
// content type.
func (f *Form) Bytes(field, filename, contentType string, data []byte) *Form {
	if f.err != nil {
		return f
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`,
		quoteEscaper.Replace(field), quoteEscaper.Replace(filename)))
	h.Set("Content-Type", contentType)

	part, err := f.w.CreatePart(h)
	if err != nil {
		f.err = wrapErr(ErrEncoding, err)
		return f
	}
	if _, err := part.Write(data); err != nil {
		f.err = wrapErr(ErrEncoding, err)
	}
	return f
}

// Err reports the first failure encountered while building the form, if any.
func (f *Form) Err() error {
	return f.err
}

// encode finalizes the form and hands the body to the transport.
func (f *Form) encode() (string, io.Reader, error) {
	if f.err != nil {
		return "", nil, f.err
	}
	if err := f.w.Close(); err != nil {
		return "", nil, wrapErr(ErrEncoding, err)
	}
	return f.w.FormDataContentType(), &f.buf, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")
