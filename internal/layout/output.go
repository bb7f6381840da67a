package layout

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
)

const pdfMediaType = "application/pdf"

// Bytes, DataURL, WriteTo and Save all finalize the document and return the
// same serialized output in different representations.

func (e *Engine) Bytes() ([]byte, error) {
	return e.Finalize()
}

func (e *Engine) DataURL() (string, error) {
	content, err := e.Finalize()
	if err != nil {
		return "", err
	}
	return DataURL(content), nil
}

func (e *Engine) WriteTo(w io.Writer) (int64, error) {
	content, err := e.Finalize()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(content)
	return int64(n), err
}

func (e *Engine) Save(path string) error {
	content, err := e.Finalize()
	if err != nil {
		return err
	}
	return SaveFile(path, content)
}

// DataURL encodes serialized PDF bytes for inline preview.
func DataURL(content []byte) string {
	return "data:" + pdfMediaType + ";base64," + base64.StdEncoding.EncodeToString(content)
}

func SaveFile(path string, content []byte) error {
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
