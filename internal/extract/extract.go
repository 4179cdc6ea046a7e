package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Result reports the outcome of a text extraction attempt. Extraction
// never fails hard: unsupported or corrupt input yields Text == "" with
// Error describing what went wrong, and downstream callers carry on.
type Result struct {
	Text   string
	Parser string
	Pages  int
	Name   string
	Mime   string
	Ext    string
	Error  string
}

// File extracts plain text from an uploaded file.
func File(data []byte, mimeType, fileName string) Result {
	res := Result{
		Parser: "none",
		Name:   fileName,
		Mime:   normalizeMimeType(mimeType),
		Ext:    strings.ToLower(filepath.Ext(fileName)),
	}

	if len(data) == 0 {
		res.Error = "empty file"
		return res
	}

	switch {
	case res.Mime == mimePDF || res.Ext == ".pdf":
		text, pages, err := extractPDF(data)
		res.Parser = "pdf"
		res.Pages = pages
		if err != nil {
			res.Error = err.Error()
			return res
		}
		res.Text = text
	case res.Mime == mimeDOCX || res.Ext == ".docx":
		text, err := extractDOCX(data)
		res.Parser = "docx"
		if err != nil {
			res.Error = err.Error()
			return res
		}
		res.Text = text
	case strings.HasPrefix(res.Mime, "text/") || res.Ext == ".txt" || res.Ext == ".md":
		res.Parser = "text"
		res.Text = string(data)
	default:
		res.Error = fmt.Sprintf("unsupported file type: %s", res.Mime)
	}
	return res
}

// extractPDF walks pages with ledongthuc/pdf. The library panics on some
// corrupt inputs, so the whole walk runs under recover.
func extractPDF(data []byte) (text string, pages int, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("pdf parse: %v", rec)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", 0, fmt.Errorf("pdf parse: %w", err)
	}

	pages = reader.NumPage()
	var builder strings.Builder
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, perr := page.GetPlainText(nil)
		if perr != nil {
			continue
		}
		builder.WriteString(pageText)
	}
	return builder.String(), pages, nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		// Some producers write slightly off-spec archives the docx
		// library rejects; fall back to reading document.xml directly.
		return extractDOCXRaw(data)
	}
	defer doc.Close()
	return stripDocxXML(doc.Editable().GetContent()), nil
}

func extractDOCXRaw(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("docx parse: %w", err)
	}

	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("docx parse: %w", err)
		}
		defer rc.Close()
		raw, err := io.ReadAll(rc)
		if err != nil {
			return "", fmt.Errorf("docx parse: %w", err)
		}
		return stripDocxXML(string(raw)), nil
	}
	return "", errors.New("docx parse: document.xml not found")
}

func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return strings.TrimSpace(raw)
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

func normalizeMimeType(mimeType string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
}
