package extract

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_PlainText(t *testing.T) {
	svc := NewService()

	text, err := svc.Extract("postmortem.txt", "text/plain", []byte("Incident INC-1234\n\n\n\nDatabase   outage.\n"))
	require.NoError(t, err)
	assert.Equal(t, "Incident INC-1234\n\nDatabase outage.", text)
}

func TestExtract_Markdown(t *testing.T) {
	svc := NewService()

	text, err := svc.Extract("postmortem.md", "text/markdown", []byte("# INC-42\n\n- impact: checkout down"))
	require.NoError(t, err)
	assert.Contains(t, text, "# INC-42")
	assert.Contains(t, text, "- impact: checkout down")
}

func TestExtract_HTML(t *testing.T) {
	svc := NewService()

	page := `<html><head><style>body{color:red}</style><script>alert(1)</script></head>
<body><h1>INC-7 Postmortem</h1><p>Severity: high</p><ul><li>restart service</li></ul></body></html>`

	text, err := svc.Extract("report.html", "text/html", []byte(page))
	require.NoError(t, err)
	assert.Contains(t, text, "INC-7 Postmortem")
	assert.Contains(t, text, "Severity: high")
	assert.Contains(t, text, "restart service")
	assert.NotContains(t, text, "alert(1)")
	assert.NotContains(t, text, "color:red")
}

func TestExtract_DOCX(t *testing.T) {
	svc := NewService()

	documentXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Incident INC-99</w:t></w:r></w:p>
    <w:p><w:r><w:t>Severity:</w:t></w:r><w:r><w:tab/><w:t>critical</w:t></w:r></w:p>
  </w:body>
</w:document>`

	text, err := svc.Extract("report.docx",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		buildDOCX(t, documentXML))
	require.NoError(t, err)
	assert.Equal(t, "Incident INC-99\nSeverity: critical", text)
}

func TestExtract_DOCXMissingDocumentPart(t *testing.T) {
	svc := NewService()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = svc.Extract("broken.docx",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		buf.Bytes())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "word/document.xml")
}

func TestExtract_CorruptPDF(t *testing.T) {
	svc := NewService()

	_, err := svc.Extract("scan.pdf", "application/pdf", []byte("%PDF-1.4 not really a pdf"))
	require.Error(t, err)
}

func TestExtract_FallsBackToExtension(t *testing.T) {
	svc := NewService()

	text, err := svc.Extract("notes.md", "application/octet-stream", []byte("plain notes"))
	require.NoError(t, err)
	assert.Equal(t, "plain notes", text)
}

func TestExtract_UnsupportedType(t *testing.T) {
	svc := NewService()

	_, err := svc.Extract("photo.png", "image/png", []byte{0x89, 0x50})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestExtract_EmptyDocument(t *testing.T) {
	svc := NewService()

	_, err := svc.Extract("empty.txt", "text/plain", nil)
	assert.ErrorIs(t, err, ErrNoText)

	_, err = svc.Extract("blank.txt", "text/plain", []byte("   \n\n\t  "))
	assert.ErrorIs(t, err, ErrNoText)
}

func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}
