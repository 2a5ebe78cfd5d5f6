package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const longExperience = "Senior backend engineer with eight years of Java and Spring Boot, " +
	"microservices on AWS, MySQL and Redis, plus team leadership and mentoring."

func TestExtractText_PlainText(t *testing.T) {
	text, err := ExtractText("text/plain", []byte(longExperience))

	require.NoError(t, err)
	assert.Equal(t, longExperience, text)
}

func TestExtractText_MediaTypeParametersIgnored(t *testing.T) {
	text, err := ExtractText("text/plain; charset=utf-8", []byte(longExperience))

	require.NoError(t, err)
	assert.Equal(t, longExperience, text)
}

func TestExtractText_PlainTextIsCleaned(t *testing.T) {
	raw := "  " + strings.ReplaceAll(longExperience, " ", "   ") + "  \r\n\r\n\r\n"

	text, err := ExtractText("text/plain", []byte(raw))

	require.NoError(t, err)
	assert.Equal(t, longExperience, text)
}

func TestExtractText_ShortDocumentGetsGuidance(t *testing.T) {
	text, err := ExtractText("text/plain", []byte("barely anything"))

	require.NoError(t, err)
	assert.Equal(t, ShortTextGuidance, text)
}

func TestExtractText_HTML(t *testing.T) {
	page := `<html>
		<head><title>resume</title><style>body { color: red }</style></head>
		<body>
			<nav>home | about</nav>
			<script>trackVisit()</script>
			<main><p>` + longExperience + `</p></main>
			<footer>copyright</footer>
		</body>
	</html>`

	text, err := ExtractText("text/html", []byte(page))

	require.NoError(t, err)
	assert.Contains(t, text, "Java and Spring Boot")
	assert.NotContains(t, text, "trackVisit")
	assert.NotContains(t, text, "home | about")
	assert.NotContains(t, text, "copyright")
	assert.NotContains(t, text, "color: red")
}

func TestExtractText_UnsupportedType(t *testing.T) {
	_, err := ExtractText("image/png", []byte{0x89, 0x50})

	var extractErr *Error
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, "image/png", extractErr.MediaType)
	assert.Contains(t, err.Error(), "unsupported document type")
}

func TestExtractText_CorruptPDF(t *testing.T) {
	_, err := ExtractText("application/pdf", []byte("definitely not a pdf"))

	var extractErr *Error
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, MediaTypePDF, extractErr.MediaType)
}

func TestExtractText_CorruptDocx(t *testing.T) {
	_, err := ExtractText(MediaTypeDOCX, []byte("definitely not a zip archive"))

	var extractErr *Error
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, MediaTypeDOCX, extractErr.MediaType)
}

func TestError_Unwrap(t *testing.T) {
	cause := assert.AnError
	err := &Error{MediaType: MediaTypePDF, Message: "failed to read document", Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to read document")
}
