package extractor

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"papertrail-ai/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePages struct {
	pages map[string][]string
}

func (f fakePages) PageTexts(data []byte) ([]string, error) {
	pages, ok := f.pages[string(data)]
	if !ok {
		return nil, errors.New("malformed pdf")
	}
	return pages, nil
}

type fakeOCR struct {
	text  string
	calls int
}

func (f *fakeOCR) Recognize([]byte) (string, error) {
	f.calls++
	return f.text, nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.Black)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newExtractor(pages map[string][]string, ocr *fakeOCR) *Extractor {
	return New(fakePages{pages: pages}, ocr, logger.NewNopLogger())
}

func TestExtract_ConcatenatesPagesWithoutSeparator(t *testing.T) {
	ex := newExtractor(map[string][]string{"doc": {"Hello ", "World"}}, &fakeOCR{})

	res := ex.Extract(context.Background(), []File{{Name: "a.pdf", Data: []byte("doc")}})

	assert.Equal(t, "Hello World", res.Text)
	assert.Empty(t, res.Failures)
}

func TestExtract_JoinsFilesWithNewline(t *testing.T) {
	ocr := &fakeOCR{text: "Bar\n"}
	ex := newExtractor(map[string][]string{"foo": {"  Foo"}}, ocr)

	res := ex.Extract(context.Background(), []File{
		{Name: "foo.PDF", Data: []byte("foo")},
		{Name: "bar.png", Data: pngBytes(t)},
	})

	assert.Equal(t, "Foo\nBar", res.Text)
	assert.Equal(t, 1, ocr.calls)
}

func TestExtract_IsolatesFailures(t *testing.T) {
	ocr := &fakeOCR{text: "never"}
	ex := newExtractor(map[string][]string{"good": {"Good"}}, ocr)

	res := ex.Extract(context.Background(), []File{
		{Name: "broken.pdf", Data: []byte("garbage")},
		{Name: "good.pdf", Data: []byte("good")},
		{Name: "photo.jpg", Data: []byte("not an image")},
		{Name: "notes.txt", Data: []byte("text")},
	})

	assert.Equal(t, "Good", res.Text)
	require.Len(t, res.Failures, 3)
	assert.Equal(t, "Error reading broken.pdf: malformed pdf", res.Failures[0].Error())
	assert.Equal(t, "photo.jpg", res.Failures[1].Name)
	assert.ErrorIs(t, res.Failures[2], ErrUnsupportedFile)
	assert.Zero(t, ocr.calls)
}

func TestExtract_EmptyResult(t *testing.T) {
	ex := newExtractor(map[string][]string{"blank": {" ", "\n"}}, &fakeOCR{})

	res := ex.Extract(context.Background(), []File{{Name: "blank.pdf", Data: []byte("blank")}})

	assert.True(t, res.Empty())
	assert.Empty(t, res.Failures)
}

func TestExtract_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ex := newExtractor(map[string][]string{"doc": {"x"}}, &fakeOCR{})

	res := ex.Extract(ctx, []File{{Name: "a.pdf", Data: []byte("doc")}})

	assert.True(t, res.Empty())
	require.Len(t, res.Failures, 1)
	assert.ErrorIs(t, res.Failures[0], context.Canceled)
}

func TestIsAccepted(t *testing.T) {
	assert.True(t, IsAccepted("Report.PDF"))
	assert.True(t, IsAccepted("scan.jpeg"))
	assert.True(t, IsAccepted("a.b.png"))
	assert.False(t, IsAccepted("notes.txt"))
	assert.False(t, IsAccepted("pdf"))
}
