package controller

import (
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"papertrail-ai/internal/pkg/serverutils"
	"papertrail-ai/pkg/extractor"

	"github.com/gofiber/fiber/v2"
)

const uploadField = "files"

// readUploads loads every file posted under the "files" field into memory.
// A request without a multipart body yields an empty batch.
func readUploads(ctx *fiber.Ctx) ([]extractor.File, error) {
	if !strings.HasPrefix(string(ctx.Request().Header.ContentType()), fiber.MIMEMultipartForm) {
		return nil, nil
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return nil, serverutils.BadRequest("Invalid multipart body", err)
	}

	headers := form.File[uploadField]
	files := make([]extractor.File, 0, len(headers))
	for _, fh := range headers {
		data, err := readHeader(fh)
		if err != nil {
			return nil, serverutils.BadRequest(fmt.Sprintf("Cannot read upload %s", fh.Filename), err)
		}
		files = append(files, extractor.File{Name: fh.Filename, Data: data})
	}
	return files, nil
}

func readHeader(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
