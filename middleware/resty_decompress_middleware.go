package middleware

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/go-resty/resty/v2"
)

var gzipMagic = []byte{0x1f, 0x8b}

// DecompressMiddleware decodes br bodies for clients that set their own
// Accept-Encoding. resty already unwraps gzip but keeps the header, so a gzip
// body is only decoded when it still starts with the gzip magic bytes.
func DecompressMiddleware(_ *resty.Client, resp *resty.Response) error {
	encoding := resp.Header().Get("Content-Encoding")
	body := resp.Body()
	if encoding == "" || len(body) == 0 {
		return nil
	}

	var reader io.Reader
	switch encoding {
	case "br":
		reader = brotli.NewReader(bytes.NewReader(body))
	case "gzip":
		if !bytes.HasPrefix(body, gzipMagic) {
			resp.Header().Del("Content-Encoding")
			return nil
		}
		gz, err := gzip.NewReader(bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("gzip body: %w", err)
		}
		defer gz.Close()
		reader = gz
	default:
		return nil
	}

	decoded, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("%s body: %w", encoding, err)
	}

	resp.SetBody(decoded)
	resp.Header().Del("Content-Encoding")
	return nil
}
