package wire

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// ErrUnknownCompression is returned for a method flag this build
// does not implement.
var ErrUnknownCompression = errors.New("wire: unknown compression method")

// Methods lists the compression methods this build implements, in
// order of preference.  Peers advertise their list during the
// handshake; the first mutually-held method wins.
var Methods = []Flag{Zlib, Gzip}

// Compress renders b under the supplied method.
func Compress(b []byte, method Flag) ([]byte, error) {
	var (
		buf bytes.Buffer
		w   io.WriteCloser
	)

	switch method {
	case Zlib:
		w = zlib.NewWriter(&buf)
	case Gzip:
		w = gzip.NewWriter(&buf)
	default:
		return nil, ErrUnknownCompression
	}

	if _, err := w.Write(b); err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress reverses Compress.  It fails on corrupt input or on a
// method this build does not implement.
func Decompress(b []byte, method Flag) ([]byte, error) {
	var (
		r   io.ReadCloser
		err error
	)

	switch method {
	case Zlib:
		r, err = zlib.NewReader(bytes.NewReader(b))
	case Gzip:
		r, err = gzip.NewReader(bytes.NewReader(b))
	default:
		return nil, ErrUnknownCompression
	}

	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}
	defer r.Close()

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}

	return raw, nil
}
