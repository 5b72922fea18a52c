package meter

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"image"
	"io"
	"time"

	"golang.org/x/image/bmp"

	"github.com/emackay/go-fluke289/protocol"
)

// ScreenshotData captures the LCD contents and returns the raw bitmap
// bytes (a Windows BMP, already decompressed).
//
// The QLCDBM transfer returns gzip-compressed bitmap data in bounded
// windows addressed by a byte offset. Requesting offset 0 makes the device
// capture and compress a fresh screenshot, which takes it a moment, so the
// first exchange carries the configured settle delay. Later offsets read
// from that captured buffer.
func (m *Meter) ScreenshotData(ctx context.Context) ([]byte, error) {
	compressed, err := protocol.ReassembleChunks(func(offset int) ([]byte, error) {
		settle := time.Duration(0)
		if offset == 0 {
			settle = m.config.SettleDelay
		}
		return m.exchange(ctx, fmt.Sprintf("QLCDBM %d", offset), settle)
	})
	if err != nil {
		return nil, err
	}

	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("screenshot: decompress: %w", err)
	}
	defer zr.Close()

	bitmap, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("screenshot: decompress: %w", err)
	}

	m.config.Logger.WithField("bytes", len(bitmap)).Debug("screenshot captured")
	return bitmap, nil
}

// Screenshot captures the LCD contents and decodes them into an image.
func (m *Meter) Screenshot(ctx context.Context) (image.Image, error) {
	bitmap, err := m.ScreenshotData(ctx)
	if err != nil {
		return nil, err
	}

	img, err := bmp.Decode(bytes.NewReader(bitmap))
	if err != nil {
		return nil, fmt.Errorf("screenshot: decode bitmap: %w", err)
	}
	return img, nil
}
