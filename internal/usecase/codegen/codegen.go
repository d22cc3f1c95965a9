// Package codegen renders text as QR, Code128 or EAN-13 PNG images.
package codegen

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"strconv"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/ean"
	"github.com/boombuler/barcode/qr"

	"github.com/aalvaropc/toolbelt/internal/domain"
)

// Format selects the symbology.
type Format string

const (
	FormatQR      Format = "qr"
	FormatCode128 Format = "code128"
	FormatEAN13   Format = "ean13"
)

// Options control generation.
type Options struct {
	Format Format
	Size   int    // output width in pixels; defaults to 256
	Level  string // QR error correction: L, M, Q, H; defaults to M
}

func (o Options) size() int {
	if o.Size <= 0 {
		return 256
	}
	return o.Size
}

// Generate encodes input and returns the PNG base64-encoded in Output
// (Metadata["encoding"] = "base64").
func Generate(input string, opts Options) domain.ToolResult {
	if strings.TrimSpace(input) == "" {
		return domain.Failf("empty input")
	}

	bc, err := encode(input, opts)
	if err != nil {
		return domain.Failf("%v", err)
	}

	w := opts.size()
	h := w
	if opts.Format == FormatCode128 || opts.Format == FormatEAN13 {
		// 1D symbologies render as a band, not a square.
		h = w / 3
		if h < 32 {
			h = 32
		}
	}

	scaled, err := barcode.Scale(bc, w, h)
	if err != nil {
		return domain.Failf("scale to %dx%d: %v", w, h, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return domain.Failf("encode PNG: %v", err)
	}

	res := domain.Ok(base64.StdEncoding.EncodeToString(buf.Bytes()))
	res = res.WithMeta("encoding", "base64")
	res = res.WithMeta("format", string(opts.Format))
	res = res.WithMeta("width", strconv.Itoa(w))
	res = res.WithMeta("height", strconv.Itoa(h))
	return res
}

func encode(input string, opts Options) (barcode.Barcode, error) {
	switch opts.Format {
	case FormatQR, "":
		level, err := qrLevel(opts.Level)
		if err != nil {
			return nil, err
		}
		return qr.Encode(input, level, qr.Auto)
	case FormatCode128:
		return code128.Encode(input)
	case FormatEAN13:
		return ean.Encode(input)
	default:
		return nil, fmt.Errorf("unknown format %q (expected qr|code128|ean13)", opts.Format)
	}
}

func qrLevel(s string) (qr.ErrorCorrectionLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "M":
		return qr.M, nil
	case "L":
		return qr.L, nil
	case "Q":
		return qr.Q, nil
	case "H":
		return qr.H, nil
	default:
		return qr.M, fmt.Errorf("unknown error-correction level %q (expected L|M|Q|H)", s)
	}
}
