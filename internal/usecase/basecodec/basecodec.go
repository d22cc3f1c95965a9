// Package basecodec encodes and decodes Base64 and Base32 text.
package basecodec

import (
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/toolbelt/internal/domain"
)

// Alphabet selects the concrete encoding.
type Alphabet string

const (
	AlphabetBase64    Alphabet = "base64"
	AlphabetBase64URL Alphabet = "base64url"
	AlphabetBase32    Alphabet = "base32"
	AlphabetBase32Hex Alphabet = "base32hex"
)

// Options control codec behavior.
type Options struct {
	Alphabet  Alphabet
	Decode    bool
	NoPadding bool
}

// Run encodes (or decodes) input with the configured alphabet.
func Run(input string, opts Options) domain.ToolResult {
	enc, err := encoding(opts)
	if err != nil {
		return domain.Failf("%v", err)
	}

	if opts.Decode {
		return decode(enc, input, opts)
	}
	return encode(enc, input, opts)
}

func encoding(opts Options) (codec, error) {
	switch opts.Alphabet {
	case AlphabetBase64, "":
		e := base64.StdEncoding
		if opts.NoPadding {
			e = base64.RawStdEncoding
		}
		return b64{e}, nil
	case AlphabetBase64URL:
		e := base64.URLEncoding
		if opts.NoPadding {
			e = base64.RawURLEncoding
		}
		return b64{e}, nil
	case AlphabetBase32:
		e := base32.StdEncoding
		if opts.NoPadding {
			e = e.WithPadding(base32.NoPadding)
		}
		return b32{e}, nil
	case AlphabetBase32Hex:
		e := base32.HexEncoding
		if opts.NoPadding {
			e = e.WithPadding(base32.NoPadding)
		}
		return b32{e}, nil
	default:
		return nil, fmt.Errorf("unknown alphabet %q (expected base64|base64url|base32|base32hex)", opts.Alphabet)
	}
}

// codec unifies the two stdlib encoders behind one shape.
type codec interface {
	EncodeToString(src []byte) string
	DecodeString(s string) ([]byte, error)
}

type b64 struct{ *base64.Encoding }
type b32 struct{ *base32.Encoding }

func encode(enc codec, input string, opts Options) domain.ToolResult {
	out := enc.EncodeToString([]byte(input))
	res := domain.Ok(out + "\n")
	res = res.WithMeta("alphabet", string(alphabetOf(opts)))
	res = res.WithMeta("input_bytes", strconv.Itoa(len(input)))
	res = res.WithMeta("output_chars", strconv.Itoa(len(out)))
	return res
}

func decode(enc codec, input string, opts Options) domain.ToolResult {
	// Tolerate surrounding whitespace and line wraps from copy/paste.
	compact := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, input)

	raw, err := enc.DecodeString(compact)
	if err != nil {
		var cerr base64.CorruptInputError
		if errors.As(err, &cerr) {
			return domain.Failf("invalid %s input at offset %d", alphabetOf(opts), int64(cerr))
		}
		var c32 base32.CorruptInputError
		if errors.As(err, &c32) {
			return domain.Failf("invalid %s input at offset %d", alphabetOf(opts), int64(c32))
		}
		return domain.Failf("invalid %s input: %v", alphabetOf(opts), err)
	}

	res := domain.ToolResult{Success: true}
	if utf8.Valid(raw) {
		res.Output = string(raw)
	} else {
		// Binary payloads surface as hex so the UI stays printable.
		res.Output = hex.EncodeToString(raw)
		res = res.WithMeta("binary", "true")
		res = res.WithMeta("output_encoding", "hex")
	}
	res = res.WithMeta("alphabet", string(alphabetOf(opts)))
	res = res.WithMeta("decoded_bytes", strconv.Itoa(len(raw)))
	return res
}

func alphabetOf(opts Options) Alphabet {
	if opts.Alphabet == "" {
		return AlphabetBase64
	}
	return opts.Alphabet
}
