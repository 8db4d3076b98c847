// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cloudflare/cfssl/crypto/pkcs7"

	"github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/helper/gc"
)

var (
	// ErrUnrecognizedFormat indicates that the input is neither PEM, Base64 nor hex text.
	ErrUnrecognizedFormat = errors.New("x509certs: unrecognized certificate format, expected PEM, Base64 or hex")

	// ErrInvalidBase64 indicates that PEM or Base64 text could not be decoded.
	ErrInvalidBase64 = errors.New("x509certs: invalid base64 data")

	// ErrInvalidHex indicates that hex text could not be decoded.
	ErrInvalidHex = errors.New("x509certs: invalid hex data")

	// ErrInputTooLarge indicates that the input exceeds the configured size limit.
	ErrInputTooLarge = errors.New("x509certs: input exceeds size limit")

	// ErrParsePKCS7 indicates a failure to parse PKCS7 formatted data.
	ErrParsePKCS7 = errors.New("x509certs: failed to parse PKCS7 data")

	// ErrNoCertificatesInPKCS indicates that no certificates were found in the PKCS7 data.
	ErrNoCertificatesInPKCS = errors.New("x509certs: no certificates found in PKCS7 data")
)

var (
	pemBody       = regexp.MustCompile(`(?s)-----BEGIN CERTIFICATE-----(.*?)-----END CERTIFICATE-----`)
	base64Charset = regexp.MustCompile(`^[A-Za-z0-9+/=\s]+$`)
	hexCharset    = regexp.MustCompile(`^[0-9A-Fa-f\s]+$`)
)

// textExtensions lists file extensions whose content is read as text.
var textExtensions = map[string]bool{
	".pem": true,
	".crt": true,
	".cer": true,
}

// Certificate provides methods to turn [X.509] certificate input into DER bytes.
// It maintains internal configuration such as the certificate block type.
//
// [X.509]: https://grokipedia.com/page/X.509
type Certificate struct {
	certBlockType string
	pemBegin      []byte
}

// New creates a new Certificate with default settings.
func New() *Certificate {
	return &Certificate{
		certBlockType: "CERTIFICATE",
		pemBegin:      []byte("-----BEGIN CERTIFICATE-----"),
	}
}

// IsPEM reports whether data contains a PEM certificate delimiter.
func (c *Certificate) IsPEM(data []byte) bool {
	return bytes.Contains(data, c.pemBegin)
}

// Normalize classifies textual certificate input and decodes it to DER.
//
// Parameters:
//   - input: PEM text, bare Base64 or bare hex; surrounding and embedded whitespace is ignored
//
// Returns:
//   - []byte: the DER bytes
//   - error: ErrUnrecognizedFormat, ErrInvalidBase64 or ErrInvalidHex
//
// PEM is tried first, then Base64, then hex. Text made only of hex digits is
// also valid Base64; when such text does not Base64-decode to a SEQUENCE it
// is decoded as hex instead.
func (c *Certificate) Normalize(input []byte) ([]byte, error) {
	if c.IsPEM(input) {
		m := pemBody.FindSubmatch(input)
		if m == nil {
			return nil, fmt.Errorf("%w: missing END CERTIFICATE delimiter", ErrInvalidBase64)
		}
		return decodeBase64(stripSpace(m[1]))
	}

	trimmed := bytes.TrimSpace(input)
	if len(trimmed) == 0 {
		return nil, ErrUnrecognizedFormat
	}

	switch {
	case base64Charset.Match(trimmed):
		body := stripSpace(trimmed)
		der, err := decodeBase64(body)
		if (err != nil || !startsWithSequence(der)) && hexCharset.Match(trimmed) {
			return decodeHex(body)
		}
		return der, err
	case hexCharset.Match(trimmed):
		return decodeHex(stripSpace(trimmed))
	default:
		return nil, ErrUnrecognizedFormat
	}
}

// Split decodes every PEM certificate block in input, in order.
// Input without PEM blocks is normalized as a single certificate.
func (c *Certificate) Split(input []byte) ([][]byte, error) {
	if !c.IsPEM(input) {
		der, err := c.Normalize(input)
		if err != nil {
			return nil, err
		}
		return [][]byte{der}, nil
	}

	var ders [][]byte
	rest := input
	for len(rest) > 0 {
		block, remainder := pem.Decode(rest)
		if block == nil {
			break
		}
		if block.Type == c.certBlockType {
			ders = append(ders, block.Bytes)
		}
		rest = remainder
	}

	// pem.Decode rejects single-line bodies that Normalize still accepts.
	if len(ders) == 0 {
		der, err := c.Normalize(input)
		if err != nil {
			return nil, err
		}
		ders = append(ders, der)
	}

	return ders, nil
}

// Unwrap extracts the certificates of a PKCS#7 signed-data structure,
// returning the DER encoding of each in order.
func (c *Certificate) Unwrap(der []byte) ([][]byte, error) {
	// Attempt to parse as PKCS7 using Cloudflare's library
	p, err := pkcs7.ParsePKCS7(der)
	if err != nil {
		return nil, ErrParsePKCS7
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificatesInPKCS
	}

	ders := make([][]byte, 0, len(p.Content.SignedData.Certificates))
	for _, cert := range p.Content.SignedData.Certificates {
		ders = append(ders, cert.Raw)
	}
	return ders, nil
}

// EncodePEM encodes DER bytes as a PEM certificate block, with the base64
// body wrapped at 64 characters and no trailing newline.
func (c *Certificate) EncodePEM(der []byte) string {
	block := pem.Block{
		Type:  c.certBlockType,
		Bytes: der,
	}
	return strings.TrimSuffix(string(pem.EncodeToMemory(&block)), "\n")
}

// IsTextFile reports whether a file is read as text based on its extension.
func IsTextFile(path string) bool {
	return textExtensions[strings.ToLower(filepath.Ext(path))]
}

// ReadFile loads a certificate file and returns its DER bytes.
//
// Files ending in .pem, .crt or .cer are read as text and normalized; other
// files are taken as binary DER. A text file that cannot be classified but
// starts like a DER SEQUENCE is returned as binary.
//
// Parameters:
//   - path: the file to read
//   - limit: maximum number of bytes to read, 0 for no limit
func (c *Certificate) ReadFile(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return c.Read(f, limit, IsTextFile(path))
}

// Read loads certificate input from r. When text is true the content is
// normalized, otherwise it is returned as DER.
func (c *Certificate) Read(r io.Reader, limit int64, text bool) ([]byte, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()         // Reset the buffer to prevent data leaks
		gc.Default.Put(buf) // Return the buffer to the pool for reuse
	}()

	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("reading certificate input: %w", err)
	}

	data := buf.Bytes()
	if limit > 0 && int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrInputTooLarge, limit)
	}

	if !text {
		return bytes.Clone(data), nil
	}

	der, err := c.Normalize(data)
	if errors.Is(err, ErrUnrecognizedFormat) && startsWithSequence(data) {
		return bytes.Clone(data), nil
	}
	return der, err
}

func decodeBase64(s []byte) ([]byte, error) {
	out := make([]byte, base64.StdEncoding.DecodedLen(len(s)))
	n, err := base64.StdEncoding.Decode(out, s)
	if err != nil {
		// Tolerate bodies without padding.
		raw := bytes.TrimRight(s, "=")
		out = make([]byte, base64.RawStdEncoding.DecodedLen(len(raw)))
		n, err = base64.RawStdEncoding.Decode(out, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
		}
	}
	return out[:n], nil
}

func decodeHex(s []byte) ([]byte, error) {
	out := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(out, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return out[:n], nil
}

func stripSpace(b []byte) []byte {
	return bytes.Join(bytes.Fields(b), nil)
}

func startsWithSequence(der []byte) bool {
	return len(der) > 1 && der[0] == 0x30
}
