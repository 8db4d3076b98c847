// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509viewer

import (
	"os"

	"github.com/pkg/errors"

	"github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/ber"
	x509certs "github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/x509/oids"
)

const (
	// DefaultMaxDepth is the default ASN.1 nesting bound.
	DefaultMaxDepth = ber.DefaultMaxDepth

	// DefaultMaxInputSize is the default input size ceiling in bytes.
	DefaultMaxInputSize = 1 << 20
)

// Options configures a [Parser].
type Options struct {
	// MaxDepth bounds ASN.1 nesting. Non-positive means DefaultMaxDepth.
	MaxDepth int

	// MaxInputSize is checked before any decoding. Non-positive means DefaultMaxInputSize.
	MaxInputSize int
}

// Option sets a field of [Options].
type Option func(*Options)

// WithMaxDepth sets the ASN.1 nesting bound.
func WithMaxDepth(n int) Option {
	return func(o *Options) { o.MaxDepth = n }
}

// WithMaxInputSize sets the input size ceiling in bytes.
func WithMaxInputSize(n int) Option {
	return func(o *Options) { o.MaxInputSize = n }
}

// Parser decodes certificates into records.
//
// Parser holds no mutable state and is safe for concurrent use.
type Parser struct {
	opts    Options
	certs   *x509certs.Certificate
	decoder ber.Decoder
}

// New returns a Parser configured by opts.
func New(opts ...Option) *Parser {
	o := Options{MaxDepth: DefaultMaxDepth, MaxInputSize: DefaultMaxInputSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.MaxInputSize <= 0 {
		o.MaxInputSize = DefaultMaxInputSize
	}

	return &Parser{
		opts:    o,
		certs:   x509certs.New(),
		decoder: ber.Decoder{MaxDepth: o.MaxDepth},
	}
}

// Options returns the effective configuration.
func (p *Parser) Options() Options { return p.opts }

// Parse decodes textual input (PEM, bare Base64 or bare hex) into a record.
//
// Returns an *Error whose Kind is one of KindInputTooLarge,
// KindUnrecognizedFormat, KindMalformedEncoding, KindTruncatedData,
// KindDepthExceeded or KindCertificateParse. No record is returned on error.
func (p *Parser) Parse(input []byte) (*Record, error) {
	if err := p.checkSize(len(input)); err != nil {
		return nil, err
	}

	der, err := p.certs.Normalize(input)
	if err != nil {
		return nil, normalizeError(err)
	}

	return p.ParseDER(der)
}

// ParseFile reads a certificate file and decodes it.
// Files ending in .pem, .crt or .cer are read as text, all others as DER.
func (p *Parser) ParseFile(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening certificate file")
	}
	defer f.Close()

	return p.ParseReader(f, x509certs.IsTextFile(path))
}

// ParseDER decodes the DER encoding of one certificate.
//
// The library strategy is tried first when the public key algorithm is one
// crypto/x509 understands. Any failure there falls back to the manual walk,
// whose errors are final.
func (p *Parser) ParseDER(der []byte) (*Record, error) {
	if err := p.checkSize(len(der)); err != nil {
		return nil, err
	}

	root, err := p.decoder.Decode(der)
	if err != nil {
		return nil, asn1Error(PhaseASN1, err)
	}

	tbs := root.Child(0)
	if !root.IsUniversal(ber.TagSequence) || !tbs.IsUniversal(ber.TagSequence) {
		return nil, parseError(PhaseCertificate, "certificate is not a SEQUENCE holding a TBSCertificate SEQUENCE")
	}

	var rec *Record
	if libraryKey(tbs) {
		// Errors here only mean the manual walk should take over.
		rec, _ = p.parseLibrary(der, tbs)
	}
	if rec == nil {
		if rec, err = p.parseManual(tbs); err != nil {
			return nil, err
		}
	}

	rec.Fingerprints = ComputeFingerprints(der)
	rec.Raw = Raw{
		PEM:    p.certs.EncodePEM(der),
		DERHex: plainHex(der),
	}

	return rec, nil
}

// DecodeASN1 normalizes textual input and decodes it as a generic TLV tree
// bounded by the parser's depth limit.
func (p *Parser) DecodeASN1(input []byte) (*ber.Node, error) {
	if err := p.checkSize(len(input)); err != nil {
		return nil, err
	}

	der, err := p.certs.Normalize(input)
	if err != nil {
		return nil, normalizeError(err)
	}

	root, err := p.decoder.Decode(der)
	if err != nil {
		return nil, asn1Error(PhaseASN1, err)
	}
	return root, nil
}

func (p *Parser) checkSize(n int) error {
	if n > p.opts.MaxInputSize {
		return &Error{
			Kind:  KindInputTooLarge,
			Phase: PhaseNormalize,
			Err:   errors.Wrapf(x509certs.ErrInputTooLarge, "%d bytes exceeds the %d byte limit", n, p.opts.MaxInputSize),
		}
	}
	return nil
}

// libraryKeys are the public key algorithms handed to crypto/x509.
var libraryKeys = map[string]bool{
	oids.RSAEncryption: true,
	oids.ECPublicKey:   true,
	oids.Ed25519:       true,
	oids.X25519:        true,
}

// libraryKey reports whether the subjectPublicKeyInfo algorithm of tbs is one
// crypto/x509 understands.
func libraryKey(tbs *ber.Node) bool {
	spki := tbs.Child(spkiIndex(tbs))
	oid, err := spki.Child(0).Child(0).OID()
	if err != nil {
		return false
	}
	return libraryKeys[oid.String()]
}

// spkiIndex returns the position of subjectPublicKeyInfo within tbs.
func spkiIndex(tbs *ber.Node) int {
	if tbs.Child(0).IsContext(0) {
		return 6
	}
	return 5
}
