// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509viewer

import (
	"io"

	"github.com/pkg/errors"

	"github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/ber"
	x509certs "github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/x509/certs"
)

// read loads at most MaxInputSize bytes from r. Text input is normalized to
// DER unless raw is set.
func (p *Parser) read(r io.Reader, text, raw bool) ([]byte, error) {
	data, err := p.certs.Read(r, int64(p.opts.MaxInputSize), text && !raw)
	if err != nil {
		return nil, normalizeError(err)
	}
	return data, nil
}

// ParseReader decodes one certificate read from r. With text set the content
// is classified as PEM, Base64 or hex; otherwise it is taken as DER.
func (p *Parser) ParseReader(r io.Reader, text bool) (*Record, error) {
	der, err := p.read(r, text, false)
	if err != nil {
		return nil, err
	}
	return p.ParseDER(der)
}

// ParseBundle decodes every certificate read from r, in order.
//
// Text input yields one record per PEM CERTIFICATE block, or a single record
// when it holds bare Base64 or hex. Binary input is unwrapped as a PKCS#7
// signed-data bundle when it is one and parsed as a single certificate
// otherwise. The first failing certificate aborts the bundle.
func (p *Parser) ParseBundle(r io.Reader, text bool) ([]*Record, error) {
	data, err := p.read(r, text, true)
	if err != nil {
		return nil, err
	}

	var ders [][]byte
	if text {
		ders, err = p.certs.Split(data)
		if err != nil {
			return nil, normalizeError(err)
		}
	} else {
		ders, err = p.certs.Unwrap(data)
		switch {
		case errors.Is(err, x509certs.ErrParsePKCS7):
			ders = [][]byte{data}
		case err != nil:
			return nil, &Error{Kind: KindCertificateParse, Phase: PhaseCertificate, Err: err}
		}
	}

	recs := make([]*Record, 0, len(ders))
	for i, der := range ders {
		rec, err := p.ParseDER(der)
		if err != nil {
			return nil, errors.Wrapf(err, "certificate %d", i)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// DecodeReader reads input like ParseReader and decodes it as a generic TLV
// tree without interpreting it as a certificate.
func (p *Parser) DecodeReader(r io.Reader, text bool) (*ber.Node, error) {
	der, err := p.read(r, text, false)
	if err != nil {
		return nil, err
	}
	if err := p.checkSize(len(der)); err != nil {
		return nil, err
	}

	root, err := p.decoder.Decode(der)
	if err != nil {
		return nil, asn1Error(PhaseASN1, err)
	}
	return root, nil
}
