// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509viewer

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/ber"
	x509certs "github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/x509/certs"
)

// Kind classifies a parse failure.
type Kind int

const (
	KindUnrecognizedFormat Kind = iota + 1
	KindTruncatedData
	KindMalformedEncoding
	KindDepthExceeded
	KindCertificateParse
	KindExtensionDecode
	KindInputTooLarge
)

func (k Kind) String() string {
	switch k {
	case KindUnrecognizedFormat:
		return "UnrecognizedFormat"
	case KindTruncatedData:
		return "TruncatedData"
	case KindMalformedEncoding:
		return "MalformedEncoding"
	case KindDepthExceeded:
		return "DepthExceeded"
	case KindCertificateParse:
		return "CertificateParseError"
	case KindExtensionDecode:
		return "ExtensionDecodeError"
	case KindInputTooLarge:
		return "InputTooLarge"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Phase names the decoding stage that failed.
type Phase string

const (
	PhaseNormalize            Phase = "normalize"
	PhaseASN1                 Phase = "asn1"
	PhaseCertificate          Phase = "certificate"
	PhaseVersion              Phase = "version"
	PhaseSerialNumber         Phase = "serialNumber"
	PhaseSignature            Phase = "signature"
	PhaseIssuer               Phase = "issuer"
	PhaseValidity             Phase = "validity"
	PhaseSubject              Phase = "subject"
	PhaseSubjectPublicKeyInfo Phase = "subjectPublicKeyInfo"
	PhaseExtensions           Phase = "extensions"
)

var (
	// ErrUnrecognizedFormat matches errors of kind KindUnrecognizedFormat.
	ErrUnrecognizedFormat = errors.New("x509viewer: unrecognized format")

	// ErrTruncatedData matches errors of kind KindTruncatedData.
	ErrTruncatedData = errors.New("x509viewer: truncated data")

	// ErrMalformedEncoding matches errors of kind KindMalformedEncoding.
	ErrMalformedEncoding = errors.New("x509viewer: malformed encoding")

	// ErrDepthExceeded matches errors of kind KindDepthExceeded.
	ErrDepthExceeded = errors.New("x509viewer: depth exceeded")

	// ErrCertificateParse matches errors of kind KindCertificateParse.
	ErrCertificateParse = errors.New("x509viewer: certificate parse error")

	// ErrExtensionDecode matches errors of kind KindExtensionDecode.
	ErrExtensionDecode = errors.New("x509viewer: extension decode error")

	// ErrInputTooLarge matches errors of kind KindInputTooLarge.
	ErrInputTooLarge = errors.New("x509viewer: input too large")
)

var kindSentinels = map[Kind]error{
	KindUnrecognizedFormat: ErrUnrecognizedFormat,
	KindTruncatedData:      ErrTruncatedData,
	KindMalformedEncoding:  ErrMalformedEncoding,
	KindDepthExceeded:      ErrDepthExceeded,
	KindCertificateParse:   ErrCertificateParse,
	KindExtensionDecode:    ErrExtensionDecode,
	KindInputTooLarge:      ErrInputTooLarge,
}

// Error is the error type returned by [Parser] methods.
//
// errors.Is reports true for the sentinel of the error's Kind as well as for
// any error in the Err chain (for example ber.ErrTruncatedData).
type Error struct {
	Kind  Kind
	Phase Phase
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s in %s: %v", e.Kind, e.Phase, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel of the error's Kind.
func (e *Error) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}

// parseError builds a fatal CertificateParseError for a TBSCertificate field.
func parseError(phase Phase, format string, args ...any) *Error {
	return &Error{Kind: KindCertificateParse, Phase: phase, Err: errors.Errorf(format, args...)}
}

// extensionError builds a per-extension decode failure.
func extensionError(oid string, err error) *Error {
	return &Error{Kind: KindExtensionDecode, Phase: PhaseExtensions, Err: errors.Wrapf(err, "extension %s", oid)}
}

// asn1Error maps a ber decoding failure onto the taxonomy.
func asn1Error(phase Phase, err error) *Error {
	kind := KindMalformedEncoding
	switch {
	case errors.Is(err, ber.ErrTruncatedData):
		kind = KindTruncatedData
	case errors.Is(err, ber.ErrDepthExceeded):
		kind = KindDepthExceeded
	}
	return &Error{Kind: kind, Phase: phase, Err: err}
}

// normalizeError maps an x509certs failure onto the taxonomy.
func normalizeError(err error) *Error {
	kind := KindUnrecognizedFormat
	switch {
	case errors.Is(err, x509certs.ErrInputTooLarge):
		kind = KindInputTooLarge
	case errors.Is(err, x509certs.ErrInvalidBase64), errors.Is(err, x509certs.ErrInvalidHex):
		kind = KindMalformedEncoding
	}
	return &Error{Kind: kind, Phase: PhaseNormalize, Err: err}
}
