// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509viewer

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// ComputeFingerprints digests the exact DER bytes with MD5, SHA-1 and SHA-256.
func ComputeFingerprints(der []byte) Fingerprints {
	m := md5.Sum(der)
	s1 := sha1.Sum(der)
	s256 := sha256.Sum256(der)

	return Fingerprints{
		MD5:    SpacedHex(m[:]),
		SHA1:   SpacedHex(s1[:]),
		SHA256: SpacedHex(s256[:]),
	}
}

// SpacedHex renders b as uppercase hex pairs separated by single spaces,
// e.g. "0A 1B 2C".
func SpacedHex(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	const digits = "0123456789ABCDEF"

	var sb strings.Builder
	sb.Grow(len(b)*3 - 1)
	for i, c := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(digits[c>>4])
		sb.WriteByte(digits[c&0x0f])
	}
	return sb.String()
}

// plainHex renders b as uppercase hex without separators.
func plainHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}
