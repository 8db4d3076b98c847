// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package ber

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// DecodeText converts the content of a character string into a Go string.
//
// The bytes are decoded as UTF-8 only when at least one byte has its top two
// bits set (a UTF-8 lead byte). Otherwise every byte maps to the code point of
// the same value (Latin-1). Invalid UTF-8 sequences become U+FFFD.
func DecodeText(b []byte) string {
	ascii := true
	for _, c := range b {
		if c >= 0xc0 {
			out, err := unicode.UTF8.NewDecoder().Bytes(b)
			if err != nil {
				return string(b)
			}
			return string(out)
		}
		if c >= 0x80 {
			ascii = false
		}
	}
	if ascii {
		return string(b)
	}

	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}

// decodeBMP decodes a BMPString (UTF-16 big endian).
func decodeBMP(b []byte) string {
	out, err := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder().Bytes(b)
	if err != nil {
		return DecodeText(b)
	}
	return string(out)
}

// decodeUniversal decodes a UniversalString (UTF-32 big endian).
func decodeUniversal(b []byte) string {
	out, err := utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM).NewDecoder().Bytes(b)
	if err != nil {
		return DecodeText(b)
	}
	return string(out)
}
