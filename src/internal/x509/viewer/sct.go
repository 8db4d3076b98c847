// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509viewer

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	ct "github.com/google/certificate-transparency-go"
	cttls "github.com/google/certificate-transparency-go/tls"
	ctx509 "github.com/google/certificate-transparency-go/x509"
	ctutil "github.com/google/certificate-transparency-go/x509util"
	"github.com/pkg/errors"

	"github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/ber"
)

const sctTimeFormat = "2006-01-02 15:04:05.000 MST"

// decodeSCTList renders a signedCertificateTimestampList. The extension
// payload is an OCTET STRING wrapping the TLS-encoded list.
func decodeSCTList(n *ber.Node, ext *Extension) error {
	v, err := n.Value()
	if err != nil {
		return err
	}
	payload, ok := v.(ber.OctetString)
	if !ok {
		return errors.New("signedCertificateTimestampList is not an OCTET STRING")
	}

	var list ctx509.SignedCertificateTimestampList
	rest, err := cttls.Unmarshal(payload.Bytes, &list)
	if err != nil {
		return errors.Wrap(err, "decoding SCT list")
	}
	if len(rest) > 0 {
		return errors.Errorf("%d trailing bytes after SCT list", len(rest))
	}

	scts, err := ctutil.ParseSCTsFromSCTList(&list)
	if err != nil {
		return errors.Wrap(err, "decoding SCT")
	}

	entries := make([]string, 0, len(scts))
	for _, sct := range scts {
		entries = append(entries, formatSCT(sct))
	}
	ext.Value = joinOr(entries, "no timestamps")
	return nil
}

func formatSCT(sct *ct.SignedCertificateTimestamp) string {
	ts := time.UnixMilli(int64(sct.Timestamp)).UTC()

	lines := []string{
		"Version: " + sct.SCTVersion.String(),
		"Log ID: " + base64.StdEncoding.EncodeToString(sct.LogID.KeyID[:]),
		"Timestamp: " + ts.Format(sctTimeFormat),
		fmt.Sprintf("Signature: %s-%s", sct.Signature.Algorithm.Hash, sct.Signature.Algorithm.Signature),
	}
	return strings.Join(lines, "\n")
}
