package net

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
)

// ShareScheme prefixes links that carry a whole drawing inline, so the
// app can be pointed at one from the command line.
const ShareScheme = "inkwell://"

// EncodeShareLink packs raw SVG bytes into a self-contained link.
func EncodeShareLink(svgData []byte) string {
	return ShareScheme + "import?d=" + base64.RawURLEncoding.EncodeToString(svgData)
}

// DecodeShareLink reverses EncodeShareLink.
func DecodeShareLink(link string) ([]byte, error) {
	if !strings.HasPrefix(link, ShareScheme) {
		return nil, fmt.Errorf("decode share link: not an %s link", ShareScheme)
	}
	u, err := url.Parse(link)
	if err != nil {
		return nil, fmt.Errorf("decode share link: %w", err)
	}
	payload := u.Query().Get("d")
	if payload == "" {
		return nil, fmt.Errorf("decode share link: missing d parameter")
	}
	data, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode share link: %w", err)
	}
	return data, nil
}
