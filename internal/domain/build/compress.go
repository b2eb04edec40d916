package build

import (
	"strings"

	lzstring "github.com/daku10/go-lz-string"
)

// The enabled/priority bit channels and the comparison blob ride inside
// URLs, so the base64 output of the LZ-string compressor has its '/'
// swapped for '-'. Both directions must agree exactly or shared links
// break.

func compressSegment(s string) (string, error) {
	out, err := lzstring.CompressToBase64(s)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(out, "/", "-"), nil
}

func decompressSegment(s string) (string, error) {
	return lzstring.DecompressFromBase64(strings.ReplaceAll(s, "-", "/"))
}
