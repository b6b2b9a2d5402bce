package epub

import (
	"encoding/xml"
	"fmt"
	"strings"
)

const (
	// encryptionFilePath is the standard path for the encryption descriptor.
	encryptionFilePath = "META-INF/encryption.xml"

	// sinfFilePath is present in Apple FairPlay protected books.
	sinfFilePath = "META-INF/sinf.xml"
)

// Font obfuscation algorithm URIs. Obfuscated fonts are not DRM and the
// archive can still be rewritten; the fonts are copied untouched.
var fontObfuscationAlgorithms = map[string]bool{
	"http://www.idpf.org/2008/embedding": true, // IDPF font obfuscation
	"http://ns.adobe.com/pdf/enc#RC":     true, // Adobe font obfuscation
}

// drmSchemes maps namespace prefixes found in algorithm URIs or KeyInfo
// elements to the DRM scheme they identify.
var drmSchemes = []struct {
	prefix string
	scheme string
}{
	{"http://ns.adobe.com/adept", "Adobe ADEPT"},
	{"http://readium.org/2014/01/lcp", "Readium LCP"},
}

type xmlEncryption struct {
	XMLName       xml.Name           `xml:"encryption"`
	EncryptedData []xmlEncryptedData `xml:"EncryptedData"`
}

type xmlEncryptedData struct {
	EncryptionMethod struct {
		Algorithm string `xml:"Algorithm,attr"`
	} `xml:"EncryptionMethod"`
	KeyInfo struct {
		InnerXML string `xml:",innerxml"`
	} `xml:"KeyInfo"`
}

// checkDRM inspects META-INF/encryption.xml and META-INF/sinf.xml.
//
// It returns fontObfuscation=true when the only encrypted resources are
// obfuscated fonts, and an error wrapping ErrDRMProtected naming the scheme
// when any other resource is encrypted. An encryption.xml that cannot be
// parsed is treated as DRM.
func checkDRM(a *archive) (fontObfuscation bool, err error) {
	if a.lookup(sinfFilePath) != nil {
		return false, drmError("Apple FairPlay")
	}

	if a.lookup(encryptionFilePath) == nil {
		return false, nil
	}

	data, err := a.read(encryptionFilePath)
	if err != nil {
		return false, err
	}

	var enc xmlEncryption
	if err := xml.Unmarshal(stripBOM(data), &enc); err != nil {
		return false, drmError("unreadable encryption.xml")
	}

	for _, ed := range enc.EncryptedData {
		algo := ed.EncryptionMethod.Algorithm
		if fontObfuscationAlgorithms[algo] {
			fontObfuscation = true
			continue
		}
		if scheme := drmScheme(algo); scheme != "" {
			return false, drmError(scheme)
		}
		if scheme := drmScheme(ed.KeyInfo.InnerXML); scheme != "" {
			return false, drmError(scheme)
		}
		return false, drmError("unknown scheme")
	}

	return fontObfuscation, nil
}

// drmScheme returns the DRM scheme whose namespace appears in s, or "".
func drmScheme(s string) string {
	for _, d := range drmSchemes {
		if strings.Contains(s, d.prefix) {
			return d.scheme
		}
	}
	return ""
}

func drmError(scheme string) error {
	return fmt.Errorf("%w: %s", ErrDRMProtected, scheme)
}
