package epub

import "errors"

// Sentinel errors returned by the epub package.
var (
	// ErrDRMProtected indicates the ePub is encrypted (Adobe ADEPT, Apple
	// FairPlay, Readium LCP) and its content documents cannot be rewritten.
	ErrDRMProtected = errors.New("epub: file is DRM protected")

	// ErrInvalidEPub indicates the archive is not a usable ePub
	// (e.g., no container.xml and no .opf file).
	ErrInvalidEPub = errors.New("epub: invalid ePub file")

	// ErrFileNotFound indicates the requested file does not exist
	// in the ePub archive.
	ErrFileNotFound = errors.New("epub: file not found in archive")
)
