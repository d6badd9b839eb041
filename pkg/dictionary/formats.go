package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// FileFormat represents the supported word list formats
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatText               // one word per line
	FormatCSV                // word in the first column
	FormatBinary             // length-prefixed words with rank
)

func (f FileFormat) String() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Description
	}
	return "unknown"
}

// FormatInfo contains metadata about a word list format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
	MinSize     int64 // Minimum expected file size in bytes
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatText: {
		Format:      FormatText,
		Description: "Plain Text Word List",
		Extensions:  []string{".txt", ".lst", ""},
		MinSize:     1,
	},
	FormatCSV: {
		Format:      FormatCSV,
		Description: "CSV Word List",
		Extensions:  []string{".csv"},
		MinSize:     1,
	},
	FormatBinary: {
		Format:      FormatBinary,
		Description: "Binary Word List",
		Extensions:  []string{".bin"},
		MinSize:     4, // word count header
	},
}

// DetectFileFormat picks the format from the file extension and checks the file fits it
func DetectFileFormat(filename string) (FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, format := range []FileFormat{FormatText, FormatCSV, FormatBinary} {
		if !slices.Contains(supportedFormats[format].Extensions, ext) {
			continue
		}
		if err := ValidateFileFormat(filename, format); err != nil {
			return FormatUnknown, err
		}
		return format, nil
	}
	return FormatUnknown, fmt.Errorf("unable to detect format for file %s (supported: %s)", filename, supportedExtensions())
}

func supportedExtensions() string {
	var exts []string
	for _, info := range ListSupportedFormats() {
		for _, ext := range info.Extensions {
			if ext != "" {
				exts = append(exts, ext)
			}
		}
	}
	return strings.Join(exts, ", ")
}

// ValidateFileFormat checks that a file exists and is large enough for the format
func ValidateFileFormat(filename string, expected FileFormat) error {
	info, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", filename)
	}

	formatInfo, ok := supportedFormats[expected]
	if !ok {
		return fmt.Errorf("unknown format: %v", expected)
	}
	if info.Size() < formatInfo.MinSize {
		return fmt.Errorf("file %s is too small (%d bytes) for format %s (minimum: %d bytes)",
			filename, info.Size(), formatInfo.Description, formatInfo.MinSize)
	}
	return nil
}

// ListSupportedFormats returns all supported formats
func ListSupportedFormats() []FormatInfo {
	formats := make([]FormatInfo, 0, len(supportedFormats))
	for _, f := range []FileFormat{FormatText, FormatCSV, FormatBinary} {
		formats = append(formats, supportedFormats[f])
	}
	return formats
}
