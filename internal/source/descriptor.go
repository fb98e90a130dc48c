package source

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

// Format names a recognized source schema.
type Format string

const (
	// FormatFileMaker covers the quarterly FileMaker portal extractions.
	FormatFileMaker Format = "filemaker"
	// FormatLegistar covers the annual Legistar API extractions.
	FormatLegistar Format = "legistar"
)

// Descriptor identifies one source file and its declared schema.
type Descriptor struct {
	Path   string
	Tag    Tag
	Format Format
}

var (
	quarterlyPattern = regexp.MustCompile(`^LAUSD-(\d{4})-Q(\d)-Votes\.csv$`)
	annualPattern    = regexp.MustCompile(`^LAUSD-(\d{4})-Votes\.csv$`)
)

// Discover finds all vote exports under dir. Results are ordered by
// filename so ingestion order is independent of directory enumeration.
func Discover(dir string) ([]Descriptor, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read source directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var descriptors []Descriptor
	for _, name := range names {
		if m := quarterlyPattern.FindStringSubmatch(name); m != nil {
			year, _ := strconv.Atoi(m[1])
			quarter, _ := strconv.Atoi(m[2])
			descriptors = append(descriptors, Descriptor{
				Path:   filepath.Join(dir, name),
				Tag:    Tag{Year: year, Quarter: quarter},
				Format: FormatFileMaker,
			})
			continue
		}
		if m := annualPattern.FindStringSubmatch(name); m != nil {
			year, _ := strconv.Atoi(m[1])
			descriptors = append(descriptors, Descriptor{
				Path:   filepath.Join(dir, name),
				Tag:    Tag{Year: year},
				Format: FormatLegistar,
			})
		}
	}
	return descriptors, nil
}
