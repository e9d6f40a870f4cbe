package report

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const (
	MeetingBriefsDir = "meeting-briefs"

	artifactDirMode  = 0o755
	artifactFileMode = 0o644
	dayLayout        = "2006-01-02"
)

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// BriefingFilename names the daily briefing artifact, for example
// briefing-2026-03-02.md.
func BriefingFilename(day time.Time, f Format) string {
	return "briefing-" + day.Format(dayLayout) + f.Extension()
}

// MeetingBriefFilename names a meeting brief artifact after its day and title.
func MeetingBriefFilename(day time.Time, title string, f Format) string {
	return day.Format(dayLayout) + "-" + Slug(title) + f.Extension()
}

// Slug lowercases title and replaces every run of characters outside a-z and
// 0-9 with a single dash.
func Slug(title string) string {
	slug := strings.Trim(slugSeparators.ReplaceAllString(strings.ToLower(title), "-"), "-")
	if slug == "" {
		return "meeting"
	}

	return slug
}

// WriteArtifact writes content to dir/name through a temp file and rename, and
// returns the final path.
func WriteArtifact(dir, name, content string) (string, error) {
	if err := os.MkdirAll(dir, artifactDirMode); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(dir, name)
	tmp, err := os.CreateTemp(dir, "."+name+"-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp artifact: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write artifact: %w", err)
	}
	if err := tmp.Chmod(artifactFileMode); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("chmod artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close artifact: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return "", fmt.Errorf("rename artifact: %w", err)
	}

	return path, nil
}
