package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"
)

// MigrationFile describes a freshly created up/down migration pair.
type MigrationFile struct {
	Version     string
	Name        string
	Description string
	Timestamp   time.Time
	UpPath      string
	DownPath    string
}

const upTemplate = `-- Migration: {{.Name}}
-- Created: {{.Timestamp.Format "2006-01-02 15:04:05"}}
{{- if .Description}}
-- {{.Description}}
{{- end}}

-- Write the forward migration here.
`

const downTemplate = `-- Rollback: {{.Name}}
-- Created: {{.Timestamp.Format "2006-01-02 15:04:05"}}

-- Write the statements that undo the forward migration here.
`

// CreateMigration writes a timestamped up/down SQL file pair into dir.
func CreateMigration(dir, name, description string) (*MigrationFile, error) {
	if name == "" {
		return nil, fmt.Errorf("migration name is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create migrations directory: %w", err)
	}

	now := time.Now()
	mf := &MigrationFile{
		Version:     now.Format("20060102150405"),
		Name:        sanitizeName(name),
		Description: description,
		Timestamp:   now,
	}
	mf.UpPath = filepath.Join(dir, fmt.Sprintf("%s_%s.up.sql", mf.Version, mf.Name))
	mf.DownPath = filepath.Join(dir, fmt.Sprintf("%s_%s.down.sql", mf.Version, mf.Name))

	if err := renderTemplate(mf.UpPath, upTemplate, mf); err != nil {
		return nil, fmt.Errorf("write up migration: %w", err)
	}
	if err := renderTemplate(mf.DownPath, downTemplate, mf); err != nil {
		os.Remove(mf.UpPath)
		return nil, fmt.Errorf("write down migration: %w", err)
	}
	return mf, nil
}

// ListMigrations returns the base names of the up migrations in dir,
// sorted by filename. A missing directory yields an empty list.
func ListMigrations(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read migrations directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			names = append(names, strings.TrimSuffix(entry.Name(), ".up.sql"))
		}
	}
	return names, nil
}

func renderTemplate(path, text string, mf *MigrationFile) error {
	tmpl, err := template.New(filepath.Base(path)).Parse(text)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return tmpl.Execute(f, mf)
}

// sanitizeName turns free-form input into a safe snake_case file name
// fragment. Runs of spaces, dashes and underscores collapse to a single
// underscore; anything outside [a-z0-9_] is dropped.
func sanitizeName(name string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		case r == ' ' || r == '-' || r == '_':
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
