package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"
)

// specInput represents the two ways a document version can be provided to a
// tool. Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to the document on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content"`
}

// load returns the document text from whichever input was provided.
func (s specInput) load() (string, error) {
	switch {
	case s.File != "" && s.Content != "":
		return "", fmt.Errorf("exactly one of file or content must be provided (got both)")
	case s.File == "" && s.Content == "":
		return "", fmt.Errorf("exactly one of file or content must be provided (got none)")
	case s.Content != "":
		if int64(len(s.Content)) > cfg.MaxInlineSize {
			return "", fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set SPECDIFF_MAX_INLINE_SIZE to increase",
				len(s.Content), cfg.MaxInlineSize)
		}
		return s.Content, nil
	}

	data, err := os.ReadFile(s.File)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", s.File, err)
	}
	return string(data), nil
}

// versionPair is an old/new pair of document versions plus the filename that
// selects the parser.
type versionPair struct {
	Old      specInput `json:"old"                jsonschema:"The old version of the document"`
	New      specInput `json:"new"                jsonschema:"The new version of the document"`
	Filename string    `json:"filename,omitempty" jsonschema:"Filename whose extension selects the format (defaults to the base name of old.file, then new.file)"`
}

// resolve loads both versions and picks the filename.
func (p versionPair) resolve() (oldContent, newContent, filename string, err error) {
	filename = p.Filename
	if filename == "" {
		switch {
		case p.Old.File != "":
			filename = filepath.Base(p.Old.File)
		case p.New.File != "":
			filename = filepath.Base(p.New.File)
		default:
			return "", "", "", fmt.Errorf("filename is required when both versions are inline content")
		}
	}

	oldContent, err = p.Old.load()
	if err != nil {
		return "", "", "", fmt.Errorf("old: %w", err)
	}
	newContent, err = p.New.load()
	if err != nil {
		return "", "", "", fmt.Errorf("new: %w", err)
	}
	return oldContent, newContent, filename, nil
}
