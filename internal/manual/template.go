package manual

import (
	stderrors "errors"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"git.home.luguber.info/inful/manualgen/internal/foundation/errors"
)

// Template is the raw Markdown source of a manual. It is never modified.
type Template struct {
	Path    string
	Content string
}

// ReadTemplate reads a UTF-8 template from path. Line endings are
// normalized to LF, so statistics and the generated manual use LF only.
//
// A path that does not exist or is a directory yields a not_found error; any
// other read failure is a filesystem error.
func ReadTemplate(path string) (Template, error) {
	info, err := os.Stat(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return Template{}, errors.NotFoundError("template file not found").
				WithContext(errors.ContextPath, path).
				WithCause(err).
				Build()
		}
		return Template{}, errors.WrapError(err, errors.CategoryFileSystem, "failed to read template").
			Fatal().
			WithContext(errors.ContextPath, path).
			Build()
	}
	if info.IsDir() {
		return Template{}, errors.NotFoundError("template file not found").
			WithContext(errors.ContextPath, path).
			Build()
	}

	// #nosec G304 -- reading the template the user pointed us at is the point.
	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, errors.WrapError(err, errors.CategoryFileSystem, "failed to read template").
			Fatal().
			WithContext(errors.ContextPath, path).
			Build()
	}
	if !utf8.Valid(data) {
		return Template{}, errors.FileSystemError("template is not valid UTF-8").
			WithContext(errors.ContextPath, path).
			Build()
	}

	return Template{Path: path, Content: normalizeNewlines(string(data))}, nil
}

// normalizeNewlines turns CRLF and lone CR line endings into LF.
func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r\n", "\n"), "\r", "\n")
}
