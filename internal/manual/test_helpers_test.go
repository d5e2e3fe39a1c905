package manual

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// completeTemplate has all required sections, no format issues and uses every
// default placeholder.
const completeTemplate = `# {{system_name}} User Manual

Version {{version}}, generated {{date}}.

## Overview

Read the [quick start](quick-start.md).

## Device Setup

### Pairing

## Feature Guide

## Troubleshooting

## Safety Guidelines
`

// templateWith builds a template from the given body lines joined by newlines.
func templateWith(lines ...string) string {
	return strings.Join(lines, "\n")
}

// writeTemplate writes content into a temp dir and returns its path.
func writeTemplate(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "templates", "user-manual-template.md")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
