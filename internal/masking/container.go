// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package masking

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
)

// Office containers are zip archives; masking rewrites their XML text nodes
// and copies everything else verbatim.
var (
	docxTextNode = regexp.MustCompile(`(<w:t[^>]*>)([^<]*)(</w:t>)`)
	xlsxTextNode = regexp.MustCompile(`(<t[^>]*>)([^<]*)(</t>)`)
)

// maxNestedDepth bounds recursion into zips inside zips.
const maxNestedDepth = 3

// ContainerMasker rewrites text inside zip-based document containers.
// Transform receives the plain text of one XML text node and returns its
// masked form.
type ContainerMasker struct {
	Transform func(string) string
}

// NewContainerMasker creates a masker around a text transform.
func NewContainerMasker(transform func(string) string) *ContainerMasker {
	return &ContainerMasker{Transform: transform}
}

// Rewrite masks one container named by ext (".docx", ".xlsx", or ".zip")
// and writes the rewritten archive to w.
func (cm *ContainerMasker) Rewrite(name string, r io.ReaderAt, size int64, w io.Writer) error {
	return cm.rewrite(name, r, size, w, 0)
}

func (cm *ContainerMasker) rewrite(name string, r io.ReaderAt, size int64, w io.Writer, depth int) error {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return fmt.Errorf("opening container %s: %w", name, err)
	}

	zw := zip.NewWriter(w)
	ext := strings.ToLower(path.Ext(name))

	for _, file := range zr.File {
		if err := cm.rewriteEntry(zw, file, ext, depth); err != nil {
			return err
		}
	}
	return zw.Close()
}

func (cm *ContainerMasker) rewriteEntry(zw *zip.Writer, file *zip.File, containerExt string, depth int) error {
	rc, err := file.Open()
	if err != nil {
		return fmt.Errorf("opening entry %s: %w", file.Name, err)
	}
	defer rc.Close()

	out, err := zw.CreateHeader(&zip.FileHeader{
		Name:   file.Name,
		Method: file.Method,
	})
	if err != nil {
		return fmt.Errorf("writing entry %s: %w", file.Name, err)
	}

	if depth < maxNestedDepth {
		if nested := strings.ToLower(path.Ext(file.Name)); nested == ".docx" || nested == ".xlsx" || nested == ".zip" {
			raw, err := io.ReadAll(rc)
			if err != nil {
				return fmt.Errorf("reading nested container %s: %w", file.Name, err)
			}
			var buf bytes.Buffer
			if err := cm.rewrite(file.Name, bytes.NewReader(raw), int64(len(raw)), &buf, depth+1); err != nil {
				// A broken nested container passes through unmasked.
				_, err = out.Write(raw)
				return err
			}
			_, err = out.Write(buf.Bytes())
			return err
		}
	}

	if pattern := textNodePattern(containerExt, file.Name); pattern != nil {
		raw, err := io.ReadAll(rc)
		if err != nil {
			return fmt.Errorf("reading entry %s: %w", file.Name, err)
		}
		_, err = out.Write(cm.maskTextNodes(raw, pattern))
		return err
	}

	_, err = io.Copy(out, rc)
	return err
}

// textNodePattern returns the text node pattern for an entry, or nil when
// the entry carries no user text.
func textNodePattern(containerExt, entryName string) *regexp.Regexp {
	switch containerExt {
	case ".docx":
		if entryName == "word/document.xml" ||
			strings.HasPrefix(entryName, "word/header") ||
			strings.HasPrefix(entryName, "word/footer") {
			return docxTextNode
		}
	case ".xlsx":
		// Shared strings plus inline strings in the worksheets.
		if entryName == "xl/sharedStrings.xml" ||
			(strings.HasPrefix(entryName, "xl/worksheets/") && strings.HasSuffix(entryName, ".xml")) {
			return xlsxTextNode
		}
	}
	return nil
}

// maskTextNodes runs the transform over every text node in one XML part.
func (cm *ContainerMasker) maskTextNodes(raw []byte, pattern *regexp.Regexp) []byte {
	return pattern.ReplaceAllFunc(raw, func(node []byte) []byte {
		groups := pattern.FindSubmatch(node)
		if groups == nil {
			return node
		}
		text := unescapeXML(string(groups[2]))
		masked := cm.Transform(text)
		if masked == text {
			return node
		}
		var b bytes.Buffer
		b.Write(groups[1])
		xml.EscapeText(&b, []byte(masked))
		b.Write(groups[3])
		return b.Bytes()
	})
}

var xmlUnescaper = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&amp;", "&",
)

func unescapeXML(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return xmlUnescaper.Replace(s)
}
