// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package masking

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
)

func buildZip(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}

func readZipEntry(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("opening zip: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("opening %s: %v", name, err)
		}
		defer rc.Close()
		raw, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		return string(raw)
	}
	t.Fatalf("entry %s not found", name)
	return ""
}

func redactDigits(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r >= '0' && r <= '9' {
			out[i] = '*'
		}
	}
	return string(out)
}

func TestRewrite_DocxTextNodes(t *testing.T) {
	src := buildZip(t, map[string]string{
		"word/document.xml": `<w:document><w:p><w:r><w:t>电话13812345678</w:t></w:r></w:p></w:document>`,
		"word/styles.xml":   `<w:styles>13812345678</w:styles>`,
	})

	cm := NewContainerMasker(redactDigits)
	var out bytes.Buffer
	if err := cm.Rewrite("report.docx", bytes.NewReader(src), int64(len(src)), &out); err != nil {
		t.Fatalf("Rewrite: %v", err)
	}

	doc := readZipEntry(t, out.Bytes(), "word/document.xml")
	if !strings.Contains(doc, "<w:t>电话***********</w:t>") {
		t.Errorf("document.xml not masked: %s", doc)
	}

	styles := readZipEntry(t, out.Bytes(), "word/styles.xml")
	if !strings.Contains(styles, "13812345678") {
		t.Errorf("styles.xml should pass through unchanged: %s", styles)
	}
}

func TestRewrite_XlsxSharedStrings(t *testing.T) {
	src := buildZip(t, map[string]string{
		"xl/sharedStrings.xml": `<sst><si><t>身份证110101199003074514</t></si></sst>`,
		"xl/workbook.xml":      `<workbook/>`,
	})

	cm := NewContainerMasker(redactDigits)
	var out bytes.Buffer
	if err := cm.Rewrite("data.xlsx", bytes.NewReader(src), int64(len(src)), &out); err != nil {
		t.Fatalf("Rewrite: %v", err)
	}

	shared := readZipEntry(t, out.Bytes(), "xl/sharedStrings.xml")
	if strings.Contains(shared, "110101199003074514") {
		t.Errorf("sharedStrings.xml still holds the raw value: %s", shared)
	}
	if !strings.Contains(shared, "<t>身份证******************</t>") {
		t.Errorf("sharedStrings.xml not masked as expected: %s", shared)
	}
}

func TestRewrite_NestedContainer(t *testing.T) {
	inner := buildZip(t, map[string]string{
		"word/document.xml": `<w:document><w:t>电话13812345678</w:t></w:document>`,
	})
	outer := buildZip(t, map[string]string{
		"attachments/letter.docx": string(inner),
		"readme.txt":              "plain 13812345678",
	})

	cm := NewContainerMasker(redactDigits)
	var out bytes.Buffer
	if err := cm.Rewrite("bundle.zip", bytes.NewReader(outer), int64(len(outer)), &out); err != nil {
		t.Fatalf("Rewrite: %v", err)
	}

	nested := readZipEntry(t, out.Bytes(), "attachments/letter.docx")
	doc := readZipEntry(t, []byte(nested), "word/document.xml")
	if !strings.Contains(doc, "***********") {
		t.Errorf("nested docx not masked: %s", doc)
	}

	readme := readZipEntry(t, out.Bytes(), "readme.txt")
	if readme != "plain 13812345678" {
		t.Errorf("plain entry changed: %s", readme)
	}
}

func TestRewrite_EscapedText(t *testing.T) {
	src := buildZip(t, map[string]string{
		"word/document.xml": `<w:document><w:t>a &amp; 12</w:t></w:document>`,
	})

	cm := NewContainerMasker(redactDigits)
	var out bytes.Buffer
	if err := cm.Rewrite("x.docx", bytes.NewReader(src), int64(len(src)), &out); err != nil {
		t.Fatalf("Rewrite: %v", err)
	}

	doc := readZipEntry(t, out.Bytes(), "word/document.xml")
	if !strings.Contains(doc, "a &amp; **") {
		t.Errorf("escaped text mishandled: %s", doc)
	}
}

func TestRewrite_NotAZip(t *testing.T) {
	cm := NewContainerMasker(redactDigits)
	var out bytes.Buffer
	data := []byte("not a zip archive")
	if err := cm.Rewrite("x.docx", bytes.NewReader(data), int64(len(data)), &out); err == nil {
		t.Fatal("expected error for non-zip input")
	}
}
