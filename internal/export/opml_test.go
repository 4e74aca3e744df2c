package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/omnivore-tools/omniexport/internal/omnivore"
)

var exportTime = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func TestOPML_FolderWrapper(t *testing.T) {
	folders := GroupByFolder([]omnivore.Subscription{
		{Name: "Tech News", URL: "https://example.com/feed", Folder: "News"},
	})

	doc := OPML(folders, exportTime)

	if !strings.Contains(doc, `<outline text="News" title="News">`) {
		t.Errorf("missing folder wrapper:\n%s", doc)
	}
	want := `<outline type="rss" text="Tech News" title="Tech News" xmlUrl="https://example.com/feed"/>`
	if !strings.Contains(doc, want) {
		t.Errorf("missing feed outline %q:\n%s", want, doc)
	}
	if !strings.Contains(doc, "    </outline>\n") {
		t.Errorf("folder wrapper not closed:\n%s", doc)
	}
}

func TestOPML_UncategorizedHasNoWrapper(t *testing.T) {
	folders := GroupByFolder([]omnivore.Subscription{
		{Name: "Loose Feed", URL: "https://example.com/loose"},
	})

	doc := OPML(folders, exportTime)

	if strings.Contains(doc, "Uncategorized") {
		t.Errorf("Uncategorized bucket should not be rendered:\n%s", doc)
	}
	if !strings.Contains(doc, `xmlUrl="https://example.com/loose"`) {
		t.Errorf("loose feed missing:\n%s", doc)
	}
}

func TestOPML_SkipsFeedsWithoutURL(t *testing.T) {
	folders := GroupByFolder([]omnivore.Subscription{
		{Name: "No URL", Folder: "News"},
		{Name: "Has URL", URL: "https://example.com/feed", Folder: "News"},
	})

	doc := OPML(folders, exportTime)

	if strings.Contains(doc, "No URL") {
		t.Errorf("feed without URL should be skipped:\n%s", doc)
	}
	if !strings.Contains(doc, "Has URL") {
		t.Errorf("feed with URL should be present:\n%s", doc)
	}
}

func TestOPML_EmptyBody(t *testing.T) {
	doc := OPML(nil, exportTime)

	if !strings.Contains(doc, "  <body>\n  </body>\n") {
		t.Errorf("expected empty body:\n%s", doc)
	}
}

func TestOPML_HeadAndTitle(t *testing.T) {
	doc := OPML(nil, exportTime)

	if !strings.HasPrefix(doc, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Errorf("missing XML declaration:\n%s", doc)
	}
	if !strings.Contains(doc, `<opml version="2.0">`) {
		t.Errorf("missing opml element:\n%s", doc)
	}
	if !strings.Contains(doc, "<title>Omnivore RSS Subscriptions Export - 2024-01-15</title>") {
		t.Errorf("missing dated title:\n%s", doc)
	}
	if !strings.HasSuffix(doc, "</opml>") {
		t.Errorf("document should end with </opml>:\n%s", doc)
	}
}

func TestDefaultFilename(t *testing.T) {
	got := DefaultFilename(exportTime)
	want := "omnivore_rss_export_20240115.opml"
	if got != want {
		t.Errorf("DefaultFilename = %q, want %q", got, want)
	}
}

func TestWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.opml")

	if err := WriteFile(path, "first"); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if err := WriteFile(path, "second"); err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second" {
		t.Errorf("file content = %q, want %q", data, "second")
	}
}
