package export

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// OPML renders folders as an OPML 2.0 document. Subscriptions without a
// URL are skipped here; they were still visible in the text report.
//
// Attribute values are interpolated without escaping reserved XML
// characters. Feed names or URLs containing literal <, & or " produce
// malformed output. Known limitation carried over from the original
// exporter; do not harden without changing the documented contract.
func OPML(folders []Folder, now time.Time) string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<opml version=\"2.0\">\n")
	b.WriteString("  <head>\n")
	fmt.Fprintf(&b, "    <title>Omnivore RSS Subscriptions Export - %s</title>\n", now.Format("2006-01-02"))
	b.WriteString("  </head>\n")
	b.WriteString("  <body>\n")

	for _, folder := range folders {
		wrap := folder.Name != UncategorizedFolder
		if wrap {
			fmt.Fprintf(&b, "    <outline text=\"%s\" title=\"%s\">\n", folder.Name, folder.Name)
		}
		for _, sub := range folder.Subscriptions {
			if sub.URL == "" {
				continue
			}
			fmt.Fprintf(&b, "      <outline type=\"rss\" text=\"%s\" title=\"%s\" xmlUrl=\"%s\"/>\n",
				sub.Name, sub.Name, sub.URL)
		}
		if wrap {
			b.WriteString("    </outline>\n")
		}
	}

	b.WriteString("  </body>\n")
	b.WriteString("</opml>")
	return b.String()
}

// DefaultFilename returns the dated default output path, relative to the
// working directory.
func DefaultFilename(now time.Time) string {
	return fmt.Sprintf("omnivore_rss_export_%s.opml", now.Format("20060102"))
}

// WriteFile writes the document to path UTF-8 encoded, replacing any
// existing file.
func WriteFile(path, doc string) error {
	return os.WriteFile(path, []byte(doc), 0644)
}
