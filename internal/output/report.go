package output

import (
	"strconv"

	"github.com/omnivore-tools/omniexport/internal/export"
	"github.com/omnivore-tools/omniexport/internal/omnivore"
)

// dateFormat is how the report renders timestamps.
const dateFormat = "2006-01-02"

// Reporter receives progress and per-subscription detail during an
// export run. It is purely observational: implementations must not
// modify the subscriptions they are handed.
type Reporter interface {
	Fetching()
	FilteredOut(count int)
	Subscriptions(subs []omnivore.Subscription)
	FolderSummary(folders []export.Folder)
	Exported(path string)
}

// ConsoleReporter renders the report through a Printer.
type ConsoleReporter struct {
	printer *Printer
}

// NewConsoleReporter creates a reporter over the given printer.
func NewConsoleReporter(p *Printer) *ConsoleReporter {
	return &ConsoleReporter{printer: p}
}

// Fetching announces the start of the network call.
func (r *ConsoleReporter) Fetching() {
	r.printer.Info("Fetching subscriptions...")
}

// FilteredOut reports how many subscriptions the filter removed. Zero
// removals print nothing.
func (r *ConsoleReporter) FilteredOut(count int) {
	if count == 0 {
		return
	}
	r.printer.Warning("Filtered out %d never-fetched subscriptions", count)
}

// Subscriptions prints the fetched count followed by every populated
// field of each subscription, in a fixed order.
func (r *ConsoleReporter) Subscriptions(subs []omnivore.Subscription) {
	r.printer.Info("Found %d RSS subscriptions:", len(subs))
	for _, sub := range subs {
		r.printer.Print("")
		r.subscriptionDetail(sub)
	}
}

func (r *ConsoleReporter) subscriptionDetail(sub omnivore.Subscription) {
	p := r.printer
	p.Print("Name: %s", sub.Name)
	if sub.URL != "" {
		p.Print("URL: %s", sub.URL)
	}
	if sub.Folder != "" {
		p.Print("Folder: %s", sub.Folder)
	}
	if sub.Description != "" {
		p.Print("Description: %s", sub.Description)
	}
	if sub.NewsletterEmail != "" {
		p.Print("Newsletter email: %s", sub.NewsletterEmail)
	}
	if sub.CreatedAt != nil {
		p.Print("Created at: %s", sub.CreatedAt.Format(dateFormat))
	}
	if sub.LastFetchedAt != nil {
		p.Print("Last fetched at: %s", sub.LastFetchedAt.Format(dateFormat))
	}
	if sub.RefreshedAt != nil {
		p.Print("Refreshed at: %s", sub.RefreshedAt.Format(dateFormat))
	}
	if sub.Count != nil {
		p.Print("Count: %d", *sub.Count)
	}
	if sub.Icon != "" {
		p.Print("Icon: %s", sub.Icon)
	}
	if sub.IsPrivate != nil {
		p.Print("Is private: %t", *sub.IsPrivate)
	}
	if sub.AutoAddToLibrary != nil {
		p.Print("Auto add to library: %t", *sub.AutoAddToLibrary)
	}
	if sub.FetchContent != nil {
		p.Print("Fetch content: %t", *sub.FetchContent)
	}
	if sub.FailedAt != nil {
		p.Print("Failed at: %s", sub.FailedAt.Format(dateFormat))
	}
}

// FolderSummary prints a compact per-folder table: total feeds and how
// many carry a URL and will appear in the OPML output.
func (r *ConsoleReporter) FolderSummary(folders []export.Folder) {
	if r.printer.IsQuiet() || len(folders) == 0 {
		return
	}
	r.printer.Header("Folders")
	table := NewTableWithWriter(r.printer.Out(), []string{"FOLDER", "FEEDS", "WITH URL"})
	for _, folder := range folders {
		withURL := 0
		for _, sub := range folder.Subscriptions {
			if sub.URL != "" {
				withURL++
			}
		}
		table.AddRow([]string{
			folder.Name,
			strconv.Itoa(len(folder.Subscriptions)),
			strconv.Itoa(withURL),
		})
	}
	table.Render()
}

// Exported reports the final output file path.
func (r *ConsoleReporter) Exported(path string) {
	r.printer.Success("Exported subscriptions to %s", path)
}
