package export

import "github.com/omnivore-tools/omniexport/internal/omnivore"

// UncategorizedFolder is the reserved bucket for subscriptions without a
// folder. It is rendered without a wrapping outline element.
const UncategorizedFolder = "Uncategorized"

// Folder is one named bucket of subscriptions.
type Folder struct {
	Name          string
	Subscriptions []omnivore.Subscription
}

// GroupByFolder partitions subscriptions into folders, preserving the
// order in which folders first appear and the input order within each
// folder.
func GroupByFolder(subs []omnivore.Subscription) []Folder {
	index := make(map[string]int)
	var folders []Folder
	for _, sub := range subs {
		name := sub.Folder
		if name == "" {
			name = UncategorizedFolder
		}
		i, ok := index[name]
		if !ok {
			i = len(folders)
			index[name] = i
			folders = append(folders, Folder{Name: name})
		}
		folders[i].Subscriptions = append(folders[i].Subscriptions, sub)
	}
	return folders
}
