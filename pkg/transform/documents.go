package transform

import (
	"xds/pkg/ebxml"
	"xds/pkg/metadata"
)

// Content is one document content element of a Provide and Register message,
// linked to its document entry by id.
type Content struct {
	ID    string
	Value []byte
}

// SplitDocuments separates docs into their document entries and content
// elements, both in document order. Content without an entry gets a fresh id.
// An entry whose id is shared with another entry always gets a content
// element, empty when it has no content, so JoinDocuments can pair entries
// of one id by position.
func SplitDocuments(docs []metadata.Document) ([]metadata.DocumentEntry, []Content) {
	entriesByID := make(map[string]int, len(docs))
	for _, d := range docs {
		if d.DocumentEntry != nil {
			entriesByID[d.DocumentEntry.EntryUUID]++
		}
	}

	var entries []metadata.DocumentEntry
	var contents []Content
	for _, d := range docs {
		if d.DocumentEntry == nil {
			contents = append(contents, Content{ID: ebxml.NewID(), Value: d.Content})

			continue
		}
		entries = append(entries, *d.DocumentEntry)
		id := d.DocumentEntry.EntryUUID
		if d.Content != nil || entriesByID[id] > 1 {
			contents = append(contents, Content{ID: id, Value: d.Content})
		}
	}

	return entries, contents
}

// JoinDocuments reverses SplitDocuments. The n-th entry with a given id gets
// the n-th content element with that id. Content that no entry claims becomes
// a document without entry, placed before the first entry whose content
// follows it in contents.
func JoinDocuments(entries []metadata.DocumentEntry, contents []Content) []metadata.Document {
	queues := make(map[string][]int, len(contents))
	for i, c := range contents {
		queues[c.ID] = append(queues[c.ID], i)
	}

	claimed := make([]bool, len(contents))
	positions := make([]int, len(entries))
	for i := range entries {
		positions[i] = -1
		id := entries[i].EntryUUID
		if q := queues[id]; len(q) > 0 {
			positions[i], queues[id] = q[0], q[1:]
			claimed[positions[i]] = true
		}
	}

	docs := make([]metadata.Document, 0, len(entries)+len(contents))
	next := 0
	flush := func(until int) {
		for ; next < until; next++ {
			if !claimed[next] {
				docs = append(docs, metadata.Document{Content: contents[next].Value})
			}
		}
	}
	for i := range entries {
		doc := metadata.Document{DocumentEntry: &entries[i]}
		if pos := positions[i]; pos >= 0 {
			flush(pos)
			doc.Content = contents[pos].Value
		}
		docs = append(docs, doc)
	}
	flush(len(contents))

	return docs
}
