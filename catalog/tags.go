package catalog

// TagAggregate is the grouped usage summary for one tag id within a
// single entity's tag list.
type TagAggregate struct {
	ID    int
	Name  string
	Count int
}

// AggregateTags collapses a raw tag association list into one aggregate
// per distinct tag id. Count is the number of occurrences; Name is taken
// from the first occurrence of the id (later differing names are
// ignored). Output order is first-seen order of ids, so a fixed input
// ordering always yields the same output. Empty or nil input returns nil.
func AggregateTags(assocs []TagAssoc) []TagAggregate {
	if len(assocs) == 0 {
		return nil
	}
	index := make(map[int]int, len(assocs))
	out := make([]TagAggregate, 0, len(assocs))
	for _, a := range assocs {
		if i, ok := index[a.ID]; ok {
			out[i].Count++
			continue
		}
		index[a.ID] = len(out)
		out = append(out, TagAggregate{ID: a.ID, Name: a.Name, Count: 1})
	}
	return out
}
