package core

import (
	"sort"
	"strings"
)

// PickerItem is one selectable row. Search falls back to Label when empty.
type PickerItem struct {
	ID     string
	Label  string
	Meta   string
	Search string
}

// Picker holds a fuzzy-filtered list with a cursor. It knows nothing about
// keys; screens translate registry actions into its methods.
type Picker struct {
	title    string
	items    []PickerItem
	filtered []PickerItem
	query    string
	cursor   int
}

func NewPicker(title string, items []PickerItem) *Picker {
	p := &Picker{title: strings.TrimSpace(title)}
	p.SetItems(items)
	return p
}

func (p *Picker) Title() string { return p.title }

func (p *Picker) Query() string { return p.query }

func (p *Picker) Cursor() int { return p.cursor }

func (p *Picker) Items() []PickerItem {
	return append([]PickerItem(nil), p.filtered...)
}

func (p *Picker) SetItems(items []PickerItem) {
	p.items = append([]PickerItem(nil), items...)
	p.rebuild()
}

func (p *Picker) SetQuery(q string) {
	if q == p.query {
		return
	}
	p.query = q
	p.cursor = 0
	p.rebuild()
}

// Move shifts the cursor by delta, wrapping at both ends.
func (p *Picker) Move(delta int) {
	n := len(p.filtered)
	if n == 0 {
		p.cursor = 0
		return
	}
	p.cursor = ((p.cursor+delta)%n + n) % n
}

func (p *Picker) Current() (PickerItem, bool) {
	if len(p.filtered) == 0 {
		return PickerItem{}, false
	}
	return p.filtered[min(max(p.cursor, 0), len(p.filtered)-1)], true
}

func (p *Picker) rebuild() {
	q := strings.TrimSpace(p.query)
	type scored struct {
		item  PickerItem
		score int
		index int
	}
	rows := make([]scored, 0, len(p.items))
	for idx, item := range p.items {
		search := strings.TrimSpace(item.Search)
		if search == "" {
			search = item.Label
		}
		if ok, score := fuzzyMatchScore(search, q); ok {
			rows = append(rows, scored{item: item, score: score, index: idx})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].score != rows[j].score {
			return rows[i].score > rows[j].score
		}
		return rows[i].index < rows[j].index
	})
	p.filtered = p.filtered[:0]
	for _, r := range rows {
		p.filtered = append(p.filtered, r.item)
	}
	if p.cursor >= len(p.filtered) {
		p.cursor = max(0, len(p.filtered)-1)
	}
}

// fuzzyMatchScore matches query as a subsequence of label. Prefix matches,
// adjacent runs and exact matches score higher.
func fuzzyMatchScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}
	labelLower := strings.ToLower(label)
	queryLower := strings.ToLower(query)

	matchIdx := make([]int, 0, len(queryLower))
	from := 0
	for i := 0; i < len(queryLower); i++ {
		j := strings.IndexByte(labelLower[from:], queryLower[i])
		if j < 0 {
			return false, 0
		}
		matchIdx = append(matchIdx, from+j)
		from += j + 1
	}

	score := len(queryLower)
	if matchIdx[0] == 0 {
		score += 10
	}
	for i := 1; i < len(matchIdx); i++ {
		if matchIdx[i] == matchIdx[i-1]+1 {
			score += 3
		}
	}
	if strings.EqualFold(strings.TrimSpace(label), strings.TrimSpace(query)) {
		score += 20
	}
	return true, score
}
