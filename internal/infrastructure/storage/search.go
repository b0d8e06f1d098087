package storage

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
)

const (
	// fuzzyMinScore dan past ball olgan hujjatlar e'tiborga olinmaydi
	fuzzyMinScore = 8
	fuzzyMaxHits  = 6
)

// searchDoc bitta obyektning qidiruv maydonlari
type searchDoc struct {
	name  string
	cat   string
	desc  string
	specs map[string]string
	price float64
}

// searchQuery foydalanuvchi so'rovining bir marta hisoblangan shakllari
type searchQuery struct {
	lower   string
	compact string
	digits  string
	words   []string
}

// foldedDoc hujjat maydonlarining kichik harfli va ixcham shakllari
type foldedDoc struct {
	name, cat, desc                      string
	nameCompact, catCompact, descCompact string
}

var stopWords = map[string]struct{}{
	"bormi": {}, "bor": {}, "kerak": {}, "qanday": {},
	"tem": {}, "quero": {}, "preciso": {}, "de": {}, "do": {}, "da": {},
	"any": {}, "have": {}, "need": {}, "the": {}, "for": {},
}

func parseQuery(raw string) (searchQuery, bool) {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if lower == "" {
		return searchQuery{}, false
	}
	q := searchQuery{lower: lower, compact: compactString(lower), digits: digitsOf(lower)}
	for _, w := range strings.FieldsFunc(lower, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) }) {
		if len(w) < 2 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		q.words = append(q.words, w)
	}
	return q, true
}

func foldDoc(d searchDoc) foldedDoc {
	return foldedDoc{
		name:        strings.ToLower(d.name),
		cat:         strings.ToLower(d.cat),
		desc:        strings.ToLower(d.desc),
		nameCompact: compactString(d.name),
		catCompact:  compactString(d.cat),
		descCompact: compactString(d.desc),
	}
}

// matchDocs returns the indexes of docs matching query. Direct hits come
// first; when there are none the best fuzzy matches are returned instead.
func matchDocs(query string, docs []searchDoc) []int {
	q, ok := parseQuery(query)
	if !ok {
		return nil
	}

	type candidate struct {
		index int
		score int
		price float64
	}
	var hits []int
	var fuzzy []candidate

	for i, doc := range docs {
		f := foldDoc(doc)
		if q.direct(doc, f) {
			hits = append(hits, i)
			continue
		}
		if s := q.score(f); s >= fuzzyMinScore {
			fuzzy = append(fuzzy, candidate{index: i, score: s, price: doc.price})
		}
	}
	if len(hits) > 0 {
		return hits
	}

	sort.SliceStable(fuzzy, func(i, j int) bool {
		if fuzzy[i].score != fuzzy[j].score {
			return fuzzy[i].score > fuzzy[j].score
		}
		return fuzzy[i].price < fuzzy[j].price
	})
	for _, c := range fuzzy {
		if len(hits) == fuzzyMaxHits {
			break
		}
		hits = append(hits, c.index)
	}
	return hits
}

// direct substring, barcha so'zlar, model raqami yoki specs bo'yicha moslik
func (q searchQuery) direct(doc searchDoc, f foldedDoc) bool {
	if strings.Contains(f.name, q.lower) || strings.Contains(f.cat, q.lower) || strings.Contains(f.desc, q.lower) {
		return true
	}
	if q.compact != "" && strings.Contains(f.nameCompact, q.compact) {
		return true
	}
	if len(q.words) > 0 && everyWordIn(q.words, f.name, f.cat, f.desc, f.nameCompact, f.catCompact, f.descCompact) {
		return true
	}
	if len(q.digits) >= 3 && strings.Contains(digitsOf(f.name), q.digits) {
		return true
	}
	for _, v := range doc.specs {
		if strings.Contains(strings.ToLower(v), q.lower) {
			return true
		}
	}
	return false
}

// score noaniq moslik bali: nomdagi so'z 4, kategoriya/tavsifdagi 2,
// yaqin model raqami 2, umumiy ketma-ketlik uzunligi (3 dan boshlab)
func (q searchQuery) score(f foldedDoc) int {
	total := 0
	nameNum := numberOf(f.nameCompact)
	for _, w := range q.words {
		switch {
		case strings.Contains(f.nameCompact, w):
			total += 4
		case strings.Contains(f.catCompact, w) || strings.Contains(f.descCompact, w):
			total += 2
		default:
			// 5090 -> 4090 kabi yaqin modellar
			if n := numberOf(w); n > 0 && nameNum > 0 && absInt(n-nameNum) <= 200 {
				total += 2
			}
		}
	}
	if run := commonRun(q.compact, f.nameCompact); run >= 3 {
		total += run
	}
	return total
}

func everyWordIn(words []string, fields ...string) bool {
	for _, w := range words {
		found := false
		for _, field := range fields {
			if strings.Contains(field, w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// compactString faqat harf va raqamlar, kichik harfda
func compactString(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, s)
}

func digitsOf(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

func numberOf(s string) int {
	d := digitsOf(s)
	if d == "" || len(d) > 9 {
		return 0
	}
	n, _ := strconv.Atoi(d)
	return n
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// commonRun a va b ning eng uzun umumiy qism-satri uzunligi
func commonRun(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	prev := make([]int, len(b)+1)
	best := 0
	for i := 0; i < len(a); i++ {
		next := make([]int, len(b)+1)
		for j := 0; j < len(b); j++ {
			if a[i] == b[j] {
				next[j+1] = prev[j] + 1
				best = max(best, next[j+1])
			}
		}
		prev = next
	}
	return best
}

// gpuHints videokarta so'rovini bildiradigan kalit so'zlar
var gpuHints = []string{"rtx", "gtx", "radeon", "rx ", "gpu", "placa de video", "videokarta"}

// isGPUQuery reports whether the query names a graphics card.
func isGPUQuery(q string) bool {
	lower := strings.ToLower(q)
	for _, h := range gpuHints {
		if strings.Contains(lower, h) {
			return true
		}
	}
	return false
}
