package attribution

import "gonum.org/v1/gonum/floats"

type Winner string

const (
	WinnerA   Winner = "A"
	WinnerB   Winner = "B"
	WinnerTie Winner = "Tie"
)

// CellStyle is a render-agnostic styling intent for one comparison cell.
type CellStyle string

const (
	StyleNeutral CellStyle = "Neutral"
	StyleWinnerA CellStyle = "WinnerA"
	StyleWinnerB CellStyle = "WinnerB"
)

type ComparisonEntry struct {
	Category Category
	PointsA  int
	PointsB  int
	Winner   Winner
}

type Comparison struct {
	Entries []ComparisonEntry
}

// Compare merges two breakdowns into a per-category view over the union of
// their categories, in canonical order with the residual last. Winners use
// strict comparison, so equal values are always a tie.
func Compare(a, b Breakdown) Comparison {
	categories := make([]Category, 0, len(CanonicalOrder)+1)
	seen := make(map[Category]struct{}, len(CanonicalOrder)+1)
	appendCategory := func(cat Category) {
		if _, ok := seen[cat]; ok {
			return
		}
		seen[cat] = struct{}{}
		categories = append(categories, cat)
	}

	for _, cat := range CanonicalOrder {
		appendCategory(cat)
	}
	for _, e := range a.Entries {
		if e.Category != CategoryUnattributed {
			appendCategory(e.Category)
		}
	}
	for _, e := range b.Entries {
		if e.Category != CategoryUnattributed {
			appendCategory(e.Category)
		}
	}
	appendCategory(CategoryUnattributed)

	entries := make([]ComparisonEntry, 0, len(categories))
	for _, cat := range categories {
		pointsA := a.Points(cat)
		pointsB := b.Points(cat)
		winner := WinnerTie
		if pointsA > pointsB {
			winner = WinnerA
		} else if pointsB > pointsA {
			winner = WinnerB
		}
		entries = append(entries, ComparisonEntry{
			Category: cat,
			PointsA:  pointsA,
			PointsB:  pointsB,
			Winner:   winner,
		})
	}

	return Comparison{Entries: entries}
}

// StyleFor maps a comparison entry to its cell styling intent.
func StyleFor(e ComparisonEntry) CellStyle {
	switch e.Winner {
	case WinnerA:
		return StyleWinnerA
	case WinnerB:
		return StyleWinnerB
	default:
		return StyleNeutral
	}
}

// RadarVector projects a breakdown onto a caller-chosen ordered category
// list, substituting 0 for absent categories.
func RadarVector(b Breakdown, categories []Category) []float64 {
	out := make([]float64, len(categories))
	for i, cat := range categories {
		out[i] = float64(b.Points(cat))
	}
	return out
}

// NormalizeRadar scales the vectors into [0, 1] by their shared absolute
// maximum so two players render on the same axis scale. Vectors with no
// signal are returned unchanged.
func NormalizeRadar(vectors ...[]float64) {
	maxAbs := 0.0
	for _, v := range vectors {
		if len(v) == 0 {
			continue
		}
		if m := floats.Max(v); m > maxAbs {
			maxAbs = m
		}
		if m := -floats.Min(v); m > maxAbs {
			maxAbs = m
		}
	}
	if maxAbs == 0 {
		return
	}
	for _, v := range vectors {
		floats.Scale(1/maxAbs, v)
	}
}
