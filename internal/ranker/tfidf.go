package ranker

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// tokenize lowercases the document and splits it into alphanumeric runs of
// at least two characters, so "node.js, CI/CD" becomes [node js ci cd].
func tokenize(doc string) []string {
	doc = strings.ToLower(doc)
	tokens := strings.FieldsFunc(doc, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := tokens[:0]
	for _, t := range tokens {
		if utf8.RuneCountInString(t) < 2 {
			continue
		}
		out = append(out, t)
	}
	return out
}

// fitTransform builds a term-frequency/inverse-document-frequency matrix
// over the given documents. The vocabulary is the union of all tokens; idf
// uses the smoothed form ln((1+n)/(1+df))+1 and every row is L2-normalized,
// so the dot product of two rows is their cosine similarity.
func fitTransform(docs []string) [][]float64 {
	vocab := make(map[string]int)
	counts := make([]map[string]int, len(docs))
	for i, doc := range docs {
		c := make(map[string]int)
		for _, t := range tokenize(doc) {
			c[t]++
			if _, ok := vocab[t]; !ok {
				vocab[t] = len(vocab)
			}
		}
		counts[i] = c
	}

	df := make([]int, len(vocab))
	for _, c := range counts {
		for t := range c {
			df[vocab[t]]++
		}
	}

	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for j, d := range df {
		idf[j] = math.Log((1+n)/(1+float64(d))) + 1
	}

	rows := make([][]float64, len(docs))
	for i, c := range counts {
		row := make([]float64, len(vocab))
		for t, tf := range c {
			j := vocab[t]
			row[j] = float64(tf) * idf[j]
		}
		normalize(row)
		rows[i] = row
	}
	return rows
}

func normalize(v []float64) {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range v {
		v[i] /= norm
	}
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
