package main

import (
	"bytes"
	"fmt"
	"html/template"
	"math/rand/v2"

	"github.com/yuin/goldmark"
)

// markdown renders the about paragraphs. Raw HTML in the source is dropped.
var markdown = goldmark.New()

func renderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"markdown":    renderMarkdown,
		"percent":     percent,
		"contactHref": contactHref,
	}
}

func percent(n int) string { return fmt.Sprintf("%d%%", n) }

// contactHref marks a contact link as trusted. The links come from our own
// content and include tel: URLs, which html/template would otherwise rewrite.
func contactHref(href string) template.URL { return template.URL(href) }

// particle is one decorative dot floating over the hero section.
type particle struct {
	Left     float64 // percent
	Top      float64 // percent
	Delay    float64 // seconds
	Duration float64 // seconds
}

const particleCount = 20

func newParticles(n int) []particle {
	out := make([]particle, n)
	for i := range out {
		out[i] = particle{
			Left:     rand.Float64() * 100,
			Top:      rand.Float64() * 100,
			Delay:    rand.Float64() * 5,
			Duration: 3 + rand.Float64()*4,
		}
	}
	return out
}
