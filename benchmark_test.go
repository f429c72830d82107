package urlblocks

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/fatih/color"
	urlx "github.com/goware/urlx"
	tld "github.com/jpillora/go-tld"
)

func BenchmarkComparison(b *testing.B) {
	var benchmarkURLs = []string{
		"https://news.google.com",
		"https://iupac.org/iupac-announces-the-2021-top-ten-emerging-technologies-in-chemistry/",
		"https://www.google.com/maps/dir/Parliament+Place,+Parliament+House+Of+Singapore,+" +
			"Singapore/Parliament+St,+London,+UK/@25.2440033,33.6721455,4z/data=!3m1!4b1!4m14!4m13!1m5!1m1!1s0x31d" +
			"a19a0abd4d71d:0xeda26636dc4ea1dc!2m2!1d103.8504863!2d1.2891543!1m5!1m1!1s0x487604c5aaa7da5b:0xf13a2" +
			"197d7e7dd26!2m2!1d-0.1260826!2d51.5017061!3e4",
	}

	benchmarks := []struct {
		name string
	}{
		{"URLBlocks"},     // this module
		{"NetURL"},        // net/url
		{"GowareUrlx"},    // github.com/goware/urlx
		{"JPilloraGoTld"}, // github.com/jpillora/go-tld
	}

	for _, benchmarkURL := range benchmarkURLs {
		for _, bm := range benchmarks {
			if bm.name == "URLBlocks" {
				b.Run(fmt.Sprint(bm.name), func(b *testing.B) {
					for i := 0; i < b.N; i++ {
						Parse(benchmarkURL)
					}
				})
			} else if bm.name == "NetURL" {
				// Re-encodes components on String, so parsed URLs do not
				// round-trip byte for byte
				b.Run(fmt.Sprint(bm.name), func(b *testing.B) {
					for i := 0; i < b.N; i++ {
						url.Parse(benchmarkURL)
					}
				})
			} else if bm.name == "GowareUrlx" {
				// Normalizes while parsing and accepts scheme-less input
				b.Run(fmt.Sprint(bm.name), func(b *testing.B) {
					for i := 0; i < b.N; i++ {
						urlx.Parse(benchmarkURL)
					}
				})
			} else if bm.name == "JPilloraGoTld" {
				// Provides domain-level subcomponents
				// Cannot handle urls without Scheme subcomponent
				b.Run(fmt.Sprint(bm.name), func(b *testing.B) {
					for i := 0; i < b.N; i++ {
						tld.Parse(benchmarkURL)
					}
				})
			}
		}
		color.New().Println()
		color.New(color.FgHiGreen, color.Bold).Print("Benchmarks completed for URL : ")
		color.New(color.FgHiBlue).Println(benchmarkURL)
		color.New(color.FgHiWhite).Println("=======")
	}
}
