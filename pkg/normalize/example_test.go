package normalize_test

import (
	"fmt"

	"github.com/walteh/sepsync/pkg/normalize"
)

func ExampleNormalizer_Normalize() {
	// Create a normalizer
	n := normalize.New()

	// A note written on Windows, converted for a macOS vault
	content := `Here is the cover: ![cover](images\cover.png) and a remote one: ![logo](https://example.com/logo.png)`

	result := n.Normalize(content, normalize.ForwardSlash)

	// Print results
	fmt.Printf("Modified: %s\n", result.ModifiedContent)
	fmt.Printf("Rewrites: %d\n", result.RewriteCount)
	fmt.Printf("Was Modified: %v\n", result.WasModified)

	// Output:
	// Modified: Here is the cover: ![cover](images/cover.png) and a remote one: ![logo](https://example.com/logo.png)
	// Rewrites: 1
	// Was Modified: true
}

func ExampleRewritePath() {
	fmt.Println(normalize.RewritePath(`attachments\diagram.png`, normalize.ForwardSlash))
	fmt.Println(normalize.RewritePath(`/absolute/path.png`, normalize.Backslash))

	// Output:
	// attachments/diagram.png
	// /absolute/path.png
}
