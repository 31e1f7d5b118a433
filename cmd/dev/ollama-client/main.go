// Dev probe for the ollama integration: sends one roadmap prompt to a local
// model and prints the raw response.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/garnizeh/scout/pkg/ollama"
)

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:11434", "Ollama base URL")
		model   = flag.String("model", "llama3", "Model name")
		prompt  = flag.String("prompt", "Generate a 3-module learning roadmap for a backend engineer as strict JSON.", "Prompt to send")
	)
	flag.Parse()

	client, err := ollama.NewDefaultClient(ollama.Config{BaseURL: *baseURL, Timeout: 2 * time.Minute})
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	ctx := context.Background()
	if err := client.Health(ctx); err != nil {
		log.Fatal(err)
	}

	out, err := client.Generate(ctx, *model, *prompt)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out)
}
