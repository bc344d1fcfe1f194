package main

import (
	"flag"
	"log"

	"github.com/danmuck/scramblectl/internal/config"
)

func main() {
	kind := flag.String("kind", "server", "config kind: server|cli")
	output := flag.String("output", "", "output path for config template")
	validate := flag.Bool("validate", false, "validate an existing server config file")
	input := flag.String("input", "cmd/scramblerd/config.toml", "server config path for validation")
	force := flag.Bool("force", false, "overwrite existing config file")
	flag.Parse()

	if *validate {
		if _, err := config.LoadServerConfig(*input); err != nil {
			log.Fatal(err)
		}
		log.Printf("Validated server config at %s", *input)
		return
	}

	target := *output
	if target == "" {
		switch *kind {
		case "server":
			target = "cmd/scramblerd/config.toml"
		case "cli":
			target = "cmd/scramblectl/config.toml"
		default:
			log.Fatalf("unknown kind: %s", *kind)
		}
	}

	if err := config.WriteTemplate(target, *kind, *force); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %s config template to %s", *kind, target)
}
