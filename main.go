package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"archmap/config"
	"archmap/generator"
	"archmap/render"
	"archmap/scanner"
	"archmap/server"
)

var verbose bool

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	_ = godotenv.Load()

	configPath := flag.String("config", "archmap.json", "path to optional JSON config")
	output := flag.String("o", "", "output file path (default diagram.mmd)")
	provider := flag.String("provider", "", "llm provider: vertex, openai, anthropic (overrides config/env)")
	model := flag.String("model", "", "model name (overrides config)")
	htmlOut := flag.String("html", "", "also write a standalone HTML preview to this path")
	serve := flag.Bool("serve", false, "start web server")
	addr := flag.String("addr", "", "http listen address when --serve (overrides config.server_addr)")
	flag.BoolVar(&verbose, "v", false, "enable info logs")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *provider != "" {
		cfg.Provider = *provider
	}
	if *model != "" {
		cfg.Model = *model
	}
	if *output != "" {
		cfg.Output = *output
	}
	cfg.Finalize()

	llm, err := buildLLM(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	agent, err := generator.NewAgent(llm)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Web server mode
	if *serve {
		srv, err := server.New(agent)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		listen := cfg.ServerAddr
		if *addr != "" {
			listen = *addr
		}
		if listen == "" {
			listen = ":8080"
		}
		log.Printf("Starting web server on %s", listen)
		if err := http.ListenAndServe(listen, srv.Routes()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: archmap [flags] <folder>")
		os.Exit(1)
	}
	folder := flag.Arg(0)

	if err := run(context.Background(), folder, cfg, agent, *htmlOut); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run is the one-shot pipeline: scan, load README, generate, write.
func run(ctx context.Context, folder string, cfg config.Config, agent *generator.Agent, htmlOut string) error {
	tree, err := scanner.Tree(folder)
	if err != nil {
		return err
	}
	readme := scanner.Readme(folder)
	if verbose {
		log.Printf("[cli] scanned folder=%s entries=%d readme_bytes=%d",
			folder, strings.Count(tree, "\n")+1, len(readme))
	}

	diagram, err := agent.Generate(ctx, generator.Input{Tree: tree, Readme: readme})
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfg.Output, []byte(diagram.Markup), 0o644); err != nil {
		return err
	}
	log.Printf("[cli] diagram written output=%s bytes=%d", cfg.Output, len(diagram.Markup))

	if htmlOut != "" {
		page, err := render.HTML(diagram, readme)
		if err != nil {
			return err
		}
		if err := os.WriteFile(htmlOut, page, 0o644); err != nil {
			return err
		}
		log.Printf("[cli] html preview written output=%s", htmlOut)
	}
	return nil
}

// buildLLM selects the provider implementation once at startup.
func buildLLM(cfg config.Config) (generator.LLMClient, error) {
	settings := &generator.LLMSettings{
		Provider: cfg.Provider,
		Model:    cfg.Model,
		APIKey:   cfg.APIKey,
		BaseURL:  cfg.BaseURL,
	}
	switch cfg.Provider {
	case "vertex":
		return generator.NewVertexLLMFromConfig(settings)
	case "openai":
		return generator.NewOpenAILLMFromConfig(settings)
	case "anthropic":
		return generator.NewAnthropicLLMFromConfig(settings)
	case "mock":
		// Local debugging without credentials or network.
		return generator.MockLLM{}, nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.Provider)
	}
}
