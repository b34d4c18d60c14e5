package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/contentchat/contentchat"
	"github.com/contentchat/contentchat/content"
	"github.com/contentchat/contentchat/llm"
	"github.com/contentchat/contentchat/shell"
)

func main() {
	envPath := flag.String("env", ".env", "path to the env file holding provider and model selection")
	provider := flag.String("provider", "", "LLM provider to use (ollama or openrouter), overriding the stored selection")
	ollamaHost := flag.String("ollama-host", "", "Ollama server URL (defaults to OLLAMA_HOST or localhost)")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(*envPath, *provider, *ollamaHost); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(envPath, provider, ollamaHost string) error {
	ctx := context.Background()
	store := contentchat.NewEnvFileStore(envPath)
	reader := bufio.NewReader(os.Stdin)

	factory := &llm.Factory{
		Config:     store,
		OllamaHost: ollamaHost,
		Prompt: func(question string) (string, error) {
			fmt.Print(question)
			line, err := reader.ReadString('\n')
			if err != nil {
				return "", err
			}
			return strings.TrimSpace(line), nil
		},
	}

	if provider != "" {
		if err := store.Write(contentchat.KeySelectedProvider, strings.ToLower(provider)); err != nil {
			return err
		}
	}
	backend, name, err := factory.New(false)
	if err != nil {
		return err
	}

	session := contentchat.NewSession(backend, content.NewFetcher(), store)

	if models, err := session.ListModels(ctx); err != nil {
		fmt.Printf("Warning: could not list %s models: %v\n", name, err)
	} else {
		fmt.Printf("Provider: %s. Available models: %d. Default: %s\n", name, len(models), session.ActiveModel())
	}

	return shell.New(session, factory, reader, os.Stdout).Run(ctx)
}
