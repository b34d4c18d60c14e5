// Package shell implements the interactive REPL. It renders one-line
// results and errors and forwards everything else to the session; no
// conversation logic lives here.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/contentchat/contentchat"
	"github.com/contentchat/contentchat/llm"
)

var (
	promptStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	noticeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

const helpText = `Commands:
  /load <url>      load a YouTube video or webpage
  /model [name|i]  list models or select one by name or index
  /provider        switch LLM provider (keeps the conversation)
  /summary         summarize the loaded content
  /subs            print the loaded content
  /ctx <size>      set the context budget
  /hist            print the conversation history
  /clear           drop the conversation, keep the content
  /reset           forget everything
  /exit            leave (also /quit, /bye)
Anything else is sent to the model as a question.`

// Shell drives a session from an interactive line reader.
type Shell struct {
	session *contentchat.Session
	factory *llm.Factory
	in      *bufio.Reader
	out     io.Writer
}

func New(session *contentchat.Session, factory *llm.Factory, in *bufio.Reader, out io.Writer) *Shell {
	return &Shell{
		session: session,
		factory: factory,
		in:      in,
		out:     out,
	}
}

// Run reads lines until an exit command or EOF. Every failure is
// rendered as a one-line message and the loop continues.
func (s *Shell) Run(ctx context.Context) error {
	s.printf("%s\n", "Welcome. Type /help for commands, or just chat.")
	for {
		s.printf("%s ", promptStyle.Render(">"))
		line, err := s.in.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if s.handleLine(ctx, strings.TrimSpace(line)) {
			return nil
		}
	}
}

// handleLine dispatches one input line and reports whether to quit.
func (s *Shell) handleLine(ctx context.Context, line string) bool {
	if line == "" {
		return false
	}
	if !strings.HasPrefix(line, "/") {
		s.ask(ctx, line)
		return false
	}

	cmd, arg := splitCommand(line)
	switch cmd {
	case "load":
		s.load(ctx, arg)
	case "model":
		s.model(ctx, arg)
	case "provider":
		s.provider(ctx)
	case "summary":
		s.summary(ctx)
	case "subs":
		if content := s.session.Content(); content != "" {
			s.printf("%s\n", content)
		} else {
			s.printf("(no content)\n")
		}
	case "ctx":
		s.setContext(arg)
	case "hist":
		s.printHistory()
	case "clear":
		if err := s.session.ClearHistory(); err != nil {
			s.fail(err)
		} else {
			s.printf("Cleared history\n")
		}
	case "reset":
		s.session.Reset()
		s.printf("Reset session\n")
	case "help":
		s.printf("%s\n", helpText)
	case "exit", "quit", "bye":
		s.printf("Goodbye!\n")
		return true
	default:
		s.printf("%s\n", errorStyle.Render("Unknown command: /"+cmd+" (try /help)"))
	}
	return false
}

func splitCommand(line string) (string, string) {
	rest := strings.TrimPrefix(line, "/")
	cmd, arg, _ := strings.Cut(rest, " ")
	return strings.ToLower(cmd), strings.TrimSpace(arg)
}

func (s *Shell) ask(ctx context.Context, line string) {
	if s.session.Content() == "" {
		s.printf("%s\n", noticeStyle.Render("Note: no content loaded. Use /load <url> to load a resource."))
	}
	s.printf("Assistant: thinking...\n")
	reply, err := s.session.Ask(ctx, line)
	if err != nil {
		s.fail(err)
		return
	}
	s.printf("%s %s\n", assistantStyle.Render("Assistant:"), reply)
}

func (s *Shell) load(ctx context.Context, arg string) {
	if arg == "" {
		answer, err := s.Prompt("Enter URL: ")
		if err != nil {
			s.fail(err)
			return
		}
		arg = answer
	}
	if err := s.session.Load(ctx, arg); err != nil {
		s.fail(err)
		return
	}
	s.printf("Loaded %s content from %s\n", s.session.Kind(), s.session.Locator())
}

func (s *Shell) model(ctx context.Context, arg string) {
	models, err := s.session.ListModels(ctx)
	if err != nil {
		s.fail(err)
		return
	}
	if arg == "" {
		for i, m := range models {
			marker := " "
			if m == s.session.ActiveModel() {
				marker = "*"
			}
			s.printf("%d: %s %s\n", i, marker, m)
		}
		answer, err := s.Prompt("Select model index or name: ")
		if err != nil {
			s.fail(err)
			return
		}
		arg = answer
	}
	if err := s.session.SetModel(ctx, resolveModel(models, arg)); err != nil {
		s.fail(err)
		return
	}
	s.printf("Using model: %s\n", s.session.ActiveModel())
}

// resolveModel maps a numeric index into the catalog; anything else is
// treated as a model name and validated by the session.
func resolveModel(models []string, arg string) string {
	if idx, err := strconv.Atoi(arg); err == nil && idx >= 0 && idx < len(models) {
		return models[idx]
	}
	return arg
}

func (s *Shell) provider(ctx context.Context) {
	backend, name, err := s.factory.New(true)
	if err != nil {
		s.fail(err)
		return
	}
	s.session.SwapBackend(ctx, backend)
	if s.session.ActiveModel() == "" {
		s.printf("%s\n", noticeStyle.Render(
			"Switched to "+name+" but model discovery failed; run /model once it is reachable."))
		return
	}
	s.printf("Switched to %s (model %s), conversation preserved\n", name, s.session.ActiveModel())
}

func (s *Shell) summary(ctx context.Context) {
	summary, err := s.session.Summarize(ctx)
	if err != nil {
		s.fail(err)
		return
	}
	s.printf("--- SUMMARY ---\n%s\n", summary)
}

func (s *Shell) setContext(arg string) {
	size, err := strconv.Atoi(arg)
	if err != nil {
		s.fail(fmt.Errorf("context size must be an integer: %q", arg))
		return
	}
	s.session.SetContextBudget(size)
	s.printf("Context budget: %d\n", size)
}

func (s *Shell) printHistory() {
	for i, m := range s.session.History() {
		preview := strings.ReplaceAll(m.Content, "\n", " ")
		if len(preview) > 100 {
			preview = preview[:100]
		}
		s.printf("[%d] %s: %s\n", i, m.Role, preview)
	}
}

// Prompt writes a question and returns the next input line. The factory
// uses this for interactive provider selection so all reads share one
// buffered reader.
func (s *Shell) Prompt(question string) (string, error) {
	s.printf("%s", question)
	line, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Shell) fail(err error) {
	s.printf("%s\n", errorStyle.Render("Error: "+err.Error()))
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
