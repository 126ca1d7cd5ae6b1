package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Zactyz18/self-hosted-ai-starter-kit/internal/ui"
)

// runREPL reads a line, parses the first token as the command, and
// dispatches. The loop exits on EOF or when the user types "exit" or
// "quit". Command handlers print their own output; errors never escape a
// handler.
func (a *App) runREPL(ctx context.Context) {
	fmt.Fprintln(a.out, "RAG Document Assistant (type 'help' for commands)")

	for {
		fmt.Fprint(a.out, "ragdoc> ")
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			a.printHelp()

		case "l", "list":
			a.syncRegistry(ctx)
			if a.registry.Phase() == ui.PhaseLoading {
				a.registry.Refresh(ctx)
			}
			a.renderRegistry()

		case "refresh":
			a.registry.Refresh(ctx)
			a.renderRegistry()

		case "upload":
			if len(args) != 1 {
				fmt.Fprintln(a.out, "usage: upload <path>")
				continue
			}
			a.uploadFile(ctx, args[0])

		case "delete":
			if len(args) != 1 {
				fmt.Fprintln(a.out, "usage: delete <file_id>")
				continue
			}
			a.syncRegistry(ctx)
			if a.registry.Delete(ctx, args[0]) {
				fmt.Fprintln(a.out, "Document deleted.")
				a.renderRegistry()
			}

		case "ask":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "usage: ask <question>")
				continue
			}
			if !a.chat.Send(ctx, strings.Join(args, " ")) {
				fmt.Fprintln(a.out, "Nothing sent: empty question or a reply is still pending.")
				continue
			}
			a.renderTranscript()

		case "chat":
			a.renderTranscript()

		case "scroll":
			a.scroll(args)

		case "clear":
			if a.chat.ClearHistory() {
				a.renderTranscript()
			}

		case "watch":
			a.watchCommand(ctx, args)

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) printHelp() {
	fmt.Fprintln(a.out, "Available commands:")
	fmt.Fprintln(a.out, "  (l)ist             show uploaded documents and their processing status")
	fmt.Fprintln(a.out, "  refresh            re-fetch the document listing")
	fmt.Fprintln(a.out, "  upload <path>      upload a PDF, TXT, or DOCX file (max 50MB)")
	fmt.Fprintln(a.out, "  delete <file_id>   delete a document")
	fmt.Fprintln(a.out, "  ask <question>     ask the assistant about your documents")
	fmt.Fprintln(a.out, "  chat               show the conversation window")
	fmt.Fprintln(a.out, "  scroll up|down [n] move the conversation window")
	fmt.Fprintln(a.out, "  clear              clear the chat history")
	fmt.Fprintln(a.out, "  watch on|off       auto-refresh the listing in the background")
	fmt.Fprintln(a.out, "  exit")
}

func (a *App) scroll(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "usage: scroll up|down [lines]")
		return
	}
	lines := 5
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[1]); err == nil && n > 0 {
			lines = n
		}
	}
	switch args[0] {
	case "up":
		a.chat.ScrollBy(-lines)
	case "down":
		a.chat.ScrollBy(lines)
	default:
		fmt.Fprintln(a.out, "usage: scroll up|down [lines]")
		return
	}
	a.renderTranscript()
}
