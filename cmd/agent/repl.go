package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/jsamuelsen11/todo-agent/internal/domain/conversation"
	"github.com/jsamuelsen11/todo-agent/internal/domain/todo"
	"github.com/jsamuelsen11/todo-agent/internal/ports"
)

// replCommands lists the slash commands the chat loop understands.
var replCommands = []string{
	"/todos  list the stored todo items",
	"/reset  clear this session's conversation history",
	"/quit   exit",
}

// runChat drives the interactive chat loop against the default session.
// Turn failures are printed and the loop continues; only input errors end
// the session.
func runChat(ctx context.Context, agent ports.AgentService, todos ports.TodoService, historyPath string, out, errOut io.Writer) error {
	input, inputErr := newLineInput(historyPath)
	if inputErr != nil {
		fmt.Fprintf(errOut, "line editor unavailable, falling back to basic input: %v\n", inputErr)
	}
	defer input.Close()

	fmt.Fprintln(out, "todo agent ready. Type a request, or /quit to exit.")
	printREPLCommands(out)

	for {
		line, err := input.ReadLine("> ")
		if err != nil {
			switch {
			case errors.Is(err, readline.ErrInterrupt):
				fmt.Fprintln(out)
				continue
			case errors.Is(err, io.EOF):
				fmt.Fprintln(out, "bye")
				return nil
			default:
				return fmt.Errorf("reading input: %w", err)
			}
		}

		utterance := strings.TrimSpace(line)
		if utterance == "" {
			continue
		}

		if strings.HasPrefix(utterance, "/") {
			exit, err := handleSlashCommand(ctx, utterance, agent, todos, out)
			if err != nil {
				fmt.Fprintf(errOut, "error: %v\n", err)
				continue
			}
			if exit {
				return nil
			}
			continue
		}

		reply, err := agent.HandleUtterance(ctx, conversation.DefaultSessionKey, utterance)
		if err != nil {
			fmt.Fprintf(errOut, "turn failed: %v\n", err)
			continue
		}
		fmt.Fprintln(out, reply)
	}
}

func handleSlashCommand(ctx context.Context, command string, agent ports.AgentService, todos ports.TodoService, out io.Writer) (bool, error) {
	switch command {
	case "/quit", "/exit":
		fmt.Fprintln(out, "bye")
		return true, nil

	case "/reset":
		if err := agent.ResetSession(ctx, conversation.DefaultSessionKey); err != nil {
			return false, err
		}
		fmt.Fprintln(out, "session history cleared")
		return false, nil

	case "/todos":
		items, err := todos.ListTodos(ctx, todo.Filter{})
		if err != nil {
			return false, err
		}
		printTodoList(out, items)
		return false, nil

	default:
		printREPLCommands(out)
		return false, fmt.Errorf("unknown command %q", command)
	}
}

func printREPLCommands(out io.Writer) {
	fmt.Fprintln(out, "commands:")
	for _, cmd := range replCommands {
		fmt.Fprintf(out, "  %s\n", cmd)
	}
}

func printTodoList(out io.Writer, items []todo.Todo) {
	if len(items) == 0 {
		fmt.Fprintln(out, "no todos")
		return
	}
	for i := range items {
		item := &items[i]
		fmt.Fprintf(out, "%3d [%s] %s", item.ID, item.Status, item.Title)
		if item.Project != "" {
			fmt.Fprintf(out, " (%s)", item.Project)
		}
		fmt.Fprintln(out)
	}
}

// runReset clears both stored documents: the todo collection and the
// default session's conversation history.
func runReset(ctx context.Context, agent ports.AgentService, todos ports.TodoService, out io.Writer) error {
	if err := todos.ResetAll(ctx); err != nil {
		return fmt.Errorf("resetting todos: %w", err)
	}
	if err := agent.ResetSession(ctx, conversation.DefaultSessionKey); err != nil {
		return fmt.Errorf("resetting session: %w", err)
	}
	fmt.Fprintln(out, "stored documents cleared")
	return nil
}
