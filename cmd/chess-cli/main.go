// Command chess-cli is an interactive terminal client for the chess server.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"chesscore/internal/client/api"
	"chesscore/internal/client/display"
	"chesscore/internal/model"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
)

type session struct {
	client *api.Client
	gameID string
	color  model.Color
}

func main() {
	server := flag.String("server", "http://localhost:3000", "server base URL")
	flag.Parse()

	s := &session{
		client: api.New(*server, uuid.New().String()),
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          display.Prompt("chess"),
		HistoryFile:     ".chess_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Printf("%s%s%s\n", display.Red, err.Error(), display.Reset)
		os.Exit(1)
	}
	defer rl.Close()

	fmt.Printf("%sChess Client%s\n", display.Cyan, display.Reset)
	fmt.Printf("%sServer: %s%s\n", display.Cyan, *server, display.Reset)
	fmt.Println("Type 'help' for commands")

	for {
		rl.SetPrompt(buildPrompt(s))

		line, err := rl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			break
		}
		if err != nil {
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		if err := execute(s, line); err != nil {
			fmt.Printf("%s%s%s\n", display.Red, err.Error(), display.Reset)
		}
	}
}

func buildPrompt(s *session) string {
	if s.gameID == "" {
		return display.Prompt("chess")
	}
	label := s.gameID
	if len(label) > 8 {
		label = label[:8]
	}
	if s.color != "" {
		label += "/" + string(s.color)
	}
	return display.Prompt("chess " + label)
}

func execute(s *session, line string) error {
	parts := strings.Fields(line)
	cmd, args := parts[0], parts[1:]

	switch cmd {
	case "new":
		gameID, err := s.client.CreateGame()
		if err != nil {
			return err
		}
		s.gameID = gameID
		fmt.Printf("Created game %s\n", gameID)
		return s.join(gameID)
	case "join":
		if len(args) != 1 {
			return fmt.Errorf("usage: join <gameID>")
		}
		return s.join(args[0])
	case "match":
		return s.match()
	case "board", "state":
		return s.showBoard()
	case "move", "m":
		return s.move(args)
	case "help", "?":
		printHelp()
		return nil
	default:
		return fmt.Errorf("unknown command %q, type 'help' for commands", cmd)
	}
}

func (s *session) join(gameID string) error {
	color, err := s.client.JoinGame(gameID)
	if err != nil {
		return err
	}
	s.gameID = gameID
	s.color = color
	fmt.Printf("Joined as %s\n", display.ColorForTurn(color))
	return s.showBoard()
}

func (s *session) match() error {
	fmt.Println("Waiting for an opponent... (^C to give up)")
	event, err := s.client.AwaitMatch()
	if err != nil {
		return err
	}
	s.gameID = event.GameID
	s.color = event.Color
	fmt.Printf("Matched in game %s as %s\n", event.GameID, display.ColorForTurn(event.Color))
	return s.showBoard()
}

func (s *session) showBoard() error {
	if s.gameID == "" {
		return fmt.Errorf("no active game, use 'new' or 'join'")
	}
	state, err := s.client.GameState(s.gameID)
	if err != nil {
		return err
	}
	display.RenderState(state)
	return nil
}

// move accepts "move e2 e4" or "move e2e4".
func (s *session) move(args []string) error {
	if s.gameID == "" {
		return fmt.Errorf("no active game, use 'new' or 'join'")
	}

	var fromSq, toSq string
	switch {
	case len(args) == 2:
		fromSq, toSq = args[0], args[1]
	case len(args) == 1 && len(args[0]) == 4:
		fromSq, toSq = args[0][:2], args[0][2:]
	default:
		return fmt.Errorf("usage: move <from> <to> (e.g. move e2 e4)")
	}

	from, err := model.ParseSquare(fromSq)
	if err != nil {
		return err
	}
	to, err := model.ParseSquare(toSq)
	if err != nil {
		return err
	}

	if err := s.client.Move(s.gameID, from, to); err != nil {
		return err
	}
	return s.showBoard()
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  new               create a game and join it")
	fmt.Println("  join <gameID>     join an existing game")
	fmt.Println("  match             queue up and wait for an opponent")
	fmt.Println("  board             show the current board")
	fmt.Println("  move <from> <to>  make a move (e.g. move e2 e4)")
	fmt.Println("  exit              quit")
}
