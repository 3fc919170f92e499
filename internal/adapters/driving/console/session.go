package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/custodia-labs/crossword-cli/internal/core/domain"
	"github.com/custodia-labs/crossword-cli/internal/core/ports/driving"
	"github.com/custodia-labs/crossword-cli/internal/logger"
)

// Messages printed for rejected input.
const (
	msgNat            = "Enter an integer greater than 0"
	msgTooLarge       = "Enter an integer no greater than %d\n"
	msgInvalidSquare  = "Invalid square"
	msgProvideLetter  = "Provide a letter"
	msgSingleLetter   = "Provide a single letter"
	msgUnrecognized   = "Unrecognized command"
	msgPromptRows     = "How many rows? "
	msgPromptCols     = "How many columns? "
	msgCommandPrompt  = "> "
	defaultBlockGlyph = "▉"
)

const helpText = `Available commands:
exit
help
print
words
clear row col
block row col
write letter row col
`

// Config holds console session options.
type Config struct {
	// Rows and Cols skip the size prompts when both are positive.
	Rows int
	Cols int

	// BlockGlyph is drawn for block squares. Defaults to "▉".
	BlockGlyph string

	// Interactive prints the command prompt before each line. Disable it
	// when input is piped so transcripts contain only output.
	Interactive bool
}

// Session is one console editing session.
type Session struct {
	editor driving.EditorService
	config Config
	in     *bufio.Scanner
	out    io.Writer
}

// NewSession creates a console session reading commands from in and
// writing the board and messages to out.
func NewSession(editor driving.EditorService, in io.Reader, out io.Writer, cfg Config) *Session {
	if cfg.BlockGlyph == "" {
		cfg.BlockGlyph = defaultBlockGlyph
	}
	return &Session{
		editor: editor,
		config: cfg,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// ErrInputClosed is returned when input ends before a grid size is given.
var ErrInputClosed = errors.New("console: input closed")

// Run creates the grid, prints it, and processes commands until exit,
// end of input, or cancellation of ctx.
func (s *Session) Run(ctx context.Context) error {
	if err := s.initGrid(); err != nil {
		return err
	}
	if err := s.printBoard(); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.config.Interactive {
			s.printf("%s", msgCommandPrompt)
		}
		line, ok := s.readLine()
		if !ok {
			return s.in.Err()
		}
		if quit := s.Execute(line); quit {
			return nil
		}
	}
}

// Execute runs one command line and reports whether the session should end.
func (s *Session) Execute(line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	cmd, args := fields[0], fields[1:]
	logger.Debug("console command %q", line)

	switch cmd {
	case "exit":
		return true
	case "help":
		s.printf("%s", helpText)
	case "print":
		s.doPrint()
	case "words":
		s.doWords()
	case "clear":
		s.doEdit(args, s.editor.Clear)
	case "block":
		s.doEdit(args, s.editor.Block)
	case "write":
		s.doWrite(args)
	default:
		s.println(msgUnrecognized)
	}
	return false
}

func (s *Session) initGrid() error {
	rows, cols := s.config.Rows, s.config.Cols
	if rows <= 0 || cols <= 0 {
		var err error
		if rows, err = s.readNat(msgPromptRows); err != nil {
			return err
		}
		if cols, err = s.readNat(msgPromptCols); err != nil {
			return err
		}
	}

	_, err := s.editor.NewGrid(rows, cols)
	return err
}

// readNat prompts until an integer in 1..domain.MaxDimension is entered.
func (s *Session) readNat(prompt string) (int, error) {
	for {
		s.printf("%s", prompt)
		line, ok := s.readLine()
		if !ok {
			if err := s.in.Err(); err != nil {
				return 0, err
			}
			return 0, ErrInputClosed
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		switch {
		case err != nil || n <= 0:
			s.println(msgNat)
		case n > domain.MaxDimension:
			s.printf(msgTooLarge, domain.MaxDimension)
		default:
			return n, nil
		}
	}
}

func (s *Session) doPrint() {
	if err := s.printBoard(); err != nil {
		s.println(err.Error())
	}
}

func (s *Session) doWords() {
	words, err := s.editor.Words()
	if err != nil {
		s.println(err.Error())
		return
	}
	if err := RenderWords(s.out, words); err != nil {
		logger.Warn("rendering words: %v", err)
	}
}

func (s *Session) doEdit(args []string, edit func(row, col int) (*domain.GridSnapshot, error)) {
	row, col, ok := s.parseSquare(args)
	if !ok {
		return
	}
	snap, err := edit(row, col)
	if err != nil {
		s.reportEditError(err)
		return
	}
	s.render(snap)
}

func (s *Session) doWrite(args []string) {
	if len(args) == 0 {
		s.println(msgProvideLetter)
		return
	}
	letter := args[0]
	if len([]rune(letter)) != 1 {
		s.println(msgSingleLetter)
		return
	}

	row, col, ok := s.parseSquare(args[1:])
	if !ok {
		return
	}
	snap, err := s.editor.Write(letter, row, col)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			s.println("Invalid letter: " + letter)
			return
		}
		s.reportEditError(err)
		return
	}
	s.render(snap)
}

// parseSquare reads "row col" and checks it against the grid.
func (s *Session) parseSquare(args []string) (row, col int, ok bool) {
	if len(args) < 2 {
		s.println(msgInvalidSquare)
		return 0, 0, false
	}
	row, errRow := strconv.Atoi(args[0])
	col, errCol := strconv.Atoi(args[1])
	if errRow != nil || errCol != nil || !s.editor.Exists(row, col) {
		s.println(msgInvalidSquare)
		return 0, 0, false
	}
	return row, col, true
}

func (s *Session) reportEditError(err error) {
	if errors.Is(err, domain.ErrOutOfBounds) {
		s.println(msgInvalidSquare)
		return
	}
	s.println(err.Error())
}

func (s *Session) printBoard() error {
	snap, err := s.editor.Snapshot()
	if err != nil {
		return err
	}
	return RenderBoard(s.out, snap, s.config.BlockGlyph)
}

func (s *Session) render(snap *domain.GridSnapshot) {
	if err := RenderBoard(s.out, snap, s.config.BlockGlyph); err != nil {
		logger.Warn("rendering board: %v", err)
	}
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Session) println(line string) {
	s.printf("%s\n", line)
}
