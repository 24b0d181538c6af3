package input

import (
	"bufio"
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrInterrupt is returned by ReadKey when Ctrl+C is pressed.
var ErrInterrupt = errors.New("input: interrupted")

// KeyReader decodes single key presses from a raw byte stream.
type KeyReader struct {
	r *bufio.Reader
}

// NewKeyReader wraps r.
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: bufio.NewReader(r)}
}

// ReadKey returns the code of the next key press: "arrow_left", "enter",
// "space", "escape" or the printed character itself. Unknown escape
// sequences are skipped.
func (k *KeyReader) ReadKey() (string, error) {
	for {
		b, err := k.r.ReadByte()
		if err != nil {
			return "", err
		}

		switch {
		case b == 3:
			return "", ErrInterrupt
		case b == 0x1b:
			code, err := k.readEscape()
			if err != nil {
				return "", err
			}
			if code != "" {
				return code, nil
			}
		case b == '\r' || b == '\n':
			return "enter", nil
		case b == ' ':
			return "space", nil
		case b >= 33 && b < 127:
			return string(b), nil
		}
	}
}

// readEscape decodes the rest of an escape sequence. A lone ESC (nothing
// buffered after it) is reported as "escape".
func (k *KeyReader) readEscape() (string, error) {
	if k.r.Buffered() == 0 {
		return "escape", nil
	}
	b2, err := k.r.ReadByte()
	if err != nil {
		return "", err
	}
	// CSI (ESC [) and SS3 (ESC O) sequences
	if b2 != '[' && b2 != 'O' {
		return "escape", nil
	}
	b3, err := k.r.ReadByte()
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	case 'P':
		return "f1", nil
	case '2':
		// ESC [ 2 0 ~ is F9
		rest, err := k.r.ReadString('~')
		if err != nil {
			return "", err
		}
		if rest == "0~" {
			return "f9", nil
		}
	}
	return "", nil
}

// Terminal reads key presses from stdin in raw mode.
type Terminal struct {
	keys  *KeyReader
	fd    int
	state *term.State
}

// OpenTerminal puts stdin into raw mode. Call Close to restore it.
func OpenTerminal() (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &Terminal{keys: NewKeyReader(os.Stdin), fd: fd, state: state}, nil
}

// ReadIntent blocks for the next key press and maps it to an intent.
func (t *Terminal) ReadIntent() (Intent, error) {
	code, err := t.keys.ReadKey()
	if err != nil {
		return Intent{}, err
	}
	return MapToIntent(NewDebouncedInput(RawInput{Device: DeviceTerminal, Code: code})), nil
}

// Close restores the terminal state.
func (t *Terminal) Close() error {
	return term.Restore(t.fd, t.state)
}

// IsTerminal reports whether stdin is an interactive terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
