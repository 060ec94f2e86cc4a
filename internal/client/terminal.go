package client

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"golang.org/x/term"
)

type terminalPrompter struct {
	in     *os.File
	reader *bufio.Reader
	out    io.Writer
}

// NewTerminalPrompter reads from in. Passwords are read without echo when
// in is a terminal and as plain lines otherwise, so input can be piped.
func NewTerminalPrompter(in *os.File, out io.Writer) Prompter {
	return &terminalPrompter{in: in, reader: bufio.NewReader(in), out: out}
}

func (p *terminalPrompter) ReadPassword(label string) (string, error) {
	fd := int(p.in.Fd())
	if !term.IsTerminal(fd) {
		return p.ReadLine(label)
	}

	fmt.Fprint(p.out, label)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(password), nil
}

func (p *terminalPrompter) ReadLine(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read line: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

type systemClipboard struct{}

// NewSystemClipboard returns the clipboard of the desktop session.
func NewSystemClipboard() Clipboard {
	return systemClipboard{}
}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrNoClipboard
	}
	return clipboard.WriteAll(text)
}
