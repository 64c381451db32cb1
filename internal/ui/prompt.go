package ui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrNoTerminal is returned when a prompt is requested without a TTY.
var ErrNoTerminal = errors.New("prompt requires an interactive terminal")

// PromptSecret reads a secret twice from the terminal on in, echo off, and
// returns it when both entries match. Prompts go to out. Errors never echo
// the secret.
func PromptSecret(in *os.File, out io.Writer, label string) (string, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrNoTerminal
	}

	read := func(prompt string) (string, error) {
		fmt.Fprint(out, "\r"+prompt)
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("failed to read %s", label)
		}
		return string(b), nil
	}

	first, err := read("Enter " + label + ": ")
	if err != nil {
		return "", err
	}
	second, err := read("Re-enter " + label + ": ")
	if err != nil {
		return "", err
	}
	if first != second {
		return "", fmt.Errorf("%s entries do not match", label)
	}
	return first, nil
}
