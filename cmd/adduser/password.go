package main

import (
	"bufio"
	"os"
	"strings"

	"golang.org/x/term"
)

// seams for tests
var (
	isTerminal   = term.IsTerminal
	readTerminal = term.ReadPassword
)

func readPassword(f *os.File) (string, error) {
	fd := int(f.Fd())
	if isTerminal(fd) {
		b, err := readTerminal(fd)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
