package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// errQuit is returned by promptForPath when the user asks to quit.
var errQuit = errors.New("user quit")

// promptForPath reproduces the original script's prompt(): ask for an
// export path, loop asking for overwrite confirmation if it already
// exists, and loop the whole thing again on 'n'/'N'.
func promptForPath(in io.Reader, out io.Writer) (string, error) {
	r := bufio.NewReader(in)
	for {
		fmt.Fprint(out, "Enter filename to export to or 'q' to quit: ")
		line, err := readLine(r)
		if err != nil {
			return "", err
		}
		if line == "q" || line == "Q" {
			return "", errQuit
		}
		if line == "" {
			continue
		}

		if _, err := os.Stat(line); err == nil {
			overwrite, err := confirmOverwrite(r, out)
			if err != nil {
				return "", err
			}
			if overwrite {
				return line, nil
			}
			continue
		}
		return line, nil
	}
}

func confirmOverwrite(r *bufio.Reader, out io.Writer) (bool, error) {
	for {
		fmt.Fprint(out, "File already exists. Overwrite? ")
		choice, err := readLine(r)
		if err != nil {
			return false, err
		}
		switch choice {
		case "y", "Y":
			return true, nil
		case "n", "N":
			return false, nil
		}
	}
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
